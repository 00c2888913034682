package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "cms-mapper", cfg.ServiceName)
	assert.Equal(t, "/umbraco", cfg.BackOfficePath)
	assert.Equal(t, "en-US", cfg.DefaultCulture)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Empty(t, cfg.Database.DSN)
}

func TestParse(t *testing.T) {
	yaml := `
service_name: backoffice
backoffice_path: /admin
editors_file: editors.yaml
default_culture: da-DK
log:
  level: debug
  format: console
database:
  dsn: postgres://localhost/cms?sslmode=disable
  max_open_conns: 4
`
	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "backoffice", cfg.ServiceName)
	assert.Equal(t, "/admin", cfg.BackOfficePath)
	assert.Equal(t, "editors.yaml", cfg.EditorsFile)
	assert.Equal(t, "da-DK", cfg.DefaultCulture)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "postgres://localhost/cms?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("log: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CMSMAPPER_LOG_LEVEL":               "warn",
		"CMSMAPPER_DATABASE_DSN":            "postgres://db/cms",
		"CMSMAPPER_DATABASE_MAX_OPEN_CONNS": "25",
		"CMSMAPPER_DEFAULT_CULTURE":         "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.NoError(t, applyEnv(cfg, lookup))

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "postgres://db/cms", cfg.Database.DSN)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "en-US", cfg.DefaultCulture, "empty values do not override")

	env["CMSMAPPER_DATABASE_MAX_OPEN_CONNS"] = "many"
	assert.Error(t, applyEnv(cfg, lookup))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cms-mapper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))

	t.Chdir(dir)
	t.Setenv("CMSMAPPER_SERVICE_NAME", "from-env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.ServiceName)
}

func TestLoadFile_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CMSMAPPER_EDITORS_FILE=custom-editors.yaml\n"), 0o644))

	t.Chdir(dir)
	t.Setenv("CMSMAPPER_EDITORS_FILE", "")
	os.Unsetenv("CMSMAPPER_EDITORS_FILE")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "custom-editors.yaml", cfg.EditorsFile)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
