// Package config loads the cms-mapper configuration from a YAML file, an
// optional .env file and CMSMAPPER_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CMSMAPPER_"

// Config is the application configuration.
type Config struct {
	ServiceName    string         `yaml:"service_name"`
	BackOfficePath string         `yaml:"backoffice_path"`
	EditorsFile    string         `yaml:"editors_file"`
	DefaultCulture string         `yaml:"default_culture"`
	Log            LogConfig      `yaml:"log"`
	Database       DatabaseConfig `yaml:"database"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig configures the SQL content type store. An empty DSN means
// the in-memory store is used.
type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// LoadFile reads the YAML file at path, then applies the .env file of the
// working directory (if any) and environment overrides.
// An empty path skips the YAML step.
func LoadFile(path string) (*Config, error) {
	var data []byte

	if path != "" {
		var err error

		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse parses YAML data into a Config with defaults applied.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "cms-mapper"
	}

	if cfg.BackOfficePath == "" {
		cfg.BackOfficePath = "/umbraco"
	}

	if cfg.DefaultCulture == "" {
		cfg.DefaultCulture = "en-US"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	str("SERVICE_NAME", &cfg.ServiceName)
	str("BACKOFFICE_PATH", &cfg.BackOfficePath)
	str("EDITORS_FILE", &cfg.EditorsFile)
	str("DEFAULT_CULTURE", &cfg.DefaultCulture)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("DATABASE_DSN", &cfg.Database.DSN)

	if v, ok := lookup(EnvPrefix + "DATABASE_MAX_OPEN_CONNS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid %sDATABASE_MAX_OPEN_CONNS %q", EnvPrefix, v)
		}

		cfg.Database.MaxOpenConns = n
	}

	return nil
}
