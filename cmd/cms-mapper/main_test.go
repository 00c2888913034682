package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-mapper/internal/editing"
	"cms-mapper/internal/editors"
	"cms-mapper/internal/entity"
)

const (
	siteFixture = "../../examples/site/site.yaml"
	siteConfig  = "../../examples/site/config.yaml"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	err := run(append(args, "-fixture", siteFixture, "-config", siteConfig), &out)

	return out.String(), err
}

func TestFixtureStore(t *testing.T) {
	f, err := LoadFixture(siteFixture)
	require.NoError(t, err)

	store, err := f.Store(editors.Default())
	require.NoError(t, err)

	page, err := store.GetContentTypeByAlias(entity.KindDocument, "page")
	require.NoError(t, err)
	assert.Equal(t, []string{"seo"}, page.CompositionAliases())
	assert.True(t, page.VariesByCulture())
	assert.Equal(t, "-1,20", page.Path)
	require.NotNil(t, page.DefaultTemplate)
	assert.Equal(t, "page", page.DefaultTemplate.Alias)

	title := page.FindPropertyType("title")
	require.NotNil(t, title)
	assert.True(t, title.VariesByCulture())
	assert.Equal(t, "Umbraco.TextBox", title.PropertyEditorAlias)

	story, err := store.GetContent(1070)
	require.NoError(t, err)
	assert.Equal(t, "-1,1050,1070", story.Path)
	assert.Equal(t, 2, story.Level)

	home, err := store.GetContent(1060)
	require.NoError(t, err)
	assert.True(t, home.IsCulturePublished("en-US"))
	assert.True(t, home.IsCultureEdited("da-DK"))
	assert.Equal(t, "Velkommen", home.Property("title").GetValue("da-DK", "", false))
	require.NotNil(t, home.TemplateID)
	assert.Equal(t, 501, *home.TemplateID)

	customer, err := store.GetContentTypeByAlias(entity.KindMember, "customer")
	require.NoError(t, err)
	assert.True(t, customer.MemberAccess["phone"].Sensitive)

	// Keys are stable across loads.
	again, err := f.Store(editors.Default())
	require.NoError(t, err)

	home2, err := again.GetContent(1060)
	require.NoError(t, err)
	assert.Equal(t, home.Key, home2.Key)
}

func TestFixtureStore_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown composition",
			yaml:    "content_types:\n  - {id: 1, alias: a, compositions: [b]}\n",
			wantErr: `composition "b"`,
		},
		{
			name:    "unknown data type",
			yaml:    "content_types:\n  - id: 1\n    alias: a\n    properties: [{id: 2, alias: x, data_type: 9}]\n",
			wantErr: "data type 9",
		},
		{
			name:    "unknown kind",
			yaml:    "content_types:\n  - {id: 1, alias: a, kind: folder}\n",
			wantErr: `unknown content kind "folder"`,
		},
		{
			name:    "property not on type",
			yaml:    "content_types:\n  - {id: 1, alias: a}\ncontent:\n  - {id: 5, type: a, values: {x: {\"\": 1}}}\n",
			wantErr: `property "x" is not defined by "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFixture([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = f.Store(editors.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_Display(t *testing.T) {
	out, err := runCLI(t, "display", "-kind", "content", "-id", "1060")
	require.NoError(t, err)

	var display editing.ContentItemDisplay
	require.NoError(t, json.Unmarshal([]byte(out), &display))
	assert.Equal(t, 1060, display.ID)
	assert.Len(t, display.Variants, 2)

	out, err = runCLI(t, "display", "-kind", "data-type", "-id", "1001")
	require.NoError(t, err)

	var dataType editing.DataTypeDisplay
	require.NoError(t, json.Unmarshal([]byte(out), &dataType))
	assert.Equal(t, "Umbraco.TextBox", dataType.SelectedEditor)
}

func TestRun_Tabs(t *testing.T) {
	out, err := runCLI(t, "tabs", "-id", "1060")
	require.NoError(t, err)

	var tabs []*editing.Tab
	require.NoError(t, json.Unmarshal([]byte(out), &tabs))
	require.NotEmpty(t, tabs)
	assert.Equal(t, "Content", tabs[0].Label)
}

func TestRun_Compositions(t *testing.T) {
	out, err := runCLI(t, "compositions", "-alias", "page")
	require.NoError(t, err)

	assert.Contains(t, out, "* seo")
	assert.Contains(t, out, "+ news")
	assert.NotContains(t, out, " page ")
}

func TestRun_Compositions_Empty(t *testing.T) {
	out, err := runCLI(t, "compositions", "-alias", "seo")
	require.NoError(t, err)
	assert.Equal(t, "seo is used as a composition and cannot compose other types\n", out)

	out, err = runCLI(t, "compositions", "-alias", "customer", "-kind", "member")
	require.NoError(t, err)
	assert.Equal(t, "no compositions available for customer\n", out)
}

func TestRun_Check(t *testing.T) {
	out, err := runCLI(t, "check")
	require.NoError(t, err)

	assert.Contains(t, out, "editor_missing")
	assert.Contains(t, out, "Acme.StarRating")
	assert.Contains(t, out, "ok, ")
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Usage: cms-mapper")

	err := run([]string{"frobnicate"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	err = run([]string{"display", "-fixture", siteFixture}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-id is required")
}
