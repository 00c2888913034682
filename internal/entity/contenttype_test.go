package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docType(id int, alias string, compositions ...*ContentType) *ContentType {
	return &ContentType{ID: id, Kind: KindDocument, Alias: alias, Name: alias, Compositions: compositions}
}

func aliases(types []*ContentType) []string {
	result := make([]string, 0, len(types))
	for _, t := range types {
		result = append(result, t.Alias)
	}

	return result
}

func TestContentType_Ancestors(t *testing.T) {
	meta := docType(1, "meta")
	seo := docType(2, "seo", meta)
	nav := docType(3, "nav", meta)
	page := docType(4, "page", seo, nav)

	assert.Equal(t, []string{"seo", "meta", "nav"}, aliases(page.Ancestors()))
	assert.Equal(t, []int{2, 1, 3}, page.CompositionIDs())
	assert.True(t, page.Composes(1))
	assert.False(t, seo.Composes(3))
	assert.Empty(t, meta.Ancestors())
	assert.Equal(t, []string{"seo", "nav"}, page.CompositionAliases())
}

func TestContentType_Ancestors_Cycle(t *testing.T) {
	a := docType(1, "a")
	b := docType(2, "b", a)
	a.Compositions = []*ContentType{b}

	assert.Equal(t, []string{"b"}, aliases(a.Ancestors()))
}

func TestContentType_PropertyTypes(t *testing.T) {
	title := &PropertyType{Alias: "title"}
	body := &PropertyType{Alias: "body"}
	hidden := &PropertyType{Alias: "hidden"}
	metaTitle := &PropertyType{Alias: "metaTitle"}

	seo := docType(1, "seo")
	seo.PropertyGroups = []*PropertyGroup{{Name: "SEO", PropertyTypes: []*PropertyType{metaTitle}}}

	page := docType(2, "page", seo)
	page.PropertyGroups = []*PropertyGroup{{Name: "Content", PropertyTypes: []*PropertyType{title, body}}}
	page.NoGroupPropertyTypes = []*PropertyType{hidden}

	assert.Equal(t, []*PropertyType{title, body, hidden}, page.PropertyTypes())
	assert.Equal(t, []*PropertyType{title, body, hidden, metaTitle}, page.CompositionPropertyTypes())
	assert.Len(t, page.CompositionPropertyGroups(), 2)

	assert.Same(t, body, page.FindPropertyType("BODY"))
	assert.Nil(t, page.FindPropertyType("metaTitle"))
}

func TestContentType_AddComposition(t *testing.T) {
	seo := docType(1, "seo")
	page := docType(2, "page")
	landing := docType(3, "landing", page)
	image := &ContentType{ID: 4, Kind: KindMedia, Alias: "image"}

	require.NoError(t, page.AddComposition(seo))
	assert.Equal(t, []string{"seo"}, page.CompositionAliases())

	tests := []struct {
		name string
		add  *ContentType
		to   *ContentType
		want string
	}{
		{name: "nil", add: nil, to: page, want: "nil content type"},
		{name: "self", add: page, to: page, want: "cannot compose itself"},
		{name: "duplicate", add: seo, to: page, want: `"page" already composes "seo"`},
		{name: "kind mismatch", add: image, to: page, want: "is a Media type"},
		{name: "cycle", add: landing, to: page, want: `"landing" already composes "page"`},
		{name: "indirect cycle", add: landing, to: seo, want: `"landing" already composes "seo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.to.AddComposition(tt.add)
			require.ErrorIs(t, err, ErrInvalidComposition)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.True(t, page.RemoveComposition("SEO"))
	assert.False(t, page.RemoveComposition("seo"))
	assert.Empty(t, page.Compositions)
}

func TestKindAndVariation(t *testing.T) {
	assert.Equal(t, "document-type", KindDocument.UdiEntityType())
	assert.Equal(t, "member", KindMember.ContentUdiEntityType())
	assert.Equal(t, "Media", KindMedia.String())

	v := VaryNothing.With(VaryCulture, true)
	assert.True(t, v.VariesByCulture())
	assert.False(t, v.VariesBySegment())
	assert.Equal(t, "Culture", v.String())
	assert.Equal(t, "CultureAndSegment", v.With(VarySegment, true).String())
	assert.Equal(t, VaryNothing, v.With(VaryCulture, false))

	assert.Equal(t, "Tab", GroupTypeTab.String())
	assert.Equal(t, "Group", GroupTypeGroup.String())
}
