package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-mapper/internal/entity"
)

func TestAvailableCompositions_ComposedTypeNotOffered(t *testing.T) {
	seo, content, page, _, plain := site()
	all := []*entity.ContentType{seo, content, page, plain}

	// page composes seo and content: both listed as selected, not available
	avail := AvailableCompositions(page, all, Filter{})
	assert.NotContains(t, avail.Aliases(), "seo")
	assert.NotContains(t, avail.Aliases(), "content")
	assert.Equal(t, []string{"plain"}, avail.Aliases())

	byAlias := map[string]Candidate{}
	for _, c := range avail.Results {
		byAlias[c.ContentType.Alias] = c
	}

	assert.True(t, byAlias["seo"].Selected)
	assert.True(t, byAlias["seo"].Allowed)
	assert.NotContains(t, byAlias, "page")
}

func TestAvailableCompositions_UsedAsCompositionGetsNothing(t *testing.T) {
	seo, content, page, article, plain := site()
	all := []*entity.ContentType{seo, content, page, article, plain}

	for _, target := range []*entity.ContentType{seo, content, page} {
		avail := AvailableCompositions(target, all, Filter{})
		assert.Empty(t, avail.Results, target.Alias)
		assert.Empty(t, avail.Aliases(), target.Alias)
	}
}

func TestAvailableCompositions_TopLevelOnlySortedByName(t *testing.T) {
	seo, content, page, article, plain := site()
	zeta := docType(50, "zeta")
	zeta.Name = "Zeta"
	alpha := docType(51, "alpha")
	alpha.Name = "alpha"
	media := &entity.ContentType{ID: 60, Kind: entity.KindMedia, Alias: "image", Name: "Image"}
	all := []*entity.ContentType{zeta, seo, content, page, article, plain, alpha, media}

	avail := AvailableCompositions(plain, all, Filter{})

	var names []string
	for _, c := range avail.Results {
		names = append(names, c.ContentType.Name)
	}

	// page and article have compositions of their own, image is another kind
	assert.Equal(t, []string{"alpha", "content", "seo", "Zeta"}, names)
}

func TestAvailableCompositions_NewContentType(t *testing.T) {
	seo, content, page, article, plain := site()
	all := []*entity.ContentType{seo, content, page, article, plain}

	avail := AvailableCompositions(&entity.ContentType{Kind: entity.KindDocument}, all, Filter{})
	assert.Equal(t, []string{"content", "plain", "seo"}, avail.Aliases())
}

func TestAvailableCompositions_Filters(t *testing.T) {
	seo, content, page, article, plain := site()
	plain.IsElement = true
	all := []*entity.ContentType{seo, content, page, article, plain}
	target := docType(70, "landing")

	avail := AvailableCompositions(target, all, Filter{PropertyAliases: []string{"MetaTitle"}})

	allowed := map[string]bool{}
	for _, c := range avail.Results {
		allowed[c.ContentType.Alias] = c.Allowed
	}

	assert.False(t, allowed["seo"], "seo defines metaTitle")
	assert.True(t, allowed["content"])

	avail = AvailableCompositions(target, all, Filter{ContentTypeAliases: []string{"content"}})
	for _, c := range avail.Results {
		assert.NotEqual(t, "content", c.ContentType.Alias)
	}

	avail = AvailableCompositions(target, all, Filter{IsElement: true})
	require.Len(t, avail.Results, 1)
	assert.Equal(t, "plain", avail.Results[0].ContentType.Alias)
}

func TestAvailableCompositions_TreeAncestorsNotAllowed(t *testing.T) {
	seo, content, _, _, plain := site()
	child := docType(80, "child")
	child.Path = "-1,11,80"
	child.Compositions = []*entity.ContentType{content}
	all := []*entity.ContentType{seo, content, plain, child}

	avail := AvailableCompositions(child, all, Filter{})
	require.Len(t, avail.Ancestors, 1)
	assert.Same(t, content, avail.Ancestors[0])

	for _, c := range avail.Results {
		if c.ContentType == content {
			assert.True(t, c.Selected)
			assert.False(t, c.Allowed, "a tree ancestor stays locked even when selected")
		}
	}

	assert.Equal(t, []string{"plain", "seo"}, avail.Aliases())
}

func TestDescendants(t *testing.T) {
	seo, content, page, article, plain := site()
	all := []*entity.ContentType{seo, content, page, article, plain}

	assert.Equal(t, []*entity.ContentType{page, article}, Descendants(seo, all))
	assert.Equal(t, []*entity.ContentType{article}, Descendants(page, all))
	assert.Empty(t, Descendants(article, all))
}
