package mapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type article struct {
	ID    int
	Title string
	Tags  []string
}

type articleBasic struct {
	ID   int
	Name string
}

type articleDisplay struct {
	ID       int
	Name     string
	TagCount int
	Culture  string
}

type tag struct{ Name string }

type tagDisplay struct{ Label string }

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	b := NewBuilder()
	Define(b, func(src *article, dst *articleBasic, _ *Context) error {
		dst.ID = src.ID
		dst.Name = src.Title

		return nil
	})
	Define(b, func(src *article, dst *articleDisplay, ctx *Context) error {
		dst.ID = src.ID
		dst.Name = src.Title
		dst.TagCount = len(src.Tags)
		dst.Culture = ctx.Culture()

		return nil
	})
	Define(b, func(src tag, dst *tagDisplay, _ *Context) error {
		if src.Name == "" {
			return errors.New("empty tag")
		}

		dst.Label = "#" + src.Name

		return nil
	})

	reg, err := b.Build()
	require.NoError(t, err)

	return reg
}

func TestBuild(t *testing.T) {
	reg := testRegistry(t)

	assert.Equal(t, 3, reg.Len())
	assert.True(t, Registered[*article, articleBasic](reg))
	assert.True(t, Registered[tag, tagDisplay](reg))
	assert.False(t, Registered[article, articleBasic](reg))
	assert.Equal(t, []string{
		"*mapping.article -> mapping.articleBasic",
		"*mapping.article -> mapping.articleDisplay",
		"mapping.tag -> mapping.tagDisplay",
	}, reg.Pairs())
}

func TestBuild_DuplicatePair(t *testing.T) {
	b := NewBuilder()
	fn := func(_ *article, _ *articleBasic, _ *Context) error { return nil }
	Define(b, fn)
	Define(b, fn)

	reg, err := b.Build()
	require.Error(t, err)
	assert.Nil(t, reg)
	assert.Contains(t, err.Error(), "*mapping.article -> mapping.articleBasic defined more than once")
}

func TestMap(t *testing.T) {
	reg := testRegistry(t)
	ctx := reg.NewContext(WithCulture("en-US"))

	got, err := Map[articleDisplay](ctx, &article{ID: 7, Title: "Hello", Tags: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, &articleDisplay{ID: 7, Name: "Hello", TagCount: 2, Culture: "en-US"}, got)
}

func TestMap_NilSource(t *testing.T) {
	reg := testRegistry(t)

	got, err := Map[articleBasic](reg.NewContext(), (*article)(nil))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Map[articleBasic](reg.NewContext(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMap_NoMapping(t *testing.T) {
	reg := testRegistry(t)

	_, err := Map[articleBasic](reg.NewContext(), article{ID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMapping)
	assert.Contains(t, err.Error(), "mapping.article -> mapping.articleBasic")
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "*mapping.article -> mapping.articleBasic")
}

func TestMapInto(t *testing.T) {
	reg := testRegistry(t)

	dst := &articleBasic{ID: 99, Name: "old"}
	require.NoError(t, MapInto(reg.NewContext(), &article{ID: 1, Title: "new"}, dst))
	assert.Equal(t, &articleBasic{ID: 1, Name: "new"}, dst)

	// nil source keeps the destination
	require.NoError(t, MapInto(reg.NewContext(), (*article)(nil), dst))
	assert.Equal(t, 1, dst.ID)

	assert.ErrorIs(t, MapInto[articleBasic](reg.NewContext(), &article{}, nil), ErrNilTarget)
}

func TestMapSlice(t *testing.T) {
	reg := testRegistry(t)
	ctx := reg.NewContext()

	got, err := MapSlice[tag, tagDisplay](ctx, []tag{{Name: "go"}, {Name: "cms"}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "#go", got[0].Label)
	assert.Equal(t, "#cms", got[1].Label)

	none, err := MapSlice[tag, tagDisplay](ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = MapSlice[tag, tagDisplay](ctx, []tag{{Name: "ok"}, {}})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "element 1:"), err.Error())
}
