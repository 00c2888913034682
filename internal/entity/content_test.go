package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProperty_Values(t *testing.T) {
	p := &Property{PropertyType: &PropertyType{Alias: "title", Variations: VaryCulture}}

	p.SetValue("Welcome", "en-US", "")
	p.SetValue("Velkommen", "da-DK", "")
	p.SetValue("Hello", "EN-us", "")

	assert.Len(t, p.Values, 2)
	assert.Equal(t, "Hello", p.GetValue("en-US", "", false))
	assert.Nil(t, p.GetValue("en-US", "", true))
	assert.Nil(t, p.GetValue("de-DE", "", false))
	assert.Equal(t, "title", p.Alias())
	assert.Empty(t, (&Property{}).Alias())
}

func TestContentBase_Cultures(t *testing.T) {
	date := time.Date(2024, 2, 20, 8, 30, 0, 0, time.UTC)

	c := &ContentBase{}
	c.SetCultureName("Home", "en-US", date)
	c.SetCultureName("Hjem", "da-DK", time.Time{})
	c.SetCultureName(" ", "de-DE", date)

	name, ok := c.CultureName("EN-US")
	assert.True(t, ok)
	assert.Equal(t, "Home", name)

	got, ok := c.CultureUpdateDate("en-us")
	assert.True(t, ok)
	assert.Equal(t, date, got)

	_, ok = c.CultureUpdateDate("da-DK")
	assert.False(t, ok, "zero dates are not stored dates")

	assert.True(t, c.IsCultureAvailable("da-DK"))
	assert.False(t, c.IsCultureAvailable("de-DE"))
	assert.Equal(t, []string{"da-DK", "en-US"}, c.AvailableCultures())
}

func TestContent_CultureState(t *testing.T) {
	c := &Content{
		PublishedCultures: map[string]bool{"en-us": true},
		EditedCultures:    map[string]bool{"da-dk": true},
	}

	assert.True(t, c.IsCulturePublished("en-US"))
	assert.False(t, c.IsCulturePublished("da-DK"))
	assert.True(t, c.IsCultureEdited("DA-DK"))
	assert.False(t, c.HasIdentity())
}

func TestPathIDsAndUdi(t *testing.T) {
	assert.Equal(t, []int{-1, 1051, 1060}, PathIDs("-1,1051,1060"))
	assert.Equal(t, []int{-1, 0}, PathIDs("-1, x"))
	assert.Nil(t, PathIDs(""))

	key := uuid.MustParse("2d4b1b4c-5a3e-4c59-9d6f-8a1e0b5f3c21")
	assert.Equal(t, "umb://document/2d4b1b4c5a3e4c599d6f8a1e0b5f3c21", Udi("document", key))
}

func TestUser_StartNodes(t *testing.T) {
	media := 2000
	content := 1050

	u := &User{
		StartContentIDs: []int{1070, 1050},
		Groups: []*UserGroup{
			{AllowedSections: []string{"media", "content"}, StartContentID: &content, StartMediaID: &media},
			{AllowedSections: []string{"content", "settings"}},
		},
	}

	assert.Equal(t, []int{1050, 1070}, u.CalculateContentStartNodeIDs())
	assert.Equal(t, []int{2000}, u.CalculateMediaStartNodeIDs())
	assert.Equal(t, []string{"content", "media", "settings"}, u.AllowedSections())

	root := RootID
	u.Groups[1].StartContentID = &root
	assert.Equal(t, []int{RootID}, u.CalculateContentStartNodeIDs())

	assert.Equal(t, []int{RootID}, (&User{}).CalculateMediaStartNodeIDs())
}

func TestDictionaryItem_Translation(t *testing.T) {
	d := &DictionaryItem{Translations: []DictionaryTranslation{{LanguageID: 1, Value: "Read more"}}}

	v, ok := d.Translation(1)
	assert.True(t, ok)
	assert.Equal(t, "Read more", v)

	_, ok = d.Translation(2)
	assert.False(t, ok)
}
