package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	editors := []string{
		"Umbraco.TextBox",
		"Umbraco.TextArea",
		"Umbraco.MediaPicker3",
		"Umbraco.ColorPicker",
		"Umbraco.ListView",
	}

	t.Run("closest first", func(t *testing.T) {
		got := Suggest("Umbraco.MediaPicker", editors, 3)
		assert.NotEmpty(t, got)
		assert.Equal(t, "Umbraco.MediaPicker3", got[0])
	})

	t.Run("prefix stripped", func(t *testing.T) {
		got := Suggest("textbox", editors, 1)
		assert.Equal(t, []string{"Umbraco.TextBox"}, got)
	})

	t.Run("limit", func(t *testing.T) {
		got := Suggest("Umbraco.Text", editors, 1)
		assert.Len(t, got, 1)
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, Suggest("zzzz", editors, 3))
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Empty(t, Suggest("Umbraco.TextBox", nil, 3))
	})
}

func TestRank_Order(t *testing.T) {
	ranked := Rank("bodyText", []string{"title", "body_text", "bodyTex"}, DefaultSuggestThreshold)

	if assert.Len(t, ranked, 2) {
		assert.Equal(t, "body_text", ranked[0].Name)
		assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
		assert.Equal(t, "bodyTex", ranked[1].Name)
	}
}
