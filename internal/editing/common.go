package editing

import "github.com/google/uuid"

// EntityBasic is the minimal tree entity shape used for pickers and references.
type EntityBasic struct {
	ID             int            `json:"id"`
	Key            uuid.UUID      `json:"key"`
	Udi            string         `json:"udi,omitempty"`
	Name           string         `json:"name"`
	Alias          string         `json:"alias,omitempty"`
	Icon           string         `json:"icon,omitempty"`
	ParentID       int            `json:"parentId"`
	Path           string         `json:"path,omitempty"`
	Trashed        bool           `json:"trashed"`
	AdditionalData map[string]any `json:"metaData,omitempty"`
}

// UserProfile identifies the creator or last writer of an item.
type UserProfile struct {
	UserID int    `json:"id"`
	Name   string `json:"name"`
}

// LanguageDisplay is a configured language.
type LanguageDisplay struct {
	ID          int    `json:"id"`
	IsoCode     string `json:"culture"`
	Name        string `json:"name"`
	IsDefault   bool   `json:"isDefault"`
	IsMandatory bool   `json:"isMandatory"`
}

// PropertyValidation holds the validation rules rendered next to a property.
type PropertyValidation struct {
	Mandatory        bool   `json:"mandatory"`
	MandatoryMessage string `json:"mandatoryMessage,omitempty"`
	Pattern          string `json:"pattern,omitempty"`
	PatternMessage   string `json:"patternMessage,omitempty"`
}
