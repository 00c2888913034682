package entity

import (
	"time"

	"github.com/google/uuid"
)

// RelationType describes a kind of relation between two object types.
type RelationType struct {
	ID               int
	Key              uuid.UUID
	Alias            string
	Name             string
	IsBidirectional  bool
	IsDependency     bool
	ParentObjectType ContentKind
	ChildObjectType  ContentKind
}

// Relation links a parent item to a child item.
type Relation struct {
	ID         int
	ParentID   int
	ChildID    int
	Comment    string
	CreateDate time.Time
	Type       *RelationType
}

// MacroProperty is a parameter of a macro.
type MacroProperty struct {
	Key         uuid.UUID
	Alias       string
	Name        string
	EditorAlias string
	SortOrder   int
}

// Macro is a reusable rendering snippet with parameters.
type Macro struct {
	ID            int
	Key           uuid.UUID
	Alias         string
	Name          string
	Source        string
	CacheDuration int
	CacheByPage   bool
	CacheByMember bool
	UseInEditor   bool
	DontRender    bool
	Properties    []MacroProperty
}

// DictionaryTranslation is the value of a dictionary item in one language.
type DictionaryTranslation struct {
	LanguageID int
	Value      string
}

// DictionaryItem is a translatable key.
type DictionaryItem struct {
	ID           int
	Key          uuid.UUID
	ItemKey      string
	ParentID     *uuid.UUID
	Translations []DictionaryTranslation
}

// Translation returns the value for a language id.
func (d *DictionaryItem) Translation(languageID int) (string, bool) {
	for _, t := range d.Translations {
		if t.LanguageID == languageID {
			return t.Value, true
		}
	}

	return "", false
}
