package editing

import (
	"time"

	"github.com/google/uuid"
)

// PropertyEditorBasic is a registered property editor offered when editing a data type.
type PropertyEditorBasic struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Group string `json:"group,omitempty"`
}

// DataTypeBasic is the list projection of a data type.
type DataTypeBasic struct {
	ID               int       `json:"id"`
	Key              uuid.UUID `json:"key"`
	Udi              string    `json:"udi"`
	Name             string    `json:"name"`
	Alias            string    `json:"alias"`
	Icon             string    `json:"icon"`
	Group            string    `json:"group,omitempty"`
	ParentID         int       `json:"parentId"`
	Path             string    `json:"path"`
	Trashed          bool      `json:"trashed"`
	IsSystemDataType bool      `json:"isSystem"`
}

// DataTypeConfigurationFieldDisplay is one configuration field with its persisted value.
type DataTypeConfigurationFieldDisplay struct {
	Key         string         `json:"key"`
	Name        string         `json:"label"`
	Description string         `json:"description,omitempty"`
	View        string         `json:"view"`
	HideLabel   bool           `json:"hideLabel"`
	Config      map[string]any `json:"config,omitempty"`
	Value       any            `json:"value"`
}

// DataTypeDisplay is the editor model of a data type.
type DataTypeDisplay struct {
	DataTypeBasic

	SelectedEditor   string                               `json:"selectedEditor"`
	AvailableEditors []*PropertyEditorBasic               `json:"availableEditors"`
	PreValues        []*DataTypeConfigurationFieldDisplay `json:"preValues"`
	HasPrevalues     bool                                 `json:"hasPrevalues"`
}

// DataTypeConfigurationFieldSave is one posted configuration value.
type DataTypeConfigurationFieldSave struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// DataTypeSave is the posted edit payload of a data type.
type DataTypeSave struct {
	ID                  int                               `json:"id"`
	Name                string                            `json:"name"`
	ParentID            int                               `json:"parentId"`
	EditorAlias         string                            `json:"selectedEditor"`
	ConfigurationFields []*DataTypeConfigurationFieldSave `json:"preValues"`
}

// UserGroupBasic is the list projection of a user group.
type UserGroupBasic struct {
	ID           int                `json:"id"`
	Key          uuid.UUID          `json:"key"`
	Alias        string             `json:"alias"`
	Name         string             `json:"name"`
	Icon         string             `json:"icon"`
	Sections     []string           `json:"sections"`
	StartContent *EntityBasic       `json:"contentStartNode,omitempty"`
	StartMedia   *EntityBasic       `json:"mediaStartNode,omitempty"`
	Languages    []*LanguageDisplay `json:"languages"`
	UserCount    int                `json:"userCount"`
}

// UserBasic is the list projection of a back office user.
type UserBasic struct {
	ID            int               `json:"id"`
	Key           uuid.UUID         `json:"key"`
	Udi           string            `json:"udi"`
	Name          string            `json:"name"`
	Username      string            `json:"username"`
	Email         string            `json:"email"`
	EmailHash     string            `json:"emailHash"`
	Culture       string            `json:"culture"`
	UserState     string            `json:"userState"`
	LastLoginDate *time.Time        `json:"lastLoginDate,omitempty"`
	UserGroups    []*UserGroupBasic `json:"userGroups"`
	ParentID      int               `json:"parentId"`
	Path          string            `json:"path"`
}

// UserDisplay is the editor model of a back office user.
type UserDisplay struct {
	UserBasic

	CreateDate                time.Time         `json:"createDate"`
	UpdateDate                time.Time         `json:"updateDate"`
	LastLockoutDate           *time.Time        `json:"lastLockoutDate,omitempty"`
	LastPasswordChangeDate    *time.Time        `json:"lastPasswordChangeDate,omitempty"`
	FailedPasswordAttempts    int               `json:"failedPasswordAttempts"`
	StartContentIDs           []*EntityBasic    `json:"startContentIds"`
	StartMediaIDs             []*EntityBasic    `json:"startMediaIds"`
	CalculatedStartContentIDs []*EntityBasic    `json:"calculatedStartContentIds"`
	CalculatedStartMediaIDs   []*EntityBasic    `json:"calculatedStartMediaIds"`
	AllowedSections           []string          `json:"allowedSections"`
	AvailableCultures         map[string]string `json:"availableCultures"`
}

// RelationDisplay is one relation between two items.
type RelationDisplay struct {
	ParentID   int       `json:"parentId"`
	ParentName string    `json:"parentName"`
	ChildID    int       `json:"childId"`
	ChildName  string    `json:"childName"`
	CreateDate time.Time `json:"createDate"`
	Comment    string    `json:"comment,omitempty"`
}

// RelationTypeDisplay is the editor model of a relation type.
type RelationTypeDisplay struct {
	ID                   int       `json:"id"`
	Key                  uuid.UUID `json:"key"`
	Udi                  string    `json:"udi"`
	Alias                string    `json:"alias"`
	Name                 string    `json:"name"`
	IsBidirectional      bool      `json:"isBidirectional"`
	IsDependency         bool      `json:"isDependency"`
	ParentObjectType     string    `json:"parentObjectType"`
	ChildObjectType      string    `json:"childObjectType"`
	ParentObjectTypeName string    `json:"parentObjectTypeName"`
	ChildObjectTypeName  string    `json:"childObjectTypeName"`
}

// MacroParameterDisplay is one parameter of a macro.
type MacroParameterDisplay struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Editor    string `json:"editor"`
	View      string `json:"view"`
	SortOrder int    `json:"sortOrder"`
}

// MacroDisplay is the editor model of a macro.
type MacroDisplay struct {
	ID             int                      `json:"id"`
	Key            uuid.UUID                `json:"key"`
	Udi            string                   `json:"udi"`
	Alias          string                   `json:"alias"`
	Name           string                   `json:"name"`
	Icon           string                   `json:"icon"`
	View           string                   `json:"view"`
	CachePeriod    int                      `json:"cachePeriod"`
	CacheByPage    bool                     `json:"cacheByPage"`
	CacheByUser    bool                     `json:"cacheByUser"`
	UseInEditor    bool                     `json:"useInEditor"`
	RenderInEditor bool                     `json:"renderInEditor"`
	Parameters     []*MacroParameterDisplay `json:"parameters"`
}

// DictionaryTranslationDisplay is the value of a dictionary item in one language.
type DictionaryTranslationDisplay struct {
	LanguageID  int    `json:"languageId"`
	IsoCode     string `json:"isoCode"`
	DisplayName string `json:"displayName"`
	Translation string `json:"translation"`
}

// DictionaryDisplay is the editor model of a dictionary item.
type DictionaryDisplay struct {
	ID           int                             `json:"id"`
	Key          uuid.UUID                       `json:"key"`
	Udi          string                          `json:"udi"`
	Name         string                          `json:"name"`
	ParentID     *uuid.UUID                      `json:"parentId,omitempty"`
	Translations []*DictionaryTranslationDisplay `json:"translations"`
}

// DictionaryOverviewTranslationDisplay flags whether a language has a translation.
type DictionaryOverviewTranslationDisplay struct {
	DisplayName    string `json:"displayName"`
	HasTranslation bool   `json:"hasTranslation"`
}

// DictionaryOverviewDisplay is one row of the dictionary overview.
type DictionaryOverviewDisplay struct {
	ID           int                                     `json:"id"`
	Key          uuid.UUID                               `json:"key"`
	Name         string                                  `json:"name"`
	Level        int                                     `json:"level"`
	Translations []*DictionaryOverviewTranslationDisplay `json:"translations"`
}
