package editing

import (
	"time"

	"github.com/google/uuid"
)

// ContentPropertyBasic is a property value without editor metadata.
type ContentPropertyBasic struct {
	ID          int    `json:"id"`
	Alias       string `json:"alias"`
	Value       any    `json:"value"`
	Editor      string `json:"editor,omitempty"`
	Culture     string `json:"culture,omitempty"`
	Segment     string `json:"segment,omitempty"`
	IsSensitive bool   `json:"isSensitive"`
	Readonly    bool   `json:"readonly"`
}

// ContentPropertyDisplay is a property as rendered inside a tab.
type ContentPropertyDisplay struct {
	ContentPropertyBasic

	Label       string             `json:"label"`
	Description string             `json:"description,omitempty"`
	View        string             `json:"view"`
	Config      map[string]any     `json:"config,omitempty"`
	HideLabel   bool               `json:"hideLabel"`
	LabelOnTop  bool               `json:"labelOnTop"`
	Validation  PropertyValidation `json:"validation"`
}

// ContentPropertyDto is the persistence-facing property projection.
type ContentPropertyDto struct {
	ID                  int                `json:"id"`
	Alias               string             `json:"alias"`
	Value               any                `json:"value"`
	Label               string             `json:"label"`
	Description         string             `json:"description,omitempty"`
	DataTypeID          int                `json:"dataTypeId"`
	PropertyEditorAlias string             `json:"propertyEditorAlias"`
	ValueType           string             `json:"valueType"`
	Culture             string             `json:"culture,omitempty"`
	Segment             string             `json:"segment,omitempty"`
	Validation          PropertyValidation `json:"validation"`
}

// ContentPropertyCollectionDto wraps the persistence-facing properties of an item.
type ContentPropertyCollectionDto struct {
	Properties []*ContentPropertyDto `json:"properties"`
}

// Tab is a named group of properties.
type Tab struct {
	ID         int                       `json:"id"`
	Key        uuid.UUID                 `json:"key"`
	Alias      string                    `json:"alias"`
	Label      string                    `json:"label"`
	Type       string                    `json:"type"`
	IsActive   bool                      `json:"active"`
	Properties []*ContentPropertyDisplay `json:"properties"`
}

// ContentVariantDisplay is one culture (or the invariant) variant of a document.
type ContentVariantDisplay struct {
	Name           string           `json:"name"`
	DisplayName    string           `json:"displayName"`
	Language       *LanguageDisplay `json:"language,omitempty"`
	Segment        string           `json:"segment,omitempty"`
	State          SavedState       `json:"state"`
	CreateDate     time.Time        `json:"createDate"`
	UpdateDate     time.Time        `json:"updateDate"`
	PublishDate    *time.Time       `json:"publishDate,omitempty"`
	Tabs           []*Tab           `json:"tabs"`
	AllowedActions []string         `json:"allowedActions"`
}

// ContentVariantScheduleDisplay is a variant with its scheduled release and expiry.
type ContentVariantScheduleDisplay struct {
	ContentVariantDisplay

	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	ExpireDate  *time.Time `json:"expireDate,omitempty"`
}

// ContentItemHeader carries the item level fields shared by the display models.
type ContentItemHeader struct {
	ID                int                           `json:"id"`
	Key               uuid.UUID                     `json:"key"`
	Udi               string                        `json:"udi"`
	Icon              string                        `json:"icon"`
	ParentID          int                           `json:"parentId"`
	Path              string                        `json:"path"`
	SortOrder         int                           `json:"sortOrder"`
	Trashed           bool                          `json:"trashed"`
	UpdateDate        time.Time                     `json:"updateDate"`
	Owner             *UserProfile                  `json:"owner,omitempty"`
	Updater           *UserProfile                  `json:"updater,omitempty"`
	ContentTypeID     int                           `json:"contentTypeId"`
	ContentTypeKey    uuid.UUID                     `json:"contentTypeKey"`
	ContentTypeAlias  string                        `json:"contentTypeAlias"`
	ContentTypeName   string                        `json:"contentTypeName"`
	DocumentType      *ContentTypeBasic             `json:"documentType,omitempty"`
	IsBlueprint       bool                          `json:"isBlueprint"`
	IsChildOfListView bool                          `json:"isChildOfListView"`
	IsContainer       bool                          `json:"isContainer"`
	IsElement         bool                          `json:"isElement"`
	AllowPreview      bool                          `json:"allowPreview"`
	AllowedActions    []string                      `json:"allowedActions"`
	AllowedTemplates  map[string]string             `json:"allowedTemplates"`
	TemplateAlias     string                        `json:"template,omitempty"`
	TemplateID        int                           `json:"templateId"`
	TreeNodeURL       string                        `json:"treeNodeUrl,omitempty"`
	ContentDto        *ContentPropertyCollectionDto `json:"-"`
	Errors            map[string]string             `json:"errors,omitempty"`
}

// ContentItemDisplay is the full editor model of a document.
type ContentItemDisplay struct {
	ContentItemHeader

	Variants []*ContentVariantDisplay `json:"variants"`
}

// ContentItemDisplayWithSchedule is the editor model used by the scheduled publishing dialog.
type ContentItemDisplayWithSchedule struct {
	ContentItemHeader

	Variants []*ContentVariantScheduleDisplay `json:"variants"`
}

// ContentItemBasic is the list/tree projection of a content item.
type ContentItemBasic struct {
	ID               int                     `json:"id"`
	Key              uuid.UUID               `json:"key"`
	Udi              string                  `json:"udi"`
	Name             string                  `json:"name"`
	Icon             string                  `json:"icon"`
	ParentID         int                     `json:"parentId"`
	Path             string                  `json:"path"`
	SortOrder        int                     `json:"sortOrder"`
	Trashed          bool                    `json:"trashed"`
	Edited           bool                    `json:"edited"`
	CreateDate       time.Time               `json:"createDate"`
	UpdateDate       time.Time               `json:"updateDate"`
	Owner            *UserProfile            `json:"owner,omitempty"`
	Updater          *UserProfile            `json:"updater,omitempty"`
	ContentTypeID    int                     `json:"contentTypeId"`
	ContentTypeAlias string                  `json:"contentTypeAlias"`
	State            *SavedState             `json:"state,omitempty"`
	VariesByCulture  bool                    `json:"variesByCulture"`
	Properties       []*ContentPropertyBasic `json:"properties"`
}

// ContentVariantSave is one posted variant of a document.
type ContentVariantSave struct {
	Culture    string                  `json:"culture,omitempty"`
	Segment    string                  `json:"segment,omitempty"`
	Name       string                  `json:"name"`
	Save       bool                    `json:"save"`
	Publish    bool                    `json:"publish"`
	Properties []*ContentPropertyBasic `json:"properties"`
}

// ContentItemSave is the posted edit payload of a document.
type ContentItemSave struct {
	ID               int                   `json:"id"`
	ParentID         int                   `json:"parentId"`
	ContentTypeAlias string                `json:"contentTypeAlias"`
	TemplateAlias    string                `json:"templateAlias,omitempty"`
	Variants         []*ContentVariantSave `json:"variants"`
}

// MediaItemDisplay is the editor model of a media item.
type MediaItemDisplay struct {
	ID                int               `json:"id"`
	Key               uuid.UUID         `json:"key"`
	Udi               string            `json:"udi"`
	Name              string            `json:"name"`
	Icon              string            `json:"icon"`
	ParentID          int               `json:"parentId"`
	Path              string            `json:"path"`
	SortOrder         int               `json:"sortOrder"`
	Trashed           bool              `json:"trashed"`
	CreateDate        time.Time         `json:"createDate"`
	UpdateDate        time.Time         `json:"updateDate"`
	Owner             *UserProfile      `json:"owner,omitempty"`
	ContentTypeID     int               `json:"contentTypeId"`
	ContentTypeAlias  string            `json:"contentTypeAlias"`
	ContentTypeName   string            `json:"contentTypeName"`
	ContentType       *ContentTypeBasic `json:"contentType,omitempty"`
	IsChildOfListView bool              `json:"isChildOfListView"`
	IsContainer       bool              `json:"isContainer"`
	MediaLink         string            `json:"mediaLink,omitempty"`
	Tabs              []*Tab            `json:"tabs"`
}

// MemberDisplay is the editor model of a member.
type MemberDisplay struct {
	ID               int          `json:"id"`
	Key              uuid.UUID    `json:"key"`
	Udi              string       `json:"udi"`
	Name             string       `json:"name"`
	Icon             string       `json:"icon"`
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	IsApproved       bool         `json:"isApproved"`
	IsLockedOut      bool         `json:"isLockedOut"`
	MemberGroups     []string     `json:"memberGroups"`
	CreateDate       time.Time    `json:"createDate"`
	UpdateDate       time.Time    `json:"updateDate"`
	Owner            *UserProfile `json:"owner,omitempty"`
	ContentTypeID    int          `json:"contentTypeId"`
	ContentTypeAlias string       `json:"contentTypeAlias"`
	ContentTypeName  string       `json:"contentTypeName"`
	Tabs             []*Tab       `json:"tabs"`
}

// MemberBasic is the list projection of a member.
type MemberBasic struct {
	ID               int                     `json:"id"`
	Key              uuid.UUID               `json:"key"`
	Udi              string                  `json:"udi"`
	Name             string                  `json:"name"`
	Icon             string                  `json:"icon"`
	Username         string                  `json:"username"`
	Email            string                  `json:"email"`
	IsApproved       bool                    `json:"isApproved"`
	IsLockedOut      bool                    `json:"isLockedOut"`
	CreateDate       time.Time               `json:"createDate"`
	UpdateDate       time.Time               `json:"updateDate"`
	ContentTypeAlias string                  `json:"contentTypeAlias"`
	Properties       []*ContentPropertyBasic `json:"properties"`
}
