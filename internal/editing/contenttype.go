package editing

import (
	"time"

	"github.com/google/uuid"
)

// ContentTypeBasic is the list projection of a document, media or member type.
type ContentTypeBasic struct {
	ID                int       `json:"id"`
	Key               uuid.UUID `json:"key"`
	Udi               string    `json:"udi"`
	Alias             string    `json:"alias"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Icon              string    `json:"icon"`
	IconFilePath      string    `json:"iconFilePath"`
	Thumbnail         string    `json:"thumbnail,omitempty"`
	ThumbnailFilePath string    `json:"thumbnailFilePath"`
	ParentID          int       `json:"parentId"`
	Path              string    `json:"path"`
	Trashed           bool      `json:"trashed"`
	IsContainer       bool      `json:"isContainer"`
	IsElement         bool      `json:"isElement"`
	Variations        string    `json:"variations"`
	CreateDate        time.Time `json:"createDate"`
	UpdateDate        time.Time `json:"updateDate"`
}

// IconIsClass reports whether the icon is a css class rather than an image file.
func (b *ContentTypeBasic) IconIsClass() bool {
	return isClass(b.Icon)
}

// ThumbnailIsClass reports whether the thumbnail is a css class rather than an image file.
func (b *ContentTypeBasic) ThumbnailIsClass() bool {
	return isClass(b.Thumbnail)
}

func isClass(s string) bool {
	if s == "" {
		return true
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return false
		}
	}

	return true
}

// PropertyTypeDisplay is a property type inside the content type editor.
type PropertyTypeDisplay struct {
	ID                  int                `json:"id"`
	Key                 uuid.UUID          `json:"key"`
	Alias               string             `json:"alias"`
	Label               string             `json:"label"`
	Description         string             `json:"description,omitempty"`
	DataTypeID          int                `json:"dataTypeId"`
	DataTypeKey         uuid.UUID          `json:"dataTypeKey"`
	DataTypeName        string             `json:"dataTypeName"`
	Editor              string             `json:"editor"`
	View                string             `json:"view"`
	Config              map[string]any     `json:"config,omitempty"`
	Validation          PropertyValidation `json:"validation"`
	SortOrder           int                `json:"sortOrder"`
	GroupID             int                `json:"groupId"`
	Inherited           bool               `json:"inherited"`
	ContentTypeID       int                `json:"contentTypeId"`
	ContentTypeName     string             `json:"contentTypeName"`
	AllowCultureVariant bool               `json:"allowCultureVariant"`
	AllowSegmentVariant bool               `json:"allowSegmentVariant"`
	LabelOnTop          bool               `json:"labelOnTop"`

	// Member types only.
	MemberCanViewProperty bool `json:"memberCanViewProperty"`
	MemberCanEditProperty bool `json:"memberCanEditProperty"`
	IsSensitiveData       bool `json:"isSensitiveData"`
}

// PropertyGroupDisplay is a group of the content type editor, possibly merged
// from several compositions.
type PropertyGroupDisplay struct {
	ID                        int                    `json:"id"`
	Key                       uuid.UUID              `json:"key"`
	Alias                     string                 `json:"alias"`
	Name                      string                 `json:"name"`
	Type                      string                 `json:"type"`
	SortOrder                 int                    `json:"sortOrder"`
	Inherited                 bool                   `json:"inherited"`
	ContentTypeID             int                    `json:"contentTypeId"`
	ParentTabContentTypes     []int                  `json:"parentTabContentTypes"`
	ParentTabContentTypeNames []string               `json:"parentTabContentTypeNames"`
	IsGenericProperties       bool                   `json:"isGenericProperties"`
	Properties                []*PropertyTypeDisplay `json:"properties"`
}

// ContentTypeCompositionDisplay carries the editor fields shared by all content type kinds.
type ContentTypeCompositionDisplay struct {
	ContentTypeBasic

	AllowAsRoot                 bool                    `json:"allowAsRoot"`
	AllowCultureVariant         bool                    `json:"allowCultureVariant"`
	AllowSegmentVariant         bool                    `json:"allowSegmentVariant"`
	AllowedContentTypes         []int                   `json:"allowedContentTypes"`
	CompositeContentTypes       []string                `json:"compositeContentTypes"`
	LockedCompositeContentTypes []string                `json:"lockedCompositeContentTypes"`
	Groups                      []*PropertyGroupDisplay `json:"groups"`
	ListViewEditorName          string                  `json:"listViewEditorName,omitempty"`
}

// DocumentTypeDisplay is the editor model of a document type.
type DocumentTypeDisplay struct {
	ContentTypeCompositionDisplay

	AllowedTemplates []*EntityBasic `json:"allowedTemplates"`
	DefaultTemplate  *EntityBasic   `json:"defaultTemplate,omitempty"`
}

// MediaTypeDisplay is the editor model of a media type.
type MediaTypeDisplay struct {
	ContentTypeCompositionDisplay

	IsSystemMediaType bool `json:"isSystemMediaType"`
}

// MemberTypeDisplay is the editor model of a member type.
type MemberTypeDisplay struct {
	ContentTypeCompositionDisplay
}

// PropertyTypeBasic is a posted property type.
type PropertyTypeBasic struct {
	ID                  int                `json:"id"`
	Key                 uuid.UUID          `json:"key"`
	Alias               string             `json:"alias"`
	Label               string             `json:"label"`
	Description         string             `json:"description,omitempty"`
	DataTypeID          int                `json:"dataTypeId"`
	DataTypeKey         uuid.UUID          `json:"dataTypeKey"`
	GroupID             int                `json:"groupId"`
	SortOrder           int                `json:"sortOrder"`
	Inherited           bool               `json:"inherited"`
	Validation          PropertyValidation `json:"validation"`
	AllowCultureVariant bool               `json:"allowCultureVariant"`
	AllowSegmentVariant bool               `json:"allowSegmentVariant"`
	LabelOnTop          bool               `json:"labelOnTop"`

	MemberCanViewProperty bool `json:"memberCanViewProperty"`
	MemberCanEditProperty bool `json:"memberCanEditProperty"`
	IsSensitiveData       bool `json:"isSensitiveData"`
}

// PropertyGroupBasic is a posted property group.
type PropertyGroupBasic struct {
	ID                  int                  `json:"id"`
	Key                 uuid.UUID            `json:"key"`
	Alias               string               `json:"alias"`
	Name                string               `json:"name"`
	Type                string               `json:"type"`
	SortOrder           int                  `json:"sortOrder"`
	Inherited           bool                 `json:"inherited"`
	IsGenericProperties bool                 `json:"isGenericProperties"`
	Properties          []*PropertyTypeBasic `json:"properties"`
}

// ContentTypeSave is the posted edit payload of a document, media or member type.
type ContentTypeSave struct {
	ID                    int                   `json:"id"`
	Key                   uuid.UUID             `json:"key"`
	Alias                 string                `json:"alias"`
	Name                  string                `json:"name"`
	Description           string                `json:"description,omitempty"`
	Icon                  string                `json:"icon"`
	Thumbnail             string                `json:"thumbnail,omitempty"`
	ParentID              int                   `json:"parentId"`
	Path                  string                `json:"path"`
	IsContainer           bool                  `json:"isContainer"`
	IsElement             bool                  `json:"isElement"`
	AllowAsRoot           bool                  `json:"allowAsRoot"`
	AllowCultureVariant   bool                  `json:"allowCultureVariant"`
	AllowSegmentVariant   bool                  `json:"allowSegmentVariant"`
	AllowedContentTypes   []int                 `json:"allowedContentTypes"`
	CompositeContentTypes []string              `json:"compositeContentTypes"`
	Groups                []*PropertyGroupBasic `json:"groups"`
	AllowedTemplates      []string              `json:"allowedTemplates"`
	DefaultTemplate       string                `json:"defaultTemplate,omitempty"`
}

// AvailableComposition is one entry of the composition picker.
type AvailableComposition struct {
	Composition *EntityBasic `json:"contentType"`
	Allowed     bool         `json:"allowed"`
}
