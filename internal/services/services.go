// Package services declares the collaborators the map definitions consult:
// content and content type lookups, data types, templates, users, languages
// and localized text. MemoryStore implements all of them over in-memory maps.
package services

import (
	"errors"

	"cms-mapper/internal/entity"
)

// ErrNotFound is returned by lookups that find nothing.
var ErrNotFound = errors.New("not found")

// ContentService looks up content items.
type ContentService interface {
	GetContent(id int) (*entity.Content, error)
	GetMedia(id int) (*entity.Media, error)
}

// ContentTypeService looks up document, media and member types.
type ContentTypeService interface {
	GetContentType(id int) (*entity.ContentType, error)
	GetContentTypeByAlias(kind entity.ContentKind, alias string) (*entity.ContentType, error)
	GetAllContentTypes(kind entity.ContentKind) ([]*entity.ContentType, error)
	// HasContainerInPath reports whether any of the ids is a container (list view) type's content.
	HasContainerInPath(ids []int) (bool, error)
}

// DataTypeService looks up data types.
type DataTypeService interface {
	GetDataType(id int) (*entity.DataType, error)
	GetDataTypeByName(name string) (*entity.DataType, error)
}

// FileService looks up templates.
type FileService interface {
	GetTemplate(id int) (*entity.Template, error)
	GetTemplateByAlias(alias string) (*entity.Template, error)
}

// UserService looks up users and their permissions.
type UserService interface {
	GetUser(id int) (*entity.User, error)
	// GetPermissionsForPath returns the action letters the user holds on the node at path.
	GetPermissionsForPath(user *entity.User, path string) ([]string, error)
}

// LocalizedTextService resolves UI strings.
type LocalizedTextService interface {
	Localize(area, alias, culture string) string
	// TranslateDictionary resolves "#key" through the dictionary and returns
	// other text unchanged.
	TranslateDictionary(text, culture string) string
}

// LanguageService enumerates configured languages.
type LanguageService interface {
	GetAllLanguages() []*entity.Language
	GetDefaultLanguageIsoCode() string
}

// IdentitySource hands out ids to entities created by a save-merge.
type IdentitySource interface {
	NextID() int
}
