package maps

import (
	"errors"
	"time"

	"cms-mapper/internal/editors"
	"cms-mapper/internal/mapping"
	"cms-mapper/internal/services"
)

// Context item keys understood by the map definitions.
const (
	// ItemParent holds the *entity.Content parent of the item being mapped.
	// Without it the parent is looked up through the content service.
	ItemParent = "Parent"
	// ItemCurrentUser holds the *entity.User the editor model is built for.
	ItemCurrentUser = "CurrentUser"
	// ItemPermissions holds a map[string][]string of permissions by path,
	// computed earlier for ItemCurrentUser.
	ItemPermissions = "Permissions"
	// ItemSchedule holds the Schedule of the content being mapped.
	ItemSchedule = "Schedule"
	// ItemScheduledVariants holds the []*editing.ContentVariantScheduleDisplay
	// whose dates are carried over when display variants are converted back.
	ItemScheduledVariants = "Variants"
	// ItemSensitiveAccess holds a bool granting access to sensitive member data.
	ItemSensitiveAccess = "SensitiveAccess"
	// ItemDictionaryLevel holds the int tree level of a dictionary item.
	ItemDictionaryLevel = "DictionaryLevel"
)

var (
	// ErrNoPropertyEditor is returned when a value must be mapped with an
	// editor that is not registered and no fallback applies.
	ErrNoPropertyEditor = errors.New("no property editor found")
	// ErrDuplicateAlias is returned when a save-merge ends with two properties
	// or two groups sharing an alias.
	ErrDuplicateAlias = errors.New("alias conflict")
	// ErrUnknownComposition is returned when a saved content type names a
	// composition that does not exist.
	ErrUnknownComposition = errors.New("unknown composition")
	// ErrMissingSchedule is returned when scheduled variants are mapped
	// without a Schedule item.
	ErrMissingSchedule = errors.New("schedule required in mapping context")
)

// Services are the collaborators the map definitions consult.
type Services struct {
	Content      services.ContentService
	ContentTypes services.ContentTypeService
	DataTypes    services.DataTypeService
	Files        services.FileService
	Users        services.UserService
	Text         services.LocalizedTextService
	Languages    services.LanguageService
	Identity     services.IdentitySource
	Editors      *editors.Collection

	// BackOfficePath prefixes icon and tree urls.
	BackOfficePath string
	// Now stamps culture names set by a save. Defaults to time.Now.
	Now func() time.Time
}

type mapper struct {
	svc Services
}

// Register adds every map definition to b.
func Register(b *mapping.Builder, svc Services) {
	if svc.Editors == nil {
		svc.Editors = editors.Default()
	}

	if svc.Now == nil {
		svc.Now = time.Now
	}

	if svc.Identity == nil {
		svc.Identity = services.NewSequence(0)
	}

	if svc.BackOfficePath == "" {
		svc.BackOfficePath = "/umbraco"
	}

	m := &mapper{svc: svc}

	m.registerProperties(b)
	m.registerContent(b)
	m.registerSchedule(b)
	m.registerMedia(b)
	m.registerMember(b)
	m.registerContentTypes(b)
	m.registerContentTypeSave(b)
	m.registerDataTypes(b)
	m.registerUsers(b)
	m.registerRelations(b)
	m.registerMacros(b)
	m.registerDictionary(b)
}

// NewRegistry builds a registry holding every map definition.
func NewRegistry(svc Services) (*mapping.Registry, error) {
	b := mapping.NewBuilder()
	Register(b, svc)

	return b.Build()
}
