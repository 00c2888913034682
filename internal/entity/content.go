package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PropertyValue is one value slot of a property. Culture and Segment are
// empty for the invariant slot.
type PropertyValue struct {
	Culture        string
	Segment        string
	EditedValue    any
	PublishedValue any
}

// Property is a typed value holder of a content item.
type Property struct {
	ID           int
	PropertyType *PropertyType
	Values       []*PropertyValue
}

// Alias returns the alias of the property type.
func (p *Property) Alias() string {
	if p.PropertyType == nil {
		return ""
	}

	return p.PropertyType.Alias
}

// GetValue returns the edited (or published) value stored for the exact culture/segment slot.
func (p *Property) GetValue(culture, segment string, published bool) any {
	pv := p.slot(culture, segment)
	if pv == nil {
		return nil
	}

	if published {
		return pv.PublishedValue
	}

	return pv.EditedValue
}

// SetValue sets the edited value of the culture/segment slot, adding the slot when missing.
func (p *Property) SetValue(value any, culture, segment string) {
	if pv := p.slot(culture, segment); pv != nil {
		pv.EditedValue = value
		return
	}

	p.Values = append(p.Values, &PropertyValue{Culture: culture, Segment: segment, EditedValue: value})
}

func (p *Property) slot(culture, segment string) *PropertyValue {
	for _, pv := range p.Values {
		if strings.EqualFold(pv.Culture, culture) && strings.EqualFold(pv.Segment, segment) {
			return pv
		}
	}

	return nil
}

// CultureInfo holds the per culture name and update date of a variant item.
type CultureInfo struct {
	Culture string
	Name    string
	Date    time.Time
}

// ContentBase is shared by documents, media and members.
type ContentBase struct {
	ID        int
	Key       uuid.UUID
	ParentID  int
	Path      string
	Level     int
	SortOrder int
	Name      string
	CreatorID int
	WriterID  int
	Trashed   bool

	CreateDate time.Time
	UpdateDate time.Time

	ContentType *ContentType
	Properties  []*Property

	// CultureInfos is keyed by lower-cased culture code.
	CultureInfos map[string]CultureInfo
}

// HasIdentity reports whether the item has been persisted.
func (c *ContentBase) HasIdentity() bool {
	return c.ID > 0
}

// Property returns the property with the given alias (case insensitive), or nil.
func (c *ContentBase) Property(alias string) *Property {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Alias(), alias) {
			return p
		}
	}

	return nil
}

// CultureName returns the name stored for a culture.
func (c *ContentBase) CultureName(culture string) (string, bool) {
	ci, ok := c.CultureInfos[strings.ToLower(culture)]
	if !ok {
		return "", false
	}

	return ci.Name, true
}

// CultureUpdateDate returns the update date stored for a culture.
func (c *ContentBase) CultureUpdateDate(culture string) (time.Time, bool) {
	ci, ok := c.CultureInfos[strings.ToLower(culture)]
	if !ok || ci.Date.IsZero() {
		return time.Time{}, false
	}

	return ci.Date, true
}

// IsCultureAvailable reports whether the item has a name for the culture.
func (c *ContentBase) IsCultureAvailable(culture string) bool {
	name, ok := c.CultureName(culture)
	return ok && strings.TrimSpace(name) != ""
}

// AvailableCultures returns the cultures the item has a name for, sorted.
func (c *ContentBase) AvailableCultures() []string {
	result := make([]string, 0, len(c.CultureInfos))
	for _, ci := range c.CultureInfos {
		if strings.TrimSpace(ci.Name) != "" {
			result = append(result, ci.Culture)
		}
	}

	slices.Sort(result)

	return result
}

// SetCultureName sets the name and date of a culture.
func (c *ContentBase) SetCultureName(name, culture string, date time.Time) {
	if c.CultureInfos == nil {
		c.CultureInfos = make(map[string]CultureInfo)
	}

	c.CultureInfos[strings.ToLower(culture)] = CultureInfo{Culture: culture, Name: name, Date: date}
}

// Content is a document.
type Content struct {
	ContentBase

	Published   bool
	Edited      bool
	Blueprint   bool
	TemplateID  *int
	PublishDate *time.Time

	// PublishedCultures and EditedCultures are keyed by lower-cased culture code.
	PublishedCultures map[string]bool
	EditedCultures    map[string]bool
}

// IsCulturePublished reports whether the culture has a published version.
func (c *Content) IsCulturePublished(culture string) bool {
	return c.PublishedCultures[strings.ToLower(culture)]
}

// IsCultureEdited reports whether the culture has unpublished changes.
func (c *Content) IsCultureEdited(culture string) bool {
	return c.EditedCultures[strings.ToLower(culture)]
}

// Media is a media item.
type Media struct {
	ContentBase
}

// Member is a site member.
type Member struct {
	ContentBase

	Username    string
	Email       string
	IsApproved  bool
	IsLockedOut bool
	Groups      []string

	LastLoginDate          time.Time
	LastLockoutDate        time.Time
	LastPasswordChangeDate time.Time
	FailedPasswordAttempts int
}

// Template is a rendering template a document type may allow.
type Template struct {
	ID    int
	Key   uuid.UUID
	Alias string
	Name  string
}
