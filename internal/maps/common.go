package maps

import (
	"errors"
	"fmt"
	"strings"

	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
	"cms-mapper/internal/services"
)

const templateIcon = "icon-layout"

func pairName[S, T any]() string {
	return mapping.PairOf[S, T]().String()
}

// profile returns the profile of a user id, nil when the user is unknown.
func (m *mapper) profile(id int) *editing.UserProfile {
	if m.svc.Users == nil {
		return nil
	}

	u, err := m.svc.Users.GetUser(id)
	if err != nil {
		return nil
	}

	return &editing.UserProfile{UserID: u.ID, Name: u.Name}
}

func (m *mapper) translate(text, culture string) string {
	if m.svc.Text == nil {
		return text
	}

	return m.svc.Text.TranslateDictionary(text, culture)
}

func (m *mapper) localize(area, alias, culture string) string {
	if m.svc.Text == nil {
		return "[" + alias + "]"
	}

	return m.svc.Text.Localize(area, alias, culture)
}

func (m *mapper) backOffice() string {
	return strings.TrimSuffix(m.svc.BackOfficePath, "/")
}

func (m *mapper) iconFilePath(b *editing.ContentTypeBasic) string {
	if b.IconIsClass() {
		return ""
	}

	return m.backOffice() + "/images/umbraco/" + b.Icon
}

func (m *mapper) thumbnailFilePath(b *editing.ContentTypeBasic) string {
	if b.ThumbnailIsClass() {
		return ""
	}

	return m.backOffice() + "/images/thumbnails/" + b.Thumbnail
}

func (m *mapper) treeNodeURL(tree string, id int) string {
	return fmt.Sprintf("%s/backoffice/UmbracoTrees/%s/GetTreeNode/%d", m.backOffice(), tree, id)
}

func templateEntity(t *entity.Template) *editing.EntityBasic {
	if t == nil {
		return nil
	}

	return &editing.EntityBasic{
		ID:       t.ID,
		Key:      t.Key,
		Udi:      entity.Udi("template", t.Key),
		Name:     t.Name,
		Alias:    t.Alias,
		Icon:     templateIcon,
		ParentID: entity.RootID,
	}
}

func languageDisplay(l *entity.Language) *editing.LanguageDisplay {
	if l == nil {
		return nil
	}

	return &editing.LanguageDisplay{
		ID:          l.ID,
		IsoCode:     l.IsoCode,
		Name:        l.CultureName,
		IsDefault:   l.IsDefault,
		IsMandatory: l.IsMandatory,
	}
}

func contentEntity(c *entity.ContentBase, udiType string) *editing.EntityBasic {
	e := &editing.EntityBasic{
		ID:       c.ID,
		Key:      c.Key,
		Udi:      entity.Udi(udiType, c.Key),
		Name:     c.Name,
		ParentID: c.ParentID,
		Path:     c.Path,
		Trashed:  c.Trashed,
	}

	if c.ContentType != nil {
		e.Icon = c.ContentType.Icon
		e.Alias = c.ContentType.Alias
	}

	return e
}

// notFound reports whether err is a lookup miss.
func notFound(err error) bool {
	return errors.Is(err, services.ErrNotFound)
}

// languages returns the configured languages and the default iso code.
func (m *mapper) languages() ([]*entity.Language, string) {
	if m.svc.Languages == nil {
		return nil, ""
	}

	all := m.svc.Languages.GetAllLanguages()
	def := m.svc.Languages.GetDefaultLanguageIsoCode()

	if def == "" {
		for _, l := range all {
			if l.IsDefault {
				def = l.IsoCode
				break
			}
		}
	}

	return all, def
}
