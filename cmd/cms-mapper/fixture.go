package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"cms-mapper/internal/editors"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/services"
)

// Fixture is the YAML description of a site loaded into the in-memory store.
type Fixture struct {
	Languages    []LanguageFixture    `yaml:"languages"`
	DataTypes    []DataTypeFixture    `yaml:"data_types"`
	Templates    []TemplateFixture    `yaml:"templates"`
	ContentTypes []ContentTypeFixture `yaml:"content_types"`
	Users        []UserFixture        `yaml:"users"`
	Content      []ContentFixture     `yaml:"content"`
	Texts        []TextFixture        `yaml:"texts"`
}

// LanguageFixture describes a configured language.
type LanguageFixture struct {
	ID        int    `yaml:"id"`
	IsoCode   string `yaml:"iso"`
	Name      string `yaml:"name"`
	Default   bool   `yaml:"default"`
	Mandatory bool   `yaml:"mandatory"`
}

// DataTypeFixture describes a data type.
type DataTypeFixture struct {
	ID     int            `yaml:"id"`
	Name   string         `yaml:"name"`
	Editor string         `yaml:"editor"`
	Config map[string]any `yaml:"config"`
}

// TemplateFixture describes a template.
type TemplateFixture struct {
	ID    int    `yaml:"id"`
	Alias string `yaml:"alias"`
	Name  string `yaml:"name"`
}

// PropertyFixture describes a property type.
type PropertyFixture struct {
	ID            int    `yaml:"id"`
	Alias         string `yaml:"alias"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	DataType      int    `yaml:"data_type"`
	Mandatory     bool   `yaml:"mandatory"`
	Sort          int    `yaml:"sort"`
	VaryByCulture bool   `yaml:"vary_by_culture"`

	// Member types only.
	Sensitive     bool `yaml:"sensitive"`
	MemberCanView bool `yaml:"member_can_view"`
	MemberCanEdit bool `yaml:"member_can_edit"`
}

// GroupFixture describes a property group or tab.
type GroupFixture struct {
	ID         int               `yaml:"id"`
	Alias      string            `yaml:"alias"`
	Name       string            `yaml:"name"`
	Tab        bool              `yaml:"tab"`
	Sort       int               `yaml:"sort"`
	Properties []PropertyFixture `yaml:"properties"`
}

// ContentTypeFixture describes a document, media or member type.
type ContentTypeFixture struct {
	ID              int               `yaml:"id"`
	Kind            string            `yaml:"kind"`
	Alias           string            `yaml:"alias"`
	Name            string            `yaml:"name"`
	Icon            string            `yaml:"icon"`
	Parent          int               `yaml:"parent"`
	Container       bool              `yaml:"container"`
	Element         bool              `yaml:"element"`
	AllowAsRoot     bool              `yaml:"allow_as_root"`
	VaryByCulture   bool              `yaml:"vary_by_culture"`
	Compositions    []string          `yaml:"compositions"`
	AllowedChildren []string          `yaml:"allowed_children"`
	Templates       []string          `yaml:"templates"`
	DefaultTemplate string            `yaml:"default_template"`
	Groups          []GroupFixture    `yaml:"groups"`
	Properties      []PropertyFixture `yaml:"properties"`
}

// UserGroupFixture describes a user group.
type UserGroupFixture struct {
	ID           int      `yaml:"id"`
	Alias        string   `yaml:"alias"`
	Name         string   `yaml:"name"`
	Sections     []string `yaml:"sections"`
	StartContent *int     `yaml:"start_content"`
	StartMedia   *int     `yaml:"start_media"`
	Permissions  []string `yaml:"permissions"`
	Languages    []int    `yaml:"languages"`
}

// UserFixture describes a back office user.
type UserFixture struct {
	ID           int                `yaml:"id"`
	Name         string             `yaml:"name"`
	Username     string             `yaml:"username"`
	Email        string             `yaml:"email"`
	Language     string             `yaml:"language"`
	Groups       []UserGroupFixture `yaml:"groups"`
	StartContent []int              `yaml:"start_content"`
	StartMedia   []int              `yaml:"start_media"`
}

// CultureFixture is the per culture state of a content item.
type CultureFixture struct {
	Name      string    `yaml:"name"`
	Date      time.Time `yaml:"date"`
	Published bool      `yaml:"published"`
	Edited    bool      `yaml:"edited"`
}

// ContentFixture describes a document. Values are keyed by property alias,
// then by culture ("" for invariant values).
type ContentFixture struct {
	ID        int                       `yaml:"id"`
	Parent    int                       `yaml:"parent"`
	Type      string                    `yaml:"type"`
	Name      string                    `yaml:"name"`
	Sort      int                       `yaml:"sort"`
	Creator   int                       `yaml:"creator"`
	Writer    int                       `yaml:"writer"`
	Published bool                      `yaml:"published"`
	Template  string                    `yaml:"template"`
	Updated   time.Time                 `yaml:"updated"`
	Cultures  map[string]CultureFixture `yaml:"cultures"`
	Values    map[string]map[string]any `yaml:"values"`
}

// TextFixture is a localized UI string.
type TextFixture struct {
	Area    string `yaml:"area"`
	Alias   string `yaml:"alias"`
	Culture string `yaml:"culture"`
	Text    string `yaml:"text"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	return ParseFixture(data)
}

// ParseFixture parses fixture YAML.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	return &f, nil
}

func parseKind(s string) (entity.ContentKind, error) {
	switch strings.ToLower(s) {
	case "", "document":
		return entity.KindDocument, nil
	case "media":
		return entity.KindMedia, nil
	case "member":
		return entity.KindMember, nil
	default:
		return 0, fmt.Errorf("unknown content kind %q", s)
	}
}

// fixtureKey derives a stable key so repeated runs print the same udis.
func fixtureKey(kind string, id int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+"/"+strconv.Itoa(id)))
}

func childPath(parentPath string, id int) string {
	if parentPath == "" {
		parentPath = strconv.Itoa(entity.RootID)
	}

	return parentPath + "," + strconv.Itoa(id)
}

func parentID(id int) int {
	if id == 0 {
		return entity.RootID
	}

	return id
}

// Store builds an in-memory store holding the fixture. Property editor
// aliases come from the data types, looked up in reg.
func (f *Fixture) Store(reg *editors.Collection) (*services.MemoryStore, error) {
	s := services.NewMemoryStore(0)

	langs := make([]*entity.Language, 0, len(f.Languages))
	for _, l := range f.Languages {
		langs = append(langs, &entity.Language{
			ID: l.ID, IsoCode: l.IsoCode, CultureName: l.Name, IsDefault: l.Default, IsMandatory: l.Mandatory,
		})
	}

	s.SetLanguages(langs...)

	dataTypes := make(map[int]*entity.DataType, len(f.DataTypes))
	for _, d := range f.DataTypes {
		dt := &entity.DataType{
			ID: d.ID, Key: fixtureKey("data-type", d.ID), Name: d.Name, EditorAlias: d.Editor,
			Configuration: d.Config, ParentID: entity.RootID, Path: childPath("", d.ID),
		}

		if e, ok := reg.Get(d.Editor); ok {
			dt.DatabaseType = e.StorageType()
		}

		dataTypes[d.ID] = dt
		s.AddDataTypes(dt)
	}

	templates := make(map[string]*entity.Template, len(f.Templates))
	for _, t := range f.Templates {
		tpl := &entity.Template{ID: t.ID, Key: fixtureKey("template", t.ID), Alias: t.Alias, Name: t.Name}
		templates[strings.ToLower(t.Alias)] = tpl
		s.AddTemplates(tpl)
	}

	types, err := f.contentTypes(dataTypes, templates)
	if err != nil {
		return nil, err
	}

	s.AddContentTypes(types...)

	for _, u := range f.Users {
		s.AddUsers(u.user())
	}

	content, err := f.content(types, templates)
	if err != nil {
		return nil, err
	}

	s.AddContent(content...)

	for _, t := range f.Texts {
		s.SetText(t.Area, t.Alias, t.Culture, t.Text)
	}

	return s, nil
}

func (f *Fixture) contentTypes(dataTypes map[int]*entity.DataType, templates map[string]*entity.Template) ([]*entity.ContentType, error) {
	byAlias := make(map[string]*entity.ContentType, len(f.ContentTypes))
	byID := make(map[int]*entity.ContentType, len(f.ContentTypes))
	result := make([]*entity.ContentType, 0, len(f.ContentTypes))

	for _, c := range f.ContentTypes {
		kind, err := parseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("content type %q: %w", c.Alias, err)
		}

		ct := &entity.ContentType{
			ID: c.ID, Key: fixtureKey(kind.UdiEntityType(), c.ID), Kind: kind, Alias: c.Alias, Name: c.Name,
			Icon: c.Icon, ParentID: parentID(c.Parent), IsContainer: c.Container, IsElement: c.Element,
			AllowedAsRoot: c.AllowAsRoot, Variations: entity.VaryNothing.With(entity.VaryCulture, c.VaryByCulture),
		}

		if kind == entity.KindMember {
			ct.MemberAccess = map[string]entity.MemberPropertyAccess{}
		}

		for _, g := range c.Groups {
			group := &entity.PropertyGroup{
				ID: g.ID, Key: fixtureKey("property-group", g.ID), Alias: g.Alias, Name: g.Name, SortOrder: g.Sort,
			}

			if group.Alias == "" {
				group.Alias = g.Name
			}

			if g.Tab {
				group.Type = entity.GroupTypeTab
			}

			for _, p := range g.Properties {
				pt, err := propertyType(p, g.ID, dataTypes)
				if err != nil {
					return nil, fmt.Errorf("content type %q: %w", c.Alias, err)
				}

				group.PropertyTypes = append(group.PropertyTypes, pt)
				memberAccess(ct, p)
			}

			ct.PropertyGroups = append(ct.PropertyGroups, group)
		}

		for _, p := range c.Properties {
			pt, err := propertyType(p, 0, dataTypes)
			if err != nil {
				return nil, fmt.Errorf("content type %q: %w", c.Alias, err)
			}

			ct.NoGroupPropertyTypes = append(ct.NoGroupPropertyTypes, pt)
			memberAccess(ct, p)
		}

		for _, alias := range c.Templates {
			tpl, ok := templates[strings.ToLower(alias)]
			if !ok {
				return nil, fmt.Errorf("content type %q: template %q: %w", c.Alias, alias, services.ErrNotFound)
			}

			ct.AllowedTemplates = append(ct.AllowedTemplates, tpl)
		}

		if c.DefaultTemplate != "" {
			ct.DefaultTemplate = templates[strings.ToLower(c.DefaultTemplate)]
		}

		byAlias[strings.ToLower(c.Alias)] = ct
		byID[ct.ID] = ct
		result = append(result, ct)
	}

	for i, c := range f.ContentTypes {
		ct := result[i]

		ct.Path = typePath(ct, byID)

		for _, alias := range c.Compositions {
			comp, ok := byAlias[strings.ToLower(alias)]
			if !ok {
				return nil, fmt.Errorf("content type %q: composition %q: %w", c.Alias, alias, services.ErrNotFound)
			}

			// Cycles are kept so that check can report them.
			ct.Compositions = append(ct.Compositions, comp)
		}

		for n, alias := range c.AllowedChildren {
			child, ok := byAlias[strings.ToLower(alias)]
			if !ok {
				return nil, fmt.Errorf("content type %q: allowed child %q: %w", c.Alias, alias, services.ErrNotFound)
			}

			ct.AllowedContentTypes = append(ct.AllowedContentTypes,
				entity.ContentTypeSort{ID: child.ID, Alias: child.Alias, SortOrder: n})
		}
	}

	return result, nil
}

func typePath(ct *entity.ContentType, byID map[int]*entity.ContentType) string {
	ids := []int{ct.ID}
	seen := map[int]bool{ct.ID: true}

	for p := byID[ct.ParentID]; p != nil && !seen[p.ID]; p = byID[p.ParentID] {
		seen[p.ID] = true
		ids = append([]int{p.ID}, ids...)
	}

	path := strconv.Itoa(entity.RootID)
	for _, id := range ids {
		path = childPath(path, id)
	}

	return path
}

func propertyType(p PropertyFixture, groupID int, dataTypes map[int]*entity.DataType) (*entity.PropertyType, error) {
	dt, ok := dataTypes[p.DataType]
	if !ok {
		return nil, fmt.Errorf("property %q: data type %d: %w", p.Alias, p.DataType, services.ErrNotFound)
	}

	name := p.Name
	if name == "" {
		name = p.Alias
	}

	return &entity.PropertyType{
		ID: p.ID, Key: fixtureKey("property-type", p.ID), Alias: p.Alias, Name: name, Description: p.Description,
		DataTypeID: dt.ID, DataTypeKey: dt.Key, PropertyEditorAlias: dt.EditorAlias,
		Mandatory: p.Mandatory, SortOrder: p.Sort, PropertyGroupID: groupID,
		Variations: entity.VaryNothing.With(entity.VaryCulture, p.VaryByCulture),
	}, nil
}

func memberAccess(ct *entity.ContentType, p PropertyFixture) {
	if ct.MemberAccess == nil {
		return
	}

	ct.MemberAccess[p.Alias] = entity.MemberPropertyAccess{
		CanEdit: p.MemberCanEdit, CanView: p.MemberCanView, Sensitive: p.Sensitive,
	}
}

func (u UserFixture) user() *entity.User {
	user := &entity.User{
		ID: u.ID, Key: fixtureKey("user", u.ID), Name: u.Name, Username: u.Username, Email: u.Email,
		Language: u.Language, State: entity.UserStateActive,
		StartContentIDs: u.StartContent, StartMediaIDs: u.StartMedia,
	}

	for _, g := range u.Groups {
		user.Groups = append(user.Groups, &entity.UserGroup{
			ID: g.ID, Key: fixtureKey("user-group", g.ID), Alias: g.Alias, Name: g.Name,
			AllowedSections: g.Sections, StartContentID: g.StartContent, StartMediaID: g.StartMedia,
			Permissions: g.Permissions, AllowedLanguages: g.Languages,
		})
	}

	return user
}

func (f *Fixture) content(types []*entity.ContentType, templates map[string]*entity.Template) ([]*entity.Content, error) {
	byAlias := make(map[string]*entity.ContentType, len(types))
	for _, ct := range types {
		if ct.Kind == entity.KindDocument {
			byAlias[strings.ToLower(ct.Alias)] = ct
		}
	}

	byID := make(map[int]*entity.Content, len(f.Content))
	result := make([]*entity.Content, 0, len(f.Content))
	propID := 0

	for _, c := range f.Content {
		ct, ok := byAlias[strings.ToLower(c.Type)]
		if !ok {
			return nil, fmt.Errorf("content %d: document type %q: %w", c.ID, c.Type, services.ErrNotFound)
		}

		item := &entity.Content{
			ContentBase: entity.ContentBase{
				ID: c.ID, Key: fixtureKey("document", c.ID), ParentID: parentID(c.Parent), SortOrder: c.Sort,
				Name: c.Name, CreatorID: c.Creator, WriterID: c.Writer,
				CreateDate: c.Updated, UpdateDate: c.Updated, ContentType: ct,
			},
			Published: c.Published,
		}

		if c.Template != "" {
			tpl, ok := templates[strings.ToLower(c.Template)]
			if !ok {
				return nil, fmt.Errorf("content %d: template %q: %w", c.ID, c.Template, services.ErrNotFound)
			}

			item.TemplateID = &tpl.ID
		}

		for culture, info := range c.Cultures {
			item.SetCultureName(info.Name, culture, info.Date)

			if info.Published {
				if item.PublishedCultures == nil {
					item.PublishedCultures = map[string]bool{}
				}

				item.PublishedCultures[strings.ToLower(culture)] = true
			}

			if info.Edited {
				if item.EditedCultures == nil {
					item.EditedCultures = map[string]bool{}
				}

				item.EditedCultures[strings.ToLower(culture)] = true
			}
		}

		aliases := make([]string, 0, len(c.Values))
		for alias := range c.Values {
			aliases = append(aliases, alias)
		}

		sort.Strings(aliases)

		for _, alias := range aliases {
			pt := findCompositionProperty(ct, alias)
			if pt == nil {
				return nil, fmt.Errorf("content %d: property %q is not defined by %q", c.ID, alias, ct.Alias)
			}

			propID++

			prop := &entity.Property{ID: propID, PropertyType: pt}
			for culture, v := range c.Values[alias] {
				prop.SetValue(v, culture, "")
			}

			item.Properties = append(item.Properties, prop)
		}

		byID[item.ID] = item
		result = append(result, item)
	}

	for _, item := range result {
		ids := contentAncestry(item, byID)

		item.Level = len(ids)
		item.Path = strconv.Itoa(entity.RootID)

		for _, id := range ids {
			item.Path = childPath(item.Path, id)
		}
	}

	return result, nil
}

// contentAncestry returns the ids from the top level item down to item.
func contentAncestry(item *entity.Content, byID map[int]*entity.Content) []int {
	ids := []int{item.ID}
	seen := map[int]bool{item.ID: true}

	for p := byID[item.ParentID]; p != nil && !seen[p.ID]; p = byID[p.ParentID] {
		seen[p.ID] = true
		ids = append([]int{p.ID}, ids...)
	}

	return ids
}

func findCompositionProperty(ct *entity.ContentType, alias string) *entity.PropertyType {
	for _, pt := range ct.CompositionPropertyTypes() {
		if strings.EqualFold(pt.Alias, alias) {
			return pt
		}
	}

	return nil
}
