package maps

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
	"cms-mapper/internal/services"
)

var (
	created = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	updated = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	enDate  = time.Date(2024, 2, 20, 8, 30, 0, 0, time.UTC)
	saveNow = time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
)

// fixture is a small site:
//
//	seo (10):    SEO{metaTitle}
//	page (20):   Content tab{title (culture), body} + generic{hidden}, composes seo, culture variant
//	news (30):   list view container, Content{intro}
//	member (60): Details{phone (sensitive), nickname}
//
// with documents News (1050, news), Home (1060, page) and Story (1070, page, under News).
type fixture struct {
	store *services.MemoryStore
	reg   *mapping.Registry

	seo, page, news, memberType *entity.ContentType

	newsRoot, home, story *entity.Content
	member                *entity.Member
	admin, editor         *entity.User
}

func textProp(id int, alias string, sortOrder, dataTypeID int) *entity.PropertyType {
	editor := "Umbraco.TextBox"
	if dataTypeID == 1002 {
		editor = "Umbraco.TinyMCE"
	}

	return &entity.PropertyType{
		ID:                  id,
		Key:                 uuid.New(),
		Alias:               alias,
		Name:                alias,
		DataTypeID:          dataTypeID,
		PropertyEditorAlias: editor,
		SortOrder:           sortOrder,
	}
}

func propGroup(id int, name string, sortOrder int, props ...*entity.PropertyType) *entity.PropertyGroup {
	for _, p := range props {
		p.PropertyGroupID = id
	}

	return &entity.PropertyGroup{
		ID:            id,
		Key:           uuid.New(),
		Alias:         name,
		Name:          name,
		Type:          entity.GroupTypeGroup,
		SortOrder:     sortOrder,
		PropertyTypes: props,
	}
}

func value(v any) []*entity.PropertyValue {
	return []*entity.PropertyValue{{EditedValue: v}}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{store: services.NewMemoryStore(0)}
	s := f.store

	s.SetLanguages(
		&entity.Language{ID: 3, IsoCode: "de-DE", CultureName: "German"},
		&entity.Language{ID: 2, IsoCode: "da-DK", CultureName: "Danish"},
		&entity.Language{ID: 1, IsoCode: "en-US", CultureName: "English (United States)", IsDefault: true, IsMandatory: true},
	)

	s.AddDataTypes(
		&entity.DataType{ID: 1001, Key: uuid.New(), Name: "Textstring", EditorAlias: "Umbraco.TextBox",
			DatabaseType: entity.StorageNvarchar, Configuration: map[string]any{"maxChars": 100}, ParentID: entity.RootID, Path: "-1,1001"},
		&entity.DataType{ID: 1002, Key: uuid.New(), Name: "Rich Text Editor", EditorAlias: "Umbraco.TinyMCE",
			DatabaseType: entity.StorageNtext, ParentID: entity.RootID, Path: "-1,1002"},
		&entity.DataType{ID: 1003, Key: uuid.New(), Name: "Star rating", EditorAlias: "Acme.StarRating",
			DatabaseType: entity.StorageInteger, ParentID: entity.RootID, Path: "-1,1003"},
	)

	pageTemplate := &entity.Template{ID: 500, Key: uuid.New(), Alias: "page", Name: "Page"}
	landingTemplate := &entity.Template{ID: 501, Key: uuid.New(), Alias: "landing", Name: "Landing"}
	s.AddTemplates(pageTemplate, landingTemplate)

	f.seo = &entity.ContentType{
		ID: 10, Key: uuid.New(), Kind: entity.KindDocument, Alias: "seo", Name: "SEO", Icon: "icon-search",
		ParentID: entity.RootID, Path: "-1,10",
		PropertyGroups: []*entity.PropertyGroup{propGroup(100, "SEO", 2, textProp(1000, "metaTitle", 0, 1001))},
	}

	title := textProp(2000, "title", 0, 1001)
	title.Variations = entity.VaryCulture
	title.Mandatory = true

	content := propGroup(200, "Content", 0, title, textProp(2001, "body", 1, 1002))
	content.Type = entity.GroupTypeTab

	f.page = &entity.ContentType{
		ID: 20, Key: uuid.New(), Kind: entity.KindDocument, Alias: "page", Name: "Page", Icon: "icon-document",
		ParentID: entity.RootID, Path: "-1,20", AllowedAsRoot: true, Variations: entity.VaryCulture,
		PropertyGroups:       []*entity.PropertyGroup{content},
		NoGroupPropertyTypes: []*entity.PropertyType{textProp(2002, "hidden", 0, 1001)},
		Compositions:         []*entity.ContentType{f.seo},
		AllowedContentTypes:  []entity.ContentTypeSort{{ID: 30, SortOrder: 1}, {ID: 20, SortOrder: 0}},
		AllowedTemplates:     []*entity.Template{pageTemplate, landingTemplate},
		DefaultTemplate:      pageTemplate,
		CreateDate:           created,
		UpdateDate:           updated,
	}

	f.news = &entity.ContentType{
		ID: 30, Key: uuid.New(), Kind: entity.KindDocument, Alias: "news", Name: "News", Icon: "icon-newspaper",
		ParentID: entity.RootID, Path: "-1,30", IsContainer: true,
		PropertyGroups: []*entity.PropertyGroup{propGroup(300, "Content", 0, textProp(3000, "intro", 0, 1001))},
	}

	f.memberType = &entity.ContentType{
		ID: 60, Key: uuid.New(), Kind: entity.KindMember, Alias: "customer", Name: "Customer", Icon: "icon-user",
		ParentID: entity.RootID, Path: "-1,60",
		PropertyGroups: []*entity.PropertyGroup{propGroup(600, "Details", 0,
			textProp(6000, "phone", 0, 1001), textProp(6001, "nickname", 1, 1001))},
		MemberAccess: map[string]entity.MemberPropertyAccess{
			"phone":    {CanView: true, Sensitive: true},
			"nickname": {CanView: true, CanEdit: true},
		},
	}

	s.AddContentTypes(f.seo, f.page, f.news, f.memberType)

	editors := &entity.UserGroup{ID: 1, Key: uuid.New(), Alias: "editor", Name: "Editors",
		AllowedSections: []string{"content", "media"}, Permissions: []string{"U", "F", "A"}, AllowedLanguages: []int{1, 9}}
	f.admin = &entity.User{ID: 1, Key: uuid.New(), Name: "Administrator", Username: "admin", Email: " Admin@Example.com ",
		Language: "en-US", State: entity.UserStateActive, Groups: []*entity.UserGroup{editors},
		StartContentIDs: []int{entity.RootID}, CreateDate: created, UpdateDate: updated, LastLoginDate: updated}

	start := 1050
	f.editor = &entity.User{ID: 2, Key: uuid.New(), Name: "Editor", Username: "editor", Email: "editor@example.com",
		Groups: []*entity.UserGroup{{ID: 2, Alias: "writer", Name: "Writers", StartContentID: &start, Permissions: []string{"F"}}}}
	s.AddUsers(f.admin, f.editor)

	f.newsRoot = &entity.Content{
		ContentBase: entity.ContentBase{
			ID: 1050, Key: uuid.New(), ParentID: entity.RootID, Path: "-1,1050", Level: 1, Name: "News",
			CreatorID: 1, WriterID: 1, CreateDate: created, UpdateDate: updated, ContentType: f.news,
		},
		Published: true,
	}

	f.home = &entity.Content{
		ContentBase: entity.ContentBase{
			ID: 1060, Key: uuid.New(), ParentID: entity.RootID, Path: "-1,1060", Level: 1, SortOrder: 1, Name: "Home",
			CreatorID: 1, WriterID: 2, CreateDate: created, UpdateDate: updated, ContentType: f.page,
			Properties: []*entity.Property{
				{ID: 1, PropertyType: title, Values: []*entity.PropertyValue{
					{Culture: "en-US", EditedValue: "Welcome"},
					{Culture: "da-DK", EditedValue: "Velkommen"},
				}},
				{ID: 2, PropertyType: f.page.PropertyGroups[0].PropertyTypes[1], Values: value("<p>Hello</p>")},
				{ID: 3, PropertyType: f.seo.PropertyGroups[0].PropertyTypes[0], Values: value("Home | Site")},
				{ID: 4, PropertyType: f.page.NoGroupPropertyTypes[0], Values: value("no")},
			},
		},
		Published:         true,
		PublishedCultures: map[string]bool{"en-us": true},
		EditedCultures:    map[string]bool{"da-dk": true},
	}
	f.home.SetCultureName("Home", "en-US", enDate)
	f.home.SetCultureName("Hjem", "da-DK", time.Time{})

	f.story = &entity.Content{
		ContentBase: entity.ContentBase{
			ID: 1070, Key: uuid.New(), ParentID: 1050, Path: "-1,1050,1070", Level: 2, Name: "Story",
			CreateDate: created, UpdateDate: updated, ContentType: f.page,
		},
	}
	f.story.SetCultureName("Story", "en-US", updated)

	s.AddContent(f.newsRoot, f.home, f.story)

	f.member = &entity.Member{
		ContentBase: entity.ContentBase{
			ID: 2000, Key: uuid.New(), ParentID: entity.RootID, Path: "-1,2000", Name: "Jane",
			CreateDate: created, UpdateDate: updated, ContentType: f.memberType,
			Properties: []*entity.Property{
				{ID: 20, PropertyType: f.memberType.PropertyGroups[0].PropertyTypes[0], Values: value("+45 1234 5678")},
				{ID: 21, PropertyType: f.memberType.PropertyGroups[0].PropertyTypes[1], Values: value("jj")},
			},
		},
		Username:   "jane",
		Email:      "jane@example.com",
		IsApproved: true,
		Groups:     []string{"Customers"},
	}

	reg, err := NewRegistry(Services{
		Content:      s,
		ContentTypes: s,
		DataTypes:    s,
		Files:        s,
		Users:        s,
		Text:         s,
		Languages:    s,
		Identity:     s,
		Now:          func() time.Time { return saveNow },
	})
	require.NoError(t, err)

	f.reg = reg

	return f
}

// observed returns a context logging warnings into the returned observer.
func (f *fixture) observed(opts ...mapping.Option) (*mapping.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	opts = append(opts, mapping.WithLogger(zap.New(core)))

	return f.reg.NewContext(opts...), logs
}
