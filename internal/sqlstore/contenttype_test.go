package sqlstore

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cms-mapper/internal/entity"
	"cms-mapper/internal/services"
)

var (
	typeColumns = []string{
		"id", "key", "kind", "alias", "name", "description", "icon", "thumbnail",
		"parent_id", "path", "level", "sort_order",
		"is_container", "is_element", "allowed_as_root", "trashed", "variations",
		"create_date", "update_date", "composition_ids",
	}
	groupColumns = []string{"id", "key", "content_type_id", "alias", "name", "type", "sort_order"}
	propColumns  = []string{
		"id", "key", "content_type_id", "group_id", "alias", "name", "description",
		"data_type_id", "editor_alias", "mandatory", "mandatory_message",
		"validation_regexp", "validation_regexp_message", "sort_order",
		"label_on_top", "variations", "member_can_edit", "member_can_view", "is_sensitive",
	}
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *ContentTypeRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger := zap.NewNop()
	repo := NewContentTypeRepository(db, logger)

	return db, mock, repo
}

func expectDocumentTypes(mock sqlmock.Sqlmock) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`FROM content_types`).
		WithArgs(int(entity.KindDocument)).
		WillReturnRows(sqlmock.NewRows(typeColumns).
			AddRow(10, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c0a10", 0, "seo", "SEO", nil, "icon-search", nil,
				-1, "-1,10", 1, 0, false, false, false, false, 0, created, created, nil).
			AddRow(20, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c0a20", 0, "page", "Page", "A page", "icon-document", nil,
				-1, "-1,20", 1, 1, false, false, true, false, 1, created, created, "{10,99}"))

	mock.ExpectQuery(`FROM property_groups`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(groupColumns).
			AddRow(100, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c0100", 10, "seo", "SEO", 0, 0).
			AddRow(200, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c0200", 20, "content", "Content", 1, 1))

	mock.ExpectQuery(`FROM property_types`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(propColumns).
			AddRow(1000, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c1000", 10, 100, "metaTitle", "Meta title", nil,
				-88, "Umbraco.TextBox", false, nil, nil, nil, 0, false, 0, false, false, false).
			AddRow(2000, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c2000", 20, 200, "body", "Body", "Main text",
				-87, "Umbraco.TinyMCE", true, "Body is required", nil, nil, 0, false, 1, false, false, false).
			AddRow(2001, "8a3e6a3c-4bcb-4a4b-9e0e-2d6d0d2c2001", 20, nil, "hidden", "Hidden", nil,
				-49, "Umbraco.TrueFalse", false, nil, nil, nil, 1, false, 0, false, false, false))
}

func TestContentTypeRepository_GetAllContentTypes(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	expectDocumentTypes(mock)

	types, err := repo.GetAllContentTypes(entity.KindDocument)
	require.NoError(t, err)
	require.Len(t, types, 2)

	seo, page := types[0], types[1]
	assert.Equal(t, "seo", seo.Alias)
	assert.Equal(t, "page", page.Alias)
	assert.Equal(t, "A page", page.Description)
	assert.True(t, page.AllowedAsRoot)
	assert.True(t, page.VariesByCulture())

	// The unknown composition id 99 is skipped.
	require.Len(t, page.Compositions, 1)
	assert.Same(t, seo, page.Compositions[0])

	require.Len(t, page.PropertyGroups, 1)
	assert.Equal(t, entity.GroupTypeTab, page.PropertyGroups[0].Type)
	require.Len(t, page.PropertyGroups[0].PropertyTypes, 1)

	body := page.PropertyGroups[0].PropertyTypes[0]
	assert.Equal(t, "body", body.Alias)
	assert.Equal(t, 200, body.PropertyGroupID)
	assert.True(t, body.Mandatory)
	assert.Equal(t, "Body is required", body.MandatoryMessage)
	assert.True(t, body.VariesByCulture())

	require.Len(t, page.NoGroupPropertyTypes, 1)
	assert.Equal(t, "hidden", page.NoGroupPropertyTypes[0].Alias)

	assert.NotNil(t, page.FindPropertyType("hidden"))
	assert.Len(t, page.CompositionPropertyTypes(), 3)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentTypeRepository_GetAllContentTypes_Empty(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`FROM content_types`).
		WithArgs(int(entity.KindMedia)).
		WillReturnRows(sqlmock.NewRows(typeColumns))

	types, err := repo.GetAllContentTypes(entity.KindMedia)
	require.NoError(t, err)
	assert.Empty(t, types)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentTypeRepository_GetAllContentTypes_QueryError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`FROM content_types`).
		WithArgs(int(entity.KindDocument)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAllContentTypes(entity.KindDocument)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query content types")
	assert.Contains(t, err.Error(), "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentTypeRepository_GetContentType(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT kind FROM content_types`).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"kind"}).AddRow(0))
	expectDocumentTypes(mock)

	ct, err := repo.GetContentType(20)
	require.NoError(t, err)
	assert.Equal(t, "page", ct.Alias)
	assert.Equal(t, []int{10}, ct.CompositionIDs())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentTypeRepository_GetContentType_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT kind FROM content_types`).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"kind"}))

	_, err := repo.GetContentType(404)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentTypeRepository_GetContentTypeByAlias(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	expectDocumentTypes(mock)

	ct, err := repo.GetContentTypeByAlias(entity.KindDocument, "SEO")
	require.NoError(t, err)
	assert.Equal(t, 10, ct.ID)

	expectDocumentTypes(mock)

	_, err = repo.GetContentTypeByAlias(entity.KindDocument, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentTypeRepository_HasContainerInPath(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasContainerInPath([]int{-1, 1050, 1060})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasContainerInPath(nil)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
