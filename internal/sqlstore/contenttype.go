package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"cms-mapper/internal/entity"
	"cms-mapper/internal/services"
)

// ContentTypeRepository loads content type graphs.
type ContentTypeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContentTypeRepository creates a new content type repository.
func NewContentTypeRepository(db *sql.DB, logger *zap.Logger) *ContentTypeRepository {
	return &ContentTypeRepository{
		db:     db,
		logger: logger,
	}
}

var _ services.ContentTypeService = (*ContentTypeRepository)(nil)

// GetContentType loads the content type with the given id together with
// every other type of its kind, so that compositions are linked.
func (r *ContentTypeRepository) GetContentType(id int) (*entity.ContentType, error) {
	var kind int

	err := r.db.QueryRow(`SELECT kind FROM content_types WHERE id = $1`, id).Scan(&kind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content type %d: %w", id, services.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query content type kind: %w", err)
	}

	all, err := r.GetAllContentTypes(entity.ContentKind(kind))
	if err != nil {
		return nil, err
	}

	for _, ct := range all {
		if ct.ID == id {
			return ct, nil
		}
	}

	return nil, fmt.Errorf("content type %d: %w", id, services.ErrNotFound)
}

// GetContentTypeByAlias loads a content type by alias (case insensitive).
func (r *ContentTypeRepository) GetContentTypeByAlias(kind entity.ContentKind, alias string) (*entity.ContentType, error) {
	all, err := r.GetAllContentTypes(kind)
	if err != nil {
		return nil, err
	}

	for _, ct := range all {
		if strings.EqualFold(ct.Alias, alias) {
			return ct, nil
		}
	}

	return nil, fmt.Errorf("%s type %q: %w", kind, alias, services.ErrNotFound)
}

// GetAllContentTypes loads every content type of a kind, ordered by id, with
// groups, property types and compositions linked.
func (r *ContentTypeRepository) GetAllContentTypes(kind entity.ContentKind) ([]*entity.ContentType, error) {
	types, compositionIDs, err := r.queryTypes(kind)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		return nil, nil
	}

	byID := make(map[int]*entity.ContentType, len(types))
	ids := make([]int64, 0, len(types))

	for _, ct := range types {
		byID[ct.ID] = ct
		ids = append(ids, int64(ct.ID))
	}

	groups, err := r.queryGroups(ids)
	if err != nil {
		return nil, err
	}

	groupByID := make(map[int]*entity.PropertyGroup, len(groups))

	for _, g := range groups {
		ct := byID[g.contentTypeID]
		if ct == nil {
			continue
		}

		ct.PropertyGroups = append(ct.PropertyGroups, g.group)
		groupByID[g.group.ID] = g.group
	}

	if err := r.queryPropertyTypes(ids, byID, groupByID); err != nil {
		return nil, err
	}

	for _, ct := range types {
		for _, cid := range compositionIDs[ct.ID] {
			c, ok := byID[int(cid)]
			if !ok {
				r.logger.Warn("composition not found",
					zap.Int("content_type_id", ct.ID),
					zap.Int64("composition_id", cid))

				continue
			}

			ct.Compositions = append(ct.Compositions, c)
		}
	}

	r.logger.Debug("loaded content types",
		zap.Stringer("kind", kind),
		zap.Int("count", len(types)),
		zap.Int("groups", len(groups)))

	return types, nil
}

// HasContainerInPath reports whether any content item with one of the ids is
// of a container type.
func (r *ContentTypeRepository) HasContainerInPath(ids []int) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	args := make([]int64, 0, len(ids))
	for _, id := range ids {
		args = append(args, int64(id))
	}

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM content c
			INNER JOIN content_types ct ON ct.id = c.content_type_id
			WHERE c.id = ANY($1) AND ct.is_container = TRUE
		)
	`

	var exists bool
	if err := r.db.QueryRow(query, pq.Array(args)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to query container path: %w", err)
	}

	return exists, nil
}

func (r *ContentTypeRepository) queryTypes(kind entity.ContentKind) ([]*entity.ContentType, map[int][]int64, error) {
	query := `
		SELECT id, key, kind, alias, name, description, icon, thumbnail,
			parent_id, path, level, sort_order,
			is_container, is_element, allowed_as_root, trashed, variations,
			create_date, update_date, composition_ids
		FROM content_types
		WHERE kind = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, int(kind))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query content types: %w", err)
	}
	defer rows.Close()

	var types []*entity.ContentType

	compositions := map[int][]int64{}

	for rows.Next() {
		var (
			ct          entity.ContentType
			ctKind      int
			variations  int
			description sql.NullString
			thumbnail   sql.NullString
			comps       pq.Int64Array
		)

		if err := rows.Scan(
			&ct.ID, &ct.Key, &ctKind, &ct.Alias, &ct.Name, &description, &ct.Icon, &thumbnail,
			&ct.ParentID, &ct.Path, &ct.Level, &ct.SortOrder,
			&ct.IsContainer, &ct.IsElement, &ct.AllowedAsRoot, &ct.Trashed, &variations,
			&ct.CreateDate, &ct.UpdateDate, &comps,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan content type: %w", err)
		}

		ct.Kind = entity.ContentKind(ctKind)
		ct.Variations = entity.Variation(variations)
		ct.Description = description.String
		ct.Thumbnail = thumbnail.String

		if len(comps) > 0 {
			compositions[ct.ID] = comps
		}

		types = append(types, &ct)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate content types: %w", err)
	}

	return types, compositions, nil
}

type groupRow struct {
	contentTypeID int
	group         *entity.PropertyGroup
}

func (r *ContentTypeRepository) queryGroups(ids []int64) ([]groupRow, error) {
	query := `
		SELECT id, key, content_type_id, alias, name, type, sort_order
		FROM property_groups
		WHERE content_type_id = ANY($1)
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query property groups: %w", err)
	}
	defer rows.Close()

	var result []groupRow

	for rows.Next() {
		var (
			g         entity.PropertyGroup
			ctID      int
			groupType int
		)

		if err := rows.Scan(&g.ID, &g.Key, &ctID, &g.Alias, &g.Name, &groupType, &g.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan property group: %w", err)
		}

		g.Type = entity.GroupType(groupType)
		result = append(result, groupRow{contentTypeID: ctID, group: &g})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate property groups: %w", err)
	}

	return result, nil
}

func (r *ContentTypeRepository) queryPropertyTypes(
	ids []int64,
	byID map[int]*entity.ContentType,
	groupByID map[int]*entity.PropertyGroup,
) error {
	query := `
		SELECT id, key, content_type_id, group_id, alias, name, description,
			data_type_id, editor_alias, mandatory, mandatory_message,
			validation_regexp, validation_regexp_message, sort_order,
			label_on_top, variations, member_can_edit, member_can_view, is_sensitive
		FROM property_types
		WHERE content_type_id = ANY($1)
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query property types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pt                       entity.PropertyType
			ctID                     int
			groupID                  sql.NullInt64
			description              sql.NullString
			mandatoryMessage         sql.NullString
			validationRegExp         sql.NullString
			validationRegExpMessage  sql.NullString
			variations               int
			canEdit, canView, isSens bool
		)

		if err := rows.Scan(
			&pt.ID, &pt.Key, &ctID, &groupID, &pt.Alias, &pt.Name, &description,
			&pt.DataTypeID, &pt.PropertyEditorAlias, &pt.Mandatory, &mandatoryMessage,
			&validationRegExp, &validationRegExpMessage, &pt.SortOrder,
			&pt.LabelOnTop, &variations, &canEdit, &canView, &isSens,
		); err != nil {
			return fmt.Errorf("failed to scan property type: %w", err)
		}

		pt.Description = description.String
		pt.MandatoryMessage = mandatoryMessage.String
		pt.ValidationRegExp = validationRegExp.String
		pt.ValidationRegExpMessage = validationRegExpMessage.String
		pt.Variations = entity.Variation(variations)

		ct := byID[ctID]
		if ct == nil {
			continue
		}

		if ct.Kind == entity.KindMember {
			if ct.MemberAccess == nil {
				ct.MemberAccess = map[string]entity.MemberPropertyAccess{}
			}

			ct.MemberAccess[pt.Alias] = entity.MemberPropertyAccess{CanEdit: canEdit, CanView: canView, Sensitive: isSens}
		}

		p := &pt

		if g, ok := groupByID[int(groupID.Int64)]; groupID.Valid && ok {
			p.PropertyGroupID = g.ID
			g.PropertyTypes = append(g.PropertyTypes, p)

			continue
		}

		ct.NoGroupPropertyTypes = append(ct.NoGroupPropertyTypes, p)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate property types: %w", err)
	}

	return nil
}
