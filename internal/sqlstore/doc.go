// Package sqlstore reads content types, their property groups and property
// types, and their composition ids from PostgreSQL. It implements
// services.ContentTypeService.
//
// Tables:
//
//	content_types   (id, key, kind, alias, name, description, icon, thumbnail,
//	                 parent_id, path, level, sort_order, is_container, is_element,
//	                 allowed_as_root, trashed, variations, create_date, update_date,
//	                 composition_ids int[])
//	property_groups (id, key, content_type_id, alias, name, type, sort_order)
//	property_types  (id, key, content_type_id, group_id, alias, name, description,
//	                 data_type_id, editor_alias, mandatory, mandatory_message,
//	                 validation_regexp, validation_regexp_message, sort_order,
//	                 label_on_top, variations, member_can_edit, member_can_view,
//	                 is_sensitive)
//	content         (id, content_type_id, ...)
package sqlstore
