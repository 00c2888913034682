package composition

import (
	"strconv"

	"cms-mapper/internal/entity"
)

func prop(id int, alias string, sortOrder int) *entity.PropertyType {
	return &entity.PropertyType{ID: id, Alias: alias, Name: alias, SortOrder: sortOrder}
}

func group(id int, name string, sortOrder int, props ...*entity.PropertyType) *entity.PropertyGroup {
	for _, p := range props {
		p.PropertyGroupID = id
	}

	return &entity.PropertyGroup{ID: id, Alias: name, Name: name, SortOrder: sortOrder, PropertyTypes: props}
}

func docType(id int, alias string, groups ...*entity.PropertyGroup) *entity.ContentType {
	return &entity.ContentType{
		ID:             id,
		Kind:           entity.KindDocument,
		Alias:          alias,
		Name:           alias,
		Path:           "-1," + strconv.Itoa(id),
		PropertyGroups: groups,
	}
}

// site builds:
//
//	seo:     SEO{metaTitle, metaDescription}
//	content: Content{bodyText}
//	page:    Content{title} + generic{hidden}, composes seo and content
//	article: composes page
//	plain:   no groups, no compositions
func site() (seo, content, page, article, plain *entity.ContentType) {
	seo = docType(10, "seo", group(100, "SEO", 1, prop(1000, "metaTitle", 0), prop(1001, "metaDescription", 1)))
	content = docType(11, "content", group(110, "Content", 0, prop(1100, "bodyText", 5)))
	page = docType(20, "page", group(200, "Content", 0, prop(2000, "title", 0)))
	page.NoGroupPropertyTypes = []*entity.PropertyType{prop(2001, "hidden", 0)}
	page.Compositions = []*entity.ContentType{seo, content}
	article = docType(30, "article")
	article.Compositions = []*entity.ContentType{page}
	plain = docType(40, "plain")

	return seo, content, page, article, plain
}
