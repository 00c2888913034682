package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"cms-mapper/internal/composition"
	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/maps"
	"cms-mapper/internal/mapping"
)

func (e *env) writeJSON(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (e *env) display(kind string, id int, culture string, userID int) error {
	var opts []mapping.Option
	if culture != "" {
		opts = append(opts, mapping.WithCulture(culture))
	}

	if userID != 0 {
		user, err := e.store.GetUser(userID)
		if err != nil {
			return err
		}

		opts = append(opts, mapping.WithItem(maps.ItemCurrentUser, user))
	}

	ctx := e.context(opts...)

	result, err := e.mapItem(ctx, kind, id)
	if err != nil {
		return err
	}

	return e.writeJSON(result)
}

func (e *env) mapItem(ctx *mapping.Context, kind string, id int) (any, error) {
	switch kind {
	case "content":
		c, err := e.store.GetContent(id)
		if err != nil {
			return nil, err
		}

		return mapping.Map[editing.ContentItemDisplay](ctx, c)
	case "media":
		m, err := e.store.GetMedia(id)
		if err != nil {
			return nil, err
		}

		return mapping.Map[editing.MediaItemDisplay](ctx, m)
	case "document-type", "media-type", "member-type", "content-type":
		ct, err := e.types.GetContentType(id)
		if err != nil {
			return nil, err
		}

		return e.mapContentType(ctx, ct)
	case "data-type":
		dt, err := e.store.GetDataType(id)
		if err != nil {
			return nil, err
		}

		return mapping.Map[editing.DataTypeDisplay](ctx, dt)
	case "user":
		u, err := e.store.GetUser(id)
		if err != nil {
			return nil, err
		}

		return mapping.Map[editing.UserDisplay](ctx, u)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func (e *env) mapContentType(ctx *mapping.Context, ct *entity.ContentType) (any, error) {
	switch ct.Kind {
	case entity.KindMedia:
		return mapping.Map[editing.MediaTypeDisplay](ctx, ct)
	case entity.KindMember:
		return mapping.Map[editing.MemberTypeDisplay](ctx, ct)
	default:
		return mapping.Map[editing.DocumentTypeDisplay](ctx, ct)
	}
}

func (e *env) tabs(id int, culture string) error {
	c, err := e.store.GetContent(id)
	if err != nil {
		return err
	}

	if culture == "" && c.ContentType.VariesByCulture() {
		culture = e.cfg.DefaultCulture
	}

	var opts []mapping.Option
	if culture != "" {
		opts = append(opts, mapping.WithCulture(culture))
	}

	variant, err := mapping.Map[editing.ContentVariantDisplay](e.context(opts...), c)
	if err != nil {
		return err
	}

	return e.writeJSON(variant.Tabs)
}

func (e *env) compositions(alias, kindName string) error {
	kind, err := parseKind(kindName)
	if err != nil {
		return err
	}

	target, err := e.types.GetContentTypeByAlias(kind, alias)
	if err != nil {
		return err
	}

	all, err := e.types.GetAllContentTypes(kind)
	if err != nil {
		return err
	}

	avail := composition.AvailableCompositions(target, all, composition.Filter{IsElement: target.IsElement})
	if len(avail.Results) == 0 {
		if len(composition.Descendants(target, all)) > 0 {
			fmt.Fprintf(e.out, "%s is used as a composition and cannot compose other types\n", target.Alias)
		} else {
			fmt.Fprintf(e.out, "no compositions available for %s\n", target.Alias)
		}

		return nil
	}

	selected := color.New(color.FgCyan)
	allowed := color.New(color.FgGreen)
	blocked := color.New(color.FgRed)

	ctx := e.context()

	for _, c := range avail.Results {
		ac, err := mapping.Map[editing.AvailableComposition](ctx, c)
		if err != nil {
			return err
		}

		switch {
		case c.Selected:
			selected.Fprintf(e.out, "* %-24s %s\n", ac.Composition.Alias, ac.Composition.Name)
		case ac.Allowed:
			allowed.Fprintf(e.out, "+ %-24s %s\n", ac.Composition.Alias, ac.Composition.Name)
		default:
			blocked.Fprintf(e.out, "- %-24s %s\n", ac.Composition.Alias, ac.Composition.Name)
		}
	}

	return nil
}

// checkItem is one mapping run by check.
type checkItem struct {
	kind string
	id   int
}

// check maps every content type, data type, user and document of the
// fixture and prints the collected diagnostics.
func (e *env) check() error {
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed, color.Bold)
	ok := color.New(color.FgGreen)

	report := &diagnostic.Diagnostics{}

	for _, kind := range []entity.ContentKind{entity.KindDocument, entity.KindMedia, entity.KindMember} {
		all, err := e.types.GetAllContentTypes(kind)
		if err != nil {
			return err
		}

		if _, err := composition.ValidateGraph(all); err != nil {
			report.AddError(diagnostic.CodeCompositionCycle, err.Error(), strings.ToLower(kind.String())+" types", "")
		}
	}

	for _, item := range e.checkItems() {
		ctx := e.context()
		label := fmt.Sprintf("%s %d", item.kind, item.id)

		if _, err := e.mapItem(ctx, item.kind, item.id); err != nil {
			report.AddError(diagnostic.CodeMappingFailed, err.Error(), label, "")
			continue
		}

		for _, d := range ctx.Diagnostics().Warnings {
			d.TypePair = label
			report.Add(d)
		}
	}

	for _, d := range report.Errors {
		fail.Fprintf(e.out, "error   %s\n", d.String())
	}

	for _, d := range report.Warnings {
		warn.Fprintf(e.out, "warning %s\n", d.String())
	}

	if report.HasErrors() {
		fail.Fprintf(e.out, "%d error(s), %d warning(s)\n", len(report.Errors), len(report.Warnings))
		e.logger.Debug("check failed", zap.Error(report.Error()))

		return errCheckFailed
	}

	ok.Fprintf(e.out, "ok, %d warning(s)\n", len(report.Warnings))

	return nil
}

func (e *env) checkItems() []checkItem {
	var items []checkItem

	for _, ct := range e.fixture.ContentTypes {
		items = append(items, checkItem{kind: "content-type", id: ct.ID})
	}

	for _, dt := range e.fixture.DataTypes {
		items = append(items, checkItem{kind: "data-type", id: dt.ID})
	}

	for _, u := range e.fixture.Users {
		items = append(items, checkItem{kind: "user", id: u.ID})
	}

	for _, c := range e.fixture.Content {
		items = append(items, checkItem{kind: "content", id: c.ID})
	}

	slices.SortStableFunc(items, func(a, b checkItem) int {
		if a.kind != b.kind {
			return strings.Compare(a.kind, b.kind)
		}

		return a.id - b.id
	})

	return items
}
