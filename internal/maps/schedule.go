package maps

import (
	"strings"
	"time"

	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// ScheduleAction is what a schedule entry does to a variant.
type ScheduleAction int

const (
	ScheduleRelease ScheduleAction = iota
	ScheduleExpire
)

// ScheduleEntry is a scheduled release or expiry of one culture ("" for
// invariant content).
type ScheduleEntry struct {
	Culture string
	Action  ScheduleAction
	Date    time.Time
}

// Schedule is the publishing schedule of a document.
type Schedule []ScheduleEntry

// First returns the earliest date scheduled for the culture and action.
func (s Schedule) First(culture string, action ScheduleAction) *time.Time {
	var first *time.Time

	for i := range s {
		e := &s[i]
		if e.Action != action || !strings.EqualFold(e.Culture, culture) {
			continue
		}

		if first == nil || e.Date.Before(*first) {
			d := e.Date
			first = &d
		}
	}

	return first
}

func (m *mapper) registerSchedule(b *mapping.Builder) {
	mapping.Define(b, m.mapContentDisplayWithSchedule)
	mapping.Define(b, m.mapScheduleVariant)
	mapping.Define(b, mapDisplayToSchedule)
	mapping.Define(b, mapScheduleToDisplay)
	mapping.Define(b, mapVariantToSchedule)
	mapping.Define(b, mapScheduleVariantToVariant)
}

func (m *mapper) mapContentDisplayWithSchedule(src *entity.Content, dst *editing.ContentItemDisplayWithSchedule, ctx *mapping.Context) error {
	if err := m.mapContentHeader(src, &dst.ContentItemHeader, ctx); err != nil {
		return err
	}

	variants, err := mapVariants(m, src, ctx, func(v *editing.ContentVariantScheduleDisplay) *editing.ContentVariantDisplay {
		return &v.ContentVariantDisplay
	})
	if err != nil {
		return err
	}

	dst.Variants = variants

	return nil
}

func (m *mapper) mapScheduleVariant(src *entity.Content, dst *editing.ContentVariantScheduleDisplay, ctx *mapping.Context) error {
	schedule, ok := mapping.ItemAs[Schedule](ctx, ItemSchedule)
	if !ok {
		return ErrMissingSchedule
	}

	if err := m.mapVariant(src, &dst.ContentVariantDisplay, ctx); err != nil {
		return err
	}

	dst.ReleaseDate = schedule.First(ctx.Culture(), ScheduleRelease)
	dst.ExpireDate = schedule.First(ctx.Culture(), ScheduleExpire)

	return nil
}

func mapDisplayToSchedule(src *editing.ContentItemDisplay, dst *editing.ContentItemDisplayWithSchedule, ctx *mapping.Context) error {
	variants, err := mapping.MapSlice[*editing.ContentVariantDisplay, editing.ContentVariantScheduleDisplay](ctx, src.Variants)
	if err != nil {
		return err
	}

	dst.ContentItemHeader = src.ContentItemHeader
	dst.Variants = variants

	return nil
}

func mapScheduleToDisplay(src *editing.ContentItemDisplayWithSchedule, dst *editing.ContentItemDisplay, _ *mapping.Context) error {
	dst.ContentItemHeader = src.ContentItemHeader
	dst.Variants = make([]*editing.ContentVariantDisplay, 0, len(src.Variants))

	for _, v := range src.Variants {
		plain := v.ContentVariantDisplay
		dst.Variants = append(dst.Variants, &plain)
	}

	return nil
}

// mapVariantToSchedule carries the dates of the matching variant (same
// language and segment) from ItemScheduledVariants when it is present.
func mapVariantToSchedule(src *editing.ContentVariantDisplay, dst *editing.ContentVariantScheduleDisplay, ctx *mapping.Context) error {
	dst.ContentVariantDisplay = *src

	previous, ok := mapping.ItemAs[[]*editing.ContentVariantScheduleDisplay](ctx, ItemScheduledVariants)
	if !ok {
		return nil
	}

	for _, p := range previous {
		if languageID(p.Language) == languageID(src.Language) && p.Segment == src.Segment {
			dst.ReleaseDate = p.ReleaseDate
			dst.ExpireDate = p.ExpireDate

			break
		}
	}

	return nil
}

func mapScheduleVariantToVariant(src *editing.ContentVariantScheduleDisplay, dst *editing.ContentVariantDisplay, _ *mapping.Context) error {
	*dst = src.ContentVariantDisplay
	return nil
}

func languageID(l *editing.LanguageDisplay) int {
	if l == nil {
		return 0
	}

	return l.ID
}
