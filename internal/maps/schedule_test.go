package maps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-mapper/internal/editing"
	"cms-mapper/internal/mapping"
)

func TestSchedule_First(t *testing.T) {
	early := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)

	s := Schedule{
		{Culture: "en-US", Action: ScheduleRelease, Date: late},
		{Culture: "en-US", Action: ScheduleRelease, Date: early},
		{Culture: "en-US", Action: ScheduleExpire, Date: late},
	}

	require.NotNil(t, s.First("EN-us", ScheduleRelease))
	assert.Equal(t, early, *s.First("en-US", ScheduleRelease))
	assert.Equal(t, late, *s.First("en-US", ScheduleExpire))
	assert.Nil(t, s.First("da-DK", ScheduleRelease))
	assert.Nil(t, Schedule(nil).First("", ScheduleExpire))
}

func TestContentDisplayWithSchedule(t *testing.T) {
	f := newFixture(t)

	release := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	expire := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)

	ctx := f.reg.NewContext(mapping.WithItem(ItemSchedule, Schedule{
		{Culture: "en-US", Action: ScheduleRelease, Date: release},
		{Culture: "da-DK", Action: ScheduleExpire, Date: expire},
	}))

	display, err := mapping.Map[editing.ContentItemDisplayWithSchedule](ctx, f.home)
	require.NoError(t, err)
	require.Len(t, display.Variants, 3)

	en, da, de := display.Variants[0], display.Variants[1], display.Variants[2]
	assert.Equal(t, "Home", en.Name)
	require.NotNil(t, en.ReleaseDate)
	assert.Equal(t, release, *en.ReleaseDate)
	assert.Nil(t, en.ExpireDate)

	require.NotNil(t, da.ExpireDate)
	assert.Equal(t, expire, *da.ExpireDate)
	assert.Nil(t, de.ReleaseDate)

	assert.Equal(t, "page", display.TemplateAlias)
}

func TestContentDisplayWithSchedule_MissingSchedule(t *testing.T) {
	f := newFixture(t)

	_, err := mapping.Map[editing.ContentItemDisplayWithSchedule](f.reg.NewContext(), f.home)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSchedule)
}

func TestContentDisplay_ScheduleConversions(t *testing.T) {
	f := newFixture(t)
	release := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)

	scheduled, err := mapping.Map[editing.ContentItemDisplayWithSchedule](
		f.reg.NewContext(mapping.WithItem(ItemSchedule, Schedule{{Culture: "da-DK", Action: ScheduleRelease, Date: release}})), f.home)
	require.NoError(t, err)

	plain, err := mapping.Map[editing.ContentItemDisplay](f.reg.NewContext(), scheduled)
	require.NoError(t, err)
	require.Len(t, plain.Variants, 3)
	assert.Equal(t, scheduled.ContentItemHeader, plain.ContentItemHeader)
	assert.Equal(t, scheduled.Variants[1].ContentVariantDisplay, *plain.Variants[1])

	// dates survive the round trip when the previous variants are supplied
	back, err := mapping.Map[editing.ContentItemDisplayWithSchedule](
		f.reg.NewContext(mapping.WithItem(ItemScheduledVariants, scheduled.Variants)), plain)
	require.NoError(t, err)
	require.Len(t, back.Variants, 3)
	require.NotNil(t, back.Variants[1].ReleaseDate)
	assert.Equal(t, release, *back.Variants[1].ReleaseDate)
	assert.Nil(t, back.Variants[0].ReleaseDate)

	bare, err := mapping.Map[editing.ContentItemDisplayWithSchedule](f.reg.NewContext(), plain)
	require.NoError(t, err)
	assert.Nil(t, bare.Variants[1].ReleaseDate)
}
