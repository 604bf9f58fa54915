package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestComputeRange_Empty(t *testing.T) {
	assert.Nil(t, ComputeRange(nil, time.Now()))
}

func TestComputeRange_SnapsToMonthBoundaries(t *testing.T) {
	entries := []Entry{
		{ID: 1, StartDate: datePtr(2024, time.January, 10), EndDate: datePtr(2024, time.March, 15)},
	}

	rng := ComputeRange(entries, time.Now())
	require.NotNil(t, rng)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond), rng.End)
}

func TestComputeRange_OngoingExtendsToNow(t *testing.T) {
	now := time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: 1, StartDate: datePtr(2024, time.January, 10)},
	}

	rng := ComputeRange(entries, now)
	require.NotNil(t, rng)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond), rng.End)
}

func TestTimelineWidth_FlooredAtMinimum(t *testing.T) {
	assert.Equal(t, float64(minTimelineWidthPx), TimelineWidth(nil, 6))

	rng := &Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
	// 30 days at 2px/day is far below the floor.
	assert.Equal(t, float64(minTimelineWidthPx), TimelineWidth(rng, 2))
}

func TestTimelineWidth_ScalesWithDays(t *testing.T) {
	rng := &Range{
		Start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.December, 27, 0, 0, 0, 0, time.UTC),
	}
	// 360 days at 6px/day clears the floor.
	assert.Equal(t, 2160.0, TimelineWidth(rng, 6))
}

func TestLabels_MonthlyForCoarseZooms(t *testing.T) {
	rng := &Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond),
	}

	for _, level := range []ZoomLevel{ZoomCompact, ZoomNormal, ZoomByDays} {
		labels := Labels(rng, level)
		require.Len(t, labels, 3, "zoom %s", level)
		assert.Equal(t, time.January, labels[0].Month())
		assert.Equal(t, time.March, labels[2].Month())
	}
}

func TestLabels_WeeklyForFineZooms(t *testing.T) {
	rng := &Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond),
	}

	for _, level := range []ZoomLevel{ZoomDetailed, ZoomExpanded} {
		labels := Labels(rng, level)
		require.NotEmpty(t, labels)
		for _, tick := range labels {
			assert.Equal(t, time.Sunday, tick.Weekday(), "zoom %s", level)
		}
		// Jan 1 2024 is a Monday; the first week starts the Sunday before.
		assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), labels[0])
	}
}

func TestLabels_NilRange(t *testing.T) {
	assert.Nil(t, Labels(nil, ZoomNormal))
}

func TestFormatLabel(t *testing.T) {
	tick := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 3", FormatLabel(tick, ZoomDetailed))
	assert.Equal(t, "Mar 3", FormatLabel(tick, ZoomExpanded))
	assert.Equal(t, "Mar 2024", FormatLabel(tick, ZoomNormal))
	assert.Equal(t, "Mar 2024", FormatLabel(tick, ZoomCompact))
}

func TestPositionPx(t *testing.T) {
	rng := &Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 0.0, PositionPx(nil, rng, 6))
	assert.Equal(t, 0.0, PositionPx(datePtr(2024, time.January, 1), nil, 6))
	assert.Equal(t, 60.0, PositionPx(datePtr(2024, time.January, 11), rng, 6))
}

func TestEntryWidthPx_FlooredAtZoomMinimum(t *testing.T) {
	rng := &Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	// Two days at 6px/day is 12px, far below normal zoom's 130px floor.
	w := EntryWidthPx(datePtr(2024, time.February, 1), datePtr(2024, time.February, 3), rng, ZoomNormal, now)
	assert.Equal(t, 130.0, w)

	// 100 days at 6px/day clears the floor.
	w = EntryWidthPx(datePtr(2024, time.January, 1), datePtr(2024, time.April, 10), rng, ZoomNormal, now)
	assert.Equal(t, 600.0, w)
}

func TestEntryWidthPx_OngoingExtendsToNow(t *testing.T) {
	rng := &Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)

	w := EntryWidthPx(datePtr(2024, time.January, 1), nil, rng, ZoomNormal, now)
	assert.Equal(t, 600.0, w)
}

func TestEntryWidthPx_NilStartFallsBackToMinWidth(t *testing.T) {
	w := EntryWidthPx(nil, nil, nil, ZoomExpanded, time.Now())
	assert.Equal(t, 200.0, w)
}

func TestConfigFor_UnknownFallsBackToNormal(t *testing.T) {
	assert.Equal(t, ConfigFor(ZoomNormal), ConfigFor(ZoomLevel("galactic")))
	assert.Equal(t, 2.0, ConfigFor(ZoomCompact).PixelsPerDay)
	assert.Equal(t, 200.0, ConfigFor(ZoomByDays).PixelsPerDay)
}
