package timeline

import (
	"math"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

// Range is the overall date span of the timeline, snapped to whole
// months so axis labels start clean.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Millisecond)
}

func startOfWeek(t time.Time) time.Time {
	// Weeks start on Sunday.
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// ComputeRange finds the min start and max end over all entries,
// treating ongoing entries as ending now, and snaps the result to
// month boundaries. Returns nil when there are no entries.
func ComputeRange(entries []Entry, now time.Time) *Range {
	var minDate, maxDate time.Time
	found := false

	consider := func(t time.Time) {
		if !found {
			minDate, maxDate = t, t
			found = true
			return
		}
		if t.Before(minDate) {
			minDate = t
		}
		if t.After(maxDate) {
			maxDate = t
		}
	}

	for _, e := range entries {
		if e.StartDate == nil {
			continue
		}
		consider(*e.StartDate)
		if e.EndDate != nil {
			consider(*e.EndDate)
		} else {
			consider(now)
		}
	}
	if !found {
		return nil
	}

	return &Range{Start: startOfMonth(minDate), End: endOfMonth(maxDate)}
}

// TimelineWidth is the full rendered width in pixels, floored at the
// minimum so short histories stay readable.
func TimelineWidth(rng *Range, pixelsPerDay float64) float64 {
	if rng == nil {
		return minTimelineWidthPx
	}
	totalDays := math.Ceil(float64(rng.End.Sub(rng.Start).Milliseconds()) / msPerDay)
	return math.Max(minTimelineWidthPx, totalDays*pixelsPerDay)
}

// Labels produces axis tick dates: weekly for the two closest zoom
// levels, monthly otherwise.
func Labels(rng *Range, level ZoomLevel) []time.Time {
	if rng == nil {
		return nil
	}

	var out []time.Time
	if level == ZoomExpanded || level == ZoomDetailed {
		for t := startOfWeek(rng.Start); !t.After(rng.End); t = t.AddDate(0, 0, 7) {
			out = append(out, t)
		}
	} else {
		for t := startOfMonth(rng.Start); !t.After(rng.End); t = t.AddDate(0, 1, 0) {
			out = append(out, t)
		}
	}
	return out
}

// FormatLabel renders one tick date for the given zoom level.
func FormatLabel(t time.Time, level ZoomLevel) string {
	if level == ZoomExpanded || level == ZoomDetailed {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2006")
}

// PositionPx converts a date to its horizontal pixel offset.
func PositionPx(date *time.Time, rng *Range, pixelsPerDay float64) float64 {
	if date == nil || rng == nil {
		return 0
	}
	daysSinceStart := float64(date.Sub(rng.Start).Milliseconds()) / msPerDay
	return daysSinceStart * pixelsPerDay
}

// EntryWidthPx computes the rendered bar width for an entry, extending
// ongoing entries to now and flooring at the zoom level's minimum.
func EntryWidthPx(start, end *time.Time, rng *Range, level ZoomLevel, now time.Time) float64 {
	conf := ConfigFor(level)
	if start == nil || rng == nil {
		return conf.MinWidthPx
	}
	effectiveEnd := now
	if end != nil {
		effectiveEnd = *end
	}
	durationDays := float64(effectiveEnd.Sub(*start).Milliseconds()) / msPerDay
	return math.Max(conf.MinWidthPx, durationDays*conf.PixelsPerDay)
}
