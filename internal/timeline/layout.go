package timeline

import (
	"fmt"
	"sort"
	"time"
)

// RowAssignment maps entry ids to row indexes after packing.
type RowAssignment struct {
	Rows      map[int]int `json:"rows"`
	TotalRows int         `json:"totalRows"`
}

// AssignRows packs entries into horizontal rows greedily: entries are
// taken in start order and placed in the first row whose last occupant
// ended at or before the entry's start, otherwise a new row opens.
// Short entries are inflated to the zoom level's minimum duration and
// every placement reserves trailing padding, so visually adjacent bars
// never touch. The packing is first-fit on purpose; it keeps an
// entry's row stable as later entries stream in, which a minimal
// coloring would not.
func AssignRows(entries []Entry, rng *Range, level ZoomLevel, now time.Time) (*RowAssignment, error) {
	conf := ConfigFor(level)

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartDate == nil || sorted[j].StartDate == nil {
			return false
		}
		return sorted[i].StartDate.Before(*sorted[j].StartDate)
	})

	assignment := &RowAssignment{Rows: make(map[int]int, len(sorted))}
	var rowEnds []time.Time

	for _, e := range sorted {
		if e.StartDate == nil {
			return nil, fmt.Errorf("timeline: entry %d has no start date", e.ID)
		}
		start := *e.StartDate

		end := now
		if e.EndDate != nil {
			end = *e.EndDate
		} else if rng != nil {
			end = rng.End
		}

		durationDays := float64(end.Sub(start).Milliseconds()) / msPerDay
		if durationDays < conf.MinDurationDays {
			end = start.Add(time.Duration(conf.MinDurationDays * msPerDay * float64(time.Millisecond)))
		}
		paddedEnd := end.Add(time.Duration(conf.PaddingDays * msPerDay * float64(time.Millisecond)))

		row := -1
		for i := range rowEnds {
			if !rowEnds[i].After(start) {
				row = i
				rowEnds[i] = paddedEnd
				break
			}
		}
		if row == -1 {
			row = len(rowEnds)
			rowEnds = append(rowEnds, paddedEnd)
		}
		assignment.Rows[e.ID] = row
	}

	assignment.TotalRows = len(rowEnds)
	return assignment, nil
}
