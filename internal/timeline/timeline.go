package timeline

import (
	"sort"
	"time"

	"aniboard/internal/anilist"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Entry is one anime interval on the timeline. EndDate is nil while
// the show is still being watched.
type Entry struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Status    string     `json:"status"`
	Progress  int        `json:"progress"`
	Episodes  int        `json:"episodes"`
	Score     float64    `json:"score"`
	Genres    []string   `json:"genres"`
}

// Normalize turns raw list entries into timeline entries: fuzzy dates
// are resolved, entries without a usable start date are dropped, and
// the result is a fresh slice sorted ascending by start date.
func Normalize(entries []anilist.MediaListEntry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		start := e.StartedAt.Time()
		if start == nil {
			continue
		}
		title := e.Media.Title.English
		if title == "" {
			title = e.Media.Title.Romaji
		}
		out = append(out, Entry{
			ID:        e.ID,
			Title:     title,
			StartDate: start,
			EndDate:   e.CompletedAt.Time(),
			Status:    e.Status,
			Progress:  e.Progress,
			Episodes:  e.Media.Episodes,
			Score:     e.Score,
			Genres:    e.Media.Genres,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(*out[j].StartDate)
	})
	return out
}

// FilterByStatus keeps entries matching the given list status.
// StatusAll (or empty) passes everything through.
func FilterByStatus(entries []Entry, status string) []Entry {
	if status == "" || status == StatusAll {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}
