package achievements

import (
	"aniboard/internal/anilist"
)

// FormatCounts breaks the watched list down by release format.
type FormatCounts struct {
	TV      int `json:"tv"`
	Movie   int `json:"movie"`
	OVA     int `json:"ova"`
	Special int `json:"special"`
}

// CountryCounts breaks the watched list down by country of origin.
type CountryCounts struct {
	Japan int `json:"japan"`
	China int `json:"china"`
	Korea int `json:"korea"`
}

// Snapshot is the normalized statistics record the evaluator reads.
// It is built fresh per request from the upstream list data and never
// persisted. A zero field means "never occurred", not "unknown".
type Snapshot struct {
	TotalAnimeCount   float64            `json:"totalAnimeCount"`
	CompletedCount    float64            `json:"completedCount"`
	WatchingCount     float64            `json:"watchingCount"`
	EpisodesWatched   float64            `json:"episodesWatched"`
	WatchTimeMinutes  float64            `json:"watchTimeMinutes"`
	MeanScore         float64            `json:"meanScore"`
	GenreCounts       map[string]float64 `json:"genreCounts"`
	StudioCounts      float64            `json:"studioCounts"`
	PerfectScores     float64            `json:"perfectScores"`
	YearSpan          float64            `json:"yearSpan"`
	FavoritesCount    float64            `json:"favoritesCount"`
	Rewatches         float64            `json:"rewatches"`
	DroppedCount      float64            `json:"droppedCount"`
	PlanningCount     float64            `json:"planningCount"`
	PausedCount       float64            `json:"pausedCount"`
	ActivityCount     float64            `json:"activityCount"`
	SeasonalCurrent   float64            `json:"seasonalCurrent"`
	FormatCounts      FormatCounts       `json:"formatCounts"`
	CountryCounts     CountryCounts      `json:"countryCounts"`
	SameDayCompletion float64            `json:"sameDayCompletion"`
}

// minutesPerEpisode approximates watch time from episode progress, the
// same constant the upstream dashboards use.
const minutesPerEpisode = 24

func isWatchedStatus(status string) bool {
	switch status {
	case anilist.StatusCompleted, anilist.StatusCurrent, anilist.StatusDropped,
		anilist.StatusPaused, anilist.StatusRepeating:
		return true
	}
	return false
}

// BuildSnapshot reduces the raw upstream list payload into the flat
// Snapshot the evaluator consumes. Counts that gauge actual viewing
// (episodes, genres, formats, scores) only consider entries that were
// started at least once; list-state counts (planning, dropped, paused)
// consider the whole list.
func BuildSnapshot(lists []anilist.ListGroup, favoritesCount, activityCount int) *Snapshot {
	var all []anilist.MediaListEntry
	for _, list := range lists {
		all = append(all, list.Entries...)
	}

	var watched []anilist.MediaListEntry
	for _, e := range all {
		if isWatchedStatus(e.Status) {
			watched = append(watched, e)
		}
	}

	s := &Snapshot{
		TotalAnimeCount: float64(len(watched)),
		GenreCounts:     make(map[string]float64),
		FavoritesCount:  float64(favoritesCount),
		ActivityCount:   float64(activityCount),
	}

	for _, e := range all {
		switch e.Status {
		case anilist.StatusCompleted:
			s.CompletedCount++
		case anilist.StatusCurrent:
			s.WatchingCount++
		case anilist.StatusDropped:
			s.DroppedCount++
		case anilist.StatusPlanning:
			s.PlanningCount++
		case anilist.StatusPaused:
			s.PausedCount++
		}
		if e.Media.Status == anilist.MediaStatusReleasing && e.Status == anilist.StatusCurrent {
			s.SeasonalCurrent++
		}
	}

	var scoreSum float64
	var scoredCount int
	studios := make(map[string]struct{})
	years := make(map[int]struct{})

	for _, e := range watched {
		s.EpisodesWatched += float64(e.Progress)
		s.Rewatches += float64(e.Repeat)

		if e.Score > 0 {
			scoreSum += e.Score
			scoredCount++
		}
		if e.Score == 10 {
			s.PerfectScores++
		}

		for _, genre := range e.Media.Genres {
			s.GenreCounts[genre]++
		}
		for _, studio := range e.Media.Studios.Nodes {
			if studio.Name != "" {
				studios[studio.Name] = struct{}{}
			}
		}

		year := e.Media.SeasonYear
		if year == 0 {
			year = e.Media.StartDate.Year
		}
		if year != 0 {
			years[year] = struct{}{}
		}

		switch e.Media.Format {
		case anilist.FormatTV:
			s.FormatCounts.TV++
		case anilist.FormatMovie:
			s.FormatCounts.Movie++
		case anilist.FormatOVA:
			s.FormatCounts.OVA++
		case anilist.FormatSpecial:
			s.FormatCounts.Special++
		}

		switch e.Media.CountryOfOrigin {
		case "JP":
			s.CountryCounts.Japan++
		case "CN":
			s.CountryCounts.China++
		case "KR":
			s.CountryCounts.Korea++
		}

		if e.Status == anilist.StatusCompleted && sameDay(e.StartedAt, e.CompletedAt) {
			s.SameDayCompletion++
		}
	}

	s.WatchTimeMinutes = s.EpisodesWatched * minutesPerEpisode
	if scoredCount > 0 {
		s.MeanScore = scoreSum / float64(scoredCount)
	}
	s.StudioCounts = float64(len(studios))
	s.YearSpan = decadeSpan(years)

	return s
}

func sameDay(started, completed anilist.FuzzyDate) bool {
	startDate := started.Time()
	endDate := completed.Time()
	if startDate == nil || endDate == nil {
		return false
	}
	return startDate.Equal(*endDate)
}

func decadeSpan(years map[int]struct{}) float64 {
	if len(years) == 0 {
		return 0
	}
	minYear, maxYear := 0, 0
	first := true
	for y := range years {
		if first {
			minYear, maxYear = y, y
			first = false
			continue
		}
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	span := maxYear - minYear
	return float64((span + 9) / 10)
}
