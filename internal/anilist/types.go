package anilist

import "time"

// Media list entry statuses as AniList reports them.
const (
	StatusCompleted = "COMPLETED"
	StatusCurrent   = "CURRENT"
	StatusDropped   = "DROPPED"
	StatusPaused    = "PAUSED"
	StatusPlanning  = "PLANNING"
	StatusRepeating = "REPEATING"
)

// Media release statuses.
const (
	MediaStatusReleasing = "RELEASING"
	MediaStatusFinished  = "FINISHED"
)

// Media formats the dashboard distinguishes.
const (
	FormatTV      = "TV"
	FormatMovie   = "MOVIE"
	FormatOVA     = "OVA"
	FormatSpecial = "SPECIAL"
)

// FuzzyDate is AniList's partial date. Any component may be zero,
// meaning unknown. A date with no year carries no usable information.
type FuzzyDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Time resolves the fuzzy date to a concrete UTC midnight timestamp.
// Missing month and day default to 1; a missing year yields nil.
func (d FuzzyDate) Time() *time.Time {
	if d.Year == 0 {
		return nil
	}
	month := d.Month
	if month == 0 {
		month = 1
	}
	day := d.Day
	if day == 0 {
		day = 1
	}
	t := time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

type MediaTitle struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
}

type Studio struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StudioConnection struct {
	Nodes []Studio `json:"nodes"`
}

type Media struct {
	ID              int              `json:"id"`
	Title           MediaTitle       `json:"title"`
	Format          string           `json:"format"`
	Status          string           `json:"status"`
	Episodes        int              `json:"episodes"`
	Duration        int              `json:"duration"`
	SeasonYear      int              `json:"seasonYear"`
	StartDate       FuzzyDate        `json:"startDate"`
	Genres          []string         `json:"genres"`
	CountryOfOrigin string           `json:"countryOfOrigin"`
	Studios         StudioConnection `json:"studios"`
}

type MediaListEntry struct {
	ID          int       `json:"id"`
	Status      string    `json:"status"`
	Score       float64   `json:"score"`
	Progress    int       `json:"progress"`
	Repeat      int       `json:"repeat"`
	StartedAt   FuzzyDate `json:"startedAt"`
	CompletedAt FuzzyDate `json:"completedAt"`
	Media       Media     `json:"media"`
}

// ListGroup is one named list from a MediaListCollection response.
type ListGroup struct {
	Name    string           `json:"name"`
	Status  string           `json:"status"`
	Entries []MediaListEntry `json:"entries"`
}

// UserProfile carries the subset of the viewer data the dashboard
// needs: identity plus the favorites count.
type UserProfile struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	FavoritesCount int    `json:"favoritesCount"`
}
