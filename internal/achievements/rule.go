package achievements

// Tier is a cosmetic rank used for scoring weight and presentation.
// It has no effect on evaluation.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

type Category string

const (
	CategoryWatching   Category = "watching"
	CategoryCompletion Category = "completion"
	CategoryScores     Category = "scores"
	CategoryGenres     Category = "genres"
	CategoryStudios    Category = "studios"
	CategoryTime       Category = "time"
	CategorySocial     Category = "social"
	CategoryCollection Category = "collection"
	CategorySeasonal   Category = "seasonal"
	CategorySpecial    Category = "special"
	CategoryMilestones Category = "milestones"
	CategoryDedication Category = "dedication"
)

// RequirementType selects which snapshot field a rule reads.
// Every value here must have an accessor registered in the evaluator.
type RequirementType string

const (
	ReqTotalAnimeCount   RequirementType = "total_anime_count"
	ReqCompletedCount    RequirementType = "completed_count"
	ReqWatchingCount     RequirementType = "watching_count"
	ReqEpisodesWatched   RequirementType = "episodes_watched"
	ReqWatchTimeMinutes  RequirementType = "watch_time_minutes"
	ReqMeanScore         RequirementType = "mean_score"
	ReqGenreCount        RequirementType = "genre_count"
	ReqStudioCount       RequirementType = "studio_count"
	ReqPerfectScores     RequirementType = "perfect_scores"
	ReqYearSpan          RequirementType = "year_span"
	ReqFavoritesCount    RequirementType = "favorites_count"
	ReqRewatches         RequirementType = "rewatches"
	ReqDroppedCount      RequirementType = "dropped_count"
	ReqPlanningCount     RequirementType = "planning_count"
	ReqPausedCount       RequirementType = "paused_count"
	ReqActivityCount     RequirementType = "activity_count"
	ReqSeasonalCurrent   RequirementType = "seasonal_current"
	ReqFormatTV          RequirementType = "format_tv"
	ReqFormatMovie       RequirementType = "format_movie"
	ReqFormatOVA         RequirementType = "format_ova"
	ReqFormatSpecial     RequirementType = "format_special"
	ReqCountryJapan      RequirementType = "country_japan"
	ReqCountryChina      RequirementType = "country_china"
	ReqCountryKorea      RequirementType = "country_korea"
	ReqSameDayCompletion RequirementType = "same_day_completion"
)

type Comparison string

const (
	CompareAtLeast Comparison = "gte"
	CompareAtMost  Comparison = "lte"
	CompareEqual   Comparison = "eq"
)

// Requirement is the numeric condition a rule checks against a snapshot.
// Field is only consulted for keyed requirement types (genre_count).
type Requirement struct {
	Type    RequirementType `json:"type"`
	Value   float64         `json:"value"`
	Compare Comparison      `json:"comparison"`
	Field   string          `json:"field,omitempty"`
}

// Achievement is an immutable rule definition. The catalog builds all of
// them once at startup and never mutates them afterwards.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Tier        Tier        `json:"tier"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"requirement"`
	Hidden      bool        `json:"hidden,omitempty"`
	Points      float64     `json:"points"`
}
