package achievements

import (
	"fmt"
	"math"
)

// Result of evaluating one rule against one snapshot.
// Progress is always within [0, 100].
type Result struct {
	Unlocked bool    `json:"unlocked"`
	Progress float64 `json:"progress"`
}

// equalTolerance absorbs floating point noise in eq comparisons;
// mean scores are fractional.
const equalTolerance = 0.1

// accessors maps every requirement type to the snapshot field it reads.
// The field argument is only meaningful for keyed types; a genre the
// user never watched resolves to 0, which is a legitimate value.
var accessors = map[RequirementType]func(s *Snapshot, field string) float64{
	ReqTotalAnimeCount:  func(s *Snapshot, _ string) float64 { return s.TotalAnimeCount },
	ReqCompletedCount:   func(s *Snapshot, _ string) float64 { return s.CompletedCount },
	ReqWatchingCount:    func(s *Snapshot, _ string) float64 { return s.WatchingCount },
	ReqEpisodesWatched:  func(s *Snapshot, _ string) float64 { return s.EpisodesWatched },
	ReqWatchTimeMinutes: func(s *Snapshot, _ string) float64 { return s.WatchTimeMinutes },
	ReqMeanScore:        func(s *Snapshot, _ string) float64 { return s.MeanScore },
	ReqGenreCount: func(s *Snapshot, field string) float64 {
		if field == "" {
			return 0
		}
		return s.GenreCounts[field]
	},
	ReqStudioCount:       func(s *Snapshot, _ string) float64 { return s.StudioCounts },
	ReqPerfectScores:     func(s *Snapshot, _ string) float64 { return s.PerfectScores },
	ReqYearSpan:          func(s *Snapshot, _ string) float64 { return s.YearSpan },
	ReqFavoritesCount:    func(s *Snapshot, _ string) float64 { return s.FavoritesCount },
	ReqRewatches:         func(s *Snapshot, _ string) float64 { return s.Rewatches },
	ReqDroppedCount:      func(s *Snapshot, _ string) float64 { return s.DroppedCount },
	ReqPlanningCount:     func(s *Snapshot, _ string) float64 { return s.PlanningCount },
	ReqPausedCount:       func(s *Snapshot, _ string) float64 { return s.PausedCount },
	ReqActivityCount:     func(s *Snapshot, _ string) float64 { return s.ActivityCount },
	ReqSeasonalCurrent:   func(s *Snapshot, _ string) float64 { return s.SeasonalCurrent },
	ReqFormatTV:          func(s *Snapshot, _ string) float64 { return float64(s.FormatCounts.TV) },
	ReqFormatMovie:       func(s *Snapshot, _ string) float64 { return float64(s.FormatCounts.Movie) },
	ReqFormatOVA:         func(s *Snapshot, _ string) float64 { return float64(s.FormatCounts.OVA) },
	ReqFormatSpecial:     func(s *Snapshot, _ string) float64 { return float64(s.FormatCounts.Special) },
	ReqCountryJapan:      func(s *Snapshot, _ string) float64 { return float64(s.CountryCounts.Japan) },
	ReqCountryChina:      func(s *Snapshot, _ string) float64 { return float64(s.CountryCounts.China) },
	ReqCountryKorea:      func(s *Snapshot, _ string) float64 { return float64(s.CountryCounts.Korea) },
	ReqSameDayCompletion: func(s *Snapshot, _ string) float64 { return s.SameDayCompletion },
}

// KnownRequirementType reports whether the evaluator has an accessor for
// the given type. The catalog uses it to reject bad definitions at build
// time.
func KnownRequirementType(t RequirementType) bool {
	_, ok := accessors[t]
	return ok
}

// Evaluate computes unlock status and progress for a single rule.
// An unrecognized requirement type is a programming error in the catalog
// and is returned as an error rather than silently evaluating to zero.
func Evaluate(a Achievement, s *Snapshot) (Result, error) {
	accessor, ok := accessors[a.Requirement.Type]
	if !ok {
		return Result{}, fmt.Errorf("achievement %s: unknown requirement type %q", a.ID, a.Requirement.Type)
	}

	current := accessor(s, a.Requirement.Field)
	target := a.Requirement.Value

	switch a.Requirement.Compare {
	case CompareAtLeast:
		if target <= 0 {
			return Result{Unlocked: true, Progress: 100}, nil
		}
		unlocked := current >= target
		progress := math.Min(100, current/target*100)
		return Result{Unlocked: unlocked, Progress: progress}, nil

	case CompareAtMost:
		// No partial credit: "at most" has no meaningful approach
		// direction from above.
		if current <= target {
			return Result{Unlocked: true, Progress: 100}, nil
		}
		return Result{Unlocked: false, Progress: 0}, nil

	case CompareEqual:
		if math.Abs(current-target) < equalTolerance {
			return Result{Unlocked: true, Progress: 100}, nil
		}
		return Result{Unlocked: false, Progress: 0}, nil

	default:
		return Result{}, fmt.Errorf("achievement %s: unknown comparison %q", a.ID, a.Requirement.Compare)
	}
}
