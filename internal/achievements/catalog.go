package achievements

import "fmt"

// Catalog holds the full immutable achievement list, built once at
// process start. Construction failures (duplicate ids, requirement
// types the evaluator does not know) are defects in the definitions
// and abort startup.
type Catalog struct {
	all  []Achievement
	byID map[string]Achievement
}

func NewCatalog() (*Catalog, error) {
	all := curatedAchievements()
	all = append(all, generatedAchievements()...)

	byID := make(map[string]Achievement, len(all))
	for _, a := range all {
		if _, exists := byID[a.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate achievement id %q", a.ID)
		}
		if !KnownRequirementType(a.Requirement.Type) {
			return nil, fmt.Errorf("catalog: achievement %s has unknown requirement type %q", a.ID, a.Requirement.Type)
		}
		switch a.Requirement.Compare {
		case CompareAtLeast, CompareAtMost, CompareEqual:
		default:
			return nil, fmt.Errorf("catalog: achievement %s has unknown comparison %q", a.ID, a.Requirement.Compare)
		}
		byID[a.ID] = a
	}

	return &Catalog{all: all, byID: byID}, nil
}

func (c *Catalog) Len() int {
	return len(c.all)
}

// All returns the catalog entries in definition order. Callers must
// treat the slice as read-only.
func (c *Catalog) All() []Achievement {
	return c.all
}

func (c *Catalog) ByID(id string) (Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// --- construction helpers shared by the curated and generated sets ---

func ach(id, name, description string, category Category, tier Tier, icon string, req Requirement, points float64) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Tier:        tier,
		Icon:        icon,
		Requirement: req,
		Points:      points,
	}
}

func hidden(a Achievement) Achievement {
	a.Hidden = true
	return a
}

func atLeast(t RequirementType, value float64) Requirement {
	return Requirement{Type: t, Value: value, Compare: CompareAtLeast}
}

func atMost(t RequirementType, value float64) Requirement {
	return Requirement{Type: t, Value: value, Compare: CompareAtMost}
}

func equals(t RequirementType, value float64) Requirement {
	return Requirement{Type: t, Value: value, Compare: CompareEqual}
}

func genreAtLeast(genre string, value float64) Requirement {
	return Requirement{Type: ReqGenreCount, Value: value, Compare: CompareAtLeast, Field: genre}
}

// ladder picks a tier from ascending cut-offs: below silver is bronze,
// below gold is silver, and so on. Generated families use it so tiers
// stay monotonic in the swept value.
func ladder(value, silver, gold, platinum, diamond float64) Tier {
	switch {
	case value < silver:
		return TierBronze
	case value < gold:
		return TierSilver
	case value < platinum:
		return TierGold
	case value < diamond:
		return TierPlatinum
	default:
		return TierDiamond
	}
}
