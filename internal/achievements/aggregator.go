package achievements

// Evaluated pairs an achievement with its computed unlock state.
type Evaluated struct {
	Achievement Achievement `json:"achievement"`
	Unlocked    bool        `json:"unlocked"`
	Progress    float64     `json:"progress"`
}

// Summary aggregates unlock state over the whole catalog.
type Summary struct {
	UnlockedCount int              `json:"unlocked"`
	TotalCount    int              `json:"total"`
	Points        float64          `json:"points"`
	Percentage    float64          `json:"percentage"`
	ByCategory    map[Category]int `json:"byCategory"`
	ByTier        map[Tier]int     `json:"byTier"`
}

// Report is the full evaluation output for one snapshot: every rule's
// result plus the aggregate summary. Results preserve catalog order.
type Report struct {
	Summary Summary     `json:"summary"`
	Results []Evaluated `json:"results"`
}

// Aggregate evaluates every catalog entry against the snapshot. It is
// deterministic and stateless: calling it twice with the same snapshot
// yields identical reports.
func (c *Catalog) Aggregate(s *Snapshot) (*Report, error) {
	report := &Report{
		Results: make([]Evaluated, 0, len(c.all)),
		Summary: Summary{
			TotalCount: len(c.all),
			ByCategory: make(map[Category]int),
			ByTier:     make(map[Tier]int),
		},
	}

	for _, a := range c.all {
		res, err := Evaluate(a, s)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, Evaluated{
			Achievement: a,
			Unlocked:    res.Unlocked,
			Progress:    res.Progress,
		})
		if res.Unlocked {
			report.Summary.UnlockedCount++
			report.Summary.Points += a.Points
			report.Summary.ByCategory[a.Category]++
			report.Summary.ByTier[a.Tier]++
		}
	}

	if report.Summary.TotalCount > 0 {
		report.Summary.Percentage = float64(report.Summary.UnlockedCount) / float64(report.Summary.TotalCount) * 100
	}

	return report, nil
}
