package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_BuildsWithoutErrors(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)
	assert.Equal(t, 1050, c.Len())
}

func TestNewCatalog_IDsAreUnique(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	seen := make(map[string]struct{}, c.Len())
	for _, a := range c.All() {
		_, dup := seen[a.ID]
		require.False(t, dup, "duplicate id %s", a.ID)
		seen[a.ID] = struct{}{}
	}
}

func TestNewCatalog_EveryEntryEvaluates(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	s := &Snapshot{GenreCounts: map[string]float64{}}
	for _, a := range c.All() {
		_, err := Evaluate(a, s)
		require.NoError(t, err, "entry %s must evaluate", a.ID)
	}
}

func TestNewCatalog_EntriesAreWellFormed(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	for _, a := range c.All() {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name, "entry %s has no name", a.ID)
		assert.NotEmpty(t, a.Description, "entry %s has no description", a.ID)
		assert.NotEmpty(t, a.Category, "entry %s has no category", a.ID)
		assert.NotEmpty(t, a.Tier, "entry %s has no tier", a.ID)
		assert.Greater(t, a.Points, 0.0, "entry %s has no points", a.ID)
	}
}

func TestCatalog_ByID(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	a, ok := c.ByID("watch_100")
	require.True(t, ok)
	assert.Equal(t, "Century Club", a.Name)
	assert.Equal(t, 100.0, a.Requirement.Value)
	assert.Equal(t, CompareAtLeast, a.Requirement.Compare)

	_, ok = c.ByID("no_such_id")
	assert.False(t, ok)
}

func TestCatalog_ContainsGeneratedFamilies(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	for _, id := range []string{
		"watch_2000", "ep_9000", "complete_900", "time_5000h",
		"genre_sci-fi_5", "genre_slice_of_life_300", "studio_diverse_150",
		"power_121", "binge_35", "collector_155", "ep_special_2222",
		"time_special_4320h", "mean_score_9.5", "numeric_497",
		"ep_numeric_1977", "completion_special_999", "extra_complete_153",
	} {
		_, ok := c.ByID(id)
		assert.True(t, ok, "expected generated entry %s", id)
	}
}

func TestCatalog_HiddenEntries(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	for _, id := range []string{"no_drops", "milestone_100_ep_single", "milestone_same_day"} {
		a, ok := c.ByID(id)
		require.True(t, ok)
		assert.True(t, a.Hidden, "entry %s should be hidden", id)
	}
}

func TestLadder_TiersAreMonotonic(t *testing.T) {
	order := map[Tier]int{
		TierBronze: 0, TierSilver: 1, TierGold: 2, TierPlatinum: 3, TierDiamond: 4,
	}

	prev := -1
	for _, v := range []float64{1, 50, 150, 400, 800, 1500} {
		tier := ladder(v, 100, 300, 600, 1000)
		assert.GreaterOrEqual(t, order[tier], prev)
		prev = order[tier]
	}

	assert.Equal(t, TierBronze, ladder(99, 100, 300, 600, 1000))
	assert.Equal(t, TierSilver, ladder(100, 100, 300, 600, 1000))
	assert.Equal(t, TierDiamond, ladder(1000, 100, 300, 600, 1000))
}
