package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aniboard/internal/achievements"
	"aniboard/internal/anilist"
	"aniboard/internal/providers"
	"aniboard/internal/timeline"
)

// --- local mocks (scoped to service tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockClient struct {
	profile     *anilist.UserProfile
	profileErr  error
	lists       []anilist.ListGroup
	listsErr    error
	activity    int
	activityErr error
}

func (m *mockClient) UserProfile(_ context.Context, _ string) (*anilist.UserProfile, error) {
	return m.profile, m.profileErr
}

func (m *mockClient) AnimeList(_ context.Context, _ string) ([]anilist.ListGroup, error) {
	return m.lists, m.listsErr
}

func (m *mockClient) ActivityCount(_ context.Context, _ int) (int, error) {
	return m.activity, m.activityErr
}

// --- helpers ---

func newTestService(t *testing.T, client *mockClient) DashboardServiceInterface {
	t.Helper()
	catalog, err := achievements.NewCatalog()
	require.NoError(t, err)
	return NewDashboardService(client, catalog, &mockLogger{})
}

func sampleLists() []anilist.ListGroup {
	return []anilist.ListGroup{{
		Name: "Completed",
		Entries: []anilist.MediaListEntry{
			{
				ID: 1, Status: anilist.StatusCompleted, Score: 10, Progress: 24,
				StartedAt:   anilist.FuzzyDate{Year: 2024, Month: 1, Day: 5},
				CompletedAt: anilist.FuzzyDate{Year: 2024, Month: 2, Day: 1},
				Media:       anilist.Media{Format: anilist.FormatTV, Genres: []string{"Action"}},
			},
			{
				ID: 2, Status: anilist.StatusCurrent, Progress: 6,
				StartedAt: anilist.FuzzyDate{Year: 2024, Month: 3, Day: 1},
				Media:     anilist.Media{Format: anilist.FormatTV, Status: anilist.MediaStatusReleasing},
			},
		},
	}}
}

func TestAchievementReport(t *testing.T) {
	client := &mockClient{
		profile:  &anilist.UserProfile{ID: 42, Name: "tester", FavoritesCount: 12},
		lists:    sampleLists(),
		activity: 300,
	}

	report, err := newTestService(t, client).AchievementReport(context.Background(), "tester")
	require.NoError(t, err)

	assert.Equal(t, 1050, report.Summary.TotalCount)
	assert.Greater(t, report.Summary.UnlockedCount, 0)

	byID := make(map[string]achievements.Evaluated)
	for _, r := range report.Results {
		byID[r.Achievement.ID] = r
	}
	assert.True(t, byID["watch_1"].Unlocked)
	assert.True(t, byID["score_10_1"].Unlocked)
	assert.True(t, byID["favorites_10"].Unlocked)
	assert.True(t, byID["activity_100"].Unlocked)
}

func TestAchievementReport_ListFetchFails(t *testing.T) {
	client := &mockClient{listsErr: errors.New("boom")}

	_, err := newTestService(t, client).AchievementReport(context.Background(), "tester")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestAchievementReport_ProfileFailureDegrades(t *testing.T) {
	client := &mockClient{
		profileErr: errors.New("upstream down"),
		lists:      sampleLists(),
	}

	report, err := newTestService(t, client).AchievementReport(context.Background(), "tester")
	require.NoError(t, err)

	byID := make(map[string]achievements.Evaluated)
	for _, r := range report.Results {
		byID[r.Achievement.ID] = r
	}
	assert.False(t, byID["favorites_10"].Unlocked)
	assert.False(t, byID["activity_100"].Unlocked)
	assert.True(t, byID["watch_1"].Unlocked, "list-derived achievements must survive profile failure")
}

func TestAchievementReport_ActivityFailureDegrades(t *testing.T) {
	client := &mockClient{
		profile:     &anilist.UserProfile{ID: 42, FavoritesCount: 12},
		lists:       sampleLists(),
		activityErr: errors.New("rate limited"),
	}

	report, err := newTestService(t, client).AchievementReport(context.Background(), "tester")
	require.NoError(t, err)

	byID := make(map[string]achievements.Evaluated)
	for _, r := range report.Results {
		byID[r.Achievement.ID] = r
	}
	assert.False(t, byID["activity_100"].Unlocked)
	assert.True(t, byID["favorites_10"].Unlocked)
}

func TestAchievementSummary(t *testing.T) {
	client := &mockClient{
		profile: &anilist.UserProfile{ID: 42},
		lists:   sampleLists(),
	}

	summary, err := newTestService(t, client).AchievementSummary(context.Background(), "tester")
	require.NoError(t, err)
	assert.Equal(t, 1050, summary.TotalCount)
	assert.Greater(t, summary.Points, 0.0)
}

func TestTimeline(t *testing.T) {
	client := &mockClient{lists: sampleLists()}

	view, err := newTestService(t, client).Timeline(context.Background(), "tester", timeline.ZoomNormal, timeline.StatusAll)
	require.NoError(t, err)

	assert.Len(t, view.Bars, 2)
	assert.Equal(t, timeline.ZoomNormal, view.Zoom)
	require.NotNil(t, view.Range)
}

func TestTimeline_StatusFilter(t *testing.T) {
	client := &mockClient{lists: sampleLists()}

	view, err := newTestService(t, client).Timeline(context.Background(), "tester", timeline.ZoomCompact, anilist.StatusCompleted)
	require.NoError(t, err)

	require.Len(t, view.Bars, 1)
	assert.Equal(t, 1, view.Bars[0].Entry.ID)
}

func TestTimeline_ListFetchFails(t *testing.T) {
	client := &mockClient{listsErr: errors.New("boom")}

	_, err := newTestService(t, client).Timeline(context.Background(), "tester", timeline.ZoomNormal, timeline.StatusAll)
	require.Error(t, err)
}
