package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"aniboard/internal/achievements"
	"aniboard/internal/anilist"
	"aniboard/internal/providers"
	"aniboard/internal/timeline"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockService struct {
	report     *achievements.Report
	reportErr  error
	view       *timeline.View
	viewErr    error
	lastZoom   timeline.ZoomLevel
	lastStatus string
}

func (m *mockService) AchievementReport(_ context.Context, _ string) (*achievements.Report, error) {
	return m.report, m.reportErr
}

func (m *mockService) AchievementSummary(_ context.Context, _ string) (*achievements.Summary, error) {
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return &m.report.Summary, nil
}

func (m *mockService) Timeline(_ context.Context, _ string, zoom timeline.ZoomLevel, status string) (*timeline.View, error) {
	m.lastZoom = zoom
	m.lastStatus = status
	return m.view, m.viewErr
}

type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache                     { return &mockCache{data: make(map[string][]byte)} }
func (m *mockCache) Get(key string) ([]byte, bool) { v, ok := m.data[key]; return v, ok }
func (m *mockCache) Set(key string, value []byte)  { m.data[key] = value }

// --- helpers ---

func newTestController(svc *mockService, cache *mockCache) *ApiController {
	return NewApiController(&mockLogger{}, svc, cache)
}

func sampleReport() *achievements.Report {
	return &achievements.Report{
		Summary: achievements.Summary{
			UnlockedCount: 3,
			TotalCount:    1050,
			Points:        55,
			Percentage:    3.0 / 1050 * 100,
			ByCategory:    map[achievements.Category]int{achievements.CategoryWatching: 3},
			ByTier:        map[achievements.Tier]int{achievements.TierBronze: 3},
		},
	}
}

// --- GetAchievements tests ---

func TestGetAchievements_MissingUser(t *testing.T) {
	ac := newTestController(&mockService{}, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/achievements", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievements(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAchievements_Success(t *testing.T) {
	svc := &mockService{report: sampleReport()}
	ac := newTestController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/achievements?user=tester", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievements(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var report achievements.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 1050, report.Summary.TotalCount)
	assert.Equal(t, 3, report.Summary.UnlockedCount)
}

func TestGetAchievements_ServedFromCache(t *testing.T) {
	cache := newMockCache()
	cache.data["achievements:tester"] = []byte(`{"cached":true}`)
	svc := &mockService{reportErr: errors.New("service must not be called")}
	ac := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/achievements?user=tester", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievements(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"cached":true}`, rr.Body.String())
}

func TestGetAchievements_ServiceError(t *testing.T) {
	svc := &mockService{reportErr: errors.New("boom")}
	ac := newTestController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/achievements?user=tester", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievements(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetAchievements_RateLimitedMapsTo429(t *testing.T) {
	svc := &mockService{reportErr: anilist.ErrRateLimited}
	ac := newTestController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/achievements?user=tester", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievements(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// --- GetAchievementSummary tests ---

func TestGetAchievementSummary_Success(t *testing.T) {
	svc := &mockService{report: sampleReport()}
	ac := newTestController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/achievements/summary?user=tester", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievementSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var summary achievements.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 55.0, summary.Points)
}

func TestGetAchievementSummary_MissingUser(t *testing.T) {
	ac := newTestController(&mockService{}, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/achievements/summary", nil)
	rr := httptest.NewRecorder()

	ac.GetAchievementSummary(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- GetTimeline tests ---

func TestGetTimeline_PassesZoomAndStatus(t *testing.T) {
	svc := &mockService{view: &timeline.View{Zoom: timeline.ZoomDetailed}}
	ac := newTestController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/timeline?user=tester&zoom=detailed&status=COMPLETED", nil)
	rr := httptest.NewRecorder()

	ac.GetTimeline(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, timeline.ZoomDetailed, svc.lastZoom)
	assert.Equal(t, "COMPLETED", svc.lastStatus)
}

func TestGetTimeline_DefaultsStatusToAll(t *testing.T) {
	svc := &mockService{view: &timeline.View{}}
	ac := newTestController(svc, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/timeline?user=tester", nil)
	rr := httptest.NewRecorder()

	ac.GetTimeline(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, timeline.StatusAll, svc.lastStatus)
}

func TestGetTimeline_CacheKeyVariesByZoom(t *testing.T) {
	svc := &mockService{view: &timeline.View{}}
	cache := newMockCache()
	ac := newTestController(svc, cache)

	for _, zoom := range []string{"compact", "expanded"} {
		req := httptest.NewRequest(http.MethodGet, "/timeline?user=tester&zoom="+zoom, nil)
		rr := httptest.NewRecorder()
		ac.GetTimeline(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Contains(t, cache.data, "timeline:tester:compact:all")
	assert.Contains(t, cache.data, "timeline:tester:expanded:all")
}

func TestGetTimeline_MissingUser(t *testing.T) {
	ac := newTestController(&mockService{}, newMockCache())

	req := httptest.NewRequest(http.MethodGet, "/timeline?zoom=normal", nil)
	rr := httptest.NewRecorder()

	ac.GetTimeline(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
