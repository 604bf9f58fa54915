package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"aniboard/internal/anilist"
	"aniboard/internal/providers"
	"aniboard/internal/services"
	"aniboard/internal/timeline"
)

type ApiController struct {
	logger  providers.Logger
	service services.DashboardServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.DashboardServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func getUser(r *http.Request) string {
	return r.URL.Query().Get("user")
}

func getZoom(r *http.Request) timeline.ZoomLevel {
	return timeline.ZoomLevel(r.URL.Query().Get("zoom"))
}

func getStatus(r *http.Request) string {
	status := r.URL.Query().Get("status")
	if status == "" {
		return timeline.StatusAll
	}
	return status
}

// serveFromCacheOrCompute answers from the response cache when the key
// is warm, otherwise runs compute, caches and writes the result.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, anilist.ErrRateLimited) {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		return
	}
	ac.logger.Errorf(providers.TypeApp, "request failed: %v", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (ac *ApiController) GetAchievements(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "missing user parameter", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "achievements:"+user, func() (any, error) {
		return ac.service.AchievementReport(r.Context(), user)
	})
}

func (ac *ApiController) GetAchievementSummary(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "missing user parameter", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "summary:"+user, func() (any, error) {
		return ac.service.AchievementSummary(r.Context(), user)
	})
}

func (ac *ApiController) GetTimeline(w http.ResponseWriter, r *http.Request) {
	user := getUser(r)
	if user == "" {
		http.Error(w, "missing user parameter", http.StatusBadRequest)
		return
	}
	zoom := getZoom(r)
	status := getStatus(r)
	ac.serveFromCacheOrCompute(w, "timeline:"+user+":"+string(zoom)+":"+status, func() (any, error) {
		return ac.service.Timeline(r.Context(), user, zoom, status)
	})
}
