package services

import (
	"context"
	"fmt"
	"time"

	"aniboard/internal/achievements"
	"aniboard/internal/anilist"
	"aniboard/internal/providers"
	"aniboard/internal/timeline"
)

type DashboardServiceInterface interface {
	AchievementReport(ctx context.Context, userName string) (*achievements.Report, error)
	AchievementSummary(ctx context.Context, userName string) (*achievements.Summary, error)
	Timeline(ctx context.Context, userName string, zoom timeline.ZoomLevel, status string) (*timeline.View, error)
}

// DashboardService glues the upstream client to the evaluation and
// layout engines. The anime list is the one piece of data nothing
// works without; profile and activity data only enrich the snapshot,
// so their failures degrade to zero counts instead of failing the
// whole request.
type DashboardService struct {
	client  anilist.ClientInterface
	catalog *achievements.Catalog
	logger  providers.Logger
	now     func() time.Time
}

func NewDashboardService(client anilist.ClientInterface, catalog *achievements.Catalog, logger providers.Logger) DashboardServiceInterface {
	return &DashboardService{
		client:  client,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

func (ds *DashboardService) buildSnapshot(ctx context.Context, userName string) (*achievements.Snapshot, error) {
	lists, err := ds.client.AnimeList(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("fetch anime list for %s: %w", userName, err)
	}

	favoritesCount := 0
	activityCount := 0

	profile, err := ds.client.UserProfile(ctx, userName)
	if err != nil {
		ds.logger.Warnf(providers.TypeApp, "profile fetch failed for %s, favorites and activity default to 0: %v", userName, err)
	} else {
		favoritesCount = profile.FavoritesCount
		count, err := ds.client.ActivityCount(ctx, profile.ID)
		if err != nil {
			ds.logger.Warnf(providers.TypeApp, "activity fetch failed for %s, defaulting to 0: %v", userName, err)
		} else {
			activityCount = count
		}
	}

	return achievements.BuildSnapshot(lists, favoritesCount, activityCount), nil
}

func (ds *DashboardService) AchievementReport(ctx context.Context, userName string) (*achievements.Report, error) {
	snapshot, err := ds.buildSnapshot(ctx, userName)
	if err != nil {
		return nil, err
	}
	return ds.catalog.Aggregate(snapshot)
}

func (ds *DashboardService) AchievementSummary(ctx context.Context, userName string) (*achievements.Summary, error) {
	report, err := ds.AchievementReport(ctx, userName)
	if err != nil {
		return nil, err
	}
	return &report.Summary, nil
}

func (ds *DashboardService) Timeline(ctx context.Context, userName string, zoom timeline.ZoomLevel, status string) (*timeline.View, error) {
	lists, err := ds.client.AnimeList(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("fetch anime list for %s: %w", userName, err)
	}

	var raw []anilist.MediaListEntry
	for _, list := range lists {
		raw = append(raw, list.Entries...)
	}

	entries := timeline.FilterByStatus(timeline.Normalize(raw), status)
	return timeline.BuildView(entries, zoom, ds.now())
}
