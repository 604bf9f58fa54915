//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"aniboard/internal"
	"aniboard/internal/achievements"
	"aniboard/internal/anilist"
	"aniboard/internal/controllers"
	"aniboard/internal/providers"
	"aniboard/internal/services"
	"aniboard/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		achievements.NewCatalog,
		provideCatalogSize,
		providers.NewMetricsProvider,

		anilist.NewZstdCompressor,
		anilist.NewClient,
		services.NewDashboardService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
