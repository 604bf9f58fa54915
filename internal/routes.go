package internal

import (
	"net/http"

	"aniboard/internal/controllers"
	"aniboard/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/achievements", http.HandlerFunc(apiController.GetAchievements))
	routers.Get("/achievements/summary", http.HandlerFunc(apiController.GetAchievementSummary))
	routers.Get("/timeline", http.HandlerFunc(apiController.GetTimeline))
	return routers
}
