package internal

import (
	"net/http"

	"ctfwatch/internal/controllers"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/events", http.HandlerFunc(apiController.GetEvents))
	routers.Get("/events/new", http.HandlerFunc(apiController.GetNewEvents))
	routers.Get("/event", http.HandlerFunc(apiController.GetEvent))
	routers.Get("/watchlist", http.HandlerFunc(apiController.GetWatchlist))
	routers.Post("/watchlist/add", http.HandlerFunc(apiController.AddToWatchlist))
	routers.Delete("/watchlist/remove", http.HandlerFunc(apiController.RemoveFromWatchlist))
	routers.Get("/top", http.HandlerFunc(apiController.GetTopTeams))
	routers.Get("/team", http.HandlerFunc(apiController.GetTeam))
	return routers
}
