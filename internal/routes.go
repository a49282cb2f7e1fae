package internal

import (
	"net/http"

	"datecalc/internal/controllers"
	"datecalc/internal/providers"
	"datecalc/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/difference", http.HandlerFunc(apiController.DiffDates))
	routers.Post("/add", http.HandlerFunc(apiController.AddToDate))
	routers.Post("/subtract", http.HandlerFunc(apiController.SubtractFromDate))
	routers.Get("/history", http.HandlerFunc(apiController.GetHistory))
	routers.Delete("/history/clear", http.HandlerFunc(apiController.ClearHistory))
	return routers
}
