package routers

import (
	"emission-service/internal/app/delivery/http/controllers"
	"emission-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStatsRoutes(router chi.Router, middlewares *middlewares.Middlewares, statsController *controllers.StatsController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", statsController.GetStats)
	router.Get("/week", statsController.GetWeekSeries)
	router.Get("/month", statsController.GetMonthBuckets)
}
