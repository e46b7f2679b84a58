package routers

import (
	"emission-service/internal/app/config"
	"emission-service/internal/app/delivery/http/controllers"
	"emission-service/internal/app/delivery/http/middlewares"
	"emission-service/internal/app/delivery/http/views"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metricsHandler http.Handler,
	healthController *controllers.HealthController,
	pageController *controllers.PageController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	statsController *controllers.StatsController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.Instrument)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.Limit(
		internalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(logger, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.LimitBody)

	router.Get(constvars.PathHealthz, healthController.Healthz)
	router.Handle(constvars.PathMetrics, metricsHandler)
	router.Handle(constvars.PathStatic+"/*", views.StaticHandler())

	attachPageRoutes(router, middlewares, pageController)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/stats", func(r chi.Router) {
				attachStatsRoutes(r, middlewares, statsController)
			})

			r.With(middlewares.Authenticate).Get("/dashboard", statsController.GetDashboard)
		})
	})
}
