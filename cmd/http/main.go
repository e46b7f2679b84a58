package main

import (
	"context"
	"emission-service/internal/app/config"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/delivery/http/controllers"
	"emission-service/internal/app/delivery/http/middlewares"
	"emission-service/internal/app/delivery/http/routers"
	"emission-service/internal/app/delivery/http/views"
	"emission-service/internal/app/drivers/database"
	"emission-service/internal/app/drivers/logger"
	"emission-service/internal/app/migration"
	"emission-service/internal/app/observability"
	"emission-service/internal/app/services/core/auth"
	"emission-service/internal/app/services/core/dashboard"
	"emission-service/internal/app/services/core/session"
	"emission-service/internal/app/services/core/stats"
	"emission-service/internal/app/services/core/users"
	"emission-service/internal/app/services/shared/redis"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	for _, key := range utils.InvalidEnvKeys() {
		log.Warn("Invalid environment value, default used", zap.String("key", key))
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	sqliteDB := database.NewSQLiteDB(driverConfig)
	if internalConfig.App.AutoMigrate {
		applied, err := migration.Up(sqliteDB)
		if err != nil {
			log.Fatal("Error executing migration", zap.Error(err))
		}
		log.Info("Schema migrations applied", zap.Int("count", applied))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		SQLite:         sqliteDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	switch internalConfig.App.SessionStore {
	case constvars.SessionStoreRedis:
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	case constvars.SessionStoreMemory:
		log.Warn("Sessions are kept in memory and are lost on restart")
	default:
		log.Fatal("Unknown session store", zap.String("session_store", internalConfig.App.SessionStore))
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	clock := clockwork.NewRealClock()

	// Metrics
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	metricsHandler := promhttp.Handler()

	// Session
	var redisRepository contracts.RedisRepository
	var sessionStore contracts.SessionStore
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		sessionStore = session.NewSessionRedisStore(redisRepository, bootstrap.Logger)
	} else {
		sessionStore = session.NewSessionMemoryStore(clock)
	}
	sessionService := session.NewSessionService(sessionStore, clock, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, metrics, bootstrap.InternalConfig)

	// Users
	userRepository := users.NewUserSQLiteRepository(bootstrap.SQLite, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userRepository, sessionService, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, metrics, bootstrap.Logger)

	// Stats and dashboard
	statsUsecase := stats.NewStatsUsecase(clock, location, bootstrap.Logger)
	dashboardUsecase := dashboard.NewDashboardUsecase(bootstrap.InternalConfig.App.DashboardPollutionValue, bootstrap.Logger)

	// Views
	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	// Controllers
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.SQLite, redisRepository)
	pageController := controllers.NewPageController(
		bootstrap.Logger,
		renderer,
		authUsecase,
		userUsecase,
		statsUsecase,
		dashboardUsecase,
		bootstrap.InternalConfig,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	statsController := controllers.NewStatsController(bootstrap.Logger, statsUsecase, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.Logger,
		bootstrap.InternalConfig,
		middlewares,
		metricsHandler,
		healthController,
		pageController,
		authController,
		userController,
		statsController,
	)
	return nil
}
