package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commuterhub/config"
	"commuterhub/database"
	"commuterhub/handlers"
	"commuterhub/middleware"
	"commuterhub/models"
	"commuterhub/routes"
	"commuterhub/services/assistant"
	"commuterhub/services/weather"
	"commuterhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Reservation store: Mongo-backed when a database URL is configured,
	// in-memory otherwise.
	var store database.StateStore
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		mongoStore, err := database.NewMongoStateStore(database.MongoClient, "commuterhub")
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load state store: %v", err)
		}
		store = mongoStore
	} else {
		store = database.NewMemoryStateStore(models.AppState{Resources: database.DefaultResources()})
	}

	// Assistant session state lives in Redis when available.
	var sessions assistant.SessionStore
	if config.AppConfig.RedisAddr != "" {
		sessions = assistant.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)
	} else {
		sessions = assistant.NewMemorySessionStore()
	}

	weatherClient := weather.NewOpenMeteoClient(
		config.AppConfig.WeatherAPIBase,
		config.AppConfig.WeatherLat,
		config.AppConfig.WeatherLon,
		logger,
	)

	assistantSvc := assistant.NewDefaultAssistantService(
		store,
		weatherClient,
		sessions,
		utils.NewUUIDGenerator(),
		config.AppConfig.WeatherCity,
		assistant.NumberRange{Start: config.AppConfig.LockerRangeStart, End: config.AppConfig.LockerRangeEnd},
		assistant.NumberRange{Start: config.AppConfig.RackRangeStart, End: config.AppConfig.RackRangeEnd},
	)

	assistantHandler := handlers.NewAssistantHandler(assistantSvc, logger)
	reservationsHandler := handlers.NewReservationsHandler(store)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, assistantHandler, reservationsHandler)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
