package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fecu3799/project-arq-web/config"
	"github.com/Fecu3799/project-arq-web/database"
	"github.com/Fecu3799/project-arq-web/handlers"
	"github.com/Fecu3799/project-arq-web/middleware"
	"github.com/Fecu3799/project-arq-web/routes"
	"github.com/Fecu3799/project-arq-web/services"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store := database.NewFileStore(config.AppConfig.DataDir)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	var sessions services.SessionStore
	if config.AppConfig.SessionBackend == "redis" {
		sessions = &services.RedisSessionStore{
			Client: utils.GetAuthCacheClient(),
			TTL:    sessionTTL,
		}
	} else {
		sessions = services.NewMemorySessionStore(sessionTTL)
	}

	// services.
	authService := &services.DefaultAuthService{
		Store:    store,
		Sessions: sessions,
		TokenTTL: sessionTTL,
	}
	catalogService := &services.DefaultCatalogService{Store: store}
	availabilityService := &services.DefaultAvailabilityService{Store: store}
	appointmentService := &services.DefaultAppointmentService{Store: store}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestID())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		AuthSvc:      authService,
		Auth:         handlers.NewAuthHandler(authService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
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
