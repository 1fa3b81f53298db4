package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/phonebook-backend/config"
	"github.com/ikkim/phonebook-backend/internal/app/controller"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	"github.com/ikkim/phonebook-backend/internal/db"
	"github.com/ikkim/phonebook-backend/internal/router"
	"github.com/ikkim/phonebook-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Server.LogFormat,
		EnableColor: true,
	})

	logger.Info("Starting phone directory server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
		"db_driver":   cfg.Database.Driver,
	})

	// Initialize database
	conn, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(conn); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	phoneRepo := repository.NewPhoneRepository(conn)
	reviewRepo := repository.NewReviewRepository(conn)

	// Initialize services
	phoneService := service.NewPhoneService(phoneRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, phoneRepo, cfg.Directory.AnonymousReviewerName)

	// Initialize controllers
	phoneController := controller.NewPhoneController(phoneService)
	reviewController := controller.NewReviewController(reviewService)

	// Setup router
	engine := router.NewRouter(phoneController, reviewController, cfg).Setup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server started successfully", map[string]interface{}{
		"address": srv.Addr,
		"pid":     os.Getpid(),
	})

	// returning instead of exiting lets the deferred database close run
	if err := serve(srv, quit); err != nil {
		logger.Error("Server stopped with error", err)
		return
	}

	logger.Info("Server stopped successfully")
}

// serve runs srv until it fails to listen or quit fires, then shuts it down
// within shutdownTimeout.
func serve(srv *http.Server, quit <-chan os.Signal) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-quit:
	}

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
