package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jmagnuss/vaultbrowse-be/internal/api"
	"github.com/jmagnuss/vaultbrowse-be/internal/config"
	"github.com/jmagnuss/vaultbrowse-be/internal/database"
	"github.com/jmagnuss/vaultbrowse-be/internal/logger"
	"github.com/jmagnuss/vaultbrowse-be/internal/monitoring"
	"github.com/jmagnuss/vaultbrowse-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to the archive store. A nil handle is fine: the server then
	// runs degraded and every data route reports the outage.
	db := database.Connect(cfg)

	// Set up services
	backupService := services.NewBackupService(db)
	fileService := services.NewFileService(db)
	statusService := services.NewStatusService(db)

	// Set up and run the background status reporter
	reporter, err := monitoring.NewReporter(statusService, cfg.StatusSchedule)
	if err != nil {
		log.Warn().Err(err).Msg("Status reporter disabled")
	} else {
		go reporter.Run()
	}

	// Set up router
	router := api.NewRouter(cfg, backupService, fileService, statusService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	if reporter != nil {
		reporter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if err := db.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close database connection")
	}

	log.Info().Msg("Server exiting")
}
