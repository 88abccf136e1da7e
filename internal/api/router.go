package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jmagnuss/vaultbrowse-be/internal/api/handlers"
	"github.com/jmagnuss/vaultbrowse-be/internal/config"
	"github.com/jmagnuss/vaultbrowse-be/internal/services"
)

// maxBodySize caps request bodies at 1MB. The read-only routes carry no
// bodies, but the cap is part of the API boundary.
const maxBodySize = 1 << 20

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	backupService services.BackupServiceProvider,
	fileService services.FileServiceProvider,
	statusService services.StatusServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverJSON)
	r.Use(middleware.RequestSize(maxBodySize))
	if cfg.QueryTimeout > 0 {
		r.Use(middleware.Timeout(cfg.QueryTimeout))
	}

	// The archive is browsed by arbitrary frontends, so any origin may read.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// Initialize handlers
	backupHandler := handlers.NewBackupHandler(backupService)
	fileHandler := handlers.NewFileHandler(fileService)
	statusHandler := handlers.NewStatusHandler(statusService)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", statusHandler.Root)
	r.Get("/health", statusHandler.Health)
	r.Get("/backups", backupHandler.List)
	r.Get("/backups/{id}/files", fileHandler.List)
	r.Get("/downloads", backupHandler.ListDownloadable)
	r.Get("/download/{backupId}/*", fileHandler.Download)

	return r
}
