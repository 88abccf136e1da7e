package handlers

import (
	"net/http"

	"github.com/jmagnuss/vaultbrowse-be/internal/services"
)

// StatusHandler handles the root status and health endpoints.
type StatusHandler struct {
	service services.StatusServiceProvider
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(service services.StatusServiceProvider) *StatusHandler {
	return &StatusHandler{service: service}
}

// Root reports that the process is up along with its memory footprint.
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Backup archive API is running",
		"status":  "ok",
		"memory":  h.service.MemoryUsage(),
	})
}

// Health always answers 200: process liveness and database reachability
// are reported separately so an orchestrator probe never trips on a
// storage outage.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"status":   "healthy",
		"database": h.service.DatabaseState(r.Context()),
	})
}
