package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jmagnuss/vaultbrowse-be/internal/services"
)

// BackupHandler handles HTTP requests for the backup catalog.
type BackupHandler struct {
	service services.BackupServiceProvider
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(service services.BackupServiceProvider) *BackupHandler {
	return &BackupHandler{service: service}
}

// List handles the request to list backups, newest first.
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, services.DefaultBackupLimit)

	backups, err := h.service.ListBackups(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Int64("limit", limit).Msg("Failed to retrieve backups")
		RespondError(w, http.StatusInternalServerError, "Failed to retrieve backups")
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(backups),
		"backups": backups,
	})
}

// ListDownloadable handles the lighter listing used to pick a download.
func (h *BackupHandler) ListDownloadable(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, services.DefaultBackupLimit)

	backups, err := h.service.ListDownloadable(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Int64("limit", limit).Msg("Failed to retrieve downloadable backups")
		RespondError(w, http.StatusInternalServerError, "Failed to retrieve downloadable backups")
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(backups),
		"backups": backups,
	})
}
