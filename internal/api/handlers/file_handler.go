package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jmagnuss/vaultbrowse-be/internal/mimetype"
	"github.com/jmagnuss/vaultbrowse-be/internal/services"
)

// FileHandler handles HTTP requests for the files inside a backup.
type FileHandler struct {
	service services.FileServiceProvider
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(service services.FileServiceProvider) *FileHandler {
	return &FileHandler{service: service}
}

// List handles the request to list the file entries of one backup. The
// backup id is taken verbatim from the path; an unknown id yields an empty
// listing rather than an error.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	backupID := pathParam(r, "id")
	limit := parseLimit(r, services.DefaultFileLimit)

	files, err := h.service.ListFiles(r.Context(), backupID, limit)
	if err != nil {
		log.Error().Err(err).Str("backup_id", backupID).Msg("Failed to retrieve files")
		RespondError(w, http.StatusInternalServerError, "Failed to retrieve files")
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"backup_id": backupID,
		"count":     len(files),
		"files":     files,
	})
}

// Download handles the request to fetch one file's raw bytes. The trailing
// wildcard is the file's relative path and may contain percent-encoded
// separators, so it is decoded before the lookup. The whole payload is
// written in a single response.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	backupID := pathParam(r, "backupId")

	relativePath, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid file path")
		return
	}

	file, err := h.service.GetFileContent(r.Context(), backupID, relativePath)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			RespondError(w, http.StatusNotFound, "File not found")
			return
		}
		log.Error().Err(err).Str("backup_id", backupID).Str("relative_path", relativePath).Msg("Failed to download file")
		RespondError(w, http.StatusInternalServerError, "Failed to download file")
		return
	}

	w.Header().Set("Content-Type", mimetype.Lookup(file.Filename))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(file.Filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		log.Warn().Err(err).Str("backup_id", backupID).Str("relative_path", relativePath).Msg("Download write aborted")
	}
}

// pathParam returns a chi URL parameter percent-decoded. Parameters come
// back raw when the router matched on the encoded path; a value that does
// not decode is returned as-is.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// sanitizeFilename strips directory components, quotes, and CR/LF from a
// filename so it is safe inside a Content-Disposition header.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(name)
	name = strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(name)
	if name == "" || name == "." || name == ".." {
		return "download"
	}
	return name
}
