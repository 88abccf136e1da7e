package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

// RespondJSON writes payload as the JSON response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// RespondError writes the generic failure envelope. The message is a short
// caller-facing string; internal error detail stays in the logs.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// parseLimit reads the limit query parameter, falling back to def when the
// value is absent, non-numeric or not positive.
func parseLimit(r *http.Request, def int64) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// NotFound is the fallback for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	RespondError(w, http.StatusNotFound, "Route not found")
}

// MethodNotAllowed is the fallback for unsupported methods on known routes.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
