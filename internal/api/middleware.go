package api

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/jmagnuss/vaultbrowse-be/internal/api/handlers"
)

// recoverJSON converts a handler panic into the generic failure envelope
// instead of an empty 500, so no request goes unanswered.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Error().
					Interface("panic", rvr).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from handler panic")
				handlers.RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
