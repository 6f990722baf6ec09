// Package respond provides helpers for writing JSON responses, including
// error sanitization so internal details never reach callers.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes err's message as a JSON error response.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeMarkers identify error messages that are written for callers
// (validation and dispatch errors) and may be returned verbatim.
var safeMarkers = []string{
	"required",
	"invalid",
	"unknown",
	"unauthorized",
	"must be",
	"too large",
	"not found",
}

// SafeError writes err as a JSON error response, replacing messages that
// look internal with a generic one. 5xx responses are always treated as
// internal and logged with the original error.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	safe := false
	if code < http.StatusInternalServerError {
		msg := strings.ToLower(err.Error())
		for _, marker := range safeMarkers {
			if strings.Contains(msg, marker) {
				safe = true
				break
			}
		}
	}

	if safe {
		Error(w, code, err)
		return
	}

	slog.Default().Error("internal server error",
		slog.Int("code", code),
		slog.String("status", http.StatusText(code)),
		slog.Any("error", err))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
