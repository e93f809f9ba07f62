// Package handler contains the HTTP layer: thin handlers that decode
// requests, delegate to services, and render responses. Success bodies
// are JSON objects keyed by the resource name ({"articles": [...]},
// {"article": {...}}); error bodies are {"msg": "..."}.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mvasquez/newsboard/internal/apperror"
)

// envelope keys a response body by its resource name.
type envelope map[string]any

// errorResponse is the uniform error body shape for every status.
type errorResponse struct {
	Msg string `json:"msg"`
}

// writeJSON sends a JSON response. Headers and status must be set
// before the first body write.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already gone; logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to its HTTP status and sends the
// {"msg": ...} body. Services and repositories classify errors as
// apperror kinds; anything unclassified becomes a generic 500 so
// internal details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Msg: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Msg: "Internal Server Error"})
}

// RouteNotFound is the fallback handler for unmatched routes.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Msg: "Route Not Found"})
}
