package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"worktrack/internal/store"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response",
			"error", err,
			"path", r.URL.Path,
			"component", "http")
	}
}

// decodeJSON reads the request body into v, rejecting unknown fields
// and oversized payloads.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// writeStoreError maps store sentinel errors onto HTTP status codes.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, store.ErrNotHydrated):
		writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: "store is hydrating"})
	default:
		slog.ErrorContext(r.Context(), "Unhandled store error",
			"error", err,
			"path", r.URL.Path,
			"component", "http")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	slog.WarnContext(r.Context(), "Bad request",
		"error", err,
		"path", r.URL.Path,
		"component", "http")
	writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
