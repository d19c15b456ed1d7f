package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"jobtrack-engine/internal/store"
)

// ErrUnauthenticated means the request named no known user.
var ErrUnauthenticated = errors.New("unauthenticated")

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeStoreError maps a store failure to a response. Details go to the
// log; the client gets a generic message.
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", op+": not found")
	case errors.Is(err, store.ErrConflict):
		WriteError(w, r, http.StatusConflict, "conflict", op+": already exists")
	case errors.Is(err, ErrUnauthenticated):
		WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "unknown or missing user")
	default:
		slog.Error("store failure", "op", op, "request_id", RequestIDFrom(r.Context()), "err", err)
		WriteError(w, r, http.StatusInternalServerError, "internal_error", op+" failed")
	}
}
