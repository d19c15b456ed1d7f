package httpapi

import (
	"crypto/subtle"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"jobtrack-engine/internal/store"
)

// AdminHandler serves maintenance endpoints. Callers must be on loopback
// and present X-Admin-Token.
type AdminHandler struct {
	DB       *sql.DB
	Token    string
	Shutdown func()
}

func (h AdminHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	if !isLocal(r) {
		WriteError(w, r, http.StatusForbidden, "forbidden", "forbidden")
		return false
	}
	got := strings.TrimSpace(r.Header.Get("X-Admin-Token"))
	if h.Token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.Token)) != 1 {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return false
	}
	return true
}

func (h AdminHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "FULL"
	}
	if err := store.Checkpoint(r.Context(), h.DB, mode); err != nil {
		slog.Error("wal checkpoint", "mode", mode, "err", err)
		WriteError(w, r, http.StatusInternalServerError, "checkpoint_failed", "checkpoint failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AdminHandler) ShutdownNow(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}
	w.WriteHeader(http.StatusAccepted)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	if h.Shutdown != nil {
		go h.Shutdown()
	}
}
