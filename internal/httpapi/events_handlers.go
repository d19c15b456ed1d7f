package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"jobtrack-engine/internal/events"
)

type EventsHandler struct {
	Hub *events.Hub
}

// ServeSSE streams hub events. With ?user=N, events scoped to other users
// are skipped.
func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "Streaming unsupported")
		return
	}

	var onlyUser int64
	if raw := r.URL.Query().Get("user"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			WriteError(w, r, http.StatusBadRequest, "invalid_user", "invalid user")
			return
		}
		onlyUser = n
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	reqID := RequestIDFrom(r.Context())
	ping := events.MakeEvent(reqID, events.TypePing, 1, nil)
	fmt.Fprintf(w, "event: message\ndata: %s\n\n", ping)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if onlyUser != 0 && !forUser(msg, onlyUser) {
				continue
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func forUser(msg string, userID int64) bool {
	var e struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(msg), &e); err != nil {
		return false
	}
	return e.UserID == 0 || e.UserID == userID
}
