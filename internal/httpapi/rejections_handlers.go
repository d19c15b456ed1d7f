package httpapi

import (
	"database/sql"
	"net/http"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/store"
)

type RejectionsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h RejectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	list, err := store.ListRejections(r.Context(), h.DB, u.ID)
	if err != nil {
		writeStoreError(w, r, "fetch rejections", err)
		return
	}
	writeJSON(w, list)
}

func (h RejectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	var req createRejectionReq
	if !decodeBody(w, r, &req) {
		return
	}

	rej, err := store.InsertRejection(r.Context(), h.DB, domain.Rejection{
		UserID: u.ID,
		JobID:  req.JobID,
		Notes:  strings.TrimSpace(req.Notes),
	})
	if err != nil {
		writeStoreError(w, r, "record rejection", err)
		return
	}

	h.Hub.Publish(events.MakeUserEvent(RequestIDFrom(r.Context()), u.ID, events.TypeRejectionCreated, 1, map[string]any{"id": rej.ID, "jobId": rej.JobID}))
	WriteJSON(w, http.StatusCreated, rej)
}

func (h RejectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	if err := store.DeleteRejection(r.Context(), h.DB, u.ID, id); err != nil {
		writeStoreError(w, r, "delete rejection", err)
		return
	}

	h.Hub.Publish(events.MakeUserEvent(RequestIDFrom(r.Context()), u.ID, events.TypeRejectionDeleted, 1, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
