package httpapi

import (
	"database/sql"
	"net/http"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/store"
	"jobtrack-engine/internal/textutil"
)

type JobsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	q := r.URL.Query()

	status := domain.JobStatus(q.Get("status"))
	if status != "" && !status.Valid() {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status")
		return
	}

	jobs, err := store.ListJobs(r.Context(), h.DB, store.ListJobsOpts{
		UserID: u.ID, Status: status, Sort: q.Get("sort"),
	})
	if err != nil {
		writeStoreError(w, r, "fetch jobs", err)
		return
	}
	writeJSON(w, jobs)
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	var req createJobReq
	if !decodeBody(w, r, &req) {
		return
	}

	job, err := store.InsertJob(r.Context(), h.DB, domain.Job{
		UserID:       u.ID,
		Company:      strings.TrimSpace(req.Company),
		Title:        strings.TrimSpace(req.Title),
		Description:  textutil.Description(req.Description),
		Industry:     strings.TrimSpace(req.Industry),
		Location:     strings.TrimSpace(req.Location),
		WorkLocation: req.WorkLocation,
		Status:       req.Status,
		PostURL:      strings.TrimSpace(req.PostURL),
	})
	if err != nil {
		writeStoreError(w, r, "create job", err)
		return
	}

	h.Hub.Publish(events.MakeUserEvent(RequestIDFrom(r.Context()), u.ID, events.TypeJobCreated, 1, map[string]any{"id": job.ID}))
	WriteJSON(w, http.StatusCreated, job)
}

func (h JobsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var req patchJobReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Description != nil {
		d := textutil.Description(*req.Description)
		req.Description = &d
	}

	job, err := store.UpdateJob(r.Context(), h.DB, u.ID, id, store.JobPatch{
		Status:       req.Status,
		Description:  req.Description,
		Location:     req.Location,
		WorkLocation: req.WorkLocation,
		PostURL:      req.PostURL,
	})
	if err != nil {
		writeStoreError(w, r, "update job", err)
		return
	}

	h.Hub.Publish(events.MakeUserEvent(RequestIDFrom(r.Context()), u.ID, events.TypeJobUpdated, 1, map[string]any{"id": job.ID, "status": job.Status}))
	writeJSON(w, job)
}

func (h JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	if err := store.DeleteJob(r.Context(), h.DB, u.ID, id); err != nil {
		writeStoreError(w, r, "delete job", err)
		return
	}

	h.Hub.Publish(events.MakeUserEvent(RequestIDFrom(r.Context()), u.ID, events.TypeJobDeleted, 1, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
