package httpapi

import (
	"database/sql"
	"net/http"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/store"
)

type UsersHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := store.CreateUser(r.Context(), h.DB, domain.User{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Skills: []string(req.Skills),
	})
	if err != nil {
		writeStoreError(w, r, "create user", err)
		return
	}
	WriteJSON(w, http.StatusCreated, u)
}

func (h UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	writeJSON(w, u)
}

// PutSkills replaces the user's declared skills. A body whose skills field
// is not a list clears them.
func (h UsersHandler) PutSkills(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	var req putSkillsReq
	if !decodeBody(w, r, &req) {
		return
	}
	list := []string(req.Skills)
	if list == nil {
		list = []string{}
	}
	if err := store.SetUserSkills(r.Context(), h.DB, u.ID, list); err != nil {
		writeStoreError(w, r, "update skills", err)
		return
	}
	u.Skills = list

	h.Hub.Publish(events.MakeUserEvent(RequestIDFrom(r.Context()), u.ID, events.TypeSkillsUpdated, 1, map[string]any{"skills": list}))
	writeJSON(w, u)
}
