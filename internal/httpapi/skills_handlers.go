package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/skills"
	"jobtrack-engine/internal/store"
)

type SkillsHandler struct {
	DB        *sql.DB
	CfgVal    *atomic.Value // stores config.Config
	Extractor *atomic.Pointer[skills.Extractor]
}

func (h SkillsHandler) extractor() *skills.Extractor {
	if h.Extractor != nil {
		if ex := h.Extractor.Load(); ex != nil {
			return ex
		}
	}
	return skills.NewExtractor(nil)
}

func (h SkillsHandler) cfg() config.Config {
	if h.CfgVal != nil {
		if c, ok := h.CfgVal.Load().(config.Config); ok {
			return c
		}
	}
	return config.Defaults()
}

func (h SkillsHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractReq
	if !decodeBody(w, r, &req) {
		return
	}
	found := h.extractor().Extract(req.Text)
	writeJSON(w, extractResp{Skills: found, Display: skills.Display(found)})
}

func (h SkillsHandler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	v := h.extractor().Vocabulary()
	writeJSON(w, vocabularyResp{Terms: v.Terms(), Exclusions: v.Rules()})
}

func (h SkillsHandler) Frequency(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	jobs, err := store.ListJobs(r.Context(), h.DB, store.ListJobsOpts{UserID: u.ID})
	if err != nil {
		writeStoreError(w, r, "fetch jobs", err)
		return
	}

	texts := make([]string, len(jobs))
	for i, j := range jobs {
		texts[i] = j.Description
	}
	entries, err := h.extractor().AggregateConcurrent(r.Context(), texts, h.cfg().Skills.AggregateWorkers)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Error("aggregate skills", "request_id", RequestIDFrom(r.Context()), "err", err)
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "skill ranking failed")
		return
	}
	if entries == nil {
		entries = []skills.FrequencyEntry{}
	}
	names, counts := skills.Split(entries)
	writeJSON(w, frequencyResp{Entries: entries, SortedSkills: names, SortedFrequencies: counts})
}

func (h SkillsHandler) jobSkills(r *http.Request, userID int64) ([]skills.JobSkills, error) {
	jobs, err := store.ListJobs(r.Context(), h.DB, store.ListJobsOpts{UserID: userID})
	if err != nil {
		return nil, err
	}
	in := make([]skills.JobText, len(jobs))
	for i, j := range jobs {
		in[i] = skills.JobText{ID: j.ID, Title: j.Title, Company: j.Company, Description: j.Description}
	}
	return h.extractor().PerJob(in), nil
}

// PerJob lists each job with its skills, or the display sentinel when none
// were found.
func (h SkillsHandler) PerJob(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())
	per, err := h.jobSkills(r, u.ID)
	if err != nil {
		writeStoreError(w, r, "fetch jobs", err)
		return
	}
	out := make([]jobSkillsResp, len(per))
	for i, j := range per {
		out[i] = jobSkillsResp{ID: j.ID, Title: j.Title, Company: j.Company, Skills: j.Display()}
	}
	writeJSON(w, out)
}

// Suggested returns skills seen in the user's jobs that the user has not
// declared. ?limit=N caps the list; 0 means no cap.
func (h SkillsHandler) Suggested(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFrom(r.Context())

	limit := h.cfg().Skills.SuggestedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, r, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	per, err := h.jobSkills(r, u.ID)
	if err != nil {
		writeStoreError(w, r, "fetch jobs", err)
		return
	}
	all := skills.Suggested(skills.Union(per), u.Skills)
	shown := all
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	writeJSON(w, suggestedResp{Skills: shown, Total: len(all), Limit: limit})
}
