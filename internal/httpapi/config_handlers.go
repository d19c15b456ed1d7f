package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/skills"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	Extractor   *atomic.Pointer[skills.Extractor]
	Hub         *events.Hub
	Limiter     *ClientLimiter
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	writeJSON(w, cur)
}

func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	var incoming config.Config
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: trailing data")
		return
	}

	normalized, vr := config.NormalizeAndValidate(incoming)
	if !vr.OK() {
		// Structured errors so the UI can show them per field
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, normalized); err != nil {
		slog.Error("save config", "path", h.UserCfgPath, "err", err)
		WriteError(w, r, http.StatusInternalServerError, "save_failed", "could not save config")
		return
	}

	saved, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
		return
	}
	vocab, err := config.BuildVocabulary(saved)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but vocabulary failed: "+err.Error())
		return
	}

	h.CfgVal.Store(saved)
	h.Extractor.Store(skills.NewExtractor(vocab))
	if h.Limiter != nil {
		h.Limiter.Reset(saved.API.ExtractRPS, saved.API.ExtractBurst)
	}
	slog.Info("config reloaded", "path", h.UserCfgPath, "terms", vocab.Len())

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeConfigReloaded, 1, map[string]any{"terms": vocab.Len()}))
	writeJSON(w, saved)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs, _ := filepath.Abs(h.UserCfgPath)
	writeJSON(w, map[string]any{"path": abs})
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	_, vr := config.NormalizeAndValidate(cur)
	writeJSON(w, vr)
}
