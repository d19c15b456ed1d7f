package httpapi

import (
	"net/http"
	"sync/atomic"
	"time"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/skills"
)

// NewMux registers every route. Routes under /me, /jobs and /rejections
// resolve the caller from X-User-ID.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	d = d.withDefaults()
	authed := func(h http.HandlerFunc) http.HandlerFunc { return RequireUser(d.DB, h) }

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{Started: time.Now()}.Health,
	}))

	// Skills
	cfg := d.CfgVal.Load().(config.Config)
	limiter := NewClientLimiter(cfg.API.ExtractRPS, cfg.API.ExtractBurst)
	sk := SkillsHandler{DB: d.DB, CfgVal: d.CfgVal, Extractor: d.Extractor}
	mux.HandleFunc("/skills/extract", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: limiter.Wrap(sk.Extract),
	}))
	mux.HandleFunc("/skills/vocabulary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sk.Vocabulary,
	}))
	mux.HandleFunc("/me/skills/frequency", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: authed(sk.Frequency),
	}))
	mux.HandleFunc("/me/skills/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: authed(sk.PerJob),
	}))
	mux.HandleFunc("/me/skills/suggested", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: authed(sk.Suggested),
	}))

	// Users
	uh := UsersHandler{DB: d.DB, Hub: d.Hub}
	mux.HandleFunc("/users", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: uh.Create,
	}))
	mux.HandleFunc("/me", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: authed(uh.Me),
	}))
	mux.HandleFunc("/me/skills", methodMux(map[string]http.HandlerFunc{
		http.MethodPut: authed(uh.PutSkills),
	}))

	// Jobs
	jh := JobsHandler{DB: d.DB, Hub: d.Hub}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  authed(jh.List),
		http.MethodPost: authed(jh.Create),
	}))
	mux.HandleFunc("/jobs/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodPatch:  authed(jh.Patch),
		http.MethodDelete: authed(jh.Delete),
	}))

	// Rejections
	rh := RejectionsHandler{DB: d.DB, Hub: d.Hub}
	mux.HandleFunc("/rejections", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  authed(rh.List),
		http.MethodPost: authed(rh.Create),
	}))
	mux.HandleFunc("/rejections/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: authed(rh.Delete),
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		Extractor:   d.Extractor,
		Hub:         d.Hub,
		Limiter:     limiter,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Admin
	ah := AdminHandler{DB: d.DB, Token: d.AdminToken, Shutdown: d.Shutdown}
	mux.HandleFunc("/admin/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Checkpoint,
	}))
	mux.HandleFunc("/admin/shutdown", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.ShutdownNow,
	}))

	return mux
}

// NewHandler is NewMux behind the standard middleware stack.
func NewHandler(d Deps) http.Handler {
	d = d.withDefaults()
	return Chain(NewMux(d), RequestID, Recover, AccessLog, Cors(d.CfgVal))
}

// withDefaults fills the shared state a caller left nil so the mux and the
// middleware read the same config.
func (d Deps) withDefaults() Deps {
	if d.CfgVal == nil {
		d.CfgVal = &atomic.Value{}
	}
	if _, ok := d.CfgVal.Load().(config.Config); !ok {
		d.CfgVal.Store(config.Defaults())
	}
	if d.Hub == nil {
		d.Hub = events.NewHub()
	}
	if d.Extractor == nil {
		d.Extractor = &atomic.Pointer[skills.Extractor]{}
	}
	if d.Extractor.Load() == nil {
		d.Extractor.Store(skills.NewExtractor(nil))
	}
	return d
}
