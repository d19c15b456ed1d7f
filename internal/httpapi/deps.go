package httpapi

import (
	"database/sql"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/skills"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal    *atomic.Value // stores config.Config
	Extractor *atomic.Pointer[skills.Extractor]

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Admin endpoints
	AdminToken string
	Shutdown   func()
}
