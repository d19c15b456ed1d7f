package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate reports hard errors only; see NormalizeAndValidate for warnings.
func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Log.Level != "" && !validLevels[strings.ToLower(cfg.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	if f := strings.ToLower(cfg.Log.Format); f != "" && f != "text" && f != "json" {
		errs = append(errs, fmt.Sprintf("log.format %q must be text or json", cfg.Log.Format))
	}
	if cfg.Skills.SuggestedLimit < 0 {
		errs = append(errs, "skills.suggested_limit must be >= 0")
	}
	if cfg.Skills.AggregateWorkers < 0 {
		errs = append(errs, "skills.aggregate_workers must be >= 0")
	}
	if cfg.API.ExtractRPS < 0 {
		errs = append(errs, "api.extract_rps must be >= 0")
	}
	if cfg.API.ExtractRPS > 0 && cfg.API.ExtractBurst < 1 {
		errs = append(errs, "api.extract_burst must be >= 1 when api.extract_rps is set")
	}
	if cfg.Maintenance.CheckpointSeconds < 0 {
		errs = append(errs, "maintenance.checkpoint_seconds must be >= 0")
	}
	for i, o := range cfg.API.AllowedOrigins {
		if o = strings.TrimSpace(o); o == "" || !strings.Contains(o, "://") {
			errs = append(errs, fmt.Sprintf("api.allowed_origins[%d] %q must be scheme://host[:port]", i, o))
		}
	}

	for i, term := range cfg.Skills.ExtraTerms {
		if strings.TrimSpace(term) == "" {
			errs = append(errs, fmt.Sprintf("skills.extra_terms[%d] cannot be empty", i))
		}
	}
	for term, triggers := range cfg.Skills.Exclusions {
		if strings.TrimSpace(term) == "" {
			errs = append(errs, "skills.exclusions has an empty term")
		}
		if len(triggers) == 0 {
			errs = append(errs, fmt.Sprintf("skills.exclusions.%s must have at least 1 trigger", term))
		}
		for j, tr := range triggers {
			if strings.TrimSpace(tr) == "" {
				errs = append(errs, fmt.Sprintf("skills.exclusions.%s[%d] cannot be empty", term, j))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
