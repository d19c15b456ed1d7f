package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"jobtrack-engine/internal/skills"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg plus the problems
// found in it. Errors block saving; warnings are informational.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Skills.ExtraTerms = trimList(out.Skills.ExtraTerms)
	out.Skills.VocabularyFile = strings.TrimSpace(out.Skills.VocabularyFile)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))
	out.Log.Format = strings.ToLower(strings.TrimSpace(out.Log.Format))

	if len(out.Skills.Exclusions) > 0 {
		norm := make(map[string][]string, len(out.Skills.Exclusions))
		for term, triggers := range out.Skills.Exclusions {
			key := strings.ToLower(strings.TrimSpace(term))
			if key == "" {
				res.addErr("skills.exclusions has an empty term")
				continue
			}
			ts := trimList(append(norm[key], triggers...))
			if len(ts) == 0 {
				res.addErr("skills.exclusions.%s must have at least 1 trigger", key)
			}
			norm[key] = ts
		}
		out.Skills.Exclusions = norm
	}

	// ---- Validation rules ----

	if err := Validate(out); err != nil {
		for _, line := range strings.Split(err.Error(), "\n- ")[1:] {
			if !contains(res.Errors, line) {
				res.addErr("%s", line)
			}
		}
	}

	if out.Skills.VocabularyFile != "" {
		if _, err := os.Stat(out.Skills.VocabularyFile); err != nil {
			res.addErr("skills.vocabulary_file %q is not readable: %v", out.Skills.VocabularyFile, err)
		}
	}

	if res.OK() {
		if v, err := BuildVocabulary(out); err == nil {
			for _, term := range v.OrphanRules() {
				res.addWarn("exclusion rule for %q has no matching vocabulary term and will never apply", term)
			}
			if v.Len() == 0 {
				res.addWarn("vocabulary is empty; no skills will be extracted")
			}
		} else {
			res.addErr("vocabulary: %v", err)
		}
	}

	if out.Skills.SuggestedLimit == 0 {
		res.addWarn("skills.suggested_limit is 0; all suggested skills will be returned at once")
	}
	if out.API.ExtractRPS == 0 {
		res.addWarn("api.extract_rps is 0; /skills/extract is not rate limited")
	}
	if out.Maintenance.CheckpointSeconds > 0 && out.Maintenance.CheckpointSeconds < 30 {
		res.addWarn("maintenance.checkpoint_seconds is very low (%d)", out.Maintenance.CheckpointSeconds)
	}

	sort.Strings(res.Errors)
	return out, res
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// BuildVocabulary assembles the extraction vocabulary described by cfg: the
// vocabulary file (or the built-in list), then extra_terms, then the
// configured exclusions merged over the base rules.
func BuildVocabulary(cfg Config) (*skills.Vocabulary, error) {
	base := skills.Default()
	if cfg.Skills.VocabularyFile != "" {
		v, err := skills.LoadVocabularyFile(cfg.Skills.VocabularyFile)
		if err != nil {
			return nil, err
		}
		base = v
	}
	if len(cfg.Skills.ExtraTerms) == 0 && len(cfg.Skills.Exclusions) == 0 {
		return base, nil
	}

	terms := append(base.Terms(), cfg.Skills.ExtraTerms...)
	rules := append(base.Rules(), skills.RulesFromMap(cfg.Skills.Exclusions)...)
	return skills.NewVocabulary(terms, rules), nil
}
