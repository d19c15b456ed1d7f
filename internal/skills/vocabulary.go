// Package skills finds known skill terms in free-text job descriptions and
// ranks them across a user's jobs.
package skills

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExclusionRule suppresses a term whenever any trigger substring appears in
// the text, e.g. "ember" when the text mentions "remember".
type ExclusionRule struct {
	Term     string   `json:"term" yaml:"term"`
	Triggers []string `json:"triggers" yaml:"triggers"`
}

// Vocabulary is an immutable, ordered set of skill terms plus the exclusion
// table consulted during extraction. It is safe for concurrent use.
type Vocabulary struct {
	terms []string
	lower []string
	index map[string]int
	rules map[string][]string
}

// NewVocabulary builds a vocabulary from terms in the given order. Terms are
// trimmed and de-duplicated case-insensitively (first occurrence wins).
// Rules are keyed by lowercase term; rules naming unknown terms are kept but
// never fire.
func NewVocabulary(terms []string, rules []ExclusionRule) *Vocabulary {
	v := &Vocabulary{
		index: make(map[string]int, len(terms)),
		rules: make(map[string][]string),
	}
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, dup := v.index[key]; dup {
			continue
		}
		v.index[key] = len(v.terms)
		v.terms = append(v.terms, t)
		v.lower = append(v.lower, key)
	}

	for _, r := range rules {
		key := strings.ToLower(strings.TrimSpace(r.Term))
		if key == "" {
			continue
		}
		v.rules[key] = mergeTriggers(v.rules[key], r.Triggers)
	}
	return v
}

func mergeTriggers(have, add []string) []string {
	seen := make(map[string]bool, len(have)+len(add))
	for _, t := range have {
		seen[t] = true
	}
	for _, t := range add {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		have = append(have, t)
	}
	return have
}

// Len reports the number of distinct terms.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Terms returns a copy of the terms in vocabulary order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the position of term (matched case-insensitively).
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[strings.ToLower(strings.TrimSpace(term))]
	return i, ok
}

// Contains reports whether term is in the vocabulary, ignoring case.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.Index(term)
	return ok
}

// Triggers returns the suppression substrings for term, or nil.
func (v *Vocabulary) Triggers(term string) []string {
	ts := v.rules[strings.ToLower(strings.TrimSpace(term))]
	if len(ts) == 0 {
		return nil
	}
	out := make([]string, len(ts))
	copy(out, ts)
	return out
}

// Rules lists exclusion rules in vocabulary order, followed by orphan rules
// sorted by term.
func (v *Vocabulary) Rules() []ExclusionRule {
	out := make([]ExclusionRule, 0, len(v.rules))
	for i, key := range v.lower {
		if _, ok := v.rules[key]; ok {
			out = append(out, ExclusionRule{Term: v.terms[i], Triggers: v.Triggers(key)})
		}
	}
	for _, key := range v.OrphanRules() {
		out = append(out, ExclusionRule{Term: key, Triggers: v.Triggers(key)})
	}
	return out
}

// OrphanRules returns the lowercase terms that have a rule but are not in
// the vocabulary.
func (v *Vocabulary) OrphanRules() []string {
	var out []string
	for key := range v.rules {
		if _, ok := v.index[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// VocabularyFile is the on-disk yaml shape of a custom vocabulary.
type VocabularyFile struct {
	ExtendDefault bool                `yaml:"extend_default"`
	Terms         []string            `yaml:"terms"`
	Exclusions    map[string][]string `yaml:"exclusions"`
}

// LoadVocabularyFile reads a yaml vocabulary. With extend_default the file's
// terms are appended to the built-in list and its exclusions merged into the
// built-in table.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	var f VocabularyFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	if len(f.Terms) == 0 && !f.ExtendDefault {
		return nil, errors.New("vocabulary file has no terms")
	}

	var terms []string
	var rules []ExclusionRule
	if f.ExtendDefault {
		terms = append(terms, defaultTerms...)
		rules = append(rules, defaultExclusions...)
	}
	terms = append(terms, f.Terms...)
	rules = append(rules, RulesFromMap(f.Exclusions)...)
	return NewVocabulary(terms, rules), nil
}

// RulesFromMap converts a term → triggers map into rules sorted by term.
func RulesFromMap(m map[string][]string) []ExclusionRule {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]ExclusionRule, 0, len(keys))
	for _, k := range keys {
		out = append(out, ExclusionRule{Term: k, Triggers: m[k]})
	}
	return out
}
