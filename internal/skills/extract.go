package skills

import "strings"

// Extractor matches text against a vocabulary. The zero value is not usable;
// build one with NewExtractor.
type Extractor struct {
	vocab *Vocabulary
}

// NewExtractor returns an extractor over v, or over the built-in vocabulary
// when v is nil.
func NewExtractor(v *Vocabulary) *Extractor {
	if v == nil {
		v = Default()
	}
	return &Extractor{vocab: v}
}

// Vocabulary returns the vocabulary e matches against.
func (e *Extractor) Vocabulary() *Vocabulary { return e.vocab }

// Extract returns the vocabulary terms found in text, in vocabulary order.
// Matching is case-insensitive substring containment; a term whose exclusion
// triggers occur in the text is skipped even if the term itself occurs.
func (e *Extractor) Extract(text string) []string {
	out := []string{}
	if text == "" {
		return out
	}
	lc := strings.ToLower(text)

	for i, term := range e.vocab.lower {
		if suppressed(lc, e.vocab.rules[term]) {
			continue
		}
		if strings.Contains(lc, term) {
			out = append(out, e.vocab.terms[i])
		}
	}
	return out
}

func suppressed(text string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// ExtractSkills runs Extract with the built-in vocabulary.
func ExtractSkills(text string) []string {
	return defaultExtractor.Extract(text)
}

var defaultExtractor = NewExtractor(nil)

// Display returns skills, or the NoSkillsAvailable sentinel when empty.
func Display(skills []string) []string {
	if len(skills) == 0 {
		return []string{NoSkillsAvailable}
	}
	return skills
}
