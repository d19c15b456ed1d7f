package skills

import (
	"context"
	"encoding/json"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FrequencyEntry counts the texts a skill was found in.
type FrequencyEntry struct {
	Skill string `json:"skill"`
	Count int    `json:"frequency"`
}

// Aggregate extracts skills from every text and ranks them by the number of
// texts they appear in. Equal counts keep vocabulary order.
func (e *Extractor) Aggregate(texts []string) []FrequencyEntry {
	results := make([][]string, len(texts))
	for i, t := range texts {
		results[i] = e.Extract(t)
	}
	return e.rank(results)
}

// AggregateConcurrent is Aggregate with extraction spread over at most
// workers goroutines (GOMAXPROCS when workers <= 0).
func (e *Extractor) AggregateConcurrent(ctx context.Context, texts []string, workers int) ([]FrequencyEntry, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([][]string, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range texts {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Extract(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return e.rank(results), nil
}

func (e *Extractor) rank(results [][]string) []FrequencyEntry {
	counts := make(map[int]int)
	for _, skills := range results {
		for _, s := range skills {
			if i, ok := e.vocab.Index(s); ok {
				counts[i]++
			}
		}
	}

	idx := make([]int, 0, len(counts))
	for i := range counts {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		ca, cb := counts[idx[a]], counts[idx[b]]
		if ca == cb {
			return idx[a] < idx[b]
		}
		return ca > cb
	})

	out := make([]FrequencyEntry, len(idx))
	for n, i := range idx {
		out[n] = FrequencyEntry{Skill: e.vocab.terms[i], Count: counts[i]}
	}
	return out
}

// Split returns the ranked skills and their counts as parallel slices.
func Split(entries []FrequencyEntry) ([]string, []int) {
	skills := make([]string, len(entries))
	counts := make([]int, len(entries))
	for i, en := range entries {
		skills[i] = en.Skill
		counts[i] = en.Count
	}
	return skills, counts
}

// JobText is the part of a job record extraction needs.
type JobText struct {
	ID          int64
	Title       string
	Company     string
	Description string
}

// JobSkills is one job with the skills found in its description.
type JobSkills struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Skills  []string `json:"skills"`
}

// Display returns the job's skills or the NoSkillsAvailable sentinel.
func (j JobSkills) Display() []string { return Display(j.Skills) }

// PerJob extracts skills for each job, in input order.
func (e *Extractor) PerJob(jobs []JobText) []JobSkills {
	out := make([]JobSkills, len(jobs))
	for i, j := range jobs {
		out[i] = JobSkills{
			ID:      j.ID,
			Title:   j.Title,
			Company: j.Company,
			Skills:  e.Extract(j.Description),
		}
	}
	return out
}

// Union merges per-job results, keeping first-seen order.
func Union(jobs []JobSkills) []string {
	var all []string
	for _, j := range jobs {
		all = append(all, j.Skills...)
	}
	return dedupe(all)
}

// Suggested returns the skills in extracted that are not in owned, without
// duplicates and in first-seen order. Comparison ignores case and
// surrounding whitespace. A nil owned list is treated as empty.
func Suggested(extracted, owned []string) []string {
	have := make(map[string]bool, len(owned))
	for _, s := range owned {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	out := []string{}
	seen := make(map[string]bool, len(extracted))
	for _, s := range extracted {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || s == NoSkillsAvailable || have[key] || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// SkillList decodes a JSON array of strings. Any other JSON value, including
// null, decodes to an empty list.
type SkillList []string

func (l *SkillList) UnmarshalJSON(b []byte) error {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = SkillList{}
		return nil
	}
	out := make(SkillList, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	*l = out
	return nil
}
