package skills

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_Empty(t *testing.T) {
	got := ExtractSkills("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractSkills_ExclusionPrecedence(t *testing.T) {
	assert.NotContains(t, ExtractSkills("I remember this"), "Ember")
	assert.NotContains(t, ExtractSkills("javascript developer"), "Java")
	assert.Contains(t, ExtractSkills("javascript developer"), "JavaScript")
	assert.Contains(t, ExtractSkills("I code in java daily"), "Java")

	// Suppression wins even when the term itself is present.
	assert.NotContains(t, ExtractSkills("Experience with Scala and scalable systems"), "Scala")
	assert.NotContains(t, ExtractSkills("blockchain chai"), "Chai")
	assert.Contains(t, ExtractSkills("blockchain chai"), "Blockchain")

	// "exposure" mentions expo but is not the framework.
	assert.NotContains(t, ExtractSkills("exposure to Expo"), "Expo")
	assert.Contains(t, ExtractSkills("Expo and React Native"), "Expo")
}

func TestExtractSkills_VocabularyOrder(t *testing.T) {
	got := ExtractSkills("Senior Golang engineer, PostgreSQL, Redis, Kafka")
	assert.Equal(t, []string{"PostgreSQL", "SQL", "Golang", "Redis", "Kafka", "Postgres"}, got)
}

func TestExtractSkills_CaseInsensitiveKeepsDisplayCase(t *testing.T) {
	got := ExtractSkills("KUBERNETES and terraform on aws")
	assert.Equal(t, []string{"AWS", "Kubernetes", "Terraform"}, got)
}

func TestExtractSkills_NoDuplicatesAndFromVocabulary(t *testing.T) {
	texts := []string{
		"React React React and react native, ruby ruby",
		"We use .NET, ASP.NET and .net core with Hasura",
		"Python, Django, PostgreSQL",
		strings.Repeat("kinesis ", 50),
	}
	vocab := Default()
	for _, text := range texts {
		got := ExtractSkills(text)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s], "duplicate %q in %q", s, text)
			seen[s] = true
			assert.True(t, vocab.Contains(s), "%q not in vocabulary", s)
		}
	}
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "React, TypeScript, GraphQL and a bit of Docker"
	first := ExtractSkills(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractSkills(text))
	}
}

func TestExtract_ConcurrentReaders(t *testing.T) {
	ex := NewExtractor(nil)
	want := ex.Extract("Python, Django, PostgreSQL")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ex.Extract("Python, Django, PostgreSQL"))
		}()
	}
	wg.Wait()
}

func TestExtract_FixtureVocabulary(t *testing.T) {
	v := NewVocabulary(
		[]string{"Go", "Rust", "Ember"},
		[]ExclusionRule{{Term: "go", Triggers: []string{"google", "good"}}},
	)
	ex := NewExtractor(v)

	assert.Equal(t, []string{"Go", "Rust"}, ex.Extract("go and rust"))
	assert.Equal(t, []string{"Rust"}, ex.Extract("good rust"))
	// No rule for ember in this vocabulary, so the substring still matches.
	assert.Equal(t, []string{"Ember"}, ex.Extract("remember"))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, []string{NoSkillsAvailable}, Display(nil))
	assert.Equal(t, []string{"Go"}, Display([]string{"Go"}))
}
