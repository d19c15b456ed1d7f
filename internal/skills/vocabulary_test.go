package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary_DedupesCaseInsensitively(t *testing.T) {
	v := NewVocabulary([]string{"Ruby", " ruby ", "", "Go", "RUBY"}, nil)
	assert.Equal(t, []string{"Ruby", "Go"}, v.Terms())
	assert.Equal(t, 2, v.Len())

	i, ok := v.Index("go")
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestNewVocabulary_MergesRules(t *testing.T) {
	v := NewVocabulary([]string{"Ember"}, []ExclusionRule{
		{Term: "Ember", Triggers: []string{"Remember", "member"}},
		{Term: "ember", Triggers: []string{"member", " members "}},
	})
	assert.Equal(t, []string{"remember", "member", "members"}, v.Triggers("EMBER"))
	assert.Nil(t, v.Triggers("go"))
}

func TestVocabulary_OrphanRulesAreInert(t *testing.T) {
	v := NewVocabulary([]string{"Go"}, []ExclusionRule{{Term: "java", Triggers: []string{"javascript"}}})
	assert.Equal(t, []string{"java"}, v.OrphanRules())
	assert.Equal(t, []string{"Go"}, NewExtractor(v).Extract("go javascript java"))

	rules := v.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "java", rules[0].Term)
}

func TestVocabulary_TermsIsACopy(t *testing.T) {
	v := NewVocabulary([]string{"Go"}, nil)
	terms := v.Terms()
	terms[0] = "Changed"
	assert.Equal(t, []string{"Go"}, v.Terms())
}

func TestDefault(t *testing.T) {
	v := Default()
	assert.Equal(t, 282, v.Len())
	assert.Len(t, DefaultTerms(), 287)
	// "defi" has a rule but no term; it stays inert.
	assert.Equal(t, []string{"defi"}, v.OrphanRules())

	rules := v.Rules()
	require.Len(t, rules, 6)
	var terms []string
	for _, r := range rules {
		terms = append(terms, r.Term)
	}
	assert.Equal(t, []string{"Java", "Expo", "Chai", "Scala", "Ember", "defi"}, terms)
}

func TestLoadVocabularyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yml")
	content := "terms:\n  - Go\n  - Rust\nexclusions:\n  go:\n    - google\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, v.Terms())
	assert.Equal(t, []string{"google"}, v.Triggers("Go"))
}

func TestLoadVocabularyFile_ExtendDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yml")
	content := "extend_default: true\nterms:\n  - Zig\n  - React\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Len()+1, v.Len())
	assert.True(t, v.Contains("zig"))
	assert.Equal(t, []string{"javascript"}, v.Triggers("java"))
}

func TestLoadVocabularyFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadVocabularyFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("terms: []\n"), 0o644))
	_, err = LoadVocabularyFile(empty)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("terms: [unclosed\n"), 0o644))
	_, err = LoadVocabularyFile(bad)
	assert.Error(t, err)
}
