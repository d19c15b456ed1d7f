package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh skills flags.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	skillsConfigFile, skillsVocabFile, skillsJSON, skillsWorkers = "", "", false, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestSkillsExtract_Stdin(t *testing.T) {
	out, err := run(t, "React and Node", "skills", "extract")
	require.NoError(t, err)
	assert.Equal(t, "React\nNode\n", out)

	out, err = run(t, "pour coffee", "skills", "extract", "-")
	require.NoError(t, err)
	assert.Equal(t, "No skills available\n", out)
}

func TestSkillsExtract_FileJSON(t *testing.T) {
	p := writeFile(t, t.TempDir(), "job.html", "<ul><li>Kubernetes</li><li>terraform on aws</li></ul>")

	out, err := run(t, "", "skills", "extract", "--json", p)
	require.NoError(t, err)
	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"AWS", "Kubernetes", "Terraform"}, got["skills"])
}

func TestSkillsRank(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "I use React")
	b := writeFile(t, dir, "b.txt", "React and Node")
	c := writeFile(t, dir, "c.txt", "no match here")

	out, err := run(t, "", "skills", "rank", "--json", a, b, c)
	require.NoError(t, err)
	var got struct {
		SortedSkills      []string `json:"sortedSkills"`
		SortedFrequencies []int    `json:"sortedFrequencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"React", "Node"}, got.SortedSkills)
	assert.Equal(t, []int{2, 1}, got.SortedFrequencies)

	out, err = run(t, "", "skills", "rank", a, b)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"React", "2"}, strings.Fields(lines[1]))

	_, err = run(t, "", "skills", "rank")
	assert.Error(t, err)
}

func TestSkillsVocab_CustomFile(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "vocab.yml", "terms: [Go, Rust]\nexclusions:\n  go: [google]\n")

	out, err := run(t, "", "skills", "vocab", "--vocab", vocab)
	require.NoError(t, err)
	assert.Equal(t, "Go\nRust\n", out)

	out, err = run(t, "", "skills", "extract", "--vocab", vocab)
	require.NoError(t, err)
	assert.Equal(t, "No skills available\n", out)

	out, err = run(t, "rust at google", "skills", "extract", "--vocab", vocab)
	require.NoError(t, err)
	assert.Equal(t, "Rust\n", out)
}

func TestSkillsVocab_FromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yml", "skills:\n  extra_terms: [Zig]\n")

	out, err := run(t, "we write zig", "skills", "extract", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Zig\n", out)

	_, err = run(t, "", "skills", "vocab", "--config", filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
