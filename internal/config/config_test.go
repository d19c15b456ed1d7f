package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9000\nskills:\n  extra_terms: [Zig]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, []string{"Zig"}, cfg.Skills.ExtraTerms)
	assert.Equal(t, 5, cfg.Skills.SuggestedLimit)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestEnsureUserConfig_CopiesDefault(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(def, []byte("app:\n  port: 1234\n"), 0o644))

	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	path, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.App.Port)

	// Existing user config is left alone.
	require.NoError(t, os.WriteFile(def, []byte("app:\n  port: 4321\n"), 0o644))
	_, err = EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.App.Port)
}

func TestEnsureUserConfig_WritesDefaultsWithoutTemplate(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir, filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults().App.Port, cfg.App.Port)
	assert.Equal(t, Defaults().Skills.SuggestedLimit, cfg.Skills.SuggestedLimit)
	assert.Empty(t, cfg.Skills.ExtraTerms)
	assert.Equal(t, Defaults().API.AllowedOrigins, cfg.API.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Defaults()))

	cfg := Defaults()
	cfg.App.Port = 0
	cfg.Log.Level = "loud"
	cfg.Skills.SuggestedLimit = -1
	cfg.API.ExtractBurst = 0
	cfg.Skills.Exclusions = map[string][]string{"go": {}}
	cfg.API.AllowedOrigins = []string{"localhost:5173"}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.port")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "skills.suggested_limit")
	assert.Contains(t, err.Error(), "api.extract_burst")
	assert.Contains(t, err.Error(), "skills.exclusions.go")
	assert.Contains(t, err.Error(), "api.allowed_origins[0]")
}

func TestSaveAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.yml")
	cfg := Defaults()
	cfg.Skills.ExtraTerms = []string{"Zig"}
	require.NoError(t, SaveAtomic(path, cfg))

	cfg.App.Port = 7000
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, got.App.Port)
	assert.FileExists(t, path+".bak")

	bad := Defaults()
	bad.App.Port = -1
	assert.Error(t, SaveAtomic(path, bad))
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Skills.ExtraTerms = []string{" Zig ", "zig", ""}
	cfg.Skills.Exclusions = map[string][]string{
		" Zig ":   {"Zigzag", " zigzag "},
		"nothing": {"x"},
	}

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), res.Errors)
	assert.Equal(t, []string{"Zig"}, out.Skills.ExtraTerms)
	assert.Equal(t, []string{"Zigzag"}, out.Skills.Exclusions["zig"])
	assert.Contains(t, res.Warnings, `exclusion rule for "nothing" has no matching vocabulary term and will never apply`)
}

func TestNormalizeAndValidate_Errors(t *testing.T) {
	cfg := Defaults()
	cfg.Skills.VocabularyFile = filepath.Join(t.TempDir(), "missing.yml")
	cfg.Skills.Exclusions = map[string][]string{"go": {" "}}

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 2)
}

func TestBuildVocabulary(t *testing.T) {
	cfg := Defaults()
	v, err := BuildVocabulary(cfg)
	require.NoError(t, err)
	assert.Equal(t, 282, v.Len())

	cfg.Skills.ExtraTerms = []string{"Zig"}
	cfg.Skills.Exclusions = map[string][]string{"zig": {"zigzag"}}
	v, err = BuildVocabulary(cfg)
	require.NoError(t, err)
	assert.True(t, v.Contains("Zig"))
	assert.Equal(t, []string{"zigzag"}, v.Triggers("zig"))
	assert.Equal(t, []string{"javascript"}, v.Triggers("java"))

	vocabPath := filepath.Join(t.TempDir(), "vocab.yml")
	require.NoError(t, os.WriteFile(vocabPath, []byte("terms: [Go]\n"), 0o644))
	cfg = Defaults()
	cfg.Skills.VocabularyFile = vocabPath
	v, err = BuildVocabulary(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, v.Terms())
}
