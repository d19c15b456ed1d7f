package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port int `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	Log struct {
		Level  string `yaml:"level" json:"level"`   // debug | info | warn | error
		Format string `yaml:"format" json:"format"` // text | json
	} `yaml:"log" json:"log"`

	Skills struct {
		VocabularyFile   string              `yaml:"vocabulary_file,omitempty" json:"vocabulary_file"`
		ExtraTerms       []string            `yaml:"extra_terms,omitempty" json:"extra_terms"`
		Exclusions       map[string][]string `yaml:"exclusions,omitempty" json:"exclusions"`
		SuggestedLimit   int                 `yaml:"suggested_limit" json:"suggested_limit"`
		AggregateWorkers int                 `yaml:"aggregate_workers" json:"aggregate_workers"`
	} `yaml:"skills" json:"skills"`

	API struct {
		ExtractRPS   float64 `yaml:"extract_rps" json:"extract_rps"`
		ExtractBurst int     `yaml:"extract_burst" json:"extract_burst"`
		// AllowedOrigins lists browser origins that may call the API. A
		// trailing ":*" accepts any port on that scheme and host.
		AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
	} `yaml:"api" json:"api"`

	Maintenance struct {
		CheckpointSeconds int `yaml:"checkpoint_seconds" json:"checkpoint_seconds"`
	} `yaml:"maintenance" json:"maintenance"`
}

// Defaults returns the configuration used when no file exists yet.
func Defaults() Config {
	var cfg Config
	cfg.App.Port = 38471
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Skills.SuggestedLimit = 5
	cfg.API.ExtractRPS = 5
	cfg.API.ExtractBurst = 10
	cfg.API.AllowedOrigins = []string{"tauri://localhost", "http://localhost:*", "http://127.0.0.1:*"}
	cfg.Maintenance.CheckpointSeconds = 300
	return cfg
}

// Load reads path on top of Defaults, so missing keys keep their default.
func Load(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
