package main

import (
	"os"
	"path/filepath"
)

const dbFileName = "jobtrack.db"

func resolveDataDir() string {
	if dataDirFlag != "" {
		return dataDirFlag
	}
	if d := os.Getenv("JOBTRACK_DATA_DIR"); d != "" {
		return d
	}
	return "."
}

// defaultConfigPath is the template copied into a fresh data dir.
func defaultConfigPath() string {
	if p := os.Getenv("JOBTRACK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join("config", "config.yml")
}
