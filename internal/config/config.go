package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings is the persisted application configuration: where the store
// lives and where the last export went. Absence of a store path is a
// first-run condition the presentation layer resolves; the core only
// consumes a resolved path.
type Settings struct {
	StorePath     string `json:"store_path"`
	LastExportDir string `json:"last_export_dir,omitempty"`
}

// DefaultPath is the settings file location under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "timesheet", "config.json"), nil
}

// Load reads settings from path. A missing file is not an error; it yields
// zero settings.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return Settings{}, nil
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// Save writes settings atomically: marshal, write a sibling temp file,
// rename over the target.
func Save(path string, s Settings) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FromEnv layers environment overrides on top of loaded settings.
func FromEnv(base Settings) Settings {
	s := base
	if v := strings.TrimSpace(os.Getenv("TIMESHEET_DB")); v != "" {
		s.StorePath = v
	}
	if v := strings.TrimSpace(os.Getenv("TIMESHEET_EXPORT_DIR")); v != "" {
		s.LastExportDir = v
	}
	return s
}
