package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Settings{StorePath: "/data/timesheet.db", LastExportDir: "/exports"}

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if got != (Settings{}) {
		t.Fatalf("expected zero settings, got %#v", got)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TIMESHEET_DB", "/env/override.db")
	t.Setenv("TIMESHEET_EXPORT_DIR", "")

	got := FromEnv(Settings{StorePath: "/file/value.db", LastExportDir: "/exports"})
	if got.StorePath != "/env/override.db" {
		t.Fatalf("StorePath = %q", got.StorePath)
	}
	if got.LastExportDir != "/exports" {
		t.Fatalf("blank env must not clear LastExportDir: %q", got.LastExportDir)
	}
}
