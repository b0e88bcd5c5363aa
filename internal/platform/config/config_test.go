package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := New("/tmp/tf")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Backend != BackendFile || cfg.StorageKey != DefaultStorageKey || cfg.DBPath != filepath.Join("/tmp/tf", "taskflows.db") {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty data dir")
	}
}

func TestLoadLayersFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "backend: sqlite\nstorage_key: work\nlog:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKFLOWS_STORAGE_KEY", "personal")
	t.Setenv("TASKFLOWS_DATA_DIR", "/ignored/when/flag/set")

	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataDir != dir {
		t.Fatalf("expected data dir %s, got %s", dir, cfg.DataDir)
	}
	if cfg.Backend != BackendSQLite || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.StorageKey != "personal" {
		t.Fatalf("expected env to override storage key, got %s", cfg.StorageKey)
	}
}

func TestLoadResolvesDataDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKFLOWS_DATA_DIR", dir)
	t.Setenv("TASKFLOWS_LOG_LEVEL", "error")

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataDir != dir || cfg.Backend != BackendFile || cfg.Log.Level != "error" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("backend: postgres\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir, bad); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}
