// ABOUTME: Tests for configuration loading, defaults, and path expansion.
// ABOUTME: Uses XDG_CONFIG_HOME to isolate config from the real home dir.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want sqlite", got)
	}
	if got := cfg.GetAliasBackend(); got != "charm" {
		t.Errorf("GetAliasBackend() = %q, want charm", got)
	}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestDefaultDataDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	cfg := &Config{}
	if got := cfg.GetDataDir(); got != filepath.Join(dir, "pulse") {
		t.Errorf("GetDataDir() = %q, want %q", got, filepath.Join(dir, "pulse"))
	}
}

func TestExplicitValues(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: "/tmp/pulse-test", AliasBackend: "local"}

	if got := cfg.GetDataDir(); got != "/tmp/pulse-test" {
		t.Errorf("GetDataDir() = %q", got)
	}
	if got := cfg.GetAliasBackend(); got != "local" {
		t.Errorf("GetAliasBackend() = %q, want local", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{DataDir: "/tmp/pulse", AliasBackend: "memory"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := GetConfigPath()
	if !strings.HasSuffix(path, filepath.Join("pulse", "config.json")) {
		t.Errorf("unexpected config path: %s", path)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataDir != "/tmp/pulse" || loaded.AliasBackend != "memory" {
		t.Errorf("loaded config mismatch: %+v", loaded)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "pulse")
	if err := os.MkdirAll(cfgDir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error loading corrupt config")
	}
}

func TestOpenAliasStoreMemory(t *testing.T) {
	cfg := &Config{AliasBackend: "memory"}
	store, err := cfg.OpenAliasStore()
	if err != nil {
		t.Fatalf("OpenAliasStore failed: %v", err)
	}
	defer store.Close()

	if err := store.Put("recovery", "hrv", "Variability"); err != nil {
		t.Errorf("Put on memory store failed: %v", err)
	}
}

func TestOpenAliasStoreUnknown(t *testing.T) {
	cfg := &Config{AliasBackend: "redis"}
	if _, err := cfg.OpenAliasStore(); err == nil {
		t.Error("expected error for unknown alias backend")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}
