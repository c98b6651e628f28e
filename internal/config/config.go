// ABOUTME: Pulse configuration management with backend selection.
// ABOUTME: Chooses the record store and the learned-alias store backend.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/pulse/internal/alias"
	"github.com/harperreed/pulse/internal/storage"
)

// Config stores pulse tool configuration.
type Config struct {
	// Backend selects the record storage backend. Only "sqlite" is
	// currently implemented; the field exists so exports stay readable
	// if another backend lands.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// pulse.db here; the local alias store puts aliases/ here.
	// Supports ~ expansion. Defaults to ~/.local/share/pulse.
	DataDir string `json:"data_dir,omitempty"`

	// AliasBackend selects the learned-alias store: "charm" (default,
	// cloud-synced), "local" (badger, this machine only), or "memory"
	// (no persistence; useful for scripting).
	AliasBackend string `json:"alias_backend,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// defaultDataDir is $XDG_DATA_HOME/pulse, or ~/.local/share/pulse.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pulse")
}

// GetAliasBackend returns the configured alias backend, defaulting to "charm".
func (c *Config) GetAliasBackend() string {
	if c.AliasBackend == "" {
		return "charm"
	}
	return c.AliasBackend
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		dbPath := filepath.Join(dataDir, "pulse.db")
		return storage.Open(dbPath)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenAliasStore creates the learned-alias store for the configured backend.
func (c *Config) OpenAliasStore() (alias.Store, error) {
	switch c.GetAliasBackend() {
	case "charm":
		return alias.OpenCharm()
	case "local":
		return alias.OpenLocal(filepath.Join(c.GetDataDir(), "aliases"))
	case "memory":
		return alias.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown alias backend: %q", c.AliasBackend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "pulse", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
