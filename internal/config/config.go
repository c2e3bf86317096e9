// Package config persists the 511 API credential as a small JSON file
// under the user's config directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable overriding the stored key.
const EnvAPIKey = "BAYT_API_KEY"

// Config holds the persisted settings
type Config struct {
	APIKey string `json:"api_key"`
}

// Store reads and writes the config file
type Store struct {
	path string
}

// NewStore creates a store over the given config file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a store over the default config file location
func DefaultStore() *Store {
	return NewStore(filepath.Join(DefaultConfigDir(), "config.json"))
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bayt")
	}

	// Fall back to ~/.config/bayt
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bayt-config")
	}

	return filepath.Join(home, ".config", "bayt")
}

// Load reads the config file. A missing file is not an error; it loads as
// an empty config.
func (s *Store) Load() (Config, error) {
	// #nosec G304 -- path comes from the config-dir resolution, not user input
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed (0750 for
// the dir, 0600 for the file: the key is a credential).
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}

// Path returns the config file path
func (s *Store) Path() string {
	return s.path
}

// ResolveAPIKey returns the effective API key: the explicit value (flag)
// wins, then the environment, then the stored config. Empty means
// unconfigured.
func ResolveAPIKey(explicit string, store *Store) string {
	if explicit != "" {
		return explicit
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	cfg, err := store.Load()
	if err != nil {
		return ""
	}
	return cfg.APIKey
}
