// Package config loads and saves the engine's on-disk configuration,
// stored as JSON under the user's home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Config is the persisted set of CLI defaults. Only CacheDir is read by
// the CLI (the provision command's fallback when --path is not given);
// the remaining fields are loaded and saved but no command applies them.
type Config struct {
	// CacheDir overrides the default provisioning cache location
	// (~/.jvmutils/cache) when non-empty.
	CacheDir string `json:"cache_dir,omitempty"`

	UseJavaw     bool `json:"use_javaw"`
	IgnoreOpenJ9 bool `json:"ignore_openj9"`
	JdkOnly      bool `json:"jdk_only"`

	JREAllowed bool `json:"jre_allowed"`
	X86OnArm   bool `json:"x86_on_arm"`
}

// Default returns the configuration used when no config file exists yet.
func Default() Config {
	return Config{}
}

// path returns ~/.jvmutils/config.json.
func path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".jvmutils", "config.json"), nil
}

// Load reads the configuration file, returning Default() if it doesn't
// exist yet.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", p, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", p, err)
	}
	return cfg, nil
}

// Save writes the configuration to ~/.jvmutils/config.json, creating the
// parent directory if needed.
func Save(cfg Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", p, err)
	}
	return nil
}

// DefaultCacheDir returns cfg.CacheDir if set, otherwise
// ~/.jvmutils/cache.
func DefaultCacheDir(cfg Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".jvmutils", "cache"), nil
}
