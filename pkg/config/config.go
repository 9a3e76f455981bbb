// Package config loads and saves the tim configuration.
//
// Precedence, highest first: TIM_* environment variables, then
// ~/.config/tim/config.yaml, then defaults. The Gemini API key is read from
// the environment only (GEMINI_API_KEY) and never written to disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

const (
	xdgAppName = "tim"
	configFile = "config.yaml"
	envPrefix  = "TIM_"
)

// Config holds everything a sync pass needs besides credentials.
type Config struct {
	// Calendar is the Google Calendar name to sync from.
	Calendar string `koanf:"calendar" yaml:"calendar"`
	// SyncPastDays / SyncFutureDays bound the sync window around today.
	SyncPastDays   int `koanf:"sync_past_days" yaml:"sync_past_days"`
	SyncFutureDays int `koanf:"sync_future_days" yaml:"sync_future_days"`
	// GeminiModel names the model used for fallback classification.
	GeminiModel string `koanf:"gemini_model" yaml:"gemini_model"`
}

func defaults() Config {
	return Config{
		Calendar:       "Tasks",
		SyncPastDays:   5,
		SyncFutureDays: 14,
		GeminiModel:    "gemini-1.5-flash",
	}
}

// Dir returns the tim config directory (~/.config/tim).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads configuration. A missing file is not an error; defaults and
// environment still apply.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if raw, err := os.ReadFile(path); err == nil {
		if err := k.Load(rawbytes.Provider(raw), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// TIM_SYNC_PAST_DAYS -> sync_past_days
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Calendar == "" {
		cfg.Calendar = defaults().Calendar
	}
	if cfg.SyncPastDays <= 0 {
		cfg.SyncPastDays = defaults().SyncPastDays
	}
	if cfg.SyncFutureDays <= 0 {
		cfg.SyncFutureDays = defaults().SyncFutureDays
	}
	return &cfg, nil
}

// Save writes the config file atomically with owner-only permissions.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(string(out))); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return os.Chmod(path, 0600)
}

// GeminiAPIKey returns the classification API key from the environment, or
// "" when unset (keyword-only classification).
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
