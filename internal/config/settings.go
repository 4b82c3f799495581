package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// settingsFileName is the settings file inside the config directory.
const settingsFileName = "config.yaml"

// Settings holds the process-wide configuration. It is loaded once and
// passed explicitly into store and exporter construction so tests can
// inject deterministic values.
type Settings struct {
	// TimeZone is an IANA zone name ("America/Chicago") or "local".
	TimeZone string `yaml:"time_zone,omitempty"`
	// DefaultFormat is the export format used when --format is omitted.
	DefaultFormat string `yaml:"default_format,omitempty"`
	// DataDir overrides the entry log location.
	DataDir string `yaml:"data_dir,omitempty"`
}

// knownKeys are the settable configuration keys, with validators.
var knownKeys = map[string]func(value string) error{
	"time_zone": func(value string) error {
		if value == "" || value == "local" {
			return nil
		}
		if _, err := time.LoadLocation(value); err != nil {
			return fmt.Errorf("unknown time zone %q: %w", value, err)
		}
		return nil
	},
	"default_format": func(value string) error {
		switch value {
		case "", "markdown", "obsidian", "text", "json":
			return nil
		}
		return fmt.Errorf("unknown format %q; use markdown, obsidian, text, or json", value)
	},
	"data_dir": func(string) error { return nil },
}

// Keys returns the settable configuration keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads settings from the config directory. A missing file yields
// zero-value settings; defaults are applied by the accessor methods.
func Load() (Settings, error) {
	return loadFrom(filepath.Join(Dir(), settingsFileName))
}

// loadFrom reads settings from an explicit path.
func loadFrom(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to the config directory, creating it if needed.
func (s Settings) Save() error {
	dir := Dir()
	if dir == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(dir, settingsFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Get returns the value for a known key, or an error for unknown keys.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "time_zone":
		return s.TimeZone, nil
	case "default_format":
		return s.DefaultFormat, nil
	case "data_dir":
		return s.DataDir, nil
	}
	return "", fmt.Errorf("unknown config key %q; known keys: %v", key, Keys())
}

// Set validates and assigns a value for a known key.
func (s *Settings) Set(key, value string) error {
	validate, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q; known keys: %v", key, Keys())
	}
	if err := validate(value); err != nil {
		return err
	}

	switch key {
	case "time_zone":
		s.TimeZone = value
	case "default_format":
		s.DefaultFormat = value
	case "data_dir":
		s.DataDir = value
	}
	return nil
}

// Location resolves the configured time zone. Empty or "local" means the
// process's local zone.
func (s Settings) Location() (*time.Location, error) {
	if s.TimeZone == "" || s.TimeZone == "local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", s.TimeZone, err)
	}
	return loc, nil
}

// Format returns the configured default export format, falling back to
// markdown.
func (s Settings) Format() string {
	if s.DefaultFormat == "" {
		return "markdown"
	}
	return s.DefaultFormat
}

// ResolveDataDir returns the entry log directory: the data_dir setting when
// present, otherwise the platform default.
func (s Settings) ResolveDataDir() string {
	if s.DataDir != "" {
		return s.DataDir
	}
	return DataDir()
}
