package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Built-in defaults. The deadzones match the sampler's constants; they are
// repeated here so a saved config is self-describing.
const (
	defaultStickDeadzone      = 0.3
	defaultTriggerDeadzone    = 0.1
	defaultRightStickDeadzone = 0.15
	defaultRepeatDelayMs      = 400
	defaultRepeatIntervalMs   = 200
	defaultSpeedSlow          = 8
	defaultSpeedNormal        = 15
	defaultSpeedFast          = 25
	defaultCursorMargin       = 4
	defaultFontSize           = 14
	defaultSearchURL          = "https://duckduckgo.com/?q=%s"
	defaultHomeSection        = "home"
)

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Theme:       "Default",
		FontSize:    defaultFontSize,
		HomeSection: defaultHomeSection,
		SearchURL:   defaultSearchURL,
		Input: InputConfig{
			StickDeadzone:      defaultStickDeadzone,
			TriggerDeadzone:    defaultTriggerDeadzone,
			RightStickDeadzone: defaultRightStickDeadzone,
			RepeatDelayMs:      defaultRepeatDelayMs,
			RepeatIntervalMs:   defaultRepeatIntervalMs,
		},
		Cursor: CursorConfig{
			SpeedSlow:   defaultSpeedSlow,
			SpeedNormal: defaultSpeedNormal,
			SpeedFast:   defaultSpeedFast,
			Margin:      defaultCursorMargin,
		},
		Sound: SoundConfig{
			NavigationSounds: true,
		},
	}
}

// LoadConfig loads the configuration from input.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
// Zero-valued tunables are filled with defaults.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &Config{}
	if err := json.Unmarshal(jsonBytes, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	ApplyMissingDefaults(config)
	return config, nil
}

// SaveConfig saves the configuration to input.json atomically
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return AtomicWriteJSON(path, config)
}

// ApplyMissingDefaults fills zero-valued tunables with their defaults.
// Only fields whose zero value is never a legitimate setting are touched.
func ApplyMissingDefaults(config *Config) {
	if config.Theme == "" {
		config.Theme = "Default"
	}
	if config.FontSize == 0 {
		config.FontSize = defaultFontSize
	}
	if config.HomeSection == "" {
		config.HomeSection = defaultHomeSection
	}
	if config.SearchURL == "" {
		config.SearchURL = defaultSearchURL
	}
	if config.Input.StickDeadzone == 0 {
		config.Input.StickDeadzone = defaultStickDeadzone
	}
	if config.Input.TriggerDeadzone == 0 {
		config.Input.TriggerDeadzone = defaultTriggerDeadzone
	}
	if config.Input.RightStickDeadzone == 0 {
		config.Input.RightStickDeadzone = defaultRightStickDeadzone
	}
	if config.Input.RepeatDelayMs == 0 {
		config.Input.RepeatDelayMs = defaultRepeatDelayMs
	}
	if config.Input.RepeatIntervalMs == 0 {
		config.Input.RepeatIntervalMs = defaultRepeatIntervalMs
	}
	if config.Cursor.SpeedSlow == 0 {
		config.Cursor.SpeedSlow = defaultSpeedSlow
	}
	if config.Cursor.SpeedNormal == 0 {
		config.Cursor.SpeedNormal = defaultSpeedNormal
	}
	if config.Cursor.SpeedFast == 0 {
		config.Cursor.SpeedFast = defaultSpeedFast
	}
	if config.Cursor.Margin == 0 {
		config.Cursor.Margin = defaultCursorMargin
	}
}

// MillisOrDefault converts a millisecond config value to a duration,
// falling back to def when the value is unset.
func MillisOrDefault(ms int, def time.Duration) time.Duration {
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
