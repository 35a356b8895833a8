package storage

import (
	"fmt"
	"strings"
)

// ValidateConfig checks config values against allowed ranges.
// Returns a list of human-readable problems; empty means valid.
func ValidateConfig(config *Config, themeNames []string, sectionIDs []string) []string {
	var errs []string

	themeOK := false
	for _, name := range themeNames {
		if config.Theme == name {
			themeOK = true
			break
		}
	}
	if !themeOK {
		errs = append(errs, fmt.Sprintf("theme: %q is not a known theme", config.Theme))
	}

	if config.FontSize < 10 || config.FontSize > 32 {
		errs = append(errs, fmt.Sprintf("fontSize: %d out of range 10-32", config.FontSize))
	}

	sectionOK := false
	for _, id := range sectionIDs {
		if config.HomeSection == id {
			sectionOK = true
			break
		}
	}
	if !sectionOK {
		errs = append(errs, fmt.Sprintf("homeSection: %q is not a known section", config.HomeSection))
	}

	if !strings.Contains(config.SearchURL, "%s") {
		errs = append(errs, "searchURL: missing %s query placeholder")
	}

	for _, dz := range []struct {
		name  string
		value float64
	}{
		{"input.stickDeadzone", config.Input.StickDeadzone},
		{"input.triggerDeadzone", config.Input.TriggerDeadzone},
		{"input.rightStickDeadzone", config.Input.RightStickDeadzone},
	} {
		if dz.value < 0 || dz.value > 0.95 {
			errs = append(errs, fmt.Sprintf("%s: %.2f out of range 0-0.95", dz.name, dz.value))
		}
	}

	if config.Input.RepeatDelayMs < 0 || config.Input.RepeatDelayMs > 2000 {
		errs = append(errs, fmt.Sprintf("input.repeatDelayMs: %d out of range 0-2000", config.Input.RepeatDelayMs))
	}
	if config.Input.RepeatIntervalMs < 10 || config.Input.RepeatIntervalMs > 1000 {
		errs = append(errs, fmt.Sprintf("input.repeatIntervalMs: %d out of range 10-1000", config.Input.RepeatIntervalMs))
	}

	for _, sp := range []struct {
		name  string
		value int
	}{
		{"cursor.speedSlow", config.Cursor.SpeedSlow},
		{"cursor.speedNormal", config.Cursor.SpeedNormal},
		{"cursor.speedFast", config.Cursor.SpeedFast},
	} {
		if sp.value < 1 || sp.value > 100 {
			errs = append(errs, fmt.Sprintf("%s: %d out of range 1-100", sp.name, sp.value))
		}
	}

	if config.Cursor.Margin < 0 || config.Cursor.Margin > 64 {
		errs = append(errs, fmt.Sprintf("cursor.margin: %d out of range 0-64", config.Cursor.Margin))
	}

	return errs
}

// CorrectConfig resets invalid fields to their defaults in place.
// Valid fields are left untouched.
func CorrectConfig(config *Config, themeNames []string, sectionIDs []string) {
	def := DefaultConfig()

	themeOK := false
	for _, name := range themeNames {
		if config.Theme == name {
			themeOK = true
			break
		}
	}
	if !themeOK {
		config.Theme = def.Theme
	}

	if config.FontSize < 10 || config.FontSize > 32 {
		config.FontSize = def.FontSize
	}

	sectionOK := false
	for _, id := range sectionIDs {
		if config.HomeSection == id {
			sectionOK = true
			break
		}
	}
	if !sectionOK {
		config.HomeSection = def.HomeSection
	}

	if !strings.Contains(config.SearchURL, "%s") {
		config.SearchURL = def.SearchURL
	}

	if config.Input.StickDeadzone < 0 || config.Input.StickDeadzone > 0.95 {
		config.Input.StickDeadzone = def.Input.StickDeadzone
	}
	if config.Input.TriggerDeadzone < 0 || config.Input.TriggerDeadzone > 0.95 {
		config.Input.TriggerDeadzone = def.Input.TriggerDeadzone
	}
	if config.Input.RightStickDeadzone < 0 || config.Input.RightStickDeadzone > 0.95 {
		config.Input.RightStickDeadzone = def.Input.RightStickDeadzone
	}
	if config.Input.RepeatDelayMs < 0 || config.Input.RepeatDelayMs > 2000 {
		config.Input.RepeatDelayMs = def.Input.RepeatDelayMs
	}
	if config.Input.RepeatIntervalMs < 10 || config.Input.RepeatIntervalMs > 1000 {
		config.Input.RepeatIntervalMs = def.Input.RepeatIntervalMs
	}

	if config.Cursor.SpeedSlow < 1 || config.Cursor.SpeedSlow > 100 {
		config.Cursor.SpeedSlow = def.Cursor.SpeedSlow
	}
	if config.Cursor.SpeedNormal < 1 || config.Cursor.SpeedNormal > 100 {
		config.Cursor.SpeedNormal = def.Cursor.SpeedNormal
	}
	if config.Cursor.SpeedFast < 1 || config.Cursor.SpeedFast > 100 {
		config.Cursor.SpeedFast = def.Cursor.SpeedFast
	}
	if config.Cursor.Margin < 0 || config.Cursor.Margin > 64 {
		config.Cursor.Margin = def.Cursor.Margin
	}
}
