package storage

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.Version != 1 {
		t.Errorf("version should be 1, got %d", c.Version)
	}
	if c.Theme != "Default" {
		t.Errorf("theme should be Default, got %q", c.Theme)
	}
	if c.Input.StickDeadzone != 0.3 {
		t.Errorf("stick deadzone should be 0.3, got %v", c.Input.StickDeadzone)
	}
	if c.Input.TriggerDeadzone != 0.1 {
		t.Errorf("trigger deadzone should be 0.1, got %v", c.Input.TriggerDeadzone)
	}
	if c.Input.RightStickDeadzone != 0.15 {
		t.Errorf("right stick deadzone should be 0.15, got %v", c.Input.RightStickDeadzone)
	}
	if c.Cursor.SpeedSlow != 8 || c.Cursor.SpeedNormal != 15 || c.Cursor.SpeedFast != 25 {
		t.Errorf("cursor speeds should be 8/15/25, got %d/%d/%d",
			c.Cursor.SpeedSlow, c.Cursor.SpeedNormal, c.Cursor.SpeedFast)
	}
	if !c.Sound.NavigationSounds {
		t.Error("navigation sounds should default on")
	}
}

func TestApplyMissingDefaultsFillsZeroValues(t *testing.T) {
	c := &Config{}

	ApplyMissingDefaults(c)

	def := DefaultConfig()
	if c.Theme != def.Theme {
		t.Errorf("theme should be filled, got %q", c.Theme)
	}
	if c.SearchURL != def.SearchURL {
		t.Errorf("searchURL should be filled, got %q", c.SearchURL)
	}
	if c.Input.RepeatDelayMs != def.Input.RepeatDelayMs {
		t.Errorf("repeatDelayMs should be filled, got %d", c.Input.RepeatDelayMs)
	}
	if c.Cursor.Margin != def.Cursor.Margin {
		t.Errorf("cursor margin should be filled, got %d", c.Cursor.Margin)
	}
}

func TestApplyMissingDefaultsKeepsExplicitValues(t *testing.T) {
	c := &Config{
		Theme:     "Dark",
		FontSize:  18,
		SearchURL: "https://example.com/search?q=%s",
		Input:     InputConfig{StickDeadzone: 0.5, RepeatDelayMs: 300},
		Cursor:    CursorConfig{SpeedNormal: 20},
	}

	ApplyMissingDefaults(c)

	if c.Theme != "Dark" || c.FontSize != 18 {
		t.Error("explicit theme and font size should be kept")
	}
	if c.Input.StickDeadzone != 0.5 {
		t.Errorf("explicit deadzone should be kept, got %v", c.Input.StickDeadzone)
	}
	if c.Cursor.SpeedNormal != 20 {
		t.Errorf("explicit speed should be kept, got %d", c.Cursor.SpeedNormal)
	}
	// Untouched zero fields still get defaults
	if c.Input.TriggerDeadzone != 0.1 {
		t.Errorf("missing deadzone should be filled, got %v", c.Input.TriggerDeadzone)
	}
}

func TestPartialConfigParsesAndFills(t *testing.T) {
	// A hand-edited file carrying only a few keys stays valid.
	raw := `{
		"version": 1,
		"theme": "Light",
		"input": {"stickDeadzone": 0.4},
		"cursor": {"speedFast": 40}
	}`

	c := &Config{}
	if err := json.Unmarshal([]byte(raw), c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ApplyMissingDefaults(c)

	if c.Theme != "Light" {
		t.Errorf("theme should parse, got %q", c.Theme)
	}
	if c.Input.StickDeadzone != 0.4 {
		t.Errorf("stick deadzone should parse, got %v", c.Input.StickDeadzone)
	}
	if c.Cursor.SpeedFast != 40 {
		t.Errorf("speedFast should parse, got %d", c.Cursor.SpeedFast)
	}
	if c.Input.RepeatIntervalMs != 200 {
		t.Errorf("missing repeat interval should default, got %d", c.Input.RepeatIntervalMs)
	}
}

func TestMillisOrDefault(t *testing.T) {
	def := 400 * time.Millisecond

	if got := MillisOrDefault(0, def); got != def {
		t.Errorf("zero should fall back, got %v", got)
	}
	if got := MillisOrDefault(-5, def); got != def {
		t.Errorf("negative should fall back, got %v", got)
	}
	if got := MillisOrDefault(250, def); got != 250*time.Millisecond {
		t.Errorf("explicit value should convert, got %v", got)
	}
}
