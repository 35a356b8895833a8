package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestAtomicWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	data := map[string]int{"a": 1, "b": 2}
	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := map[string]int{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["a"] != 1 || got["b"] != 2 {
		t.Errorf("round trip mismatch: %v", got)
	}

	// No leftover temp file
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}

func TestAtomicWriteJSONOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := AtomicWriteJSON(path, map[string]int{"v": 1}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := AtomicWriteJSON(path, map[string]int{"v": 2}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	raw, _ := os.ReadFile(path)
	got := map[string]int{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["v"] != 2 {
		t.Errorf("second write should win, got %d", got["v"])
	}
}

func TestGetConfigPathUsesDataDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG paths are Linux-specific")
	}
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	Init("testapp")

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	want := filepath.Join(dir, "testapp", "input.json")
	if path != want {
		t.Errorf("config path = %q, want %q", path, want)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG paths are Linux-specific")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	Init("testapp")

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if c.Theme != "Default" {
		t.Errorf("missing file should yield defaults, got theme %q", c.Theme)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG paths are Linux-specific")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	Init("testapp")

	c := DefaultConfig()
	c.Theme = "Dark"
	c.Cursor.SpeedFast = 40
	if err := SaveConfig(c); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Theme != "Dark" {
		t.Errorf("theme should round trip, got %q", loaded.Theme)
	}
	if loaded.Cursor.SpeedFast != 40 {
		t.Errorf("cursor speed should round trip, got %d", loaded.Cursor.SpeedFast)
	}
}
