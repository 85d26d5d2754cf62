package config

import (
	"path/filepath"
	"testing"
	"time"
)

// TestDefaults tests the default gate settings.
func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GateInterval() != 250*time.Millisecond {
		t.Errorf("Expected default gate interval 250ms, got %v", cfg.GateInterval())
	}
	if !cfg.Checkpoint.ConfirmAbort {
		t.Error("Expected ConfirmAbort enabled by default")
	}
}

// TestSaveLoadRoundTrip tests that a saved configuration loads back intact.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m := NewManagerAt(path)
	cfg := DefaultConfig()
	cfg.Checkpoint.GateIntervalMS = 100
	cfg.General.TrayEnabled = true
	m.Set(cfg)
	if err := m.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	m2 := NewManagerAt(path)
	if err := m2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := m2.Get()
	if got.Checkpoint.GateIntervalMS != 100 {
		t.Errorf("Expected gate interval 100ms, got %d", got.Checkpoint.GateIntervalMS)
	}
	if !got.General.TrayEnabled {
		t.Error("Expected TrayEnabled to round-trip")
	}
}

// TestLoadMissingFileUsesDefaults tests that a missing config file is not
// an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := NewManagerAt(filepath.Join(t.TempDir(), "nope.json"))
	if err := m.Load(); err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if m.Get().Checkpoint.GateIntervalMS != 250 {
		t.Errorf("Expected defaults after missing file, got %d", m.Get().Checkpoint.GateIntervalMS)
	}
}
