package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Positions) != len(cfg.Masses) {
		t.Error("default positions and masses must be the same length")
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Ticks <= 0 {
		t.Error("ticks should be positive")
	}
	if cfg.Tempo <= 0 {
		t.Error("tempo should be positive")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := &Config{
		Positions: []float64{0, 100, 200},
		Masses:    []float64{1e5, 2e5, 3e5},
		Ticks:     42,
		Dt:        10,
		Chord:     []uint8{60, 63, 67},
		Tempo:     90,
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Ticks != 42 || loaded.Dt != 10 || loaded.Tempo != 90 {
		t.Errorf("scalar fields did not round-trip: %+v", loaded)
	}
	if len(loaded.Positions) != 3 || loaded.Positions[2] != 200 {
		t.Errorf("positions did not round-trip: %v", loaded.Positions)
	}
	if len(loaded.Chord) != 3 || loaded.Chord[1] != 63 {
		t.Errorf("chord did not round-trip: %v", loaded.Chord)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("collapse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Positions) != 2 || cfg.Ticks != 50 {
		t.Errorf("unexpected collapse preset: %+v", cfg)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreWellFormed(t *testing.T) {
	for name, cfg := range Presets {
		if len(cfg.Positions) != len(cfg.Masses) {
			t.Errorf("preset %s: positions/masses length mismatch", name)
		}
		for i, m := range cfg.Masses {
			if m <= 0 {
				t.Errorf("preset %s: mass %d is not positive", name, i)
			}
		}
		if cfg.Dt <= 0 {
			t.Errorf("preset %s: dt is not positive", name)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("got %d preset names, want %d", len(names), len(Presets))
	}
}
