package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and (almost certainly) no user config in CI: the
	// embedded default must produce the classic constants.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Tray.Limit != 4 {
		t.Errorf("Tray.Limit = %d, expected 4", cfg.Tray.Limit)
	}
	if cfg.Timing.RemovalDelayMS != 240 {
		t.Errorf("RemovalDelayMS = %d, expected 240", cfg.Timing.RemovalDelayMS)
	}
	if cfg.Timing.MatchClearDelayMS != 1450 {
		t.Errorf("MatchClearDelayMS = %d, expected 1450", cfg.Timing.MatchClearDelayMS)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "tray:\n  limit: 6\ntiming:\n  removal_delay_ms: 100\n  match_clear_delay_ms: 320\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Tray.Limit != 6 || cfg.Timing.MatchClearDelayMS != 320 {
		t.Errorf("custom config not applied: %+v", cfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestSessionConfigConversion(t *testing.T) {
	cfg := DefaultGameConfig()
	sc := cfg.SessionConfig()

	if sc.TrayLimit != 4 {
		t.Errorf("TrayLimit = %d, expected 4", sc.TrayLimit)
	}
	if sc.RemovalDelay != 240*time.Millisecond {
		t.Errorf("RemovalDelay = %v, expected 240ms", sc.RemovalDelay)
	}
	if sc.MatchClearDelay != 1450*time.Millisecond {
		t.Errorf("MatchClearDelay = %v, expected 1450ms", sc.MatchClearDelay)
	}
}

func TestSessionConfigFallsBackOnZeroValues(t *testing.T) {
	var cfg GameConfig // all zero
	sc := cfg.SessionConfig()

	if sc.TrayLimit <= 0 || sc.RemovalDelay <= 0 || sc.MatchClearDelay <= 0 {
		t.Errorf("zero config did not fall back to defaults: %+v", sc)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     Preset
		trayLimit  int
		matchClear int
	}{
		{PresetClassic, 4, 1450},
		{PresetSwift, 4, 320},
		{PresetRoomy, 6, 1450},
		{Preset("unknown"), 4, 1450},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Tray.Limit != tc.trayLimit {
				t.Errorf("Tray.Limit = %d, expected %d", cfg.Tray.Limit, tc.trayLimit)
			}
			if cfg.Timing.MatchClearDelayMS != tc.matchClear {
				t.Errorf("MatchClearDelayMS = %d, expected %d", cfg.Timing.MatchClearDelayMS, tc.matchClear)
			}
		})
	}
}
