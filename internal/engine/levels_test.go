package engine

import (
	"testing"
	"time"
)

func TestConfigForLevelTable(t *testing.T) {
	tests := []struct {
		level     int
		tileCount int
		coverRate float64
	}{
		{1, 24, 0},
		{2, 26, 0.06},
		{5, 32, 0.24},
		{8, 38, 0.42},
		{9, 40, 0.45}, // cover rate capped
		{10, 42, 0.45},
	}

	for _, tc := range tests {
		cfg := ConfigForLevel(tc.level)
		if cfg.TileCount != tc.tileCount {
			t.Errorf("level %d: TileCount = %d, expected %d", tc.level, cfg.TileCount, tc.tileCount)
		}
		if diff := cfg.CoverRate - tc.coverRate; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("level %d: CoverRate = %v, expected %v", tc.level, cfg.CoverRate, tc.coverRate)
		}
		if cfg.SideGapFactor != DefaultGap {
			t.Errorf("level %d: SideGapFactor = %v, expected %v", tc.level, cfg.SideGapFactor, DefaultGap)
		}
		if cfg.TileCount%2 != 0 {
			t.Errorf("level %d: odd tile count %d", tc.level, cfg.TileCount)
		}
	}
}

func TestConfigForLevelClampsInput(t *testing.T) {
	if got := ConfigForLevel(0); got != ConfigForLevel(1) {
		t.Error("level below range should clamp to 1")
	}
	if got := ConfigForLevel(99); got != ConfigForLevel(MaxLevel) {
		t.Error("level above range should clamp to MaxLevel")
	}
}

func TestLevelTargets(t *testing.T) {
	tests := []struct {
		level      int
		timeTarget time.Duration
		moveTarget int
	}{
		{1, 90 * time.Second, 20},
		{2, 105 * time.Second, 23},
		{10, 225 * time.Second, 47},
	}
	for _, tc := range tests {
		cfg := ConfigForLevel(tc.level)
		if got := cfg.TimeTarget(); got != tc.timeTarget {
			t.Errorf("level %d: TimeTarget = %v, expected %v", tc.level, got, tc.timeTarget)
		}
		if got := cfg.MoveTarget(); got != tc.moveTarget {
			t.Errorf("level %d: MoveTarget = %d, expected %d", tc.level, got, tc.moveTarget)
		}
	}
}
