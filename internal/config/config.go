// Package config provides YAML-based configuration loading and variant
// presets for the game platform.
package config

import (
	"time"

	"github.com/carlosperez20/ALEFGAME/internal/engine"
)

// GameConfig contains the tunable rule constants. The tray limit and the
// two delays differ between known variants of the game, so they live in
// configuration rather than in code.
type GameConfig struct {
	Tray   TrayConfig   `yaml:"tray"`
	Timing TimingConfig `yaml:"timing"`
}

// TrayConfig defines the holding-tray parameters.
type TrayConfig struct {
	Limit int `yaml:"limit"`
}

// TimingConfig defines the delayed-effect durations in milliseconds.
type TimingConfig struct {
	RemovalDelayMS    int `yaml:"removal_delay_ms"`
	MatchClearDelayMS int `yaml:"match_clear_delay_ms"`
}

// DefaultGameConfig returns the classic variant constants.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Tray: TrayConfig{Limit: 4},
		Timing: TimingConfig{
			RemovalDelayMS:    240,
			MatchClearDelayMS: 1450,
		},
	}
}

// SessionConfig converts the loaded configuration into engine constants,
// falling back to defaults for missing or nonsensical values.
func (c GameConfig) SessionConfig() engine.Config {
	def := engine.DefaultSessionConfig()
	out := engine.Config{
		TrayLimit:       c.Tray.Limit,
		RemovalDelay:    time.Duration(c.Timing.RemovalDelayMS) * time.Millisecond,
		MatchClearDelay: time.Duration(c.Timing.MatchClearDelayMS) * time.Millisecond,
	}
	if out.TrayLimit <= 0 {
		out.TrayLimit = def.TrayLimit
	}
	if out.RemovalDelay <= 0 {
		out.RemovalDelay = def.RemovalDelay
	}
	if out.MatchClearDelay <= 0 {
		out.MatchClearDelay = def.MatchClearDelay
	}
	return out
}

// Preset names a known rule variant.
type Preset string

const (
	// PresetClassic is the reference behavior: 4 slots, slow pair clear.
	PresetClassic Preset = "classic"
	// PresetSwift clears matched pairs quickly for faster play.
	PresetSwift Preset = "swift"
	// PresetRoomy adds two tray slots for a forgiving game.
	PresetRoomy Preset = "roomy"
)

// ApplyPreset mutates the config according to a named variant.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Tray.Limit = 4
		cfg.Timing.MatchClearDelayMS = 1450
	case PresetSwift:
		cfg.Timing.MatchClearDelayMS = 320
	case PresetRoomy:
		cfg.Tray.Limit = 6
	}
}
