package engine

import (
	"time"

	"github.com/carlosperez20/ALEFGAME/internal/core"
)

// MaxLevel is the highest selectable level.
const MaxLevel = 10

// LevelConfig is derived purely from the level number: how many tiles are
// dealt, how tolerant lateral adjacency is, and what fraction of tiles
// start under fog.
type LevelConfig struct {
	Level         int
	TileCount     int
	SideGapFactor float64
	CoverRate     float64
}

// ConfigForLevel maps a level to its configuration. Deterministic, no state.
func ConfigForLevel(level int) LevelConfig {
	level = core.Clamp(level, 1, MaxLevel)
	return LevelConfig{
		Level:         level,
		TileCount:     core.Clamp(24+2*(level-1), 24, 50),
		SideGapFactor: DefaultGap,
		CoverRate:     core.ClampF(0.06*float64(level-1), 0, 0.45),
	}
}

// TimeTarget is the completion time that still earns a full time sub-score.
func (c LevelConfig) TimeTarget() time.Duration {
	return time.Duration(90+15*(c.Level-1)) * time.Second
}

// MoveTarget is the move count that still earns a full move sub-score.
func (c LevelConfig) MoveTarget() int {
	return 20 + 3*(c.Level-1)
}
