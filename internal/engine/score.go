package engine

import (
	"math"
	"time"

	"github.com/carlosperez20/ALEFGAME/internal/core"
)

// Scoring weights: efficient play (few moves) matters more than raw speed.
const (
	timeWeight = 0.35
	moveWeight = 0.65
)

// subScore converts an achieved/target ratio into [0,1]: at or under target
// is a full score, overshooting degrades linearly at half rate.
func subScore(ratio float64) float64 {
	return core.ClampF(1-(ratio-1)*0.5, 0, 1)
}

// CompletionScore rates a finished level in [0,1] from elapsed time and
// move count against the level's targets.
func CompletionScore(elapsed time.Duration, moves, level int) float64 {
	cfg := ConfigForLevel(level)
	timeRatio := elapsed.Seconds() / cfg.TimeTarget().Seconds()
	moveRatio := float64(moves) / float64(cfg.MoveTarget())
	return subScore(timeRatio)*timeWeight + subScore(moveRatio)*moveWeight
}

// MeritsFor converts a completion score into merits earned: a score tier
// scaled up 10% per level past the first, rounded to nearest.
func MeritsFor(score float64, level int) int {
	var tier int
	switch {
	case score >= 0.85:
		tier = 10
	case score >= 0.70:
		tier = 8
	case score >= 0.55:
		tier = 6
	case score >= 0.40:
		tier = 4
	default:
		tier = 2
	}
	scale := 1 + 0.1*float64(level-1)
	return int(math.Round(float64(tier) * scale))
}
