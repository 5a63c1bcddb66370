package engine

import "github.com/carlosperez20/ALEFGAME/internal/core"

// Board-unit tile dimensions. The platform maps these to screen cells; the
// engine only needs them proportionally correct (tiles taller than wide,
// layer shift a small fraction of a tile).
const (
	TileWidth    = 48.0
	TileHeight   = 64.0
	LayerShiftX  = 6.0
	LayerShiftY  = 6.0
	DefaultGap   = 0.18 // lateral-adjacency tolerance as a fraction of width
	rectPadRatio = 0.02 // bounding-rect shrink to ignore pixel-adjacent tiles
	minRectPad   = 1.0
)

// Metrics describes the geometry the occlusion solver works in.
type Metrics struct {
	TileW, TileH float64
	ShiftX       float64 // visual x-shift per layer
	ShiftY       float64 // visual y-shift per layer
	SideGap      float64 // lateral tolerance, fraction of TileW
}

// DefaultMetrics returns the geometry used by the standard layout pool.
func DefaultMetrics() Metrics {
	return Metrics{
		TileW:   TileWidth,
		TileH:   TileHeight,
		ShiftX:  LayerShiftX,
		ShiftY:  LayerShiftY,
		SideGap: DefaultGap,
	}
}

// TileRect returns the padded bounding rectangle of a tile, shifted by its
// layer the same way it is drawn. The padding avoids false positives from
// tiles that merely touch.
func (m Metrics) TileRect(t Tile) core.Rect {
	pad := core.MaxF(m.TileW*rectPadRatio, minRectPad)
	x := t.X + float64(t.Z)*m.ShiftX
	y := t.Y - float64(t.Z)*m.ShiftY
	return core.NewRect(x, y, m.TileW, m.TileH).Inset(pad)
}

// BlockReason is why a tile is not currently selectable.
type BlockReason int

const (
	BlockNone      BlockReason = iota
	BlockAbove                 // an overlapping tile sits on a higher layer
	BlockSameLayer             // an overlapping tile shares the layer
	BlockLateral               // same-layer neighbors on both sides
)

// String returns the diagnostic reason code.
func (r BlockReason) String() string {
	switch r {
	case BlockAbove:
		return "blocked:overlap-above"
	case BlockSameLayer:
		return "blocked:overlap-same"
	case BlockLateral:
		return "blocked:lateral"
	default:
		return ""
	}
}

// ComputeFree determines which of the given tiles are selectable and why
// the rest are not. The input must contain only selectable-phase tiles
// (no removed or animating-out ones). The function is pure: recomputed
// from scratch after every board mutation rather than maintained
// incrementally.
//
// A tile is free when no overlapping tile sits on a higher layer, no tile
// overlaps it on its own layer, and at least one lateral side is open.
func ComputeFree(tiles []Tile, m Metrics) (free map[TileID]bool, reasons map[TileID]BlockReason) {
	free = make(map[TileID]bool, len(tiles))
	reasons = make(map[TileID]BlockReason)

	rects := make([]core.Rect, len(tiles))
	for i, t := range tiles {
		rects[i] = m.TileRect(t)
	}

	gap := m.SideGap * m.TileW

	for i, t := range tiles {
		reason := BlockNone

		for j, other := range tiles {
			if i == j || !rects[i].Intersects(rects[j]) {
				continue
			}
			if other.Z > t.Z {
				// Overlap from above always wins over a same-layer clash.
				reason = BlockAbove
				break
			}
			if other.Z == t.Z {
				reason = BlockSameLayer
			}
		}

		if reason == BlockNone {
			left, right := false, false
			for j, other := range tiles {
				if i == j || other.Z != t.Z {
					continue
				}
				if rects[i].VSpan(rects[j]) <= 0 {
					continue
				}
				if d := rects[i].X - rects[j].Right(); d >= 0 && d <= gap {
					left = true
				}
				if d := rects[j].X - rects[i].Right(); d >= 0 && d <= gap {
					right = true
				}
				if left && right {
					break
				}
			}
			if left && right {
				reason = BlockLateral
			}
		}

		if reason == BlockNone {
			free[t.ID] = true
		} else {
			reasons[t.ID] = reason
		}
	}

	return free, reasons
}
