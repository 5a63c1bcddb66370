package engine

import (
	"math"
	"math/rand"
)

// Board owns the tiles of one play-through. It is mutated only through the
// methods below; the session recomputes the free set after each mutation.
type Board struct {
	tiles []Tile
}

// NewBoard deals a board: slots get symbols drawn pairwise from the subset
// and a cover-rate fraction of tiles starts under fog.
//
// The pair pool is built by drawing cyclically from a shuffled copy of the
// subset until half the slot count is reached, so every symbol is used
// roughly evenly, then duplicated and shuffled across all slots.
func NewBoard(slots []Slot, cfg LevelConfig, subset []SymbolID, rng *rand.Rand) (*Board, error) {
	n := len(slots)
	if n == 0 || n%2 != 0 {
		return nil, configErrorf("slot count %d must be positive and even", n)
	}
	if len(subset) == 0 {
		return nil, configErrorf("symbol subset is empty")
	}

	shuffled := make([]SymbolID, len(subset))
	copy(shuffled, subset)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assignments := make([]SymbolID, 0, n)
	for i := 0; i < n/2; i++ {
		assignments = append(assignments, shuffled[i%len(shuffled)])
	}
	assignments = append(assignments, assignments...)
	rng.Shuffle(len(assignments), func(i, j int) {
		assignments[i], assignments[j] = assignments[j], assignments[i]
	})

	covered := make(map[int]bool)
	coverCount := int(math.Round(cfg.CoverRate * float64(n)))
	for _, idx := range rng.Perm(n)[:coverCount] {
		covered[idx] = true
	}

	b := &Board{tiles: make([]Tile, n)}
	for i, slot := range slots {
		b.tiles[i] = Tile{
			ID:      TileID(i),
			X:       slot.X,
			Y:       slot.Y,
			Z:       slot.Z,
			Symbol:  assignments[i],
			Covered: covered[i],
		}
	}
	return b, nil
}

// ByID returns the tile with the given id.
func (b *Board) ByID(id TileID) (Tile, bool) {
	i := int(id)
	if i < 0 || i >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[i], true
}

// Selectable returns the tiles that participate in occlusion: neither
// removed nor animating out.
func (b *Board) Selectable() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		if t.Selectable() {
			out = append(out, t)
		}
	}
	return out
}

// LiveCount counts tiles not yet removed. Animating-out tiles still count;
// the win check waits for their removal to complete.
func (b *Board) LiveCount() int {
	n := 0
	for _, t := range b.tiles {
		if t.Live() {
			n++
		}
	}
	return n
}

// Tiles returns a copy of all tiles, removed ones included.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Reveal clears the fog on a covered tile. The caller is responsible for
// the freeness check; anything else ineligible is silently ignored.
func (b *Board) Reveal(id TileID) bool {
	i := int(id)
	if i < 0 || i >= len(b.tiles) {
		return false
	}
	t := &b.tiles[i]
	if t.Removed || t.AnimatingOut || !t.Covered {
		return false
	}
	t.Covered = false
	return true
}

// BeginRemoval starts the two-phase removal of a tile. The tile leaves the
// occlusion computation immediately but stays live until FinishRemoval.
func (b *Board) BeginRemoval(id TileID) bool {
	i := int(id)
	if i < 0 || i >= len(b.tiles) {
		return false
	}
	t := &b.tiles[i]
	if t.Removed || t.AnimatingOut {
		return false
	}
	t.AnimatingOut = true
	return true
}

// FinishRemoval completes a removal started by BeginRemoval.
func (b *Board) FinishRemoval(id TileID) bool {
	i := int(id)
	if i < 0 || i >= len(b.tiles) {
		return false
	}
	t := &b.tiles[i]
	if !t.AnimatingOut {
		return false
	}
	t.AnimatingOut = false
	t.Removed = true
	return true
}

// ReshuffleSymbols randomly permutes the symbol assignment of live tiles.
// Positions, layers, and flags stay put; only symbols move, so the live
// multiset of symbols is preserved.
func (b *Board) ReshuffleSymbols(rng *rand.Rand) {
	var idx []int
	for i, t := range b.tiles {
		if t.Live() {
			idx = append(idx, i)
		}
	}
	symbols := make([]SymbolID, len(idx))
	for k, i := range idx {
		symbols[k] = b.tiles[i].Symbol
	}
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})
	for k, i := range idx {
		b.tiles[i].Symbol = symbols[k]
	}
}

// clone deep-copies the board for history snapshots.
func (b *Board) clone() *Board {
	c := &Board{tiles: make([]Tile, len(b.tiles))}
	copy(c.tiles, b.tiles)
	return c
}
