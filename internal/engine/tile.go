// Package engine implements the rules of the layered tile-matching
// solitaire: which stacked tiles may be picked up, the bounded tray with
// pair elimination, and the win/lose state machine with merit scoring.
// The package is pure logic with no rendering, input, or storage imports.
package engine

// TileID identifies a tile within one board. IDs are assigned at deal time
// and stay stable for the whole session.
type TileID int

// SymbolID references an entry of the symbol catalog.
type SymbolID string

// Tile is a single playable unit. Positions are in abstract board units
// (not screen cells); Z is the stacking layer, higher values sit above.
type Tile struct {
	ID     TileID
	X, Y   float64
	Z      int
	Symbol SymbolID

	// Covered tiles hide their symbol under fog. A first activation clears
	// the fog; only an uncovered tile can move to the tray.
	Covered bool

	// AnimatingOut marks a tile mid-removal. It is already excluded from
	// occlusion but still counts as live until Removed is set.
	AnimatingOut bool

	// Removed tiles are permanently gone and excluded from everything.
	Removed bool
}

// Live reports whether the tile still counts toward the win condition.
func (t Tile) Live() bool {
	return !t.Removed
}

// Selectable reports whether the tile participates in occlusion at all.
func (t Tile) Selectable() bool {
	return !t.Removed && !t.AnimatingOut
}
