package engine

// Slot is a position in the layout pool: where a tile may be placed and on
// which layer. Coordinates are in board units (see Metrics).
type Slot struct {
	X, Y float64
	Z    int
}

// The fixed layout pool: a stepped pyramid of overlapping positions,
// ordered bottom layer first, row-major within a layer. Dealing takes a
// prefix of this ordering, so small boards stay flat and larger ones grow
// upward. The occlusion solver is independent of how slots are produced.
var slotPool = buildSlotPool()

func buildSlotPool() []Slot {
	var pool []Slot

	// Ground layer: 8 columns by 4 rows of touching tiles.
	for r := 0; r < 4; r++ {
		for c := 0; c < 8; c++ {
			pool = append(pool, Slot{X: float64(c) * TileWidth, Y: float64(r) * TileHeight, Z: 0})
		}
	}

	// Middle layer: straddles pairs of ground tiles.
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			pool = append(pool, Slot{
				X: TileWidth/2 + float64(c)*2*TileWidth,
				Y: TileHeight/2 + float64(r)*TileHeight,
				Z: 1,
			})
		}
	}

	// Top layer: a sparse cap over the middle.
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			pool = append(pool, Slot{
				X: TileWidth + float64(c)*2.5*TileWidth,
				Y: TileHeight + float64(r)*TileHeight,
				Z: 2,
			})
		}
	}

	return pool
}

// PoolSize returns the number of slots the layout pool can supply.
func PoolSize() int {
	return len(slotPool)
}

// Slots returns placements for n tiles. The count must be even, positive,
// and within the pool capacity; anything else is a ConfigurationError.
func Slots(n int) ([]Slot, error) {
	if n <= 0 {
		return nil, configErrorf("tile count %d must be positive", n)
	}
	if n%2 != 0 {
		return nil, configErrorf("tile count %d is odd, symbols come in pairs", n)
	}
	if n > len(slotPool) {
		return nil, configErrorf("tile count %d exceeds layout pool size %d", n, len(slotPool))
	}
	out := make([]Slot, n)
	copy(out, slotPool[:n])
	return out, nil
}
