package engine

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Level       int
	State       State
	Moves       int
	LiveTiles   int
	FreeTiles   int
	TrayLen     int
	TotalMerits int
	ElapsedMS   int64
	Symbols     string // live symbols in deal order, comma-joined
}

// Snapshot returns the current snapshot. Two same-seed sessions fed the
// same events must produce identical snapshots.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Level:       s.level,
		State:       s.state,
		Moves:       s.moves,
		LiveTiles:   s.LiveCount(),
		FreeTiles:   len(s.free),
		TrayLen:     len(s.TrayEntries()),
		TotalMerits: s.totalMerits,
		ElapsedMS:   s.Elapsed().Milliseconds(),
	}
	if s.board != nil {
		for _, t := range s.board.Tiles() {
			if !t.Live() {
				continue
			}
			if snap.Symbols != "" {
				snap.Symbols += ","
			}
			snap.Symbols += string(t.Symbol)
		}
	}
	return snap
}
