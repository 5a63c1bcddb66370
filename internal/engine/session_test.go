package engine

import (
	"testing"
	"time"
)

func startedSession(t *testing.T, level int, seed int64) *Session {
	t.Helper()
	s := NewSession(DefaultSessionConfig(), seed)
	s.SetLevel(level)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return s
}

// freeTileIDs returns the selectable free tiles in deal order.
func freeTileIDs(s *Session) []TileID {
	var ids []TileID
	for _, tile := range s.board.Tiles() {
		if tile.Selectable() && s.free[tile.ID] {
			ids = append(ids, tile.ID)
		}
	}
	return ids
}

// forceSymbols rewrites symbols on specific tiles so tests control pairing.
func forceSymbols(s *Session, ids []TileID, symbols []SymbolID) {
	for i, id := range ids {
		s.board.tiles[id].Symbol = symbols[i]
	}
}

func TestActivateInsertsAndRemoves(t *testing.T) {
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	if len(free) < 2 {
		t.Fatalf("only %d free tiles on a fresh level 1 board", len(free))
	}
	forceSymbols(s, free[:2], []SymbolID{"alef", "bet"})

	s.ActivateTile(free[0])

	if got := len(s.TrayEntries()); got != 1 {
		t.Fatalf("tray length = %d after activation, expected 1", got)
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", s.Moves())
	}
	// The tile is animating out: still live, already out of occlusion.
	if s.LiveCount() != 24 {
		t.Errorf("LiveCount() = %d mid-removal, expected 24", s.LiveCount())
	}
	if s.Free(free[0]) {
		t.Error("activated tile still reported free")
	}

	s.Advance(DefaultSessionConfig().RemovalDelay)
	if s.LiveCount() != 23 {
		t.Errorf("LiveCount() = %d after removal delay, expected 23", s.LiveCount())
	}
}

func TestPairMatchClearsTrayAndBoard(t *testing.T) {
	cfg := DefaultSessionConfig()
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	forceSymbols(s, free[:2], []SymbolID{"alef", "alef"})

	s.ActivateTile(free[0])
	s.Advance(cfg.RemovalDelay)
	s.ActivateTile(free[1])

	// Both entries are matched immediately but still occupy slots.
	entries := s.TrayEntries()
	if len(entries) != 2 {
		t.Fatalf("tray length = %d, expected 2", len(entries))
	}
	for _, e := range entries {
		if !e.MatchedOut {
			t.Errorf("entry %q not matched out", e.Symbol)
		}
	}

	s.Advance(cfg.MatchClearDelay)
	if got := len(s.TrayEntries()); got != 0 {
		t.Errorf("tray length = %d after clear delay, expected 0", got)
	}
	if s.LiveCount() != 22 {
		t.Errorf("LiveCount() = %d, expected 22", s.LiveCount())
	}
	if s.Moves() != 2 {
		t.Errorf("Moves() = %d, expected 2", s.Moves())
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
}

func TestActivateBlockedTileIsNoOp(t *testing.T) {
	s := startedSession(t, 1, 42)

	var blocked TileID = -1
	for _, tile := range s.board.Tiles() {
		if tile.Selectable() && !s.free[tile.ID] {
			blocked = tile.ID
			break
		}
	}
	if blocked < 0 {
		t.Fatal("expected at least one blocked tile on a fresh board")
	}

	s.ActivateTile(blocked)
	if len(s.TrayEntries()) != 0 || s.Moves() != 0 {
		t.Error("blocked activation mutated the session")
	}
}

func TestActivateUnknownTileIsNoOp(t *testing.T) {
	s := startedSession(t, 1, 42)
	s.ActivateTile(TileID(9999))
	s.ActivateTile(TileID(-1))
	if len(s.TrayEntries()) != 0 || s.Moves() != 0 {
		t.Error("unknown tile activation mutated the session")
	}
}

func TestCoveredTileRevealsWithoutMoving(t *testing.T) {
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	id := free[0]
	s.board.tiles[id].Covered = true
	s.recompute()

	s.ActivateTile(id)

	tile, _ := s.board.ByID(id)
	if tile.Covered {
		t.Error("activation did not clear the fog")
	}
	if len(s.TrayEntries()) != 0 {
		t.Error("reveal must not insert into the tray")
	}
	if s.LiveCount() != 24 || s.Moves() != 0 {
		t.Error("reveal must not remove tiles or count as a move")
	}
	if s.CanUndo() {
		t.Error("reveal must not push undo history")
	}

	// The now-uncovered tile moves to the tray on the next activation.
	s.ActivateTile(id)
	if len(s.TrayEntries()) != 1 {
		t.Error("second activation should insert the uncovered tile")
	}
}

func TestTrayOverflowLoses(t *testing.T) {
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	if len(free) < 5 {
		t.Fatalf("need 5 free tiles, have %d", len(free))
	}
	// Five distinct symbols: nothing pairs, the tray just fills up.
	forceSymbols(s, free[:5], []SymbolID{"alef", "bet", "gimel", "dalet", "he"})

	for i := 0; i < 4; i++ {
		s.ActivateTile(free[i])
	}
	if got := len(s.TrayEntries()); got != 4 {
		t.Fatalf("tray length = %d after four inserts, expected 4", got)
	}
	if s.State() != StatePlaying {
		t.Fatalf("State() = %v before overflow, expected playing", s.State())
	}

	s.ActivateTile(free[4])

	if s.State() != StateLose {
		t.Errorf("State() = %v after overflow attempt, expected lose", s.State())
	}
	if got := len(s.TrayEntries()); got != 4 {
		t.Errorf("tray length = %d, the rejected entry must not be added", got)
	}

	// Lose is terminal: nothing reacts anymore.
	s.ActivateTile(free[3])
	s.Reshuffle()
	s.Undo()
	if s.State() != StateLose || len(s.TrayEntries()) != 4 {
		t.Error("terminal lose state was mutated")
	}
}

func TestUndoRestoresPreMoveState(t *testing.T) {
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	forceSymbols(s, free[:2], []SymbolID{"alef", "bet"})

	before := s.Snapshot()
	s.ActivateTile(free[0])
	s.Advance(50 * time.Millisecond) // mid removal animation

	s.Undo()

	after := s.Snapshot()
	if after.TrayLen != before.TrayLen {
		t.Errorf("tray length %d after undo, expected %d", after.TrayLen, before.TrayLen)
	}
	if after.LiveTiles != before.LiveTiles {
		t.Errorf("live tiles %d after undo, expected %d", after.LiveTiles, before.LiveTiles)
	}
	if after.Moves != before.Moves {
		t.Errorf("moves %d after undo, expected %d", after.Moves, before.Moves)
	}
	if after.State != before.State {
		t.Errorf("state %v after undo, expected %v", after.State, before.State)
	}

	// The tile is fully restored and selectable again.
	tile, _ := s.board.ByID(free[0])
	if tile.AnimatingOut || tile.Removed {
		t.Error("undone tile still mid-removal")
	}
	if !s.Free(free[0]) {
		t.Error("undone tile not free again")
	}

	// No timers left over from the undone move.
	s.Advance(5 * time.Second)
	if s.LiveCount() != before.LiveTiles {
		t.Error("a stale timer removed a tile after undo")
	}
}

func TestUndoPastOldestIsNoOp(t *testing.T) {
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	forceSymbols(s, free[:1], []SymbolID{"alef"})

	s.ActivateTile(free[0])
	s.Undo()
	before := s.Snapshot()

	s.Undo()
	s.Undo()

	if got := s.Snapshot(); got != before {
		t.Errorf("undo with empty history changed state:\n%+v\nvs\n%+v", got, before)
	}
}

func TestUndoAfterReshuffleRestoresSymbols(t *testing.T) {
	s := startedSession(t, 3, 7)

	var before []SymbolID
	for _, tile := range s.board.Tiles() {
		before = append(before, tile.Symbol)
	}

	s.Reshuffle()
	s.Undo()

	for i, tile := range s.board.Tiles() {
		if tile.Symbol != before[i] {
			t.Fatalf("tile %d symbol %q after undo, expected %q", i, tile.Symbol, before[i])
		}
	}
}

func TestReshuffleKeepsMultisetAndState(t *testing.T) {
	s := startedSession(t, 2, 9)
	before := symbolCounts(s.board.Tiles())

	s.Reshuffle()

	after := symbolCounts(s.board.Tiles())
	for sym, count := range before {
		if after[sym] != count {
			t.Errorf("symbol %q count %d -> %d after reshuffle", sym, count, after[sym])
		}
	}
	if s.Moves() != 0 || s.State() != StatePlaying {
		t.Error("reshuffle must not count moves or change state")
	}
	if !s.CanUndo() {
		t.Error("reshuffle should push undo history")
	}
}

func TestWinAwardsMerits(t *testing.T) {
	cfg := DefaultSessionConfig()
	s := startedSession(t, 1, 42)

	// Collapse the board to two far-apart tiles with equal symbols.
	keepA, keepB := TileID(0), TileID(23)
	for i := range s.board.tiles {
		id := s.board.tiles[i].ID
		if id != keepA && id != keepB {
			s.board.tiles[i].Removed = true
		}
	}
	forceSymbols(s, []TileID{keepA, keepB}, []SymbolID{"alef", "alef"})
	s.recompute()
	if !s.Free(keepA) || !s.Free(keepB) {
		t.Fatal("isolated tiles should both be free")
	}

	s.ActivateTile(keepA)
	s.ActivateTile(keepB)
	s.Advance(cfg.RemovalDelay + cfg.MatchClearDelay)

	if s.State() != StateWin {
		t.Fatalf("State() = %v with an empty board, expected win", s.State())
	}

	// Two moves in under a second: both ratios are under target, so the
	// score is 1.0 and level 1 pays the top tier unscaled.
	merits, score := s.LastAward()
	if score != 1.0 {
		t.Errorf("completion score = %v, expected 1.0", score)
	}
	if merits != 10 {
		t.Errorf("merits = %d, expected 10", merits)
	}
	if s.TotalMerits() != 10 {
		t.Errorf("TotalMerits() = %d, expected 10", s.TotalMerits())
	}

	// Win is terminal until the next Start.
	s.Reshuffle()
	s.Undo()
	if s.State() != StateWin {
		t.Error("terminal win state was mutated")
	}
}

func TestTotalMeritsAccumulateAcrossStarts(t *testing.T) {
	s := startedSession(t, 1, 42)
	s.totalMerits = 7

	if err := s.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if s.TotalMerits() != 7 {
		t.Errorf("TotalMerits() = %d after restart, expected 7", s.TotalMerits())
	}
}

func TestStartCancelsPendingTimers(t *testing.T) {
	s := startedSession(t, 1, 42)
	free := freeTileIDs(s)
	forceSymbols(s, free[:1], []SymbolID{"alef"})
	s.ActivateTile(free[0]) // schedules a removal

	if err := s.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	s.Advance(5 * time.Second)

	if s.LiveCount() != 24 {
		t.Errorf("LiveCount() = %d, a superseded timer mutated the new board", s.LiveCount())
	}
	if s.Moves() != 0 || len(s.TrayEntries()) != 0 {
		t.Error("restart did not reset moves and tray")
	}
}

func TestSetLevelBounds(t *testing.T) {
	s := NewSession(DefaultSessionConfig(), 1)

	s.SetLevel(0)
	if s.Level() != 1 {
		t.Error("SetLevel(0) should be ignored")
	}
	s.SetLevel(MaxLevel + 1)
	if s.Level() != 1 {
		t.Error("SetLevel above MaxLevel should be ignored")
	}
	s.SetLevel(4)
	if s.Level() != 4 {
		t.Error("SetLevel(4) should apply")
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.LevelConfig().TileCount != 30 {
		t.Errorf("level 4 TileCount = %d, expected 30", s.LevelConfig().TileCount)
	}
}

func TestElapsedTracksVirtualClock(t *testing.T) {
	s := startedSession(t, 1, 42)
	s.Advance(1500 * time.Millisecond)
	s.Advance(500 * time.Millisecond)

	if s.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %v, expected 2s", s.Elapsed())
	}

	// Restart rewinds the clock.
	if err := s.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v after restart, expected 0", s.Elapsed())
	}
}

func TestDeterminismAcrossSessions(t *testing.T) {
	play := func(seed int64) Snapshot {
		s := startedSession(t, 2, seed)
		for i := 0; i < 6; i++ {
			free := freeTileIDs(s)
			if len(free) == 0 {
				break
			}
			s.ActivateTile(free[0])
			s.Advance(2 * time.Second)
		}
		return s.Snapshot()
	}

	s1, s2 := play(777), play(777)
	if s1 != s2 {
		t.Errorf("same-seed sessions diverged:\n%+v\nvs\n%+v", s1, s2)
	}

	s3 := play(778)
	if s1.Symbols == s3.Symbols {
		t.Error("different seeds produced identical deals (suspicious)")
	}
}

func TestQueriesBeforeStartAreSafe(t *testing.T) {
	s := NewSession(DefaultSessionConfig(), 1)

	if s.Started() {
		t.Error("Started() = true before Start")
	}
	if s.Tiles() != nil || s.TrayEntries() != nil {
		t.Error("queries before Start should return empty results")
	}
	if s.LiveCount() != 0 {
		t.Error("LiveCount() before Start should be 0")
	}

	// Commands before Start are absorbed.
	s.ActivateTile(0)
	s.Reshuffle()
	s.Undo()
	s.Advance(time.Second)
}
