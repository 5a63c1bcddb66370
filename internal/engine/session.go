package engine

import (
	"math/rand"
	"time"
)

// State is the session phase. Win and lose are terminal; only Start leaves
// them.
type State int

const (
	StatePlaying State = iota
	StateWin
	StateLose
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Config holds the tunable session constants. The tray limit and the two
// delays vary between game variants, so they are configuration rather than
// hard-coded values.
type Config struct {
	TrayLimit       int
	RemovalDelay    time.Duration // animating-out to removed
	MatchClearDelay time.Duration // matched pair to freed tray slots
}

// DefaultSessionConfig returns the classic variant: a four-slot tray,
// a short removal cue, and a slow, readable pair clear.
func DefaultSessionConfig() Config {
	return Config{
		TrayLimit:       4,
		RemovalDelay:    240 * time.Millisecond,
		MatchClearDelay: 1450 * time.Millisecond,
	}
}

// TileView is a tile as the presentation layer sees it: the tile itself
// plus its computed selectability.
type TileView struct {
	Tile
	Free   bool
	Reason BlockReason
}

// memento is one undo step: a structural deep copy of everything a
// consequential move can change.
type memento struct {
	board *Board
	tray  *Tray
	state State
	moves int
}

// Session drives one play-through of a level. All mutation goes through
// discrete events (ActivateTile, Reshuffle, Undo, scheduler callbacks);
// after each one the free set is recomputed synchronously, so no action
// ever races a stale selectability decision.
type Session struct {
	cfg      Config
	metrics  Metrics
	rng      *rand.Rand
	sched    *Scheduler
	level    int
	levelCfg LevelConfig

	board   *Board
	tray    *Tray
	state   State
	moves   int
	started bool

	totalMerits int
	lastAward   int
	lastScore   float64

	history []memento
	free    map[TileID]bool
	reasons map[TileID]BlockReason
}

// NewSession creates an unstarted session. The seed fixes the deal, cover
// placement, and reshuffles for deterministic play.
func NewSession(cfg Config, seed int64) *Session {
	return &Session{
		cfg:     cfg,
		metrics: DefaultMetrics(),
		rng:     rand.New(rand.NewSource(seed)),
		sched:   NewScheduler(),
		level:   1,
		free:    make(map[TileID]bool),
		reasons: make(map[TileID]BlockReason),
	}
}

// SetLevel selects the level for the next Start. Out-of-range values are
// ignored.
func (s *Session) SetLevel(n int) {
	if n < 1 || n > MaxLevel {
		return
	}
	s.level = n
}

// Start deals a fresh board for the current level. Any previous
// play-through is discarded and its pending timers cancelled, so they can
// never mutate the superseded state. Cumulative merits survive restarts.
func (s *Session) Start() error {
	levelCfg := ConfigForLevel(s.level)
	slots, err := Slots(levelCfg.TileCount)
	if err != nil {
		return err
	}

	subset := SymbolSubset(levelCfg.TileCount / 2)
	board, err := NewBoard(slots, levelCfg, subset, s.rng)
	if err != nil {
		return err
	}

	s.sched.Reset()
	s.levelCfg = levelCfg
	s.board = board
	s.tray = NewTray(s.cfg.TrayLimit)
	s.state = StatePlaying
	s.moves = 0
	s.lastAward = 0
	s.lastScore = 0
	s.history = nil
	s.started = true
	s.recompute()
	return nil
}

// Advance moves virtual time forward, firing any due delayed effects.
// The platform calls this once per tick; tests call it directly.
func (s *Session) Advance(dt time.Duration) {
	if !s.started {
		return
	}
	s.sched.Advance(dt)
}

// ActivateTile is the sole mutating entry point for tile input. Stale or
// invalid activations are absorbed silently: only a free tile of a playing
// session reacts. A covered tile is merely uncovered; an uncovered one
// goes to the tray, where overflow means defeat.
func (s *Session) ActivateTile(id TileID) {
	if !s.started || s.state != StatePlaying {
		return
	}
	t, ok := s.board.ByID(id)
	if !ok || !t.Selectable() || !s.free[id] {
		return
	}

	if t.Covered {
		s.board.Reveal(id)
		s.recompute()
		return
	}

	if s.tray.Full() {
		// The tile that would not fit ends the game; it is never added.
		s.state = StateLose
		return
	}

	s.pushHistory()

	s.tray.Insert(id, t.Symbol, s.sched.Now())
	s.moves++
	s.board.BeginRemoval(id)
	s.scheduleRemoval(id)
	s.recompute()
	s.resolvePairs()
}

// Reshuffle permutes the symbols of all live tiles. No-op unless playing.
func (s *Session) Reshuffle() {
	if !s.started || s.state != StatePlaying {
		return
	}
	s.pushHistory()
	s.board.ReshuffleSymbols(s.rng)
	s.recompute()
}

// Undo restores the most recent pre-move snapshot. It only applies while
// playing: win and lose are terminal, and reveals never push history, so
// undo always steps back over a consequential move. Pending timers are
// cancelled and re-derived from the restored state.
func (s *Session) Undo() {
	if !s.started || s.state != StatePlaying || len(s.history) == 0 {
		return
	}
	m := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.sched.CancelAll()
	s.board = m.board
	s.tray = m.tray
	s.state = m.state
	s.moves = m.moves
	s.recompute()
	s.rescheduleTransients()
}

// pushHistory records the current state before a consequential mutation.
func (s *Session) pushHistory() {
	s.history = append(s.history, memento{
		board: s.board.clone(),
		tray:  s.tray.clone(),
		state: s.state,
		moves: s.moves,
	})
}

// scheduleRemoval arranges the animating-out to removed transition.
func (s *Session) scheduleRemoval(id TileID) {
	s.sched.Schedule(s.cfg.RemovalDelay, func() {
		s.finishRemoval(id)
	})
}

func (s *Session) finishRemoval(id TileID) {
	if !s.board.FinishRemoval(id) {
		return
	}
	s.recompute()
	if s.state == StatePlaying && s.board.LiveCount() == 0 {
		s.win()
	}
}

// resolvePairs runs once after every insertion: at most one pair per call.
func (s *Session) resolvePairs() {
	pair, ok := s.tray.ResolvePair()
	if !ok {
		return
	}
	s.sched.Schedule(s.cfg.MatchClearDelay, func() {
		s.tray.Drop(pair)
	})
}

// rescheduleTransients re-arms timers for transient states restored by an
// undo: tiles still animating out and pairs still waiting to clear. The
// full delay is granted again; undo is not timing-precise, just correct.
func (s *Session) rescheduleTransients() {
	for _, t := range s.board.Tiles() {
		if t.AnimatingOut {
			s.scheduleRemoval(t.ID)
		}
	}
	var pending []TrayEntry
	for _, e := range s.tray.Entries() {
		if e.MatchedOut {
			pending = append(pending, e)
		}
	}
	for i := 0; i+1 < len(pending); i += 2 {
		pair := [2]int{pending[i].TrayID, pending[i+1].TrayID}
		s.sched.Schedule(s.cfg.MatchClearDelay, func() {
			s.tray.Drop(pair)
		})
	}
}

// win finalizes a cleared board: score the run, award merits, stop play.
func (s *Session) win() {
	s.state = StateWin
	s.lastScore = CompletionScore(s.Elapsed(), s.moves, s.level)
	s.lastAward = MeritsFor(s.lastScore, s.level)
	s.totalMerits += s.lastAward
}

// recompute re-derives the free set from the selectable tiles. Called
// synchronously after every mutation; never maintained incrementally.
func (s *Session) recompute() {
	m := s.metrics
	m.SideGap = s.levelCfg.SideGapFactor
	s.free, s.reasons = ComputeFree(s.board.Selectable(), m)
}

// --- read-only query surface for the presentation layer ---

// Started reports whether a board has been dealt.
func (s *Session) Started() bool {
	return s.started
}

// State returns the current session phase.
func (s *Session) State() State {
	return s.state
}

// Level returns the selected level.
func (s *Session) Level() int {
	return s.level
}

// LevelConfig returns the configuration of the running level.
func (s *Session) LevelConfig() LevelConfig {
	return s.levelCfg
}

// Moves returns the number of successful tray insertions.
func (s *Session) Moves() int {
	return s.moves
}

// Elapsed returns virtual play time since Start.
func (s *Session) Elapsed() time.Duration {
	return s.sched.Now()
}

// TotalMerits returns merits accumulated across wins this session.
func (s *Session) TotalMerits() int {
	return s.totalMerits
}

// LastAward returns the merits earned by the most recent win, with its
// completion score.
func (s *Session) LastAward() (merits int, score float64) {
	return s.lastAward, s.lastScore
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	return s.state == StatePlaying && len(s.history) > 0
}

// LiveCount returns the number of tiles not yet removed.
func (s *Session) LiveCount() int {
	if s.board == nil {
		return 0
	}
	return s.board.LiveCount()
}

// Free reports whether the tile is currently selectable.
func (s *Session) Free(id TileID) bool {
	return s.free[id]
}

// BlockReasonFor returns why a tile is blocked, BlockNone if it is free.
func (s *Session) BlockReasonFor(id TileID) BlockReason {
	return s.reasons[id]
}

// Tiles returns the live tiles with their computed selectability, in deal
// order (bottom layers first, which is also draw order).
func (s *Session) Tiles() []TileView {
	if s.board == nil {
		return nil
	}
	var out []TileView
	for _, t := range s.board.Tiles() {
		if !t.Live() {
			continue
		}
		out = append(out, TileView{
			Tile:   t,
			Free:   s.free[t.ID],
			Reason: s.reasons[t.ID],
		})
	}
	return out
}

// TrayEntries returns the tray contents in insertion order.
func (s *Session) TrayEntries() []TrayEntry {
	if s.tray == nil {
		return nil
	}
	return s.tray.Entries()
}

// TrayLimit returns the configured tray capacity.
func (s *Session) TrayLimit() int {
	return s.cfg.TrayLimit
}
