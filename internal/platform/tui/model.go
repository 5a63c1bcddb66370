package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carlosperez20/ALEFGAME/internal/core"
	"github.com/carlosperez20/ALEFGAME/internal/engine"
	"github.com/carlosperez20/ALEFGAME/internal/storage"
)

// PlayModel is the Bubble Tea model for running one puzzle session.
type PlayModel struct {
	sess        *engine.Session
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	cursor      engine.TileID
	paused      bool
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewPlayModel creates a play model for the given level.
func NewPlayModel(sessCfg engine.Config, store *storage.Store, cfg core.RuntimeConfig) PlayModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sess := engine.NewSession(sessCfg, cfg.Seed)
	sess.SetLevel(cfg.Level)

	return PlayModel{
		sess:       sess,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		cursor:     -1,
	}
}

// Init deals the board and starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	if err := m.sess.Start(); err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick consumes the buffered input, advances virtual time, and
// persists the result once when the session ends.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.sess.State() != engine.StatePlaying {
		//nolint:errcheck // Level was already validated by the first Start
		m.sess.Start()
		m.resultSaved = false
		m.cursor = -1
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionPause) && m.sess.State() == engine.StatePlaying {
		m.paused = !m.paused
	}
	if m.paused {
		// Virtual time stands still while paused.
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionLeft) {
		m.moveCursor(-1)
	}
	if m.inputFrame.Has(core.ActionRight) {
		m.moveCursor(1)
	}
	if m.inputFrame.Has(core.ActionActivate) && m.cursor >= 0 {
		m.sess.ActivateTile(m.cursor)
	}
	if m.inputFrame.Has(core.ActionUndo) {
		m.sess.Undo()
	}
	if m.inputFrame.Has(core.ActionReshuffle) {
		m.sess.Reshuffle()
	}

	m.sess.Advance(tickInterval(m.config.TickRate))
	m.normalizeCursor()

	if m.sess.State() != engine.StatePlaying && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// freeTileOrder returns the free tiles in screen reading order.
func (m PlayModel) freeTileOrder() []engine.TileID {
	var ids []engine.TileID
	type pos struct{ x, y int }
	positions := make(map[engine.TileID]pos)

	for _, tv := range m.sess.Tiles() {
		if !tv.Free {
			continue
		}
		x, y := projectTile(tv.Tile)
		ids = append(ids, tv.ID)
		positions[tv.ID] = pos{x, y}
	}

	sort.Slice(ids, func(i, j int) bool {
		a, b := positions[ids[i]], positions[ids[j]]
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
	return ids
}

// moveCursor cycles the selection through the free tiles.
func (m *PlayModel) moveCursor(delta int) {
	order := m.freeTileOrder()
	if len(order) == 0 {
		m.cursor = -1
		return
	}

	current := -1
	for i, id := range order {
		if id == m.cursor {
			current = i
			break
		}
	}
	if current == -1 {
		m.cursor = order[0]
		return
	}
	next := (current + delta + len(order)) % len(order)
	m.cursor = order[next]
}

// normalizeCursor keeps the cursor on a free tile as the board changes.
func (m *PlayModel) normalizeCursor() {
	if m.cursor >= 0 && m.sess.Free(m.cursor) {
		return
	}
	order := m.freeTileOrder()
	if len(order) == 0 {
		m.cursor = -1
		return
	}
	m.cursor = order[0]
}

// saveResult records the finished session. Best-effort: play continues
// regardless of storage errors.
func (m PlayModel) saveResult() {
	if m.store == nil {
		return
	}

	outcome := "lose"
	merits := 0
	if m.sess.State() == engine.StateWin {
		outcome = "win"
		merits, _ = m.sess.LastAward()
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveResult(storage.Result{
		Level:       m.sess.Level(),
		Outcome:     outcome,
		Merits:      merits,
		Moves:       m.sess.Moves(),
		ElapsedSecs: int(m.sess.Elapsed().Seconds()),
	})
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	RenderSession(m.screen, m.sess, m.cursor)
	if m.paused {
		m.screen.Text(2, m.screen.Height()-1, "PAUSED - p to resume", core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single play session.
func Run(sessCfg engine.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewPlayModel(sessCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
