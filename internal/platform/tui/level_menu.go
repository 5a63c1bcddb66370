package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carlosperez20/ALEFGAME/internal/core"
	"github.com/carlosperez20/ALEFGAME/internal/engine"
	"github.com/carlosperez20/ALEFGAME/internal/storage"
)

// levelItem is one selectable level with its stored best result.
type levelItem struct {
	level      int
	tileCount  int
	bestMerits int
}

// LevelMenuModel is the Bubble Tea model for the level picker.
type LevelMenuModel struct {
	items      []levelItem
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	quitting   bool
	selected   int  // 0 until the user picks a level
	openScores bool // True if the user pressed tab for the scoreboard
}

// NewLevelMenuModel creates a level picker. Best merits per level are read
// from storage when available.
func NewLevelMenuModel(store *storage.Store, cfg core.RuntimeConfig) LevelMenuModel {
	items := make([]levelItem, 0, engine.MaxLevel)
	for lvl := 1; lvl <= engine.MaxLevel; lvl++ {
		item := levelItem{
			level:     lvl,
			tileCount: engine.ConfigForLevel(lvl).TileCount,
		}
		if store != nil {
			if best, err := store.BestMerits(lvl); err == nil {
				item.bestMerits = best
			}
		}
		items = append(items, item)
	}

	return LevelMenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level picker.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor].level
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScores = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level picker.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selected > 0 || m.openScores {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ALEF - SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		line := fmt.Sprintf("%sLevel %-2d  %2d tiles", cursor, item.level, item.tileCount)
		if item.bestMerits > 0 {
			line += fmt.Sprintf("  best %d merits", item.bestMerits)
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render("up/down select - enter play - tab scores - q quit"), m.width))

	return b.String()
}

// Selected returns the picked level, 0 if the user backed out.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// WantsScoreboard returns true if the user asked for the results screen.
func (m LevelMenuModel) WantsScoreboard() bool {
	return m.openScores
}

// IsQuitting returns true if the user wants to leave the menu.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelSelector shows the level menu and returns the chosen level.
// Level 0 with showScores set means the user asked for the scoreboard;
// level 0 without it means they quit or went back.
func RunLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (level int, showScores bool, err error) {
	model := NewLevelMenuModel(store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return 0, false, nil
	}
	return m.Selected(), m.WantsScoreboard(), nil
}
