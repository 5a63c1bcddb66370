package tui

import (
	"fmt"
	"math"
	"sort"

	"github.com/carlosperez20/ALEFGAME/internal/core"
	"github.com/carlosperez20/ALEFGAME/internal/engine"
)

// Character footprint of one tile on screen.
const (
	tileCharW = 6
	tileCharH = 3
)

// Board area placement within the screen buffer.
const (
	boardLeft = 2
	boardTop  = 4
)

// projectTile maps board coordinates to the top-left screen cell of a tile.
// Higher layers get a one-cell diagonal offset so stacking stays visible at
// terminal resolution.
func projectTile(t engine.Tile) (x, y int) {
	scaleX := engine.TileWidth / float64(tileCharW)
	scaleY := engine.TileHeight / float64(tileCharH)
	x = boardLeft + int(math.Round(t.X/scaleX)) + t.Z
	y = boardTop + int(math.Round(t.Y/scaleY)) - t.Z
	return x, y
}

// RenderSession draws the whole play view: HUD, board, and tray.
func RenderSession(s *core.Screen, sess *engine.Session, cursor engine.TileID) {
	s.Clear()
	drawHUD(s, sess)
	drawBoard(s, sess, cursor)
	drawTray(s, sess)
	drawStatus(s, sess)
}

func drawHUD(s *core.Screen, sess *engine.Session) {
	elapsed := sess.Elapsed()
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60

	s.Text(2, 0, fmt.Sprintf("Level %d", sess.Level()), core.ColorBrightWhite)
	s.Text(12, 0, fmt.Sprintf("Tiles %d", sess.LiveCount()), core.ColorWhite)
	s.Text(24, 0, fmt.Sprintf("Moves %d", sess.Moves()), core.ColorWhite)
	s.Text(36, 0, fmt.Sprintf("Time %d:%02d", mins, secs), core.ColorWhite)
	s.Text(48, 0, fmt.Sprintf("Merits %d", sess.TotalMerits()), core.ColorBrightYellow)

	s.Text(2, 1, "a/d move  space pick  u undo  x shuffle  q quit", core.ColorGray)
}

func drawBoard(s *core.Screen, sess *engine.Session, cursor engine.TileID) {
	tiles := sess.Tiles()

	// Lower layers first so higher tiles overdraw them.
	sort.SliceStable(tiles, func(i, j int) bool {
		if tiles[i].Z != tiles[j].Z {
			return tiles[i].Z < tiles[j].Z
		}
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})

	for _, tv := range tiles {
		drawTile(s, tv, tv.ID == cursor)
	}
}

func drawTile(s *core.Screen, tv engine.TileView, selected bool) {
	x, y := projectTile(tv.Tile)

	color := core.ColorGray
	switch {
	case selected:
		color = core.ColorBrightYellow
	case tv.AnimatingOut:
		color = core.ColorCyan
	case tv.Free:
		color = core.ColorBrightWhite
	}

	s.FillRect(x, y, tileCharW, tileCharH, ' ', color)
	s.Box(x, y, tileCharW, tileCharH, color)

	glyph := engine.Glyph(tv.Symbol)
	if tv.Covered {
		glyph = '?'
	}
	s.Set(x+tileCharW/2, y+tileCharH/2, glyph, color)
}

func drawTray(s *core.Screen, sess *engine.Session) {
	y := s.Height() - 3
	s.Text(2, y-1, "Tray", core.ColorWhite)

	entries := sess.TrayEntries()
	limit := sess.TrayLimit()

	for i := 0; i < limit; i++ {
		x := 2 + i*5
		color := core.ColorGray
		glyph := ' '
		if i < len(entries) {
			glyph = engine.Glyph(entries[i].Symbol)
			if entries[i].MatchedOut {
				color = core.ColorGreen
			} else {
				color = core.ColorBrightWhite
			}
		}
		s.Set(x, y, '[', color)
		s.Set(x+1, y, glyph, color)
		s.Set(x+2, y, ']', color)
	}
}

func drawStatus(s *core.Screen, sess *engine.Session) {
	y := s.Height() - 1

	switch sess.State() {
	case engine.StateWin:
		merits, score := sess.LastAward()
		msg := fmt.Sprintf("CLEARED!  +%d merits (score %.2f)  r restart  b menu", merits, score)
		s.Text(2, y, msg, core.ColorBrightYellow)
	case engine.StateLose:
		s.Text(2, y, "TRAY FULL - game over.  r retry  b menu", core.ColorRed)
	default:
		if sess.CanUndo() {
			s.Text(2, y, "undo available", core.ColorGray)
		}
	}
}
