package tui

import (
	"strings"
	"testing"

	"github.com/carlosperez20/ALEFGAME/internal/core"
	"github.com/carlosperez20/ALEFGAME/internal/engine"
)

func TestProjectTileLayerOffset(t *testing.T) {
	base := engine.Tile{X: engine.TileWidth, Y: engine.TileHeight}
	raised := base
	raised.Z = 2

	bx, by := projectTile(base)
	rx, ry := projectTile(raised)

	if rx != bx+2 {
		t.Errorf("expected layer 2 shifted 2 cells right, got %d vs %d", rx, bx)
	}
	if ry != by-2 {
		t.Errorf("expected layer 2 shifted 2 cells up, got %d vs %d", ry, by)
	}
}

func TestProjectTileNeighborsDoNotCollide(t *testing.T) {
	a := engine.Tile{X: 0, Y: 0}
	b := engine.Tile{X: engine.TileWidth, Y: 0}

	ax, _ := projectTile(a)
	bx, _ := projectTile(b)

	if bx-ax != tileCharW {
		t.Errorf("expected adjacent tiles %d cells apart, got %d", tileCharW, bx-ax)
	}
}

func TestRenderSessionShowsHUDAndTray(t *testing.T) {
	sess := engine.NewSession(engine.DefaultSessionConfig(), 7)
	if err := sess.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	screen := core.NewScreen(80, 24)
	RenderSession(screen, sess, -1)

	out := screenText(screen)
	if !strings.Contains(out, "Level 1") {
		t.Error("expected HUD to show the level")
	}
	if !strings.Contains(out, "Tiles 24") {
		t.Error("expected HUD to show the live tile count")
	}
	if !strings.Contains(out, "Tray") {
		t.Error("expected the tray label")
	}
}

func TestRenderScreenPreservesRunes(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.Text(0, 0, "hello", core.ColorDefault)

	out := RenderScreen(screen)
	if !strings.Contains(out, "hello") {
		t.Errorf("expected rendered output to contain text, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one newline for two rows, got %d", strings.Count(out, "\n"))
	}
}

// screenText flattens a screen buffer to plain text, ignoring colors.
func screenText(s *core.Screen) string {
	var sb strings.Builder
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			sb.WriteRune(s.Cell(x, y).Rune)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
