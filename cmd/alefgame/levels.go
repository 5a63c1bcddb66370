package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carlosperez20/ALEFGAME/internal/engine"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Display every level with its board size, covered-tile rate, and
the time and move targets used for scoring.

Examples:
  alefgame levels`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-5s  %-5s  %-7s  %-11s  %s\n", "Level", "Tiles", "Covered", "Time target", "Move target")
	fmt.Printf("  %-5s  %-5s  %-7s  %-11s  %s\n", "-----", "-----", "-------", "-----------", "-----------")

	for lvl := 1; lvl <= engine.MaxLevel; lvl++ {
		cfg := engine.ConfigForLevel(lvl)
		fmt.Printf("  %-5d  %-5d  %6.0f%%  %-11s  %d moves\n",
			cfg.Level,
			cfg.TileCount,
			cfg.CoverRate*100,
			cfg.TimeTarget(),
			cfg.MoveTarget(),
		)
	}

	fmt.Println()
	fmt.Println("Play a level with 'alefgame play --level <n>'.")
}
