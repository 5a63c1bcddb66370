// alefgame is a layered tile-matching puzzle played in the terminal.
//
// Usage:
//
//	alefgame play            - Pick a level and play
//	alefgame play --level 3  - Jump straight into a level
//	alefgame levels          - List the level table
//	alefgame scores          - Show recorded results
//	alefgame serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.alefgame/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alefgame",
	Short: "Alef - a layered tile-matching puzzle for your terminal",
	Long: `Alef is a terminal puzzle: clear a layered board of lettered tiles
by collecting matching pairs into a small tray before it overflows.

Available commands:
  play     - Pick a level and play
  levels   - Show the level table
  scores   - View recorded results
  serve    - Start SSH server for remote play

Examples:
  alefgame play
  alefgame play --level 5
  alefgame scores
  alefgame serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.alefgame/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
