package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carlosperez20/ALEFGAME/internal/platform/tui"
	"github.com/carlosperez20/ALEFGAME/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display recent game results and per-level statistics.

With --tui an interactive table opens instead; tab switches between
recent games and per-level statistics.

Examples:
  alefgame scores
  alefgame scores --limit 25
  alefgame scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent results to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	results, err := store.RecentResults(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'alefgame play' to record your first result!")
		return
	}

	fmt.Printf("  %-5s  %-7s  %-6s  %-5s  %-5s  %s\n", "Level", "Result", "Merits", "Moves", "Time", "Date")
	fmt.Printf("  %-5s  %-7s  %-6s  %-5s  %-5s  %s\n", "-----", "------", "------", "-----", "----", "----")

	for _, r := range results {
		fmt.Printf("  %-5d  %-7s  %-6d  %-5d  %d:%02d  %s\n",
			r.Level,
			r.Outcome,
			r.Merits,
			r.Moves,
			r.ElapsedSecs/60, r.ElapsedSecs%60,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	total, err := store.TotalMerits()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total merits: %d\n", total)
	}

	stats, err := store.StatsByLevel()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Per level")
	fmt.Printf("  %-5s  %-5s  %-4s  %-4s  %s\n", "Level", "Plays", "Wins", "Best", "Avg moves")
	for _, st := range stats {
		fmt.Printf("  %-5d  %-5d  %-4d  %-4d  %.1f\n",
			st.Level, st.Plays, st.Wins, st.BestMerits, st.AvgMoves)
	}
}
