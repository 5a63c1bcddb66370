package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carlosperez20/ALEFGAME/internal/config"
	"github.com/carlosperez20/ALEFGAME/internal/core"
	"github.com/carlosperez20/ALEFGAME/internal/engine"
	"github.com/carlosperez20/ALEFGAME/internal/platform/tui"
	"github.com/carlosperez20/ALEFGAME/internal/storage"
)

var (
	flagLevel  int
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start a play session. Without --level a level picker is shown first.

Controls:
  A/D, arrows  - Move selection between free tiles
  Space/Enter  - Pick up the selected tile
  U            - Undo the last move
  X            - Reshuffle the remaining tiles
  R            - Restart (after win/lose)
  Q/Ctrl+C     - Quit

Preset options:
  classic - 4 tray slots, slow pair clear
  swift   - Matched pairs clear quickly
  roomy   - 6 tray slots

Examples:
  alefgame play
  alefgame play --level 5
  alefgame play --preset swift
  alefgame play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to play (0 = show level picker)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset: classic, swift, roomy")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagLevel < 0 || flagLevel > engine.MaxLevel {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", engine.MaxLevel)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		config.ApplyPreset(&gameCfg, config.Preset(flagPreset))
	}

	// Get terminal size early for the level picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    flagLevel,
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	for cfg.Level == 0 {
		level, showScores, selErr := tui.RunLevelSelector(store, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if showScores {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				os.Exit(1)
			}
			if !goBack {
				if store != nil {
					store.Close()
				}
				return
			}
			continue
		}
		if level == 0 {
			// User backed out of the picker
			if store != nil {
				store.Close()
			}
			return
		}
		cfg.Level = level
	}

	runErr := tui.Run(gameCfg.SessionConfig(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
