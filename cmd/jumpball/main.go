// jumpball is a terminal side-scrolling platformer: keep a ball alive
// across an auto-scrolling field of procedurally generated platforms.
//
// Usage:
//
//	jumpball                  - Play the game
//	jumpball scores           - Show high scores
//	jumpball config           - Print the default gameplay config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.jumpball/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpenko/tui-jumpball/internal/config"
	"github.com/mkarpenko/tui-jumpball/internal/core"
	"github.com/mkarpenko/tui-jumpball/internal/games/jumpball"
	"github.com/mkarpenko/tui-jumpball/internal/platform/tui"
	"github.com/mkarpenko/tui-jumpball/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Play flags
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumpball",
	Short: "Jumping Ball - a terminal platformer",
	Long: `Jumping Ball is a side-scrolling terminal platformer. The field scrolls
on its own; jump (and double-jump) from platform to platform without
touching the ground. Clear every platform to win.

Controls:
  Space/Up/W - Jump (press again mid-air for double jump, hold to rise higher)
  P/Esc      - Pause
  Space/R    - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  jumpball
  jumpball --difficulty hard
  jumpball --config ./my-config.yaml --seed 42
  jumpball scores`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumpball/scores.db", "Path to scores database")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", flagDifficulty)
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults when not attached to a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	jumpball.SetConfigPath(flagConfig)
	jumpball.SetDifficultyPreset(flagDifficulty)

	game := jumpball.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
