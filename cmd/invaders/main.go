// invaders is a terminal space invaders game.
//
// Usage:
//
//	invaders play            - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders config          - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>            - Set redraw rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible spawns
//	--config <path>         - Load game config from a YAML file
//	--difficulty <preset>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
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
	Use:   "invaders",
	Short: "Invaders - shoot down the alien ships in your terminal",
	Long: `Invaders is a terminal remake of the classic shooter: steer your ship
along the bottom row, shoot the ships drifting down and do not let any of
them land or ram you. Score more than the win threshold to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders config --difficulty easy > invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from --config and applies the
// --difficulty preset.
func loadGameConfig() (config.InvadersConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvadersConfig{}, err
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return config.InvadersConfig{}, err
	}

	config.ApplyInvadersPreset(&cfg, preset)
	return cfg, nil
}
