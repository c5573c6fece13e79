package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A, Right/D   - Steer the ship (it keeps moving)
  Down/S            - Stop the ship
  Space/Up          - Fire (starts the game from a menu)
  Enter             - Start or restart
  Mouse click       - Steer toward the click and fire; release to stop
  ?                 - Toggle key help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, faster fire, win at 30 kills
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, slower fire, win at 80 kills
  fixed  - No progression, stays at config's initial level

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --seed 42 --log-file invaders.log
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame has a viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The alternate screen owns stdout; logs only go to a file.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "invaders",
	})

	return tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
		Logger: logger,
	})
}
