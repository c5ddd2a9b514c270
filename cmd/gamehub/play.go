package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/platform/tui"
	"github.com/vovakirdan/gamehub/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a single game full screen",
	Long: `Start playing the specified game without the hub tabs.

Controls:
  Arrows/WASD - Move
  Space       - Fire / jump / spin
  Enter       - Place a mark (tic-tac-toe)
  M           - Toggle vs CPU / two players (tic-tac-toe)
  P/Esc       - Pause
  R           - Restart
  Ctrl+S      - Save a text screenshot to ~/.gamehub/screenshots
  Q/Ctrl+C    - Quit

Difficulty options (shooter, runner):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  gamehub play tictactoe
  gamehub play runner --difficulty easy
  gamehub play shooter --config-dir ./configs`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'gamehub list' to see available games)", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("playing", "game", game.ID(), "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", game.ID(), err)
	}
	return nil
}
