package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/platform/tui"
)

var hubCmd = &cobra.Command{
	Use:   "hub",
	Short: "Open the tabbed hub (default)",
	Long: `Open every game in its own tab. Each tab keeps its own game
state while you look at another tab.

Controls:
  Tab / Shift+Tab  - Next / previous tab
  1-9              - Jump to a tab
  Arrows, WASD     - Move
  Space            - Fire / jump / spin
  Enter            - Place a mark
  M                - Tic-tac-toe: vs CPU / two players
  P, R             - Pause, restart
  D, C             - Pro Projects: download, copy
  Q / Ctrl+C       - Quit

Tab order and the download directory come from hub.yaml.`,
	RunE: runHub,
}

func runHub(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("hub started", "fps", flagFPS, "seed", flagSeed)
	return tui.RunHub(tui.HubOptions{
		Runtime:   runtimeConfig(),
		Clipboard: os.Stdout,
		Term:      outputTerm(),
		Logger:    logger,
	})
}
