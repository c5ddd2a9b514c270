// gamehub is a tabbed collection of small terminal games: a shooter,
// snake, slots, tic-tac-toe against a minimax opponent and a Geometry
// Dash style runner.
//
// Usage:
//
//	gamehub                  - Open the tabbed hub (same as "gamehub hub")
//	gamehub list             - List available games
//	gamehub play <game>      - Play one game full screen
//	gamehub serve            - Serve the hub over SSH
//	gamehub snippet [name]   - List, print, save or copy the Pro Projects snippets
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config-dir <dir>    - Read <game>.yaml configs from dir first
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/gamehub/internal/games/runner"
	_ "github.com/vovakirdan/gamehub/internal/games/shooter"
	_ "github.com/vovakirdan/gamehub/internal/games/slots"
	_ "github.com/vovakirdan/gamehub/internal/games/snake"
	_ "github.com/vovakirdan/gamehub/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigDir  string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamehub",
	Short: "GameHub - a tabbed arcade in your terminal",
	Long: `GameHub bundles five small games behind one tabbed shell:
Shooter, Snake, Slots, Tic-tac-toe (against an unbeatable CPU) and
Geometry Dash, plus a Pro Projects tab with code snippets to download.

Examples:
  gamehub
  gamehub play tictactoe
  gamehub play runner --difficulty hard
  gamehub serve --ssh :2222
  gamehub snippet java --out ./downloads`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runHub,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfigDir, "config-dir", "", "Directory searched first for <game>.yaml configs")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file (interactive modes log nowhere otherwise)")

	rootCmd.AddCommand(hubCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snippetCmd)
}

// applyGlobalFlags validates shared flags and publishes the config
// options before any game is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.SetOptions(config.Options{Dir: flagConfigDir, Preset: preset})
	return nil
}
