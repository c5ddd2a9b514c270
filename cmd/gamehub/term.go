package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/gamehub/internal/core"
)

// runtimeConfig sizes the playfield from the terminal, falling back to
// 80x24 when stdout is not a terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// outputTerm is the TERM used to wrap clipboard sequences.
func outputTerm() string {
	if os.Getenv("TMUX") != "" {
		return "tmux"
	}
	return os.Getenv("TERM")
}
