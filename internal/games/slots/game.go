// Package slots implements a three-reel slot machine.
package slots

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// Reel window geometry.
const (
	reelW   = 10
	reelH   = 3
	reelGap = 2
)

// flickerEvery is how many ticks pass between symbol changes while the
// reels spin.
const flickerEvery = 3

var symbolColors = map[string]core.Color{
	"CHERRY": core.ColorBrightRed,
	"LEMON":  core.ColorBrightYellow,
	"STAR":   core.ColorYellow,
	"MELON":  core.ColorBrightGreen,
	"BELL":   core.ColorOrange,
}

// Game implements the slot machine.
type Game struct {
	cfg     config.SlotsConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	reels     []int // symbol index shown on each reel
	spinLeft  int   // ticks until the reels stop; 0 when idle
	spinTicks int
	message   string

	spins    int
	jackpots int
	score    int
}

// New creates a slot machine.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "slots" }

// Title returns the tab label.
func (g *Game) Title() string { return "Slots" }

// Controls describes the keys.
func (g *Game) Controls() string {
	return "Space/Enter: spin  R: reset credits"
}

// Reset restores the machine to its idle state and zeroes the counters.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSlots()
	if err != nil {
		cfg = config.DefaultSlotsConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.reels = make([]int, cfg.Reels)
	for i := range g.reels {
		g.reels[i] = i % len(cfg.Symbols)
	}
	g.spinLeft = 0
	g.spinTicks = runtime.TicksFor(cfg.SpinMs)
	g.message = cfg.Messages.Idle
	g.spins, g.jackpots, g.score = 0, 0, 0
}

// Spinning reports whether the reels are moving.
func (g *Game) Spinning() bool { return g.spinLeft > 0 }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && !g.Spinning() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.Spinning() {
		g.spinLeft--
		switch {
		case g.spinLeft == 0:
			g.stop()
		case g.spinLeft%flickerEvery == 0:
			g.roll()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
		g.spinLeft = g.spinTicks
		g.message = "Spinning..."
		g.roll()
	}
	return core.StepResult{State: g.State()}
}

// roll sets every reel to a uniformly random symbol.
func (g *Game) roll() {
	for i := range g.reels {
		g.reels[i] = g.rng.Intn(len(g.cfg.Symbols))
	}
}

// stop draws the final symbols and scores the spin.
func (g *Game) stop() {
	g.roll()
	g.spins++
	if g.isJackpot() {
		g.jackpots++
		g.score += g.cfg.Jackpot
		g.message = g.cfg.Messages.Jackpot
		return
	}
	g.message = g.cfg.Messages.Miss
}

// isJackpot reports whether every reel shows the same symbol.
func (g *Game) isJackpot() bool {
	for _, r := range g.reels[1:] {
		if r != g.reels[0] {
			return false
		}
	}
	return true
}

// Symbols returns the names currently shown on the reels.
func (g *Game) Symbols() []string {
	out := make([]string, len(g.reels))
	for i, r := range g.reels {
		out[i] = g.cfg.Symbols[r]
	}
	return out
}

// Render draws the reels, the last result and the counters.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	n := len(g.reels)
	totalW := n*reelW + (n-1)*reelGap
	ox := (dst.Width() - totalW) / 2
	oy := max((dst.Height()-reelH)/2-2, 1)

	dst.DrawTextCentered(oy-1, "SLOTS", core.ColorBrightYellow)

	frame := core.ColorMagenta
	if g.Spinning() {
		frame = core.ColorCyan
	}
	for i, sym := range g.Symbols() {
		x := ox + i*(reelW+reelGap)
		dst.DrawBox(core.NewRect(x, oy, reelW, reelH), frame)
		label := sym
		if len(label) > reelW-2 {
			label = label[:reelW-2]
		}
		lx := x + (reelW-len(label))/2
		dst.DrawTextColor(lx, oy+reelH/2, label, symbolColors[sym])
	}

	msgColor := core.ColorWhite
	if !g.Spinning() && g.spins > 0 && g.isJackpot() {
		msgColor = core.ColorBrightYellow
	}
	dst.DrawTextCentered(oy+reelH+1, g.message, msgColor)

	stats := fmt.Sprintf("Spins: %d   Jackpots: %d   Credits: %d", g.spins, g.jackpots, g.score)
	dst.DrawTextCentered(oy+reelH+3, stats, core.ColorGray)
	dst.DrawTextCentered(oy+reelH+4, strings.Join(g.cfg.Symbols, " · "), core.ColorGray)
}

// State returns the current game state. Slots never end.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Status: g.message,
	}
}

func init() {
	registry.Register("slots", func() registry.Game {
		return New()
	})
}
