// Package runner implements a Geometry Dash style runner: a square jumps
// over blocks scrolling in from the right. Touching a block ends the run.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// Visual characters for rendering.
const (
	PlayerChar = '█'
	BlockChar  = '▓'
	GroundChar = '═'
)

// pointsPerSecond is how fast the score grows while alive.
const pointsPerSecond = 10

// Game implements the runner.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	course     *Course

	lift     float64 // height of the player's feet above the ground
	velocity float64 // rows per tick; negative is upward
	grounded bool

	groundY   int
	tickCount int
	score     int
	gameOver  bool
	paused    bool
}

// New creates a runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "runner" }

// Title returns the tab label.
func (g *Game) Title() string { return "Geometry Dash" }

// Controls describes the keys.
func (g *Game) Controls() string {
	return "Space/Up: jump  P: pause  R: restart"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner()
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.course = NewCourse(rand.New(rand.NewSource(runtime.Seed)), &g.cfg, g.difficulty, runtime)

	g.groundY = runtime.ScreenH - cfg.Player.GroundOffset
	g.lift = 0
	g.velocity = 0
	g.grounded = true
	g.tickCount = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if (in.Has(core.ActionFire) || in.Has(core.ActionUp)) && (g.grounded || g.cfg.Physics.AirJump) {
		g.velocity = g.cfg.Physics.JumpImpulse
		g.grounded = false
	}
	g.applyPhysics()

	g.course.Update(g.score, g.tickCount)
	g.score = g.tickCount * pointsPerSecond / max(g.runtime.TickRate, 1)

	if g.course.Hits(g.playerRect(), g.groundY) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyPhysics() {
	if g.grounded {
		return
	}
	g.velocity += g.cfg.Physics.Gravity
	g.lift -= g.velocity

	// Air jumps must not carry the player off the top of the screen.
	ceiling := float64(g.groundY - g.cfg.Player.Height - 1)
	if g.lift > ceiling {
		g.lift = ceiling
		g.velocity = 0
	}

	if g.lift <= 0 {
		g.lift = 0
		g.velocity = 0
		g.grounded = true
	}
}

// playerRect returns the player's collision rectangle in screen
// coordinates.
func (g *Game) playerRect() core.FRect {
	p := g.cfg.Player
	return core.FRect{
		X: float64(p.X),
		Y: float64(g.groundY-p.Height) - g.lift,
		W: float64(p.Width),
		H: float64(p.Height),
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar, core.ColorIndigo)

	for _, b := range g.course.Blocks() {
		dst.DrawRect(b.Rect(g.groundY).Cells(), BlockChar, core.ColorBrightRed)
	}
	dst.DrawRect(g.playerRect().Cells(), PlayerChar, core.ColorBrightCyan)

	dst.DrawText(2, 0, fmt.Sprintf("Score: %d", g.score))
	if g.difficulty.IsEnabled() {
		speed := fmt.Sprintf("Spd: %.2f", g.course.Speed(g.score, g.tickCount))
		dst.DrawText(dst.Width()-len(speed)-2, 0, speed)
	}

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
