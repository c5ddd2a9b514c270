// Package shooter implements a vertical arcade shooter: the ship moves
// along the bottom row and shoots enemies falling from the top.
package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// Visual characters for rendering.
const (
	ShipChar  = '▲'
	HullChar  = '█'
	ShotChar  = '│'
	EnemyChar = '▼'
)

// hudRows is the number of rows reserved for the score line.
const hudRows = 1

// Shot is a player bullet moving upward.
type Shot struct {
	X, Y float64
	Dead bool
}

// Game implements the shooter.
type Game struct {
	cfg        config.ShooterConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	shipX     int // left column of the ship
	shots     []Shot
	enemies   *EnemyWave
	cooldown  int // ticks until the next shot is allowed
	score     int
	lives     int
	tickCount int
	gameOver  bool
	paused    bool
}

// New creates a shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "shooter" }

// Title returns the tab label.
func (g *Game) Title() string { return "Shooter" }

// Controls describes the keys.
func (g *Game) Controls() string {
	return "Left/Right: move  Space: fire  P: pause  R: restart"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter()
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.shipX = (runtime.ScreenW - cfg.Player.Width) / 2
	g.shots = g.shots[:0]
	g.enemies = NewEnemyWave(g.rng, &g.cfg, g.difficulty, runtime)
	g.cooldown = 0
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
}

// shipRow is the row the ship occupies.
func (g *Game) shipRow() int {
	return g.runtime.ScreenH - 2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.handleInput(in)
	g.moveShots()
	escaped := g.enemies.Update(g.score, g.tickCount)
	g.resolveHits()

	g.lives -= escaped
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	maxX := g.runtime.ScreenW - g.cfg.Player.Width
	if in.Has(core.ActionLeft) {
		g.shipX = core.Clamp(g.shipX-g.cfg.Player.Step, 0, maxX)
	}
	if in.Has(core.ActionRight) {
		g.shipX = core.Clamp(g.shipX+g.cfg.Player.Step, 0, maxX)
	}

	if g.cooldown > 0 {
		g.cooldown--
	}
	if in.Has(core.ActionFire) && g.cooldown == 0 {
		g.shots = append(g.shots, Shot{
			X: float64(g.shipX + g.cfg.Player.Width/2),
			Y: float64(g.shipRow() - 1),
		})
		g.cooldown = g.runtime.TicksFor(g.cfg.Shots.CooldownMs)
	}
}

func (g *Game) moveShots() {
	live := g.shots[:0]
	for _, s := range g.shots {
		s.Y -= g.cfg.Shots.Speed
		if s.Y >= hudRows {
			live = append(live, s)
		}
	}
	g.shots = live
}

// resolveHits removes every shot/enemy pair within the hit box and
// awards points per enemy destroyed.
func (g *Game) resolveHits() {
	enemies := g.enemies.Enemies()
	for i := range enemies {
		e := &enemies[i]
		for j := range g.shots {
			s := &g.shots[j]
			if s.Dead || e.Dead {
				continue
			}
			dx, dy := s.X-e.CenterX(), s.Y-e.Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx < g.cfg.Gameplay.HitDX && dy < g.cfg.Gameplay.HitDY {
				s.Dead = true
				e.Dead = true
				g.score += g.cfg.Gameplay.Points
			}
		}
	}

	live := g.shots[:0]
	for _, s := range g.shots {
		if !s.Dead {
			live = append(live, s)
		}
	}
	g.shots = live
	g.enemies.Sweep()
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, e := range g.enemies.Enemies() {
		dst.DrawHLine(int(e.X), int(e.Y), g.cfg.Enemies.Width, EnemyChar, core.ColorRed)
	}
	for _, s := range g.shots {
		dst.SetColor(int(s.X), int(s.Y), ShotChar, core.ColorYellow)
	}

	row := g.shipRow()
	dst.SetColor(g.shipX+g.cfg.Player.Width/2, row, ShipChar, core.ColorCyan)
	dst.DrawHLine(g.shipX, row+1, g.cfg.Player.Width, HullChar, core.ColorCyan)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)

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
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
