// Package snake implements a classic snake on a wrap-around grid. The
// tail is 5 segments plus one per food eaten.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid coordinate.
type Point struct {
	X, Y int
}

// hudHeight is the number of rows above the grid.
const hudHeight = 2

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64
	score   int

	moveEvery  int // ticks per grid step
	moveTicker int

	snake     []Point // head at index 0
	direction Direction
	nextDir   Direction
	food      Point

	gridW, gridH int

	gameOver bool
	paused   bool
}

// New creates a snake game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the tab label.
func (g *Game) Title() string { return "Snake" }

// Controls describes the keys.
func (g *Game) Controls() string {
	return "Arrows: steer  P: pause  R: restart"
}

// Reset initializes or restarts the game. The snake starts as a single
// cell in the middle of the grid and stays still until a direction key.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSnake()
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	cfg.CellWidth = max(cfg.CellWidth, 1)
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.moveEvery = runtime.TicksFor(cfg.MoveMs)
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false

	g.gridW = max(runtime.ScreenW/cfg.CellWidth, 1)
	g.gridH = max(runtime.ScreenH-hudHeight, 1)

	g.snake = []Point{{X: g.gridW / 2, Y: g.gridH / 2}}
	g.direction = DirNone
	g.nextDir = DirNone
	g.spawnFood()
}

// maxLength is the tail cap for the current score.
func (g *Game) maxLength() int {
	return g.cfg.InitialLength + g.score
}

// spawnFood places food at a random cell not covered by the snake.
func (g *Game) spawnFood() {
	free := g.gridW*g.gridH - len(g.snake)
	if free <= 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}
	for {
		p := Point{X: g.rng.Intn(g.gridW), Y: g.rng.Intn(g.gridH)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// A one-cell snake may turn around; a longer one would bite itself.
	if len(g.snake) > 1 && isOpposite(newDir, g.direction) {
		return
	}
	g.nextDir = newDir
}

func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake advances the head one cell, wrapping at the edges, trims the
// tail to its cap, eats food and checks for self collision.
func (g *Game) moveSnake() {
	g.direction = g.nextDir
	if g.direction == DirNone {
		return
	}

	head := g.snake[0]
	switch g.direction {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}
	head.X = core.Wrap(head.X, g.gridW)
	head.Y = core.Wrap(head.Y, g.gridH)

	g.snake = append([]Point{head}, g.snake...)
	if len(g.snake) > g.maxLength() {
		g.snake = g.snake[:g.maxLength()]
	}

	if head == g.food {
		g.score++
		g.spawnFood()
	}

	for _, seg := range g.snake[1:] {
		if seg == head {
			g.gameOver = true
			return
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	if g.food.X >= 0 {
		g.drawCell(dst, g.food, '●', core.ColorRed)
	}
	for i, seg := range g.snake {
		if i == 0 {
			g.drawCell(dst, seg, '█', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, seg, '▓', core.ColorGreen)
		}
	}

	switch {
	case g.gameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to continue")
	case g.direction == DirNone:
		dst.DrawTextCentered(dst.Height()-1, "Press an arrow key to start", core.ColorGray)
	}
}

// drawCell fills one grid cell, which spans CellWidth columns.
func (g *Game) drawCell(dst *core.Screen, p Point, r rune, c core.Color) {
	dst.DrawHLine(p.X*g.cfg.CellWidth, hudHeight+p.Y, g.cfg.CellWidth, r, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Snapshot is a comparable summary of the game, used to check that equal
// seeds and inputs give equal games.
type Snapshot struct {
	Tick   uint64
	Score  int
	Head   Point
	Length int
	Dir    Direction
	Food   Point
}

// Snapshot returns the current summary.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Head:   g.snake[0],
		Length: len(g.snake),
		Dir:    g.direction,
		Food:   g.food,
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}
