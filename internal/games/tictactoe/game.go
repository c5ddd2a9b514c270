// Package tictactoe wraps the tic-tac-toe engine as a hub game: a cursor
// over the 3x3 grid, vs CPU or two-player mode, and a short delay before
// the computer answers so its move is visible.
package tictactoe

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/games/tictactoe/engine"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// Cell geometry on screen.
const (
	cellW = 7
	cellH = 3
)

// Game implements registry.Game for tic-tac-toe.
type Game struct {
	cfg     config.TicTacToeConfig
	runtime core.RuntimeConfig
	match   *engine.Match
	cursor  int
	cpuWait int // ticks left before the CPU moves
	message string
	hints   map[int]int

	xWins, oWins, draws int
	tallied             bool // whether the current outcome was counted
}

// New creates a tic-tac-toe game.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tictactoe" }

// Title returns the tab label.
func (g *Game) Title() string { return "Tic-tac-toe" }

// Controls describes the keys.
func (g *Game) Controls() string {
	return "Arrows: move  Enter/Space: place  M: mode  R: restart"
}

// Reset starts a new match with the configured mode and clears the tally.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTicTacToe()
	if err != nil {
		cfg = config.DefaultTicTacToeConfig()
	}
	g.cfg = cfg

	mode := engine.ModeVsCPU
	if cfg.Mode == "local" {
		mode = engine.ModeLocal
	}
	g.match = engine.NewMatch(mode)
	g.xWins, g.oWins, g.draws = 0, 0, 0
	g.restart()
}

// restart clears the board but keeps the mode and the tally.
func (g *Game) restart() {
	g.match.Reset()
	g.cursor = 4
	g.cpuWait = 0
	g.message = ""
	g.tallied = false
	g.refreshHints()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionMode) {
		g.match.ToggleMode()
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if (in.Has(core.ActionConfirm) || in.Has(core.ActionFire)) && !g.match.CPUToMove() {
		g.place(g.cursor)
	}

	if g.match.CPUToMove() {
		g.cpuWait--
		if g.cpuWait <= 0 {
			g.playCPU()
		}
	}

	g.tally()
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	g.cursor = core.Clamp(row, 0, 2)*3 + core.Clamp(col, 0, 2)
}

// place plays the human move at index. Illegal moves are ignored apart
// from a status message, like a click on a taken square.
func (g *Game) place(index int) {
	if err := g.match.Play(index); err != nil {
		if errors.Is(err, engine.ErrIllegalMove) {
			g.message = "That square is not available"
		}
		return
	}
	g.message = ""
	if g.match.CPUToMove() {
		g.cpuWait = g.runtime.TicksFor(g.cfg.CPUDelayMs)
	}
	g.refreshHints()
}

func (g *Game) playCPU() {
	idx, err := g.match.PlayCPU()
	if err != nil {
		g.message = err.Error()
		return
	}
	g.cursor = idx
	g.refreshHints()
}

// tally counts a finished game once.
func (g *Game) tally() {
	o := g.match.Outcome()
	if !o.Terminal() || g.tallied {
		return
	}
	g.tallied = true
	switch {
	case o.Status == engine.StatusDraw:
		g.draws++
	case o.Winner == engine.First:
		g.xWins++
	default:
		g.oWins++
	}
}

// refreshHints scores every empty square for the side to move.
func (g *Game) refreshHints() {
	g.hints = nil
	if !g.cfg.Hints || g.match.CPUToMove() {
		return
	}
	a, err := engine.Analyze(g.match.Board(), g.match.ToMove())
	if err != nil {
		return
	}
	g.hints = a.Scores
}

// Render draws the board, the cursor and the status lines.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW, boardH := cellW*3+4, cellH*3+4
	ox := (dst.Width() - boardW) / 2
	oy := max((dst.Height()-boardH-4)/2, 1)

	dst.DrawTextCentered(oy-1, fmt.Sprintf("Tic-tac-toe - %s", g.match.Mode()), core.ColorBrightCyan)
	g.drawGrid(dst, ox, oy)

	b := g.match.Board()
	for i, c := range b {
		x := ox + 1 + (i%3)*(cellW+1)
		y := oy + 1 + (i/3)*(cellH+1)
		g.drawCell(dst, x, y, i, c)
	}

	statusY := oy + boardH
	dst.DrawTextCentered(statusY, g.statusLine(), core.ColorBrightYellow)
	if g.message != "" {
		dst.DrawTextCentered(statusY+1, g.message, core.ColorRed)
	}
	tally := fmt.Sprintf("X %d   O %d   Draws %d", g.xWins, g.oWins, g.draws)
	dst.DrawTextCentered(statusY+2, tally, core.ColorGray)
}

func (g *Game) drawGrid(dst *core.Screen, ox, oy int) {
	w, h := cellW*3+4, cellH*3+4
	dst.DrawBox(core.NewRect(ox, oy, w, h), core.ColorIndigo)
	for i := 1; i < 3; i++ {
		dst.DrawVLine(ox+i*(cellW+1), oy+1, h-2, '│', core.ColorIndigo)
		dst.DrawHLine(ox+1, oy+i*(cellH+1), w-2, '─', core.ColorIndigo)
	}
	for i := 1; i < 3; i++ {
		for j := 1; j < 3; j++ {
			dst.SetColor(ox+i*(cellW+1), oy+j*(cellH+1), '┼', core.ColorIndigo)
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y, index int, c engine.Cell) {
	mid := y + cellH/2
	if index == g.cursor && !g.match.Outcome().Terminal() {
		dst.SetColor(x+1, mid, '[', core.ColorWhite)
		dst.SetColor(x+cellW-2, mid, ']', core.ColorWhite)
	}

	switch c {
	case engine.MarkFirst:
		dst.SetColor(x+cellW/2, mid, 'X', core.ColorBrightCyan)
	case engine.MarkSecond:
		dst.SetColor(x+cellW/2, mid, 'O', core.ColorBrightRed)
	default:
		if score, ok := g.hints[index]; ok {
			dst.DrawTextColor(x+cellW/2-1, y+cellH-1, fmt.Sprintf("%+d", score), core.ColorGray)
		}
	}
}

func (g *Game) statusLine() string {
	o := g.match.Outcome()
	switch o.Status {
	case engine.StatusWon:
		return fmt.Sprintf("Winner: %s  |  R to play again", o.Winner)
	case engine.StatusDraw:
		return "Draw  |  R to play again"
	}
	if g.match.CPUToMove() {
		return "CPU is thinking..."
	}
	return fmt.Sprintf("Next: %s", g.match.ToMove())
}

// State reports the human's wins as the score. The game never ends on its
// own; a finished board waits for R.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.xWins,
		GameOver: g.match.Outcome().Terminal(),
		Status:   g.statusLine(),
	}
}

// Board exposes the current board for the host and tests.
func (g *Game) Board() engine.Board { return g.match.Board() }

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}
