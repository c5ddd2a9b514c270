package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gamehub/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

// stepMove runs ticks until the snake makes exactly one grid step.
func stepMove(g *Game, in core.InputFrame) {
	g.Step(in)
	for g.moveTicker != 0 {
		g.Step(core.NewInputFrame())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		switch i {
		case 5:
			in.Set(core.ActionRight)
		case 60:
			in.Set(core.ActionDown)
		case 120:
			in.Set(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestStillUntilFirstKey(t *testing.T) {
	g := newGame(t, 1)
	start := g.snake[0]
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.snake[0] != start || len(g.snake) != 1 {
		t.Errorf("snake moved without input: head %v length %d", g.snake[0], len(g.snake))
	}
	if g.State().GameOver {
		t.Error("standing still must not count as biting the tail")
	}
}

func TestWrapAround(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{X: -1, Y: -1}
	g.snake = []Point{{X: 0, Y: 3}}

	stepMove(g, core.InputOf(core.ActionLeft))
	if want := (Point{X: g.gridW - 1, Y: 3}); g.snake[0] != want {
		t.Errorf("head = %v, want %v after leaving the left edge", g.snake[0], want)
	}

	g.snake = []Point{{X: 4, Y: g.gridH - 1}}
	g.direction, g.nextDir = DirDown, DirDown
	stepMove(g, core.NewInputFrame())
	if want := (Point{X: 4, Y: 0}); g.snake[0] != want {
		t.Errorf("head = %v, want %v after leaving the bottom edge", g.snake[0], want)
	}
}

func TestTailGrowsToCap(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{X: -1, Y: -1}
	stepMove(g, core.InputOf(core.ActionRight))
	for i := 0; i < 20; i++ {
		stepMove(g, core.NewInputFrame())
	}
	if got, want := len(g.snake), g.cfg.InitialLength; got != want {
		t.Errorf("length = %d, want %d", got, want)
	}
}

func TestEatFood(t *testing.T) {
	g := newGame(t, 1)
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}

	stepMove(g, core.InputOf(core.ActionRight))

	if g.score != 1 {
		t.Fatalf("score = %d, want 1", g.score)
	}
	if g.food == (Point{X: head.X + 1, Y: head.Y}) || g.isSnakeAt(g.food) {
		t.Errorf("food not relocated to a free cell: %v", g.food)
	}
	if g.maxLength() != g.cfg.InitialLength+1 {
		t.Errorf("tail cap = %d, want %d", g.maxLength(), g.cfg.InitialLength+1)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{X: -1, Y: -1}
	g.snake = []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
	g.direction, g.nextDir = DirDown, DirDown

	g.moveSnake()

	if !g.State().GameOver {
		t.Fatal("expected game over after running into the tail")
	}

	head := g.snake[0]
	g.Step(core.InputOf(core.ActionUp))
	if g.snake[0] != head {
		t.Error("snake moved after game over")
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.State().GameOver || g.score != 0 || len(g.snake) != 1 {
		t.Error("restart did not reset the game")
	}
}

func TestNoReversalWhenLong(t *testing.T) {
	g := newGame(t, 1)
	g.snake = []Point{{5, 5}, {4, 5}}
	g.direction, g.nextDir = DirRight, DirRight

	g.processInput(core.InputOf(core.ActionLeft))
	if g.nextDir != DirRight {
		t.Errorf("nextDir = %v, reversing into the body should be ignored", g.nextDir)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, 1)
	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"Score: 0", "Press an arrow key"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
