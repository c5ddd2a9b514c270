package runner

import (
	"math/rand"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
)

// Block is an obstacle standing on the ground.
type Block struct {
	X      float64 // left edge
	Width  int
	Height int
}

// Rect returns the collision rectangle of b in screen coordinates.
func (b Block) Rect(groundY int) core.FRect {
	return core.FRect{X: b.X, Y: float64(groundY - b.Height), W: float64(b.Width), H: float64(b.Height)}
}

// Course spawns blocks at the right edge on a timer and scrolls them left.
type Course struct {
	blocks     []Block
	rng        *rand.Rand
	screenW    int
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
	spawnBase  int // ticks between spawns before difficulty scaling
	sinceSpawn int
}

// NewCourse creates an empty course.
func NewCourse(rng *rand.Rand, cfg *config.RunnerConfig, diff *config.DifficultyManager, runtime core.RuntimeConfig) *Course {
	return &Course{
		blocks:     make([]Block, 0, 8),
		rng:        rng,
		screenW:    runtime.ScreenW,
		cfg:        cfg,
		difficulty: diff,
		spawnBase:  runtime.TicksFor(cfg.Obstacles.SpawnMs),
	}
}

// Speed returns the current scroll speed in columns per tick.
func (c *Course) Speed(score, ticks int) float64 {
	return c.difficulty.Speed(c.cfg.Physics.BaseSpeed, score, ticks)
}

// Update scrolls the blocks, drops those past the left edge and spawns a
// new one when the interval has elapsed.
func (c *Course) Update(score, ticks int) {
	speed := c.Speed(score, ticks)
	live := c.blocks[:0]
	for _, b := range c.blocks {
		b.X -= speed
		if b.X+float64(b.Width) > 0 {
			live = append(live, b)
		}
	}
	c.blocks = live

	c.sinceSpawn++
	if c.sinceSpawn >= c.difficulty.Interval(c.spawnBase, score, ticks) {
		c.sinceSpawn = 0
		c.spawn()
	}
}

func (c *Course) spawn() {
	o := c.cfg.Obstacles
	width := o.MinWidth
	if o.MaxWidth > o.MinWidth {
		width += c.rng.Intn(o.MaxWidth - o.MinWidth + 1)
	}
	height := o.MinHeight
	if o.MaxHeight > o.MinHeight {
		height += c.rng.Intn(o.MaxHeight - o.MinHeight + 1)
	}
	c.blocks = append(c.blocks, Block{
		X:      float64(c.screenW),
		Width:  max(width, 1),
		Height: max(height, 1),
	})
}

// Blocks returns the obstacles on screen.
func (c *Course) Blocks() []Block {
	return c.blocks
}

// Hits reports whether player overlaps any block.
func (c *Course) Hits(player core.FRect, groundY int) bool {
	for _, b := range c.blocks {
		if player.Intersects(b.Rect(groundY)) {
			return true
		}
	}
	return false
}
