package shooter

import (
	"math/rand"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
)

// Enemy falls from the top of the screen at a constant speed.
type Enemy struct {
	X, Y  float64 // left column and row
	Speed float64 // rows per tick
	Width int
	Dead  bool
}

// CenterX returns the horizontal center used for hit tests.
func (e Enemy) CenterX() float64 {
	return e.X + float64(e.Width)/2
}

// EnemyWave spawns enemies on an interval, moves them and drops the ones
// that were destroyed or got past the ship.
type EnemyWave struct {
	enemies    []Enemy
	rng        *rand.Rand
	cfg        *config.ShooterConfig
	difficulty *config.DifficultyManager
	screenW    int
	bottom     int // row at which an enemy counts as escaped
	spawnBase  int // spawn interval in ticks before difficulty scaling
	sinceSpawn int
}

// NewEnemyWave creates an empty wave. The first enemy appears after one
// spawn interval.
func NewEnemyWave(rng *rand.Rand, cfg *config.ShooterConfig, diff *config.DifficultyManager, runtime core.RuntimeConfig) *EnemyWave {
	return &EnemyWave{
		enemies:    make([]Enemy, 0, 16),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
		screenW:    runtime.ScreenW,
		bottom:     runtime.ScreenH - 2,
		spawnBase:  runtime.TicksFor(cfg.Enemies.SpawnMs),
	}
}

// Update spawns and moves enemies. It returns how many reached the ship
// row this tick.
func (w *EnemyWave) Update(score, ticks int) int {
	w.sinceSpawn++
	if w.sinceSpawn >= w.difficulty.Interval(w.spawnBase, score, ticks) {
		w.spawn(score, ticks)
		w.sinceSpawn = 0
	}

	escaped := 0
	for i := range w.enemies {
		e := &w.enemies[i]
		e.Y += e.Speed
		if int(e.Y) >= w.bottom {
			e.Dead = true
			escaped++
		}
	}
	w.Sweep()
	return escaped
}

func (w *EnemyWave) spawn(score, ticks int) {
	width := max(w.cfg.Enemies.Width, 1)
	span := max(w.screenW-width, 1)

	lo, hi := w.cfg.Enemies.MinSpeed, w.cfg.Enemies.MaxSpeed
	speed := lo
	if hi > lo {
		speed = lo + w.rng.Float64()*(hi-lo)
	}

	w.enemies = append(w.enemies, Enemy{
		X:     float64(w.rng.Intn(span)),
		Y:     float64(hudRows),
		Speed: w.difficulty.Speed(speed, score, ticks),
		Width: width,
	})
}

// Sweep drops dead enemies.
func (w *EnemyWave) Sweep() {
	live := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Dead {
			live = append(live, e)
		}
	}
	w.enemies = live
}

// Enemies returns the live enemies. The slice aliases internal state so
// callers may mark entries dead before calling Sweep.
func (w *EnemyWave) Enemies() []Enemy {
	return w.enemies
}
