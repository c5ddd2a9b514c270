package config

// DifficultyManager derives dynamic game parameters from score or elapsed
// ticks.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clamp01(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether difficulty progresses during play.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1], interpolated from the initial
// level to 1.0 as score or ticks approach MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clamp01(progress)
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales base from 1x up to (1 + SpeedMultiplier)x at level 1.0.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a spawn interval (in ticks) by up to SpawnReduction
// of its length. The result is never below one tick.
func (d *DifficultyManager) Interval(base int, score, ticks int) int {
	cut := d.Level(score, ticks) * clamp01(d.cfg.Scaling.SpawnReduction)
	return max(1, int(float64(base)*(1.0-cut)))
}

func clamp01(v float64) float64 {
	return min(max(v, 0.0), 1.0)
}
