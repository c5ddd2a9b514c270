// Package config provides YAML-based game configuration loading and
// difficulty management for the hub.
package config

import "fmt"

// ShooterConfig configures the vertical shooter.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Shots      ShooterShots     `yaml:"shots"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Gameplay   ShooterGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the ship.
type ShooterPlayer struct {
	Width int `yaml:"width"`
	Step  int `yaml:"step"` // columns moved per key press
}

// ShooterShots defines player bullets.
type ShooterShots struct {
	Speed      float64 `yaml:"speed"`       // rows per tick, upward
	CooldownMs int     `yaml:"cooldown_ms"` // minimum time between shots
}

// ShooterEnemies defines falling enemies.
type ShooterEnemies struct {
	Width    int     `yaml:"width"`
	SpawnMs  int     `yaml:"spawn_ms"`
	MinSpeed float64 `yaml:"min_speed"` // rows per tick
	MaxSpeed float64 `yaml:"max_speed"`
}

// ShooterGameplay defines scoring and hit boxes.
type ShooterGameplay struct {
	Lives  int     `yaml:"lives"`
	Points int     `yaml:"points"`
	HitDX  float64 `yaml:"hit_dx"` // a shot hits when |dx| < HitDX
	HitDY  float64 `yaml:"hit_dy"` // and |dy| < HitDY
}

// SnakeConfig configures the snake game.
type SnakeConfig struct {
	MoveMs        int `yaml:"move_ms"`
	InitialLength int `yaml:"initial_length"`
	CellWidth     int `yaml:"cell_width"` // terminal columns per grid cell
}

// SlotsConfig configures the slot machine.
type SlotsConfig struct {
	Symbols  []string      `yaml:"symbols"`
	Reels    int           `yaml:"reels"`
	SpinMs   int           `yaml:"spin_ms"`
	Jackpot  int           `yaml:"jackpot_points"`
	Messages SlotsMessages `yaml:"messages"`
}

// SlotsMessages are the status lines shown under the reels.
type SlotsMessages struct {
	Idle    string `yaml:"idle"`
	Jackpot string `yaml:"jackpot"`
	Miss    string `yaml:"miss"`
}

// TicTacToeConfig configures tic-tac-toe.
type TicTacToeConfig struct {
	Mode       string `yaml:"mode"` // "cpu" or "local"
	CPUDelayMs int    `yaml:"cpu_delay_ms"`
	Hints      bool   `yaml:"hints"` // show minimax scores of every cell
}

// RunnerConfig configures the Geometry-Dash style runner.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines gravity, jump and scrolling speed.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	BaseSpeed   float64 `yaml:"base_speed"`
	AirJump     bool    `yaml:"air_jump"` // allow jumping while airborne
}

// RunnerObstacles defines obstacle sizes and spawn rate.
type RunnerObstacles struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	SpawnMs   int `yaml:"spawn_ms"`
}

// RunnerPlayer defines the player block.
type RunnerPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// HubConfig configures the tabbed shell.
type HubConfig struct {
	Tabs        []string `yaml:"tabs"` // game IDs in tab order
	Snippets    bool     `yaml:"snippets"`
	DownloadDir string   `yaml:"download_dir"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time" or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which level 1.0 is reached
}

// ScalingConfig defines how much parameters change at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to 1.0 at max level
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // fraction removed from spawn intervals
}

// DifficultyPreset names a starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "use the
// config file as-is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply adjusts d for a preset. Fixed disables progression.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
