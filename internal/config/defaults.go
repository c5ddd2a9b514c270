package config

import "embed"

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultYAML returns the embedded default YAML for a config name, or nil.
func DefaultYAML(name string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// DefaultShooterConfig returns the built-in shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player:  ShooterPlayer{Width: 5, Step: 3},
		Shots:   ShooterShots{Speed: 0.5, CooldownMs: 180},
		Enemies: ShooterEnemies{Width: 3, SpawnMs: 800, MinSpeed: 0.033, MaxSpeed: 0.1},
		Gameplay: ShooterGameplay{
			Lives:  3,
			Points: 10,
			HitDX:  3,
			HitDY:  1,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 500},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.5, SpawnReduction: 0.5},
		},
	}
}

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{MoveMs: 100, InitialLength: 5, CellWidth: 2}
}

// DefaultSlotsConfig returns the built-in slot machine configuration.
func DefaultSlotsConfig() SlotsConfig {
	return SlotsConfig{
		Symbols: []string{"CHERRY", "LEMON", "STAR", "MELON", "BELL"},
		Reels:   3,
		SpinMs:  600,
		Jackpot: 100,
		Messages: SlotsMessages{
			Idle:    "Press Space to spin",
			Jackpot: "JACKPOT!",
			Miss:    "Try again...",
		},
	}
}

// DefaultTicTacToeConfig returns the built-in tic-tac-toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{Mode: "cpu", CPUDelayMs: 300}
}

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:     0.0167,
			JumpImpulse: -0.4,
			BaseSpeed:   0.37,
			AirJump:     true,
		},
		Obstacles: RunnerObstacles{
			MinWidth:  2,
			MaxWidth:  5,
			MinHeight: 1,
			MaxHeight: 4,
			SpawnMs:   900,
		},
		Player: RunnerPlayer{X: 8, Width: 3, Height: 2, GroundOffset: 2},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.3},
		},
	}
}

// DefaultHubConfig returns the built-in shell configuration.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		Tabs:        []string{"shooter", "snake", "slots", "tictactoe", "runner"},
		Snippets:    true,
		DownloadDir: ".",
	}
}
