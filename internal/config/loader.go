package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Options control where configs are looked up and which difficulty
// preset is applied on top of them.
type Options struct {
	Dir    string           // searched before the user and local directories
	Preset DifficultyPreset // empty keeps the file's difficulty settings
}

var (
	optMu   sync.RWMutex
	options Options
)

// SetOptions replaces the process-wide lookup options. The CLI calls it
// once before any game is created.
func SetOptions(o Options) {
	optMu.Lock()
	defer optMu.Unlock()
	options = o
}

// CurrentOptions returns the options set by SetOptions.
func CurrentOptions() Options {
	optMu.RLock()
	defer optMu.RUnlock()
	return options
}

// Load reads <name>.yaml over a copy of fallback, so keys missing from the
// file keep their default values.
// Search order: opts.Dir -> ~/.gamehub/configs -> ./configs -> embedded default.
func Load[T any](name string, opts Options, fallback T) (T, error) {
	file := name + ".yaml"

	// An explicit directory is authoritative: a broken file there is an error.
	if opts.Dir != "" {
		path := filepath.Join(opts.Dir, file)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			cfg := fallback
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			return cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return fallback, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	candidates := []string{filepath.Join("configs", file)}
	if p := userConfigPath(file); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback
	if data := DefaultYAML(name); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, nil
		}
	}
	return cfg, nil
}

// userConfigPath returns ~/.gamehub/configs/<file>, or "" without a home.
func userConfigPath(file string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamehub", "configs", file)
}

// LoadShooter loads the shooter config with the current preset applied.
func LoadShooter() (ShooterConfig, error) {
	opts := CurrentOptions()
	cfg, err := Load("shooter", opts, DefaultShooterConfig())
	cfg.Difficulty.Apply(opts.Preset)
	return cfg, err
}

// LoadRunner loads the runner config with the current preset applied.
func LoadRunner() (RunnerConfig, error) {
	opts := CurrentOptions()
	cfg, err := Load("runner", opts, DefaultRunnerConfig())
	cfg.Difficulty.Apply(opts.Preset)
	return cfg, err
}

// LoadSnake loads the snake config.
func LoadSnake() (SnakeConfig, error) {
	return Load("snake", CurrentOptions(), DefaultSnakeConfig())
}

// LoadSlots loads the slot machine config.
func LoadSlots() (SlotsConfig, error) {
	cfg, err := Load("slots", CurrentOptions(), DefaultSlotsConfig())
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = DefaultSlotsConfig().Symbols
	}
	if cfg.Reels <= 0 {
		cfg.Reels = 3
	}
	return cfg, err
}

// LoadTicTacToe loads the tic-tac-toe config.
func LoadTicTacToe() (TicTacToeConfig, error) {
	return Load("tictactoe", CurrentOptions(), DefaultTicTacToeConfig())
}

// LoadHub loads the shell config.
func LoadHub() (HubConfig, error) {
	return Load("hub", CurrentOptions(), DefaultHubConfig())
}
