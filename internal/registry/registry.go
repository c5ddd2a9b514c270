// Package registry keeps the factories of every game in the hub. Games
// register themselves from init(), so the shell discovers them without
// importing game packages directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gamehub/internal/core"
)

// Game is implemented by every minigame. Games hold pure logic; the
// platform owns timing, input mapping and drawing to the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and in configs.
	ID() string

	// Title is the tab label.
	Title() string

	// Controls is a one-line description of the game's keys.
	Controls() string

	// Reset starts a fresh game sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. dst is cleared by the game.
	Render(dst *core.Screen)

	// State reports score, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Controls string
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on duplicate IDs, which can
// only happen through a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Controls: g.Controls()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the info of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
