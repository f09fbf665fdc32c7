// Package registry maps game IDs to factories. The CLI and the SSH server
// create a fresh game per session through it, so sessions never share state.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what the platform drives. Implementations are pure simulation with
// no terminal dependencies; the platform owns timing, input and drawing.
type Game interface {
	// ID returns the identifier used on the command line.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new session for the given screen and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, lives and phase.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the session.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, unstarted game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Registry holds game factories keyed by ID. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a factory. IDs are unique.
func (r *Registry) Register(id string, f Factory) error {
	if id == "" || f == nil {
		return fmt.Errorf("registry: invalid registration for %q", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("registry: game %q already registered", id)
	}

	r.factories[id] = f
	r.titles[id] = f().Title()
	return nil
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// List returns every registered game, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, GameInfo{ID: id, Title: r.titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

var defaultRegistry = New()

// Register adds a factory to the default registry. Meant for init()
// functions, so a bad registration panics.
func Register(id string, f Factory) {
	if err := defaultRegistry.Register(id, f); err != nil {
		panic(err)
	}
}

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) {
	return defaultRegistry.Create(id)
}

// List returns the games in the default registry.
func List() []GameInfo {
	return defaultRegistry.List()
}

// Exists checks the default registry.
func Exists(id string) bool {
	return defaultRegistry.Exists(id)
}
