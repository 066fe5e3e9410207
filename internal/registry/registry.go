// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to select one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/feed-glutt/internal/audio"
	"github.com/vovakirdan/feed-glutt/internal/config"
	"github.com/vovakirdan/feed-glutt/internal/core"
	"github.com/vovakirdan/feed-glutt/internal/mint"
)

// Game is the contract between the game logic and a frontend.
// Implementations hold pure logic with no UI dependencies; frontends own
// input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game and returns it to the start menu.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one nominal tick.
	Step(in core.InputFrame) core.StepResult

	// Advance advances the simulation by one tick that took dt of
	// wall-clock time.
	Advance(dt time.Duration, in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Scene returns a world-space snapshot for pixel frontends.
	Scene() core.Scene
}

// Env carries the collaborators a frontend needs to run a game.
type Env struct {
	Runtime core.RuntimeConfig
	Config  config.Config
	Logger  *log.Logger
	Audio   audio.Player
	Opener  mint.Opener
}

// Frontend presents a game and feeds it input until the player quits.
type Frontend interface {
	// Name returns the identifier used by --frontend.
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run blocks until the player quits or the frontend fails.
	Run(game Game, env Env) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns all registered frontends, sorted by name.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, FrontendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
