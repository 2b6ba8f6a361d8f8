// Package registry provides a global registry for terminal renderers.
// Renderers register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Renderer draws a board into a terminal frame.
// Renderers are pure presentation: they read the board through t2048.View
// and never mutate the game. The platform calls Render after every event.
type Renderer interface {
	// ID returns a unique identifier for this renderer (e.g., "box", "tiles").
	// Used for the --renderer flag and the config file.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Render returns the full frame for a terminal of the given size.
	Render(v t2048.View, width, height int) string
}

// RendererInfo contains metadata about a registered renderer.
type RendererInfo struct {
	ID    string
	Title string
}

// Factory creates a renderer using the given colour theme.
type Factory func(theme config.Theme) Renderer

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a renderer factory to the registry.
// Typically called from a renderer's init() function.
// Panics if a renderer with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: renderer %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	r := f(config.Default().Theme)
	titles[id] = r.Title()
}

// List returns information about all registered renderers, sorted by ID.
func List() []RendererInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RendererInfo, 0, len(factories))
	for id := range factories {
		result = append(result, RendererInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new renderer by its ID.
// Returns an error if the renderer ID is not registered.
func Create(id string, theme config.Theme) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown renderer %q", id)
	}

	return f(theme), nil
}

// Exists checks if a renderer with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
