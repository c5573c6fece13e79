// Package assets maps sprite kinds from game snapshots to terminal art.
// The host owns a Registry and looks sprites up while drawing; the simulation
// never sees it.
package assets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// Asset is the terminal look of one sprite kind.
type Asset struct {
	Kind  entity.Kind
	Title string
	// Art is drawn from the sprite's top-left corner. Cells outside the art
	// use Fill.
	Art   []string
	Fill  rune
	Color core.Color
}

// CellAt returns the rune for column col and row row of a sprite's box.
func (a Asset) CellAt(col, row int) rune {
	if row >= 0 && row < len(a.Art) {
		line := []rune(a.Art[row])
		if col >= 0 && col < len(line) {
			return line[col]
		}
	}
	return a.Fill
}

// Registry holds one asset per sprite kind.
type Registry struct {
	mu     sync.RWMutex
	assets map[entity.Kind]Asset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{assets: make(map[entity.Kind]Asset)}
}

// Register adds an asset.
// Panics if the kind already has one.
func (r *Registry) Register(a Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[a.Kind]; exists {
		panic(fmt.Sprintf("assets: kind %q already registered", a.Kind))
	}
	r.assets[a.Kind] = a
}

// Lookup returns the asset for kind.
func (r *Registry) Lookup(kind entity.Kind) (Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.assets[kind]
	return a, ok
}

// List returns all assets sorted by kind.
func (r *Registry) List() []Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Asset, 0, len(r.assets))
	for _, a := range r.assets {
		result = append(result, a)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Default returns a registry with the built-in terminal sprites.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Asset{
		Kind:  entity.KindPlayer,
		Title: "Ship",
		Art:   []string{" /^\\ ", "<===>"},
		Fill:  '=',
		Color: core.ColorBrightGreen,
	})
	r.Register(Asset{
		Kind:  entity.KindEnemy,
		Title: "Invader",
		Art:   []string{"/o\\", "^ ^"},
		Fill:  '#',
		Color: core.ColorBrightRed,
	})
	r.Register(Asset{
		Kind:  entity.KindProjectile,
		Title: "Shot",
		Art:   []string{"|"},
		Fill:  '|',
		Color: core.ColorBrightYellow,
	})
	return r
}
