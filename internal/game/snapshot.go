package game

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// Sprite is the render view of one entity.
type Sprite struct {
	Kind entity.Kind // Opaque tag mapped to an asset by the presentation layer
	X, Y float64     // Top-left position
	Box  core.Rect   // Bounding box at publish time
}

func spriteOf(e *entity.Entity) Sprite {
	p := e.Pos()
	return Sprite{Kind: e.Kind(), X: p.X(), Y: p.Y(), Box: e.Box()}
}

// Snapshot is the immutable state published after a tick.
// Readers must not modify it; a new Snapshot is built for every tick.
type Snapshot struct {
	Tick        uint64
	State       State
	Score       int
	Viewport    core.Viewport
	Player      Sprite
	Enemies     []Sprite
	Projectiles []Sprite
}

// Sprites returns every sprite in draw order: player, enemies, projectiles.
func (s *Snapshot) Sprites() []Sprite {
	out := make([]Sprite, 0, 1+len(s.Enemies)+len(s.Projectiles))
	out = append(out, s.Player)
	out = append(out, s.Enemies...)
	out = append(out, s.Projectiles...)
	return out
}

func liveSprites(list []*entity.Entity) []Sprite {
	out := make([]Sprite, 0, len(list))
	for _, e := range list {
		if e.Alive() {
			out = append(out, spriteOf(e))
		}
	}
	return out
}
