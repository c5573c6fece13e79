// Package entity implements the moving objects of the game: the player ship,
// enemy ships and projectiles.
//
// Entities are a closed set of kinds. Behavior that differs per kind (what
// happens at the viewport edge, what happens on contact) lives in a policy
// table indexed by Kind rather than in per-kind types.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Kind identifies the variant of an entity. It doubles as the opaque sprite
// tag handed to the presentation layer.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	kindCount
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is a moving, axis-aligned object.
// Position is the top-left corner; y grows downward. Velocity is in units per
// millisecond.
type Entity struct {
	kind  Kind
	pos   mgl64.Vec2
	vel   mgl64.Vec2
	w, h  int
	box   core.Rect
	alive bool
}

// New creates a live entity. Sizes below 1 are raised to 1.
func New(kind Kind, pos, vel mgl64.Vec2, w, h int) *Entity {
	e := &Entity{
		kind:  kind,
		pos:   pos,
		vel:   vel,
		w:     max(1, w),
		h:     max(1, h),
		alive: true,
	}
	e.refreshBox()
	return e
}

// Kind returns the entity variant.
func (e *Entity) Kind() Kind { return e.kind }

// Pos returns the top-left position.
func (e *Entity) Pos() mgl64.Vec2 { return e.pos }

// Vel returns the velocity in units/ms.
func (e *Entity) Vel() mgl64.Vec2 { return e.vel }

// Width returns the fixed width.
func (e *Entity) Width() int { return e.w }

// Height returns the fixed height.
func (e *Entity) Height() int { return e.h }

// Box returns the bounding box derived from the current position.
func (e *Entity) Box() core.Rect { return e.box }

// Alive reports whether the entity is still simulated.
func (e *Entity) Alive() bool { return e.alive }

// Kill clears the liveness flag. The registry purges dead entities.
func (e *Entity) Kill() { e.alive = false }

// SetPos moves the entity and recomputes its bounding box.
func (e *Entity) SetPos(p mgl64.Vec2) {
	e.pos = p
	e.refreshBox()
}

// SetX moves the entity horizontally and recomputes its bounding box.
func (e *Entity) SetX(x float64) {
	e.SetPos(mgl64.Vec2{x, e.pos.Y()})
}

// SetY moves the entity vertically and recomputes its bounding box.
func (e *Entity) SetY(y float64) {
	e.SetPos(mgl64.Vec2{e.pos.X(), y})
}

// SetVel replaces the velocity.
func (e *Entity) SetVel(v mgl64.Vec2) { e.vel = v }

// SetVX replaces the horizontal velocity.
func (e *Entity) SetVX(vx float64) { e.vel = mgl64.Vec2{vx, e.vel.Y()} }

func (e *Entity) refreshBox() {
	e.box = core.BoxAt(e.pos.X(), e.pos.Y(), e.w, e.h)
}

// Update integrates position over elapsedMS, recomputes the bounding box and
// then applies the kind's bounds policy against vp.
// A degenerate viewport skips the bounds policy.
func (e *Entity) Update(elapsedMS float64, vp core.Viewport) {
	if elapsedMS > 0 {
		e.SetPos(e.pos.Add(e.vel.Mul(elapsedMS)))
	}
	e.CheckBounds(vp)
}

// CheckBounds applies the kind's edge rule against vp.
func (e *Entity) CheckBounds(vp core.Viewport) {
	if vp.Degenerate() {
		return
	}
	policyFor(e.kind).Bounds(e, vp)
}

// CollidedWith reports whether the two bounding boxes overlap.
// Touching edges do not count. The relation is symmetric.
func (e *Entity) CollidedWith(other *Entity) bool {
	return e.box.Intersects(other.box)
}

// OnCollision applies the kind's contact effect.
func (e *Entity) OnCollision(other *Entity) {
	policyFor(e.kind).Collide(e, other)
}
