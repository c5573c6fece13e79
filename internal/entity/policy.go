package entity

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Policy holds the per-kind behavior of an entity.
type Policy struct {
	// Bounds runs after every position update against a non-degenerate viewport.
	Bounds func(e *Entity, vp core.Viewport)
	// Collide runs on e when it touches other.
	Collide func(e, other *Entity)
}

var policies = [kindCount]Policy{
	KindPlayer:     {Bounds: clampHorizontal, Collide: ignoreContact},
	KindEnemy:      {Bounds: bounceHorizontal, Collide: dieOnContact},
	KindProjectile: {Bounds: dieOffscreen, Collide: dieOnContact},
}

func policyFor(k Kind) Policy {
	if k >= kindCount {
		return Policy{Bounds: func(*Entity, core.Viewport) {}, Collide: ignoreContact}
	}
	return policies[k]
}

// clampHorizontal keeps x within [0, vp.W-width]. y is left alone.
func clampHorizontal(e *Entity, vp core.Viewport) {
	maxX := float64(vp.W - e.w)
	if maxX < 0 {
		maxX = 0
	}
	x := core.ClampF(e.pos.X(), 0, maxX)
	if x != e.pos.X() {
		e.SetX(x)
	}
}

// bounceHorizontal reflects vx off the side walls and puts the entity back
// against the wall it crossed.
func bounceHorizontal(e *Entity, vp core.Viewport) {
	switch {
	case e.box.Right() > vp.W:
		e.SetVX(-math.Abs(e.vel.X()))
		e.SetX(float64(max(0, vp.W-e.w)))
	case e.box.X < 0:
		e.SetVX(math.Abs(e.vel.X()))
		e.SetX(0)
	}
}

// dieOffscreen invalidates the entity once its box leaves the viewport.
func dieOffscreen(e *Entity, vp core.Viewport) {
	if !e.box.Intersects(vp.Rect()) {
		e.Kill()
	}
}

func dieOnContact(e, _ *Entity) {
	e.Kill()
}

// ignoreContact is the player's rule: contact is never fatal to the entity
// itself; losing is decided by the loop.
func ignoreContact(_, _ *Entity) {}
