// Package core provides fundamental types and utilities for the invaders engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// BoxAt builds the bounding box of an object of size w×h whose top-left corner
// sits at the real-valued position (x, y).
//
// Rounding rule: the corner is floored, so Left = floor(x), Top = floor(y),
// Right = floor(x)+w and Bottom = floor(y)+h. Flooring (rather than truncating
// toward zero) keeps the box width constant for negative coordinates.
func BoxAt(x, y float64, w, h int) Rect {
	return Rect{X: int(math.Floor(x)), Y: int(math.Floor(y)), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport is the drawable area reported by the host, in device units.
// Height excludes any host chrome such as a status bar or HUD row.
type Viewport struct {
	W, H int
}

// Rect returns the viewport as a rectangle anchored at the origin.
func (v Viewport) Rect() Rect {
	return NewRect(0, 0, v.W, v.H)
}

// Degenerate reports whether the viewport has no area.
// Bounds policies are skipped against a degenerate viewport.
func (v Viewport) Degenerate() bool {
	return v.W <= 0 || v.H <= 0
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
