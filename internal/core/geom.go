// Package core holds the types shared by the host shell and the games:
// the screen buffer, geometry helpers, input actions and runtime config.
// It has no UI dependencies so game logic stays pure and testable.
package core

import "cmp"

// Rect is an axis-aligned box on the character grid.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two rectangles overlap (AABB test).
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FRect is a rectangle with sub-cell precision. Runner blocks and the player
// move by fractional amounts per tick.
type FRect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether the two rectangles overlap.
func (r FRect) Intersects(o FRect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Cells snaps r to the character grid for drawing.
func (r FRect) Cells() Rect {
	return NewRect(int(r.X), int(r.Y), max(1, int(r.W)), max(1, int(r.H)))
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Wrap maps v into [0, n) the way a torus playfield does.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
