// Package core provides fundamental types and utilities for the runner.
// It contains no Bubble Tea imports to keep game logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect represents a screen-space rectangle used for HUD boxes and overlays.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
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
func (r Rect) Intersects(other Rect) bool {
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

// Box3 is an axis-aligned bounding box in world space.
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxFromCenter builds a box of the given size centered on center.
func BoxFromCenter(center, size mgl64.Vec3) Box3 {
	half := size.Mul(0.5)
	return Box3{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Size returns the extent of the box on each axis.
func (b Box3) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Translate returns the box moved by offset.
func (b Box3) Translate(offset mgl64.Vec3) Box3 {
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Shrink pulls the x and z faces inward by padX and padZ.
// The y extent is left untouched. A box thinner than twice the padding
// ends up inverted on that axis, which still follows the inclusive
// overlap rule in Intersects.
func (b Box3) Shrink(padX, padZ float64) Box3 {
	b.Min[0] += padX
	b.Max[0] -= padX
	b.Min[2] += padZ
	b.Max[2] -= padZ
	return b
}

// Intersects reports whether the boxes overlap on all three axes.
// Touching faces count as overlap.
func (b Box3) Intersects(other Box3) bool {
	for axis := 0; axis < 3; axis++ {
		if b.Min[axis] > other.Max[axis] || b.Max[axis] < other.Min[axis] {
			return false
		}
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
