// Package core provides fundamental types and utilities for the crossing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Vec3 is a position or offset in world space.
// X is lateral (across lanes), Y is height, Z is depth (along rows).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Lerp interpolates between v and o. t=0 yields v, t=1 yields o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// ApproxEqual reports whether two vectors are within eps on every axis.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Footprint is a collision shape projected onto the ground (X/Z) plane.
// Height is ignored on purpose: hops are visual only.
type Footprint struct {
	Width  float64 // Extent along X
	Length float64 // Extent along Z
}

// Box is a footprint placed at a world position (its center).
type Box struct {
	Center Vec3
	Size   Footprint
}

// MinX returns the left edge of the box.
func (b Box) MinX() float64 { return b.Center.X - b.Size.Width/2 }

// MaxX returns the right edge of the box.
func (b Box) MaxX() float64 { return b.Center.X + b.Size.Width/2 }

// MinZ returns the near edge of the box.
func (b Box) MinZ() float64 { return b.Center.Z - b.Size.Length/2 }

// MaxZ returns the far edge of the box.
func (b Box) MaxZ() float64 { return b.Center.Z + b.Size.Length/2 }

// Intersects returns true if the two boxes overlap on the ground plane.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.MinX() >= o.MaxX() || o.MinX() >= b.MaxX() {
		return false
	}
	if b.MinZ() >= o.MaxZ() || o.MinZ() >= b.MaxZ() {
		return false
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
