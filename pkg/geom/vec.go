// Package geom provides the minimal vector and bounding-volume types the
// samplers in pkg/random produce and consume.
package geom

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.Len2()) }

// Len2 returns the squared length of v.
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

// Vec3 is a 3D point or displacement.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Len2()) }

// Len2 returns the squared length of v.
func (v Vec3) Len2() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Rect is an axis-aligned 2D region described by its minimum corner and size.
// A zero size along an axis is a valid, degenerate region.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// Box is an axis-aligned 3D volume described by its minimum corner and size.
// A zero size along an axis is a valid, degenerate volume.
type Box struct {
	Min  Vec3
	Size Vec3
}
