package random

import (
	"math"

	"randkit/pkg/geom"
)

// OnUnitCircle returns a point uniform on the circumference of the unit
// circle: an angle uniform in [0, 2π) mapped through (cos θ, sin θ).
func (r *RNG) OnUnitCircle() geom.Vec2 {
	theta := r.Float64() * 2 * math.Pi
	return geom.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// InUnitDisk returns a point uniform over the area of the unit disk. The
// radius is the square root of a uniform draw; scaling the radius linearly
// would crowd samples toward the center.
func (r *RNG) InUnitDisk() geom.Vec2 {
	return r.OnUnitCircle().Scale(math.Sqrt(r.Float64()))
}

// OnUnitSphere returns a point uniform over the surface of the unit sphere,
// via the Archimedes equal-area construction: z uniform in [-1, 1], a
// longitude uniform in [0, 2π), and the ring radius sqrt(1 - z²). Naive
// spherical-angle sampling would cluster samples at the poles.
func (r *RNG) OnUnitSphere() geom.Vec3 {
	u := 2*r.Float64() - 1
	t := r.Float64() * 2 * math.Pi
	f := math.Sqrt(1 - u*u)
	return geom.Vec3{X: f * math.Cos(t), Y: f * math.Sin(t), Z: u}
}

// InUnitBall returns a point uniform over the volume of the unit ball. The
// radius is the cube root of a uniform draw, for the same density reason as
// the disk's square root.
func (r *RNG) InUnitBall() geom.Vec3 {
	return r.OnUnitSphere().Scale(math.Cbrt(r.Float64()))
}

// InBox returns a point uniform inside b, drawing each axis independently.
// A zero-size axis collapses that coordinate to the minimum corner exactly.
func (r *RNG) InBox(b geom.Box) geom.Vec3 {
	return geom.Vec3{
		X: b.Min.X + r.Float64()*b.Size.X,
		Y: b.Min.Y + r.Float64()*b.Size.Y,
		Z: b.Min.Z + r.Float64()*b.Size.Z,
	}
}

// InRect is the 2D analogue of InBox.
func (r *RNG) InRect(rc geom.Rect) geom.Vec2 {
	return geom.Vec2{
		X: rc.Min.X + r.Float64()*rc.Size.X,
		Y: rc.Min.Y + r.Float64()*rc.Size.Y,
	}
}
