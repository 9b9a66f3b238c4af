package geom

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Fatalf("Len: want 5, got %g", v.Len())
	}
	if v.Len2() != 25 {
		t.Fatalf("Len2: want 25, got %g", v.Len2())
	}
	if got := v.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := v.Add(Vec2{X: -3, Y: 1}); got != (Vec2{X: 0, Y: 5}) {
		t.Fatalf("Add: got %v", got)
	}
}

func TestVec3Ops(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 2}
	if v.Len() != 3 {
		t.Fatalf("Len: want 3, got %g", v.Len())
	}
	if got := v.Scale(0.5); math.Abs(got.Len()-1.5) > 1e-12 {
		t.Fatalf("Scale: got %v", got)
	}
	if got := v.Add(Vec3{X: 1, Y: 1, Z: 1}); got != (Vec3{X: 2, Y: 3, Z: 3}) {
		t.Fatalf("Add: got %v", got)
	}
}
