package geometry

import (
	"math"
	"testing"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
)

// A Cylinder centered at the origin stands along world Z (its local Y axis
// rotated 90° about X), so these tests aim rays along Z and in the XY plane.

func TestCylinder_Hit_AlongAxisHitsNearCap(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 4.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, ok := cyl.Hit(ray, 0.001, 100.0)
	if !ok {
		t.Fatal("expected a hit on the near cap")
	}
	if math.Abs(hit.T-3.0) > 1e-6 {
		t.Errorf("T = %f, want 3", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, -2)) {
		t.Errorf("Point = %v, want (0,0,-2)", hit.Point)
	}
}

func TestCylinder_Hit_SideSurface(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 4.0, testMaterial())
	ray := core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0))

	hit, ok := cyl.Hit(ray, 0.001, 100.0)
	if !ok {
		t.Fatal("expected a hit on the side surface")
	}
	if math.Abs(hit.T-2.0) > 1e-6 {
		t.Errorf("T = %f, want 2", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Point = %v, want (1,0,0)", hit.Point)
	}
}

func TestCylinder_Hit_MissesBeyondRadius(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 4.0, testMaterial())
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(-1, 0, 0))

	if _, ok := cyl.Hit(ray, 0.001, 100.0); ok {
		t.Error("expected a miss for a ray passing outside the radius")
	}
}

func TestCylinder_Hit_MissesBeyondHeight(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(0, 0, 0), 1.0, 4.0, testMaterial())
	// Travels parallel to the axis, inside the radius, starting at a Z well
	// beyond the near cap (z=-2). It would reach that cap at t=8, but tMax=1
	// ends the ray before it gets there.
	ray := core.NewRay(core.NewVec3(0.5, 0.5, -10), core.NewVec3(0, 0, 1))

	if _, ok := cyl.Hit(ray, 0.001, 1.0); ok {
		t.Error("expected no hit within the short valid range")
	}
}

func TestCylinder_BoundingBox(t *testing.T) {
	cyl := NewCylinder(core.NewVec3(1, 2, 3), 2.0, 6.0, testMaterial())
	bbox := cyl.BoundingBox()

	if !bbox.Min.Equals(core.NewVec3(-1, 0, 0)) {
		t.Errorf("Min = %v, want (-1,0,0)", bbox.Min)
	}
	if !bbox.Max.Equals(core.NewVec3(3, 4, 6)) {
		t.Errorf("Max = %v, want (3,4,6)", bbox.Max)
	}
}
