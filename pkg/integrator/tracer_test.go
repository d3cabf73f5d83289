package integrator

import (
	"testing"

	"github.com/finch-ray/go-whitted-raytracer/pkg/camera"
	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/geometry"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
	"github.com/finch-ray/go-whitted-raytracer/pkg/shading"
	"github.com/finch-ray/go-whitted-raytracer/pkg/world"
)

var background = core.NewVec3(0.5, 0.7, 1.0)

func newTestWorld() *world.World {
	return world.New(world.Light{
		Position: core.NewVec3(0, 0, -5),
		Color:    core.NewVec3(1, 1, 1),
	}, background)
}

func testCamera() *camera.Camera {
	return camera.New(camera.Config{
		Center: core.NewVec3(0, 0, -3),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
		Width:  11,
		Height: 11,
	})
}

// Scenario 1: empty world, every pixel equals background.
func TestTrace_EmptyWorldReturnsBackground(t *testing.T) {
	w := newTestWorld()
	if err := w.Rebuild(); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	tr := New(w, DefaultConfig())
	cam := testCamera()

	for _, px := range [][2]int{{0, 0}, {5, 5}, {10, 10}} {
		ray := cam.RaysForPixel(px[0], px[1])[0]
		got := tr.Trace(ray, 1)
		if !got.Equals(background) {
			t.Errorf("pixel %v: expected background %v, got %v", px, background, got)
		}
	}
}

// Scenario 2: single opaque red sphere -- center pixel has positive ambient
// and corner pixels are exactly background.
func TestTrace_OpaqueSphereCenterLitCornersBackground(t *testing.T) {
	w := newTestWorld()
	mat := material.NewMaterial(core.NewVec3(1, 0, 0), 0, 0, 0, shading.NewPhong())
	if err := w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)); err != nil {
		t.Fatalf("add: %v", err)
	}
	tr := New(w, DefaultConfig())
	cam := testCamera()

	center := cam.RaysForPixel(5, 5)[0]
	gotCenter := tr.Trace(center, 1)
	if gotCenter.X <= 0 {
		t.Errorf("expected center pixel to have a positive red channel, got %v", gotCenter)
	}

	corner := cam.RaysForPixel(0, 0)[0]
	gotCorner := tr.Trace(corner, 1)
	if !gotCorner.Equals(background) {
		t.Errorf("expected corner pixel to equal background, got %v", gotCorner)
	}
}

// Scenario 3: mirror sphere reflecting a red sphere -- the primary ray hits
// the mirror, the depth-2 reflection ray hits the red sphere, and the result
// is red-dominant. The mirror faces the camera, so the red sphere sits on
// the reflected path behind the camera; speculars are zeroed so the red
// channel comparison isn't washed out by a white highlight.
func TestTrace_MirrorSphereReflectsRedSphere(t *testing.T) {
	w := newTestWorld()
	redMat := material.NewMaterial(core.NewVec3(1, 0, 0), 0, 0, 0, shading.NewPhong())
	redMat.SpecularK = 0
	mirrorMat := material.NewMaterial(core.NewVec3(0, 0, 0), 1, 0, 0, shading.NewPhong())
	mirrorMat.SpecularK = 0

	if err := w.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -10), 1, redMat),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mirrorMat),
	); err != nil {
		t.Fatalf("add: %v", err)
	}

	tr := New(w, DefaultConfig())
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	got := tr.Trace(ray, 1)

	if got.X <= 0 {
		t.Errorf("expected a positive red contribution from the reflected sphere, got %v", got)
	}
	if got.Y >= got.X || got.Z >= got.X {
		t.Errorf("expected red to strictly dominate green/blue, got %v", got)
	}
}

// Scenario 4: glass sphere at normal incidence exhibits Fresnel ~ F0.
func TestReflectAndRefract_NormalIncidenceFresnelNearF0(t *testing.T) {
	w := newTestWorld()
	glass := material.NewMaterial(core.NewVec3(1, 1, 1), 0, 0.9, 1.5, shading.NewPhong())
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, glass)
	if err := w.Add(sphere); err != nil {
		t.Fatalf("add: %v", err)
	}

	tr := New(w, DefaultConfig())
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := w.Intersect(ray, tr.Cfg.Epsilon, 1e9)
	if !ok {
		t.Fatal("expected a hit on the glass sphere")
	}

	_, krEffective, _ := tr.reflectAndRefract(ray, hit, 1)
	f0 := ((1.0 - 1.5) / (1.0 + 1.5)) * ((1.0 - 1.5) / (1.0 + 1.5))
	if diff := krEffective - f0; diff > 0.01 || diff < -0.01 {
		t.Errorf("expected Fresnel near F0=%f at normal incidence, got %f", f0, krEffective)
	}
}

// Scenario 5: a point shadowed from the light by an opaque occluder loses
// its whole ambient+diffuse term (the shadow factor of 0 scales both), so
// it is strictly darker than a point with a clear line to the light.
func TestTrace_ShadowedPointHasNoDiffuse(t *testing.T) {
	mat := material.NewMaterial(core.NewVec3(1, 1, 1), 0, 0, 0, shading.NewPhong())

	w := world.New(world.Light{
		Position: core.NewVec3(0, 0, -10),
		Color:    core.NewVec3(1, 1, 1),
	}, background)

	// The occluder cuboid sits on the z-axis between the light and the
	// shadowed cuboid, but well clear of the lit cuboid off to the side.
	occluder := geometry.NewBox(core.NewVec3(0, 0, -5), core.NewVec3(1, 1, 0.5), mat)
	shadowedBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(0.5, 0.5, 0.5), mat)
	litBox := geometry.NewBox(core.NewVec3(5, 0, 0), core.NewVec3(0.5, 0.5, 0.5), mat)
	if err := w.Add(occluder, shadowedBox, litBox); err != nil {
		t.Fatalf("add: %v", err)
	}

	tr := New(w, DefaultConfig())

	// Rays originate close to their target cuboid so they never pass
	// near the occluder themselves -- only the shadow ray does.
	shadowedRay := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	shadowed := tr.Trace(shadowedRay, 1)

	litRay := core.NewRay(core.NewVec3(5, 0, -1), core.NewVec3(0, 0, 1))
	lit := tr.Trace(litRay, 1)

	if shadowed.X >= lit.X {
		t.Errorf("expected the occluded point to be darker than the lit point: shadowed=%v lit=%v", shadowed, lit)
	}
}

// Invariant: a trace entered beyond the recursion cap returns the background
// without touching the scene, so reflection/refraction recursion can never
// exceed MaxDepth regardless of kr/kt values.
func TestTrace_DepthBeyondCapReturnsBackground(t *testing.T) {
	w := newTestWorld()
	mat := material.NewMaterial(core.NewVec3(1, 1, 1), 1, 0.9, 1.5, shading.NewPhong())
	if err := w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)); err != nil {
		t.Fatalf("add: %v", err)
	}
	tr := New(w, DefaultConfig())

	// This ray hits the sphere, but at depth MaxDepth+1 the cap fires first.
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	got := tr.Trace(ray, tr.Cfg.MaxDepth+1)

	if !got.Equals(background) {
		t.Errorf("expected background beyond the depth cap, got %v", got)
	}
}

// Invariant: every channel of the traced color stays within [0,1] regardless
// of kr/kt.
func TestTrace_ResultAlwaysClamped(t *testing.T) {
	w := newTestWorld()
	mat := material.NewMaterial(core.NewVec3(1, 1, 1), 1, 0.9, 1.5, shading.NewPhong())
	if err := w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)); err != nil {
		t.Fatalf("add: %v", err)
	}
	tr := New(w, DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	got := tr.Trace(ray, 1)

	if got.X < 0 || got.X > 1 || got.Y < 0 || got.Y > 1 || got.Z < 0 || got.Z > 1 {
		t.Errorf("expected channels clamped to [0,1], got %v", got)
	}
}
