package geometry

import (
	"math/rand"
	"testing"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
)

// bruteForceHit linearly scans shapes for the closest hit, the same
// contract a KDTree provides, used here as the reference to check the
// tree's traversal against.
func bruteForceHit(shapes []Shape, ray core.Ray, tMin, tMax float64) (float64, bool) {
	best := tMax
	found := false
	for _, s := range shapes {
		if hit, ok := s.Hit(ray, tMin, best); ok {
			best = hit.T
			found = true
		}
	}
	return best, found
}

func randomSpheres(n int, seed int64) []Shape {
	rng := rand.New(rand.NewSource(seed))
	shapes := make([]Shape, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(
			rng.Float64()*40-20,
			rng.Float64()*40-20,
			rng.Float64()*40-20,
		)
		radius := 0.3 + rng.Float64()*1.2
		shapes[i] = NewSphere(center, radius, testMaterial())
	}
	return shapes
}

func TestKDTree_MatchesBruteForce_Median(t *testing.T) {
	shapes := randomSpheres(200, 1)
	tree := NewKDTree(shapes, 4, 20, SplitMedian)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(rng.Float64()*60-30, rng.Float64()*60-30, rng.Float64()*60-30)
		dir := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if dir.IsZero() {
			continue
		}
		ray := core.NewRay(origin, dir)

		wantT, wantHit := bruteForceHit(shapes, ray, 1e-4, 1e6)
		gotHit, gotOk := tree.Hit(ray, 1e-4, 1e6)

		if gotOk != wantHit {
			t.Fatalf("ray %d: KDTree hit=%v, brute force hit=%v", i, gotOk, wantHit)
		}
		if wantHit && (gotHit.T-wantT) > 1e-6 {
			t.Fatalf("ray %d: KDTree T=%f, brute force T=%f", i, gotHit.T, wantT)
		}
	}
}

func TestKDTree_MatchesBruteForce_SAH(t *testing.T) {
	shapes := randomSpheres(80, 3)
	tree := NewKDTree(shapes, 4, 20, SplitSAH)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(rng.Float64()*60-30, rng.Float64()*60-30, rng.Float64()*60-30)
		dir := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if dir.IsZero() {
			continue
		}
		ray := core.NewRay(origin, dir)

		wantT, wantHit := bruteForceHit(shapes, ray, 1e-4, 1e6)
		gotHit, gotOk := tree.Hit(ray, 1e-4, 1e6)

		if gotOk != wantHit {
			t.Fatalf("ray %d: KDTree hit=%v, brute force hit=%v", i, gotOk, wantHit)
		}
		if wantHit && (gotHit.T-wantT) > 1e-6 {
			t.Fatalf("ray %d: KDTree T=%f, brute force T=%f", i, gotHit.T, wantT)
		}
	}
}

func TestKDTree_SelfHitSuppression(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	tree := NewKDTree([]Shape{sphere}, 4, 20, SplitMedian)

	// A ray spawned from the sphere's own surface, tagged with it and aimed
	// inward, geometrically hits the far side at t=2; the tree must suppress
	// that hit because it is on the spawning primitive.
	ray := core.NewSpawnedRay(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), sphere)

	if _, ok := tree.Hit(ray, 1e-4, 1e6); ok {
		t.Error("expected the spawning primitive to be suppressed as a self-hit")
	}
}

func TestKDTree_EmptyTreeNeverHits(t *testing.T) {
	tree := NewKDTree(nil, 4, 20, SplitMedian)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if _, ok := tree.Hit(ray, 1e-4, 1e6); ok {
		t.Error("expected an empty tree to never report a hit")
	}
}

func TestKDTree_LeafCollapseOnDegenerateSplit(t *testing.T) {
	// All spheres share the same center, so every center-based split puts
	// everything on one side; the tree must collapse to a leaf instead of
	// recursing forever.
	shapes := make([]Shape, 10)
	for i := range shapes {
		shapes[i] = NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	}
	tree := NewKDTree(shapes, 4, 20, SplitMedian)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, ok := tree.Hit(ray, 1e-4, 1e6); !ok {
		t.Error("expected a hit against the degenerate, co-located sphere set")
	}
}
