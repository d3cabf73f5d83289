package core

import "math"

// AABB represents an axis-aligned bounding box. An AABB built from no
// points is the degenerate box at the origin.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB using the slab method. A
// direction component of exactly zero divides to a signed IEEE 754
// infinity, which keeps the per-axis interval correct for rays parallel to
// a slab. A parallel ray whose origin lies exactly on a slab plane (where
// 0*Inf gives NaN) counts as inside that slab, so a ray grazing the box's
// surface hits it.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	tEnter, tExit, hit := aabb.Slab(ray)
	if !hit {
		return false
	}
	return math.Max(tEnter, tMin) <= math.Min(tExit, tMax)
}

// Slab runs the three-axis slab test and returns the entry/exit distances
// along with whether the ray hits the box at all (tExit > max(tEnter, 0)).
// Hit, and through it the KD-tree traversal's node test, is built on this.
func (aabb AABB) Slab(ray Ray) (tEnter, tExit float64, hit bool) {
	tEnter = math.Inf(-1)
	tExit = math.Inf(1)

	mins := [3]float64{aabb.Min.X, aabb.Min.Y, aabb.Min.Z}
	maxs := [3]float64{aabb.Max.X, aabb.Max.Y, aabb.Max.Z}
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		invDir := 1.0 / dirs[axis]
		t1 := (mins[axis] - origins[axis]) * invDir
		t2 := (maxs[axis] - origins[axis]) * invDir
		if math.IsNaN(t1) || math.IsNaN(t2) {
			// Parallel ray with its origin on a slab plane: it lies within
			// this slab, so the axis puts no limit on the interval.
			continue
		}
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
	}

	return tEnter, tExit, tExit > math.Max(tEnter, 0)
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB, used by the SAH split
// cost.
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes).
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains returns true if p lies within the box (inclusive).
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// ClosestPoint returns the point on (or inside) the box closest to p.
func (aabb AABB) ClosestPoint(p Vec3) Vec3 {
	clampAxis := func(v, lo, hi float64) float64 {
		return math.Max(lo, math.Min(v, hi))
	}
	return Vec3{
		X: clampAxis(p.X, aabb.Min.X, aabb.Max.X),
		Y: clampAxis(p.Y, aabb.Min.Y, aabb.Max.Y),
		Z: clampAxis(p.Z, aabb.Min.Z, aabb.Max.Z),
	}
}
