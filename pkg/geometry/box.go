package geometry

import (
	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Box represents an axis-aligned cuboid, realized internally as 12
// triangles (two per face) with per-face planar UVs. Its Hit is the
// min-t over those triangles, but the returned hit substitutes the Box
// itself as the owning primitive so self-intersection suppression works
// at the cuboid level rather than the individual-triangle level.
type Box struct {
	Center    core.Vec3 // Center point of the box
	HalfSize  core.Vec3 // Half-extent along each axis
	Mat       *material.Material
	triangles [12]*Triangle
	bbox      core.AABB
}

// NewBox creates a new axis-aligned box given its center and half-extents.
func NewBox(center, halfSize core.Vec3, mat *material.Material) *Box {
	b := &Box{Center: center, HalfSize: halfSize, Mat: mat}
	b.generateTriangles()
	return b
}

// generateTriangles builds the 12 triangles (2 per face) of the cuboid,
// each carrying its own planar UVs in [0,1]^2, and caches the bounding box.
func (b *Box) generateTriangles() {
	c, s := b.Center, b.HalfSize

	corner := func(sx, sy, sz float64) core.Vec3 {
		return core.NewVec3(c.X+sx*s.X, c.Y+sy*s.Y, c.Z+sz*s.Z)
	}

	// 8 corners of the box.
	v := [8]core.Vec3{
		corner(-1, -1, -1), corner(1, -1, -1), corner(1, 1, -1), corner(-1, 1, -1),
		corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1),
	}

	uv00 := core.NewVec2(0, 0)
	uv10 := core.NewVec2(1, 0)
	uv11 := core.NewVec2(1, 1)
	uv01 := core.NewVec2(0, 1)

	// Each face as a quad of 4 corner indices, wound counter-clockwise
	// when viewed from outside the box, split into two triangles.
	faces := [6][4]int{
		{4, 5, 6, 7}, // +Z (front)
		{1, 0, 3, 2}, // -Z (back)
		{5, 1, 2, 6}, // +X (right)
		{0, 4, 7, 3}, // -X (left)
		{3, 7, 6, 2}, // +Y (top)
		{4, 0, 1, 5}, // -Y (bottom)
	}

	i := 0
	for _, f := range faces {
		a, bb, cc, d := v[f[0]], v[f[1]], v[f[2]], v[f[3]]
		b.triangles[i] = NewTriangleWithUVs(a, bb, cc, uv00, uv10, uv11, b.Mat)
		i++
		b.triangles[i] = NewTriangleWithUVs(a, cc, d, uv00, uv11, uv01, b.Mat)
		i++
	}

	b.bbox = core.NewAABBFromPoints(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
}

// Hit tests the ray against the 12 constituent triangles and returns the
// closest hit, with the hit's Primitive rewritten to the Box itself.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	var closest *material.Hit
	closestT := tMax

	for _, tri := range b.triangles {
		if hit, ok := tri.Hit(ray, tMin, closestT); ok {
			closestT = hit.T
			closest = hit
		}
	}
	if closest == nil {
		return nil, false
	}
	closest.Primitive = b
	return closest, true
}

// BoundingBox returns the axis-aligned bounding box for this box.
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
