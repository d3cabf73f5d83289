package geometry

import (
	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
type Triangle struct {
	V0, V1, V2    core.Vec3 // The three vertices
	UV0, UV1, UV2 core.Vec2 // Per-vertex texture coordinates (optional)
	hasUVs        bool
	Mat           *material.Material
	normal        core.Vec3
	bbox          core.AABB
}

// NewTriangle creates a new triangle from three vertices.
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Mat: mat}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithUVs creates a new triangle with per-vertex UV coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat *material.Material) *Triangle {
	t := &Triangle{
		V0: v0, V1: v1, V2: v2,
		UV0: uv0, UV1: uv1, UV2: uv2,
		hasUVs: true,
		Mat:    mat,
	}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	// Parallel-ray rejection threshold.
	const epsilon = 1e-6

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitPoint := ray.At(tParam)

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	hit := &material.Hit{
		T:         tParam,
		Point:     hitPoint,
		UV:        uv,
		Mat:       t.Mat,
		Primitive: t,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's (unoriented) geometric normal.
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
