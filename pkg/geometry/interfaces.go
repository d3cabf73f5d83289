// Package geometry implements the ray-primitive intersection kernels
// (triangle, sphere, cuboid, cylinder, torus) and the KD-tree that
// accelerates intersection queries against many of them.
package geometry

import (
	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Shape is anything a ray can be tested against: a single primitive or an
// acceleration structure over many of them.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool)
	BoundingBox() core.AABB
}
