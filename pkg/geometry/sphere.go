package geometry

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    *material.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Hit tests if a ray intersects with the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi

	// Nudge u off the {0,1} seam so texture lookups never straddle the wrap.
	const seamEps = 1e-5
	u := math.Max(seamEps, math.Min(1-seamEps, phi/(2.0*math.Pi)))
	uv := core.NewVec2(u, theta/math.Pi)

	hit := &material.Hit{
		T:         root,
		Point:     point,
		UV:        uv,
		Mat:       s.Mat,
		Primitive: s,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere.
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
