package geometry

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Cylinder is a finite, capped cylinder. Internally it is built along the
// local Y axis and rotated 90° about X into world space, so a Cylinder
// centered at the origin with no further placement stands along world Z;
// Center simply translates that canonical frame.
type Cylinder struct {
	Center core.Vec3
	Radius float64
	Height float64
	Mat    *material.Material

	halfHeight float64
}

// NewCylinder creates a new capped cylinder.
func NewCylinder(center core.Vec3, radius, height float64, mat *material.Material) *Cylinder {
	return &Cylinder{
		Center:     center,
		Radius:     radius,
		Height:     height,
		Mat:        mat,
		halfHeight: height / 2,
	}
}

// localFromWorld applies the inverse of the 90°-about-X rotation: it maps a
// world-space direction (already translated relative to Center, if it is a
// point) into the cylinder's local Y-axis-aligned frame.
func localFromWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(v.X, v.Z, -v.Y)
}

// worldFromLocal applies the 90°-about-X rotation, mapping a local-frame
// vector back into world space.
func worldFromLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(v.X, -v.Z, v.Y)
}

// Hit tests a ray against the cylinder's side surface and both caps,
// entirely in the cylinder's local frame, then rotates the result back.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	o := localFromWorld(ray.Origin.Subtract(c.Center))
	d := localFromWorld(ray.Direction)

	const eps = 1e-6
	bestT := math.Inf(1)
	haveHit := false
	var bestLocalPoint core.Vec3
	var bestLocalNormal core.Vec3

	// Side surface: quadratic in the local X/Z plane, local Y is the axis.
	a := d.X*d.X + d.Z*d.Z
	b := 2 * (o.X*d.X + o.Z*d.Z)
	cc := o.X*o.X + o.Z*o.Z - c.Radius*c.Radius

	if a > eps || a < -eps {
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtDisc := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sqrtDisc) / (2 * a), (-b + sqrtDisc) / (2 * a)} {
				if t < tMin || t > tMax {
					continue
				}
				y := o.Y + d.Y*t
				if y < -c.halfHeight || y > c.halfHeight {
					continue
				}
				if t < bestT {
					bestT = t
					haveHit = true
					localPoint := core.NewVec3(o.X+d.X*t, y, o.Z+d.Z*t)
					bestLocalPoint = localPoint
					bestLocalNormal = core.NewVec3(localPoint.X, 0, localPoint.Z).Multiply(1 / c.Radius)
				}
			}
		}
	}

	// Caps: y = ±halfHeight planes.
	if math.Abs(d.Y) > eps {
		for _, sign := range [2]float64{-1, 1} {
			capY := sign * c.halfHeight
			t := (capY - o.Y) / d.Y
			if t < tMin || t > tMax || t >= bestT {
				continue
			}
			x := o.X + d.X*t
			z := o.Z + d.Z*t
			if x*x+z*z > c.Radius*c.Radius {
				continue
			}
			bestT = t
			haveHit = true
			bestLocalPoint = core.NewVec3(x, capY, z)
			bestLocalNormal = core.NewVec3(0, sign, 0)
		}
	}

	if !haveHit {
		return nil, false
	}

	worldPoint := worldFromLocal(bestLocalPoint).Add(c.Center)
	worldNormal := worldFromLocal(bestLocalNormal).Normalize()

	v := (bestLocalPoint.Y + c.halfHeight) / c.Height
	u := (math.Atan2(bestLocalPoint.Z, bestLocalPoint.X) + math.Pi) / (2 * math.Pi)
	uv := core.NewVec2(u, v)

	hit := &material.Hit{
		T:         bestT,
		Point:     worldPoint,
		UV:        uv,
		Mat:       c.Mat,
		Primitive: c,
	}
	hit.SetFaceNormal(ray, worldNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box by transforming the 8
// corners of the local-frame bounding box into world space.
func (c *Cylinder) BoundingBox() core.AABB {
	r, h := c.Radius, c.halfHeight

	var corners [8]core.Vec3
	i := 0
	for _, x := range [2]float64{-r, r} {
		for _, y := range [2]float64{-h, h} {
			for _, z := range [2]float64{-r, r} {
				corners[i] = worldFromLocal(core.NewVec3(x, y, z)).Add(c.Center)
				i++
			}
		}
	}

	return core.NewAABBFromPoints(corners[:]...)
}
