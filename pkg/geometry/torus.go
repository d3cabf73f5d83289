package geometry

import (
	"math"
	"math/cmplx"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
)

// Torus is a ring torus centered at Center, lying in the world XZ plane
// with its tube axis along Y: MajorRadius is the distance from the center
// of the tube to the center of the torus, MinorRadius is the tube radius.
type Torus struct {
	Center      core.Vec3
	MajorRadius float64
	MinorRadius float64
	Mat         *material.Material
}

// NewTorus creates a new torus.
func NewTorus(center core.Vec3, majorRadius, minorRadius float64, mat *material.Material) *Torus {
	return &Torus{Center: center, MajorRadius: majorRadius, MinorRadius: minorRadius, Mat: mat}
}

// Hit solves the quartic ray-torus intersection and, if a valid root
// exists, computes the gradient normal and (u, v) surface coordinates.
func (tr *Torus) Hit(ray core.Ray, tMin, tMax float64) (*material.Hit, bool) {
	o := ray.Origin.Subtract(tr.Center)
	d := ray.Direction
	R, r := tr.MajorRadius, tr.MinorRadius

	g := d.Dot(d)
	h := 2 * o.Dot(d)
	i := o.Dot(o) + R*R - r*r

	coeffs := [5]float64{
		g * g,
		2 * g * h,
		2*g*i + h*h - 4*R*R*(d.X*d.X+d.Z*d.Z),
		2*h*i - 8*R*R*(d.X*o.X+d.Z*o.Z),
		i*i - 4*R*R*(o.X*o.X+o.Z*o.Z),
	}

	root, ok := smallestPositiveQuarticRoot(coeffs, 1e-5)
	if !ok || root < tMin || root > tMax {
		return nil, false
	}

	point := ray.At(root)
	loc := point.Subtract(tr.Center)
	x, y, z := loc.X, loc.Y, loc.Z
	sum2 := x*x + y*y + z*z + R*R - r*r
	outwardNormal := core.NewVec3(
		4*x*sum2-8*R*R*x,
		4*y*sum2,
		4*z*sum2-8*R*R*z,
	).Normalize()

	theta := math.Atan2(z, x)
	u := math.Mod((theta+math.Pi)/(2*math.Pi), 1.0)

	cx := R * math.Cos(theta)
	cz := R * math.Sin(theta)
	vx := x - cx
	vz := z - cz
	phi := math.Atan2(y, math.Hypot(vx, vz))
	v := phi/(2*math.Pi) + 0.5

	const seamEps = 1e-5
	u = math.Max(seamEps, math.Min(1-seamEps, u))
	v = math.Max(seamEps, math.Min(1-seamEps, v))

	hit := &material.Hit{
		T:         root,
		Point:     point,
		UV:        core.NewVec2(u, v),
		Mat:       tr.Mat,
		Primitive: tr,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned box (R+r in X/Z, r in Y).
func (tr *Torus) BoundingBox() core.AABB {
	R, r := tr.MajorRadius, tr.MinorRadius
	extentXZ := R + r
	min := tr.Center.Subtract(core.NewVec3(extentXZ, r, extentXZ))
	max := tr.Center.Add(core.NewVec3(extentXZ, r, extentXZ))
	return core.NewAABB(min, max)
}

// smallestPositiveQuarticRoot finds the smallest real root greater than
// minT of a quartic with coefficients [c4, c3, c2, c1, c0] (c4*x^4 + ... +
// c0), using the Durand-Kerner method. It iterates from a fixed set of
// starting points in the complex plane since the polynomial's coefficients
// change every call and a good initial guess isn't available.
func smallestPositiveQuarticRoot(c [5]float64, minT float64) (float64, bool) {
	lead := c[0]
	if lead == 0 {
		return 0, false
	}

	// Normalize so the leading coefficient is 1.
	b1 := c[1] / lead
	b2 := c[2] / lead
	b3 := c[3] / lead
	b4 := c[4] / lead

	poly := func(x complex128) complex128 {
		return x*x*x*x + complex(b1, 0)*x*x*x + complex(b2, 0)*x*x + complex(b3, 0)*x + complex(b4, 0)
	}

	roots := [4]complex128{
		complex(0.4, 0.9), complex(-0.6, 0.7), complex(0.8, -0.5), complex(-0.3, -0.8),
	}

	for iter := 0; iter < 200; iter++ {
		maxDelta := 0.0
		for k := 0; k < 4; k++ {
			denom := complex(1, 0)
			for j := 0; j < 4; j++ {
				if j == k {
					continue
				}
				denom *= roots[k] - roots[j]
			}
			if cmplx.Abs(denom) < 1e-14 {
				continue
			}
			delta := poly(roots[k]) / denom
			roots[k] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}
		if maxDelta < 1e-12 {
			break
		}
	}

	best := math.Inf(1)
	found := false
	for _, root := range roots {
		if math.Abs(imag(root)) > 1e-6 {
			continue
		}
		re := real(root)
		if re <= minT {
			continue
		}
		if re < best {
			best = re
			found = true
		}
	}

	return best, found
}
