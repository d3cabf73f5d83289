package material

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
)

// Refract applies Snell's law to a unit incident direction uv about a unit
// normal n, given the ratio of refractive indices (incident over
// transmitted). The caller must already have checked for total internal
// reflection with CannotRefract.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// CannotRefract reports whether Snell's law has no real solution at this
// angle and ratio, i.e. total internal reflection.
func CannotRefract(cosTheta, etaiOverEtat float64) bool {
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	return etaiOverEtat*sinTheta > 1.0
}

// Reflectance computes the Fresnel reflectance using Schlick's
// approximation: the fraction of light reflected rather than transmitted
// at the given angle of incidence and index-of-refraction ratio.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
