// Package shading computes the local (direct) illumination contribution at
// a surface point, independent of the recursive reflection/refraction logic
// that combines it with global effects.
package shading

import "github.com/finch-ray/go-whitted-raytracer/pkg/core"

// Params carries the per-material weighting factors a Model needs beyond
// the base surface color, mirroring the ambient/specular channels of the
// original material definition.
type Params struct {
	Ambient   core.Vec3 // Ambient color factor
	Specular  core.Vec3 // Specular color factor
	Shininess float64   // Specular exponent
	AmbientK  float64   // Ambient contribution weight
	DiffuseK  float64   // Diffuse contribution weight
	SpecularK float64   // Specular contribution weight
}

// Model computes local illumination at a surface point given the base
// surface color, the incoming light color, the surface normal, the
// direction to the light, the direction back to the viewer, the weighting
// Params, and the world-space hit point. hitPoint is there for adapters
// that need surface position -- e.g. a procedural texture keyed off world
// coordinates -- even though neither Model implemented here uses it. All
// direction vectors are expected to be unit length.
type Model interface {
	Illuminate(baseColor, lightColor core.Vec3, normal, lightDir, viewDir core.Vec3, params Params, hitPoint core.Vec3) core.Vec3
}
