// Package material defines the surface appearance data attached to every
// primitive and the record produced when a ray hits one.
package material

import (
	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/shading"
)

// Material describes the appearance and optical properties of a surface:
// a base color, the ambient/specular weighting the shading model applies
// to it, a reflection coefficient (Kr), a transmission coefficient (Kt),
// and an index of refraction (Eta) used when Kt > 0.
type Material struct {
	Color     core.Vec3 // Base (diffuse) surface color
	Ambient   core.Vec3 // Ambient color factor
	Specular  core.Vec3 // Specular color factor
	Shininess float64   // Specular exponent
	Kr        float64   // Reflection coefficient, 0 for fully matte
	Kt        float64   // Transmission coefficient, 0 for fully opaque
	Eta       float64   // Index of refraction, used only when Kt > 0
	Shading   shading.Model

	// AmbientK, DiffuseK, SpecularK weight the three shading.Params terms
	// the integrator composes local illumination from. Zero value for all
	// three is the degenerate all-black material, so NewMaterial defaults
	// them to 1 (full weight on every term).
	AmbientK  float64
	DiffuseK  float64
	SpecularK float64
}

// NewMaterial returns a Material with AmbientK/DiffuseK/SpecularK defaulted
// to 1 (full weight), Ambient to 0.1 gray, Specular to white, Shininess to
// 32, and Shading defaulting to shading.NewPhong() when model is nil.
func NewMaterial(color core.Vec3, kr, kt, eta float64, model shading.Model) *Material {
	if model == nil {
		model = shading.NewPhong()
	}
	return &Material{
		Color:     color,
		Ambient:   core.NewVec3(0.1, 0.1, 0.1),
		Specular:  core.NewVec3(1, 1, 1),
		Shininess: 32,
		Kr:        kr,
		Kt:        kt,
		Eta:       eta,
		Shading:   model,
		AmbientK:  1,
		DiffuseK:  1,
		SpecularK: 1,
	}
}

// ShadingParams returns the shading.Params this material contributes to an
// Illuminate call, before the integrator selectively zeroes the ambient,
// diffuse, or specular weight for the two-pass local illumination split of
// the shading integrator.
func (m Material) ShadingParams() shading.Params {
	return shading.Params{
		Ambient:   m.Ambient,
		Specular:  m.Specular,
		Shininess: m.Shininess,
		AmbientK:  m.AmbientK,
		DiffuseK:  m.DiffuseK,
		SpecularK: m.SpecularK,
	}
}

// IsReflective reports whether rays hitting this material should spawn a
// reflection ray.
func (m Material) IsReflective() bool {
	return m.Kr > 0
}

// IsTransparent reports whether rays hitting this material should spawn a
// refraction ray.
func (m Material) IsTransparent() bool {
	return m.Kt > 0
}

// Hit carries the result of a successful ray-primitive intersection: the
// ray parameter, the world-space point, the unit normal oriented against the
// incoming ray (see SetFaceNormal), texture coordinates, the material to shade with, and a back-reference to the
// primitive that produced it. The back-reference is typed as an opaque
// value (rather than a geometry.Shape) so this package never needs to
// import the geometry package that already imports this one; callers that
// need it only ever use it for identity comparison against a spawned ray's
// origin primitive.
type Hit struct {
	T         float64
	Point     core.Vec3
	Normal    core.Vec3
	UV        core.Vec2
	FrontFace bool
	Primitive any
	Mat       *Material
}

// SetFaceNormal orients Normal to face against the incoming ray and records
// whether the hit was on the outward-facing side of the surface.
func (h *Hit) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
