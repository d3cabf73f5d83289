// Package integrator implements the recursive Whitted shading integrator:
// local illumination, hard shadows with transparency attenuation, mirror
// reflection, and Fresnel-weighted refraction, bounded by a recursion cap.
package integrator

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/material"
	"github.com/finch-ray/go-whitted-raytracer/pkg/world"
)

var black = core.NewVec3(0, 0, 0)

// Tracer evaluates radiance along a ray against a world, recursively
// spawning shadow, reflection, and refraction rays up to Config.MaxDepth.
// It holds no per-ray state, so one Tracer can be reused read-only across
// every pixel of a render.
type Tracer struct {
	World *world.World
	Cfg   Config
}

// New creates a Tracer over w using cfg.
func New(w *world.World, cfg Config) *Tracer {
	return &Tracer{World: w, Cfg: cfg}
}

// Trace returns the radiance arriving along ray, starting recursion at
// depth 1. A depth beyond Cfg.MaxDepth, or a ray that hits nothing, both
// return the world's background color; otherwise the result is clamped to
// [0, 1] per channel.
func (tr *Tracer) Trace(ray core.Ray, depth int) core.Vec3 {
	if depth > tr.Cfg.MaxDepth {
		return tr.World.Background
	}

	hit, ok := tr.World.Intersect(ray, tr.Cfg.Epsilon, math.Inf(1))
	if !ok {
		return tr.World.Background
	}

	return tr.shade(ray, hit, depth).Clamp01()
}

// shade computes the composed local + reflected + refracted radiance at
// hit.
func (tr *Tracer) shade(ray core.Ray, hit *material.Hit, depth int) core.Vec3 {
	mat := hit.Mat
	P := hit.Point
	N := hit.Normal

	view := ray.Origin.Subtract(P).Normalize()
	toLight := tr.World.Light.Position.Subtract(P)
	lightDist := toLight.Length()
	lightDir := toLight.Multiply(1 / lightDist)

	shadowFactor := tr.shadowFactor(P, N, lightDir, lightDist, hit.Primitive)

	atten := 1.0
	if depth != 1 {
		atten = 1 - mat.Kt
	}

	adParams := mat.ShadingParams()
	adParams.SpecularK = 0
	adLocal := mat.Shading.Illuminate(mat.Color, tr.World.Light.Color, N, lightDir, view, adParams, P).
		Multiply(shadowFactor * atten)

	specParams := mat.ShadingParams()
	specParams.AmbientK = 0
	specParams.DiffuseK = 0
	specLocal := mat.Shading.Illuminate(mat.Color, tr.World.Light.Color, N, lightDir, view, specParams, P).
		Multiply(shadowFactor)

	var local core.Vec3
	if mat.Kt > 0 {
		local = adLocal.Multiply(1 - mat.Kt).Add(specLocal.Multiply(mat.Kt))
	} else {
		local = adLocal.Add(specLocal)
	}

	refl, krEffective, refr := tr.reflectAndRefract(ray, hit, depth)
	color := local.Add(refl.Multiply(krEffective)).Add(refr.Multiply(mat.Kt))
	return color
}

// shadowFactor casts a shadow ray toward the light and reports how much of
// the direct term survives: 1 if nothing is hit before the light, 0 if the
// nearest blocker is opaque, or 1-Kt for a single transparent blocker.
// Only the nearest blocker attenuates; stacked transparent blockers are
// not composed.
func (tr *Tracer) shadowFactor(P, N, lightDir core.Vec3, lightDist float64, self any) float64 {
	shadowRay := core.NewSpawnedRay(P.Add(N.Multiply(tr.Cfg.Epsilon)), lightDir, self)
	blocker, ok := tr.World.Intersect(shadowRay, tr.Cfg.Epsilon, lightDist)
	if !ok {
		return 1.0
	}
	if blocker.Mat.Kt == 0 {
		return 0.0
	}
	return 1 - blocker.Mat.Kt
}

// reflectAndRefract handles the recursive bounces. For an opaque
// reflective surface (Kr>0, Kt==0) it casts one reflection ray and
// reports krEffective=Kr. For a transparent surface (Kt>0) it always
// casts the physical reflection ray (the Fresnel term), attempts Snell
// refraction, and reports krEffective=F (or 1 on total internal
// reflection). Composition ("shade") applies krEffective and Kt
// uniformly: color += refl*krEffective + refr*Kt.
func (tr *Tracer) reflectAndRefract(ray core.Ray, hit *material.Hit, depth int) (refl core.Vec3, krEffective float64, refr core.Vec3) {
	mat := hit.Mat

	if mat.Kt <= 0 {
		if mat.Kr <= 0 {
			return black, 0, black
		}
		reflectDir := ray.Direction.Reflect(hit.Normal)
		origin := hit.Point.Add(hit.Normal.Multiply(tr.Cfg.Epsilon))
		reflectRay := core.NewSpawnedRay(origin, reflectDir, hit.Primitive)
		return tr.Trace(reflectRay, depth+1), mat.Kr, black
	}

	// hit.Normal is already oriented against ray.Direction (SetFaceNormal,
	// called by every geometry Hit()), so re-deriving entering/exiting from
	// N.Dot(ray.Direction) would always see the same sign. FrontFace is the
	// side-of-the-surface bit SetFaceNormal already computed; read it
	// instead of re-deriving it from an orientation that's been erased.
	N := hit.Normal
	n1, n2 := 1.0, mat.Eta
	if !hit.FrontFace {
		n1, n2 = mat.Eta, 1.0
	}
	cosI := -N.Dot(ray.Direction)
	eta := n1 / n2

	reflectDir := ray.Direction.Reflect(N)
	reflectOrigin := hit.Point.Add(N.Multiply(tr.Cfg.Epsilon))
	reflectRay := core.NewSpawnedRay(reflectOrigin, reflectDir, hit.Primitive)
	reflColor := tr.Trace(reflectRay, depth+1)

	if material.CannotRefract(cosI, eta) {
		return reflColor, 1, black
	}

	refractDir := material.Refract(ray.Direction, N, eta)
	refractOrigin := hit.Point.Add(refractDir.Multiply(tr.Cfg.Epsilon))
	refractRay := core.NewSpawnedRay(refractOrigin, refractDir, hit.Primitive)
	refrColor := tr.Trace(refractRay, depth+1)

	f := material.Reflectance(cosI, eta)
	return reflColor, f, refrColor.Multiply(1 - f)
}
