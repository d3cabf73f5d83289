package shading

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
)

// Phong implements the classic ambient + diffuse + specular reflection
// model, reflecting the light direction about the normal and measuring
// the angle to the view direction.
type Phong struct{}

// NewPhong creates a Phong shading model.
func NewPhong() *Phong {
	return &Phong{}
}

// Illuminate returns ambient + diffuse + specular contributions summed
// per color channel. hitPoint is unused -- Phong shades purely from the
// vectors and material weights passed in.
func (p *Phong) Illuminate(baseColor, lightColor core.Vec3, normal, lightDir, viewDir core.Vec3, params Params, hitPoint core.Vec3) core.Vec3 {
	ambient := params.Ambient.MultiplyVec(baseColor).Multiply(params.AmbientK)

	diffuseIntensity := math.Max(normal.Dot(lightDir), 0)
	diffuse := baseColor.MultiplyVec(lightColor).Multiply(diffuseIntensity * params.DiffuseK)

	reflected := normal.Multiply(2 * normal.Dot(lightDir)).Subtract(lightDir)
	specularIntensity := math.Pow(math.Max(reflected.Dot(viewDir), 0), params.Shininess)
	specular := params.Specular.MultiplyVec(lightColor).Multiply(specularIntensity * params.SpecularK)

	return ambient.Add(diffuse).Add(specular)
}
