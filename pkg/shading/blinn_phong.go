package shading

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
)

// BlinnPhong is a variant of Phong that measures the specular term against
// the half-vector between the light and view directions instead of the
// mirror-reflected light direction. It is cheaper per sample and avoids the
// reflected-vector construction Phong needs.
type BlinnPhong struct{}

// NewBlinnPhong creates a Blinn-Phong shading model.
func NewBlinnPhong() *BlinnPhong {
	return &BlinnPhong{}
}

// Illuminate returns ambient + diffuse + specular contributions, using the
// half-vector for the specular term. hitPoint is unused.
func (b *BlinnPhong) Illuminate(baseColor, lightColor core.Vec3, normal, lightDir, viewDir core.Vec3, params Params, hitPoint core.Vec3) core.Vec3 {
	ambient := params.Ambient.MultiplyVec(baseColor).Multiply(params.AmbientK)

	diffuseIntensity := math.Max(normal.Dot(lightDir), 0)
	diffuse := baseColor.MultiplyVec(lightColor).Multiply(diffuseIntensity * params.DiffuseK)

	halfVec := lightDir.Add(viewDir).Normalize()
	specularIntensity := math.Pow(math.Max(normal.Dot(halfVec), 0), params.Shininess)
	specular := params.Specular.MultiplyVec(lightColor).Multiply(specularIntensity * params.SpecularK)

	return ambient.Add(diffuse).Add(specular)
}
