package render

import (
	"math"

	"github.com/taigrr/biome/pkg/math3d"
)

// shadowBias offsets shadow-ray origins off the surface to avoid
// self-intersection acne.
const shadowBias = 1e-4

// Light is a point light. The lighting pass treats lights as read-only;
// the animation driver may move them between frames.
type Light struct {
	Position  math3d.Vec3
	Color     Color
	Intensity float64
}

// NewLight creates a point light.
func NewLight(position math3d.Vec3, color Color, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}

// CastShadow returns how strongly the light is occluded at the given
// surface point, in [0,1]. 0 means fully lit. The shadow ray starts a
// small bias off the surface, flipped against the normal when the light
// sits behind the surface, and the first occluder closer than the light
// decides the attenuation: nearer occluders shade harder. Only a single
// occluder is considered.
func CastShadow(point, normal math3d.Vec3, light Light, objects []*Cube) float64 {
	toLight := light.Position.Sub(point)
	lightDir := toLight.Normalize()
	lightDistance := toLight.Len()

	offset := normal.Scale(shadowBias)
	var origin math3d.Vec3
	if lightDir.Dot(normal) < 0 {
		origin = point.Sub(offset)
	} else {
		origin = point.Add(offset)
	}

	for _, object := range objects {
		hit, ok := object.RayIntersect(origin, lightDir)
		if ok && hit.Distance < lightDistance {
			ratio := hit.Distance / lightDistance
			return 1 - math.Min(ratio*ratio, 1)
		}
	}
	return 0
}

// CalculateLighting shades a surface point against every light: shadow
// attenuation, Lambert diffuse weighted by albedo[0] and filtered by the
// light's color, and a white Phong specular weighted by albedo[1].
// Contributions accumulate by straight addition; the framebuffer packing
// saturates out-of-range channels.
func CalculateLighting(point, normal, viewDir math3d.Vec3, material Material, lights []Light, objects []*Cube) Color {
	finalColor := Color{}

	for _, light := range lights {
		shadowIntensity := CastShadow(point, normal, light, objects)
		lightIntensity := light.Intensity * (1 - shadowIntensity)
		lightDir := light.Position.Sub(point).Normalize()
		reflectDir := lightDir.Negate().Reflect(normal)

		diffuseIntensity := math.Max(0, normal.Dot(lightDir))
		diffuse := material.Diffuse.Mul(light.Color).Scale(diffuseIntensity * material.Albedo[0]).Scale(lightIntensity)

		specularIntensity := math.Pow(math.Max(0, reflectDir.Dot(viewDir)), material.Specular)
		specular := RGB(255, 255, 255).Scale(specularIntensity * material.Albedo[1]).Scale(lightIntensity)

		finalColor = finalColor.Add(diffuse).Add(specular)
	}

	return finalColor
}
