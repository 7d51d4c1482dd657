package render

// Material describes how a surface responds to light.
// It is a value type; cubes hand out per-hit copies with the diffuse
// color replaced by a texture sample.
type Material struct {
	// Albedo splits the response into diffuse ([0]) and specular ([1]) weights.
	Albedo [2]float64
	// Specular is the Phong specular exponent.
	Specular float64
	// Transparency is carried for scene description but not used by shading.
	Transparency float64
	// Reflectivity is the Fresnel base reflectance f0 and the reflection
	// blend weight.
	Reflectivity float64
	// Diffuse is the base surface color.
	Diffuse Color
	// FresnelColor is the tint blended in by the reflection term.
	FresnelColor Color
}

// NewMaterial creates a material.
func NewMaterial(albedo [2]float64, specular, transparency, reflectivity float64, diffuse, fresnel Color) Material {
	return Material{
		Albedo:       albedo,
		Specular:     specular,
		Transparency: transparency,
		Reflectivity: reflectivity,
		Diffuse:      diffuse,
		FresnelColor: fresnel,
	}
}

// withDiffuse returns a copy of m with the diffuse color replaced,
// keeping every other field.
func (m Material) withDiffuse(c Color) Material {
	m.Diffuse = c
	return m
}
