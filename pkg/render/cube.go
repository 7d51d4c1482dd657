package render

import (
	"math"

	"github.com/taigrr/biome/pkg/math3d"
)

// faceEpsilon is the tolerance used to match a hit point against a cube
// face boundary.
const faceEpsilon = 1e-4

// Hit is the result of a ray/cube intersection. Distance is the ray
// parameter of the entry point; Material is the cube's material with the
// diffuse color replaced by the sampled texture color for the hit face.
type Hit struct {
	Point    math3d.Vec3
	Normal   math3d.Vec3
	Distance float64
	Material Material
}

// Cube is the scene primitive: an axis-aligned box with a material and
// up to three textures. The four side faces (±x and ±z) all draw from the
// single side texture. Min must be component-wise <= Max. Cubes are
// immutable after construction; texture pointers are shared across cubes.
type Cube struct {
	Min, Max math3d.Vec3
	Material Material
	Top      *Texture
	Side     *Texture
	Bottom   *Texture
}

// RayIntersect intersects a ray with the cube using the slab method.
// The direction is expected to be pre-normalized. The second return value
// is false when the ray misses, when the box lies behind the origin, or
// when the origin is inside the box (entry point behind origin counts as
// a miss).
//
// Axis-parallel direction components divide to ±Inf, which the interval
// comparisons handle without special cases.
func (c *Cube) RayIntersect(origin, dir math3d.Vec3) (Hit, bool) {
	tMin := (c.Min.X - origin.X) / dir.X
	tMax := (c.Max.X - origin.X) / dir.X
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}

	tyMin := (c.Min.Y - origin.Y) / dir.Y
	tyMax := (c.Max.Y - origin.Y) / dir.Y
	if tyMin > tyMax {
		tyMin, tyMax = tyMax, tyMin
	}

	if tMin > tyMax || tyMin > tMax {
		return Hit{}, false
	}
	if tyMin > tMin {
		tMin = tyMin
	}
	if tyMax < tMax {
		tMax = tyMax
	}

	tzMin := (c.Min.Z - origin.Z) / dir.Z
	tzMax := (c.Max.Z - origin.Z) / dir.Z
	if tzMin > tzMax {
		tzMin, tzMax = tzMax, tzMin
	}

	if tMin > tzMax || tzMin > tMax {
		return Hit{}, false
	}
	if tzMin > tMin {
		tMin = tzMin
	}

	if tMin < 0 {
		return Hit{}, false
	}

	point := origin.Add(dir.Scale(tMin))

	return Hit{
		Point:    point,
		Normal:   c.normalAt(point),
		Distance: tMin,
		Material: c.Material.withDiffuse(c.faceColor(point)),
	}, true
}

// faceColor classifies which face the hit point lies on and samples the
// face's texture at the per-face UV coordinates. Precedence: top, bottom,
// left/right, then front/back. Front and back reuse the side texture.
func (c *Cube) faceColor(p math3d.Vec3) Color {
	switch {
	case math.Abs(p.Y-c.Max.Y) < faceEpsilon:
		// Top face
		u := (p.X - c.Min.X) / (c.Max.X - c.Min.X)
		v := (p.Z - c.Min.Z) / (c.Max.Z - c.Min.Z)
		return c.Top.Sample(u, v)
	case math.Abs(p.Y-c.Min.Y) < faceEpsilon:
		// Bottom face
		u := (p.X - c.Min.X) / (c.Max.X - c.Min.X)
		v := (p.Z - c.Min.Z) / (c.Max.Z - c.Min.Z)
		return c.Bottom.Sample(u, v)
	case math.Abs(p.X-c.Min.X) < faceEpsilon || math.Abs(p.X-c.Max.X) < faceEpsilon:
		// Left/right faces
		u := (p.Z - c.Min.Z) / (c.Max.Z - c.Min.Z)
		v := (p.Y - c.Min.Y) / (c.Max.Y - c.Min.Y)
		return c.Side.Sample(u, v)
	default:
		// Front/back faces
		u := (p.X - c.Min.X) / (c.Max.X - c.Min.X)
		v := (p.Y - c.Min.Y) / (c.Max.Y - c.Min.Y)
		return c.Side.Sample(u, v)
	}
}

// normalAt derives the outward face normal for a point on the cube
// surface. Boundaries are tested in a fixed order; the first within
// tolerance wins.
func (c *Cube) normalAt(p math3d.Vec3) math3d.Vec3 {
	switch {
	case math.Abs(p.X-c.Min.X) < faceEpsilon:
		return math3d.V3(-1, 0, 0)
	case math.Abs(p.X-c.Max.X) < faceEpsilon:
		return math3d.V3(1, 0, 0)
	case math.Abs(p.Y-c.Min.Y) < faceEpsilon:
		return math3d.V3(0, -1, 0)
	case math.Abs(p.Y-c.Max.Y) < faceEpsilon:
		return math3d.V3(0, 1, 0)
	case math.Abs(p.Z-c.Min.Z) < faceEpsilon:
		return math3d.V3(0, 0, -1)
	default:
		return math3d.V3(0, 0, 1)
	}
}
