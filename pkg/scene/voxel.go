package scene

import (
	"math"

	"github.com/taigrr/biome/pkg/math3d"
	"github.com/taigrr/biome/pkg/render"
)

// VoxelizedCube splits the extent [min, max] into a grid of cubes of the
// given voxel size, all sharing the three texture pointers and the
// material. Cubes in the last row/column of an axis are clamped to the
// extent, so the grid covers it exactly.
func VoxelizedCube(min, max math3d.Vec3, top, side, bottom *render.Texture, material render.Material, voxelSize float64) []*render.Cube {
	xSteps := int(math.Ceil((max.X - min.X) / voxelSize))
	ySteps := int(math.Ceil((max.Y - min.Y) / voxelSize))
	zSteps := int(math.Ceil((max.Z - min.Z) / voxelSize))

	cubes := make([]*render.Cube, 0, xSteps*ySteps*zSteps)

	for i := 0; i < xSteps; i++ {
		for j := 0; j < ySteps; j++ {
			for k := 0; k < zSteps; k++ {
				cubeMin := math3d.V3(
					min.X+float64(i)*voxelSize,
					min.Y+float64(j)*voxelSize,
					min.Z+float64(k)*voxelSize,
				)
				cubeMax := math3d.V3(
					math.Min(cubeMin.X+voxelSize, max.X),
					math.Min(cubeMin.Y+voxelSize, max.Y),
					math.Min(cubeMin.Z+voxelSize, max.Z),
				)

				cubes = append(cubes, &render.Cube{
					Min:      cubeMin,
					Max:      cubeMax,
					Material: material,
					Top:      top,
					Side:     side,
					Bottom:   bottom,
				})
			}
		}
	}

	return cubes
}

// Skybox builds six thin slabs enclosing the scene, each textured on every
// face with its sky texture. The material is matte white so the raw
// texture color shows through when the caster falls back to the skybox.
func Skybox(front, back, left, right, top, bottom *render.Texture, size float64) []*render.Cube {
	half := size / 2
	material := render.NewMaterial(
		[2]float64{1, 0}, 0, 0, 0,
		render.RGB(255, 255, 255), render.RGB(255, 255, 255),
	)

	slab := func(min, max math3d.Vec3, tex *render.Texture) []*render.Cube {
		return VoxelizedCube(min, max, tex, tex, tex, material, size)
	}

	var skybox []*render.Cube
	skybox = append(skybox, slab(math3d.V3(-half, -half, half), math3d.V3(half, half, half+0.01), front)...)
	skybox = append(skybox, slab(math3d.V3(-half, -half, -half-0.01), math3d.V3(half, half, -half), back)...)
	skybox = append(skybox, slab(math3d.V3(-half-0.01, -half, -half), math3d.V3(-half, half, half), left)...)
	skybox = append(skybox, slab(math3d.V3(half, -half, -half), math3d.V3(half+0.01, half, half), right)...)
	skybox = append(skybox, slab(math3d.V3(-half, half, -half), math3d.V3(half, half+0.01, half), top)...)
	skybox = append(skybox, slab(math3d.V3(-half, -half-0.01, -half), math3d.V3(half, -half, half), bottom)...)
	return skybox
}
