package scene

import (
	"github.com/taigrr/biome/pkg/math3d"
	"github.com/taigrr/biome/pkg/render"
)

// VoxelSize is the edge length used to voxelize the demo biome's extents.
const VoxelSize = 3.75

// SkyboxSize is the edge length of the enclosing skybox.
const SkyboxSize = 100.0

// GlowstonePosition is the center of the glowstone lantern, where the
// night light sits.
var GlowstonePosition = math3d.V3(7.0, 6.375, -7.125)

// Scene holds the immutable object lists for a frame: the solid biome and
// the enclosing skybox. Both are flat lists; the renderer scans them
// linearly.
type Scene struct {
	Objects []*render.Cube
	Skybox  []*render.Cube
	Blocks  *BlockSet
}

// Biome builds the cherry-blossom demo scene: a terraced grass base split
// by a river, a hill, two cherry trees, a plank bridge, a post, and a
// glowstone lantern, all enclosed by the skybox.
func Biome(blocks *BlockSet) *Scene {
	s := &Scene{Blocks: blocks}

	s.Skybox = Skybox(
		blocks.SkyZenith, blocks.Sky, blocks.Sky, blocks.Sky,
		blocks.SkyZenith, blocks.Sky, SkyboxSize,
	)

	grass := func(min, max math3d.Vec3) []*render.Cube {
		return VoxelizedCube(min, max, blocks.GrassTop, blocks.GrassSide, blocks.Dirt, blocks.Grass, VoxelSize)
	}
	wood := func(min, max math3d.Vec3) []*render.Cube {
		return VoxelizedCube(min, max, blocks.Wood, blocks.Wood, blocks.Wood, blocks.WoodMaterial, VoxelSize)
	}
	leaves := func(min, max math3d.Vec3) []*render.Cube {
		return VoxelizedCube(min, max, blocks.Leaves, blocks.Leaves, blocks.Leaves, blocks.LeafMaterial, VoxelSize)
	}

	// Grass base split by the river channel
	s.add(grass(math3d.V3(-10, -5.5, -10), math3d.V3(-2, 0, 10)))
	s.add(grass(math3d.V3(-2, -5.5, -10), math3d.V3(2, -2.75, 10)))
	s.add(grass(math3d.V3(2, -5.5, -10), math3d.V3(10, 0, 10)))

	// River
	s.add(VoxelizedCube(
		math3d.V3(-2, -3, -10), math3d.V3(2, -0.5, 10),
		blocks.Water, blocks.Water, blocks.Water, blocks.WaterMaterial, VoxelSize,
	))

	// Hill
	s.add(grass(math3d.V3(-10, 0, -10), math3d.V3(-3, 3, -2)))

	// First tree: trunk and two leaf tiers
	s.add(wood(math3d.V3(-7.5, -1, -7.5), math3d.V3(-5.5, 7, -5.5)))
	s.add(leaves(math3d.V3(-9.5, 7, -9.5), math3d.V3(-3.5, 9.75, -3.5)))
	s.add(leaves(math3d.V3(-8.5, 9.75, -8.5), math3d.V3(-4.5, 12.5, -4.5)))

	// Second tree
	s.add(wood(math3d.V3(6.5, -1, 6.5), math3d.V3(8.5, 5, 8.5)))
	s.add(leaves(math3d.V3(4.5, 5, 4.5), math3d.V3(10.5, 7.75, 10.5)))
	s.add(leaves(math3d.V3(5.5, 7.75, 5.5), math3d.V3(9.5, 10.5, 9.5)))

	// Bridge over the river
	s.add(VoxelizedCube(
		math3d.V3(-5, 0, 1), math3d.V3(5, 1, 3),
		blocks.Plank, blocks.Plank, blocks.Plank, blocks.WoodMaterial, VoxelSize,
	))

	// Lantern post and glowstone
	s.add(wood(math3d.V3(6.5, 0, -8), math3d.V3(7, 5, -7)))
	s.add(VoxelizedCube(
		math3d.V3(5.5, 5, -8.5), math3d.V3(8.5, 7.75, -5.75),
		blocks.Glowstone, blocks.Glowstone, blocks.Glowstone, blocks.GlowMaterial, VoxelSize,
	))

	return s
}

func (s *Scene) add(cubes []*render.Cube) {
	s.Objects = append(s.Objects, cubes...)
}
