// Package scene builds the voxel biome: block palette, voxelized cube
// grids, the enclosing skybox, and the day/night cycle that animates the
// lights between frames.
package scene

import (
	"os"
	"path/filepath"

	"github.com/taigrr/biome/pkg/render"
)

// BlockSet holds the shared textures and materials for every block type.
// Textures are built once and shared by pointer across every cube that
// uses them; pixel data is never duplicated per primitive.
type BlockSet struct {
	GrassTop  *render.Texture
	GrassSide *render.Texture
	Dirt      *render.Texture
	Wood      *render.Texture
	Plank     *render.Texture
	Leaves    *render.Texture
	Water     *render.Texture
	Glowstone *render.Texture
	Sky       *render.Texture
	SkyZenith *render.Texture

	Grass         render.Material
	WoodMaterial  render.Material
	LeafMaterial  render.Material
	WaterMaterial render.Material
	GlowMaterial  render.Material
}

// DefaultBlocks builds the palette from procedural textures.
func DefaultBlocks() *BlockSet {
	b := &BlockSet{
		GrassTop:  render.NewSpeckleTexture(16, 16, render.RGB(70, 160, 60), 0.18, 1),
		GrassSide: grassSideTexture(),
		Dirt:      render.NewSpeckleTexture(16, 16, render.RGB(134, 96, 67), 0.15, 2),
		Wood:      stripeTexture(16, 16, 4, render.RGB(110, 54, 48), render.RGB(88, 42, 38)),
		Plank:     render.NewCheckerTexture(16, 16, 8, render.RGB(190, 154, 110), render.RGB(172, 136, 96)),
		Leaves:    render.NewSpeckleTexture(16, 16, render.RGB(245, 180, 200), 0.22, 3),
		Water:     render.NewSpeckleTexture(16, 16, render.RGB(52, 96, 220), 0.08, 4),
		Glowstone: render.NewCheckerTexture(16, 16, 4, render.RGB(255, 214, 90), render.RGB(226, 170, 50)),
		Sky:       render.NewGradientTexture(64, 64, render.RGB(120, 165, 235), render.RGB(63, 96, 188)),
		SkyZenith: render.NewGradientTexture(64, 64, render.RGB(95, 135, 220), render.RGB(63, 96, 188)),
	}
	b.fillMaterials()
	return b
}

// LoadBlocks builds the palette from image files in dir (grass_top.png,
// grass_side.png, dirt.png, wood.png, plank.png, leaves.png, water.png,
// glowstone.png, sky.png), falling back to the procedural texture for any
// file that is missing or undecodable.
func LoadBlocks(dir string) *BlockSet {
	b := DefaultBlocks()
	if dir == "" {
		return b
	}
	load := func(name string, fallback *render.Texture) *render.Texture {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return fallback
		}
		tex, err := render.LoadTexture(path)
		if err != nil {
			return fallback
		}
		return tex
	}
	b.GrassTop = load("grass_top.png", b.GrassTop)
	b.GrassSide = load("grass_side.png", b.GrassSide)
	b.Dirt = load("dirt.png", b.Dirt)
	b.Wood = load("wood.png", b.Wood)
	b.Plank = load("plank.png", b.Plank)
	b.Leaves = load("leaves.png", b.Leaves)
	b.Water = load("water.png", b.Water)
	b.Glowstone = load("glowstone.png", b.Glowstone)
	b.Sky = load("sky.png", b.Sky)
	b.SkyZenith = load("sky.png", b.SkyZenith)
	return b
}

func (b *BlockSet) fillMaterials() {
	b.Grass = render.NewMaterial(
		[2]float64{0.9, 0.3}, 0.05, 0, 0.1,
		render.RGB(34, 139, 34), render.RGB(255, 255, 255),
	)
	b.WoodMaterial = render.NewMaterial(
		[2]float64{0.6, 0.2}, 0.1, 0, 0.2,
		render.RGB(160, 82, 45), render.RGB(200, 200, 200),
	)
	b.LeafMaterial = render.NewMaterial(
		[2]float64{0.5, 0.1}, 0.1, 0, 0.1,
		render.RGB(255, 182, 193), render.RGB(255, 200, 220),
	)
	b.WaterMaterial = render.NewMaterial(
		[2]float64{0.4, 0.3}, 0.8, 0.7, 0.5,
		render.RGB(0, 0, 255), render.RGB(63, 96, 188),
	)
	b.GlowMaterial = render.NewMaterial(
		[2]float64{1.0, 0.9}, 0.3, 0, 0.5,
		render.RGB(255, 215, 0), render.RGB(255, 255, 200),
	)
}

// grassSideTexture is dirt with a band of grass along the top edge.
// Side-face V runs bottom-to-top, so the band lives in the last rows.
func grassSideTexture() *render.Texture {
	tex := render.NewSpeckleTexture(16, 16, render.RGB(134, 96, 67), 0.15, 5)
	grass := render.NewSpeckleTexture(16, 4, render.RGB(70, 160, 60), 0.18, 6)
	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			tex.SetPixel(x, 12+y, grass.GetPixel(x, y))
		}
	}
	return tex
}

// stripeTexture draws vertical bark-like stripes.
func stripeTexture(width, height, stripe int, c1, c2 render.Color) *render.Texture {
	tex := render.NewTexture(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/stripe)%2 == 0 {
				tex.SetPixel(x, y, c1)
			} else {
				tex.SetPixel(x, y, c2)
			}
		}
	}
	return tex
}
