package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/biome/pkg/render"
)

// ExportGLTF flattens the scene's cubes into an indexed triangle mesh and
// writes it as .gltf or .glb (chosen by extension), so the biome can be
// opened in external model viewers. Cubes sharing a material become one
// primitive with that material's diffuse as the glTF base color; textures
// are not embedded.
func ExportGLTF(s *Scene, path string) error {
	doc := gltf.NewDocument()

	groups := groupByMaterial(s.Objects)
	mesh := &gltf.Mesh{Name: "biome"}

	for _, g := range groups {
		var positions, normals [][3]float32
		var indices []uint32

		for _, cube := range g.cubes {
			appendCube(cube, &positions, &normals, &indices)
		}

		posIdx := modeler.WritePosition(doc, positions)
		nrmIdx := modeler.WriteNormal(doc, normals)
		idxIdx := modeler.WriteIndices(doc, indices)

		matIdx := len(doc.Materials)
		base := g.material.Diffuse
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: fmt.Sprintf("material-%d", matIdx),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{
					clamp01(base.R / 255),
					clamp01(base.G / 255),
					clamp01(base.B / 255),
					1,
				},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(1),
			},
		})

		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices: gltf.Index(idxIdx),
			Attributes: map[string]int{
				gltf.POSITION: posIdx,
				gltf.NORMAL:   nrmIdx,
			},
			Material: gltf.Index(matIdx),
		})
	}

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "biome", Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}

type materialGroup struct {
	material render.Material
	cubes    []*render.Cube
}

// groupByMaterial buckets cubes by material, preserving first-seen order.
func groupByMaterial(cubes []*render.Cube) []*materialGroup {
	var groups []*materialGroup
	index := make(map[render.Material]int)

	for _, cube := range cubes {
		i, ok := index[cube.Material]
		if !ok {
			i = len(groups)
			index[cube.Material] = i
			groups = append(groups, &materialGroup{material: cube.Material})
		}
		groups[i].cubes = append(groups[i].cubes, cube)
	}
	return groups
}

// cubeFaces enumerates the six faces as corner selectors (0 = min, 1 =
// max per axis, counter-clockwise seen from outside) and outward normals.
var cubeFaces = [6]struct {
	corners [4][3]int
	normal  [3]float32
}{
	{[4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, [3]float32{0, 0, 1}},  // +z
	{[4][3]int{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, [3]float32{0, 0, -1}}, // -z
	{[4][3]int{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, [3]float32{1, 0, 0}},  // +x
	{[4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, [3]float32{-1, 0, 0}}, // -x
	{[4][3]int{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}, [3]float32{0, 1, 0}},  // +y
	{[4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, [3]float32{0, -1, 0}}, // -y
}

// appendCube emits 24 vertices (4 per face, so normals stay flat) and 36
// indices for one cube.
func appendCube(cube *render.Cube, positions, normals *[][3]float32, indices *[]uint32) {
	bounds := [2][3]float32{
		{float32(cube.Min.X), float32(cube.Min.Y), float32(cube.Min.Z)},
		{float32(cube.Max.X), float32(cube.Max.Y), float32(cube.Max.Z)},
	}

	for _, face := range cubeFaces {
		base := uint32(len(*positions))
		for _, corner := range face.corners {
			*positions = append(*positions, [3]float32{
				bounds[corner[0]][0],
				bounds[corner[1]][1],
				bounds[corner[2]][2],
			})
			*normals = append(*normals, face.normal)
		}
		*indices = append(*indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
