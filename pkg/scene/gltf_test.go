package scene

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/biome/pkg/math3d"
	"github.com/taigrr/biome/pkg/render"
)

func twoMaterialScene() *Scene {
	tex := testTexture()
	matA := testMaterial()
	matB := render.NewMaterial(
		[2]float64{0.5, 0.5}, 50, 0, 0.8,
		render.RGB(0, 0, 255), render.RGB(255, 255, 255),
	)

	s := &Scene{}
	s.add(VoxelizedCube(math3d.V3(0, 0, 0), math3d.V3(2, 2, 2), tex, tex, tex, matA, 2))
	s.add(VoxelizedCube(math3d.V3(3, 0, 0), math3d.V3(5, 2, 2), tex, tex, tex, matA, 2))
	s.add(VoxelizedCube(math3d.V3(6, 0, 0), math3d.V3(8, 2, 2), tex, tex, tex, matB, 2))
	return s
}

func TestGroupByMaterial(t *testing.T) {
	s := twoMaterialScene()
	groups := groupByMaterial(s.Objects)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if len(groups[0].cubes) != 2 {
		t.Errorf("first group has %d cubes, want 2", len(groups[0].cubes))
	}
	if len(groups[1].cubes) != 1 {
		t.Errorf("second group has %d cubes, want 1", len(groups[1].cubes))
	}
	// First-seen order is preserved.
	if groups[0].material != s.Objects[0].Material {
		t.Error("groups are not in first-seen order")
	}
}

func TestAppendCube(t *testing.T) {
	cube := &render.Cube{Min: math3d.V3(0, 0, 0), Max: math3d.V3(1, 2, 3)}

	var positions, normals [][3]float32
	var indices []uint32
	appendCube(cube, &positions, &normals, &indices)

	if len(positions) != 24 {
		t.Errorf("len(positions) = %d, want 24", len(positions))
	}
	if len(normals) != 24 {
		t.Errorf("len(normals) = %d, want 24", len(normals))
	}
	if len(indices) != 36 {
		t.Errorf("len(indices) = %d, want 36", len(indices))
	}

	for i, p := range positions {
		if p[0] < 0 || p[0] > 1 || p[1] < 0 || p[1] > 2 || p[2] < 0 || p[2] > 3 {
			t.Errorf("vertex %d = %v escapes the cube", i, p)
		}
	}
	for i, idx := range indices {
		if idx >= uint32(len(positions)) {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}
}

func TestExportGLTF(t *testing.T) {
	s := twoMaterialScene()
	path := filepath.Join(t.TempDir(), "biome.gltf")

	if err := ExportGLTF(s, path); err != nil {
		t.Fatalf("ExportGLTF: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen exported file: %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Fatalf("len(Meshes) = %d, want 1", len(doc.Meshes))
	}
	if got := len(doc.Meshes[0].Primitives); got != 2 {
		t.Errorf("primitives = %d, want one per material", got)
	}
	if got := len(doc.Materials); got != 2 {
		t.Errorf("materials = %d, want 2", got)
	}
	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) == 0 {
		t.Error("exported document has no scene nodes")
	}
}

func TestExportGLB(t *testing.T) {
	s := twoMaterialScene()
	path := filepath.Join(t.TempDir(), "biome.glb")

	if err := ExportGLTF(s, path); err != nil {
		t.Fatalf("ExportGLTF: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen exported binary: %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Errorf("len(Meshes) = %d, want 1", len(doc.Meshes))
	}
}
