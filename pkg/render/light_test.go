package render

import (
	"math"
	"testing"

	"github.com/taigrr/biome/pkg/math3d"
)

func TestCastShadowClearPath(t *testing.T) {
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)
	point := math3d.Zero3()
	normal := math3d.Up()

	// No objects at all
	if got := CastShadow(point, normal, light, nil); got != 0 {
		t.Errorf("CastShadow with no objects = %v, want 0", got)
	}

	// An object off to the side does not occlude
	aside := testCube(math3d.V3(5, 1, 5), math3d.V3(6, 2, 6))
	if got := CastShadow(point, normal, light, []*Cube{aside}); got != 0 {
		t.Errorf("CastShadow with non-occluding object = %v, want 0", got)
	}

	// An object beyond the light does not occlude
	beyond := testCube(math3d.V3(-1, 20, -1), math3d.V3(1, 21, 1))
	if got := CastShadow(point, normal, light, []*Cube{beyond}); got != 0 {
		t.Errorf("CastShadow with object beyond light = %v, want 0", got)
	}
}

func TestCastShadowOccluded(t *testing.T) {
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)
	point := math3d.Zero3()
	normal := math3d.Up()

	// Occluder at distance 2 along a light at distance 10:
	// intensity = 1 - (2/10)^2 = 0.96
	occluder := testCube(math3d.V3(-1, 2, -1), math3d.V3(1, 3, 1))
	got := CastShadow(point, normal, light, []*Cube{occluder})
	if math.Abs(got-0.96) > 1e-4 {
		t.Errorf("CastShadow = %v, want 0.96", got)
	}
	if got <= 0 || got > 1 {
		t.Errorf("CastShadow = %v, outside (0,1]", got)
	}
}

func TestCastShadowNearerOccluderShadesHarder(t *testing.T) {
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)
	point := math3d.Zero3()
	normal := math3d.Up()

	near := CastShadow(point, normal, light, []*Cube{testCube(math3d.V3(-1, 1, -1), math3d.V3(1, 2, 1))})
	far := CastShadow(point, normal, light, []*Cube{testCube(math3d.V3(-1, 8, -1), math3d.V3(1, 9, 1))})

	if near <= far {
		t.Errorf("near occluder %v should shade harder than far occluder %v", near, far)
	}
	for _, v := range []float64{near, far} {
		if v < 0 || v > 1 {
			t.Errorf("shadow intensity %v outside [0,1]", v)
		}
	}
}

func TestCastShadowBackSideLight(t *testing.T) {
	// Light below the surface: the bias flips against the normal, so the
	// shadow ray still finds the occluder beneath.
	light := NewLight(math3d.V3(0, -10, 0), RGB(255, 255, 255), 1)
	point := math3d.Zero3()
	normal := math3d.Up()

	occluder := testCube(math3d.V3(-1, -3, -1), math3d.V3(1, -2, 1))
	got := CastShadow(point, normal, light, []*Cube{occluder})
	if got <= 0 || got > 1 {
		t.Errorf("CastShadow = %v, want in (0,1]", got)
	}
}

func TestCalculateLightingDiffuseFalloff(t *testing.T) {
	material := NewMaterial([2]float64{1, 0}, 10, 0, 0, RGB(200, 200, 200), RGB(255, 255, 255))
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)
	viewDir := math3d.Up()

	// Surface facing the light head-on vs. at a grazing angle
	headOn := CalculateLighting(math3d.Zero3(), math3d.Up(), viewDir, material, []Light{light}, nil)
	grazing := CalculateLighting(math3d.Zero3(), math3d.V3(1, 0.05, 0).Normalize(), viewDir, material, []Light{light}, nil)

	if headOn.R <= grazing.R {
		t.Errorf("head-on %v should be brighter than grazing %v", headOn, grazing)
	}
}

func TestCalculateLightingBackfaceIsDark(t *testing.T) {
	material := NewMaterial([2]float64{1, 0}, 10, 0, 0, RGB(200, 200, 200), RGB(255, 255, 255))
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)

	// Normal pointing away from the light: diffuse clamps to zero.
	got := CalculateLighting(math3d.Zero3(), math3d.V3(0, -1, 0), math3d.V3(0, -1, 0), material, []Light{light}, nil)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("backface lighting = %v, want black", got)
	}
}

func TestCalculateLightingAccumulatesLights(t *testing.T) {
	material := NewMaterial([2]float64{1, 0}, 10, 0, 0, RGB(100, 100, 100), RGB(255, 255, 255))
	one := []Light{NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)}
	two := append([]Light{NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)}, one...)

	single := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, one, nil)
	double := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, two, nil)

	if math.Abs(double.R-2*single.R) > 1e-9 {
		t.Errorf("two identical lights = %v, want double of %v", double, single)
	}
}

func TestCalculateLightingSpecularHighlight(t *testing.T) {
	material := NewMaterial([2]float64{0, 1}, 50, 0, 0, RGB(0, 0, 0), RGB(255, 255, 255))
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)

	// Mirror alignment: light straight above, view straight up too.
	aligned := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, []Light{light}, nil)
	// View off to the side sees far less of the highlight.
	offAxis := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.V3(1, 0.2, 0).Normalize(), material, []Light{light}, nil)

	if aligned.R <= offAxis.R {
		t.Errorf("aligned specular %v should exceed off-axis %v", aligned, offAxis)
	}
	// Specular is white-tinted
	if aligned.R != aligned.G || aligned.G != aligned.B {
		t.Errorf("specular should be white, got %v", aligned)
	}
}

func TestCalculateLightingShadowAttenuates(t *testing.T) {
	material := NewMaterial([2]float64{1, 0}, 10, 0, 0, RGB(200, 200, 200), RGB(255, 255, 255))
	light := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)
	occluder := testCube(math3d.V3(-1, 2, -1), math3d.V3(1, 3, 1))

	lit := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, []Light{light}, nil)
	shadowed := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, []Light{light}, []*Cube{occluder})

	if shadowed.R >= lit.R {
		t.Errorf("shadowed %v should be darker than lit %v", shadowed, lit)
	}
}

func TestCalculateLightingTintedLight(t *testing.T) {
	material := NewMaterial([2]float64{1, 0}, 10, 0, 0, RGB(200, 200, 200), RGB(255, 255, 255))
	white := NewLight(math3d.V3(0, 10, 0), RGB(255, 255, 255), 1)
	warm := NewLight(math3d.V3(0, 10, 0), RGB(255, 128, 64), 1)

	neutral := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, []Light{white}, nil)
	tinted := CalculateLighting(math3d.Zero3(), math3d.Up(), math3d.Up(), material, []Light{warm}, nil)

	if math.Abs(tinted.R-neutral.R) > 1e-9 {
		t.Errorf("full red channel should pass through untouched: %v vs %v", tinted, neutral)
	}
	if tinted.G >= neutral.G || tinted.B >= tinted.G {
		t.Errorf("warm light should suppress green and blue in turn, got %v", tinted)
	}
}
