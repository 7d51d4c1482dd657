package render

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/biome/pkg/math3d"
)

// FOV is the vertical field of view used for ray generation.
const FOV = math.Pi / 3

// Background colors returned when both the scene and the skybox miss.
var (
	DaySkyColor   = RGB(63, 96, 188)
	NightSkyColor = RGB(10, 10, 30)
)

// RenderContext carries everything a single frame needs. Input handling
// mutates camera and lights strictly between frames; during a render pass
// the context is read-only and safe to share across workers.
type RenderContext struct {
	Camera  *Camera
	Objects []*Cube
	Skybox  []*Cube
	Lights  []Light
	Night   bool
}

// fresnelEffect is the Schlick approximation of angle-dependent
// reflectance, with f0 the base reflectance at normal incidence.
func fresnelEffect(normal, viewDir math3d.Vec3, f0 float64) float64 {
	cosTheta := math.Max(0, normal.Dot(viewDir))
	return f0 + (1-f0)*math.Pow(1-cosTheta, 5)
}

// CastRay traces a single primary ray through the scene and returns the
// shaded color. The nearest object hit wins (first object on exact ties);
// on a miss the skybox is scanned and its first hit's diffuse color
// returned, falling back to a fixed day or night sky color. Shadow rays
// test only the object list, never the skybox.
func CastRay(origin, dir math3d.Vec3, ctx *RenderContext) Color {
	var closest Hit
	found := false
	zbuffer := math.Inf(1)

	for _, object := range ctx.Objects {
		if hit, ok := object.RayIntersect(origin, dir); ok && hit.Distance < zbuffer {
			zbuffer = hit.Distance
			closest = hit
			found = true
		}
	}

	if !found {
		for _, face := range ctx.Skybox {
			if hit, ok := face.RayIntersect(origin, dir); ok {
				return hit.Material.Diffuse
			}
		}
		if ctx.Night {
			return NightSkyColor
		}
		return DaySkyColor
	}

	viewDir := ctx.Camera.Eye.Sub(closest.Point).Normalize()
	lit := CalculateLighting(closest.Point, closest.Normal, viewDir, closest.Material, ctx.Lights, ctx.Objects)

	// Reflectivity weights both the Schlick f0 and the blend.
	f0 := closest.Material.Reflectivity
	fresnel := fresnelEffect(closest.Normal, viewDir, f0)
	return lit.Lerp(closest.Material.FresnelColor, fresnel*closest.Material.Reflectivity)
}

// Render traces one full frame into the framebuffer. Every pixel is an
// independent pure function of the context, so rows are fanned out across
// workers; each worker owns a disjoint set of rows, keeping pixel writes
// exclusive.
func Render(fb *Framebuffer, ctx *RenderContext) {
	width := float64(fb.Width)
	height := float64(fb.Height)
	aspectRatio := width / height
	perspectiveScale := math.Tan(FOV / 2)

	// Warm the camera's basis cache before fanning out so workers only
	// ever read it.
	ctx.Camera.BaseChange(math3d.V3(0, 0, -1))

	workers := runtime.NumCPU()
	if workers > fb.Height {
		workers = fb.Height
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for y := w; y < fb.Height; y += workers {
				for x := 0; x < fb.Width; x++ {
					screenX := (2*float64(x)/width - 1) * aspectRatio * perspectiveScale
					screenY := (-2*float64(y)/height + 1) * perspectiveScale

					rayDir := math3d.V3(screenX, screenY, -1).Normalize()
					worldDir := ctx.Camera.BaseChange(rayDir)

					fb.SetPixel(x, y, CastRay(ctx.Camera.Eye, worldDir, ctx).RGBA())
				}
			}
			return nil
		})
	}
	// Workers never return an error; Wait is purely the join point.
	_ = g.Wait()
}
