package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/biome/pkg/math3d"
	"github.com/taigrr/biome/pkg/render"
)

// Light key colors for the cycle.
var (
	noonColor    = colorful.Color{R: 1, G: 1, B: 224.0 / 255}
	horizonColor = colorful.Color{R: 1, G: 0.63, B: 0.31}
	moonColor    = colorful.Color{R: 135.0 / 255, G: 206.0 / 255, B: 235.0 / 255}
	glowColor    = render.RGB(255, 223, 0)
)

// DayCycle drives the sun and moon around a circular arc and swaps the
// active light between them. It mutates nothing in the renderer: each
// frame asks for the current light list and night flag.
type DayCycle struct {
	time   float64
	Frozen bool
}

// NewDayCycle starts a cycle at dawn. Pass night to start after sunset.
func NewDayCycle(night bool) *DayCycle {
	d := &DayCycle{}
	if night {
		d.time = math.Pi
	}
	return d
}

// Advance moves the cycle forward unless frozen.
func (d *DayCycle) Advance(dt float64) {
	if d.Frozen {
		return
	}
	d.time += dt
}

// Toggle jumps between day and night by half a revolution.
func (d *DayCycle) Toggle() {
	d.time += math.Pi
}

// SunAngle returns the sun's arc position in [0, 2π).
func (d *DayCycle) SunAngle() float64 {
	return math.Mod(d.time, 2*math.Pi)
}

// IsNight reports whether the sun is below the horizon.
func (d *DayCycle) IsNight() bool {
	return d.SunAngle() >= math.Pi
}

// Lights returns the frame's light list: the sun by day, the moon plus
// the glowstone lantern by night. The sun's color drifts from a warm
// horizon tint toward the noon color as it climbs.
func (d *DayCycle) Lights() []render.Light {
	sunAngle := d.SunAngle()
	if sunAngle < math.Pi {
		sunPos := math3d.V3(15*math.Cos(sunAngle), 25*math.Sin(sunAngle), 15)
		elevation := math.Sin(sunAngle) // 0 at horizon, 1 at noon
		c := horizonColor.BlendRgb(noonColor, elevation)
		return []render.Light{
			render.NewLight(sunPos, fromColorful(c), 1.0),
		}
	}

	moonAngle := math.Mod(sunAngle+math.Pi, 2*math.Pi)
	moonPos := math3d.V3(15*math.Cos(moonAngle), 25*math.Sin(moonAngle), 15)
	return []render.Light{
		render.NewLight(moonPos, fromColorful(moonColor), 0.5),
		render.NewLight(GlowstonePosition, glowColor, 0.01),
	}
}

func fromColorful(c colorful.Color) render.Color {
	return render.Color{R: c.R * 255, G: c.G * 255, B: c.B * 255}
}
