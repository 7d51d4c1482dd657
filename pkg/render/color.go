// Package render provides the ray-tracing core for biome: colors,
// materials, textures, the orbit camera, cube intersection, lighting,
// and the frame renderer.
package render

import (
	"image/color"
	"math"
)

// Color is an RGB value with float64 channels on a 0-255 scale.
// Channels may exceed 255 during blending; packing saturates.
type Color struct {
	R, G, B float64
}

// RGB creates a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r), float64(g), float64(b)}
}

// Add returns the channel-wise sum c + o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale returns c with every channel multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the channel-wise product with o treated as a filter on a
// 0-255 scale, so multiplying by white is the identity.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R / 255, c.G * o.G / 255, c.B * o.B / 255}
}

// Lerp linearly interpolates from c toward o by t, with t clamped to [0,1].
func (c Color) Lerp(o Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
	}
}

// Hex packs the color into 0xRRGGBB, saturating each channel to [0,255].
func (c Color) Hex() uint32 {
	return uint32(clampChannel(c.R))<<16 | uint32(clampChannel(c.G))<<8 | uint32(clampChannel(c.B))
}

// RGBA converts the color to an opaque color.RGBA, saturating to [0,255].
func (c Color) RGBA() color.RGBA {
	return color.RGBA{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B), 255}
}

func clampChannel(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
