package game

import (
	"math/rand"

	"github.com/vovakirdan/jangam/internal/core"
)

// starLayer is one parallax depth: a set of stars scrolling down at a
// shared speed, wrapping at the bottom edge.
type starLayer struct {
	stars []core.Vec
	speed float64 // Cells per second
	glyph rune
	color core.Color
}

// Starfield is the scrolling background. Purely visual: it never
// participates in collision or scoring.
type Starfield struct {
	layers []starLayer
	w, h   float64
}

// starLayerSpecs tunes the three parallax depths: sparse fast stars in
// front, dense slow dust behind.
var starLayerSpecs = []struct {
	density float64 // Stars per screen cell
	speed   float64
	glyph   rune
	color   core.Color
}{
	{0.004, 6.0, '✦', core.ColorWhite},
	{0.008, 3.0, '·', core.ColorGray},
	{0.012, 1.5, '.', core.ColorGray},
}

// NewStarfield scatters stars for a field of the given size.
func NewStarfield(rng *rand.Rand, w, h int) *Starfield {
	sf := &Starfield{w: float64(w), h: float64(h)}
	area := float64(w * h)

	for _, spec := range starLayerSpecs {
		count := int(area * spec.density)
		layer := starLayer{
			stars: make([]core.Vec, count),
			speed: spec.speed,
			glyph: spec.glyph,
			color: spec.color,
		}
		for i := range layer.stars {
			layer.stars[i] = core.Vec{
				X: rng.Float64() * sf.w,
				Y: rng.Float64() * sf.h,
			}
		}
		sf.layers = append(sf.layers, layer)
	}
	return sf
}

// Advance scrolls every layer down by its speed, wrapping at the bottom.
func (sf *Starfield) Advance(dt float64) {
	for li := range sf.layers {
		layer := &sf.layers[li]
		for i := range layer.stars {
			layer.stars[i].Y += layer.speed * dt
			if layer.stars[i].Y >= sf.h {
				layer.stars[i].Y -= sf.h
			}
		}
	}
}

// Render draws the starfield. Called before any entity so stars never
// overdraw the foreground.
func (sf *Starfield) Render(dst *core.Screen, yOffset int) {
	for _, layer := range sf.layers {
		for _, s := range layer.stars {
			dst.SetColored(int(s.X), int(s.Y)+yOffset, layer.glyph, layer.color)
		}
	}
}
