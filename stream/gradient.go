package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// DefaultGradient is a rainbow that wraps back to pink.
var DefaultGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquoise
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, 1.0, 0.05)
}

// Render paints the gradient along the strip, repeating every trailLength
// pixels and shifted by offset pixels.
func (g GradientTable) Render(f *Frame, offset float64, trailLength int, s, l float64) {
	numPixels := len(f.pixels)
	for i := 0; i < numPixels; i++ {
		t := math.Mod(float64(i+numPixels)-offset, float64(trailLength)) / float64(trailLength)
		if t < 0 {
			t += 1
		}
		f.pixels[i] = g.GetColor(t, s, l)
	}
}
