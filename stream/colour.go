package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Colour is a single LED colour that can be played back by an interpolated
// track.
type Colour struct {
	colorful.Color
}

// ParseColour parses a "#rrggbb" hex string.
func ParseColour(hex string) (Colour, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, errors.Wrapf(err, "colour %q", hex)
	}
	return Colour{c}, nil
}

// Lerp blends c toward end in RGB space.
func (c Colour) Lerp(end Colour, t float64) Colour {
	return Colour{c.BlendRgb(end.Color, t)}
}
