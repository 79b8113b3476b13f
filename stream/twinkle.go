package stream

import (
	"math/rand"

	"github.com/matt-g-everett/ledanim/util"
)

// twinkle scatters particles over a background and pulses each one through
// a rise-and-fall envelope, starting at a random phase.
func (d *GeneratorDef) twinkle() ([]*Frame, error) {
	fore, err := ParseColour(orDefault(d.Fore, "#404040"))
	if err != nil {
		return nil, err
	}
	back, err := ParseColour(orDefault(d.Back, "#000005"))
	if err != nil {
		return nil, err
	}

	rnd := rand.New(rand.NewSource(d.Seed))
	particles := make(map[int]int, d.Particles)
	for i := 0; i < d.Particles; i++ {
		particles[rnd.Intn(NumPixels)] = rnd.Intn(d.Steps)
	}

	lut := util.GenerateLut(d.Steps)
	frames := make([]*Frame, d.Steps)
	for step := range frames {
		f := NewSolidFrame(back)
		for pixel, phase := range particles {
			gain := lut[(step+phase)%d.Steps]
			f.SetPixel(pixel, Colour{back.BlendHcl(fore.Color, gain).Clamped()})
		}
		frames[step] = f
	}
	return frames, nil
}
