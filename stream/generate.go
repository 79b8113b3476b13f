package stream

import (
	"github.com/pkg/errors"
)

// Generator kinds accepted in track definitions.
const (
	GeneratorGradientTrail = "gradientTrail"
	GeneratorTwinkle       = "twinkle"
)

// GeneratorDef describes keyframes computed rather than listed by hand.
type GeneratorDef struct {
	Kind  string `yaml:"kind"`
	Steps int    `yaml:"steps"`

	// gradientTrail
	Gradient    GradientTable `yaml:"gradient"`
	TrailLength int           `yaml:"trailLength"`
	Saturation  float64       `yaml:"saturation"`
	Luminance   float64       `yaml:"luminance"`

	// twinkle
	Particles int    `yaml:"particles"`
	Fore      string `yaml:"fore"`
	Back      string `yaml:"back"`
	Seed      int64  `yaml:"seed"`
}

// Generate builds the keyframes described by d.
func (d *GeneratorDef) Generate() ([]*Frame, error) {
	if d.Steps <= 0 {
		return nil, errors.Errorf("generator %s: steps must be positive", d.Kind)
	}

	switch d.Kind {
	case GeneratorGradientTrail:
		return d.gradientTrail(), nil
	case GeneratorTwinkle:
		return d.twinkle()
	default:
		return nil, errors.Errorf("unknown generator %q", d.Kind)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
