package stream

import (
	"os"

	"github.com/matt-g-everett/ledanim/anim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// KeyframeDef is a hand-authored keyframe: the whole strip in one colour.
type KeyframeDef struct {
	Colour string `yaml:"colour"`
}

// TrackDef describes one named track in a tracks file.
type TrackDef struct {
	Name      string        `yaml:"name"`
	AutoReset bool          `yaml:"autoReset"`
	Duration  float64       `yaml:"duration"`
	Durations []float64     `yaml:"durations"`
	Blend     float64       `yaml:"blend"`
	Blends    []float64     `yaml:"blends"`
	Keyframes []KeyframeDef `yaml:"keyframes"`
	Generator *GeneratorDef `yaml:"generator"`
}

// TrackFile is the top level of a tracks file.
type TrackFile struct {
	Tracks []TrackDef `yaml:"tracks"`
}

// LoadTracks reads track definitions from a YAML file.
func LoadTracks(path string) ([]TrackDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read tracks")
	}
	return ParseTracks(data)
}

// ParseTracks decodes YAML track definitions. At least one track is required
// and names must be present and unique.
func ParseTracks(data []byte) ([]TrackDef, error) {
	var file TrackFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse tracks")
	}

	if len(file.Tracks) == 0 {
		return nil, errors.New("parse tracks: no tracks defined")
	}

	seen := make(map[string]bool, len(file.Tracks))
	for i, def := range file.Tracks {
		if def.Name == "" {
			return nil, errors.Errorf("track %d has no name", i)
		}
		if seen[def.Name] {
			return nil, errors.Errorf("track %q defined twice", def.Name)
		}
		seen[def.Name] = true
	}
	return file.Tracks, nil
}

// Frames returns the authored or generated keyframes of the track.
func (d *TrackDef) Frames() ([]*Frame, error) {
	if d.Generator != nil {
		if len(d.Keyframes) > 0 {
			return nil, errors.Errorf("track %q: keyframes and generator are exclusive", d.Name)
		}
		frames, err := d.Generator.Generate()
		return frames, errors.Wrapf(err, "track %q", d.Name)
	}

	frames := make([]*Frame, len(d.Keyframes))
	for i, k := range d.Keyframes {
		c, err := ParseColour(k.Colour)
		if err != nil {
			return nil, errors.Wrapf(err, "track %q keyframe %d", d.Name, i)
		}
		frames[i] = NewSolidFrame(c)
	}
	return frames, nil
}

// Build creates the playable track. Either durations or blends may be given
// per keyframe; whichever list is missing is filled from its uniform value.
func (d *TrackDef) Build() (*anim.InterpolatedAnimation[*Frame], error) {
	frames, err := d.Frames()
	if err != nil {
		return nil, err
	}

	var a *anim.InterpolatedAnimation[*Frame]
	if len(d.Durations) > 0 || len(d.Blends) > 0 {
		durations := d.Durations
		if len(durations) == 0 {
			durations = repeat(d.Duration, len(frames))
		}
		blends := d.Blends
		if len(blends) == 0 {
			blends = repeat(d.Blend, len(durations))
		}
		a, err = anim.NewInterpolatedAnimationWithDurations(frames, durations, blends)
	} else {
		a, err = anim.NewInterpolatedAnimation(frames, d.Duration, d.Blend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "track %q", d.Name)
	}

	a.AutoReset = d.AutoReset
	return a, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
