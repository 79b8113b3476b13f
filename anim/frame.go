package anim

import (
	"log"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyTimeline is returned when a timeline would contain no frames.
	ErrEmptyTimeline = errors.New("anim: timeline has no frames")
	// ErrNegativeDuration is returned for a frame or blend duration below zero.
	ErrNegativeDuration = errors.New("anim: negative duration")
	// ErrBlendDuration is returned when a blend window is longer than its frame.
	ErrBlendDuration = errors.New("anim: blend duration exceeds frame duration")
)

// Frame is one value of a timeline and how long, in seconds, it is shown.
type Frame[T any] struct {
	Value    T
	Duration float64
}

// NewFrames builds a timeline where every value is shown for duration.
func NewFrames[T any](values []T, duration float64) ([]Frame[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyTimeline
	}
	if duration < 0 {
		return nil, errors.Wrapf(ErrNegativeDuration, "duration %v", duration)
	}

	frames := make([]Frame[T], len(values))
	for i, v := range values {
		frames[i] = Frame[T]{Value: v, Duration: duration}
	}
	return frames, nil
}

// NewFramesWithDurations pairs each value with its own duration. When the two
// lists differ in length the extra entries of the longer list are dropped and
// the truncation is logged.
func NewFramesWithDurations[T any](values []T, durations []float64) ([]Frame[T], error) {
	n := pairedLen(len(values), len(durations))
	if n == 0 {
		return nil, ErrEmptyTimeline
	}

	frames := make([]Frame[T], n)
	for i := 0; i < n; i++ {
		if durations[i] < 0 {
			return nil, errors.Wrapf(ErrNegativeDuration, "frame %d duration %v", i, durations[i])
		}
		frames[i] = Frame[T]{Value: values[i], Duration: durations[i]}
	}
	return frames, nil
}

func pairedLen(lengths ...int) int {
	n := lengths[0]
	truncated := false
	for _, l := range lengths[1:] {
		if l != n {
			truncated = true
		}
		if l < n {
			n = l
		}
	}
	if truncated {
		log.Printf("anim: mismatched timeline lists %v, truncating to %d frames", lengths, n)
	}
	return n
}

func validateFrames[T any](frames []Frame[T]) error {
	if len(frames) == 0 {
		return ErrEmptyTimeline
	}
	for i, f := range frames {
		if f.Duration < 0 {
			return errors.Wrapf(ErrNegativeDuration, "frame %d duration %v", i, f.Duration)
		}
	}
	return nil
}

// InterpolatedFrame is a Frame whose value blends toward the next frame's
// value during the last Blend seconds of Duration.
type InterpolatedFrame[T any] struct {
	Value    T
	Duration float64
	Blend    float64
}

// NewInterpolatedFrames builds a timeline with uniform frame and blend durations.
func NewInterpolatedFrames[T any](values []T, duration, blend float64) ([]InterpolatedFrame[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyTimeline
	}

	frames := make([]InterpolatedFrame[T], len(values))
	for i, v := range values {
		frames[i] = InterpolatedFrame[T]{Value: v, Duration: duration, Blend: blend}
	}
	if err := validateInterpolatedFrames(frames); err != nil {
		return nil, err
	}
	return frames, nil
}

// NewInterpolatedFramesWithDurations pairs values with per-frame durations and
// blend durations, truncating to the shortest of the three lists.
func NewInterpolatedFramesWithDurations[T any](values []T, durations, blends []float64) ([]InterpolatedFrame[T], error) {
	n := pairedLen(len(values), len(durations), len(blends))
	if n == 0 {
		return nil, ErrEmptyTimeline
	}

	frames := make([]InterpolatedFrame[T], n)
	for i := 0; i < n; i++ {
		frames[i] = InterpolatedFrame[T]{Value: values[i], Duration: durations[i], Blend: blends[i]}
	}
	if err := validateInterpolatedFrames(frames); err != nil {
		return nil, err
	}
	return frames, nil
}

func validateInterpolatedFrames[T any](frames []InterpolatedFrame[T]) error {
	if len(frames) == 0 {
		return ErrEmptyTimeline
	}
	for i, f := range frames {
		if f.Duration < 0 {
			return errors.Wrapf(ErrNegativeDuration, "frame %d duration %v", i, f.Duration)
		}
		if f.Blend < 0 {
			return errors.Wrapf(ErrNegativeDuration, "frame %d blend %v", i, f.Blend)
		}
		if f.Blend > f.Duration {
			return errors.Wrapf(ErrBlendDuration, "frame %d blend %v duration %v", i, f.Blend, f.Duration)
		}
	}
	return nil
}
