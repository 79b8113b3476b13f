package anim

// An InterpolatedAnimation plays a timeline like Animation, but during the
// last Blend seconds of each frame its value blends linearly toward the next
// frame's value. The authored frames are never modified; the blended value is
// recomputed from them on every Update.
type InterpolatedAnimation[T Interpolatable[T]] struct {
	cursor
	frames  []InterpolatedFrame[T]
	value   T
	blendAt float64
}

// NewInterpolatedAnimation creates an InterpolatedAnimation with uniform frame
// and blend durations.
func NewInterpolatedAnimation[T Interpolatable[T]](values []T, duration, blend float64) (*InterpolatedAnimation[T], error) {
	frames, err := NewInterpolatedFrames(values, duration, blend)
	if err != nil {
		return nil, err
	}
	return newInterpolatedAnimation(frames), nil
}

// NewInterpolatedAnimationWithDurations creates an InterpolatedAnimation with
// per-frame durations and blend durations.
func NewInterpolatedAnimationWithDurations[T Interpolatable[T]](values []T, durations, blends []float64) (*InterpolatedAnimation[T], error) {
	frames, err := NewInterpolatedFramesWithDurations(values, durations, blends)
	if err != nil {
		return nil, err
	}
	return newInterpolatedAnimation(frames), nil
}

// NewInterpolatedAnimationFromFrames creates an InterpolatedAnimation from an
// existing timeline. The frames are copied.
func NewInterpolatedAnimationFromFrames[T Interpolatable[T]](frames []InterpolatedFrame[T]) (*InterpolatedAnimation[T], error) {
	if err := validateInterpolatedFrames(frames); err != nil {
		return nil, err
	}
	return newInterpolatedAnimation(append([]InterpolatedFrame[T](nil), frames...)), nil
}

func newInterpolatedAnimation[T Interpolatable[T]](frames []InterpolatedFrame[T]) *InterpolatedAnimation[T] {
	a := new(InterpolatedAnimation[T])
	a.frames = frames
	a.value = frames[0].Value
	return a
}

func (a *InterpolatedAnimation[T]) duration(i int) float64 {
	return a.frames[i].Duration
}

// Update advances playback by dt seconds and recomputes the current value.
func (a *InterpolatedAnimation[T]) Update(dt float64) {
	a.step(dt, len(a.frames), a.duration)
	a.refresh()
}

func (a *InterpolatedAnimation[T]) refresh() {
	f := a.frames[a.index]
	a.blendAt = 0
	if a.index == len(a.frames)-1 {
		a.value = f.Value
		return
	}

	a.blendAt = Fraction(a.elapsed-(f.Duration-f.Blend), f.Blend)
	if a.blendAt == 0 {
		a.value = f.Value
		return
	}
	a.value = f.Value.Lerp(a.frames[a.index+1].Value, a.blendAt)
}

// Reset rewinds to the first frame and restores its authored value.
func (a *InterpolatedAnimation[T]) Reset() {
	a.reset()
	a.refresh()
}

// Finished reports whether the most recent Update completed the last frame.
func (a *InterpolatedAnimation[T]) Finished() bool {
	return a.finished
}

// Value returns the current, possibly blended, value.
func (a *InterpolatedAnimation[T]) Value() T {
	return a.value
}

// Fraction returns the blend progress toward the next frame, or 0 outside the
// blend window.
func (a *InterpolatedAnimation[T]) Fraction() float64 {
	return a.blendAt
}

// Index returns the current frame index.
func (a *InterpolatedAnimation[T]) Index() int {
	return a.index
}

// Elapsed returns the time spent in the current frame.
func (a *InterpolatedAnimation[T]) Elapsed() float64 {
	return a.elapsed
}

// Len returns the number of frames.
func (a *InterpolatedAnimation[T]) Len() int {
	return len(a.frames)
}

// Frames returns a copy of the authored timeline.
func (a *InterpolatedAnimation[T]) Frames() []InterpolatedFrame[T] {
	return append([]InterpolatedFrame[T](nil), a.frames...)
}
