package anim

// An Animation plays a fixed timeline of values, advancing by the elapsed time
// passed to Update. With AutoReset set it starts over as soon as the last frame
// completes; otherwise it holds the last frame until Reset. It is not safe for
// concurrent use.
type Animation[T any] struct {
	cursor
	frames []Frame[T]
}

// NewAnimation creates an Animation showing each value for duration seconds.
func NewAnimation[T any](values []T, duration float64) (*Animation[T], error) {
	frames, err := NewFrames(values, duration)
	if err != nil {
		return nil, err
	}
	return newAnimation(frames), nil
}

// NewAnimationWithDurations creates an Animation with a duration per value.
// See NewFramesWithDurations for how mismatched lengths are handled.
func NewAnimationWithDurations[T any](values []T, durations []float64) (*Animation[T], error) {
	frames, err := NewFramesWithDurations(values, durations)
	if err != nil {
		return nil, err
	}
	return newAnimation(frames), nil
}

// NewAnimationFromFrames creates an Animation from an existing timeline. The
// frames are copied.
func NewAnimationFromFrames[T any](frames []Frame[T]) (*Animation[T], error) {
	if err := validateFrames(frames); err != nil {
		return nil, err
	}
	return newAnimation(append([]Frame[T](nil), frames...)), nil
}

func newAnimation[T any](frames []Frame[T]) *Animation[T] {
	a := new(Animation[T])
	a.frames = frames
	return a
}

func (a *Animation[T]) duration(i int) float64 {
	return a.frames[i].Duration
}

// Update advances playback by dt seconds. Finished reports true only if the
// last frame was completed during this call.
func (a *Animation[T]) Update(dt float64) {
	a.step(dt, len(a.frames), a.duration)
}

// Reset rewinds to the first frame. AutoReset is left unchanged.
func (a *Animation[T]) Reset() {
	a.reset()
}

// Finished reports whether the most recent Update completed the last frame.
func (a *Animation[T]) Finished() bool {
	return a.finished
}

// Value returns the value of the current frame.
func (a *Animation[T]) Value() T {
	return a.frames[a.index].Value
}

// Index returns the current frame index.
func (a *Animation[T]) Index() int {
	return a.index
}

// Elapsed returns the time spent in the current frame.
func (a *Animation[T]) Elapsed() float64 {
	return a.elapsed
}

// Len returns the number of frames.
func (a *Animation[T]) Len() int {
	return len(a.frames)
}

// Frames returns a copy of the timeline.
func (a *Animation[T]) Frames() []Frame[T] {
	return append([]Frame[T](nil), a.frames...)
}
