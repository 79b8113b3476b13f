package anim

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrNoSelection means no track has been selected yet.
	ErrNoSelection = errors.New("anim: no track selected")
	// ErrUnknownTrack means the selected name was never added.
	ErrUnknownTrack = errors.New("anim: unknown track")
)

// TrackError describes a Manager call made without a valid selected track.
type TrackError struct {
	Name string
	Err  error
}

func (e *TrackError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v %q", e.Err, e.Name)
}

func (e *TrackError) Unwrap() error {
	return e.Err
}

// A Track is a player that a Manager can drive.
type Track[T any] interface {
	Update(dt float64)
	Reset()
	Finished() bool
	Value() T
}

// Manager owns a set of named tracks and forwards playback calls to the one
// currently selected. Selecting a track neither resets nor updates it.
//
// Update, Reset, Finished and Value panic with a *TrackError if nothing is
// selected or the selected name has no track; use Current to check first.
type Manager[T any] struct {
	tracks   map[string]Track[T]
	selected string
	chosen   bool
}

// NewManager creates an empty Manager.
func NewManager[T any]() *Manager[T] {
	m := new(Manager[T])
	m.tracks = make(map[string]Track[T])
	return m
}

// AddTrack stores track under name, replacing any previous track of that name.
func (m *Manager[T]) AddTrack(name string, track Track[T]) {
	m.tracks[name] = track
}

// Select makes name the current track. The name is not checked here.
func (m *Manager[T]) Select(name string) {
	m.selected = name
	m.chosen = true
}

// Selected returns the selected name and whether one has been selected.
func (m *Manager[T]) Selected() (string, bool) {
	return m.selected, m.chosen
}

// Track returns the track stored under name.
func (m *Manager[T]) Track(name string) (Track[T], bool) {
	t, ok := m.tracks[name]
	return t, ok
}

// Names returns the track names in sorted order.
func (m *Manager[T]) Names() []string {
	names := make([]string, 0, len(m.tracks))
	for name := range m.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the selected track.
func (m *Manager[T]) Current() (Track[T], error) {
	if !m.chosen {
		return nil, &TrackError{Err: ErrNoSelection}
	}
	t, ok := m.tracks[m.selected]
	if !ok {
		return nil, &TrackError{Name: m.selected, Err: ErrUnknownTrack}
	}
	return t, nil
}

func (m *Manager[T]) mustCurrent() Track[T] {
	t, err := m.Current()
	if err != nil {
		panic(err)
	}
	return t
}

// Update advances the selected track by dt seconds.
func (m *Manager[T]) Update(dt float64) {
	m.mustCurrent().Update(dt)
}

// Reset rewinds the selected track.
func (m *Manager[T]) Reset() {
	m.mustCurrent().Reset()
}

// Finished reports whether the selected track completed during its last Update.
func (m *Manager[T]) Finished() bool {
	return m.mustCurrent().Finished()
}

// Value returns the selected track's current value.
func (m *Manager[T]) Value() T {
	return m.mustCurrent().Value()
}

// InterpolatedManager is a Manager restricted to interpolated tracks.
type InterpolatedManager[T Interpolatable[T]] struct {
	Manager[T]
}

// NewInterpolatedManager creates an empty InterpolatedManager.
func NewInterpolatedManager[T Interpolatable[T]]() *InterpolatedManager[T] {
	m := new(InterpolatedManager[T])
	m.tracks = make(map[string]Track[T])
	return m
}

// AddTrack stores a under name, replacing any previous track of that name.
func (m *InterpolatedManager[T]) AddTrack(name string, a *InterpolatedAnimation[T]) {
	m.Manager.AddTrack(name, a)
}

// Animation returns the interpolated track stored under name.
func (m *InterpolatedManager[T]) Animation(name string) (*InterpolatedAnimation[T], bool) {
	t, ok := m.tracks[name]
	if !ok {
		return nil, false
	}
	a, ok := t.(*InterpolatedAnimation[T])
	return a, ok
}
