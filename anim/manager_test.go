package anim

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func expectTrackPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic = %v, want %v", r, want)
		}
	}()
	fn()
}

func TestManagerForwardsToSelected(t *testing.T) {
	m := NewManager[string]()
	idle, _ := NewAnimation([]string{"i0", "i1"}, 1.0)
	walk, _ := NewAnimation([]string{"w0", "w1", "w2"}, 0.5)
	m.AddTrack("idle", idle)
	m.AddTrack("walk", walk)

	m.Select("walk")
	m.Update(0.5)
	if m.Value() != "w1" {
		t.Fatalf("value = %q, want w1", m.Value())
	}
	if idle.Index() != 0 {
		t.Fatalf("unselected track advanced to %d", idle.Index())
	}

	// Driving idle directly leaves walk alone.
	idle.Update(1.0)
	if walk.Index() != 1 || walk.Elapsed() != 0 {
		t.Fatalf("walk cursor = (%d, %v), want (1, 0)", walk.Index(), walk.Elapsed())
	}

	m.Update(0.5)
	m.Update(0.5)
	if !m.Finished() {
		t.Fatalf("walk should report finished")
	}
	m.Reset()
	if m.Value() != "w0" || m.Finished() {
		t.Fatalf("after reset: value=%q finished=%v", m.Value(), m.Finished())
	}
}

func TestManagerSelectDoesNotReset(t *testing.T) {
	m := NewManager[int]()
	a, _ := NewAnimation([]int{1, 2, 3}, 1.0)
	b, _ := NewAnimation([]int{4, 5}, 1.0)
	m.AddTrack("a", a)
	m.AddTrack("b", b)

	m.Select("a")
	m.Update(1.5)
	m.Select("b")
	m.Select("a")
	if m.Value() != 2 || a.Elapsed() != 0.5 {
		t.Fatalf("value=%d elapsed=%v, selection should not touch the cursor", m.Value(), a.Elapsed())
	}
}

func TestManagerAddTrackReplaces(t *testing.T) {
	m := NewManager[int]()
	a, _ := NewAnimation([]int{1}, 1.0)
	b, _ := NewAnimation([]int{2}, 1.0)
	m.AddTrack("x", a)
	m.Select("x")
	m.AddTrack("x", b)

	if m.Value() != 2 {
		t.Fatalf("value = %d, want replaced track", m.Value())
	}
	if name, ok := m.Selected(); !ok || name != "x" {
		t.Fatalf("selected = %q %v, want x true", name, ok)
	}
	if got := m.Names(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("names = %v", got)
	}
}

func TestManagerPreconditions(t *testing.T) {
	m := NewManager[int]()
	a, _ := NewAnimation([]int{1}, 1.0)
	m.AddTrack("a", a)

	if _, err := m.Current(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("Current err = %v, want ErrNoSelection", err)
	}

	calls := map[string]func(){
		"update":   func() { m.Update(0.1) },
		"reset":    func() { m.Reset() },
		"finished": func() { m.Finished() },
		"value":    func() { m.Value() },
	}
	for name, call := range calls {
		t.Run("unselected_"+name, func(t *testing.T) {
			expectTrackPanic(t, ErrNoSelection, call)
		})
	}

	m.Select("missing")
	_, err := m.Current()
	var te *TrackError
	if !errors.As(err, &te) || te.Name != "missing" || !errors.Is(err, ErrUnknownTrack) {
		t.Fatalf("Current err = %v, want unknown track missing", err)
	}
	for name, call := range calls {
		t.Run("unknown_"+name, func(t *testing.T) {
			expectTrackPanic(t, ErrUnknownTrack, call)
		})
	}
}

func TestInterpolatedManager(t *testing.T) {
	m := NewInterpolatedManager[scalar]()
	fade, err := NewInterpolatedAnimation([]scalar{0, 10}, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewInterpolatedAnimation: %v", err)
	}
	m.AddTrack("fade", fade)
	m.Select("fade")

	m.Update(0.5)
	if !near(m.Value(), 5) {
		t.Fatalf("value = %v, want 5", m.Value())
	}
	got, ok := m.Animation("fade")
	if !ok || got != fade {
		t.Fatalf("Animation lookup failed")
	}
	if _, ok := m.Animation("none"); ok {
		t.Fatalf("Animation lookup for unknown name should fail")
	}
}
