package stream

import (
	"reflect"
	"testing"
)

func solidTrack(name string, autoReset bool, colours ...string) TrackDef {
	def := TrackDef{Name: name, AutoReset: autoReset, Duration: 1.0}
	for _, c := range colours {
		def.Keyframes = append(def.Keyframes, KeyframeDef{Colour: c})
	}
	return def
}

func newTestController(t *testing.T, playlist []string, defs ...TrackDef) (*Controller, *CommandQueue) {
	t.Helper()
	q := NewCommandQueue()
	c := NewController(playlist, q)
	if err := c.Load(defs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c, q
}

func TestControllerPlaylistAdvancesOnFinish(t *testing.T) {
	c, _ := newTestController(t, []string{"a", "b"},
		solidTrack("a", false, "#ff0000", "#00ff00"),
		solidTrack("b", false, "#0000ff"),
	)

	steps := []struct {
		dt       float64
		selected string
		finished bool
		pixel    string
	}{
		{1.0, "a", false, "#00ff00"},
		{1.0, "b", true, "#0000ff"},
		{0.5, "b", false, "#0000ff"},
		{0.5, "a", true, "#ff0000"},
	}

	for i, s := range steps {
		f := c.Tick(s.dt)
		status := c.Status()
		if status.Selected != s.selected || status.Finished != s.finished {
			t.Fatalf("step %d: status = %+v, want selected %s finished %v", i, status, s.selected, s.finished)
		}
		if got := f.Pixel(0).Hex(); got != s.pixel {
			t.Fatalf("step %d: pixel = %s, want %s", i, got, s.pixel)
		}
	}
}

func TestControllerWithoutPlaylistHolds(t *testing.T) {
	c, _ := newTestController(t, nil,
		solidTrack("b", false, "#000000", "#ffffff"),
		solidTrack("a", false, "#ff0000"),
	)
	if got := c.Status().Selected; got != "a" {
		t.Fatalf("selected = %s, want first track by name", got)
	}

	c.Tick(5)
	c.Tick(5)
	status := c.Status()
	if status.Selected != "a" || status.Finished {
		t.Fatalf("status = %+v, want held on a", status)
	}
}

func TestControllerCommands(t *testing.T) {
	c, q := newTestController(t, nil,
		solidTrack("fade", false, "#ff0000", "#0000ff"),
		solidTrack("white", false, "#ffffff"),
	)

	q.Push(SelectCommand{Name: "white"})
	if got := c.Tick(0).Pixel(0).Hex(); got != "#ffffff" {
		t.Fatalf("pixel = %s, want #ffffff after select", got)
	}

	q.Push(SelectCommand{Name: "missing"})
	c.Tick(0)
	if got := c.Status().Selected; got != "white" {
		t.Fatalf("selected = %s, unknown select should be ignored", got)
	}

	q.Push(SelectCommand{Name: "fade"})
	c.Tick(1.0)
	if got := c.Status().Index; got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	q.Push(RestartCommand{})
	if got := c.Tick(0).Pixel(0).Hex(); got != "#ff0000" {
		t.Fatalf("pixel = %s, want #ff0000 after restart", got)
	}

	q.Push(ReplaceCommand{Tracks: []TrackDef{
		solidTrack("fade", false, "#00ff00"),
		solidTrack("other", false, "#000000"),
	}})
	f := c.Tick(0)
	status := c.Status()
	if status.Selected != "fade" || f.Pixel(0).Hex() != "#00ff00" {
		t.Fatalf("after replace: selected %s pixel %s", status.Selected, f.Pixel(0).Hex())
	}
	if !reflect.DeepEqual(status.Tracks, []string{"fade", "other"}) {
		t.Fatalf("tracks = %v", status.Tracks)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be drained")
	}
}

func TestControllerLoadErrors(t *testing.T) {
	c := NewController([]string{"ghost"}, NewCommandQueue())
	if err := c.Load(nil); err == nil {
		t.Fatalf("expected error for no tracks")
	}
	if err := c.Load([]TrackDef{solidTrack("a", false, "#000000")}); err == nil {
		t.Fatalf("expected error for undefined playlist track")
	}

	// Nothing loaded yet, so ticking renders black.
	if got := c.Tick(1).Pixel(0).Hex(); got != "#000000" {
		t.Fatalf("pixel = %s, want blank frame", got)
	}
	if got := c.Status().Selected; got != "" {
		t.Fatalf("selected = %q, want none", got)
	}
}

func TestCommandQueueOrder(t *testing.T) {
	q := NewCommandQueue()
	q.Push(SelectCommand{Name: "a"})
	q.Push(RestartCommand{})
	q.Push(SelectCommand{Name: "b"})

	cmds := q.Drain()
	want := []Command{SelectCommand{Name: "a"}, RestartCommand{}, SelectCommand{Name: "b"}}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("drained %v, want %v", cmds, want)
	}
	if len(q.Drain()) != 0 {
		t.Fatalf("second drain should be empty")
	}
}
