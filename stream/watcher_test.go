package stream

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchedTracks = `
tracks:
  - name: solid
    duration: 1
    keyframes:
      - colour: "#123456"
`

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.yaml")
	if err := os.WriteFile(path, []byte("tracks: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	q := NewCommandQueue()
	w, err := NewWatcher(path, q)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if w.Reload() {
		t.Fatalf("Reload of a broken file should fail")
	}
	if q.Len() != 0 {
		t.Fatalf("broken file should not stage a command")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(path, []byte(watchedTracks), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for q.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("no reload staged after writing the file")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// A write may be reported more than once; every staged command carries
	// the new tracks.
	for _, cmd := range q.Drain() {
		replace, ok := cmd.(ReplaceCommand)
		if !ok {
			t.Fatalf("staged %T, want ReplaceCommand", cmd)
		}
		if len(replace.Tracks) != 1 || replace.Tracks[0].Name != "solid" {
			t.Fatalf("staged tracks %+v", replace.Tracks)
		}
	}
}
