package stream

import (
	"log"
	"sync"

	"github.com/matt-g-everett/ledanim/anim"
	"github.com/pkg/errors"
)

// Status is a snapshot of the Controller safe to read from other goroutines.
type Status struct {
	Selected string   `json:"selected"`
	Tracks   []string `json:"tracks"`
	Index    int      `json:"index"`
	Finished bool     `json:"finished"`
}

// Controller that manages animations. It owns an animation manager and is
// driven by one goroutine through Tick; other goroutines talk to it through
// its CommandQueue and Status.
type Controller struct {
	manager  *anim.InterpolatedManager[*Frame]
	playlist []string
	position int
	commands *CommandQueue
	blank    *Frame

	mu     sync.RWMutex
	status Status
}

// NewController creates a Controller that, whenever the current track
// finishes, moves on to the next name in playlist. With an empty playlist the
// current track keeps playing.
func NewController(playlist []string, commands *CommandQueue) *Controller {
	c := new(Controller)
	c.manager = anim.NewInterpolatedManager[*Frame]()
	c.playlist = playlist
	c.commands = commands
	c.blank = NewFrame()
	return c
}

// Load builds every track in defs and replaces the current set. The selected
// track survives a reload when it still exists; otherwise playback starts at
// the head of the playlist, or the first track by name.
func (c *Controller) Load(defs []TrackDef) error {
	if len(defs) == 0 {
		return errors.New("load: no tracks")
	}

	manager := anim.NewInterpolatedManager[*Frame]()
	for i := range defs {
		a, err := defs[i].Build()
		if err != nil {
			return errors.Wrap(err, "load")
		}
		manager.AddTrack(defs[i].Name, a)
	}
	for _, name := range c.playlist {
		if _, ok := manager.Track(name); !ok {
			return errors.Errorf("load: playlist track %q not defined", name)
		}
	}

	selected, ok := c.manager.Selected()
	c.manager = manager
	if _, exists := manager.Track(selected); ok && exists {
		c.play(selected)
	} else if len(c.playlist) > 0 {
		c.play(c.playlist[0])
	} else {
		c.play(manager.Names()[0])
	}

	playing, _ := c.manager.Selected()
	log.Printf("Loaded %d tracks, playing %q", len(defs), playing)
	return nil
}

// play selects name, restarts it and lines the playlist up with it.
func (c *Controller) play(name string) {
	c.manager.Select(name)
	c.manager.Reset()
	for i, n := range c.playlist {
		if n == name {
			c.position = i
			break
		}
	}
	c.publishStatus()
}

func (c *Controller) advance() {
	if len(c.playlist) == 0 {
		return
	}
	c.position = (c.position + 1) % len(c.playlist)
	c.manager.Select(c.playlist[c.position])
	c.manager.Reset()
}

// Tick applies staged commands, advances the selected track by dt seconds and
// returns the frame to display. When the track finishes during this tick the
// playlist moves on, and the returned frame is the first one of the next
// track.
func (c *Controller) Tick(dt float64) *Frame {
	for _, cmd := range c.commands.Drain() {
		if err := cmd.Apply(c); err != nil {
			log.Printf("Command %T failed: %v", cmd, err)
		}
	}

	if _, err := c.manager.Current(); err != nil {
		return c.blank
	}

	c.manager.Update(dt)
	finished := c.manager.Finished()
	if finished {
		c.advance()
	}
	c.publishStatus()
	c.setFinished(finished)

	return c.manager.Value()
}

func (c *Controller) publishStatus() {
	name, _ := c.manager.Selected()
	index := 0
	if a, ok := c.manager.Animation(name); ok {
		index = a.Index()
	}

	c.mu.Lock()
	c.status = Status{
		Selected: name,
		Tracks:   c.manager.Names(),
		Index:    index,
	}
	c.mu.Unlock()
}

func (c *Controller) setFinished(finished bool) {
	c.mu.Lock()
	c.status.Finished = finished
	c.mu.Unlock()
}

// Status returns the state as of the last tick or command.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.status
	s.Tracks = append([]string(nil), s.Tracks...)
	return s
}
