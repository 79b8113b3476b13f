package stream

import (
	"sync"

	"github.com/pkg/errors"
)

// A Command is a change to the Controller that is staged from another
// goroutine and applied at the start of the next tick.
type Command interface {
	Apply(c *Controller) error
}

// SelectCommand switches to the named track and restarts it.
type SelectCommand struct {
	Name string
}

// Apply implements Command.
func (s SelectCommand) Apply(c *Controller) error {
	if _, ok := c.manager.Track(s.Name); !ok {
		return errors.Errorf("select: unknown track %q", s.Name)
	}
	c.play(s.Name)
	return nil
}

// RestartCommand rewinds the selected track.
type RestartCommand struct{}

// Apply implements Command.
func (RestartCommand) Apply(c *Controller) error {
	if _, err := c.manager.Current(); err != nil {
		return errors.Wrap(err, "restart")
	}
	c.manager.Reset()
	return nil
}

// ReplaceCommand swaps in a freshly loaded set of tracks.
type ReplaceCommand struct {
	Tracks []TrackDef
}

// Apply implements Command.
func (r ReplaceCommand) Apply(c *Controller) error {
	return c.Load(r.Tracks)
}

// CommandQueue collects commands from any goroutine until the owner of the
// Controller drains them.
type CommandQueue struct {
	mu      sync.Mutex
	pending []Command
}

// NewCommandQueue creates an empty CommandQueue.
func NewCommandQueue() *CommandQueue {
	return new(CommandQueue)
}

// Push stages cmd.
func (q *CommandQueue) Push(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain removes and returns the staged commands in the order they were pushed.
func (q *CommandQueue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	cmds := q.pending
	q.pending = nil
	return cmds
}

// Len returns the number of staged commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
