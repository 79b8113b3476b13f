package anim

import "math"

// cursor is the mutable playback position shared by both players.
//
// Overshoot past a frame's duration is carried into the following frame, so
// the position after a run of updates depends only on the summed deltas. When
// an auto-resetting track wraps, the remaining time rolls over into the next
// cycle.
type cursor struct {
	index    int
	elapsed  float64
	finished bool
	// held is set once a non-looping track reaches its last frame.
	held bool

	AutoReset bool
}

// step advances the cursor by dt through n frames whose durations are given
// by duration.
func (c *cursor) step(dt float64, n int, duration func(int) float64) {
	c.finished = false
	if c.held {
		return
	}
	c.elapsed += dt

	for c.elapsed >= duration(c.index) {
		c.elapsed -= duration(c.index)

		if c.index < n-1 {
			c.index++
			continue
		}

		c.finished = true
		if !c.AutoReset {
			c.held = true
			c.elapsed = 0
			return
		}

		c.index = 0
		cycle := 0.0
		for i := 0; i < n; i++ {
			cycle += duration(i)
		}
		if cycle <= 0 {
			c.elapsed = 0
			return
		}
		c.elapsed = math.Mod(c.elapsed, cycle)
	}
}

func (c *cursor) reset() {
	c.index = 0
	c.elapsed = 0
	c.finished = false
	c.held = false
}
