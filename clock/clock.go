// Package clock supplies the millisecond time source shared by every timed
// behaviour. The core never reads wall time itself; callers pass Now() in.
package clock

import "time"

type Clock interface {
	// Now returns monotonic milliseconds.
	Now() int64
}

// System measures elapsed time from its creation using the monotonic
// reading carried by time.Time.
type System struct {
	start time.Time
}

func NewSystem() *System {
	return &System{start: time.Now()}
}

func (c *System) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual is a settable clock for tests and replays.
type Manual struct {
	ms int64
}

func NewManual(ms int64) *Manual {
	return &Manual{ms: ms}
}

func (c *Manual) Now() int64 { return c.ms }

func (c *Manual) Set(ms int64) { c.ms = ms }

func (c *Manual) Advance(ms int64) { c.ms += ms }

// Pausable stops time while paused: Now resumes from where Pause left it.
type Pausable struct {
	src      Clock
	offset   int64
	pausedAt int64
	paused   bool
}

func NewPausable(src Clock) *Pausable {
	return &Pausable{src: src}
}

func (c *Pausable) Now() int64 {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.src.Now() - c.offset
}

func (c *Pausable) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.src.Now()
}

func (c *Pausable) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.src.Now() - c.pausedAt
	c.paused = false
}

func (c *Pausable) Paused() bool { return c.paused }
