package typewriter

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. *time.Timer satisfies Timer, so the real clock
// is a thin wrapper over time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Cycler runs a Machine on two independent timers, one for typing and one
// for the cursor blink, and exposes the current frame to its host.
//
// Timer callbacks may be delivered on any goroutine; they are serialized
// behind mu, and callbacks scheduled before the most recent Stop are
// discarded.
type Cycler struct {
	m        *Machine
	clock    Clock
	onChange func()

	mu      sync.Mutex
	state   State
	running bool
	gen     uint64
	timers  [2]Timer
}

// New constructs a stopped Cycler over phrases. It fails with
// ErrInvalidConfig when phrases is empty, a phrase is empty, typeInterval is
// not positive or hold is negative.
func New(phrases []string, typeInterval, hold time.Duration, opts ...Option) (*Cycler, error) {
	o := buildOptions(opts)
	m, err := newMachine(phrases, typeInterval, hold, o)
	if err != nil {
		return nil, err
	}
	c := &Cycler{
		m:        m,
		clock:    o.clock,
		onChange: o.onChange,
		state:    m.Initial(),
	}
	if c.clock == nil {
		c.clock = realClock{}
	}
	return c, nil
}

// Machine returns the underlying state machine.
func (c *Cycler) Machine() *Machine { return c.m }

// Text returns the currently visible prefix of the active phrase.
func (c *Cycler) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.Text(c.state)
}

// CursorOn reports whether the cursor glyph should be drawn.
func (c *Cycler) CursorOn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CursorVisible
}

// Frame is what a host renders on each sample.
type Frame struct {
	Text   string `json:"text"`
	Cursor bool   `json:"cursor"`
}

// Frame returns the text and cursor flag in one consistent read.
func (c *Cycler) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Frame{Text: c.m.Text(c.state), Cursor: c.state.CursorVisible}
}

// State returns a snapshot of the cycle state.
func (c *Cycler) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether ticks are scheduled.
func (c *Cycler) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start schedules the typing and blink timers. It is a no-op when already
// running. A restarted Cycler resumes from where it stopped, including a
// full hold when it was stopped on a finished phrase.
func (c *Cycler) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.gen++
	c.schedule(TypeTick, c.m.resumeDelay(c.state))
	c.schedule(BlinkTick, c.m.FirstDelay(BlinkTick))
}

// Stop cancels both timers. It is a no-op when already stopped.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	c.gen++
	for i, t := range c.timers {
		if t != nil {
			t.Stop()
			c.timers[i] = nil
		}
	}
}

// schedule must be called with mu held.
func (c *Cycler) schedule(k TickKind, d time.Duration) {
	gen := c.gen
	c.timers[k] = c.clock.AfterFunc(d, func() { c.tick(gen, k) })
}

func (c *Cycler) tick(gen uint64, k TickKind) {
	c.mu.Lock()
	if !c.running || gen != c.gen {
		c.mu.Unlock()
		return
	}
	prev := c.state
	next, d := c.m.Step(prev, k)
	c.state = next
	c.schedule(k, d)
	changed := prev.Index != next.Index || prev.Visible != next.Visible || prev.CursorVisible != next.CursorVisible
	c.mu.Unlock()

	if changed && c.onChange != nil {
		c.onChange()
	}
}
