// Package typewriter animates a fixed list of phrases the way a person types
// them: characters appear one at a time at an irregular pace, the finished
// phrase holds for a moment, then it is backspaced quickly and the next phrase
// begins. The cycle never ends.
//
// Machine is the pure state machine. Cycler hosts a Machine on a Clock and is
// what servers and pages mount.
package typewriter

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// ErrInvalidConfig is returned when a Machine or Cycler is constructed with
// unusable phrases or intervals.
var ErrInvalidConfig = errors.New("invalid typewriter config")

// Default cosmetic intervals.
const (
	DefaultBlinkInterval = 530 * time.Millisecond
	minDeleteInterval    = time.Millisecond
)

// Direction is the active phase of the cycle.
type Direction int

const (
	Growing Direction = iota
	Shrinking
)

func (d Direction) String() string {
	switch d {
	case Growing:
		return "growing"
	case Shrinking:
		return "shrinking"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// TickKind identifies which of the two independent timers fired.
type TickKind int

const (
	// TypeTick advances typing, holding or deleting.
	TypeTick TickKind = iota
	// BlinkTick toggles the cursor.
	BlinkTick
)

// State is the full cycle state. The zero value is not a valid starting
// point because the cursor starts visible; use Machine.Initial.
type State struct {
	Index         int
	Visible       int
	Direction     Direction
	CursorVisible bool
}

// Machine holds the phrase sequence and timing parameters. It carries no
// mutable cycle state, so a single Machine can drive any number of States.
type Machine struct {
	phrases [][]rune

	typeInterval   time.Duration
	deleteInterval time.Duration
	hold           time.Duration
	blinkInterval  time.Duration

	int64n func(int64) int64
}

type options struct {
	deleteInterval time.Duration
	blinkInterval  time.Duration
	rng            *rand.Rand
	clock          Clock
	onChange       func()
}

// Option configures a Machine or Cycler.
type Option func(*options)

// WithDeleteInterval sets the fixed per-character delay while shrinking.
// Defaults to half the type interval.
func WithDeleteInterval(d time.Duration) Option {
	return func(o *options) { o.deleteInterval = d }
}

// WithBlinkInterval sets the cursor toggle period.
func WithBlinkInterval(d time.Duration) Option {
	return func(o *options) { o.blinkInterval = d }
}

// WithRand sets the source used for typing jitter. A *rand.Rand is not safe
// for concurrent use, so do not share one between Machines stepped from
// different goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithClock sets the timer facility a Cycler schedules ticks on.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithOnChange registers fn to be called after every tick that changes the
// visible text or the cursor. fn runs outside the Cycler's lock and may call
// back into it.
func WithOnChange(fn func()) Option {
	return func(o *options) { o.onChange = fn }
}

// NewMachine validates phrases and intervals and returns a Machine.
func NewMachine(phrases []string, typeInterval, hold time.Duration, opts ...Option) (*Machine, error) {
	o := buildOptions(opts)
	return newMachine(phrases, typeInterval, hold, o)
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newMachine(phrases []string, typeInterval, hold time.Duration, o options) (*Machine, error) {
	if err := Validate(phrases, typeInterval, hold); err != nil {
		return nil, err
	}

	m := &Machine{
		phrases:        make([][]rune, len(phrases)),
		typeInterval:   typeInterval,
		hold:           hold,
		deleteInterval: o.deleteInterval,
		blinkInterval:  o.blinkInterval,
		int64n:         rand.Int64N,
	}
	for i, p := range phrases {
		m.phrases[i] = []rune(p)
	}
	if m.deleteInterval <= 0 {
		m.deleteInterval = max(typeInterval/2, minDeleteInterval)
	}
	if m.blinkInterval <= 0 {
		m.blinkInterval = DefaultBlinkInterval
	}
	if o.rng != nil {
		m.int64n = o.rng.Int64N
	}
	return m, nil
}

// ValidatePhrases reports whether phrases is a usable phrase sequence.
func ValidatePhrases(phrases []string) error {
	if len(phrases) == 0 {
		return fmt.Errorf("no phrases: %w", ErrInvalidConfig)
	}
	for i, p := range phrases {
		if p == "" {
			return fmt.Errorf("phrase %d is empty: %w", i, ErrInvalidConfig)
		}
	}
	return nil
}

// Validate reports whether phrases and intervals can drive a Machine.
func Validate(phrases []string, typeInterval, hold time.Duration) error {
	if err := ValidatePhrases(phrases); err != nil {
		return err
	}
	if typeInterval <= 0 {
		return fmt.Errorf("type interval must be positive, got %s: %w", typeInterval, ErrInvalidConfig)
	}
	if hold < 0 {
		return fmt.Errorf("hold must be non-negative, got %s: %w", hold, ErrInvalidConfig)
	}
	return nil
}

// Initial returns the starting state: first phrase, nothing typed, cursor on.
func (m *Machine) Initial() State {
	return State{Index: 0, Visible: 0, Direction: Growing, CursorVisible: true}
}

// Len returns the number of phrases.
func (m *Machine) Len() int { return len(m.phrases) }

// Phrase returns phrase i.
func (m *Machine) Phrase(i int) string { return string(m.phrases[i]) }

// PhraseLen returns the length of phrase i in runes.
func (m *Machine) PhraseLen(i int) int { return len(m.phrases[i]) }

// Text returns the visible prefix of the active phrase in s.
func (m *Machine) Text(s State) string {
	return string(m.phrases[s.Index][:s.Visible])
}

// Holding reports whether s is paused on a fully typed phrase.
func (m *Machine) Holding(s State) bool {
	return s.Direction == Growing && s.Visible == len(m.phrases[s.Index])
}

// FirstDelay returns the delay before the first tick of kind k.
func (m *Machine) FirstDelay(k TickKind) time.Duration {
	if k == BlinkTick {
		return m.blinkInterval
	}
	return m.typeDelay()
}

// Step applies one tick of kind k to s and returns the next state together
// with the delay until the next tick of the same kind. s must come from
// Initial or a previous Step on the same Machine.
func (m *Machine) Step(s State, k TickKind) (State, time.Duration) {
	if k == BlinkTick {
		s.CursorVisible = !s.CursorVisible
		return s, m.blinkInterval
	}

	n := len(m.phrases[s.Index])
	switch s.Direction {
	case Growing:
		if s.Visible < n {
			s.Visible++
			if s.Visible == n {
				return s, m.hold
			}
			return s, m.typeDelay()
		}
		// Hold elapsed.
		s.Direction = Shrinking
		return s, m.deleteInterval
	default:
		if s.Visible > 0 {
			s.Visible--
		}
		if s.Visible == 0 {
			s.Index = (s.Index + 1) % len(m.phrases)
			s.Direction = Growing
			return s, m.typeDelay()
		}
		return s, m.deleteInterval
	}
}

// typeDelay draws a uniform value in [0, 2*typeInterval) and never returns
// less than typeInterval. The ceiling saturates for very long intervals.
func (m *Machine) typeDelay() time.Duration {
	ceil := int64(m.typeInterval)
	if ceil <= math.MaxInt64/2 {
		ceil *= 2
	}
	jitter := time.Duration(m.int64n(ceil))
	return max(m.typeInterval, jitter)
}

// resumeDelay returns the delay before the next type tick when a host picks
// s back up after a pause.
func (m *Machine) resumeDelay(s State) time.Duration {
	switch {
	case m.Holding(s):
		return m.hold
	case s.Direction == Shrinking:
		return m.deleteInterval
	default:
		return m.typeDelay()
	}
}
