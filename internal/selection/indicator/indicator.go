// Package indicator animates the validity outline of a form between its states.
package indicator

import (
	"time"
)

// DefaultDuration is how long a transition between states takes.
const DefaultDuration = 300 * time.Millisecond

// State is the validity the indicator shows.
type State int

const (
	Unvalidated State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Option configures an Indicator.
type Option func(*Indicator)

// WithDuration sets the transition duration. Non-positive durations switch instantly.
func WithDuration(d time.Duration) Option {
	return func(i *Indicator) {
		i.duration = d
	}
}

// WithClock replaces time.Now.
func WithClock(clock Clock) Option {
	return func(i *Indicator) {
		i.now = clock
	}
}

// Indicator is a {Unvalidated, Valid, Invalid} state plus a tween of a progress value
// in [0, 1]: toward 1 while invalid, toward 0 otherwise. The zero value is not usable;
// values are safe to copy and a copy keeps animating independently.
type Indicator struct {
	state    State
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	now      Clock
}

// New returns an unvalidated indicator at rest.
func New(opts ...Option) Indicator {
	i := Indicator{
		duration: DefaultDuration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&i)
	}
	i.start = i.now()

	return i
}

// State returns the state last set.
func (i *Indicator) State() State {
	return i.state
}

// Set moves to state. A tween already running is retargeted from its current value.
func (i *Indicator) Set(state State) {
	if state == i.state {
		return
	}

	i.from = i.Progress()
	i.to = target(state)
	i.start = i.now()
	i.state = state
}

// Progress returns the animated value at the current time.
func (i *Indicator) Progress() float64 {
	if i.duration <= 0 {
		return i.to
	}

	t := float64(i.now().Sub(i.start)) / float64(i.duration)
	switch {
	case t <= 0:
		return i.from
	case t >= 1:
		return i.to
	}

	return i.from + (i.to-i.from)*EaseInOut(t)
}

// Animating reports whether the tween has not reached its target yet.
func (i *Indicator) Animating() bool {
	return i.duration > 0 && i.from != i.to && i.now().Sub(i.start) < i.duration
}

// EaseInOut is the cubic ease-in-out curve on [0, 1].
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}

	u := -2*t + 2

	return 1 - u*u*u/2
}

func target(state State) float64 {
	if state == Invalid {
		return 1
	}

	return 0
}
