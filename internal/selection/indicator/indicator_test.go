package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestIndicator() (*Indicator, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ind := New(WithClock(clock.Now))

	return &ind, clock
}

func TestIndicator_StartsUnvalidatedAtRest(t *testing.T) {
	ind, _ := newTestIndicator()

	assert.Equal(t, Unvalidated, ind.State())
	assert.Zero(t, ind.Progress())
	assert.False(t, ind.Animating())
}

func TestIndicator_TweenEndpoints(t *testing.T) {
	ind, clock := newTestIndicator()

	ind.Set(Invalid)
	assert.Zero(t, ind.Progress())
	assert.True(t, ind.Animating())

	clock.Advance(DefaultDuration / 2)
	assert.InDelta(t, 0.5, ind.Progress(), 1e-9)

	clock.Advance(DefaultDuration / 2)
	assert.Equal(t, 1.0, ind.Progress())
	assert.False(t, ind.Animating())

	clock.Advance(time.Second)
	assert.Equal(t, 1.0, ind.Progress())
}

func TestIndicator_ValidHeadsBackToZero(t *testing.T) {
	ind, clock := newTestIndicator()

	ind.Set(Invalid)
	clock.Advance(DefaultDuration)
	ind.Set(Valid)

	assert.Equal(t, 1.0, ind.Progress())
	clock.Advance(DefaultDuration)
	assert.Zero(t, ind.Progress())
	assert.Equal(t, Valid, ind.State())
}

func TestIndicator_RetargetStartsFromCurrentValue(t *testing.T) {
	ind, clock := newTestIndicator()

	ind.Set(Invalid)
	clock.Advance(DefaultDuration / 4)
	mid := ind.Progress()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 0.5)

	ind.Set(Valid)
	assert.InDelta(t, mid, ind.Progress(), 1e-9)

	clock.Advance(DefaultDuration / 2)
	assert.Less(t, ind.Progress(), mid)

	clock.Advance(DefaultDuration / 2)
	assert.Zero(t, ind.Progress())
}

func TestIndicator_SameStateDoesNotRestart(t *testing.T) {
	ind, clock := newTestIndicator()

	ind.Set(Invalid)
	clock.Advance(DefaultDuration / 2)
	before := ind.Progress()

	ind.Set(Invalid)
	assert.Equal(t, before, ind.Progress())
}

func TestIndicator_ZeroDurationSwitchesInstantly(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ind := New(WithClock(clock.Now), WithDuration(0))

	ind.Set(Invalid)
	assert.Equal(t, 1.0, ind.Progress())
	assert.False(t, ind.Animating())
}

func TestIndicator_CopyAnimatesIndependently(t *testing.T) {
	ind, clock := newTestIndicator()
	ind.Set(Invalid)

	snapshot := *ind
	ind.Set(Valid)
	clock.Advance(DefaultDuration)

	assert.Equal(t, 1.0, snapshot.Progress())
	assert.Zero(t, ind.Progress())
}

func TestEaseInOut(t *testing.T) {
	assert.Zero(t, EaseInOut(0))
	assert.Equal(t, 0.5, EaseInOut(0.5))
	assert.Equal(t, 1.0, EaseInOut(1))
	assert.Less(t, EaseInOut(0.25), 0.25)
	assert.Greater(t, EaseInOut(0.75), 0.75)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unvalidated", Unvalidated.String())
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "invalid", Invalid.String())
}
