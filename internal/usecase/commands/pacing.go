package commands

import (
	"context"
	"math/rand/v2"
	"time"

	"shop-winback/internal/pkg/clock"
)

// RandomWait sleeps a uniformly random whole number of seconds in [min, max].
// The pause between messages is the channel's rate limit, not an incidental delay.
type RandomWait struct {
	clock clock.Clock
	min   time.Duration
	max   time.Duration
	intN  func(n int) int
}

func NewRandomWait(clk clock.Clock, minWait, maxWait time.Duration) *RandomWait {
	return &RandomWait{
		clock: clk,
		min:   minWait,
		max:   maxWait,
		intN:  rand.IntN,
	}
}

// WithSource makes the sampled durations reproducible.
func (w *RandomWait) WithSource(src rand.Source) *RandomWait {
	r := rand.New(src)
	w.intN = r.IntN
	return w
}

func (w *RandomWait) Next() time.Duration {
	minSec := int(w.min / time.Second)
	maxSec := int(w.max / time.Second)
	if maxSec <= minSec {
		return time.Duration(minSec) * time.Second
	}
	return time.Duration(minSec+w.intN(maxSec-minSec+1)) * time.Second
}

func (w *RandomWait) Wait(ctx context.Context) (time.Duration, error) {
	d := w.Next()
	if err := w.clock.Sleep(ctx, d); err != nil {
		return 0, err
	}
	return d, nil
}

// NoWait disables pacing.
type NoWait struct{}

func (NoWait) Wait(context.Context) (time.Duration, error) { return 0, nil }
