//go:build unit

package commands_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"shop-winback/internal/pkg/clock"
	"shop-winback/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWait_Wait_StaysWithinBounds(t *testing.T) {
	start := time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	waiter := commands.NewRandomWait(clk, 120*time.Second, 300*time.Second).
		WithSource(rand.NewPCG(1, 2))

	var total time.Duration
	for range 200 {
		d, err := waiter.Wait(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d, 120*time.Second)
		assert.LessOrEqual(t, d, 300*time.Second)
		assert.Zero(t, d%time.Second, "wait must be a whole number of seconds")
		total += d
	}

	assert.Len(t, clk.Sleeps(), 200)
	assert.Equal(t, start.Add(total), clk.Now())
}

func TestRandomWait_Wait_SameSourceSameSequence(t *testing.T) {
	a := commands.NewRandomWait(clock.NewMockClock(time.Now()), 120*time.Second, 300*time.Second).WithSource(rand.NewPCG(7, 7))
	b := commands.NewRandomWait(clock.NewMockClock(time.Now()), 120*time.Second, 300*time.Second).WithSource(rand.NewPCG(7, 7))

	for range 20 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandomWait_Wait_DegenerateRange(t *testing.T) {
	waiter := commands.NewRandomWait(clock.NewMockClock(time.Now()), 5*time.Second, 5*time.Second)

	d, err := waiter.Wait(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestRandomWait_Wait_CancelledContext(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	waiter := commands.NewRandomWait(clk, 120*time.Second, 300*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := waiter.Wait(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, clk.Sleeps())
}

func TestNoWait_Wait(t *testing.T) {
	d, err := commands.NoWait{}.Wait(context.Background())

	require.NoError(t, err)
	assert.Zero(t, d)
}
