package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/batch-service/internal/circuitbreaker"
)

func newTestBreaker(timeout time.Duration) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          timeout,
		Name:             "test",
	})
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := newTestBreaker(time.Minute)
	failure := errors.New("boom")

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func() error { return failure })
		assert.ErrorIs(t, err, failure)
	}
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())

	// While open, calls are rejected without running fn.
	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := newTestBreaker(time.Minute)
	failure := errors.New("boom")

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return failure })
	}
	assert.NoError(t, cb.Execute(context.Background(), func() error { return nil }))

	// Two more failures are below the threshold again.
	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return failure })
	}
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := newTestBreaker(10 * time.Millisecond)
	failure := errors.New("boom")

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return failure })
	}
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	// Two half-open successes close the circuit.
	assert.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(10 * time.Millisecond)
	failure := errors.New("boom")

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return failure })
	}
	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return failure })
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := newTestBreaker(time.Minute)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })
	}

	stats = cb.GetStats()
	assert.Equal(t, "open", stats.State)
	assert.False(t, stats.IsHealthy)
	assert.Equal(t, 3, stats.FailureCount)
}
