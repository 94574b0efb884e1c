package pacer

import (
	"context"
	"time"
)

// Pacer suspends the caller between two units of work
type Pacer interface {
	// Wait blocks for the pause or until ctx is done
	Wait(ctx context.Context) error
}

// Fixed pauses for the same duration every time
type Fixed struct {
	Delay time.Duration
}

// NewFixed creates a fixed-delay pacer
func NewFixed(delay time.Duration) *Fixed {
	return &Fixed{Delay: delay}
}

// Wait sleeps for Delay. It returns ctx.Err() if ctx ends first.
func (f *Fixed) Wait(ctx context.Context) error {
	if f.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Recorder counts pauses without sleeping
type Recorder struct {
	Calls int
}

// Wait records the call and returns immediately
func (r *Recorder) Wait(ctx context.Context) error {
	r.Calls++
	return ctx.Err()
}
