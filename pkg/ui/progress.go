package ui

import "time"

// Tracker times a run for the console summary
type Tracker struct {
	StartTime time.Time

	now func() time.Time
}

// NewTracker creates a tracker starting now
func NewTracker() *Tracker {
	t := &Tracker{now: time.Now}
	t.StartTime = t.now()
	return t
}

// Reset restarts the clock
func (t *Tracker) Reset() {
	t.StartTime = t.now()
}

// Elapsed returns the time since the tracker started
func (t *Tracker) Elapsed() time.Duration {
	return t.now().Sub(t.StartTime)
}
