// Package timetest times units of work and aggregates repeated runs.
//
// A Func performs one unit of work, measures it with Start/Stop (or Time)
// and reports a State. A Run executes a Func N times and returns Results
// with min/max/avg/total durations, p50/p99 and success/failure/skip
// counts, depending on the enabled Features.
package timetest

import (
	"time"
)

// State is the outcome of a single measured test.
type State uint8

const (
	// Unknown means the test never set its state. With CheckResults
	// enabled this is an error.
	Unknown State = iota
	Success
	Failure
	Skipped
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Skipped:
		return "skipped"
	}
	return "invalid"
}

// Test is a single measurement.
type Test struct {
	Caption string
	Start   time.Time
	End     time.Time
	Taken   time.Duration
	State   State
}

// Start begins a measurement.
func Start(caption string) Test {
	return Test{Caption: caption, Start: time.Now()}
}

// Stop ends the measurement and records the time taken.
func (t *Test) Stop() {
	t.End = time.Now()
	t.Taken = t.End.Sub(t.Start)
}

// Time measures fn as one opaque unit of work. The returned Test carries
// the state fn reported.
func Time(caption string, fn func() State) Test {
	t := Start(caption)
	state := fn()
	t.Stop()
	t.State = state
	return t
}

// Discard measures fn and marks the test successful.
func Discard(caption string, fn func()) Test {
	return Time(caption, func() State {
		fn()
		return Success
	})
}
