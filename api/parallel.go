// File: api/parallel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared result types for parallel range operations.

package api

// Outcome reports how a range operation ended.
type Outcome int

const (
	// Completed means every chunk finished its full sub-range.
	Completed Outcome = iota

	// StoppedEarly means a callback requested an early stop; not every
	// index has necessarily been visited.
	StoppedEarly
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case StoppedEarly:
		return "stopped-early"
	default:
		return "unknown"
	}
}
