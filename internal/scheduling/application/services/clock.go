// Package services contains the scheduling algorithms: slot search,
// conflict detection, and reschedule application.
package services

import "time"

// Clock supplies the current time. Search and planning logic never read
// the wall clock directly so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
