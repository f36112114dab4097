package itinerary

import (
	"errors"

	"github.com/roamplan/roam/pkg/travelplan"
)

// ErrSchedulingConflict is a user facing validation failure, never a
// system failure.
var ErrSchedulingConflict = errors.New("another stop is already scheduled at that date & time")

// HasConflict reports whether any existing stop occupies exactly the
// candidate (date, startTime) slot. A journey only ever holds tens of
// stops so the linear scan is fine.
//
// When validating an update the caller must exclude the stop being
// edited from the comparison set - HasConflict has no concept of self.
func HasConflict(existingStops []travelplan.Stop, candidateDate string, candidateTime string) bool {
	for _, stop := range existingStops {
		if stop.Date == candidateDate && stop.StartTime == candidateTime {
			return true
		}
	}

	return false
}
