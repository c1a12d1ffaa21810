package domain

import (
	"errors"
	"time"
)

var (
	ErrSameAirport      = errors.New("source and destination must differ")
	ErrInvalidTimeRange = errors.New("arrival time must be after departure time")
	ErrPastDeparture    = errors.New("the time of departure cannot be in the past")
	ErrBadStatus        = errors.New("invalid flight status")
)

// ValidateRoute rejects routes that start and end at the same airport.
func ValidateRoute(sourceID, destinationID int64) error {
	if sourceID == destinationID {
		return ErrSameAirport
	}
	return nil
}

// ValidateFlightTimes enforces the scheduling invariants at creation time:
// departure strictly before arrival and not in the past relative to now.
func ValidateFlightTimes(departure, arrival, now time.Time) error {
	if !departure.Before(arrival) {
		return ErrInvalidTimeRange
	}

	if departure.Before(now) {
		return ErrPastDeparture
	}

	return nil
}
