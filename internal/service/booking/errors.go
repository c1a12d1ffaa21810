package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyTicketList  = errors.New("ticket list must not be empty")
	ErrMultiFlightOrder = errors.New("all tickets must be in the same flight")
)

// Fault pinpoints one failed check in a booking request. Index is the position
// of the offending ticket in the submitted list, or -1 when the fault applies
// to the order as a whole.
type Fault struct {
	Index int
	Field string
	Err   error
}

// ValidationError aggregates every fault found in a booking request, so the
// caller learns about all bad seats in one round trip.
type ValidationError struct {
	Faults []Fault
}

func (e *ValidationError) Error() string {
	return "booking validation failed"
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Faults))
	for _, f := range e.Faults {
		errs = append(errs, f.Err)
	}
	return errs
}

type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter)
}
