package domain

import "fmt"

// TicketRequest is one seat asked for in an order-creation request.
type TicketRequest struct {
	FlightID int64
	Row      int
	Seat     int
	Class    TicketClass
}

const economyPrice int64 = 100

var priceByClass = map[TicketClass]int64{
	ClassEconomy:  100,
	ClassBusiness: 200,
	ClassFirst:    300,
}

// PriceFor maps a ticket class to its price. Unknown or empty classes price
// as economy, so the function is total.
func PriceFor(class TicketClass) int64 {
	if p, ok := priceByClass[class]; ok {
		return p
	}
	return economyPrice
}

// SeatOutOfRangeError reports a (row, seat) coordinate outside the airplane's
// seat map, carrying the offending value and the valid upper bound.
type SeatOutOfRangeError struct {
	Field string // "row" or "seat"
	Value int
	Max   int
}

func (e *SeatOutOfRangeError) Error() string {
	return fmt.Sprintf("%s number must be between 1 and %d, got %d", e.Field, e.Max, e.Value)
}

// SeatTakenError reports a seat already sold on the flight, either found by
// the availability check or lost to a concurrent writer at commit. Row and
// Seat are zero when the conflict surfaced at commit time.
type SeatTakenError struct {
	Row  int
	Seat int
}

func (e *SeatTakenError) Error() string {
	return "this seat is already taken for the selected flight"
}

type UnknownFlightError struct {
	FlightID int64
}

func (e *UnknownFlightError) Error() string {
	return fmt.Sprintf("flight %d does not exist", e.FlightID)
}

// ValidateSeat checks a (row, seat) pair against the airplane's seat map.
// Pure; the caller is responsible for checking availability separately.
func ValidateSeat(a Airplane, row, seat int) error {
	if row < 1 || row > a.Rows {
		return &SeatOutOfRangeError{Field: "row", Value: row, Max: a.Rows}
	}

	if seat < 1 || seat > a.SeatsInRow {
		return &SeatOutOfRangeError{Field: "seat", Value: seat, Max: a.SeatsInRow}
	}

	return nil
}

// BookingFlight is the slice of flight state the booking flow needs: the
// flight's existence and the airplane whose dimensions bound its seats.
type BookingFlight struct {
	ID       int64
	Airplane Airplane
}
