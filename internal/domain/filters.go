package domain

import "time"

// List filters. String fields are case-insensitive substring matches; empty
// values mean "no constraint".

type CrewFilter struct {
	FirstName string
	LastName  string
	// FullName matches against either name part.
	FullName string
}

type RouteFilter struct {
	Source      string
	Destination string
}

type FlightFilter struct {
	// Departure window; After is inclusive, Before exclusive.
	DepartureAfter  *time.Time
	DepartureBefore *time.Time
	// Status is a case-insensitive exact match.
	Status string
	// Airplane matches the airplane name.
	Airplane string
	// Route matches the source or the destination airport name.
	Route string
}

func (f CrewFilter) Empty() bool {
	return f.FirstName == "" && f.LastName == "" && f.FullName == ""
}

func (f RouteFilter) Empty() bool {
	return f.Source == "" && f.Destination == ""
}

func (f FlightFilter) Empty() bool {
	return f.DepartureAfter == nil && f.DepartureBefore == nil &&
		f.Status == "" && f.Airplane == "" && f.Route == ""
}
