package domain

import "time"

// Read models returned by the catalog and order queries. List and retrieve
// endpoints get explicit shapes instead of one struct serving both.

type CityView struct {
	ID       int64
	Name     string
	Country  string
	Airports []string
}

type AirportView struct {
	ID             int64
	Name           string
	ClosestBigCity string
	City           string
	Country        string
}

type AirplaneView struct {
	ID           int64
	Name         string
	SerialNumber string
	Rows         int
	SeatsInRow   int
	AirplaneType string
}

// FlightRow is the list shape: route rendered as "SRC -> DST", airplane by
// name, and the count of seats still open on the flight.
type FlightRow struct {
	ID               int64
	Route            string
	Airplane         string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	Status           FlightStatus
	TicketsAvailable int64
}

type FlightDetail struct {
	FlightRow
	Crew []Crew
}

// RouteFlight is the abbreviated flight shape embedded in a route detail.
type RouteFlight struct {
	Airplane      string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Status        FlightStatus
	Crew          []string
}

type RouteDetail struct {
	Route
	Flights []RouteFlight
}

// FlightInfo accompanies each ticket in an order detail.
type FlightInfo struct {
	Route         string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Airplane      string
	Status        FlightStatus
	Crew          []string
}

type TicketDetail struct {
	Ticket
	Flight FlightInfo
}

type OrderDetail struct {
	Order
	Tickets []TicketDetail
}
