package domain

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightDelayed   FlightStatus = "delayed"
	FlightCancelled FlightStatus = "cancelled"
	FlightLanded    FlightStatus = "landed"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightScheduled, FlightDelayed, FlightCancelled, FlightLanded:
		return true
	}
	return false
}

type TicketClass string

const (
	ClassEconomy  TicketClass = "economy"
	ClassBusiness TicketClass = "business"
	ClassFirst    TicketClass = "first"
)

// Identity is the authenticated caller, extracted from the bearer token.
// Staff callers may mutate reference data and see every order.
type Identity struct {
	UserID uuid.UUID
	Staff  bool
}

type Country struct {
	ID   int64
	Name string
}

type City struct {
	ID        int64
	Name      string
	CountryID int64
}

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
	CityID         int64
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int
}

type AirplaneType struct {
	ID   int64
	Name string
}

// Airplane dimensions define the seat map: valid seats are the grid
// [1..Rows] x [1..SeatsInRow].
type Airplane struct {
	ID           int64
	Name         string
	SerialNumber string
	Rows         int
	SeatsInRow   int
	TypeID       int64
}

func (a Airplane) Capacity() int { return a.Rows * a.SeatsInRow }

type Crew struct {
	ID              int64
	FirstName       string
	LastName        string
	ExperienceYears int
}

func (c Crew) FullName() string { return c.FirstName + " " + c.LastName }

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	Status        FlightStatus
}

type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

type Ticket struct {
	ID       uuid.UUID
	OrderID  uuid.UUID
	FlightID int64
	Row      int
	Seat     int
	Class    TicketClass
	Price    int64
}

type OrderWithTickets struct {
	Order   Order
	Tickets []Ticket
}
