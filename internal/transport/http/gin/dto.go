package httpgin

import (
	"time"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/service/booking"
)

// --- Requests ---

type TicketInput struct {
	Row         int    `json:"row"`
	Seat        int    `json:"seat"`
	TicketClass string `json:"ticket_class" binding:"omitempty,oneof=economy business first"`
	Flight      int64  `json:"flight" binding:"required"`
}

// CreateOrderRequest deliberately skips list-level binding rules: an empty
// ticket list and out-of-range seats get structured validation faults from the
// booking service instead of a binder message.
type CreateOrderRequest struct {
	Tickets []TicketInput `json:"tickets" binding:"omitempty,dive"`
}

type CountryInput struct {
	Name string `json:"name" binding:"required"`
}

type CityInput struct {
	Name    string `json:"name" binding:"required"`
	Country int64  `json:"country" binding:"required"`
}

type AirportInput struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity string `json:"closest_big_city" binding:"required"`
	City           int64  `json:"city" binding:"required"`
}

type AirplaneTypeInput struct {
	Name string `json:"name" binding:"required"`
}

type AirplaneInput struct {
	Name         string `json:"name" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Rows         int    `json:"rows" binding:"required,min=1"`
	SeatsInRow   int    `json:"seats_in_row" binding:"required,min=1"`
	AirplaneType int64  `json:"airplane_type" binding:"required"`
}

type CrewInput struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	ExperienceYears int    `json:"experience_years" binding:"min=0"`
}

type RouteInput struct {
	Source      int64 `json:"source" binding:"required"`
	Destination int64 `json:"destination" binding:"required"`
	Distance    int   `json:"distance" binding:"required,min=1"`
}

type FlightInput struct {
	Route         int64   `json:"route" binding:"required"`
	Airplane      int64   `json:"airplane" binding:"required"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	ArrivalTime   string  `json:"arrival_time" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	Crew          []int64 `json:"crew"`
}

// --- Responses ---

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationFault struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse enumerates every rejected ticket of a booking
// request. Index is -1 for order-level faults.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details []ValidationFault `json:"details"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CityResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Airports []string `json:"airports"`
}

type AirportResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

type AirplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AirplaneResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"airplane_type"`
}

type CrewResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"full_name"`
	ExperienceYears int    `json:"experience_years"`
}

type RouteResponse struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

type RouteFlightResponse struct {
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Status        string    `json:"status"`
	Crew          []string  `json:"crew"`
}

type RouteDetailResponse struct {
	RouteResponse
	Flights []RouteFlightResponse `json:"flights"`
}

type FlightResponse struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Status           string    `json:"status"`
	TicketsAvailable int64     `json:"tickets_available"`
}

type FlightDetailResponse struct {
	FlightResponse
	Crew []CrewResponse `json:"crew"`
}

type TicketResponse struct {
	ID          string `json:"id"`
	Row         int    `json:"row"`
	Seat        int    `json:"seat"`
	TicketClass string `json:"ticket_class"`
	Price       int64  `json:"price"`
	Flight      int64  `json:"flight"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

type FlightInfoResponse struct {
	Route         string    `json:"route"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Airplane      string    `json:"airplane"`
	Status        string    `json:"status"`
	Crew          []string  `json:"crew"`
}

type TicketDetailResponse struct {
	TicketResponse
	FlightDetails FlightInfoResponse `json:"flight_details"`
}

type OrderDetailResponse struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Tickets   []TicketDetailResponse `json:"tickets"`
}

// --- Mappers ---

func toCountryList(in []domain.Country) []CountryResponse {
	out := make([]CountryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, CountryResponse(c))
	}
	return out
}

func toCityResponse(v domain.CityView) CityResponse {
	return CityResponse{
		ID:       v.ID,
		Name:     v.Name,
		Country:  v.Country,
		Airports: v.Airports,
	}
}

func toCityList(in []domain.CityView) []CityResponse {
	out := make([]CityResponse, 0, len(in))
	for _, v := range in {
		out = append(out, toCityResponse(v))
	}
	return out
}

func toAirportResponse(v domain.AirportView) AirportResponse {
	return AirportResponse{
		ID:             v.ID,
		Name:           v.Name,
		ClosestBigCity: v.ClosestBigCity,
		City:           v.City,
		Country:        v.Country,
	}
}

func toAirportList(in []domain.AirportView) []AirportResponse {
	out := make([]AirportResponse, 0, len(in))
	for _, v := range in {
		out = append(out, toAirportResponse(v))
	}
	return out
}

func toAirplaneTypeList(in []domain.AirplaneType) []AirplaneTypeResponse {
	out := make([]AirplaneTypeResponse, 0, len(in))
	for _, at := range in {
		out = append(out, AirplaneTypeResponse(at))
	}
	return out
}

func toAirplaneResponse(v domain.AirplaneView) AirplaneResponse {
	return AirplaneResponse{
		ID:           v.ID,
		Name:         v.Name,
		SerialNumber: v.SerialNumber,
		Rows:         v.Rows,
		SeatsInRow:   v.SeatsInRow,
		AirplaneType: v.AirplaneType,
	}
}

func toAirplaneList(in []domain.AirplaneView) []AirplaneResponse {
	out := make([]AirplaneResponse, 0, len(in))
	for _, v := range in {
		out = append(out, toAirplaneResponse(v))
	}
	return out
}

func toCrewResponse(c domain.Crew) CrewResponse {
	return CrewResponse{
		ID:              c.ID,
		FullName:        c.FullName(),
		ExperienceYears: c.ExperienceYears,
	}
}

func toCrewList(in []domain.Crew) []CrewResponse {
	out := make([]CrewResponse, 0, len(in))
	for _, c := range in {
		out = append(out, toCrewResponse(c))
	}
	return out
}

func toRouteResponse(r domain.Route) RouteResponse {
	return RouteResponse{
		ID:          r.ID,
		Source:      r.SourceID,
		Destination: r.DestinationID,
		Distance:    r.Distance,
	}
}

func toRouteList(in []domain.Route) []RouteResponse {
	out := make([]RouteResponse, 0, len(in))
	for _, r := range in {
		out = append(out, toRouteResponse(r))
	}
	return out
}

func toRouteDetailResponse(rd domain.RouteDetail) RouteDetailResponse {
	flights := make([]RouteFlightResponse, 0, len(rd.Flights))
	for _, f := range rd.Flights {
		flights = append(flights, RouteFlightResponse{
			Airplane:      f.Airplane,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Status:        string(f.Status),
			Crew:          f.Crew,
		})
	}

	return RouteDetailResponse{
		RouteResponse: toRouteResponse(rd.Route),
		Flights:       flights,
	}
}

func toFlightResponse(f domain.FlightRow) FlightResponse {
	return FlightResponse{
		ID:               f.ID,
		Route:            f.Route,
		Airplane:         f.Airplane,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Status:           string(f.Status),
		TicketsAvailable: f.TicketsAvailable,
	}
}

func toFlightList(in []domain.FlightRow) []FlightResponse {
	out := make([]FlightResponse, 0, len(in))
	for _, f := range in {
		out = append(out, toFlightResponse(f))
	}
	return out
}

func toFlightDetailResponse(fd domain.FlightDetail) FlightDetailResponse {
	return FlightDetailResponse{
		FlightResponse: toFlightResponse(fd.FlightRow),
		Crew:           toCrewList(fd.Crew),
	}
}

func toTicketResponse(t domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID.String(),
		Row:         t.Row,
		Seat:        t.Seat,
		TicketClass: string(t.Class),
		Price:       t.Price,
		Flight:      t.FlightID,
	}
}

func toOrderResponse(o domain.OrderWithTickets) OrderResponse {
	tickets := make([]TicketResponse, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, toTicketResponse(t))
	}

	return OrderResponse{
		ID:        o.Order.ID.String(),
		CreatedAt: o.Order.CreatedAt,
		Tickets:   tickets,
	}
}

func toOrderList(in []domain.OrderWithTickets) []OrderResponse {
	out := make([]OrderResponse, 0, len(in))
	for _, o := range in {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toOrderDetailResponse(od domain.OrderDetail) OrderDetailResponse {
	tickets := make([]TicketDetailResponse, 0, len(od.Tickets))
	for _, t := range od.Tickets {
		tickets = append(tickets, TicketDetailResponse{
			TicketResponse: toTicketResponse(t.Ticket),
			FlightDetails: FlightInfoResponse{
				Route:         t.Flight.Route,
				DepartureTime: t.Flight.DepartureTime,
				ArrivalTime:   t.Flight.ArrivalTime,
				Airplane:      t.Flight.Airplane,
				Status:        string(t.Flight.Status),
				Crew:          t.Flight.Crew,
			},
		})
	}

	return OrderDetailResponse{
		ID:        od.ID.String(),
		CreatedAt: od.CreatedAt,
		Tickets:   tickets,
	}
}

func newValidationErrorResponse(vErr *booking.ValidationError) ValidationErrorResponse {
	details := make([]ValidationFault, 0, len(vErr.Faults))
	for _, f := range vErr.Faults {
		details = append(details, ValidationFault{
			Index:   f.Index,
			Field:   f.Field,
			Message: f.Err.Error(),
		})
	}

	return ValidationErrorResponse{
		Error:   "validation failed",
		Details: details,
	}
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
