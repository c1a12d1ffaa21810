package httpgin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MAksum123456/fly-port-api/internal/domain"
)

// Reference data is identical for every caller, so the read handlers reply
// with ETags and a short private cache window.
const (
	cacheRefData = "private, max-age=60"
	cacheFlights = "private, max-age=30"
)

// @Summary  List countries
// @Success  200  {array}  CountryResponse
// @Security BearerAuth
// @Router   /countries [get]
func handleListCountries(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListCountries(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toCountryList(out), cacheRefData, true)
	}
}

// @Summary  Get country
// @Param    id  path  int  true  "Country ID"
// @Success  200  {object}  CountryResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /countries/{id} [get]
func handleGetCountry(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetCountry(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, CountryResponse(*out), cacheRefData, true)
	}
}

// @Summary  List cities
// @Success  200  {array}  CityResponse
// @Security BearerAuth
// @Router   /cities [get]
func handleListCities(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListCities(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toCityList(out), cacheRefData, true)
	}
}

// @Summary  Get city
// @Param    id  path  int  true  "City ID"
// @Success  200  {object}  CityResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /cities/{id} [get]
func handleGetCity(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetCity(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toCityResponse(*out), cacheRefData, true)
	}
}

// @Summary  List airports
// @Success  200  {array}  AirportResponse
// @Security BearerAuth
// @Router   /airports [get]
func handleListAirports(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAirports(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toAirportList(out), cacheRefData, true)
	}
}

// @Summary  Get airport
// @Param    id  path  int  true  "Airport ID"
// @Success  200  {object}  AirportResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airports/{id} [get]
func handleGetAirport(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetAirport(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toAirportResponse(*out), cacheRefData, true)
	}
}

// @Summary  List airplane types
// @Success  200  {array}  AirplaneTypeResponse
// @Security BearerAuth
// @Router   /airplane-types [get]
func handleListAirplaneTypes(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAirplaneTypes(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toAirplaneTypeList(out), cacheRefData, true)
	}
}

// @Summary  Get airplane type
// @Param    id  path  int  true  "Airplane type ID"
// @Success  200  {object}  AirplaneTypeResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airplane-types/{id} [get]
func handleGetAirplaneType(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetAirplaneType(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, AirplaneTypeResponse(*out), cacheRefData, true)
	}
}

// @Summary  List airplanes
// @Success  200  {array}  AirplaneResponse
// @Security BearerAuth
// @Router   /airplanes [get]
func handleListAirplanes(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAirplanes(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toAirplaneList(out), cacheRefData, true)
	}
}

// @Summary  Get airplane
// @Param    id  path  int  true  "Airplane ID"
// @Success  200  {object}  AirplaneResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airplanes/{id} [get]
func handleGetAirplane(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetAirplane(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toAirplaneResponse(*out), cacheRefData, true)
	}
}

// @Summary  List crew members
// @Param    first_name  query  string  false  "substring match"
// @Param    last_name   query  string  false  "substring match"
// @Param    full_name   query  string  false  "matches either name part"
// @Success  200  {array}  CrewResponse
// @Security BearerAuth
// @Router   /crew [get]
func handleListCrew(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := domain.CrewFilter{
			FirstName: strings.TrimSpace(c.Query("first_name")),
			LastName:  strings.TrimSpace(c.Query("last_name")),
			FullName:  strings.TrimSpace(c.Query("full_name")),
		}

		out, err := svc.ListCrew(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toCrewList(out), cacheRefData, true)
	}
}

// @Summary  Get crew member
// @Param    id  path  int  true  "Crew ID"
// @Success  200  {object}  CrewResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /crew/{id} [get]
func handleGetCrew(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetCrew(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toCrewResponse(*out), cacheRefData, true)
	}
}

// @Summary  List routes
// @Param    source       query  string  false  "source airport name, substring match"
// @Param    destination  query  string  false  "destination airport name, substring match"
// @Success  200  {array}  RouteResponse
// @Security BearerAuth
// @Router   /routes [get]
func handleListRoutes(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := domain.RouteFilter{
			Source:      strings.TrimSpace(c.Query("source")),
			Destination: strings.TrimSpace(c.Query("destination")),
		}

		out, err := svc.ListRoutes(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toRouteList(out), cacheRefData, true)
	}
}

// @Summary  Get route with its flights
// @Param    id  path  int  true  "Route ID"
// @Success  200  {object}  RouteDetailResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /routes/{id} [get]
func handleGetRoute(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetRoute(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toRouteDetailResponse(*out), cacheFlights, true)
	}
}

// @Summary  List flights
// @Param    departure_after   query  string  false  "YYYY-MM-DD, inclusive"
// @Param    departure_before  query  string  false  "YYYY-MM-DD, inclusive"
// @Param    status            query  string  false  "scheduled|delayed|cancelled|landed"
// @Param    airplane          query  string  false  "airplane name, substring match"
// @Param    route             query  string  false  "source or destination airport name"
// @Success  200  {array}  FlightResponse
// @Security BearerAuth
// @Router   /flights [get]
func handleListFlights(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		after, ok := parseDateQuery(c, "departure_after")
		if !ok {
			return
		}
		before, ok := parseDateQuery(c, "departure_before")
		if !ok {
			return
		}

		var f domain.FlightFilter
		f.DepartureAfter = after
		if before != nil {
			// the filter is exclusive, the query parameter inclusive
			b := before.AddDate(0, 0, 1)
			f.DepartureBefore = &b
		}
		f.Status = strings.TrimSpace(c.Query("status"))
		f.Airplane = strings.TrimSpace(c.Query("airplane"))
		f.Route = strings.TrimSpace(c.Query("route"))

		out, err := svc.ListFlights(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toFlightList(out), cacheFlights, true)
	}
}

// @Summary  Get flight with its crew
// @Param    id  path  int  true  "Flight ID"
// @Success  200  {object}  FlightDetailResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /flights/{id} [get]
func handleGetFlight(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svc.GetFlight(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toFlightDetailResponse(*out), cacheFlights, true)
	}
}
