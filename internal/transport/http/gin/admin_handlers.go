package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAksum123456/fly-port-api/internal/domain"
)

// Staff-only reference data mutations. Creates answer 201 with the new id,
// updates and deletes answer 204.

// @Summary  Create country
// @Param    req  body  CountryInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  409  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /countries [post]
func handleCreateCountry(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CountryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateCountry(c.Request.Context(), req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update country
// @Param    id   path  int           true  "Country ID"
// @Param    req  body  CountryInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /countries/{id} [put]
func handleUpdateCountry(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CountryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateCountry(c.Request.Context(), id, req.Name))
	}
}

// @Summary  Delete country
// @Param    id  path  int  true  "Country ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still referenced"
// @Security BearerAuth
// @Router   /countries/{id} [delete]
func handleDeleteCountry(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteCountry(c.Request.Context(), id))
	}
}

// @Summary  Create city
// @Param    req  body  CityInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  400  {object}  ErrorResponse  "unknown country"
// @Security BearerAuth
// @Router   /cities [post]
func handleCreateCity(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CityInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateCity(c.Request.Context(), domain.City{
			Name:      req.Name,
			CountryID: req.Country,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update city
// @Param    id   path  int        true  "City ID"
// @Param    req  body  CityInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /cities/{id} [put]
func handleUpdateCity(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CityInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateCity(c.Request.Context(), domain.City{
			ID:        id,
			Name:      req.Name,
			CountryID: req.Country,
		}))
	}
}

// @Summary  Delete city
// @Param    id  path  int  true  "City ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still referenced"
// @Security BearerAuth
// @Router   /cities/{id} [delete]
func handleDeleteCity(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteCity(c.Request.Context(), id))
	}
}

// @Summary  Create airport
// @Param    req  body  AirportInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  400  {object}  ErrorResponse  "unknown city"
// @Security BearerAuth
// @Router   /airports [post]
func handleCreateAirport(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AirportInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateAirport(c.Request.Context(), domain.Airport{
			Name:           req.Name,
			ClosestBigCity: req.ClosestBigCity,
			CityID:         req.City,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update airport
// @Param    id   path  int           true  "Airport ID"
// @Param    req  body  AirportInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airports/{id} [put]
func handleUpdateAirport(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req AirportInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateAirport(c.Request.Context(), domain.Airport{
			ID:             id,
			Name:           req.Name,
			ClosestBigCity: req.ClosestBigCity,
			CityID:         req.City,
		}))
	}
}

// @Summary  Delete airport
// @Param    id  path  int  true  "Airport ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still referenced"
// @Security BearerAuth
// @Router   /airports/{id} [delete]
func handleDeleteAirport(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteAirport(c.Request.Context(), id))
	}
}

// @Summary  Create airplane type
// @Param    req  body  AirplaneTypeInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  409  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airplane-types [post]
func handleCreateAirplaneType(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AirplaneTypeInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateAirplaneType(c.Request.Context(), req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update airplane type
// @Param    id   path  int                true  "Airplane type ID"
// @Param    req  body  AirplaneTypeInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airplane-types/{id} [put]
func handleUpdateAirplaneType(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req AirplaneTypeInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateAirplaneType(c.Request.Context(), id, req.Name))
	}
}

// @Summary  Delete airplane type
// @Param    id  path  int  true  "Airplane type ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still referenced"
// @Security BearerAuth
// @Router   /airplane-types/{id} [delete]
func handleDeleteAirplaneType(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteAirplaneType(c.Request.Context(), id))
	}
}

// @Summary  Create airplane
// @Param    req  body  AirplaneInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  409  {object}  ErrorResponse  "duplicate serial number"
// @Security BearerAuth
// @Router   /airplanes [post]
func handleCreateAirplane(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AirplaneInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateAirplane(c.Request.Context(), domain.Airplane{
			Name:         req.Name,
			SerialNumber: req.SerialNumber,
			Rows:         req.Rows,
			SeatsInRow:   req.SeatsInRow,
			TypeID:       req.AirplaneType,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update airplane
// @Param    id   path  int            true  "Airplane ID"
// @Param    req  body  AirplaneInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /airplanes/{id} [put]
func handleUpdateAirplane(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req AirplaneInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateAirplane(c.Request.Context(), domain.Airplane{
			ID:           id,
			Name:         req.Name,
			SerialNumber: req.SerialNumber,
			Rows:         req.Rows,
			SeatsInRow:   req.SeatsInRow,
			TypeID:       req.AirplaneType,
		}))
	}
}

// @Summary  Delete airplane
// @Param    id  path  int  true  "Airplane ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still referenced"
// @Security BearerAuth
// @Router   /airplanes/{id} [delete]
func handleDeleteAirplane(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteAirplane(c.Request.Context(), id))
	}
}

// @Summary  Create crew member
// @Param    req  body  CrewInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Security BearerAuth
// @Router   /crew [post]
func handleCreateCrew(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrewInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateCrew(c.Request.Context(), domain.Crew{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			ExperienceYears: req.ExperienceYears,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update crew member
// @Param    id   path  int        true  "Crew ID"
// @Param    req  body  CrewInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /crew/{id} [put]
func handleUpdateCrew(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CrewInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateCrew(c.Request.Context(), domain.Crew{
			ID:              id,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			ExperienceYears: req.ExperienceYears,
		}))
	}
}

// @Summary  Delete crew member
// @Param    id  path  int  true  "Crew ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still assigned to flights"
// @Security BearerAuth
// @Router   /crew/{id} [delete]
func handleDeleteCrew(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteCrew(c.Request.Context(), id))
	}
}

// @Summary  Create route
// @Param    req  body  RouteInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  400  {object}  ErrorResponse  "same airport twice or unknown airport"
// @Security BearerAuth
// @Router   /routes [post]
func handleCreateRoute(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RouteInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svc.CreateRoute(c.Request.Context(), domain.Route{
			SourceID:      req.Source,
			DestinationID: req.Destination,
			Distance:      req.Distance,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update route
// @Param    id   path  int         true  "Route ID"
// @Param    req  body  RouteInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /routes/{id} [put]
func handleUpdateRoute(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req RouteInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		respondErr(c, svc.UpdateRoute(c.Request.Context(), domain.Route{
			ID:            id,
			SourceID:      req.Source,
			DestinationID: req.Destination,
			Distance:      req.Distance,
		}))
	}
}

// @Summary  Delete route
// @Param    id  path  int  true  "Route ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "still referenced"
// @Security BearerAuth
// @Router   /routes/{id} [delete]
func handleDeleteRoute(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteRoute(c.Request.Context(), id))
	}
}

// @Summary  Create flight
// @Param    req  body  FlightInput  true  "payload"
// @Success  201  {object}  CreatedResponse
// @Failure  400  {object}  ErrorResponse  "bad schedule, status, or reference"
// @Security BearerAuth
// @Router   /flights [post]
func handleCreateFlight(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FlightInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		dep, err := parseRFC3339(req.DepartureTime)
		if err != nil {
			badRequest(c, "invalid departure_time (RFC3339)")
			return
		}
		arr, err := parseRFC3339(req.ArrivalTime)
		if err != nil {
			badRequest(c, "invalid arrival_time (RFC3339)")
			return
		}
		id, err := svc.CreateFlight(c.Request.Context(), domain.Flight{
			RouteID:       req.Route,
			AirplaneID:    req.Airplane,
			DepartureTime: dep,
			ArrivalTime:   arr,
			Status:        domain.FlightStatus(req.Status),
		}, req.Crew)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Update flight
// @Param    id   path  int          true  "Flight ID"
// @Param    req  body  FlightInput  true  "payload"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /flights/{id} [put]
func handleUpdateFlight(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req FlightInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		dep, err := parseRFC3339(req.DepartureTime)
		if err != nil {
			badRequest(c, "invalid departure_time (RFC3339)")
			return
		}
		arr, err := parseRFC3339(req.ArrivalTime)
		if err != nil {
			badRequest(c, "invalid arrival_time (RFC3339)")
			return
		}
		respondErr(c, svc.UpdateFlight(c.Request.Context(), domain.Flight{
			ID:            id,
			RouteID:       req.Route,
			AirplaneID:    req.Airplane,
			DepartureTime: dep,
			ArrivalTime:   arr,
			Status:        domain.FlightStatus(req.Status),
		}, req.Crew))
	}
}

// @Summary  Delete flight
// @Param    id  path  int  true  "Flight ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "tickets sold"
// @Security BearerAuth
// @Router   /flights/{id} [delete]
func handleDeleteFlight(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		respondErr(c, svc.DeleteFlight(c.Request.Context(), id))
	}
}
