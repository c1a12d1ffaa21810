package httpgin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	redisrepo "github.com/MAksum123456/fly-port-api/internal/repository/redis"
	"github.com/MAksum123456/fly-port-api/internal/service/admin"
	"github.com/MAksum123456/fly-port-api/internal/service/booking"
	"github.com/MAksum123456/fly-port-api/internal/service/catalog"
	"github.com/MAksum123456/fly-port-api/internal/service/orders"
)

// CatalogService serves the read side of the reference data and flights.
type CatalogService interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	ListCities(ctx context.Context) ([]domain.CityView, error)
	GetCity(ctx context.Context, id int64) (*domain.CityView, error)
	ListAirports(ctx context.Context) ([]domain.AirportView, error)
	GetAirport(ctx context.Context, id int64) (*domain.AirportView, error)
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	ListAirplanes(ctx context.Context) ([]domain.AirplaneView, error)
	GetAirplane(ctx context.Context, id int64) (*domain.AirplaneView, error)
	ListCrew(ctx context.Context, f domain.CrewFilter) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	ListRoutes(ctx context.Context, f domain.RouteFilter) ([]domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error)
	ListFlights(ctx context.Context, f domain.FlightFilter) ([]domain.FlightRow, error)
	GetFlight(ctx context.Context, id int64) (*domain.FlightDetail, error)
}

// AdminService serves the staff-only mutations of the reference data.
type AdminService interface {
	CreateCountry(ctx context.Context, name string) (int64, error)
	UpdateCountry(ctx context.Context, id int64, name string) error
	DeleteCountry(ctx context.Context, id int64) error
	CreateCity(ctx context.Context, c domain.City) (int64, error)
	UpdateCity(ctx context.Context, c domain.City) error
	DeleteCity(ctx context.Context, id int64) error
	CreateAirport(ctx context.Context, a domain.Airport) (int64, error)
	UpdateAirport(ctx context.Context, a domain.Airport) error
	DeleteAirport(ctx context.Context, id int64) error
	CreateAirplaneType(ctx context.Context, name string) (int64, error)
	UpdateAirplaneType(ctx context.Context, id int64, name string) error
	DeleteAirplaneType(ctx context.Context, id int64) error
	CreateAirplane(ctx context.Context, a domain.Airplane) (int64, error)
	UpdateAirplane(ctx context.Context, a domain.Airplane) error
	DeleteAirplane(ctx context.Context, id int64) error
	CreateCrew(ctx context.Context, c domain.Crew) (int64, error)
	UpdateCrew(ctx context.Context, c domain.Crew) error
	DeleteCrew(ctx context.Context, id int64) error
	CreateRoute(ctx context.Context, rt domain.Route) (int64, error)
	UpdateRoute(ctx context.Context, rt domain.Route) error
	DeleteRoute(ctx context.Context, id int64) error
	CreateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error)
	UpdateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) error
	DeleteFlight(ctx context.Context, id int64) error
}

// BookingService places ticket orders.
type BookingService interface {
	CreateOrder(ctx context.Context, ident domain.Identity, reqs []domain.TicketRequest, rlKey string) (*domain.OrderWithTickets, error)
}

// OrderService reads back placed orders.
type OrderService interface {
	List(ctx context.Context, ident domain.Identity) ([]domain.OrderWithTickets, error)
	Get(ctx context.Context, ident domain.Identity, id uuid.UUID) (*domain.OrderDetail, error)
}

type Services struct {
	Catalog CatalogService
	Admin   AdminService
	Booking BookingService
	Orders  OrderService
}

func NewRouter(
	svcs Services,
	idem *redisrepo.IdempotencyStore,
	jwtSecret []byte,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1", Authenticate(jwtSecret))
	{
		api.GET("/countries", handleListCountries(svcs.Catalog))
		api.GET("/countries/:id", handleGetCountry(svcs.Catalog))
		api.GET("/cities", handleListCities(svcs.Catalog))
		api.GET("/cities/:id", handleGetCity(svcs.Catalog))
		api.GET("/airports", handleListAirports(svcs.Catalog))
		api.GET("/airports/:id", handleGetAirport(svcs.Catalog))
		api.GET("/airplane-types", handleListAirplaneTypes(svcs.Catalog))
		api.GET("/airplane-types/:id", handleGetAirplaneType(svcs.Catalog))
		api.GET("/airplanes", handleListAirplanes(svcs.Catalog))
		api.GET("/airplanes/:id", handleGetAirplane(svcs.Catalog))
		api.GET("/crew", handleListCrew(svcs.Catalog))
		api.GET("/crew/:id", handleGetCrew(svcs.Catalog))
		api.GET("/routes", handleListRoutes(svcs.Catalog))
		api.GET("/routes/:id", handleGetRoute(svcs.Catalog))
		api.GET("/flights", handleListFlights(svcs.Catalog))
		api.GET("/flights/:id", handleGetFlight(svcs.Catalog))

		api.GET("/orders", handleListOrders(svcs.Orders))
		api.GET("/orders/:id", handleGetOrder(svcs.Orders))
		api.POST("/orders", handleCreateOrder(svcs.Booking, idem))
	}

	staff := api.Group("", RequireStaff())
	{
		staff.POST("/countries", handleCreateCountry(svcs.Admin))
		staff.PUT("/countries/:id", handleUpdateCountry(svcs.Admin))
		staff.DELETE("/countries/:id", handleDeleteCountry(svcs.Admin))

		staff.POST("/cities", handleCreateCity(svcs.Admin))
		staff.PUT("/cities/:id", handleUpdateCity(svcs.Admin))
		staff.DELETE("/cities/:id", handleDeleteCity(svcs.Admin))

		staff.POST("/airports", handleCreateAirport(svcs.Admin))
		staff.PUT("/airports/:id", handleUpdateAirport(svcs.Admin))
		staff.DELETE("/airports/:id", handleDeleteAirport(svcs.Admin))

		staff.POST("/airplane-types", handleCreateAirplaneType(svcs.Admin))
		staff.PUT("/airplane-types/:id", handleUpdateAirplaneType(svcs.Admin))
		staff.DELETE("/airplane-types/:id", handleDeleteAirplaneType(svcs.Admin))

		staff.POST("/airplanes", handleCreateAirplane(svcs.Admin))
		staff.PUT("/airplanes/:id", handleUpdateAirplane(svcs.Admin))
		staff.DELETE("/airplanes/:id", handleDeleteAirplane(svcs.Admin))

		staff.POST("/crew", handleCreateCrew(svcs.Admin))
		staff.PUT("/crew/:id", handleUpdateCrew(svcs.Admin))
		staff.DELETE("/crew/:id", handleDeleteCrew(svcs.Admin))

		staff.POST("/routes", handleCreateRoute(svcs.Admin))
		staff.PUT("/routes/:id", handleUpdateRoute(svcs.Admin))
		staff.DELETE("/routes/:id", handleDeleteRoute(svcs.Admin))

		staff.POST("/flights", handleCreateFlight(svcs.Admin))
		staff.PUT("/flights/:id", handleUpdateFlight(svcs.Admin))
		staff.DELETE("/flights/:id", handleDeleteFlight(svcs.Admin))
	}

	return r
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. The bool
// reports whether the request may proceed; a malformed value already wrote
// the 400.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return nil, true
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		badRequest(c, "invalid "+name+" (YYYY-MM-DD)")
		return nil, false
	}
	return &d, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, newValidationErrorResponse(vErr))
		return
	}

	var rlErr *booking.RateLimitedError
	if errors.As(err, &rlErr) {
		retry := int(rlErr.RetryAfter / time.Second)
		if retry < 1 {
			retry = 1
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
		return
	}

	switch {
	// domain rules rejected by the admin service
	case errors.Is(err, domain.ErrSameAirport):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrSameAirport.Error()})
	case errors.Is(err, domain.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidTimeRange.Error()})
	case errors.Is(err, domain.ErrPastDeparture):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrPastDeparture.Error()})
	case errors.Is(err, domain.ErrBadStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrBadStatus.Error()})
	case errors.Is(err, admin.ErrBadReference):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: admin.ErrBadReference.Error()})
	// not found
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, admin.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: orders.ErrOrderNotFound.Error()})
	// ownership
	case errors.Is(err, orders.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: orders.ErrForbidden.Error()})
	// conflicts
	case errors.Is(err, admin.ErrAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: admin.ErrAlreadyExists.Error()})
	case errors.Is(err, admin.ErrInUse):
		c.JSON(http.StatusConflict, ErrorResponse{Error: admin.ErrInUse.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
