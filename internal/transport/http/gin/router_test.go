package httpgin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/service/admin"
	"github.com/MAksum123456/fly-port-api/internal/service/booking"
	"github.com/MAksum123456/fly-port-api/internal/service/catalog"
	"github.com/MAksum123456/fly-port-api/internal/service/orders"
)

var testSecret = []byte("test-secret")

// --- stubs ---

type stubCatalog struct {
	listCountries     func(ctx context.Context) ([]domain.Country, error)
	getCountry        func(ctx context.Context, id int64) (*domain.Country, error)
	listCities        func(ctx context.Context) ([]domain.CityView, error)
	getCity           func(ctx context.Context, id int64) (*domain.CityView, error)
	listAirports      func(ctx context.Context) ([]domain.AirportView, error)
	getAirport        func(ctx context.Context, id int64) (*domain.AirportView, error)
	listAirplaneTypes func(ctx context.Context) ([]domain.AirplaneType, error)
	getAirplaneType   func(ctx context.Context, id int64) (*domain.AirplaneType, error)
	listAirplanes     func(ctx context.Context) ([]domain.AirplaneView, error)
	getAirplane       func(ctx context.Context, id int64) (*domain.AirplaneView, error)
	listCrew          func(ctx context.Context, f domain.CrewFilter) ([]domain.Crew, error)
	getCrew           func(ctx context.Context, id int64) (*domain.Crew, error)
	listRoutes        func(ctx context.Context, f domain.RouteFilter) ([]domain.Route, error)
	getRoute          func(ctx context.Context, id int64) (*domain.RouteDetail, error)
	listFlights       func(ctx context.Context, f domain.FlightFilter) ([]domain.FlightRow, error)
	getFlight         func(ctx context.Context, id int64) (*domain.FlightDetail, error)
}

func (s *stubCatalog) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.listCountries(ctx)
}
func (s *stubCatalog) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	return s.getCountry(ctx, id)
}
func (s *stubCatalog) ListCities(ctx context.Context) ([]domain.CityView, error) {
	return s.listCities(ctx)
}
func (s *stubCatalog) GetCity(ctx context.Context, id int64) (*domain.CityView, error) {
	return s.getCity(ctx, id)
}
func (s *stubCatalog) ListAirports(ctx context.Context) ([]domain.AirportView, error) {
	return s.listAirports(ctx)
}
func (s *stubCatalog) GetAirport(ctx context.Context, id int64) (*domain.AirportView, error) {
	return s.getAirport(ctx, id)
}
func (s *stubCatalog) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.listAirplaneTypes(ctx)
}
func (s *stubCatalog) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.getAirplaneType(ctx, id)
}
func (s *stubCatalog) ListAirplanes(ctx context.Context) ([]domain.AirplaneView, error) {
	return s.listAirplanes(ctx)
}
func (s *stubCatalog) GetAirplane(ctx context.Context, id int64) (*domain.AirplaneView, error) {
	return s.getAirplane(ctx, id)
}
func (s *stubCatalog) ListCrew(ctx context.Context, f domain.CrewFilter) ([]domain.Crew, error) {
	return s.listCrew(ctx, f)
}
func (s *stubCatalog) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.getCrew(ctx, id)
}
func (s *stubCatalog) ListRoutes(ctx context.Context, f domain.RouteFilter) ([]domain.Route, error) {
	return s.listRoutes(ctx, f)
}
func (s *stubCatalog) GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	return s.getRoute(ctx, id)
}
func (s *stubCatalog) ListFlights(ctx context.Context, f domain.FlightFilter) ([]domain.FlightRow, error) {
	return s.listFlights(ctx, f)
}
func (s *stubCatalog) GetFlight(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	return s.getFlight(ctx, id)
}

type stubAdmin struct {
	createCountry      func(ctx context.Context, name string) (int64, error)
	updateCountry      func(ctx context.Context, id int64, name string) error
	deleteCountry      func(ctx context.Context, id int64) error
	createCity         func(ctx context.Context, c domain.City) (int64, error)
	updateCity         func(ctx context.Context, c domain.City) error
	deleteCity         func(ctx context.Context, id int64) error
	createAirport      func(ctx context.Context, a domain.Airport) (int64, error)
	updateAirport      func(ctx context.Context, a domain.Airport) error
	deleteAirport      func(ctx context.Context, id int64) error
	createAirplaneType func(ctx context.Context, name string) (int64, error)
	updateAirplaneType func(ctx context.Context, id int64, name string) error
	deleteAirplaneType func(ctx context.Context, id int64) error
	createAirplane     func(ctx context.Context, a domain.Airplane) (int64, error)
	updateAirplane     func(ctx context.Context, a domain.Airplane) error
	deleteAirplane     func(ctx context.Context, id int64) error
	createCrew         func(ctx context.Context, c domain.Crew) (int64, error)
	updateCrew         func(ctx context.Context, c domain.Crew) error
	deleteCrew         func(ctx context.Context, id int64) error
	createRoute        func(ctx context.Context, rt domain.Route) (int64, error)
	updateRoute        func(ctx context.Context, rt domain.Route) error
	deleteRoute        func(ctx context.Context, id int64) error
	createFlight       func(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error)
	updateFlight       func(ctx context.Context, f domain.Flight, crewIDs []int64) error
	deleteFlight       func(ctx context.Context, id int64) error
}

func (s *stubAdmin) CreateCountry(ctx context.Context, name string) (int64, error) {
	return s.createCountry(ctx, name)
}
func (s *stubAdmin) UpdateCountry(ctx context.Context, id int64, name string) error {
	return s.updateCountry(ctx, id, name)
}
func (s *stubAdmin) DeleteCountry(ctx context.Context, id int64) error {
	return s.deleteCountry(ctx, id)
}
func (s *stubAdmin) CreateCity(ctx context.Context, c domain.City) (int64, error) {
	return s.createCity(ctx, c)
}
func (s *stubAdmin) UpdateCity(ctx context.Context, c domain.City) error {
	return s.updateCity(ctx, c)
}
func (s *stubAdmin) DeleteCity(ctx context.Context, id int64) error {
	return s.deleteCity(ctx, id)
}
func (s *stubAdmin) CreateAirport(ctx context.Context, a domain.Airport) (int64, error) {
	return s.createAirport(ctx, a)
}
func (s *stubAdmin) UpdateAirport(ctx context.Context, a domain.Airport) error {
	return s.updateAirport(ctx, a)
}
func (s *stubAdmin) DeleteAirport(ctx context.Context, id int64) error {
	return s.deleteAirport(ctx, id)
}
func (s *stubAdmin) CreateAirplaneType(ctx context.Context, name string) (int64, error) {
	return s.createAirplaneType(ctx, name)
}
func (s *stubAdmin) UpdateAirplaneType(ctx context.Context, id int64, name string) error {
	return s.updateAirplaneType(ctx, id, name)
}
func (s *stubAdmin) DeleteAirplaneType(ctx context.Context, id int64) error {
	return s.deleteAirplaneType(ctx, id)
}
func (s *stubAdmin) CreateAirplane(ctx context.Context, a domain.Airplane) (int64, error) {
	return s.createAirplane(ctx, a)
}
func (s *stubAdmin) UpdateAirplane(ctx context.Context, a domain.Airplane) error {
	return s.updateAirplane(ctx, a)
}
func (s *stubAdmin) DeleteAirplane(ctx context.Context, id int64) error {
	return s.deleteAirplane(ctx, id)
}
func (s *stubAdmin) CreateCrew(ctx context.Context, c domain.Crew) (int64, error) {
	return s.createCrew(ctx, c)
}
func (s *stubAdmin) UpdateCrew(ctx context.Context, c domain.Crew) error {
	return s.updateCrew(ctx, c)
}
func (s *stubAdmin) DeleteCrew(ctx context.Context, id int64) error {
	return s.deleteCrew(ctx, id)
}
func (s *stubAdmin) CreateRoute(ctx context.Context, rt domain.Route) (int64, error) {
	return s.createRoute(ctx, rt)
}
func (s *stubAdmin) UpdateRoute(ctx context.Context, rt domain.Route) error {
	return s.updateRoute(ctx, rt)
}
func (s *stubAdmin) DeleteRoute(ctx context.Context, id int64) error {
	return s.deleteRoute(ctx, id)
}
func (s *stubAdmin) CreateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error) {
	return s.createFlight(ctx, f, crewIDs)
}
func (s *stubAdmin) UpdateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) error {
	return s.updateFlight(ctx, f, crewIDs)
}
func (s *stubAdmin) DeleteFlight(ctx context.Context, id int64) error {
	return s.deleteFlight(ctx, id)
}

type stubBooking struct {
	createOrder func(ctx context.Context, ident domain.Identity, reqs []domain.TicketRequest, rlKey string) (*domain.OrderWithTickets, error)
}

func (s *stubBooking) CreateOrder(ctx context.Context, ident domain.Identity, reqs []domain.TicketRequest, rlKey string) (*domain.OrderWithTickets, error) {
	return s.createOrder(ctx, ident, reqs, rlKey)
}

type stubOrders struct {
	list func(ctx context.Context, ident domain.Identity) ([]domain.OrderWithTickets, error)
	get  func(ctx context.Context, ident domain.Identity, id uuid.UUID) (*domain.OrderDetail, error)
}

func (s *stubOrders) List(ctx context.Context, ident domain.Identity) ([]domain.OrderWithTickets, error) {
	return s.list(ctx, ident)
}
func (s *stubOrders) Get(ctx context.Context, ident domain.Identity, id uuid.UUID) (*domain.OrderDetail, error) {
	return s.get(ctx, ident, id)
}

// --- helpers ---

func newTestRouter(t *testing.T, svcs Services) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(svcs, nil, testSecret, logger)
}

func signToken(t *testing.T, userID uuid.UUID, staff bool) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID.String(),
		"is_staff": staff,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString(testSecret)
	require.NoError(t, err)
	return s
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- auth ---

func TestRouter_MissingTokenIsUnauthorized(t *testing.T) {
	r := newTestRouter(t, Services{})

	w := doRequest(r, http.MethodGet, "/api/v1/countries", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_GarbageTokenIsUnauthorized(t *testing.T) {
	r := newTestRouter(t, Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_WrongSecretIsUnauthorized(t *testing.T) {
	r := newTestRouter(t, Services{})

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      uuid.New().String(),
		"is_staff": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/v1/countries", signed, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_NonStaffMutationIsForbidden(t *testing.T) {
	adm := &stubAdmin{}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodPost, "/api/v1/countries", token, CountryInput{Name: "Latveria"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	r := newTestRouter(t, Services{})

	w := doRequest(r, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- catalog reads ---

func TestListCountries_OK(t *testing.T) {
	cat := &stubCatalog{
		listCountries: func(ctx context.Context) ([]domain.Country, error) {
			return []domain.Country{{ID: 1, Name: "Ukraine"}, {ID: 2, Name: "Poland"}}, nil
		},
	}
	r := newTestRouter(t, Services{Catalog: cat})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/countries", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got []CountryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, CountryResponse{ID: 1, Name: "Ukraine"}, got[0])
	assert.NotEmpty(t, w.Header().Get("ETag"))
}

func TestListCountries_ETagRoundTrip(t *testing.T) {
	cat := &stubCatalog{
		listCountries: func(ctx context.Context) ([]domain.Country, error) {
			return []domain.Country{{ID: 1, Name: "Ukraine"}}, nil
		},
	}
	r := newTestRouter(t, Services{Catalog: cat})
	token := signToken(t, uuid.New(), false)

	first := doRequest(r, http.MethodGet, "/api/v1/countries", token, nil)
	require.Equal(t, http.StatusOK, first.Code)
	tag := first.Header().Get("ETag")
	require.NotEmpty(t, tag)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("If-None-Match", tag)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestGetFlight_NotFound(t *testing.T) {
	cat := &stubCatalog{
		getFlight: func(ctx context.Context, id int64) (*domain.FlightDetail, error) {
			return nil, catalog.ErrNotFound
		},
	}
	r := newTestRouter(t, Services{Catalog: cat})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/flights/99", token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFlight_ResponseShape(t *testing.T) {
	dep := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	cat := &stubCatalog{
		getFlight: func(ctx context.Context, id int64) (*domain.FlightDetail, error) {
			require.Equal(t, int64(7), id)
			return &domain.FlightDetail{
				FlightRow: domain.FlightRow{
					ID:               7,
					Route:            "Boryspil -> Heathrow",
					Airplane:         "Dreamliner",
					DepartureTime:    dep,
					ArrivalTime:      dep.Add(3 * time.Hour),
					Status:           domain.FlightScheduled,
					TicketsAvailable: 120,
				},
				Crew: []domain.Crew{{ID: 3, FirstName: "Amelia", LastName: "Earhart", ExperienceYears: 12}},
			}, nil
		},
	}
	r := newTestRouter(t, Services{Catalog: cat})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/flights/7", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Boryspil -> Heathrow", got["route"])
	assert.Equal(t, "scheduled", got["status"])
	assert.Equal(t, float64(120), got["tickets_available"])

	crew, ok := got["crew"].([]any)
	require.True(t, ok)
	require.Len(t, crew, 1)
	member := crew[0].(map[string]any)
	assert.Equal(t, "Amelia Earhart", member["full_name"])
}

func TestListFlights_FilterParsing(t *testing.T) {
	var got domain.FlightFilter
	cat := &stubCatalog{
		listFlights: func(ctx context.Context, f domain.FlightFilter) ([]domain.FlightRow, error) {
			got = f
			return nil, nil
		},
	}
	r := newTestRouter(t, Services{Catalog: cat})

	token := signToken(t, uuid.New(), false)
	path := "/api/v1/flights?departure_after=2026-01-02&departure_before=2026-01-03&status=scheduled&airplane=boeing&route=heathrow"
	w := doRequest(r, http.MethodGet, path, token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.DepartureAfter)
	require.NotNil(t, got.DepartureBefore)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), *got.DepartureAfter)
	// inclusive date becomes an exclusive bound on the next day
	assert.Equal(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), *got.DepartureBefore)
	assert.Equal(t, "scheduled", got.Status)
	assert.Equal(t, "boeing", got.Airplane)
	assert.Equal(t, "heathrow", got.Route)
}

func TestListFlights_BadDateIsRejected(t *testing.T) {
	r := newTestRouter(t, Services{Catalog: &stubCatalog{}})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/flights?departure_after=tomorrow", token, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCrew_FilterPassthrough(t *testing.T) {
	var got domain.CrewFilter
	cat := &stubCatalog{
		listCrew: func(ctx context.Context, f domain.CrewFilter) ([]domain.Crew, error) {
			got = f
			return []domain.Crew{}, nil
		},
	}
	r := newTestRouter(t, Services{Catalog: cat})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/crew?full_name=smith", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CrewFilter{FullName: "smith"}, got)
}

// --- admin mutations ---

func TestCreateCountry_Staff(t *testing.T) {
	adm := &stubAdmin{
		createCountry: func(ctx context.Context, name string) (int64, error) {
			require.Equal(t, "Ukraine", name)
			return 5, nil
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	w := doRequest(r, http.MethodPost, "/api/v1/countries", token, CountryInput{Name: "Ukraine"})

	require.Equal(t, http.StatusCreated, w.Code)

	var got CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestCreateCountry_Duplicate(t *testing.T) {
	adm := &stubAdmin{
		createCountry: func(ctx context.Context, name string) (int64, error) {
			return 0, admin.ErrAlreadyExists
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	w := doRequest(r, http.MethodPost, "/api/v1/countries", token, CountryInput{Name: "Ukraine"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCountry_NoContent(t *testing.T) {
	adm := &stubAdmin{
		deleteCountry: func(ctx context.Context, id int64) error {
			require.Equal(t, int64(5), id)
			return nil
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	w := doRequest(r, http.MethodDelete, "/api/v1/countries/5", token, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteCountry_InUse(t *testing.T) {
	adm := &stubAdmin{
		deleteCountry: func(ctx context.Context, id int64) error {
			return admin.ErrInUse
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	w := doRequest(r, http.MethodDelete, "/api/v1/countries/5", token, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCity_UnknownCountry(t *testing.T) {
	adm := &stubAdmin{
		createCity: func(ctx context.Context, c domain.City) (int64, error) {
			return 0, admin.ErrBadReference
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	w := doRequest(r, http.MethodPost, "/api/v1/cities", token, CityInput{Name: "Kyiv", Country: 42})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFlight_OK(t *testing.T) {
	var gotFlight domain.Flight
	var gotCrew []int64
	adm := &stubAdmin{
		createFlight: func(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error) {
			gotFlight, gotCrew = f, crewIDs
			return 11, nil
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	body := FlightInput{
		Route:         3,
		Airplane:      4,
		DepartureTime: "2026-09-01T10:00:00Z",
		ArrivalTime:   "2026-09-01T13:00:00Z",
		Status:        "scheduled",
		Crew:          []int64{1, 2},
	}
	w := doRequest(r, http.MethodPost, "/api/v1/flights", token, body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), gotFlight.RouteID)
	assert.Equal(t, int64(4), gotFlight.AirplaneID)
	assert.Equal(t, domain.FlightScheduled, gotFlight.Status)
	assert.True(t, gotFlight.DepartureTime.Equal(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, []int64{1, 2}, gotCrew)
}

func TestCreateFlight_BadTimestamp(t *testing.T) {
	r := newTestRouter(t, Services{Admin: &stubAdmin{}})

	token := signToken(t, uuid.New(), true)
	body := FlightInput{
		Route:         3,
		Airplane:      4,
		DepartureTime: "next tuesday",
		ArrivalTime:   "2026-09-01T13:00:00Z",
		Status:        "scheduled",
	}
	w := doRequest(r, http.MethodPost, "/api/v1/flights", token, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFlight_PastDeparture(t *testing.T) {
	adm := &stubAdmin{
		createFlight: func(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error) {
			return 0, domain.ErrPastDeparture
		},
	}
	r := newTestRouter(t, Services{Admin: adm})

	token := signToken(t, uuid.New(), true)
	body := FlightInput{
		Route:         3,
		Airplane:      4,
		DepartureTime: "2020-09-01T10:00:00Z",
		ArrivalTime:   "2020-09-01T13:00:00Z",
		Status:        "scheduled",
	}
	w := doRequest(r, http.MethodPost, "/api/v1/flights", token, body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.ErrPastDeparture.Error(), got.Error)
}

// --- orders ---

func TestCreateOrder_Created(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	created := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	bk := &stubBooking{
		createOrder: func(ctx context.Context, ident domain.Identity, reqs []domain.TicketRequest, rlKey string) (*domain.OrderWithTickets, error) {
			require.Equal(t, userID, ident.UserID)
			require.Equal(t, "user:"+userID.String(), rlKey)
			require.Len(t, reqs, 1)
			require.Equal(t, domain.TicketRequest{FlightID: 7, Row: 1, Seat: 2, Class: domain.ClassEconomy}, reqs[0])

			return &domain.OrderWithTickets{
				Order: domain.Order{ID: orderID, UserID: userID, CreatedAt: created},
				Tickets: []domain.Ticket{{
					ID:       uuid.New(),
					OrderID:  orderID,
					FlightID: 7,
					Row:      1,
					Seat:     2,
					Class:    domain.ClassEconomy,
					Price:    100,
				}},
			}, nil
		},
	}
	r := newTestRouter(t, Services{Booking: bk})

	token := signToken(t, userID, false)
	body := CreateOrderRequest{Tickets: []TicketInput{{Row: 1, Seat: 2, TicketClass: "economy", Flight: 7}}}
	w := doRequest(r, http.MethodPost, "/api/v1/orders", token, body)

	require.Equal(t, http.StatusCreated, w.Code)

	var got OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, orderID.String(), got.ID)
	require.Len(t, got.Tickets, 1)
	assert.Equal(t, int64(7), got.Tickets[0].Flight)
	assert.Equal(t, int64(100), got.Tickets[0].Price)
	assert.Equal(t, "economy", got.Tickets[0].TicketClass)
}

func TestCreateOrder_ValidationBody(t *testing.T) {
	bk := &stubBooking{
		createOrder: func(ctx context.Context, ident domain.Identity, reqs []domain.TicketRequest, rlKey string) (*domain.OrderWithTickets, error) {
			return nil, &booking.ValidationError{Faults: []booking.Fault{
				{Index: 0, Field: "row", Err: &domain.SeatOutOfRangeError{Field: "row", Value: 99, Max: 20}},
				{Index: 1, Field: "seat", Err: &domain.SeatTakenError{Row: 1, Seat: 2}},
			}}
		},
	}
	r := newTestRouter(t, Services{Booking: bk})

	token := signToken(t, uuid.New(), false)
	body := CreateOrderRequest{Tickets: []TicketInput{
		{Row: 99, Seat: 2, Flight: 7},
		{Row: 1, Seat: 2, Flight: 7},
	}}
	w := doRequest(r, http.MethodPost, "/api/v1/orders", token, body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Details, 2)
	assert.Equal(t, 0, got.Details[0].Index)
	assert.Equal(t, "row", got.Details[0].Field)
	assert.Equal(t, "row number must be between 1 and 20, got 99", got.Details[0].Message)
	assert.Equal(t, "this seat is already taken for the selected flight", got.Details[1].Message)
}

func TestCreateOrder_RateLimited(t *testing.T) {
	bk := &stubBooking{
		createOrder: func(ctx context.Context, ident domain.Identity, reqs []domain.TicketRequest, rlKey string) (*domain.OrderWithTickets, error) {
			return nil, &booking.RateLimitedError{RetryAfter: 30 * time.Second}
		},
	}
	r := newTestRouter(t, Services{Booking: bk})

	token := signToken(t, uuid.New(), false)
	body := CreateOrderRequest{Tickets: []TicketInput{{Row: 1, Seat: 1, Flight: 7}}}
	w := doRequest(r, http.MethodPost, "/api/v1/orders", token, body)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}

func TestCreateOrder_UnknownClassRejectedByBinding(t *testing.T) {
	r := newTestRouter(t, Services{Booking: &stubBooking{}})

	token := signToken(t, uuid.New(), false)
	body := CreateOrderRequest{Tickets: []TicketInput{{Row: 1, Seat: 1, TicketClass: "luxury", Flight: 7}}}
	w := doRequest(r, http.MethodPost, "/api/v1/orders", token, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders_OK(t *testing.T) {
	userID := uuid.New()
	ord := &stubOrders{
		list: func(ctx context.Context, ident domain.Identity) ([]domain.OrderWithTickets, error) {
			require.Equal(t, userID, ident.UserID)
			return []domain.OrderWithTickets{}, nil
		},
	}
	r := newTestRouter(t, Services{Orders: ord})

	token := signToken(t, userID, false)
	w := doRequest(r, http.MethodGet, "/api/v1/orders", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetOrder_ForeignOrderForbidden(t *testing.T) {
	ord := &stubOrders{
		get: func(ctx context.Context, ident domain.Identity, id uuid.UUID) (*domain.OrderDetail, error) {
			return nil, orders.ErrForbidden
		},
	}
	r := newTestRouter(t, Services{Orders: ord})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/orders/"+uuid.New().String(), token, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetOrder_BadIDIsRejected(t *testing.T) {
	r := newTestRouter(t, Services{Orders: &stubOrders{}})

	token := signToken(t, uuid.New(), false)
	w := doRequest(r, http.MethodGet, "/api/v1/orders/not-a-uuid", token, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrder_DetailShape(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	dep := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	ord := &stubOrders{
		get: func(ctx context.Context, ident domain.Identity, id uuid.UUID) (*domain.OrderDetail, error) {
			require.Equal(t, orderID, id)
			return &domain.OrderDetail{
				Order: domain.Order{ID: orderID, UserID: userID, CreatedAt: dep},
				Tickets: []domain.TicketDetail{{
					Ticket: domain.Ticket{
						ID:       uuid.New(),
						OrderID:  orderID,
						FlightID: 7,
						Row:      1,
						Seat:     2,
						Class:    domain.ClassFirst,
						Price:    300,
					},
					Flight: domain.FlightInfo{
						Route:         "Boryspil -> Heathrow",
						DepartureTime: dep,
						ArrivalTime:   dep.Add(3 * time.Hour),
						Airplane:      "Dreamliner",
						Status:        domain.FlightScheduled,
						Crew:          []string{"Amelia Earhart"},
					},
				}},
			}, nil
		},
	}
	r := newTestRouter(t, Services{Orders: ord})

	token := signToken(t, userID, false)
	w := doRequest(r, http.MethodGet, "/api/v1/orders/"+orderID.String(), token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	tickets := got["tickets"].([]any)
	require.Len(t, tickets, 1)
	ticket := tickets[0].(map[string]any)
	assert.Equal(t, "first", ticket["ticket_class"])

	details := ticket["flight_details"].(map[string]any)
	assert.Equal(t, "Boryspil -> Heathrow", details["route"])
	assert.Equal(t, []any{"Amelia Earhart"}, details["crew"])
}
