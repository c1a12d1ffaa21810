package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/repository"
	postgresrepo "github.com/MAksum123456/fly-port-api/internal/repository/postgres"
	redisrepo "github.com/MAksum123456/fly-port-api/internal/repository/redis"
)

type Config struct {
	CollectionTTL   time.Duration
	FlightListTTL   time.Duration
	FlightDetailTTL time.Duration
}

// Service is the read side of the reference catalog. Unfiltered collection
// lists and flight details go through the cache; filtered queries always hit
// the database, since every filter combination would otherwise become its own
// cache entry.
type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.CollectionTTL <= 0 {
		cfg.CollectionTTL = 5 * time.Minute
	}

	if cfg.FlightListTTL <= 0 {
		cfg.FlightListTTL = 30 * time.Second
	}

	if cfg.FlightDetailTTL <= 0 {
		cfg.FlightDetailTTL = 30 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *Service) ListCountries(ctx context.Context) ([]domain.Country, error) {
	const op = "service.catalog.ListCountries"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("countries"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.Country, error) {
			return s.store.Catalog().ListCountries(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	const op = "service.catalog.GetCountry"

	c, err := s.store.Catalog().GetCountry(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Service) ListCities(ctx context.Context) ([]domain.CityView, error) {
	const op = "service.catalog.ListCities"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("cities"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.CityView, error) {
			return s.store.Catalog().ListCities(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetCity(ctx context.Context, id int64) (*domain.CityView, error) {
	const op = "service.catalog.GetCity"

	c, err := s.store.Catalog().GetCity(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Service) ListAirports(ctx context.Context) ([]domain.AirportView, error) {
	const op = "service.catalog.ListAirports"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("airports"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.AirportView, error) {
			return s.store.Catalog().ListAirports(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetAirport(ctx context.Context, id int64) (*domain.AirportView, error) {
	const op = "service.catalog.GetAirport"

	a, err := s.store.Catalog().GetAirport(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *Service) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	const op = "service.catalog.ListAirplaneTypes"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("airplane_types"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.AirplaneType, error) {
			return s.store.Catalog().ListAirplaneTypes(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	const op = "service.catalog.GetAirplaneType"

	at, err := s.store.Catalog().GetAirplaneType(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return at, nil
}

func (s *Service) ListAirplanes(ctx context.Context) ([]domain.AirplaneView, error) {
	const op = "service.catalog.ListAirplanes"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("airplanes"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.AirplaneView, error) {
			return s.store.Catalog().ListAirplanes(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetAirplane(ctx context.Context, id int64) (*domain.AirplaneView, error) {
	const op = "service.catalog.GetAirplane"

	a, err := s.store.Catalog().GetAirplane(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *Service) ListCrew(ctx context.Context, f domain.CrewFilter) ([]domain.Crew, error) {
	const op = "service.catalog.ListCrew"

	if !f.Empty() {
		out, err := s.store.Catalog().ListCrew(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("crew"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.Crew, error) {
			return s.store.Catalog().ListCrew(ctx, f)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	const op = "service.catalog.GetCrew"

	c, err := s.store.Catalog().GetCrew(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Service) ListRoutes(ctx context.Context, f domain.RouteFilter) ([]domain.Route, error) {
	const op = "service.catalog.ListRoutes"

	if !f.Empty() {
		out, err := s.store.Catalog().ListRoutes(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCollection("routes"),
		s.cfg.CollectionTTL,
		func(ctx context.Context) ([]domain.Route, error) {
			return s.store.Catalog().ListRoutes(ctx, f)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// GetRoute is never cached: the detail embeds the route's flight schedule,
// which moves with every flight mutation.
func (s *Service) GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	const op = "service.catalog.GetRoute"

	rd, err := s.store.Catalog().GetRoute(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rd, nil
}

func (s *Service) ListFlights(ctx context.Context, f domain.FlightFilter) ([]domain.FlightRow, error) {
	const op = "service.catalog.ListFlights"

	if !f.Empty() {
		out, err := s.store.Catalog().ListFlights(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyFlightList(),
		s.cfg.FlightListTTL,
		func(ctx context.Context) ([]domain.FlightRow, error) {
			return s.store.Catalog().ListFlights(ctx, f)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// GetFlight retrieves one flight with its crew, utilizing the cache; entries
// are dropped by the booking and admin flows whenever the flight changes.
//
// Returns:
//   - *domain.FlightDetail: the flight, or nil on error.
//   - error: catalog.ErrNotFound if the flight does not exist.
func (s *Service) GetFlight(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	const op = "service.catalog.GetFlight"

	key := redisrepo.KeyFlightDetail(id)

	fd, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.FlightDetailTTL,
		func(ctx context.Context) (domain.FlightDetail, error) {
			out, err := s.store.Catalog().GetFlight(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.FlightDetail{}, ErrNotFound
				}

				return domain.FlightDetail{}, err
			}

			return *out, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &fd, nil
}
