package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/repository"
	postgresrepo "github.com/MAksum123456/fly-port-api/internal/repository/postgres"
	redisrepo "github.com/MAksum123456/fly-port-api/internal/repository/redis"
	"github.com/MAksum123456/fly-port-api/internal/uow"
)

// Service is the staff-only write side of the reference catalog. Every
// mutation runs in a unit of work and drops the affected cache entries after
// the commit lands.
type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.FlightsPubSub
	uow    *uow.UoW
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, pubsub *redisrepo.FlightsPubSub) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// wrapWriteErr translates repository sentinels for creates and updates, where
// a foreign key violation means the referenced parent row is missing.
func wrapWriteErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrConflict):
		err = ErrAlreadyExists
	case errors.Is(err, repository.ErrNotFound):
		err = ErrNotFound
	case errors.Is(err, repository.ErrForeignKey):
		err = ErrBadReference
	}

	return fmt.Errorf("%s: %w", op, err)
}

// wrapDeleteErr translates repository sentinels for deletes, where a foreign
// key violation means dependent rows still point at the target.
func wrapDeleteErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		err = ErrNotFound
	case errors.Is(err, repository.ErrForeignKey):
		err = ErrInUse
	}

	return fmt.Errorf("%s: %w", op, err)
}

// dropCollections builds an after-commit hook invalidating the named cached
// collections. Views embed names of their parents, so a mutation drops the
// entity's own collection plus the dependents that render it.
func (s *Service) dropCollections(names ...string) uow.AfterCommit {
	return func(ctx context.Context) {
		for _, n := range names {
			_ = s.cache.InvalidateCollection(ctx, n)
		}
	}
}

func (s *Service) CreateCountry(ctx context.Context, name string) (int64, error) {
	const op = "service.admin.CreateCountry"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateCountry(ctx, name)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("countries", "cities", "airports"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateCountry(ctx context.Context, id int64, name string) error {
	const op = "service.admin.UpdateCountry"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateCountry(ctx, id, name); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("countries", "cities", "airports"))
		return nil
	})
}

func (s *Service) DeleteCountry(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteCountry"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteCountry(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("countries", "cities", "airports"))
		return nil
	})
}

func (s *Service) CreateCity(ctx context.Context, c domain.City) (int64, error) {
	const op = "service.admin.CreateCity"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateCity(ctx, c)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("cities", "airports"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateCity(ctx context.Context, c domain.City) error {
	const op = "service.admin.UpdateCity"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateCity(ctx, c); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("cities", "airports"))
		return nil
	})
}

func (s *Service) DeleteCity(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteCity"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteCity(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("cities", "airports"))
		return nil
	})
}

func (s *Service) CreateAirport(ctx context.Context, a domain.Airport) (int64, error) {
	const op = "service.admin.CreateAirport"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateAirport(ctx, a)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("airports"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateAirport(ctx context.Context, a domain.Airport) error {
	const op = "service.admin.UpdateAirport"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateAirport(ctx, a); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("airports"))
		return nil
	})
}

func (s *Service) DeleteAirport(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteAirport"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteAirport(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("airports"))
		return nil
	})
}

func (s *Service) CreateAirplaneType(ctx context.Context, name string) (int64, error) {
	const op = "service.admin.CreateAirplaneType"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateAirplaneType(ctx, name)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("airplane_types", "airplanes"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateAirplaneType(ctx context.Context, id int64, name string) error {
	const op = "service.admin.UpdateAirplaneType"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateAirplaneType(ctx, id, name); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("airplane_types", "airplanes"))
		return nil
	})
}

func (s *Service) DeleteAirplaneType(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteAirplaneType"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteAirplaneType(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("airplane_types", "airplanes"))
		return nil
	})
}

func (s *Service) CreateAirplane(ctx context.Context, a domain.Airplane) (int64, error) {
	const op = "service.admin.CreateAirplane"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateAirplane(ctx, a)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("airplanes"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateAirplane(ctx context.Context, a domain.Airplane) error {
	const op = "service.admin.UpdateAirplane"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateAirplane(ctx, a); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("airplanes"))
		return nil
	})
}

func (s *Service) DeleteAirplane(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteAirplane"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteAirplane(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("airplanes"))
		return nil
	})
}

func (s *Service) CreateCrew(ctx context.Context, c domain.Crew) (int64, error) {
	const op = "service.admin.CreateCrew"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateCrew(ctx, c)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("crew"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateCrew(ctx context.Context, c domain.Crew) error {
	const op = "service.admin.UpdateCrew"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateCrew(ctx, c); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("crew"))
		return nil
	})
}

func (s *Service) DeleteCrew(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteCrew"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteCrew(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("crew"))
		return nil
	})
}

// CreateRoute persists a route after checking that source and destination
// differ.
//
// Returns:
//   - int64: the created route ID.
//   - error: domain.ErrSameAirport when source equals destination.
//   - error: admin.ErrAlreadyExists when the airport pair is already routed.
//   - error: admin.ErrBadReference when either airport does not exist.
func (s *Service) CreateRoute(ctx context.Context, rt domain.Route) (int64, error) {
	const op = "service.admin.CreateRoute"

	if err := domain.ValidateRoute(rt.SourceID, rt.DestinationID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateRoute(ctx, rt)
		if err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("routes"))
		return nil
	})

	return id, err
}

func (s *Service) UpdateRoute(ctx context.Context, rt domain.Route) error {
	const op = "service.admin.UpdateRoute"

	if err := domain.ValidateRoute(rt.SourceID, rt.DestinationID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateRoute(ctx, rt); err != nil {
			return wrapWriteErr(op, err)
		}
		after(s.dropCollections("routes"))
		return nil
	})
}

func (s *Service) DeleteRoute(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteRoute"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteRoute(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}
		after(s.dropCollections("routes"))
		return nil
	})
}

// CreateFlight persists a flight and its crew assignments in one transaction.
//
// Parameters:
//   - ctx: request-scoped context.
//   - f: the flight to create; Status must be a known value.
//   - crewIDs: crew members to assign, may be empty.
//
// Returns:
//   - int64: the created flight ID.
//   - error: domain.ErrBadStatus, domain.ErrInvalidTimeRange or
//     domain.ErrPastDeparture when the flight fails validation.
//   - error: admin.ErrBadReference when the route, airplane or a crew member
//     does not exist.
func (s *Service) CreateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error) {
	const op = "service.admin.CreateFlight"

	if !f.Status.Valid() {
		return 0, fmt.Errorf("%s: %w", op, domain.ErrBadStatus)
	}

	if err := domain.ValidateFlightTimes(f.DepartureTime, f.ArrivalTime, time.Now()); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Admin().With(tx).CreateFlight(ctx, f, crewIDs)
		if err != nil {
			return wrapWriteErr(op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateFlight(ctx, id)
			_ = s.pubsub.PublishFlightChanged(ctx, id)
		})
		return nil
	})

	return id, err
}

// UpdateFlight rewrites the flight row and replaces its crew set. The
// past-departure rule is not reapplied here: flights already flown must stay
// editable for status corrections.
func (s *Service) UpdateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) error {
	const op = "service.admin.UpdateFlight"

	if !f.Status.Valid() {
		return fmt.Errorf("%s: %w", op, domain.ErrBadStatus)
	}

	if !f.DepartureTime.Before(f.ArrivalTime) {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidTimeRange)
	}

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).UpdateFlight(ctx, f, crewIDs); err != nil {
			return wrapWriteErr(op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateFlight(ctx, f.ID)
			_ = s.pubsub.PublishFlightChanged(ctx, f.ID)
		})
		return nil
	})
}

func (s *Service) DeleteFlight(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteFlight"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Admin().With(tx).DeleteFlight(ctx, id); err != nil {
			return wrapDeleteErr(op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateFlight(ctx, id)
			_ = s.pubsub.PublishFlightChanged(ctx, id)
		})
		return nil
	})
}
