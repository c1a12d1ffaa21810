package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/repository"
	redisrepo "github.com/MAksum123456/fly-port-api/internal/repository/redis"
	"github.com/MAksum123456/fly-port-api/internal/uow"
)

// Repository is the slice of the store the booking flow needs. *postgres.BookingRepo
// bound to the transaction handle satisfies it.
type Repository interface {
	FindFlight(ctx context.Context, id int64) (*domain.BookingFlight, error)
	SeatTaken(ctx context.Context, flightID int64, row, seat int) (bool, error)
	CreateOrderWithTickets(ctx context.Context, order *domain.Order, tickets []domain.Ticket) error
}

// UnitOfWork runs fn inside one serializable transaction and fires the hooks
// registered through after only once the commit lands.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repo Repository, after func(uow.AfterCommit)) error) error
}

type Limiter interface {
	Allow(ctx context.Context, id string) (allowed bool, current int64, retryAfter time.Duration, err error)
}

type Service struct {
	uow     UnitOfWork
	cache   *redisrepo.Cache
	pubsub  *redisrepo.FlightsPubSub
	limiter Limiter
}

func New(
	uow UnitOfWork,
	cache *redisrepo.Cache,
	pubsub *redisrepo.FlightsPubSub,
	limiter Limiter,
) *Service {
	return &Service{
		uow:     uow,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
	}
}

// CreateOrder books every requested seat on one flight atomically: either the
// order and all its tickets are persisted, or nothing is.
//
// Seat checks run to completion before the order is rejected, so the returned
// ValidationError carries every bad seat at once rather than the first one
// found. Tickets come back priced and sorted cheapest first.
//
// Parameters:
//   - ctx: request-scoped context.
//   - ident: the authenticated caller; the order is created on their behalf.
//   - reqs: requested seats, all on the same flight.
//   - rlKey: rate-limit bucket for the caller, empty to skip limiting.
//
// Returns:
//   - *domain.OrderWithTickets: the persisted order with its tickets.
//   - error: *booking.ValidationError describing every rejected seat.
//   - error: *booking.RateLimitedError when the caller is over the window.
func (s *Service) CreateOrder(
	ctx context.Context,
	ident domain.Identity,
	reqs []domain.TicketRequest,
	rlKey string,
) (*domain.OrderWithTickets, error) {
	const op = "service.booking.CreateOrder"

	if len(reqs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Faults: []Fault{
			{Index: -1, Field: "tickets", Err: ErrEmptyTicketList},
		}})
	}

	flightID := reqs[0].FlightID
	for _, r := range reqs[1:] {
		if r.FlightID != flightID {
			return nil, fmt.Errorf("%s: %w", op, &ValidationError{Faults: []Fault{
				{Index: -1, Field: "tickets", Err: ErrMultiFlightOrder},
			}})
		}
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, &RateLimitedError{RetryAfter: retry})
		}
	}

	var out *domain.OrderWithTickets

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		repo Repository,
		after func(uow.AfterCommit),
	) error {
		flight, err := repo.FindFlight(ctx, flightID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, &ValidationError{Faults: []Fault{
					{Index: -1, Field: "flight", Err: &domain.UnknownFlightError{FlightID: flightID}},
				}})
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		var faults []Fault
		requested := make(map[[2]int]bool, len(reqs))

		for i, r := range reqs {
			if err := domain.ValidateSeat(flight.Airplane, r.Row, r.Seat); err != nil {
				field := "row"
				var oor *domain.SeatOutOfRangeError
				if errors.As(err, &oor) {
					field = oor.Field
				}

				faults = append(faults, Fault{Index: i, Field: field, Err: err})
				continue
			}

			// A seat claimed twice within the batch is taken by its first
			// occurrence.
			key := [2]int{r.Row, r.Seat}
			if requested[key] {
				faults = append(faults, Fault{Index: i, Field: "seat", Err: &domain.SeatTakenError{Row: r.Row, Seat: r.Seat}})
				continue
			}
			requested[key] = true

			taken, err := repo.SeatTaken(ctx, flightID, r.Row, r.Seat)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if taken {
				faults = append(faults, Fault{Index: i, Field: "seat", Err: &domain.SeatTakenError{Row: r.Row, Seat: r.Seat}})
			}
		}

		if len(faults) > 0 {
			return fmt.Errorf("%s: %w", op, &ValidationError{Faults: faults})
		}

		order := domain.Order{ID: uuid.New(), UserID: ident.UserID}

		tickets := make([]domain.Ticket, 0, len(reqs))
		for _, r := range reqs {
			class := r.Class
			if class == "" {
				class = domain.ClassEconomy
			}

			tickets = append(tickets, domain.Ticket{
				ID:       uuid.New(),
				OrderID:  order.ID,
				FlightID: flightID,
				Row:      r.Row,
				Seat:     r.Seat,
				Class:    class,
				Price:    domain.PriceFor(class),
			})
		}

		sort.SliceStable(tickets, func(i, j int) bool {
			return tickets[i].Price < tickets[j].Price
		})

		if err := repo.CreateOrderWithTickets(ctx, &order, tickets); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				// A concurrent writer committed one of these seats between
				// the availability check and our commit.
				return fmt.Errorf("%s: %w", op, &ValidationError{Faults: []Fault{
					{Index: -1, Field: "seat", Err: &domain.SeatTakenError{}},
				}})
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		out = &domain.OrderWithTickets{Order: order, Tickets: tickets}

		after(func(ctx context.Context) {
			if s.cache != nil {
				_ = s.cache.InvalidateFlight(ctx, flightID)
			}
			if s.pubsub != nil {
				_ = s.pubsub.PublishFlightChanged(ctx, flightID)
			}
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
