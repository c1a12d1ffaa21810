package service

import (
	"context"

	postgres "github.com/MAksum123456/fly-port-api/internal/repository/postgres"
	redis "github.com/MAksum123456/fly-port-api/internal/repository/redis"
	"github.com/MAksum123456/fly-port-api/internal/service/admin"
	"github.com/MAksum123456/fly-port-api/internal/service/booking"
	"github.com/MAksum123456/fly-port-api/internal/service/catalog"
	"github.com/MAksum123456/fly-port-api/internal/service/orders"
	"github.com/MAksum123456/fly-port-api/internal/uow"
)

type Services struct {
	Booking *booking.Service
	Catalog *catalog.Service
	Admin   *admin.Service
	Orders  *orders.Service
}

type Config struct {
	Catalog catalog.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.FlightsPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	var lim booking.Limiter
	if limiter != nil {
		lim = limiter
	}

	return &Services{
		Booking: booking.New(&bookingUoW{store: store, uow: uow.NewUoW(store)}, cache, pubsub, lim),
		Catalog: catalog.New(store, cache, cfg.Catalog),
		Admin:   admin.New(store, cache, pubsub),
		Orders:  orders.New(store.Orders()),
	}
}

// bookingUoW narrows the store-wide unit of work to the booking repository
// bound to the running transaction.
type bookingUoW struct {
	store *postgres.Store
	uow   *uow.UoW
}

func (b *bookingUoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, repo booking.Repository, after func(uow.AfterCommit)) error,
) error {
	return b.uow.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		return fn(ctx, b.store.Bookings().With(tx), after)
	})
}
