package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/MAksum123456/fly-port-api/internal/config"
	"github.com/MAksum123456/fly-port-api/internal/postgres"
	postgresrepo "github.com/MAksum123456/fly-port-api/internal/repository/postgres"
	redisrepo "github.com/MAksum123456/fly-port-api/internal/repository/redis"
	"github.com/MAksum123456/fly-port-api/internal/service"
	"github.com/MAksum123456/fly-port-api/internal/service/catalog"
	httpgin "github.com/MAksum123456/fly-port-api/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	pool       *pgxpool.Pool
	rdb        *goredis.Client
	cache      *redisrepo.Cache
	pubsub     *redisrepo.FlightsPubSub
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.New(context.Background(), postgres.Config{
		DSN:      cfg.Postgres.DSN(),
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redisrepo.NewClient(context.Background(), redisrepo.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	store := postgresrepo.NewStore(pool)
	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewFlightsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "orders", cfg.RateLimit.Limit, cfg.RateLimit.Window)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, cfg.Cache.IdempotencyTTL)

	services := service.NewServices(store, cache, pubsub, limiter, service.Config{
		Catalog: catalog.Config{
			CollectionTTL:   cfg.Cache.CollectionTTL,
			FlightListTTL:   cfg.Cache.FlightListTTL,
			FlightDetailTTL: cfg.Cache.FlightDetailTTL,
		},
	})

	router := httpgin.NewRouter(
		httpgin.Services{
			Catalog: services.Catalog,
			Admin:   services.Admin,
			Booking: services.Booking,
			Orders:  services.Orders,
		},
		idempotencyStore,
		[]byte(cfg.Auth.JWTSecret),
		logger,
	)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		pool:   pool,
		rdb:    rdb,
		cache:  cache,
		pubsub: pubsub,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "addr", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Peers publish flight changes; each instance drops its cached copies so
	// a stale detail never outlives the invalidation by more than the TTL.
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, flightID int64) {
			if err := a.cache.InvalidateFlight(ctx, flightID); err != nil {
				a.logger.Warn("flight cache invalidation failed",
					"flight_id", flightID, "err", err)
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("flights subscription: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := a.httpServer.Shutdown(shutdownCtx)
		a.pool.Close()
		_ = a.rdb.Close()
		return err
	})

	return g.Wait()
}
