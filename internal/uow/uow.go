package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/MAksum123456/fly-port-api/internal/repository/postgres"
)

// AfterCommit runs once the surrounding transaction has committed. Hooks hold
// the side effects that must not fire on rollback, such as cache invalidation
// and peer notification.
type AfterCommit func(ctx context.Context)

// maxAttempts bounds the serialization retry loop. Bookings run serializable,
// so two orders racing for seats on the same flight can abort with a
// serialization failure; the rerun sees the winner's tickets and reports the
// seats as taken instead.
const maxAttempts = 3

// UoW runs functions inside a database transaction and defers their side
// effects until the commit has landed.
type UoW struct {
	store *postgres.Store
}

func NewUoW(store *postgres.Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn inside a serializable transaction, rerunning it from scratch on
// serialization failures. Hooks registered through after are dropped with the
// aborted attempt and fire exactly once, after the final commit.
func (u *UoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	return u.DoWithOpts(ctx, nil, fn)
}

// DoWithOpts is Do with explicit transaction options.
func (u *UoW) DoWithOpts(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	var err error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var hooks []AfterCommit

		err = u.store.RunTx(ctx, opts, func(ctx context.Context, tx postgres.DB) error {
			return fn(ctx, tx, func(h AfterCommit) {
				hooks = append(hooks, h)
			})
		})
		if err == nil {
			for _, h := range hooks {
				h(ctx)
			}

			return nil
		}

		if !postgres.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}

	return err
}
