package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/repository"
)

// Repository is the order read surface. *postgres.OrderRepo satisfies it.
type Repository interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithTickets, error)
	ListAll(ctx context.Context) ([]domain.OrderWithTickets, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.OrderDetail, error)
}

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the caller's orders, newest first. Staff callers get every
// order in the system; everyone else is silently scoped to their own.
func (s *Service) List(ctx context.Context, ident domain.Identity) ([]domain.OrderWithTickets, error) {
	const op = "service.orders.List"

	var (
		out []domain.OrderWithTickets
		err error
	)

	if ident.Staff {
		out, err = s.repo.ListAll(ctx)
	} else {
		out, err = s.repo.ListForUser(ctx, ident.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Get retrieves one order with its tickets and their flight details.
//
// Parameters:
//   - ctx: request-scoped context.
//   - ident: the authenticated caller.
//   - id: ID of the order to retrieve.
//
// Returns:
//   - *domain.OrderDetail: the order, or nil on error.
//   - error: orders.ErrOrderNotFound if no such order exists.
//   - error: orders.ErrForbidden if the order belongs to another user and the
//     caller is not staff.
func (s *Service) Get(ctx context.Context, ident domain.Identity, id uuid.UUID) (*domain.OrderDetail, error) {
	const op = "service.orders.Get"

	od, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrOrderNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !ident.Staff && od.UserID != ident.UserID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return od, nil
}
