package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/repository"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithTickets, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithTickets), args.Error(1)
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]domain.OrderWithTickets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithTickets), args.Error(1)
}

func (m *mockOrderRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetail), args.Error(1)
}

func TestList_ScopedToOwnOrders(t *testing.T) {
	m := &mockOrderRepo{}
	svc := New(m)

	ctx := context.Background()
	userID := uuid.New()

	own := []domain.OrderWithTickets{
		{Order: domain.Order{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()}},
	}

	m.On("ListForUser", ctx, userID).Return(own, nil).Once()

	out, err := svc.List(ctx, domain.Identity{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, own, out)

	m.AssertExpectations(t)
	m.AssertNotCalled(t, "ListAll")
}

func TestList_StaffSeesEverything(t *testing.T) {
	m := &mockOrderRepo{}
	svc := New(m)

	ctx := context.Background()

	all := []domain.OrderWithTickets{
		{Order: domain.Order{ID: uuid.New(), UserID: uuid.New()}},
		{Order: domain.Order{ID: uuid.New(), UserID: uuid.New()}},
	}

	m.On("ListAll", ctx).Return(all, nil).Once()

	out, err := svc.List(ctx, domain.Identity{UserID: uuid.New(), Staff: true})

	require.NoError(t, err)
	assert.Len(t, out, 2)

	m.AssertExpectations(t)
	m.AssertNotCalled(t, "ListForUser")
}

func TestGet_Owner(t *testing.T) {
	m := &mockOrderRepo{}
	svc := New(m)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	detail := &domain.OrderDetail{Order: domain.Order{ID: orderID, UserID: userID}}

	m.On("GetDetail", ctx, orderID).Return(detail, nil).Once()

	out, err := svc.Get(ctx, domain.Identity{UserID: userID}, orderID)

	require.NoError(t, err)
	assert.Equal(t, detail, out)

	m.AssertExpectations(t)
}

func TestGet_ForeignOrderForbidden(t *testing.T) {
	m := &mockOrderRepo{}
	svc := New(m)

	ctx := context.Background()
	orderID := uuid.New()

	detail := &domain.OrderDetail{Order: domain.Order{ID: orderID, UserID: uuid.New()}}

	m.On("GetDetail", ctx, orderID).Return(detail, nil).Once()

	out, err := svc.Get(ctx, domain.Identity{UserID: uuid.New()}, orderID)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGet_StaffReadsAnyOrder(t *testing.T) {
	m := &mockOrderRepo{}
	svc := New(m)

	ctx := context.Background()
	orderID := uuid.New()

	detail := &domain.OrderDetail{Order: domain.Order{ID: orderID, UserID: uuid.New()}}

	m.On("GetDetail", ctx, orderID).Return(detail, nil).Once()

	out, err := svc.Get(ctx, domain.Identity{UserID: uuid.New(), Staff: true}, orderID)

	require.NoError(t, err)
	assert.Equal(t, detail, out)
}

func TestGet_NotFound(t *testing.T) {
	m := &mockOrderRepo{}
	svc := New(m)

	ctx := context.Background()
	orderID := uuid.New()

	m.On("GetDetail", ctx, orderID).Return(nil, repository.ErrNotFound).Once()

	out, err := svc.Get(ctx, domain.Identity{UserID: uuid.New()}, orderID)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
