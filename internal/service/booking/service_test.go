package booking

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
	"github.com/MAksum123456/fly-port-api/internal/uow"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindFlight(ctx context.Context, id int64) (*domain.BookingFlight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingFlight), args.Error(1)
}

func (m *mockRepo) SeatTaken(ctx context.Context, flightID int64, row, seat int) (bool, error) {
	args := m.Called(ctx, flightID, row, seat)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) CreateOrderWithTickets(ctx context.Context, order *domain.Order, tickets []domain.Ticket) error {
	args := m.Called(ctx, order, tickets)
	return args.Error(0)
}

// fakeUoW runs fn against the mock repo and fires after-commit hooks when fn
// succeeds, mirroring the commit semantics of the real unit of work.
type fakeUoW struct {
	repo Repository
}

func (f *fakeUoW) Do(ctx context.Context, fn func(ctx context.Context, repo Repository, after func(uow.AfterCommit)) error) error {
	var hooks []uow.AfterCommit

	if err := fn(ctx, f.repo, func(h uow.AfterCommit) {
		hooks = append(hooks, h)
	}); err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}

type fakeLimiter struct {
	allowed bool
	retry   time.Duration
}

func (f *fakeLimiter) Allow(ctx context.Context, id string) (bool, int64, time.Duration, error) {
	return f.allowed, 1, f.retry, nil
}

func TestCreateOrder_Success(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, nil)

	ctx := context.Background()
	ident := domain.Identity{UserID: uuid.New()}
	plane := domain.Airplane{ID: 3, Rows: 20, SeatsInRow: 6}

	reqs := []domain.TicketRequest{
		{FlightID: 7, Row: 5, Seat: 2, Class: domain.ClassFirst},
		{FlightID: 7, Row: 5, Seat: 3}, // class omitted, prices as economy
	}

	createdAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	m.On("FindFlight", ctx, int64(7)).Return(&domain.BookingFlight{ID: 7, Airplane: plane}, nil).Once()
	m.On("SeatTaken", ctx, int64(7), 5, 2).Return(false, nil).Once()
	m.On("SeatTaken", ctx, int64(7), 5, 3).Return(false, nil).Once()
	m.On("CreateOrderWithTickets", ctx, mock.AnythingOfType("*domain.Order"), mock.AnythingOfType("[]domain.Ticket")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			order.CreatedAt = createdAt
		}).
		Return(nil).
		Once()

	out, err := svc.CreateOrder(ctx, ident, reqs, "")

	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, ident.UserID, out.Order.UserID)
	assert.NotEqual(t, uuid.Nil, out.Order.ID)
	assert.Equal(t, createdAt, out.Order.CreatedAt)

	require.Len(t, out.Tickets, 2)

	// Cheapest first: the classless economy seat precedes the first-class one.
	assert.Equal(t, domain.ClassEconomy, out.Tickets[0].Class)
	assert.Equal(t, int64(100), out.Tickets[0].Price)
	assert.Equal(t, 3, out.Tickets[0].Seat)
	assert.Equal(t, domain.ClassFirst, out.Tickets[1].Class)
	assert.Equal(t, int64(300), out.Tickets[1].Price)

	for _, tk := range out.Tickets {
		assert.Equal(t, out.Order.ID, tk.OrderID)
		assert.Equal(t, int64(7), tk.FlightID)
		assert.NotEqual(t, uuid.Nil, tk.ID)
	}

	m.AssertExpectations(t)
}

func TestCreateOrder_EmptyTicketList(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, nil)

	out, err := svc.CreateOrder(context.Background(), domain.Identity{UserID: uuid.New()}, nil, "")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrEmptyTicketList)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Faults, 1)
	assert.Equal(t, -1, vErr.Faults[0].Index)
	assert.Equal(t, "tickets", vErr.Faults[0].Field)

	m.AssertNotCalled(t, "FindFlight")
}

func TestCreateOrder_MultiFlightOrder(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, nil)

	reqs := []domain.TicketRequest{
		{FlightID: 1, Row: 1, Seat: 1},
		{FlightID: 2, Row: 1, Seat: 2},
	}

	out, err := svc.CreateOrder(context.Background(), domain.Identity{UserID: uuid.New()}, reqs, "")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrMultiFlightOrder)

	m.AssertNotCalled(t, "FindFlight")
}

func TestCreateOrder_UnknownFlight(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, nil)

	ctx := context.Background()
	reqs := []domain.TicketRequest{{FlightID: 42, Row: 1, Seat: 1}}

	m.On("FindFlight", ctx, int64(42)).Return(nil, repository.ErrNotFound).Once()

	out, err := svc.CreateOrder(ctx, domain.Identity{UserID: uuid.New()}, reqs, "")

	require.Error(t, err)
	assert.Nil(t, out)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Faults, 1)
	assert.Equal(t, "flight", vErr.Faults[0].Field)

	var ufErr *domain.UnknownFlightError
	require.ErrorAs(t, err, &ufErr)
	assert.Equal(t, int64(42), ufErr.FlightID)

	m.AssertNotCalled(t, "SeatTaken")
	m.AssertNotCalled(t, "CreateOrderWithTickets")
}

func TestCreateOrder_CollectsEverySeatFault(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, nil)

	ctx := context.Background()
	plane := domain.Airplane{ID: 3, Rows: 20, SeatsInRow: 6}

	reqs := []domain.TicketRequest{
		{FlightID: 7, Row: 25, Seat: 1}, // row out of range
		{FlightID: 7, Row: 1, Seat: 9},  // seat out of range
		{FlightID: 7, Row: 2, Seat: 2},  // already sold
		{FlightID: 7, Row: 3, Seat: 3},  // fine
		{FlightID: 7, Row: 3, Seat: 3},  // duplicate of the previous request
	}

	m.On("FindFlight", ctx, int64(7)).Return(&domain.BookingFlight{ID: 7, Airplane: plane}, nil).Once()
	m.On("SeatTaken", ctx, int64(7), 2, 2).Return(true, nil).Once()
	m.On("SeatTaken", ctx, int64(7), 3, 3).Return(false, nil).Once()

	out, err := svc.CreateOrder(ctx, domain.Identity{UserID: uuid.New()}, reqs, "")

	require.Error(t, err)
	assert.Nil(t, out)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Faults, 4)

	assert.Equal(t, 0, vErr.Faults[0].Index)
	assert.Equal(t, "row", vErr.Faults[0].Field)

	var oor *domain.SeatOutOfRangeError
	require.ErrorAs(t, vErr.Faults[0].Err, &oor)
	assert.Equal(t, 25, oor.Value)
	assert.Equal(t, 20, oor.Max)

	assert.Equal(t, 1, vErr.Faults[1].Index)
	assert.Equal(t, "seat", vErr.Faults[1].Field)

	assert.Equal(t, 2, vErr.Faults[2].Index)
	var taken *domain.SeatTakenError
	require.ErrorAs(t, vErr.Faults[2].Err, &taken)
	assert.Equal(t, 2, taken.Row)

	assert.Equal(t, 4, vErr.Faults[3].Index)
	require.ErrorAs(t, vErr.Faults[3].Err, &taken)
	assert.Equal(t, 3, taken.Row)
	assert.Equal(t, 3, taken.Seat)

	m.AssertNotCalled(t, "CreateOrderWithTickets")
}

func TestCreateOrder_CommitConflictReadsAsSeatTaken(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, nil)

	ctx := context.Background()
	plane := domain.Airplane{ID: 3, Rows: 20, SeatsInRow: 6}
	reqs := []domain.TicketRequest{{FlightID: 7, Row: 5, Seat: 2}}

	m.On("FindFlight", ctx, int64(7)).Return(&domain.BookingFlight{ID: 7, Airplane: plane}, nil).Once()
	m.On("SeatTaken", ctx, int64(7), 5, 2).Return(false, nil).Once()
	m.On("CreateOrderWithTickets", ctx, mock.Anything, mock.Anything).Return(repository.ErrConflict).Once()

	out, err := svc.CreateOrder(ctx, domain.Identity{UserID: uuid.New()}, reqs, "")

	require.Error(t, err)
	assert.Nil(t, out)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Faults, 1)
	assert.Equal(t, -1, vErr.Faults[0].Index)
	assert.Equal(t, "seat", vErr.Faults[0].Field)

	var taken *domain.SeatTakenError
	assert.ErrorAs(t, err, &taken)

	m.AssertExpectations(t)
}

func TestCreateOrder_RateLimited(t *testing.T) {
	m := &mockRepo{}
	svc := New(&fakeUoW{repo: m}, nil, nil, &fakeLimiter{allowed: false, retry: 30 * time.Second})

	reqs := []domain.TicketRequest{{FlightID: 7, Row: 5, Seat: 2}}

	out, err := svc.CreateOrder(context.Background(), domain.Identity{UserID: uuid.New()}, reqs, "user:abc")

	require.Error(t, err)
	assert.Nil(t, out)

	var rlErr *RateLimitedError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, 30*time.Second, rlErr.RetryAfter)

	m.AssertNotCalled(t, "FindFlight")
}
