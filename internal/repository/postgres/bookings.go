package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MAksum123456/fly-port-api/internal/domain"
)

// BookingRepo is the transactional surface of order creation. Every method is
// meant to run on the same tx handle (via With) so the availability check and
// the ticket inserts are atomic with respect to concurrent bookings; the
// unique index on (flight_id, "row", seat) remains the authoritative guard.
type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// FindFlight retrieves the flight state the booking flow validates against:
// the flight itself plus the airplane whose dimensions bound its seat map.
//
// Returns:
//   - *domain.BookingFlight: the flight when found.
//   - error: repository.ErrNotFound if the flight does not exist.
func (r *BookingRepo) FindFlight(ctx context.Context, id int64) (*domain.BookingFlight, error) {
	const op = "postgres.BookingRepo.FindFlight"

	db := r.handle()

	var bf domain.BookingFlight
	err := db.QueryRow(ctx,
		`SELECT f.id,
		        a.id, a.name, a.serial_number, a."rows", a.seats_in_row, a.airplane_type_id
		   FROM flights f
		   JOIN airplanes a ON a.id = f.airplane_id
		  WHERE f.id = $1`,
		id,
	).Scan(
		&bf.ID,
		&bf.Airplane.ID,
		&bf.Airplane.Name,
		&bf.Airplane.SerialNumber,
		&bf.Airplane.Rows,
		&bf.Airplane.SeatsInRow,
		&bf.Airplane.TypeID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &bf, nil
}

// SeatTaken reports whether a ticket already occupies (row, seat) on the
// flight. Inside a serializable tx this is the early reject; the final word
// belongs to the unique index at commit.
func (r *BookingRepo) SeatTaken(ctx context.Context, flightID int64, row, seat int) (bool, error) {
	const op = "postgres.BookingRepo.SeatTaken"

	db := r.handle()

	var taken bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM tickets WHERE flight_id = $1 AND "row" = $2 AND seat = $3
		 )`,
		flightID, row, seat,
	).Scan(&taken)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	return taken, nil
}

// CreateOrderWithTickets inserts the order and then all its tickets in one
// batch. The order's CreatedAt is filled from the database clock.
//
// Returns:
//   - error: repository.ErrConflict when a ticket insert loses the seat race
//     against a concurrent writer (unique index on flight/row/seat).
func (r *BookingRepo) CreateOrderWithTickets(
	ctx context.Context,
	order *domain.Order,
	tickets []domain.Ticket,
) error {
	const op = "postgres.BookingRepo.CreateOrderWithTickets"

	db := r.handle()

	if err := db.QueryRow(ctx,
		`INSERT INTO orders(id, user_id, created_at)
		 VALUES ($1, $2, now())
		 RETURNING created_at`,
		order.ID, order.UserID,
	).Scan(&order.CreatedAt); err != nil {
		return wrapDBErr(op, err)
	}

	batch := &pgx.Batch{}
	for _, t := range tickets {
		batch.Queue(
			`INSERT INTO tickets(id, order_id, flight_id, "row", seat, ticket_class, price)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, order.ID, t.FlightID, t.Row, t.Seat, t.Class, t.Price,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
