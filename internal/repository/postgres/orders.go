package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MAksum123456/fly-port-api/internal/domain"
)

type OrderRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *OrderRepo) With(db DB) *OrderRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *OrderRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListForUser returns the user's orders, newest first, tickets priced low to
// high within each order.
func (r *OrderRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithTickets, error) {
	const op = "postgres.OrderRepo.ListForUser"

	rows, err := r.handle().Query(ctx,
		`SELECT id, user_id, created_at
		   FROM orders
		  WHERE user_id = $1
		  ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return r.collectOrders(ctx, op, rows)
}

// ListAll returns every order, newest first. Reserved for staff callers.
func (r *OrderRepo) ListAll(ctx context.Context) ([]domain.OrderWithTickets, error) {
	const op = "postgres.OrderRepo.ListAll"

	rows, err := r.handle().Query(ctx,
		`SELECT id, user_id, created_at
		   FROM orders
		  ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return r.collectOrders(ctx, op, rows)
}

func (r *OrderRepo) collectOrders(ctx context.Context, op string, rows pgx.Rows) ([]domain.OrderWithTickets, error) {
	defer rows.Close()

	var out []domain.OrderWithTickets
	idx := make(map[uuid.UUID]int)

	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}

		idx[o.ID] = len(out)
		out = append(out, domain.OrderWithTickets{Order: o})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	if len(out) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(out))
	for _, o := range out {
		ids = append(ids, o.Order.ID)
	}

	trows, err := r.handle().Query(ctx,
		`SELECT id, order_id, flight_id, "row", seat, ticket_class, price
		   FROM tickets
		  WHERE order_id = ANY($1)
		  ORDER BY price`,
		ids,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer trows.Close()

	for trows.Next() {
		var t domain.Ticket
		if err := trows.Scan(&t.ID, &t.OrderID, &t.FlightID, &t.Row, &t.Seat, &t.Class, &t.Price); err != nil {
			return nil, wrapDBErr(op, err)
		}

		if i, ok := idx[t.OrderID]; ok {
			out[i].Tickets = append(out[i].Tickets, t)
		}
	}
	if err := trows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetDetail retrieves one order with its tickets expanded: each ticket carries
// the flight's route string, times, airplane name, status and crew names.
// Visibility is the caller's concern; the repo returns the order regardless of
// owner.
func (r *OrderRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.OrderDetail, error) {
	const op = "postgres.OrderRepo.GetDetail"

	db := r.handle()

	var od domain.OrderDetail
	err := db.QueryRow(ctx,
		`SELECT id, user_id, created_at FROM orders WHERE id = $1`,
		id,
	).Scan(&od.ID, &od.UserID, &od.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT t.id, t.order_id, t.flight_id, t."row", t.seat, t.ticket_class, t.price,
		        src.name || ' -> ' || dst.name,
		        f.departure_time, f.arrival_time, a.name, f.status,
		        COALESCE(array_agg(c.first_name || ' ' || c.last_name ORDER BY c.first_name)
		                 FILTER (WHERE c.id IS NOT NULL), '{}')
		   FROM tickets t
		   JOIN flights f ON f.id = t.flight_id
		   JOIN routes r ON r.id = f.route_id
		   JOIN airports src ON src.id = r.source_id
		   JOIN airports dst ON dst.id = r.destination_id
		   JOIN airplanes a ON a.id = f.airplane_id
		   LEFT JOIN flight_crew fc ON fc.flight_id = f.id
		   LEFT JOIN crew c ON c.id = fc.crew_id
		  WHERE t.order_id = $1
		  GROUP BY t.id, f.id, src.id, dst.id, a.id
		  ORDER BY t.price`,
		id,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var td domain.TicketDetail
		if err := rows.Scan(
			&td.ID,
			&td.OrderID,
			&td.FlightID,
			&td.Row,
			&td.Seat,
			&td.Class,
			&td.Price,
			&td.Flight.Route,
			&td.Flight.DepartureTime,
			&td.Flight.ArrivalTime,
			&td.Flight.Airplane,
			&td.Flight.Status,
			&td.Flight.Crew,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		od.Tickets = append(od.Tickets, td)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &od, nil
}
