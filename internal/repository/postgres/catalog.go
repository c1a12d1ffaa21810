package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MAksum123456/fly-port-api/internal/domain"
)

// CatalogRepo serves the read side of the reference data: countries, cities,
// airports, airplane types, airplanes, crew, routes and flights.
type CatalogRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CatalogRepo) With(db DB) *CatalogRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CatalogRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *CatalogRepo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	const op = "postgres.CatalogRepo.ListCountries"

	db := r.handle()

	rows, err := db.Query(ctx, `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	const op = "postgres.CatalogRepo.GetCountry"

	db := r.handle()

	var c domain.Country
	err := db.QueryRow(ctx,
		`SELECT id, name FROM countries WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

const cityViewSQL = `
	SELECT ci.id, ci.name, co.name,
	       COALESCE(array_agg(a.name ORDER BY a.name) FILTER (WHERE a.id IS NOT NULL), '{}')
	  FROM cities ci
	  JOIN countries co ON co.id = ci.country_id
	  LEFT JOIN airports a ON a.city_id = ci.id`

// ListCities returns cities with their country and airport names resolved.
func (r *CatalogRepo) ListCities(ctx context.Context) ([]domain.CityView, error) {
	const op = "postgres.CatalogRepo.ListCities"

	db := r.handle()

	rows, err := db.Query(ctx,
		cityViewSQL+`
		 GROUP BY ci.id, ci.name, co.name
		 ORDER BY ci.name`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.CityView
	for rows.Next() {
		var cv domain.CityView
		if err := rows.Scan(&cv.ID, &cv.Name, &cv.Country, &cv.Airports); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetCity(ctx context.Context, id int64) (*domain.CityView, error) {
	const op = "postgres.CatalogRepo.GetCity"

	db := r.handle()

	var cv domain.CityView
	err := db.QueryRow(ctx,
		cityViewSQL+`
		 WHERE ci.id = $1
		 GROUP BY ci.id, ci.name, co.name`,
		id,
	).Scan(&cv.ID, &cv.Name, &cv.Country, &cv.Airports)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &cv, nil
}

const airportViewSQL = `
	SELECT a.id, a.name, a.closest_big_city, ci.name, co.name
	  FROM airports a
	  JOIN cities ci ON ci.id = a.city_id
	  JOIN countries co ON co.id = ci.country_id`

func (r *CatalogRepo) ListAirports(ctx context.Context) ([]domain.AirportView, error) {
	const op = "postgres.CatalogRepo.ListAirports"

	db := r.handle()

	rows, err := db.Query(ctx, airportViewSQL+` ORDER BY a.name`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.AirportView
	for rows.Next() {
		var av domain.AirportView
		if err := rows.Scan(&av.ID, &av.Name, &av.ClosestBigCity, &av.City, &av.Country); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, av)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetAirport(ctx context.Context, id int64) (*domain.AirportView, error) {
	const op = "postgres.CatalogRepo.GetAirport"

	db := r.handle()

	var av domain.AirportView
	err := db.QueryRow(ctx, airportViewSQL+` WHERE a.id = $1`, id).
		Scan(&av.ID, &av.Name, &av.ClosestBigCity, &av.City, &av.Country)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &av, nil
}

func (r *CatalogRepo) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	const op = "postgres.CatalogRepo.ListAirplaneTypes"

	db := r.handle()

	rows, err := db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.AirplaneType
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	const op = "postgres.CatalogRepo.GetAirplaneType"

	db := r.handle()

	var t domain.AirplaneType
	err := db.QueryRow(ctx,
		`SELECT id, name FROM airplane_types WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

const airplaneViewSQL = `
	SELECT a.id, a.name, a.serial_number, a."rows", a.seats_in_row, t.name
	  FROM airplanes a
	  JOIN airplane_types t ON t.id = a.airplane_type_id`

func (r *CatalogRepo) ListAirplanes(ctx context.Context) ([]domain.AirplaneView, error) {
	const op = "postgres.CatalogRepo.ListAirplanes"

	db := r.handle()

	rows, err := db.Query(ctx, airplaneViewSQL+` ORDER BY a.name`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.AirplaneView
	for rows.Next() {
		var av domain.AirplaneView
		if err := rows.Scan(&av.ID, &av.Name, &av.SerialNumber, &av.Rows, &av.SeatsInRow, &av.AirplaneType); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, av)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetAirplane(ctx context.Context, id int64) (*domain.AirplaneView, error) {
	const op = "postgres.CatalogRepo.GetAirplane"

	db := r.handle()

	var av domain.AirplaneView
	err := db.QueryRow(ctx, airplaneViewSQL+` WHERE a.id = $1`, id).
		Scan(&av.ID, &av.Name, &av.SerialNumber, &av.Rows, &av.SeatsInRow, &av.AirplaneType)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &av, nil
}

// ListCrew lists crew members, optionally narrowed by name filters.
func (r *CatalogRepo) ListCrew(ctx context.Context, f domain.CrewFilter) ([]domain.Crew, error) {
	const op = "postgres.CatalogRepo.ListCrew"

	db := r.handle()

	sql := `SELECT id, first_name, last_name, experience_years FROM crew`

	var where []string
	var args []any

	if f.FullName != "" {
		args = append(args, f.FullName)
		where = append(where, fmt.Sprintf(
			"(first_name ILIKE '%%' || $%d || '%%' OR last_name ILIKE '%%' || $%d || '%%')",
			len(args), len(args),
		))
	}

	if f.FirstName != "" {
		args = append(args, f.FirstName)
		where = append(where, fmt.Sprintf("first_name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if f.LastName != "" {
		args = append(args, f.LastName)
		where = append(where, fmt.Sprintf("last_name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY first_name"

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Crew
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.ExperienceYears); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	const op = "postgres.CatalogRepo.GetCrew"

	db := r.handle()

	var c domain.Crew
	err := db.QueryRow(ctx,
		`SELECT id, first_name, last_name, experience_years FROM crew WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.ExperienceYears)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

// ListRoutes lists routes, optionally narrowed by source/destination airport
// name.
func (r *CatalogRepo) ListRoutes(ctx context.Context, f domain.RouteFilter) ([]domain.Route, error) {
	const op = "postgres.CatalogRepo.ListRoutes"

	db := r.handle()

	sql := `
		SELECT r.id, r.source_id, r.destination_id, r.distance
		  FROM routes r
		  JOIN airports src ON src.id = r.source_id
		  JOIN airports dst ON dst.id = r.destination_id`

	var where []string
	var args []any

	if f.Source != "" {
		args = append(args, f.Source)
		where = append(where, fmt.Sprintf("src.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if f.Destination != "" {
		args = append(args, f.Destination)
		where = append(where, fmt.Sprintf("dst.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY r.distance"

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Route
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetRoute retrieves a route together with the flights scheduled on it.
func (r *CatalogRepo) GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	const op = "postgres.CatalogRepo.GetRoute"

	db := r.handle()

	var rd domain.RouteDetail
	err := db.QueryRow(ctx,
		`SELECT id, source_id, destination_id, distance FROM routes WHERE id = $1`,
		id,
	).Scan(&rd.ID, &rd.SourceID, &rd.DestinationID, &rd.Distance)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT a.name, f.departure_time, f.arrival_time, f.status,
		        COALESCE(array_agg(c.first_name || ' ' || c.last_name ORDER BY c.first_name)
		                 FILTER (WHERE c.id IS NOT NULL), '{}')
		   FROM flights f
		   JOIN airplanes a ON a.id = f.airplane_id
		   LEFT JOIN flight_crew fc ON fc.flight_id = f.id
		   LEFT JOIN crew c ON c.id = fc.crew_id
		  WHERE f.route_id = $1
		  GROUP BY f.id, a.name
		  ORDER BY f.departure_time DESC`,
		id,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var rf domain.RouteFlight
		if err := rows.Scan(&rf.Airplane, &rf.DepartureTime, &rf.ArrivalTime, &rf.Status, &rf.Crew); err != nil {
			return nil, wrapDBErr(op, err)
		}

		rd.Flights = append(rd.Flights, rf)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &rd, nil
}

const flightRowSQL = `
	SELECT f.id, src.name || ' -> ' || dst.name, a.name,
	       f.departure_time, f.arrival_time, f.status,
	       a."rows" * a.seats_in_row - COUNT(t.id)
	  FROM flights f
	  JOIN routes r ON r.id = f.route_id
	  JOIN airports src ON src.id = r.source_id
	  JOIN airports dst ON dst.id = r.destination_id
	  JOIN airplanes a ON a.id = f.airplane_id
	  LEFT JOIN tickets t ON t.flight_id = f.id`

const flightRowGroupBy = ` GROUP BY f.id, src.name, dst.name, a.name, a."rows", a.seats_in_row`

// ListFlights lists flights with the route rendered as "SRC -> DST" and the
// remaining seat count, narrowed by the given filter.
func (r *CatalogRepo) ListFlights(ctx context.Context, f domain.FlightFilter) ([]domain.FlightRow, error) {
	const op = "postgres.CatalogRepo.ListFlights"

	db := r.handle()

	sql := flightRowSQL

	var where []string
	var args []any

	if f.DepartureAfter != nil {
		args = append(args, *f.DepartureAfter)
		where = append(where, fmt.Sprintf("f.departure_time >= $%d", len(args)))
	}

	if f.DepartureBefore != nil {
		args = append(args, *f.DepartureBefore)
		where = append(where, fmt.Sprintf("f.departure_time < $%d", len(args)))
	}

	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("LOWER(f.status) = LOWER($%d)", len(args)))
	}

	if f.Airplane != "" {
		args = append(args, f.Airplane)
		where = append(where, fmt.Sprintf("a.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if f.Route != "" {
		args = append(args, f.Route)
		where = append(where, fmt.Sprintf(
			"(src.name ILIKE '%%' || $%d || '%%' OR dst.name ILIKE '%%' || $%d || '%%')",
			len(args), len(args),
		))
	}

	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += flightRowGroupBy + ` ORDER BY f.departure_time DESC`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.FlightRow
	for rows.Next() {
		var fr domain.FlightRow
		if err := rows.Scan(
			&fr.ID,
			&fr.Route,
			&fr.Airplane,
			&fr.DepartureTime,
			&fr.ArrivalTime,
			&fr.Status,
			&fr.TicketsAvailable,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, fr)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetFlight retrieves a flight row together with its crew.
func (r *CatalogRepo) GetFlight(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	const op = "postgres.CatalogRepo.GetFlight"

	db := r.handle()

	var fd domain.FlightDetail
	err := db.QueryRow(ctx,
		flightRowSQL+` WHERE f.id = $1`+flightRowGroupBy,
		id,
	).Scan(
		&fd.ID,
		&fd.Route,
		&fd.Airplane,
		&fd.DepartureTime,
		&fd.ArrivalTime,
		&fd.Status,
		&fd.TicketsAvailable,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT c.id, c.first_name, c.last_name, c.experience_years
		   FROM crew c
		   JOIN flight_crew fc ON fc.crew_id = c.id
		  WHERE fc.flight_id = $1
		  ORDER BY c.first_name`,
		id,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.ExperienceYears); err != nil {
			return nil, wrapDBErr(op, err)
		}

		fd.Crew = append(fd.Crew, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &fd, nil
}
