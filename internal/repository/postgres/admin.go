package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	"github.com/MAksum123456/fly-port-api/internal/repository"
)

// AdminRepo carries the write side of the reference data. Uniqueness and
// reference violations surface as repository.ErrConflict / ErrForeignKey.
type AdminRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AdminRepo) With(db DB) *AdminRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AdminRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *AdminRepo) CreateCountry(ctx context.Context, name string) (int64, error) {
	const op = "postgres.AdminRepo.CreateCountry"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO countries(name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateCountry(ctx context.Context, id int64, name string) error {
	const op = "postgres.AdminRepo.UpdateCountry"

	tag, err := r.handle().Exec(ctx,
		`UPDATE countries SET name = $2 WHERE id = $1`,
		id, name,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteCountry(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteCountry"

	tag, err := r.handle().Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) CreateCity(ctx context.Context, c domain.City) (int64, error) {
	const op = "postgres.AdminRepo.CreateCity"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO cities(name, country_id) VALUES ($1, $2) RETURNING id`,
		c.Name, c.CountryID,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateCity(ctx context.Context, c domain.City) error {
	const op = "postgres.AdminRepo.UpdateCity"

	tag, err := r.handle().Exec(ctx,
		`UPDATE cities SET name = $2, country_id = $3 WHERE id = $1`,
		c.ID, c.Name, c.CountryID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteCity(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteCity"

	tag, err := r.handle().Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) CreateAirport(ctx context.Context, a domain.Airport) (int64, error) {
	const op = "postgres.AdminRepo.CreateAirport"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO airports(name, closest_big_city, city_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		a.Name, a.ClosestBigCity, a.CityID,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateAirport(ctx context.Context, a domain.Airport) error {
	const op = "postgres.AdminRepo.UpdateAirport"

	tag, err := r.handle().Exec(ctx,
		`UPDATE airports SET name = $2, closest_big_city = $3, city_id = $4 WHERE id = $1`,
		a.ID, a.Name, a.ClosestBigCity, a.CityID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteAirport(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteAirport"

	tag, err := r.handle().Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) CreateAirplaneType(ctx context.Context, name string) (int64, error) {
	const op = "postgres.AdminRepo.CreateAirplaneType"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO airplane_types(name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateAirplaneType(ctx context.Context, id int64, name string) error {
	const op = "postgres.AdminRepo.UpdateAirplaneType"

	tag, err := r.handle().Exec(ctx,
		`UPDATE airplane_types SET name = $2 WHERE id = $1`,
		id, name,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteAirplaneType(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteAirplaneType"

	tag, err := r.handle().Exec(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) CreateAirplane(ctx context.Context, a domain.Airplane) (int64, error) {
	const op = "postgres.AdminRepo.CreateAirplane"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO airplanes(name, serial_number, "rows", seats_in_row, airplane_type_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.Name, a.SerialNumber, a.Rows, a.SeatsInRow, a.TypeID,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateAirplane(ctx context.Context, a domain.Airplane) error {
	const op = "postgres.AdminRepo.UpdateAirplane"

	tag, err := r.handle().Exec(ctx,
		`UPDATE airplanes
		    SET name = $2, serial_number = $3, "rows" = $4, seats_in_row = $5, airplane_type_id = $6
		  WHERE id = $1`,
		a.ID, a.Name, a.SerialNumber, a.Rows, a.SeatsInRow, a.TypeID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteAirplane(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteAirplane"

	tag, err := r.handle().Exec(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) CreateCrew(ctx context.Context, c domain.Crew) (int64, error) {
	const op = "postgres.AdminRepo.CreateCrew"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO crew(first_name, last_name, experience_years)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.FirstName, c.LastName, c.ExperienceYears,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateCrew(ctx context.Context, c domain.Crew) error {
	const op = "postgres.AdminRepo.UpdateCrew"

	tag, err := r.handle().Exec(ctx,
		`UPDATE crew SET first_name = $2, last_name = $3, experience_years = $4 WHERE id = $1`,
		c.ID, c.FirstName, c.LastName, c.ExperienceYears,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteCrew(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteCrew"

	tag, err := r.handle().Exec(ctx, `DELETE FROM crew WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) CreateRoute(ctx context.Context, rt domain.Route) (int64, error) {
	const op = "postgres.AdminRepo.CreateRoute"

	var id int64
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO routes(source_id, destination_id, distance)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		rt.SourceID, rt.DestinationID, rt.Distance,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *AdminRepo) UpdateRoute(ctx context.Context, rt domain.Route) error {
	const op = "postgres.AdminRepo.UpdateRoute"

	tag, err := r.handle().Exec(ctx,
		`UPDATE routes SET source_id = $2, destination_id = $3, distance = $4 WHERE id = $1`,
		rt.ID, rt.SourceID, rt.DestinationID, rt.Distance,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteRoute(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteRoute"

	tag, err := r.handle().Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// CreateFlight inserts the flight row and its crew assignments. Run inside a
// transaction via With so the assignment set lands atomically.
func (r *AdminRepo) CreateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) (int64, error) {
	const op = "postgres.AdminRepo.CreateFlight"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO flights(route_id, airplane_id, departure_time, arrival_time, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime, f.Status,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	if err := r.assignCrew(ctx, db, id, crewIDs); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// UpdateFlight rewrites the flight row and replaces its crew set.
func (r *AdminRepo) UpdateFlight(ctx context.Context, f domain.Flight, crewIDs []int64) error {
	const op = "postgres.AdminRepo.UpdateFlight"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE flights
		    SET route_id = $2, airplane_id = $3, departure_time = $4, arrival_time = $5, status = $6
		  WHERE id = $1`,
		f.ID, f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime, f.Status,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	if _, err := db.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id = $1`, f.ID); err != nil {
		return wrapDBErr(op, err)
	}

	if err := r.assignCrew(ctx, db, f.ID, crewIDs); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *AdminRepo) DeleteFlight(ctx context.Context, id int64) error {
	const op = "postgres.AdminRepo.DeleteFlight"

	tag, err := r.handle().Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *AdminRepo) assignCrew(ctx context.Context, db DB, flightID int64, crewIDs []int64) error {
	if len(crewIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, cid := range crewIDs {
		batch.Queue(
			`INSERT INTO flight_crew(flight_id, crew_id) VALUES ($1, $2)`,
			flightID, cid,
		)
	}

	return db.SendBatch(ctx, batch).Close()
}
