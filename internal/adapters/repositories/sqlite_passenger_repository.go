package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nightshift-routing-service/internal/domain"
)

// SQLite-backed implementation of the PassengerRepository port.
type SqlitePassengerRepository struct{ DB *sql.DB }

func NewSqlitePassengerRepository(db *sql.DB) *SqlitePassengerRepository {
	return &SqlitePassengerRepository{DB: db}
}

// Return all passengers stored in the database, ordered by id so planning
// runs over the same data are reproducible.
func (s *SqlitePassengerRepository) ListPassengers(ctx context.Context) ([]*domain.Passenger, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite passenger repository: DB is nil")
	}

	query := `
	SELECT
		passenger_id,
		name,
		lat,
		lng,
		pickup_address
	FROM passengers
	ORDER BY passenger_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list passengers: query passengers table: %w", err)
	}
	defer rows.Close()

	passengers := make([]*domain.Passenger, 0, 64)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.Location.Lat, &p.Location.Lng, &p.PickupAddress); err != nil {
			return nil, fmt.Errorf("list passengers: scan row: %w", err)
		}
		passengers = append(passengers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list passengers: row iteration: %w", err)
	}

	return passengers, nil
}
