package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nightshift-routing-service/internal/platform/obs"
	"nightshift-routing-service/internal/ports"
)

// SQLTravelCache is the Postgres-backed travel cache for deployments where
// several planner instances share one cache.
type SQLTravelCache struct {
	DB *sql.DB
}

func NewSQLTravelCache(db *sql.DB) *SQLTravelCache {
	return &SQLTravelCache{DB: db}
}

// InitSchema creates the Postgres travel cache table.
func (s *SQLTravelCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS travel_cache (
		pair TEXT PRIMARY KEY,
		minutes DOUBLE PRECISION NOT NULL,
		kilometers DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init travel cache schema: %w", err)
	}

	return nil
}

func (s *SQLTravelCache) Get(ctx context.Context, pair string) (_ ports.TravelResult, _ bool, err error) {
	defer obs.Time(ctx, "travel.cache.Get")(&err)

	if s.DB == nil {
		return ports.TravelResult{}, false, errors.New("travel cache: db is nil")
	}
	if pair == "" {
		return ports.TravelResult{}, false, errors.New("get travel cache: pair must not be empty")
	}

	q := `
	SELECT minutes, kilometers
	FROM travel_cache
	WHERE pair = $1;
	`

	var r ports.TravelResult
	err = s.DB.QueryRowContext(ctx, q, pair).Scan(&r.Minutes, &r.Kilometers)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return ports.TravelResult{}, false, nil
	}
	if err != nil {
		err = fmt.Errorf("get travel cache: query travel_cache table: %w", err)
		return ports.TravelResult{}, false, err
	}

	return r, true, nil
}

func (s *SQLTravelCache) Put(ctx context.Context, pair string, result ports.TravelResult) error {
	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}
	if pair == "" {
		return errors.New("insert travel cache: pair must not be empty")
	}

	q := `
	INSERT INTO travel_cache (pair, minutes, kilometers)
	VALUES ($1, $2, $3)
	ON CONFLICT (pair) DO UPDATE
	SET minutes = EXCLUDED.minutes,
		kilometers = EXCLUDED.kilometers;
	`

	if _, err := s.DB.ExecContext(ctx, q, pair, result.Minutes, result.Kilometers); err != nil {
		return fmt.Errorf("insert travel cache pair=%q: %w", pair, err)
	}

	return nil
}
