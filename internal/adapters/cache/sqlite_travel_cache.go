package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nightshift-routing-service/internal/ports"
)

// SQLite backed cache for travel results keyed by normalized coordinate
// pair. Keys are expected to be direction-normalized by the caller.
type SqliteTravelCache struct {
	DB *sql.DB
}

func NewSqliteTravelCache(db *sql.DB) *SqliteTravelCache {
	return &SqliteTravelCache{DB: db}
}

func (s *SqliteTravelCache) Get(ctx context.Context, pair string) (ports.TravelResult, bool, error) {
	if s.DB == nil {
		return ports.TravelResult{}, false, errors.New("travel cache: db is nil")
	}
	if pair == "" {
		return ports.TravelResult{}, false, errors.New("get travel cache: pair must not be empty")
	}

	q := `
	SELECT minutes, kilometers
	FROM travel_cache
	WHERE pair = ?;
	`

	var r ports.TravelResult
	err := s.DB.QueryRowContext(ctx, q, pair).Scan(&r.Minutes, &r.Kilometers)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.TravelResult{}, false, nil
	}
	if err != nil {
		return ports.TravelResult{}, false, fmt.Errorf("get travel cache: query travel_cache table: %w", err)
	}

	return r, true, nil
}

func (s *SqliteTravelCache) Put(ctx context.Context, pair string, result ports.TravelResult) error {
	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}
	if pair == "" {
		return errors.New("insert travel cache: pair must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO travel_cache (pair, minutes, kilometers)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, pair, result.Minutes, result.Kilometers); err != nil {
		return fmt.Errorf("insert travel cache pair=%q: %w", pair, err)
	}

	return nil
}
