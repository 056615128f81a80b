package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPassengersQuery := `
	CREATE TABLE IF NOT EXISTS passengers (
		passenger_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		pickup_address TEXT NOT NULL
	);
	`

	createTravelCacheQuery := `
	CREATE TABLE IF NOT EXISTS travel_cache (
		pair TEXT PRIMARY KEY,
		minutes REAL NOT NULL,
		kilometers REAL NOT NULL
	);
	`

	statements := []string{
		createPassengersQuery,
		createTravelCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PassengerSeed struct {
	PassengerID   string  `json:"passenger_id"`
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PickupAddress string  `json:"pickup_address"`
}

// Populate the database with passenger data from a JSON file. Records are
// assumed already validated by the ingestion side; only structural checks
// happen here.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed passengers: read %q: %w", jsonPath, err)
	}

	var data []PassengerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed passengers: parse json: %w", err)
	}

	rows := make([]PassengerSeed, 0, len(data))
	seen := make(map[string]struct{}, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.PassengerID)
		if id == "" {
			return fmt.Errorf("seed passengers: item at index %d: passenger_id cannot be empty", i+1)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("seed passengers: duplicate passenger_id %q", id)
		}
		seen[id] = struct{}{}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed passengers: passenger_id=%q: name cannot be empty", id)
		}

		item.PassengerID = id
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed passengers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO passengers (
		passenger_id,
		name,
		lat,
		lng,
		pickup_address
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed passengers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.PassengerID, p.Name, p.Lat, p.Lng, p.PickupAddress); err != nil {
			return fmt.Errorf("seed passengers: insert passenger_id=%q: %w", p.PassengerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed passengers: commit tx: %w", err)
	}

	return nil
}
