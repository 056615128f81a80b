package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "passengers.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedAndListPassengers(t *testing.T) {
	db := newTestDB(t)
	seed := writeSeedFile(t, `[
		{"passenger_id": "P-002", "name": "Luis", "lat": 4.65, "lng": -74.10, "pickup_address": "Cl 2"},
		{"passenger_id": "P-001", "name": "Ana", "lat": 4.60, "lng": -74.08, "pickup_address": "Cl 1"}
	]`)

	if err := SeedFromJSON(db, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := NewSqlitePassengerRepository(db)
	passengers, err := repo.ListPassengers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(passengers) != 2 {
		t.Fatalf("passengers = %d, want 2", len(passengers))
	}
	// Listing is ordered by id for reproducible planning runs.
	if passengers[0].ID != "P-001" || passengers[1].ID != "P-002" {
		t.Errorf("order = %s, %s; want P-001, P-002", passengers[0].ID, passengers[1].ID)
	}
	if passengers[0].Name != "Ana" || passengers[0].Location.Lat != 4.60 {
		t.Errorf("first passenger = %+v", passengers[0])
	}
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	db := newTestDB(t)
	seed := writeSeedFile(t, `[
		{"passenger_id": "P-001", "name": "Ana", "lat": 4.60, "lng": -74.08, "pickup_address": "Cl 1"},
		{"passenger_id": "P-001", "name": "Luis", "lat": 4.65, "lng": -74.10, "pickup_address": "Cl 2"}
	]`)

	if err := SeedFromJSON(db, seed); err == nil {
		t.Fatal("expected error for duplicate passenger_id")
	}
}

func TestSeedRejectsEmptyID(t *testing.T) {
	db := newTestDB(t)
	seed := writeSeedFile(t, `[
		{"passenger_id": "  ", "name": "Ana", "lat": 4.60, "lng": -74.08, "pickup_address": "Cl 1"}
	]`)

	if err := SeedFromJSON(db, seed); err == nil {
		t.Fatal("expected error for empty passenger_id")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seed := writeSeedFile(t, `[
		{"passenger_id": "P-001", "name": "Ana", "lat": 4.60, "lng": -74.08, "pickup_address": "Cl 1"}
	]`)

	if err := SeedFromJSON(db, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SeedFromJSON(db, seed); err != nil {
		t.Fatalf("unexpected error on reseed: %v", err)
	}

	repo := NewSqlitePassengerRepository(db)
	passengers, err := repo.ListPassengers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passengers) != 1 {
		t.Fatalf("passengers = %d, want 1", len(passengers))
	}
}
