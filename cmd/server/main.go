package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"nightshift-routing-service/internal/adapters/cache"
	"nightshift-routing-service/internal/adapters/clustering"
	"nightshift-routing-service/internal/adapters/repositories"
	"nightshift-routing-service/internal/adapters/routing"
	"nightshift-routing-service/internal/api"
	"nightshift-routing-service/internal/config"
	"nightshift-routing-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, OSRM, optionally Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/passengers.json")
	port := config.Get("PORT", "8080")
	osrmURL := config.Get("OSRM_BASE_URL", "http://router.project-osrm.org")

	planner, err := config.LoadPlanner()
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	// Travel results are cached across runs; REDIS_ADDR switches the cache
	// to a shared self-expiring store, otherwise SQLite keeps it local.
	var travelCache ports.TravelCache = cache.NewSqliteTravelCache(db)
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		travelCache = cache.NewRedisTravelCache(client, 24*time.Hour)
		log.Printf("Using Redis travel cache addr=%s", addr)
	}

	provider, err := routing.NewOSRMTravelProvider(osrmURL, planner.AverageSpeedKmh, travelCache)
	if err != nil {
		log.Fatal(err)
	}

	clusterer := clustering.NewKMeansClusterer(planner.ClusterSeed)
	repo := repositories.NewSqlitePassengerRepository(db)
	router := api.NewRouter(repo, clusterer, provider, planner)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
