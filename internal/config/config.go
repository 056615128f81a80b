package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"nightshift-routing-service/internal/domain"
)

// Get returns the environment value for key, or fallback when unset/empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Planner holds the run constants of the routing core. Components receive
// these explicitly at construction so tests can vary them freely; nothing
// in the core reads the environment.
type Planner struct {
	Depot             domain.Coordinates
	Capacities        domain.CapacityCatalog
	TargetGroupSize   int
	AverageSpeedKmh   float64
	MatrixConcurrency int
	ClusterSeed       int64
}

// LoadPlanner builds the planner configuration from the environment,
// falling back to the fleet's defaults: the central office depot, the
// 40/20/19/15/8 bus catalog, 20-passenger target groups, and a 25 km/h
// average speed for estimated legs.
func LoadPlanner() (Planner, error) {
	depotLat, err := getFloat("DEPOT_LAT", 4.6724261)
	if err != nil {
		return Planner{}, err
	}
	depotLng, err := getFloat("DEPOT_LNG", -74.1288623)
	if err != nil {
		return Planner{}, err
	}

	sizes, err := parseCapacities(Get("BUS_CAPACITIES", "40,20,19,15,8"))
	if err != nil {
		return Planner{}, err
	}
	catalog, err := domain.NewCapacityCatalog(sizes)
	if err != nil {
		return Planner{}, fmt.Errorf("load planner config: %w", err)
	}

	groupSize, err := getInt("TARGET_GROUP_SIZE", 20)
	if err != nil {
		return Planner{}, err
	}
	if groupSize < 1 {
		return Planner{}, fmt.Errorf("load planner config: TARGET_GROUP_SIZE must be positive, got %d", groupSize)
	}

	speed, err := getFloat("AVERAGE_SPEED_KMH", 25)
	if err != nil {
		return Planner{}, err
	}
	if speed <= 0 {
		return Planner{}, fmt.Errorf("load planner config: AVERAGE_SPEED_KMH must be positive, got %f", speed)
	}

	concurrency, err := getInt("MATRIX_CONCURRENCY", 5)
	if err != nil {
		return Planner{}, err
	}
	if concurrency < 1 {
		concurrency = 1
	}

	seed, err := getInt("CLUSTER_SEED", 42)
	if err != nil {
		return Planner{}, err
	}

	return Planner{
		Depot:             domain.Coordinates{Lat: depotLat, Lng: depotLng},
		Capacities:        catalog,
		TargetGroupSize:   groupSize,
		AverageSpeedKmh:   speed,
		MatrixConcurrency: concurrency,
		ClusterSeed:       int64(seed),
	}, nil
}

func parseCapacities(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("load planner config: invalid capacity %q: %w", p, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("load planner config: invalid %s=%q: %w", key, v, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("load planner config: invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}
