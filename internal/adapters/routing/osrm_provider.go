package routing

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/geo"
	"nightshift-routing-service/internal/platform/obs"
	"nightshift-routing-service/internal/ports"
)

// OSRMTravelProvider implements TravelTimeProvider against an OSRM server.
//
// It coordinates:
//   - Per-pair route queries with a short timeout
//   - Persistent travel-result caching keyed by normalized pair
//   - Local geodesic estimation whenever the service cannot answer
//
// Neither method ever fails: a broken service degrades individual results
// to estimates, not the run. The provider is safe for concurrent use.
type OSRMTravelProvider struct {
	pairClient  *http.Client
	geomClient  *http.Client
	baseURL     string
	profile     string
	avgSpeedKmh float64
	cache       ports.TravelCache
}

func NewOSRMTravelProvider(baseURL string, avgSpeedKmh float64, cache ports.TravelCache) (*OSRMTravelProvider, error) {
	if baseURL == "" {
		return nil, errors.New("OSRM base URL is empty")
	}
	if avgSpeedKmh <= 0 {
		return nil, errors.New("average speed must be positive")
	}

	provider := &OSRMTravelProvider{
		// Pair lookups happen up to N(N-1)/2 times per matrix; keep the
		// bound tight so a stalled service cannot block a full build.
		pairClient:  &http.Client{Timeout: 5 * time.Second},
		geomClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		profile:     "driving",
		avgSpeedKmh: avgSpeedKmh,
		cache:       cache,
	}

	return provider, nil
}

// PairKey returns a direction-normalized cache key for a coordinate pair.
// Both directions of a pair map to the same key, matching the planner's
// symmetric reuse of one query per unordered pair.
func PairKey(a, b domain.Coordinates) string {
	ka := coordKey(a)
	kb := coordKey(b)
	if kb < ka {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

func coordKey(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}

// DurationDistance returns the road travel cost between two coordinates,
// or the geodesic estimate at the configured average speed when OSRM
// cannot produce one.
func (o *OSRMTravelProvider) DurationDistance(
	ctx context.Context,
	origin, destination domain.Coordinates,
) ports.TravelResult {
	if origin == destination {
		return ports.TravelResult{}
	}

	key := PairKey(origin, destination)
	if o.cache != nil {
		cached, ok, err := o.cache.Get(ctx, key)
		if err != nil {
			log.Printf("travel cache read failed: %v", err)
		} else if ok {
			return cached
		}
	}

	resp, err := o.queryPair(ctx, origin, destination)
	if err != nil {
		return o.Estimate(origin, destination)
	}

	result := ports.TravelResult{
		Minutes:    resp.Routes[0].Duration / 60,
		Kilometers: resp.Routes[0].Distance / 1000,
	}

	// Only real service answers are cached; estimates stay recomputable so
	// a recovered service is picked up on the next run.
	if o.cache != nil {
		if err := o.cache.Put(ctx, key, result); err != nil {
			log.Printf("travel cache write failed: %v", err)
		}
	}

	return result
}

func (o *OSRMTravelProvider) queryPair(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ *osrmRouteResponse, err error) {
	defer obs.Time(ctx, "osrm.queryPair")(&err)

	return o.fetchRoute(ctx, o.pairClient, []domain.Coordinates{origin, destination}, "overview=false")
}

// WithAverageSpeed returns a provider whose estimates run at the given
// average speed. Clients and cache are shared with the parent, so cached
// service answers stay valid across overrides.
func (o *OSRMTravelProvider) WithAverageSpeed(kmh float64) ports.TravelTimeProvider {
	if kmh <= 0 {
		return o
	}
	clone := *o
	clone.avgSpeedKmh = kmh
	return &clone
}

// Estimate is the pure local fallback: geodesic distance at the configured
// average speed. Deterministic for fixed inputs and configuration.
func (o *OSRMTravelProvider) Estimate(origin, destination domain.Coordinates) ports.TravelResult {
	km := geo.Kilometers(origin, destination)
	return ports.TravelResult{
		Minutes:    km / o.avgSpeedKmh * 60,
		Kilometers: km,
	}
}

// PathGeometry returns the routed polyline through the waypoints. On any
// failure the waypoints come back unchanged, giving straight connecting
// segments; callers treat the result as advisory.
func (o *OSRMTravelProvider) PathGeometry(
	ctx context.Context,
	waypoints []domain.Coordinates,
) []domain.Coordinates {
	if len(waypoints) < 2 {
		return waypoints
	}

	resp, err := o.queryGeometry(ctx, waypoints)
	if err != nil {
		return waypoints
	}

	coords := resp.Routes[0].Geometry.Coordinates
	path := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		if len(c) != 2 {
			return waypoints
		}
		// OSRM emits [lng, lat].
		path = append(path, domain.Coordinates{Lat: c[1], Lng: c[0]})
	}

	if len(path) == 0 {
		return waypoints
	}
	return path
}

func (o *OSRMTravelProvider) queryGeometry(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ *osrmRouteResponse, err error) {
	defer obs.Time(ctx, "osrm.queryGeometry")(&err)

	return o.fetchRoute(ctx, o.geomClient, waypoints, "overview=full&geometries=geojson")
}
