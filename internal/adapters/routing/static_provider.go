package routing

import (
	"context"
	"sync"

	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/geo"
	"nightshift-routing-service/internal/ports"
)

type StaticPair struct {
	From, To domain.Coordinates
	Minutes  float64
	Km       float64
}

// StaticTravelProvider serves fixed travel results for tests. Unknown pairs
// fall back to the geodesic estimate at the given speed, mirroring the real
// provider's degraded mode. It counts pair lookups so tests can assert how
// many queries a matrix build issued.
type StaticTravelProvider struct {
	m           map[string]ports.TravelResult
	avgSpeedKmh float64

	mu    *sync.Mutex
	calls *int
}

func NewStaticTravelProvider(avgSpeedKmh float64, pairs []StaticPair) *StaticTravelProvider {
	m := make(map[string]ports.TravelResult, len(pairs))
	for _, p := range pairs {
		m[PairKey(p.From, p.To)] = ports.TravelResult{Minutes: p.Minutes, Kilometers: p.Km}
	}
	return &StaticTravelProvider{m: m, avgSpeedKmh: avgSpeedKmh, mu: &sync.Mutex{}, calls: new(int)}
}

// WithAverageSpeed returns a provider estimating at the given speed. The
// pair table and call counter stay shared with the parent.
func (p *StaticTravelProvider) WithAverageSpeed(kmh float64) ports.TravelTimeProvider {
	if kmh <= 0 {
		return p
	}
	return &StaticTravelProvider{m: p.m, avgSpeedKmh: kmh, mu: p.mu, calls: p.calls}
}

func (p *StaticTravelProvider) DurationDistance(ctx context.Context, origin, destination domain.Coordinates) ports.TravelResult {
	p.mu.Lock()
	*p.calls++
	p.mu.Unlock()

	if origin == destination {
		return ports.TravelResult{}
	}
	if r, ok := p.m[PairKey(origin, destination)]; ok {
		return r
	}

	km := geo.Kilometers(origin, destination)
	return ports.TravelResult{Minutes: km / p.avgSpeedKmh * 60, Kilometers: km}
}

func (p *StaticTravelProvider) PathGeometry(ctx context.Context, waypoints []domain.Coordinates) []domain.Coordinates {
	return waypoints
}

// PairCalls reports how many DurationDistance lookups were made.
func (p *StaticTravelProvider) PairCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p.calls
}
