package ports

import (
	"context"

	"nightshift-routing-service/internal/domain"
)

// One-way travel cost between two coordinates.
type TravelResult struct {
	Minutes    float64
	Kilometers float64
}

// Contract for retrieving real-world travel time and path geometry.
//
// Implementations must never fail: when the underlying routing service is
// unreachable, times out, or returns a malformed payload, they degrade to a
// locally computed estimate (DurationDistance) or to the input waypoints
// unchanged (PathGeometry). Callers treat geometry as advisory.
type TravelTimeProvider interface {
	// Return travel duration and distance between two coordinates.
	DurationDistance(ctx context.Context, origin, destination domain.Coordinates) TravelResult

	// Return an ordered path through the given waypoints.
	PathGeometry(ctx context.Context, waypoints []domain.Coordinates) []domain.Coordinates
}

// SpeedAdjustable is implemented by providers whose degraded estimates can
// be re-based on a different average speed for a single run. The returned
// provider shares the parent's transport and cache; a non-positive speed
// returns the parent unchanged.
type SpeedAdjustable interface {
	WithAverageSpeed(kmh float64) TravelTimeProvider
}
