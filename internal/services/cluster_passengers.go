package services

import (
	"context"
	"fmt"

	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/ports"
)

// ClusterPassengers partitions passengers into geographic groups sized
// near targetGroupSize. Every passenger lands in exactly one group; points
// the clusterer marks as noise are promoted to their own singleton groups
// rather than dropped. Group ids have no meaning beyond grouping.
func ClusterPassengers(
	ctx context.Context,
	passengers []*domain.Passenger,
	clusterer ports.Clusterer,
	targetGroupSize int,
) (map[int][]*domain.Passenger, error) {
	if len(passengers) == 0 {
		return map[int][]*domain.Passenger{}, nil
	}
	if targetGroupSize < 1 {
		return nil, fmt.Errorf("cluster passengers: target group size must be positive, got %d", targetGroupSize)
	}

	k := len(passengers) / targetGroupSize
	if k < 1 {
		k = 1
	}
	if k > len(passengers) {
		k = len(passengers)
	}

	points := make([]domain.Coordinates, 0, len(passengers))
	for _, p := range passengers {
		points = append(points, p.Location)
	}

	labels, err := clusterer.Cluster(ctx, points, k)
	if err != nil {
		return nil, fmt.Errorf("cluster passengers: %w", err)
	}
	if len(labels) != len(passengers) {
		return nil, fmt.Errorf(
			"cluster passengers: clusterer returned %d labels for %d passengers",
			len(labels), len(passengers),
		)
	}

	maxLabel := 0
	for _, l := range labels {
		if l > maxLabel {
			maxLabel = l
		}
	}

	// Promote noise points to fresh singleton cluster ids.
	next := maxLabel + 1
	clusters := make(map[int][]*domain.Passenger)
	for i, l := range labels {
		if l == ports.NoiseLabel {
			l = next
			next++
		}
		clusters[l] = append(clusters[l], passengers[i])
	}

	return clusters, nil
}
