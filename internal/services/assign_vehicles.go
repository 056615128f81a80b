package services

import (
	"errors"
	"fmt"

	"nightshift-routing-service/internal/domain"
)

// ErrCapacityInfeasible marks a catalog that cannot hold a cluster's
// remainder. It is a configuration error, reported distinctly so it is
// never mistaken for an external-service failure.
var ErrCapacityInfeasible = errors.New("no catalog capacity can hold remaining passengers")

// AssignVehicles packs one cluster into buses using a deterministic greedy
// largest-capacity-first carve.
//
// The catalog is walked from largest to smallest; while the unassigned
// remainder fills a capacity completely, that many passengers are carved
// into a full bus. Whatever is left afterwards rides in one final bus with
// the smallest catalog capacity that still fits it, searched over the
// whole catalog (capacities are reusable). Selection within the cluster is
// input order; the visiting sequence is decided later by the sequencer.
func AssignVehicles(cluster []*domain.Passenger, catalog domain.CapacityCatalog) ([]domain.VehicleAssignment, error) {
	if len(cluster) == 0 {
		return []domain.VehicleAssignment{}, nil
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("assign vehicles: empty capacity catalog: %w", ErrCapacityInfeasible)
	}

	assignments := make([]domain.VehicleAssignment, 0, 1)
	remaining := cluster

	for _, capacity := range catalog {
		for len(remaining) >= capacity {
			assignments = append(assignments, domain.VehicleAssignment{
				Capacity:       capacity,
				PassengerCount: capacity,
				Passengers:     remaining[:capacity:capacity],
			})
			remaining = remaining[capacity:]
		}
	}

	if len(remaining) > 0 {
		capacity, ok := catalog.SmallestAtLeast(len(remaining))
		if !ok {
			return nil, fmt.Errorf(
				"assign vehicles: %d passengers left over: %w",
				len(remaining), ErrCapacityInfeasible,
			)
		}
		assignments = append(assignments, domain.VehicleAssignment{
			Capacity:       capacity,
			PassengerCount: len(remaining),
			Passengers:     remaining,
		})
	}

	return assignments, nil
}
