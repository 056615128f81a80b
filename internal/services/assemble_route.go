package services

import (
	"context"
	"fmt"
	"time"

	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/ports"
)

// AssembleRoute walks an already-sequenced passenger list from the depot,
// accumulating duration and distance leg by leg, and resolves the route
// geometry through the provider. Cumulative minutes are depot-relative;
// downstream consumers apply the start-of-shift offset.
func AssembleRoute(
	ctx context.Context,
	busNumber int,
	capacity int,
	ordered []*domain.Passenger,
	depot domain.Coordinates,
	provider ports.TravelTimeProvider,
) domain.Route {
	stops := make([]domain.RouteStop, 0, len(ordered))
	waypoints := make([]domain.Coordinates, 0, 1+len(ordered))
	waypoints = append(waypoints, depot)

	var totalMinutes, totalKm float64
	previous := depot

	for i, p := range ordered {
		leg := provider.DurationDistance(ctx, previous, p.Location)
		totalMinutes += leg.Minutes
		totalKm += leg.Kilometers

		stops = append(stops, domain.RouteStop{
			Order:                i + 1,
			PassengerID:          p.ID,
			PassengerName:        p.Name,
			PickupAddress:        p.PickupAddress,
			Location:             p.Location,
			LegMinutes:           leg.Minutes,
			LegKilometers:        leg.Kilometers,
			CumulativeMinutes:    totalMinutes,
			CumulativeKilometers: totalKm,
		})

		waypoints = append(waypoints, p.Location)
		previous = p.Location
	}

	return domain.Route{
		BusID:           fmt.Sprintf("BUS-%03d", busNumber),
		BusPlate:        fmt.Sprintf("ABC-%03d", busNumber),
		Capacity:        capacity,
		PassengerCount:  len(ordered),
		Stops:           stops,
		Geometry:        provider.PathGeometry(ctx, waypoints),
		TotalMinutes:    totalMinutes,
		TotalKilometers: totalKm,
	}
}

// Summarize aggregates fleet-wide statistics over a finished route set.
// Utilization is zero when total capacity is zero.
func Summarize(routes []domain.Route, totalPassengers int) domain.FleetSummary {
	totalCapacity := 0
	for _, r := range routes {
		totalCapacity += r.Capacity
	}

	utilization := 0.0
	if totalCapacity > 0 {
		utilization = float64(totalPassengers) / float64(totalCapacity)
	}

	return domain.FleetSummary{
		TotalPassengers: totalPassengers,
		TotalBuses:      len(routes),
		TotalCapacity:   totalCapacity,
		UtilizationRate: utilization,
		GeneratedAt:     time.Now().UTC(),
	}
}
