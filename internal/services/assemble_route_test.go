package services

import (
	"context"
	"math"
	"testing"

	"nightshift-routing-service/internal/adapters/routing"
	"nightshift-routing-service/internal/domain"
)

func TestAssembleRouteAccumulatesLegs(t *testing.T) {
	depot := domain.Coordinates{Lat: 4.6724261, Lng: -74.1288623}
	provider := routing.NewStaticTravelProvider(25, []routing.StaticPair{
		{From: depot, To: seqA, Minutes: 12, Km: 5},
		{From: seqA, To: seqB, Minutes: 8, Km: 3},
	})

	ordered := []*domain.Passenger{
		{ID: "P-001", Name: "Ana", Location: seqA, PickupAddress: "Calle 1"},
		{ID: "P-002", Name: "Luis", Location: seqB, PickupAddress: "Calle 2"},
	}

	route := AssembleRoute(context.Background(), 3, 8, ordered, depot, provider)

	if route.BusID != "BUS-003" || route.BusPlate != "ABC-003" {
		t.Errorf("bus identifiers = %s/%s, want BUS-003/ABC-003", route.BusID, route.BusPlate)
	}
	if route.Capacity != 8 || route.PassengerCount != 2 {
		t.Errorf("capacity/count = %d/%d, want 8/2", route.Capacity, route.PassengerCount)
	}
	if len(route.Stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(route.Stops))
	}

	first := route.Stops[0]
	if first.Order != 1 || first.PassengerID != "P-001" {
		t.Errorf("first stop = %+v", first)
	}
	if first.LegMinutes != 12 || first.CumulativeMinutes != 12 {
		t.Errorf("first stop minutes = %f/%f, want 12/12", first.LegMinutes, first.CumulativeMinutes)
	}

	second := route.Stops[1]
	if second.CumulativeMinutes != 20 || second.CumulativeKilometers != 8 {
		t.Errorf("second stop cumulative = %f min / %f km, want 20/8",
			second.CumulativeMinutes, second.CumulativeKilometers)
	}

	if route.TotalMinutes != 20 || route.TotalKilometers != 8 {
		t.Errorf("totals = %f min / %f km, want 20/8", route.TotalMinutes, route.TotalKilometers)
	}

	// Static provider leaves geometry as the raw waypoints: depot + stops.
	if len(route.Geometry) != 3 || route.Geometry[0] != depot {
		t.Errorf("geometry = %v", route.Geometry)
	}
}

func TestAssembleRouteEmptyPassengerList(t *testing.T) {
	depot := domain.Coordinates{Lat: 4.6724261, Lng: -74.1288623}
	provider := routing.NewStaticTravelProvider(25, nil)

	route := AssembleRoute(context.Background(), 1, 8, nil, depot, provider)

	if len(route.Stops) != 0 || route.TotalMinutes != 0 {
		t.Fatalf("expected empty route, got %+v", route)
	}
}

func TestSummarize(t *testing.T) {
	routes := []domain.Route{
		{Capacity: 20, PassengerCount: 20},
		{Capacity: 8, PassengerCount: 5},
	}

	summary := Summarize(routes, 25)

	if summary.TotalBuses != 2 || summary.TotalCapacity != 28 || summary.TotalPassengers != 25 {
		t.Errorf("summary = %+v", summary)
	}
	if math.Abs(summary.UtilizationRate-25.0/28.0) > 1e-9 {
		t.Errorf("utilization = %f, want %f", summary.UtilizationRate, 25.0/28.0)
	}
	if summary.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestSummarizeZeroCapacity(t *testing.T) {
	summary := Summarize(nil, 0)

	if summary.UtilizationRate != 0 {
		t.Fatalf("utilization = %f, want 0", summary.UtilizationRate)
	}
	if summary.TotalBuses != 0 || summary.TotalCapacity != 0 {
		t.Fatalf("summary = %+v, want zeros", summary)
	}
}
