package services

import (
	"errors"
	"fmt"
	"testing"

	"nightshift-routing-service/internal/domain"
)

func testCatalog(t *testing.T) domain.CapacityCatalog {
	t.Helper()
	c, err := domain.NewCapacityCatalog([]int{8, 15, 19, 20, 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func makeCluster(n int) []*domain.Passenger {
	cluster := make([]*domain.Passenger, 0, n)
	for i := 0; i < n; i++ {
		cluster = append(cluster, &domain.Passenger{
			ID:       fmt.Sprintf("P-%03d", i+1),
			Name:     fmt.Sprintf("Passenger %d", i+1),
			Location: domain.Coordinates{Lat: 4.60 + float64(i)*0.001, Lng: -74.08},
		})
	}
	return cluster
}

func checkInvariants(t *testing.T, cluster []*domain.Passenger, assignments []domain.VehicleAssignment, catalog domain.CapacityCatalog) {
	t.Helper()

	inCatalog := map[int]bool{}
	for _, c := range catalog {
		inCatalog[c] = true
	}

	seen := map[string]bool{}
	total := 0
	for _, a := range assignments {
		if !inCatalog[a.Capacity] {
			t.Errorf("capacity %d is not a catalog member", a.Capacity)
		}
		if a.PassengerCount > a.Capacity {
			t.Errorf("assignment overloaded: %d > %d", a.PassengerCount, a.Capacity)
		}
		if a.PassengerCount != len(a.Passengers) {
			t.Errorf("passenger count %d does not match list length %d", a.PassengerCount, len(a.Passengers))
		}
		for _, p := range a.Passengers {
			if seen[p.ID] {
				t.Errorf("passenger %s assigned twice", p.ID)
			}
			seen[p.ID] = true
		}
		total += a.PassengerCount
	}

	if total != len(cluster) {
		t.Errorf("assigned %d passengers, cluster has %d", total, len(cluster))
	}
}

func TestAssignVehiclesTwentyFivePassengers(t *testing.T) {
	catalog := testCatalog(t)
	cluster := makeCluster(25)

	assignments, err := AssignVehicles(cluster, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 25 = one full 20-seat bus plus 5 leftover in the smallest bus that
	// fits them (8 seats).
	if len(assignments) != 2 {
		t.Fatalf("expected 2 buses, got %d", len(assignments))
	}
	if assignments[0].Capacity != 20 || assignments[0].PassengerCount != 20 {
		t.Errorf("first bus = %d/%d, want 20/20", assignments[0].PassengerCount, assignments[0].Capacity)
	}
	if assignments[1].Capacity != 8 || assignments[1].PassengerCount != 5 {
		t.Errorf("second bus = %d/%d, want 5/8", assignments[1].PassengerCount, assignments[1].Capacity)
	}

	checkInvariants(t, cluster, assignments, catalog)
}

func TestAssignVehiclesSinglePassenger(t *testing.T) {
	catalog := testCatalog(t)
	cluster := makeCluster(1)

	assignments, err := AssignVehicles(cluster, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(assignments) != 1 {
		t.Fatalf("expected 1 bus, got %d", len(assignments))
	}
	if assignments[0].Capacity != 8 || assignments[0].PassengerCount != 1 {
		t.Errorf("bus = %d/%d, want 1/8", assignments[0].PassengerCount, assignments[0].Capacity)
	}
}

func TestAssignVehiclesExactFit(t *testing.T) {
	catalog := testCatalog(t)
	cluster := makeCluster(40)

	assignments, err := AssignVehicles(cluster, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(assignments) != 1 || assignments[0].Capacity != 40 || assignments[0].PassengerCount != 40 {
		t.Fatalf("expected one full 40-seat bus, got %+v", assignments)
	}
}

func TestAssignVehiclesLargeCluster(t *testing.T) {
	catalog := testCatalog(t)
	cluster := makeCluster(103)

	assignments, err := AssignVehicles(cluster, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 103 = 40 + 40 + 20 full buses, remainder 3 in an 8-seater.
	wantCaps := []int{40, 40, 20, 8}
	if len(assignments) != len(wantCaps) {
		t.Fatalf("expected %d buses, got %d", len(wantCaps), len(assignments))
	}
	for i, cap := range wantCaps {
		if assignments[i].Capacity != cap {
			t.Errorf("bus %d capacity = %d, want %d", i, assignments[i].Capacity, cap)
		}
	}

	checkInvariants(t, cluster, assignments, catalog)
}

func TestAssignVehiclesEmptyCluster(t *testing.T) {
	assignments, err := AssignVehicles(nil, testCatalog(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("expected no assignments, got %d", len(assignments))
	}
}

func TestAssignVehiclesEmptyCatalog(t *testing.T) {
	_, err := AssignVehicles(makeCluster(3), domain.CapacityCatalog{})
	if !errors.Is(err, ErrCapacityInfeasible) {
		t.Fatalf("expected ErrCapacityInfeasible, got %v", err)
	}
}
