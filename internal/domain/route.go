package domain

import "time"

// Represents a single pickup in a bus route.
// A RouteStop corresponds to arriving at one passenger's location, with the
// travel cost of the leg from the previous point and the running totals
// from the depot. Downstream consumers apply the start-of-shift offset to
// turn cumulative minutes into wall-clock ETAs.
type RouteStop struct {
	Order                int
	PassengerID          string
	PassengerName        string
	PickupAddress        string
	Location             Coordinates
	LegMinutes           float64
	LegKilometers        float64
	CumulativeMinutes    float64
	CumulativeKilometers float64
}

// Represents the finalized pickup route for a single bus.
// The stop sequence is the visiting order computed by the tour sequencer;
// Geometry approximates the driven path (depot included) and degrades to
// straight waypoint segments when the routing service is unavailable.
// It is immutable planning data and contains no side effects.
type Route struct {
	BusID           string
	BusPlate        string
	Capacity        int
	PassengerCount  int
	Stops           []RouteStop
	Geometry        []Coordinates
	TotalMinutes    float64
	TotalKilometers float64
}

// Fleet-wide aggregates over one planning run.
type FleetSummary struct {
	TotalPassengers int
	TotalBuses      int
	TotalCapacity   int
	UtilizationRate float64
	GeneratedAt     time.Time
}

// The long-lived output of a planning run.
type RoutePlan struct {
	Routes  []Route
	Summary FleetSummary
}
