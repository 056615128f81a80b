package dto

import "time"

type PlanRoutesRequest struct {
	TargetGroupSize int     `json:"target_group_size"`
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
}

type RouteStopResponse struct {
	Order                int     `json:"order"`
	PassengerID          string  `json:"passenger_id"`
	PassengerName        string  `json:"passenger_name"`
	PickupAddress        string  `json:"pickup_address"`
	Lat                  float64 `json:"lat"`
	Lng                  float64 `json:"lng"`
	LegMinutes           float64 `json:"leg_minutes"`
	LegKilometers        float64 `json:"leg_kilometers"`
	CumulativeMinutes    float64 `json:"cumulative_minutes"`
	CumulativeKilometers float64 `json:"cumulative_kilometers"`
}

type RouteResponse struct {
	BusID           string              `json:"bus_id"`
	BusPlate        string              `json:"bus_plate"`
	Capacity        int                 `json:"capacity"`
	PassengerCount  int                 `json:"passengers_count"`
	Stops           []RouteStopResponse `json:"stops"`
	Geometry        [][]float64         `json:"route_geometry"`
	TotalMinutes    float64             `json:"total_minutes"`
	TotalKilometers float64             `json:"total_kilometers"`
}

type FleetSummaryResponse struct {
	TotalPassengers int       `json:"total_passengers"`
	TotalBuses      int       `json:"total_buses"`
	TotalCapacity   int       `json:"total_capacity"`
	UtilizationRate float64   `json:"utilization_rate"`
	GeneratedAt     time.Time `json:"generated_at"`
}

type PlanRoutesResponse struct {
	Routes  []RouteResponse      `json:"routes"`
	Summary FleetSummaryResponse `json:"summary"`
}
