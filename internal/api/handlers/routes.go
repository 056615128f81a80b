package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"nightshift-routing-service/internal/api/dto"
	"nightshift-routing-service/internal/config"
	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/ports"
	"nightshift-routing-service/internal/services"
)

type RouteHandler struct {
	Repo      ports.PassengerRepository
	Clusterer ports.Clusterer
	Provider  ports.TravelTimeProvider
	Planner   config.Planner
}

// Plan orchestrates the full routing pipeline for the stored passenger
// set: clustering, vehicle assignment, tour sequencing, and route
// assembly. The request body is optional and may override the target
// group size and the degraded-mode average speed for one run.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRoutesRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	groupSize := h.Planner.TargetGroupSize
	if req.TargetGroupSize != 0 {
		if req.TargetGroupSize < 1 || req.TargetGroupSize > 100 {
			writeError(w, r, http.StatusBadRequest, "target_group_size must be between 1 and 100")
			return
		}
		groupSize = req.TargetGroupSize
	}

	provider := h.Provider
	if req.AverageSpeedKmh != 0 {
		if req.AverageSpeedKmh <= 0 {
			writeError(w, r, http.StatusBadRequest, "average_speed_kmh must be positive")
			return
		}
		if adj, ok := provider.(ports.SpeedAdjustable); ok {
			provider = adj.WithAverageSpeed(req.AverageSpeedKmh)
		}
	}

	svcReq := services.PlanRoutesRequest{
		Depot:             h.Planner.Depot,
		Catalog:           h.Planner.Capacities,
		TargetGroupSize:   groupSize,
		MatrixConcurrency: h.Planner.MatrixConcurrency,
	}

	plan, err := services.PlanRoutes(r.Context(), svcReq, h.Repo, h.Clusterer, provider)
	if err != nil {
		log.Printf("plan routes failed: %v", err)
		switch {
		case errors.Is(err, services.ErrNoPassengers):
			writeError(w, r, http.StatusUnprocessableEntity, "no passengers to route")
		case errors.Is(err, services.ErrCapacityInfeasible):
			writeError(w, r, http.StatusUnprocessableEntity, "capacity catalog cannot hold the passengers")
		default:
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

func toPlanResponse(plan domain.RoutePlan) dto.PlanRoutesResponse {
	res := dto.PlanRoutesResponse{
		Routes: make([]dto.RouteResponse, 0, len(plan.Routes)),
		Summary: dto.FleetSummaryResponse{
			TotalPassengers: plan.Summary.TotalPassengers,
			TotalBuses:      plan.Summary.TotalBuses,
			TotalCapacity:   plan.Summary.TotalCapacity,
			UtilizationRate: plan.Summary.UtilizationRate,
			GeneratedAt:     plan.Summary.GeneratedAt,
		},
	}

	for _, route := range plan.Routes {
		stops := make([]dto.RouteStopResponse, 0, len(route.Stops))
		for _, s := range route.Stops {
			stops = append(stops, dto.RouteStopResponse{
				Order:                s.Order,
				PassengerID:          s.PassengerID,
				PassengerName:        s.PassengerName,
				PickupAddress:        s.PickupAddress,
				Lat:                  s.Location.Lat,
				Lng:                  s.Location.Lng,
				LegMinutes:           s.LegMinutes,
				LegKilometers:        s.LegKilometers,
				CumulativeMinutes:    s.CumulativeMinutes,
				CumulativeKilometers: s.CumulativeKilometers,
			})
		}

		geometry := make([][]float64, 0, len(route.Geometry))
		for _, c := range route.Geometry {
			geometry = append(geometry, []float64{c.Lat, c.Lng})
		}

		res.Routes = append(res.Routes, dto.RouteResponse{
			BusID:           route.BusID,
			BusPlate:        route.BusPlate,
			Capacity:        route.Capacity,
			PassengerCount:  route.PassengerCount,
			Stops:           stops,
			Geometry:        geometry,
			TotalMinutes:    route.TotalMinutes,
			TotalKilometers: route.TotalKilometers,
		})
	}

	return res
}
