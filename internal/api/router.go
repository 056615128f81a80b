package api

import (
	"net/http"

	"nightshift-routing-service/internal/api/handlers"
	"nightshift-routing-service/internal/config"
	"nightshift-routing-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.PassengerRepository,
	clusterer ports.Clusterer,
	provider ports.TravelTimeProvider,
	planner config.Planner,
) http.Handler {
	mux := http.NewServeMux()

	passengerHandler := &handlers.PassengerHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Repo:      repo,
		Clusterer: clusterer,
		Provider:  provider,
		Planner:   planner,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/passengers", passengerHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return loggingMiddleware(mux)
}
