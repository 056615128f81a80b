package handlers

import (
	"log"
	"net/http"

	"nightshift-routing-service/internal/api/dto"
	"nightshift-routing-service/internal/ports"
)

// PassengerHandler exposes read-only passenger retrieval endpoints.
type PassengerHandler struct {
	Repo ports.PassengerRepository
}

func (h *PassengerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	passengers, err := h.Repo.ListPassengers(r.Context())
	if err != nil {
		log.Printf("list passengers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPassengersResponse{
		Passengers: make([]dto.PassengerResponse, 0, len(passengers)),
	}
	for _, p := range passengers {
		res.Passengers = append(res.Passengers, dto.PassengerResponse{
			PassengerID:   p.ID,
			Name:          p.Name,
			Lat:           p.Location.Lat,
			Lng:           p.Location.Lng,
			PickupAddress: p.PickupAddress,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
