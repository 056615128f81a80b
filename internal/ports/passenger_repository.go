package ports

import (
	"context"

	"nightshift-routing-service/internal/domain"
)

// Port: a boundary for retrieving Passenger entities from a data source.
// Records are guaranteed valid by the ingestion side (unique ids, in-range
// coordinates); the planner treats them as opaque inputs.
type PassengerRepository interface {
	// Retrieve all passengers available for routing, in stable order.
	ListPassengers(ctx context.Context) ([]*domain.Passenger, error)
}
