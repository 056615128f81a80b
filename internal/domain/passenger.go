package domain

// Represents a single night-shift passenger awaiting pickup.
// A Passenger has a unique identifier and a fixed pickup location.
// Passengers are created once from validated input and never mutated;
// grouping and sequencing happen in derived structures.
type Passenger struct {
	ID            string
	Name          string
	Location      Coordinates
	PickupAddress string
}
