package dto

type PassengerResponse struct {
	PassengerID   string  `json:"passenger_id"`
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PickupAddress string  `json:"pickup_address"`
}

type ListPassengersResponse struct {
	Passengers []PassengerResponse `json:"passengers"`
}
