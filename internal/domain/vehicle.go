package domain

import (
	"errors"
	"fmt"
	"sort"
)

// CapacityCatalog is the fixed set of admissible bus sizes for a run,
// sorted largest first. A vehicle may only have a capacity drawn from it.
type CapacityCatalog []int

func NewCapacityCatalog(sizes []int) (CapacityCatalog, error) {
	if len(sizes) == 0 {
		return nil, errors.New("capacity catalog: must not be empty")
	}

	out := make(CapacityCatalog, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("capacity catalog: capacity must be positive, got %d", s)
		}
		out = append(out, s)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

// Largest returns the biggest admissible capacity.
func (c CapacityCatalog) Largest() int {
	if len(c) == 0 {
		return 0
	}
	return c[0]
}

// SmallestAtLeast returns the smallest catalog capacity that can still hold
// n passengers. The whole catalog is searched; capacities are reusable.
func (c CapacityCatalog) SmallestAtLeast(n int) (int, bool) {
	best := 0
	found := false
	for _, cap := range c {
		if cap >= n && (!found || cap < best) {
			best = cap
			found = true
		}
	}
	return best, found
}

// One bus worth of work: a capacity drawn from the catalog and the
// passengers packed into it. PassengerCount never exceeds Capacity.
type VehicleAssignment struct {
	Capacity       int
	PassengerCount int
	Passengers     []*Passenger
}
