package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/ports"
)

// BuildTravelMatrix computes the pairwise travel-duration matrix (minutes)
// over one bus's passengers. One provider query serves both directions of
// each unordered pair, so the matrix is symmetric by construction.
//
// Pair queries are independent idempotent reads, so they are fanned out
// concurrently, bounded by the given limit to respect the routing
// service's rate limits. Each goroutine writes a disjoint pair of cells.
func BuildTravelMatrix(
	ctx context.Context,
	passengers []*domain.Passenger,
	provider ports.TravelTimeProvider,
	concurrency int,
) [][]float64 {
	n := len(passengers)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				r := provider.DurationDistance(gctx, passengers[i].Location, passengers[j].Location)
				matrix[i][j] = r.Minutes
				matrix[j][i] = r.Minutes
				return nil
			})
		}
	}

	// The provider never fails; Wait only orders the writes.
	_ = g.Wait()

	return matrix
}

// nearestNeighborOrder visits all indices starting from start, always
// moving to the closest unvisited index by matrix duration. Equal
// durations resolve to the lowest index, keeping runs reproducible.
func nearestNeighborOrder(matrix [][]float64, start int) []int {
	n := len(matrix)
	if n == 0 {
		return []int{}
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)
	current := start
	order = append(order, current)
	visited[current] = true

	for len(order) < n {
		next := -1
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if next == -1 || matrix[current][j] < matrix[current][next] {
				next = j
			}
		}
		order = append(order, next)
		visited[next] = true
		current = next
	}

	return order
}

// SequenceTour orders one bus's passengers into its visiting sequence.
// With zero or one passenger the input comes back unchanged and no matrix
// is built. The result is always a permutation of the input. The depot is
// not part of the matrix; the depot-to-first-stop leg is accounted for
// when the route is assembled.
func SequenceTour(
	ctx context.Context,
	passengers []*domain.Passenger,
	provider ports.TravelTimeProvider,
	concurrency int,
) []*domain.Passenger {
	if len(passengers) < 2 {
		return passengers
	}

	matrix := BuildTravelMatrix(ctx, passengers, provider, concurrency)
	order := nearestNeighborOrder(matrix, 0)

	ordered := make([]*domain.Passenger, 0, len(passengers))
	for _, idx := range order {
		ordered = append(ordered, passengers[idx])
	}

	return ordered
}
