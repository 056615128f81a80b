package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"nightshift-routing-service/internal/domain"
	"nightshift-routing-service/internal/ports"
)

// ErrNoPassengers is the input error for an empty passenger set.
var ErrNoPassengers = errors.New("no passengers to route")

// Bound on buses sequenced at once. Each bus already fans out its own
// matrix queries, so this stays small.
const vehicleConcurrency = 4

type PlanRoutesRequest struct {
	Depot             domain.Coordinates
	Catalog           domain.CapacityCatalog
	TargetGroupSize   int
	MatrixConcurrency int
}

// PlanRoutes runs the whole pipeline: cluster passengers geographically,
// pack each cluster into catalog buses, sequence each bus's pickups, and
// assemble finalized routes plus the fleet summary.
//
// Any run-level failure returns an explicit empty plan (zero routes, zero
// summary) alongside the error; callers never see a partially built
// result. For fixed inputs and provider responses the output is
// deterministic, so repeated runs produce identical route sets.
func PlanRoutes(
	ctx context.Context,
	req PlanRoutesRequest,
	repo ports.PassengerRepository,
	clusterer ports.Clusterer,
	provider ports.TravelTimeProvider,
) (domain.RoutePlan, error) {
	passengers, err := repo.ListPassengers(ctx)
	if err != nil {
		return emptyPlan(), fmt.Errorf("plan routes: list passengers: %w", err)
	}
	if len(passengers) == 0 {
		return emptyPlan(), fmt.Errorf("plan routes: %w", ErrNoPassengers)
	}

	clusters, err := ClusterPassengers(ctx, passengers, clusterer, req.TargetGroupSize)
	if err != nil {
		return emptyPlan(), fmt.Errorf("plan routes: %w", err)
	}

	// Walk clusters in id order so bus numbering is stable across runs.
	clusterIDs := make([]int, 0, len(clusters))
	for id := range clusters {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Ints(clusterIDs)

	assignments := make([]domain.VehicleAssignment, 0, len(clusters))
	for _, id := range clusterIDs {
		clusterAssignments, err := AssignVehicles(clusters[id], req.Catalog)
		if err != nil {
			return emptyPlan(), fmt.Errorf("plan routes: cluster %d: %w", id, err)
		}
		assignments = append(assignments, clusterAssignments...)
	}

	// Each bus's matrix and ordering are private to its own computation,
	// so buses are processed concurrently and merged back positionally.
	routes := make([]domain.Route, len(assignments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(vehicleConcurrency)

	for i, assignment := range assignments {
		i, assignment := i, assignment
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ordered := SequenceTour(gctx, assignment.Passengers, provider, req.MatrixConcurrency)
			routes[i] = AssembleRoute(gctx, i+1, assignment.Capacity, ordered, req.Depot, provider)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return emptyPlan(), fmt.Errorf("plan routes: %w", err)
	}

	return domain.RoutePlan{
		Routes:  routes,
		Summary: Summarize(routes, len(passengers)),
	}, nil
}

func emptyPlan() domain.RoutePlan {
	return domain.RoutePlan{
		Routes:  []domain.Route{},
		Summary: Summarize(nil, 0),
	}
}
