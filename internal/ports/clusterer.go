package ports

import (
	"context"

	"nightshift-routing-service/internal/domain"
)

// NoiseLabel marks points a density-based clusterer could not group.
// The pipeline promotes such points to singleton clusters.
const NoiseLabel = -1

// Port: a spatial grouping capability. Implementations return one label per
// input point (labels carry no meaning beyond grouping) and may mark points
// as noise with NoiseLabel.
type Clusterer interface {
	Cluster(ctx context.Context, points []domain.Coordinates, k int) ([]int, error)
}
