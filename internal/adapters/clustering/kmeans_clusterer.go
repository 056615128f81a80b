// Package clustering implements the planner's Clusterer port with a
// deterministic Lloyd's k-means over raw coordinate degrees. Pickup
// clusters span a few city kilometers, where the planar approximation is
// more than adequate for grouping.
package clustering

import (
	"context"
	"fmt"
	"math/rand"

	"nightshift-routing-service/internal/domain"
)

const defaultMaxIterations = 100

// KMeansClusterer groups points into k clusters. A fixed seed makes runs
// reproducible; identical inputs always produce identical labels.
type KMeansClusterer struct {
	Seed          int64
	MaxIterations int
}

func NewKMeansClusterer(seed int64) *KMeansClusterer {
	return &KMeansClusterer{Seed: seed, MaxIterations: defaultMaxIterations}
}

func (c *KMeansClusterer) Cluster(ctx context.Context, points []domain.Coordinates, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("kmeans: cluster count must be positive, got %d", k)
	}
	if len(points) == 0 {
		return []int{}, nil
	}
	if k >= len(points) {
		labels := make([]int, len(points))
		for i := range labels {
			labels[i] = i
		}
		return labels, nil
	}

	maxIter := c.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	// Deterministic initialization: seed-shuffled point indices.
	rng := rand.New(rand.NewSource(c.Seed))
	idx := rng.Perm(len(points))
	centroids := make([]domain.Coordinates, k)
	for i := 0; i < k; i++ {
		centroids[i] = points[idx[i]]
	}

	labels := make([]int, len(points))
	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("kmeans: %w", err)
		}

		changed := false
		for i, p := range points {
			best := nearestCentroid(p, centroids)
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids; a cluster that lost all points keeps its
		// previous centroid.
		sumLat := make([]float64, k)
		sumLng := make([]float64, k)
		count := make([]int, k)
		for i, p := range points {
			l := labels[i]
			sumLat[l] += p.Lat
			sumLng[l] += p.Lng
			count[l]++
		}
		for j := 0; j < k; j++ {
			if count[j] == 0 {
				continue
			}
			centroids[j] = domain.Coordinates{
				Lat: sumLat[j] / float64(count[j]),
				Lng: sumLng[j] / float64(count[j]),
			}
		}
	}

	return labels, nil
}

// Squared planar distance; ties resolve to the lowest centroid index.
func nearestCentroid(p domain.Coordinates, centroids []domain.Coordinates) int {
	best := 0
	bestDist := squaredDistance(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := squaredDistance(p, centroids[j]); d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

func squaredDistance(a, b domain.Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return dLat*dLat + dLng*dLng
}
