// Package layout places garden flowers in world space: clusters are grouped by a
// shared attribute, given a cell on a fixed grid, and lotus flowers ring the pond.
package layout

import (
	"math"

	"github.com/bnema/memory-garden/internal/domain"
)

// ClusterSpacing is the distance between neighbours in a cluster's compact sub-grid.
const ClusterSpacing = 1.0

// CreateClusters groups flowers by the groupBy attribute, keeping keys in
// first-seen order and members in input order. Each cluster's members are
// repositioned on a compact square grid around the bucket's XZ centroid.
// The input slice is not modified.
func CreateClusters(flowers []domain.Flower, groupBy domain.GroupBy) []domain.Cluster {
	keys := make([]string, 0)
	buckets := make(map[string][]domain.Flower)

	for _, flower := range flowers {
		key := groupBy.Key(flower)
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], flower)
	}

	clusters := make([]domain.Cluster, 0, len(keys))
	for _, key := range keys {
		clusters = append(clusters, newCluster(key, buckets[key], groupBy))
	}

	return clusters
}

func newCluster(key string, members []domain.Flower, groupBy domain.GroupBy) domain.Cluster {
	centerX, centerZ := centroidXZ(members)

	gridSize := int(math.Ceil(math.Sqrt(float64(len(members)))))
	half := float64(gridSize-1) / 2

	positioned := make([]domain.Flower, len(members))
	for i, flower := range members {
		col := i % gridSize
		row := i / gridSize

		flower.Position = domain.Vec3{
			centerX + (float64(col)-half)*ClusterSpacing,
			0,
			centerZ + (float64(row)-half)*ClusterSpacing,
		}
		positioned[i] = flower
	}

	cluster := domain.Cluster{
		Flowers:        positioned,
		CenterPosition: domain.Vec3{centerX, 0, centerZ},
		Size:           float64(gridSize) * ClusterSpacing,
		Date:           members[0].Date,
		Emotion:        members[0].Emotion,
	}

	switch groupBy {
	case domain.GroupByDate:
		cluster.Date = key
	case domain.GroupByEmotion:
		cluster.Emotion = key
	}

	return cluster
}

// centroidXZ is the mean x and z of members. members is never empty.
func centroidXZ(members []domain.Flower) (float64, float64) {
	var sumX, sumZ float64
	for _, flower := range members {
		sumX += flower.Position.X()
		sumZ += flower.Position.Z()
	}

	n := float64(len(members))
	return sumX / n, sumZ / n
}
