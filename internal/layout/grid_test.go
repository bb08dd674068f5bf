package layout

import (
	"math"
	"testing"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedFlowers(dates ...string) []domain.Flower {
	flowers := make([]domain.Flower, 0, len(dates))
	for _, date := range dates {
		flowers = append(flowers, domain.Flower{Date: date})
	}
	return flowers
}

func TestGridPlaceScenarioTwoDates(t *testing.T) {
	t.Parallel()

	clusters := CreateClusters(datedFlowers("2025-08-01", "2025-08-01", "2025-08-02"), domain.GroupByDate)
	placement := DefaultGrid().Place(clusters)

	require.Len(t, placement.Clusters, 2)
	assert.Zero(t, placement.Dropped)

	first, second := placement.Clusters[0], placement.Clusters[1]
	assert.Equal(t, "2025-08-01", first.Date)
	assert.Len(t, first.Flowers, 2)
	assert.Equal(t, &domain.Cell{Col: 0, Row: 0}, first.Cell)
	assert.Equal(t, domain.Vec3{-15, 0, -22}, first.CenterPosition)

	assert.Equal(t, "2025-08-02", second.Date)
	assert.Len(t, second.Flowers, 1)
	assert.Equal(t, &domain.Cell{Col: 1, Row: 0}, second.Cell)
	assert.Equal(t, domain.Vec3{-12, 0, -22}, second.CenterPosition)
	assert.Equal(t, second.CenterPosition, second.Flowers[0].Position)
}

func TestGridPlaceSingleLargeCluster(t *testing.T) {
	t.Parallel()

	dates := make([]string, 101)
	for i := range dates {
		dates[i] = "2025-08-01"
	}

	placement := DefaultGrid().Place(CreateClusters(datedFlowers(dates...), domain.GroupByDate))
	require.Len(t, placement.Clusters, 1)
	assert.Zero(t, placement.Dropped)
	assert.Len(t, placement.Clusters[0].Flowers, 101)
	assert.Equal(t, &domain.Cell{}, placement.Clusters[0].Cell)
}

func TestGridPlaceEmpty(t *testing.T) {
	t.Parallel()

	placement := DefaultGrid().Place(nil)
	assert.Empty(t, placement.Clusters)
	assert.Empty(t, placement.Overflow)
	assert.Zero(t, placement.Dropped)
}

func TestGridPlaceRingLayout(t *testing.T) {
	t.Parallel()

	for _, k := range []int{2, 3, 5, 8} {
		dates := make([]string, k)
		for i := range dates {
			dates[i] = "same"
		}

		placement := DefaultGrid().Place(CreateClusters(datedFlowers(dates...), domain.GroupByDate))
		require.Len(t, placement.Clusters, 1)

		cluster := placement.Clusters[0]
		center := cluster.CenterPosition
		step := 2 * math.Pi / float64(k)
		for i, flower := range cluster.Flowers {
			assert.InDelta(t, DefaultRingRadius, flower.Position.DistanceXZ(center), 1e-9)
			assert.Zero(t, flower.Position.Y())

			angle := math.Atan2(flower.Position.Z()-center.Z(), flower.Position.X()-center.X())
			if angle < 0 {
				angle += 2 * math.Pi
			}
			assert.InDelta(t, float64(i)*step, angle, 1e-9, "k=%d member %d", k, i)
		}
	}
}

func TestGridPlaceUniqueCells(t *testing.T) {
	t.Parallel()

	flowers := make([]domain.Flower, 0, 60)
	for i := 0; i < 60; i++ {
		flowers = append(flowers, domain.Flower{Emotion: string(rune('a'+i%26)) + string(rune('a'+i/26))})
	}

	placement := DefaultGrid().Place(CreateClusters(flowers, domain.GroupByEmotion))
	require.Len(t, placement.Clusters, 60)

	centers := map[domain.Vec3]struct{}{}
	for _, cluster := range placement.Clusters {
		_, dup := centers[cluster.CenterPosition]
		require.False(t, dup, "center %v assigned twice", cluster.CenterPosition)
		centers[cluster.CenterPosition] = struct{}{}
	}
}

func TestGridPlaceDropsClustersBeyondCapacity(t *testing.T) {
	t.Parallel()

	grid := Grid{Rows: 2, Cols: 2, SpacingX: 1, SpacingZ: 1, RingRadius: 2}
	clusters := CreateClusters(datedFlowers("a", "b", "c", "d", "e", "f"), domain.GroupByDate)

	placement := grid.Place(clusters)
	require.Len(t, placement.Clusters, 4)
	assert.Equal(t, 2, placement.Dropped)
	require.Len(t, placement.Overflow, 2)
	assert.Equal(t, "e", placement.Overflow[0].Date)
	assert.Equal(t, "f", placement.Overflow[1].Date)
	assert.Nil(t, placement.Overflow[0].Cell)

	assert.Equal(t, &domain.Cell{Col: 1, Row: 1}, placement.Clusters[3].Cell)
}

func TestGridPlaceSkipsReservedCells(t *testing.T) {
	t.Parallel()

	grid := DefaultGrid()
	grid.Reserved = []domain.Cell{{Col: 0, Row: 0}, {Col: 2, Row: 0}}

	placement := grid.Place(CreateClusters(datedFlowers("a", "b", "c"), domain.GroupByDate))
	require.Len(t, placement.Clusters, 3)
	assert.Equal(t, &domain.Cell{Col: 1, Row: 0}, placement.Clusters[0].Cell)
	assert.Equal(t, &domain.Cell{Col: 3, Row: 0}, placement.Clusters[1].Cell)
	assert.Equal(t, &domain.Cell{Col: 4, Row: 0}, placement.Clusters[2].Cell)
}

func TestGridPlaceRecomputesPositionsFromAssignedCenter(t *testing.T) {
	t.Parallel()

	clusters := CreateClusters([]domain.Flower{
		{Date: "a", Position: domain.Vec3{100, 0, 100}},
	}, domain.GroupByDate)
	require.Equal(t, domain.Vec3{100, 0, 100}, clusters[0].CenterPosition)

	placement := DefaultGrid().Place(clusters)
	require.Len(t, placement.Clusters, 1)
	assert.Equal(t, domain.Vec3{-15, 0, -22}, placement.Clusters[0].CenterPosition)
	assert.Equal(t, domain.Vec3{-15, 0, -22}, placement.Clusters[0].Flowers[0].Position)
	assert.Equal(t, domain.Vec3{100, 0, 100}, clusters[0].Flowers[0].Position)
}

func TestGridPlaceWithoutCells(t *testing.T) {
	t.Parallel()

	placement := Grid{}.Place(CreateClusters(datedFlowers("a"), domain.GroupByDate))
	assert.Empty(t, placement.Clusters)
	assert.Equal(t, 1, placement.Dropped)
}

func TestGridValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		grid    Grid
		wantErr string
	}{
		{name: "default", grid: DefaultGrid()},
		{name: "zero rows", grid: Grid{Cols: 1, SpacingX: 1, SpacingZ: 1}, wantErr: "dimensions must be positive"},
		{name: "zero spacing", grid: Grid{Rows: 1, Cols: 1, SpacingZ: 1}, wantErr: "spacing must be positive"},
		{name: "negative radius", grid: Grid{Rows: 1, Cols: 1, SpacingX: 1, SpacingZ: 1, RingRadius: -1}, wantErr: "ring radius"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.grid.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
