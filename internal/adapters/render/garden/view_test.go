package garden

import (
	"testing"

	"github.com/bnema/memory-garden/internal/application"
	"github.com/bnema/memory-garden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGarden() application.Garden {
	return application.Garden{
		GroupBy:  domain.GroupByDate,
		Capacity: 110,
		Clusters: []domain.Cluster{
			{
				Date:           "2025-08-01",
				Emotion:        "joy",
				Size:           2,
				CenterPosition: domain.Vec3{-15, 0, -22},
				Cell:           &domain.Cell{Col: 0, Row: 0},
				Flowers: []domain.Flower{
					{Position: domain.Vec3{-13, 0, -22}, MediaType: "image", Memory: &domain.Memory{ID: 1, Title: "Beach"}},
					{Position: domain.Vec3{-17, 0, -22}, Memory: &domain.Memory{ID: 2}},
				},
			},
		},
		Lotus: []domain.Flower{
			{ModelPath: domain.LotusModelPath, Memory: &domain.Memory{ID: 3}},
			{ModelPath: domain.LotusModelPath},
		},
	}
}

func TestRenderGardenSummary(t *testing.T) {
	output, err := Render(sampleGarden(), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "Memory Garden")
	assert.Contains(t, output, "clusters: 1  flowers: 2  lotus: 2  grouped by: date")
	assert.Contains(t, output, "2025-08-01 · joy")
	assert.Contains(t, output, "(0,0)")
	assert.Contains(t, output, "(-15.0, -22.0)")
	assert.Contains(t, output, "2 flowers")
	assert.Contains(t, output, "Pond: 2 lotus (1 with memories)")
	assert.NotContains(t, output, "Beach")
	assert.NotContains(t, output, "dropped")
}

func TestRenderGardenListsFlowers(t *testing.T) {
	output, err := Render(sampleGarden(), RenderOptions{ShowFlowers: true})
	require.NoError(t, err)

	assert.Contains(t, output, "Beach (-13.0, -22.0) [image]")
	assert.Contains(t, output, "memory 2 (-17.0, -22.0)")
}

func TestRenderGardenShowsDegradedStates(t *testing.T) {
	output, err := Render(application.Garden{
		GroupBy:    domain.GroupByEmotion,
		FetchError: "fetch memories failed: status 502",
		Dropped:    3,
		Capacity:   4,
	}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "memories unavailable: fetch memories failed: status 502")
	assert.Contains(t, output, "dropped: 3 clusters (grid capacity 4)")
	assert.Contains(t, output, "No memories planted yet.")
}
