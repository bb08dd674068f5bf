package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelForEmotion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FlowerModels[0], ModelForEmotion(""))
	assert.Equal(t, FlowerModels[3], ModelForEmotion("joy"))
	assert.Equal(t, FlowerModels[0], ModelForEmotion("nostalgic"))
	assert.Equal(t, FlowerModels[5], ModelForEmotion("héllo"))
}

func TestNewFlowerCopiesMemory(t *testing.T) {
	t.Parallel()

	position := Vec3{1, 2, 3}
	memory := Memory{ID: 4, CreatedAt: "2025-08-01T10:00:00Z", Emotion: "calm", MediaPath: "a.png", MediaType: "image", Position: &position}

	flower := NewFlower(memory)
	require.NotNil(t, flower.Memory)
	assert.Equal(t, MemoryID(4), flower.Memory.ID)
	assert.Equal(t, "2025-08-01", flower.Date)
	assert.Equal(t, ModelForEmotion("calm"), flower.ModelPath)
	assert.Equal(t, Vec3{1, 2, 3}, flower.Position)
	assert.Equal(t, "a.png", flower.MediaPath)
	assert.True(t, flower.HasMemory())
	assert.False(t, flower.IsLotus())

	memory.ID = 99
	assert.Equal(t, MemoryID(4), flower.Memory.ID)
}

func TestNewFlowerKeepsExplicitModel(t *testing.T) {
	t.Parallel()

	flower := NewFlower(Memory{ModelPath: LotusModelPath, Emotion: "joy"})
	assert.True(t, flower.IsLotus())
	assert.Equal(t, Vec3{}, flower.Position)
}

func TestParseGroupBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    GroupBy
		wantErr bool
	}{
		{raw: "", want: GroupByDate},
		{raw: "date", want: GroupByDate},
		{raw: " Emotion ", want: GroupByEmotion},
		{raw: "location", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParseGroupBy(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedGroupBy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGroupByKeyFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UnknownKey, GroupByDate.Key(Flower{Emotion: "joy"}))
	assert.Equal(t, UnknownKey, GroupByEmotion.Key(Flower{Date: "2025-08-01"}))
	assert.Equal(t, "joy", GroupByEmotion.Key(Flower{Emotion: "joy"}))
	assert.Equal(t, "0|3", Cell{Col: 0, Row: 3}.Key())
}
