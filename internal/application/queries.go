package application

import (
	"time"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/google/uuid"
)

// Garden is one full layout pass over a user's memories.
type Garden struct {
	ID         uuid.UUID        `json:"id" yaml:"id" toml:"id"`
	UserID     domain.UserID    `json:"user_id" yaml:"user_id" toml:"user_id"`
	GroupBy    domain.GroupBy   `json:"group_by" yaml:"group_by" toml:"group_by"`
	BuiltAt    time.Time        `json:"built_at" yaml:"built_at" toml:"built_at"`
	Clusters   []domain.Cluster `json:"clusters" yaml:"clusters" toml:"clusters"`
	Lotus      []domain.Flower  `json:"lotus" yaml:"lotus" toml:"lotus"`
	Dropped    int              `json:"dropped" yaml:"dropped" toml:"dropped"`
	Capacity   int              `json:"capacity" yaml:"capacity" toml:"capacity"`
	FetchError string           `json:"fetch_error,omitempty" yaml:"fetch_error,omitempty" toml:"fetch_error,omitempty"`
}

// FlowerCount counts clustered flowers, excluding the pond.
func (g Garden) FlowerCount() int {
	total := 0
	for _, cluster := range g.Clusters {
		total += len(cluster.Flowers)
	}

	return total
}
