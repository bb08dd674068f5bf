package application

import (
	"context"
	"fmt"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/bnema/memory-garden/internal/layout"
	"github.com/bnema/memory-garden/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	Grid layout.Grid
	Pond layout.Pond
	// Seed drives lotus jitter. Zero seeds from the clock on every build.
	Seed uint64
}

func DefaultOptions() Options {
	return Options{Grid: layout.DefaultGrid(), Pond: layout.DefaultPond()}
}

type GardenService struct {
	source ports.MemorySource
	clock  ports.Clock
	opts   Options
	logger *zap.Logger
}

func NewGardenService(source ports.MemorySource, clock ports.Clock, opts Options, logger *zap.Logger) *GardenService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GardenService{
		source: source,
		clock:  clock,
		opts:   opts,
		logger: logger,
	}
}

// Build fetches the user's memories and lays out a fresh garden. A failed
// fetch is logged and yields an empty garden with FetchError set.
func (s *GardenService) Build(ctx context.Context, cmd BuildCommand) (Garden, error) {
	if err := cmd.Validate(); err != nil {
		return Garden{}, err
	}
	if err := s.opts.Grid.Validate(); err != nil {
		return Garden{}, fmt.Errorf("validate grid: %w", err)
	}

	now := s.clock.Now()
	garden := Garden{
		ID:       uuid.New(),
		UserID:   cmd.UserID,
		GroupBy:  cmd.GroupBy,
		BuiltAt:  now,
		Capacity: s.opts.Grid.Capacity(),
	}
	logger := s.logger.With(zap.Stringer("garden_id", garden.ID), zap.Int64("user_id", int64(cmd.UserID)))

	memories, err := s.source.List(ctx, cmd.UserID)
	if err != nil {
		logger.Error("fetch memories failed, rendering an empty garden", zap.Error(err))
		garden.FetchError = err.Error()
		memories = nil
	}

	flowers, lotus := splitLotus(memories)
	logger.Debug("memories fetched",
		zap.Int("memories", len(memories)),
		zap.Int("lotus", len(lotus)),
	)

	placement := s.opts.Grid.Place(layout.CreateClusters(flowers, cmd.GroupBy))
	garden.Clusters = placement.Clusters
	garden.Dropped = placement.Dropped
	if placement.Dropped > 0 {
		dropped := make([]string, 0, len(placement.Overflow))
		for _, cluster := range placement.Overflow {
			dropped = append(dropped, clusterKey(cluster, cmd.GroupBy))
		}
		logger.Warn("grid exhausted, clusters dropped",
			zap.Int("dropped", placement.Dropped),
			zap.Int("capacity", garden.Capacity),
			zap.Strings("keys", dropped),
		)
	}

	rng := layout.NewRand(s.opts.Seed, uint64(now.UnixNano()))
	garden.Lotus = s.opts.Pond.Place(lotus, rng)

	return garden, nil
}

func (s *GardenService) Search(ctx context.Context, cmd SearchCommand) ([]domain.Memory, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	memories, err := s.source.Search(ctx, cmd.Query)
	if err != nil {
		return nil, fmt.Errorf("search memories: %w", err)
	}

	return memories, nil
}

func splitLotus(memories []domain.Memory) ([]domain.Flower, []domain.Flower) {
	flowers := make([]domain.Flower, 0, len(memories))
	var lotus []domain.Flower

	for _, memory := range memories {
		flower := domain.NewFlower(memory)
		if flower.IsLotus() {
			lotus = append(lotus, flower)
			continue
		}
		flowers = append(flowers, flower)
	}

	return flowers, lotus
}

func clusterKey(cluster domain.Cluster, groupBy domain.GroupBy) string {
	if groupBy == domain.GroupByEmotion {
		return cluster.Emotion
	}

	return cluster.Date
}
