package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/memory-garden/internal/adapters/memoryapi"
	gardenrender "github.com/bnema/memory-garden/internal/adapters/render/garden"
	"github.com/bnema/memory-garden/internal/adapters/render/minimap"
	tomlrepo "github.com/bnema/memory-garden/internal/adapters/repo/toml"
	"github.com/bnema/memory-garden/internal/application"
	"github.com/bnema/memory-garden/internal/config"
	"github.com/bnema/memory-garden/internal/domain"
	"github.com/bnema/memory-garden/internal/layout"
	"github.com/bnema/memory-garden/internal/logging"
	"github.com/bnema/memory-garden/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	service        *application.GardenService
	api            *memoryapi.Client
	snapshots      *tomlrepo.Source
	gardenRenderer func(application.Garden, gardenrender.RenderOptions) (string, error)
	mapRenderer    func([]minimap.Point, minimap.Options) string
}

// flagKeys binds command flags onto config keys. Only flags the running
// command defines are bound.
var flagKeys = map[string]string{
	"user-id":  "user_id",
	"group-by": "group_by",
	"seed":     "lotus.seed",
	"source":   "source",
}

func wireApp(configPath string, flags *pflag.FlagSet, logOutput io.Writer) (*app, error) {
	v := viper.New()
	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flagName, err)
		}
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logOutput, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	api, err := memoryapi.NewClient(cfg.API.Base, &http.Client{Timeout: cfg.API.Timeout})
	if err != nil {
		return nil, fmt.Errorf("wire memory api: %w", err)
	}

	snapshots, err := tomlrepo.NewSource(v)
	if err != nil {
		return nil, fmt.Errorf("wire memories file: %w", err)
	}

	var source ports.MemorySource = api
	if cfg.Source == config.SourceFile {
		source = snapshots
	}

	logger.Debug("app wired",
		zap.String("source", cfg.Source),
		zap.String("api_base", cfg.API.Base),
		zap.String("memories_path", snapshots.Path()),
	)

	return &app{
		cfg:            cfg,
		logger:         logger,
		service:        application.NewGardenService(source, ports.SystemClock{}, serviceOptions(cfg), logger),
		api:            api,
		snapshots:      snapshots,
		gardenRenderer: gardenrender.Render,
		mapRenderer:    minimap.Render,
	}, nil
}

func serviceOptions(cfg config.Config) application.Options {
	reserved := make([]domain.Cell, 0, len(cfg.Grid.Reserved))
	for _, cell := range cfg.Grid.Reserved {
		reserved = append(reserved, domain.Cell{Col: cell[0], Row: cell[1]})
	}

	return application.Options{
		Grid: layout.Grid{
			Rows:       cfg.Grid.Rows,
			Cols:       cfg.Grid.Cols,
			SpacingX:   cfg.Grid.SpacingX,
			SpacingZ:   cfg.Grid.SpacingZ,
			RingRadius: cfg.Grid.RingRadius,
			Reserved:   reserved,
		},
		Pond: layout.Pond{
			Center:     domain.Vec3{cfg.Lotus.CenterX, 0, cfg.Lotus.CenterZ},
			Radius:     cfg.Lotus.Radius,
			LotusCount: cfg.Lotus.Count,
		},
		Seed: cfg.Lotus.Seed,
	}
}

func (a *app) buildCommand() (application.BuildCommand, error) {
	groupBy, err := domain.ParseGroupBy(a.cfg.GroupBy)
	if err != nil {
		return application.BuildCommand{}, err
	}

	return application.BuildCommand{UserID: domain.UserID(a.cfg.UserID), GroupBy: groupBy}, nil
}
