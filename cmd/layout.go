package cmd

import (
	"context"
	"fmt"

	gardenrender "github.com/bnema/memory-garden/internal/adapters/render/garden"
	"github.com/bnema/memory-garden/internal/application"
	"github.com/spf13/cobra"
)

func newLayoutCmd(app *app) *cobra.Command {
	var format string
	var showFlowers bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Cluster memories and place them on the garden grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			garden, err := buildGarden(cmd, app, format == formatText)
			if err != nil {
				return err
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, garden)
			}

			rendered, err := app.gardenRenderer(garden, gardenrender.RenderOptions{ShowFlowers: showFlowers})
			if err != nil {
				return fmt.Errorf("render garden: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addGardenFlags(cmd)
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, yaml or toml")
	cmd.Flags().BoolVar(&showFlowers, "flowers", false, "List every flower under its cluster")

	return cmd
}

func addGardenFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("user-id", 0, "User whose memories are planted (default from config)")
	cmd.Flags().String("group-by", "", "Cluster by date or emotion (default from config)")
	cmd.Flags().Uint64("seed", 0, "Seed for lotus placement; 0 picks a new layout every run")
	cmd.Flags().String("source", "", "Memory source: api or file (default from config)")
}

// buildGarden runs a layout pass, with a spinner on stderr when interactive.
func buildGarden(cmd *cobra.Command, app *app, withSpinner bool) (application.Garden, error) {
	command, err := app.buildCommand()
	if err != nil {
		return application.Garden{}, err
	}

	var garden application.Garden
	build := func(ctx context.Context) error {
		built, err := app.service.Build(ctx, command)
		if err != nil {
			return err
		}
		garden = built
		return nil
	}

	if withSpinner {
		err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching memories...", build)
	} else {
		err = build(cmd.Context())
	}
	if err != nil {
		return application.Garden{}, err
	}

	return garden, nil
}
