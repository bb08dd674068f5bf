package cmd

import (
	"fmt"

	"github.com/bnema/memory-garden/internal/adapters/render/minimap"
	"github.com/bnema/memory-garden/internal/application"
	"github.com/spf13/cobra"
)

func newMapCmd(app *app) *cobra.Command {
	var opts minimap.Options

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Draw a top-down minimap of the garden around a position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			garden, err := buildGarden(cmd, app, false)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.mapRenderer(mapPoints(garden), opts))
			return err
		},
	}

	addGardenFlags(cmd)
	cmd.Flags().Float64Var(&opts.Player.X, "x", 0, "Player X position")
	cmd.Flags().Float64Var(&opts.Player.Z, "z", 0, "Player Z position")
	cmd.Flags().Float64Var(&opts.Player.Yaw, "yaw", 0, "Player heading in radians")
	cmd.Flags().Float64Var(&opts.Range, "range", minimap.DefaultRange, "World units shown edge to edge")
	cmd.Flags().IntVar(&opts.Width, "width", minimap.DefaultWidth, "Map width in characters")
	cmd.Flags().IntVar(&opts.Height, "height", minimap.DefaultHeight, "Map height in characters")

	return cmd
}

func mapPoints(garden application.Garden) []minimap.Point {
	points := make([]minimap.Point, 0, garden.FlowerCount()+len(garden.Lotus))
	for _, cluster := range garden.Clusters {
		for _, flower := range cluster.Flowers {
			points = append(points, minimap.Point{Position: flower.Position})
		}
	}
	for _, flower := range garden.Lotus {
		points = append(points, minimap.Point{Position: flower.Position, Lotus: true})
	}

	return points
}
