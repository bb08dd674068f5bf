package cmd

import "github.com/spf13/cobra"

const skipWireAnnotation = "garden/skip-wire"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "garden",
		Short:         "Memory garden: lay out memories as flower clusters on a grid",
		Long:          "garden fetches a user's memories, groups them by date or emotion, places each group on a fixed garden grid and arranges lotus flowers around the pond.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] != "" {
				return nil
			}

			wired, err := wireApp(configPath, cmd.Flags(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/.memory-garden/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLayoutCmd(app),
		newSearchCmd(app),
		newMapCmd(app),
		newSnapshotCmd(app),
	)

	return rootCmd
}
