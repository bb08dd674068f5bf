package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSnapshotCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy a user's memories from the API into the local memories file",
		Long:  "snapshot fetches the user's memories from the API and replaces the memories file, so later runs can use --source file offline.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID := domain.UserID(app.cfg.UserID)
			if userID <= 0 {
				return fmt.Errorf("%w: %d", domain.ErrInvalidUserID, userID)
			}

			var memories []domain.Memory
			fetch := func(ctx context.Context) error {
				fetched, err := app.api.List(ctx, userID)
				if err != nil {
					return err
				}
				memories = fetched
				return nil
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching memories...", fetch); err != nil {
				return fmt.Errorf("snapshot memories: %w", err)
			}

			if err := app.snapshots.Replace(cmd.Context(), memories); err != nil {
				return fmt.Errorf("write memories file: %w", err)
			}
			app.logger.Info("memories snapshot written",
				zap.Int64("user_id", int64(userID)),
				zap.Int("memories", len(memories)),
				zap.String("path", app.snapshots.Path()),
			)

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "saved %d memories to %s\n", len(memories), app.snapshots.Path())
			return err
		},
	}

	cmd.Flags().Int64("user-id", 0, "User whose memories are copied (default from config)")

	return cmd
}
