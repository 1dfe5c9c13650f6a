package main

import (
	"context"
	"errors"
	"moderation/internal/config"
	"moderation/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errDuplicatePending = errors.New("duplicate pending change requests found")

// verifyCommand constructs the 'verify' subcommand that audits the database for
// company fields holding more than one pending change request. It exits non-zero
// when any is found so it can run as a scheduled check.
func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Checks that every company field has at most one pending change request",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := newModerationService(ctx, cfg, strg)

			duplicates, err := svc.CheckInvariants(ctx)
			if err != nil {
				logger.Error(ctx, "could not check invariants", zap.Error(err))

				return err //nolint: wrapcheck
			}
			if len(duplicates) > 0 {
				logger.Error(ctx, "store is inconsistent", zap.Int("groups", len(duplicates)))

				return errDuplicatePending
			}

			logger.Info(ctx, "no duplicate pending change requests found")

			return nil
		},
	}

	return cmd
}
