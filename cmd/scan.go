package main

import (
	"context"
	"fmt"
	"privacymon/internal/config"
	"privacymon/internal/scanning"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/metrics"
	"privacymon/pkg/notify"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scanCommand queues a scan for a running 'serve' instance to pick up.
func scanCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Queues a scan",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			kind, _ := cmd.Flags().GetString("kind")
			rawIDs, _ := cmd.Flags().GetStringSlice("subject")

			subjectIDs := make([]domain.SubjectID, 0, len(rawIDs))
			for _, raw := range rawIDs {
				id, err := uuid.Parse(raw)
				if err != nil {
					logger.Fatal(ctx, "invalid subject id", zap.String("subject", raw), zap.Error(err))
				}
				subjectIDs = append(subjectIDs, domain.SubjectID(id))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// completion alerts are sent by the workers, not from here
			coordinator := scanning.NewCoordinator(strg, notify.Discard{}, metrics.Noop(), scanning.NewOptions(cfg))
			scan, err := coordinator.StartScan(ctx, domain.ScanKind(kind), subjectIDs)
			if err != nil {
				logger.Error(ctx, "could not start scan", zap.Error(err))

				return
			}

			fmt.Println(scan.ID.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("kind", string(domain.ScanKindFull), "Scan kind: full, breach or data_broker")
	cmd.Flags().StringSlice("subject", nil, "Subject IDs to scan (default: every subject)")

	return cmd
}
