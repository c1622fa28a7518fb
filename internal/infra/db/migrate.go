package db

import (
	"context"
	"fmt"
	"log/slog"

	"meeting-room-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending versioned migrations from cfg.MigrationsDir using the
// atlas CLI found on PATH.
func Migrate(ctx context.Context, cfg config.DBConfig, dryRun bool) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: cfg.MigrationsDir,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("migration applied", "version", f.Version, "description", f.Description)
	}
	slog.Info("migrations up to date",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun)

	return nil
}
