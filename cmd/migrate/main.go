package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"meeting-room-reservation/internal/infra/db"
	"meeting-room-reservation/internal/pkg/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 5*time.Minute, "migration timeout")
	flag.Parse()

	if err := run(*dryRun, *timeout); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dryRun bool, timeout time.Duration) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return db.Migrate(ctx, cfg, dryRun)
}
