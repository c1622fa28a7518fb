// Command provision adds a directory entry for a user the identity provider has
// issued tokens to, so the API can resolve their name and active flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/infra/db"
	"meeting-room-reservation/internal/infra/repository"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/config"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	name := flag.String("name", "", "display name")
	role := flag.String("role", string(user.RoleUser), "user, executive, officer or admin")
	timeout := flag.Duration("timeout", 30*time.Second, "database timeout")
	flag.Parse()

	if err := run(*email, *name, *role, *timeout); err != nil {
		slog.Error("provisioning failed", "error", err)
		os.Exit(1)
	}
}

func run(rawEmail, name, rawRole string, timeout time.Duration) error {
	u, err := buildUser(rawEmail, name, rawRole)
	if err != nil {
		return err
	}

	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	id, err := repository.NewUserRepository(sqlc.New()).Create(ctx, pool, u)
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return fmt.Errorf("user %s already exists", u.Email().Value())
	}
	if err != nil {
		return err
	}

	slog.Info("user provisioned", "user_id", id, "email", u.Email().Value(), "role", u.Role())
	return nil
}

func buildUser(rawEmail, name, rawRole string) (*user.User, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("email %q: %w", rawEmail, err)
	}
	role, err := user.NewRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("role %q: %w", rawRole, err)
	}
	return user.NewUser(email, name, role), nil
}
