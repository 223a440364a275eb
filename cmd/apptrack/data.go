package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zefanya/apptrack/internal/config"
	"github.com/zefanya/apptrack/internal/db"
)

// openStore connects to the database and resolves the owner partition for
// data commands that act on one user's records.
func openStore(ctx context.Context, userID string) (*db.DB, db.Owner, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, db.Owner{}, fmt.Errorf("invalid --user ID %q: %w", userID, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, db.Owner{}, err
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, db.Owner{}, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, db.Owner{}, err
	}

	return store, db.Owner{AppID: cfg.AppID, UserID: userID}, nil
}
