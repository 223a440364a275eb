package db

import (
	"context"
	"fmt"

	"github.com/zefanya/apptrack/internal/seed"
)

// EnsureSeed installs the starter dataset and default profile for an owner
// whose board is empty. It reports whether seeding happened.
func (db *DB) EnsureSeed(ctx context.Context, owner Owner) (bool, error) {
	count, err := db.CountApplications(ctx, owner)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := db.BatchInsertApplications(ctx, owner, seed.Applications()); err != nil {
		return false, fmt.Errorf("failed to seed applications: %w", err)
	}
	if _, err := db.GetOrSeedProfile(ctx, owner, seed.BaseProfileContext); err != nil {
		return false, fmt.Errorf("failed to seed profile: %w", err)
	}
	return true, nil
}
