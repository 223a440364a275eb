package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Profile is the stored skills context for one user.
type Profile struct {
	Context     string    `json:"context"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// GetProfile retrieves the owner's profile, or ErrNotFound.
func (db *DB) GetProfile(ctx context.Context, owner Owner) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT context, last_updated FROM profiles WHERE app_id = $1 AND user_id = $2`,
		owner.AppID, owner.UserID,
	).Scan(&p.Context, &p.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// PutProfile stores or replaces the owner's profile context.
func (db *DB) PutProfile(ctx context.Context, owner Owner, text string) (*Profile, error) {
	p := Profile{Context: text}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (app_id, user_id, context, last_updated)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (app_id, user_id) DO UPDATE SET context = $3, last_updated = NOW()
		 RETURNING last_updated`,
		owner.AppID, owner.UserID, text,
	).Scan(&p.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("failed to put profile: %w", err)
	}
	return &p, nil
}

// GetOrSeedProfile returns the stored profile, installing the given default
// context on first access.
func (db *DB) GetOrSeedProfile(ctx context.Context, owner Owner, defaultContext string) (*Profile, error) {
	p, err := db.GetProfile(ctx, owner)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return db.PutProfile(ctx, owner, defaultContext)
}
