package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zefanya/apptrack/internal/types"
)

// ErrNotFound is returned when a record does not exist for the given owner.
var ErrNotFound = errors.New("record not found")

// Owner scopes every query to one user within one workspace.
type Owner struct {
	AppID  string
	UserID string
}

// Key identifies the owner partition in the change hub.
func (o Owner) Key() string {
	return o.AppID + "/" + o.UserID
}

const applicationColumns = `id, role, company, location, applied_date, status, link, notes, source, updated_at`

// ListApplications returns every record for the owner in board order.
func (db *DB) ListApplications(ctx context.Context, owner Owner) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE app_id = $1 AND user_id = $2`,
		owner.AppID, owner.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	types.SortApplications(apps)
	return apps, nil
}

// GetApplication retrieves one record, or ErrNotFound.
func (db *DB) GetApplication(ctx context.Context, owner Owner, id uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE app_id = $1 AND user_id = $2 AND id = $3`,
		owner.AppID, owner.UserID, id,
	)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// CreateApplication inserts a record, assigning an ID and timestamp when
// missing, and returns the stored record.
func (db *DB) CreateApplication(ctx context.Context, owner Owner, app types.Application) (*types.Application, error) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if app.Timestamp.IsZero() {
		app.Timestamp = time.Now()
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications (id, app_id, user_id, role, company, location, applied_date, status, link, notes, source, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		app.ID, owner.AppID, owner.UserID,
		app.Role, app.Company, app.Location, app.AppliedDate, app.Status, app.Link, app.Notes, app.Source, app.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	db.hub.Notify(owner.Key())
	return &app, nil
}

// UpdateApplication overwrites a record and refreshes its timestamp.
func (db *DB) UpdateApplication(ctx context.Context, owner Owner, app types.Application) (*types.Application, error) {
	err := db.pool.QueryRow(ctx,
		`UPDATE applications
		 SET role = $4, company = $5, location = $6, applied_date = $7, status = $8, link = $9, notes = $10, source = $11, updated_at = NOW()
		 WHERE app_id = $1 AND user_id = $2 AND id = $3
		 RETURNING updated_at`,
		owner.AppID, owner.UserID, app.ID,
		app.Role, app.Company, app.Location, app.AppliedDate, app.Status, app.Link, app.Notes, app.Source,
	).Scan(&app.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	db.hub.Notify(owner.Key())
	return &app, nil
}

// DeleteApplication removes a record, or returns ErrNotFound.
func (db *DB) DeleteApplication(ctx context.Context, owner Owner, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM applications WHERE app_id = $1 AND user_id = $2 AND id = $3`,
		owner.AppID, owner.UserID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	db.hub.Notify(owner.Key())
	return nil
}

// BatchInsertApplications inserts many records in one round trip. Records
// without an ID or timestamp get fresh ones. All inserts succeed or the
// batch fails as a unit.
func (db *DB) BatchInsertApplications(ctx context.Context, owner Owner, apps []types.Application) (int, error) {
	if len(apps) == 0 {
		return 0, nil
	}

	now := time.Now()
	batch := &pgx.Batch{}
	for i := range apps {
		app := &apps[i]
		if app.ID == uuid.Nil {
			app.ID = uuid.New()
		}
		if app.Timestamp.IsZero() {
			app.Timestamp = now
		}
		batch.Queue(
			`INSERT INTO applications (id, app_id, user_id, role, company, location, applied_date, status, link, notes, source, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			app.ID, owner.AppID, owner.UserID,
			app.Role, app.Company, app.Location, app.AppliedDate, app.Status, app.Link, app.Notes, app.Source, app.Timestamp,
		)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin batch insert: %w", err)
	}
	defer tx.Rollback(ctx)

	results := tx.SendBatch(ctx, batch)
	for range apps {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("failed to insert application batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit batch insert: %w", err)
	}

	db.hub.Notify(owner.Key())
	return len(apps), nil
}

// CountApplications returns the number of records stored for the owner.
func (db *DB) CountApplications(ctx context.Context, owner Owner) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE app_id = $1 AND user_id = $2`,
		owner.AppID, owner.UserID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

func scanApplication(row pgx.Row) (types.Application, error) {
	var app types.Application
	err := row.Scan(
		&app.ID, &app.Role, &app.Company, &app.Location, &app.AppliedDate,
		&app.Status, &app.Link, &app.Notes, &app.Source, &app.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Application{}, err
		}
		return types.Application{}, fmt.Errorf("failed to scan application: %w", err)
	}
	return app, nil
}
