package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/mc2go/internal/model"
)

// SnapshotRepository persists living entity snapshots.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a repository over the given pool.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Save upserts one snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, s model.EntitySnapshot) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO entity_snapshots
			(entity_id, type, x, y, z, vel_x, vel_y, vel_z, health, fall_distance, age, attributes, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (entity_id) DO UPDATE SET
			type = EXCLUDED.type,
			x = EXCLUDED.x, y = EXCLUDED.y, z = EXCLUDED.z,
			vel_x = EXCLUDED.vel_x, vel_y = EXCLUDED.vel_y, vel_z = EXCLUDED.vel_z,
			health = EXCLUDED.health,
			fall_distance = EXCLUDED.fall_distance,
			age = EXCLUDED.age,
			attributes = EXCLUDED.attributes,
			saved_at = EXCLUDED.saved_at`,
		s.EntityID, s.Type, s.X, s.Y, s.Z, s.VelX, s.VelY, s.VelZ,
		s.Health, s.FallDistance, s.Age, s.Attributes, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving snapshot of entity %d: %w", s.EntityID, err)
	}
	return nil
}

// SaveAll replaces the whole snapshot table with the given set in one
// transaction. A world save is all-or-nothing.
func (r *SnapshotRepository) SaveAll(ctx context.Context, snapshots []model.EntitySnapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("snapshot rollback failed", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, `TRUNCATE entity_snapshots`); err != nil {
		return fmt.Errorf("truncating snapshots: %w", err)
	}

	now := time.Now()
	rows := make([][]any, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []any{
			s.EntityID, s.Type, s.X, s.Y, s.Z,
			s.VelX, s.VelY, s.VelZ, s.Health, s.FallDistance, s.Age, s.Attributes, now,
		})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"entity_snapshots"},
		[]string{"entity_id", "type", "x", "y", "z", "vel_x", "vel_y", "vel_z", "health", "fall_distance", "age", "attributes", "saved_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copying %d snapshots: %w", len(snapshots), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing snapshots: %w", err)
	}
	return nil
}

// LoadAll returns every stored snapshot.
func (r *SnapshotRepository) LoadAll(ctx context.Context) ([]model.EntitySnapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT entity_id, type, x, y, z, vel_x, vel_y, vel_z, health, fall_distance, age, attributes
		FROM entity_snapshots
		ORDER BY entity_id`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var out []model.EntitySnapshot
	for rows.Next() {
		var s model.EntitySnapshot
		if err := rows.Scan(&s.EntityID, &s.Type, &s.X, &s.Y, &s.Z,
			&s.VelX, &s.VelY, &s.VelZ, &s.Health, &s.FallDistance, &s.Age, &s.Attributes); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return out, nil
}

// Delete removes one snapshot, reporting whether it existed.
func (r *SnapshotRepository) Delete(ctx context.Context, entityID int32) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM entity_snapshots WHERE entity_id = $1`, entityID)
	if err != nil {
		return false, fmt.Errorf("deleting snapshot of entity %d: %w", entityID, err)
	}
	return tag.RowsAffected() > 0, nil
}
