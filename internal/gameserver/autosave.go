package gameserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/mc2go/internal/model"
	"github.com/udisondev/mc2go/internal/world"
)

// SnapshotStore persists a full set of entity snapshots atomically.
type SnapshotStore interface {
	SaveAll(ctx context.Context, snapshots []model.EntitySnapshot) error
	LoadAll(ctx context.Context) ([]model.EntitySnapshot, error)
}

// Autosaver periodically writes every living entity to the store.
type Autosaver struct {
	world    *world.World
	store    SnapshotStore
	interval time.Duration
	log      *slog.Logger
}

// NewAutosaver creates an autosaver. interval <= 0 selects 5 minutes.
func NewAutosaver(w *world.World, store SnapshotStore, interval time.Duration, log *slog.Logger) *Autosaver {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if log == nil {
		log = slog.Default()
	}
	return &Autosaver{world: w, store: store, interval: interval, log: log}
}

// Run saves on every interval until the context is cancelled, then
// performs one final save with a short grace timeout.
func (a *Autosaver) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			graceCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := a.Save(graceCtx); err != nil {
				a.log.Error("final save failed", "error", err)
			}
			return ctx.Err()
		case <-ticker.C:
			if err := a.Save(ctx); err != nil {
				a.log.Error("autosave failed", "error", err)
			}
		}
	}
}

// Save writes one full snapshot set.
func (a *Autosaver) Save(ctx context.Context) error {
	start := time.Now()
	entities := a.world.Entities().Snapshot()

	snapshots := make([]model.EntitySnapshot, 0, len(entities))
	for _, b := range entities {
		living := b.GetLivingEntity()
		if living == nil || living.IsRemoved() {
			continue
		}
		snapshots = append(snapshots, model.SnapshotOf(living))
	}

	if err := a.store.SaveAll(ctx, snapshots); err != nil {
		return fmt.Errorf("saving %d entities: %w", len(snapshots), err)
	}
	a.log.Info("world saved", "entities", len(snapshots), "elapsed", time.Since(start))
	return nil
}

// RestoreWorld loads every stored snapshot into the world's arena.
// Unknown entity types are skipped with a warning, not a failure.
func RestoreWorld(ctx context.Context, w *world.World, store SnapshotStore, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}
	snapshots, err := store.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading snapshots: %w", err)
	}

	restored := 0
	for _, s := range snapshots {
		mob, err := s.Restore(w)
		if err != nil {
			log.Warn("skipping snapshot", "entity", s.EntityID, "error", err)
			continue
		}
		w.Entities().Spawn(mob)
		restored++
	}
	return restored, nil
}
