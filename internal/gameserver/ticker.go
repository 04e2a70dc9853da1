package gameserver

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/mc2go/internal/model"
	"github.com/udisondev/mc2go/internal/world"
)

// DefaultTickRate is 20 simulation steps per second.
const DefaultTickRate = 50 * time.Millisecond

// Ticker drives the simulation: every tick it fans entity updates out
// over a bounded worker group, then reports movement deltas to the
// broadcaster and reaps removed entities.
type Ticker struct {
	world       *world.World
	broadcaster model.Broadcaster
	rate        time.Duration
	workers     int
	log         *slog.Logger

	tickCount int64
}

// NewTicker creates a ticker over the given world. rate <= 0 selects the
// default 20 TPS; workers <= 0 selects per-entity concurrency capped at 8.
func NewTicker(w *world.World, broadcaster model.Broadcaster, rate time.Duration, workers int, log *slog.Logger) *Ticker {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	if workers <= 0 {
		workers = 8
	}
	if log == nil {
		log = slog.Default()
	}
	return &Ticker{
		world:       w,
		broadcaster: broadcaster,
		rate:        rate,
		workers:     workers,
		log:         log,
	}
}

// Run ticks until the context is cancelled. Always returns the context's
// error; a tick itself never fails the loop.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.rate)
	defer ticker.Stop()

	t.log.Info("simulation started", "rate", t.rate, "workers", t.workers)
	for {
		select {
		case <-ctx.Done():
			t.log.Info("simulation stopped", "ticks", t.tickCount)
			return ctx.Err()
		case <-ticker.C:
			t.RunTick(ctx)
		}
	}
}

// RunTick executes exactly one simulation step.
func (t *Ticker) RunTick(ctx context.Context) {
	start := time.Now()
	t.tickCount++

	entities := t.world.Entities().Snapshot()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for _, b := range entities {
		if b.GetEntity().IsRemoved() {
			continue
		}
		g.Go(func() error {
			b.Tick(gctx, b)
			return nil
		})
	}
	// Entity ticks never return errors; Wait only orders the barrier.
	_ = g.Wait()

	for _, b := range entities {
		t.report(b.GetEntity())
	}

	if reaped := t.world.Entities().Reap(); reaped > 0 {
		t.log.Debug("reaped entities", "count", reaped)
	}

	if elapsed := time.Since(start); elapsed > t.rate {
		t.log.Warn("slow tick", "tick", t.tickCount, "elapsed", elapsed, "budget", t.rate)
	}
}

// report emits movement and velocity updates for one entity.
func (t *Ticker) report(e *model.Entity) {
	pos := e.Pos()
	last := e.UpdateLastPos()
	if delta := pos.Sub(last); !delta.IsZero() {
		t.broadcaster.EntityMoved(e, delta, e.OnGround())
	}
	if e.ConsumeVelocityDirty() {
		t.broadcaster.EntityVelocity(e, e.Velocity())
	}
}

// TickCount returns the number of completed ticks.
func (t *Ticker) TickCount() int64 { return t.tickCount }
