package world

import (
	"log/slog"

	"github.com/udisondev/mc2go/internal/game/geo"
	"github.com/udisondev/mc2go/internal/model"
)

// LogBroadcaster reports movement deltas to the structured log. It
// stands in for a network replication layer: the simulation only needs
// something that consumes post-tick deltas.
type LogBroadcaster struct {
	log *slog.Logger
}

// NewLogBroadcaster wraps the given logger, slog.Default when nil.
func NewLogBroadcaster(log *slog.Logger) *LogBroadcaster {
	if log == nil {
		log = slog.Default()
	}
	return &LogBroadcaster{log: log}
}

// EntityMoved implements model.Broadcaster.
func (b *LogBroadcaster) EntityMoved(e *model.Entity, delta geo.Vec3, onGround bool) {
	b.log.Debug("entity moved",
		"id", e.ID(),
		"type", e.Type().Name,
		"dx", delta.X, "dy", delta.Y, "dz", delta.Z,
		"on_ground", onGround)
}

// EntityVelocity implements model.Broadcaster.
func (b *LogBroadcaster) EntityVelocity(e *model.Entity, velocity geo.Vec3) {
	b.log.Debug("entity velocity",
		"id", e.ID(),
		"type", e.Type().Name,
		"vx", velocity.X, "vy", velocity.Y, "vz", velocity.Z)
}
