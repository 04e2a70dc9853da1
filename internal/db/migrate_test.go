package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/mc2go/internal/db/migrations"
)

// The migrations are embedded; a malformed or missing file would only
// surface at server boot otherwise.
func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries, "at least one migration must be embedded")

	for _, name := range entries {
		raw, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)

		sql := string(raw)
		assert.Contains(t, sql, "-- +goose Up", name)
		assert.Contains(t, sql, "-- +goose Down", name)
	}
}

func TestSnapshotTableCoversSnapshotFields(t *testing.T) {
	raw, err := fs.ReadFile(migrations.FS, "00001_create_entity_snapshots.sql")
	require.NoError(t, err)
	sql := string(raw)

	for _, column := range []string{
		"entity_id", "type", "x", "y", "z",
		"vel_x", "vel_y", "vel_z",
		"health", "fall_distance", "age", "attributes",
	} {
		assert.True(t, strings.Contains(sql, column), "column %s missing", column)
	}
}
