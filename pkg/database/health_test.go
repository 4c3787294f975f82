package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/test/util"
)

func TestHealthReportsPoolAndMigrationState(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	health, err := Health(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Positive(t, health.MaxOpenConns)
	// No migration bookkeeping in an ent-created test schema.
	assert.Zero(t, health.MigrationVersion)

	// With migrate's bookkeeping present, the applied version surfaces.
	_, err = db.ExecContext(ctx,
		`CREATE TABLE schema_migrations (version bigint NOT NULL, dirty boolean NOT NULL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO schema_migrations VALUES (1, false)`)
	require.NoError(t, err)

	health, err = Health(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.EqualValues(t, 1, health.MigrationVersion)
	assert.False(t, health.MigrationDirty)

	// A dirty migration degrades the status.
	_, err = db.ExecContext(ctx, `UPDATE schema_migrations SET dirty = true`)
	require.NoError(t, err)

	health, err = Health(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "degraded", health.Status)
	assert.True(t, health.MigrationDirty)
}
