package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/secopshq/caseflow/test/database"
)

func newSeededStore(t *testing.T) *Store {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	require.NoError(t, store.SeedDefaults(context.Background()))
	return store
}

func TestStoreSeedDefaults(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	for agentName := range DefaultPrompts {
		info, err := store.Active(ctx, agentName)
		require.NoError(t, err, "agent %s should be seeded", agentName)
		assert.Equal(t, InitialVersion, info.Version)
		assert.Equal(t, "system", info.ModifiedBy)
		assert.True(t, info.IsActive)
		assert.NotEmpty(t, info.Content)
	}

	// Seeding again must not add versions or clobber edits.
	_, err := store.Update(ctx, "triage", "customized triage prompt", "alice")
	require.NoError(t, err)
	require.NoError(t, store.SeedDefaults(ctx))

	info, err := store.Active(ctx, "triage")
	require.NoError(t, err)
	assert.Equal(t, "customized triage prompt", info.Content)
}

func TestStoreUpdateCreatesNewActiveVersion(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	updated, err := store.Update(ctx, "enrichment", "focus on lateral movement", "bob")
	require.NoError(t, err)
	assert.Equal(t, "v1.1", updated.Version)
	assert.True(t, updated.IsActive)

	active, err := store.Active(ctx, "enrichment")
	require.NoError(t, err)
	assert.Equal(t, "v1.1", active.Version)
	assert.Equal(t, "focus on lateral movement", active.Content)
	assert.Equal(t, "bob", active.ModifiedBy)

	// The original version is still readable but no longer active.
	v1, err := store.Version(ctx, "enrichment", InitialVersion)
	require.NoError(t, err)
	assert.False(t, v1.IsActive)
	assert.NotEmpty(t, v1.Content)

	versions, err := store.Versions(ctx, "enrichment")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "v1.1", versions[0].Version)
	assert.Empty(t, versions[0].Content, "version listing omits content")
}

func TestStoreUnknownAgent(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	_, err := store.Active(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Version(ctx, "triage", "v9.9")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Versions(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateBootstrapsNewAgent(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	// First content for an agent outside the seeded roster lands as v1.0.
	info, err := store.Update(ctx, "custom_hunter", "hunt for living-off-the-land activity", "alice")
	require.NoError(t, err)
	assert.Equal(t, InitialVersion, info.Version)
	assert.True(t, info.IsActive)

	active, err := store.Active(ctx, "custom_hunter")
	require.NoError(t, err)
	assert.Equal(t, "hunt for living-off-the-land activity", active.Content)
	assert.Equal(t, "alice", active.ModifiedBy)

	// Subsequent updates version normally.
	next, err := store.Update(ctx, "custom_hunter", "revised hunt guidance", "alice")
	require.NoError(t, err)
	assert.Equal(t, "v1.1", next.Version)
}
