package knowledge

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeID(t *testing.T) {
	a := KnowledgeID("pipeline", "fact", "attacker used 10.0.0.1")
	b := KnowledgeID("pipeline", "fact", "attacker used 10.0.0.1")
	assert.Equal(t, a, b, "content-addressed: same content, same id")
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, KnowledgeID("pipeline", "profile", "attacker used 10.0.0.1"))
	assert.NotEqual(t, a, KnowledgeID("alice", "fact", "attacker used 10.0.0.1"))
}

func TestVectorID(t *testing.T) {
	kid := KnowledgeID("pipeline", "fact", "some text")

	vid := VectorID(kid)
	parsed, err := uuid.Parse(vid)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, uuid.RFC4122, parsed.Variant())

	assert.Equal(t, vid, VectorID(kid), "deterministic")
	assert.NotEqual(t, vid, VectorID(KnowledgeID("pipeline", "fact", "other text")))

	// Non-hex ids still map to a valid UUID.
	odd := VectorID("not-hex-at-all")
	_, err = uuid.Parse(odd)
	require.NoError(t, err)
}
