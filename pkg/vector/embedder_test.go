package vector

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/config"
)

func TestHashEmbedder(t *testing.T) {
	e := NewHashEmbedder(384)
	ctx := context.Background()

	a, err := e.Embed(ctx, "credential stuffing from 10.0.0.1")
	require.NoError(t, err)
	require.Len(t, a, 384)

	b, err := e.Embed(ctx, "credential stuffing from 10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same text, same vector")

	c, err := e.Embed(ctx, "different text")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	var norm float64
	for _, v := range a {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-3, "vectors are unit length")
}

func TestHTTPEmbedder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "text-embedding-3-small", req["model"])

		resp := map[string]any{
			"data": []map[string]any{{"embedding": []float32{0.1, 0.2, 0.3}}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	e := NewHTTPEmbedder(config.EmbeddingConfig{
		BaseURL: srv.URL,
		Model:   "text-embedding-3-small",
		Dim:     3,
	})

	vec, err := e.Embed(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "[1,0.5,-0.25]", formatVector([]float32{1, 0.5, -0.25}))
	assert.Equal(t, "[]", formatVector(nil))
}
