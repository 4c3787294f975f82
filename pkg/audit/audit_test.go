package audit

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/models"
)

func testStep(caseID string, seq int) *models.AgentStep {
	return &models.AgentStep{
		Version:   models.StepVersion,
		StepID:    "step-" + string(rune('a'+seq)),
		CaseID:    caseID,
		Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC),
		Seq:       seq,
		Agent: models.AgentInfo{
			Name:  "triage",
			Role:  "Initial threat assessment",
			Model: "gpt-4o",
		},
		PromptVersion: "v1.0",
		AutonomyLevel: models.AutonomySupervised,
		Inputs:        map[string]any{"case_id": caseID, "severity": "high"},
		Plan:          []string{"classify severity", "extract entities"},
		Outputs:       map[string]any{"priority": 1},
		TokenUsage:    models.TokenUsage{InputTokens: 900, OutputTokens: 150, TotalTokens: 1050, CostUSD: 0.0042},
	}
}

// chainOf links n steps the way Append does: seq order, prev_hash from the
// prior step's hash.
func chainOf(t *testing.T, n int) []*models.AgentStep {
	t.Helper()
	steps := make([]*models.AgentStep, 0, n)
	var prev *string
	for i := 0; i < n; i++ {
		step := testStep("case-123", i)
		step.PrevHash = prev
		hash, err := HashStep(step)
		require.NoError(t, err)
		step.Hash = hash
		steps = append(steps, step)
		h := hash
		prev = &h
	}
	return steps
}

func TestCanonicalStepJSON(t *testing.T) {
	t.Run("deterministic across calls", func(t *testing.T) {
		step := testStep("case-123", 0)
		first, err := CanonicalStepJSON(step)
		require.NoError(t, err)
		second, err := CanonicalStepJSON(step)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("excludes hash and signature", func(t *testing.T) {
		step := testStep("case-123", 0)
		before, err := CanonicalStepJSON(step)
		require.NoError(t, err)

		step.Hash = "deadbeef"
		step.Signature = "ed25519:00"
		after, err := CanonicalStepJSON(step)
		require.NoError(t, err)
		assert.Equal(t, before, after, "hash and signature must not affect the canonical form")
	})

	t.Run("timestamp pinned to microseconds", func(t *testing.T) {
		step := testStep("case-123", 0)
		canonical, err := CanonicalStepJSON(step)
		require.NoError(t, err)
		assert.Contains(t, string(canonical), `"timestamp":"2026-03-14T09:30:00.123456Z"`)

		// Sub-microsecond differences hash identically.
		truncated := testStep("case-123", 0)
		truncated.Timestamp = step.Timestamp.Truncate(time.Microsecond)
		other, err := CanonicalStepJSON(truncated)
		require.NoError(t, err)
		assert.Equal(t, canonical, other)
	})

	t.Run("keys are sorted", func(t *testing.T) {
		step := testStep("case-123", 0)
		canonical, err := CanonicalStepJSON(step)
		require.NoError(t, err)

		s := string(canonical)
		assert.True(t, strings.Index(s, `"agent"`) < strings.Index(s, `"case_id"`))
		assert.True(t, strings.Index(s, `"case_id"`) < strings.Index(s, `"version"`))
	})
}

func TestComputeHash(t *testing.T) {
	canonical := []byte(`{"a":1}`)

	noPrev := ComputeHash(canonical, nil)
	assert.Len(t, noPrev, 64)

	prev := "abc123"
	withPrev := ComputeHash(canonical, &prev)
	assert.Len(t, withPrev, 64)
	assert.NotEqual(t, noPrev, withPrev, "prev_hash must be folded into the digest")

	// Same inputs, same digest.
	assert.Equal(t, withPrev, ComputeHash(canonical, &prev))
}

func TestVerifySteps(t *testing.T) {
	t.Run("empty chain is valid", func(t *testing.T) {
		result := VerifySteps(nil)
		assert.True(t, result.Valid)
		assert.Zero(t, result.TotalSteps)
		assert.Empty(t, result.Errors)
	})

	t.Run("intact chain verifies", func(t *testing.T) {
		steps := chainOf(t, 3)
		result := VerifySteps(steps)
		assert.True(t, result.Valid)
		assert.Equal(t, 3, result.TotalSteps)
		assert.Equal(t, 3, result.VerifiedSteps)
		assert.Empty(t, result.Errors)
	})

	t.Run("tampered payload detected", func(t *testing.T) {
		steps := chainOf(t, 3)
		steps[1].Outputs["priority"] = 99

		result := VerifySteps(steps)
		assert.False(t, result.Valid)
		assert.Equal(t, 2, result.VerifiedSteps)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "hash mismatch")
	})

	t.Run("broken linkage detected", func(t *testing.T) {
		steps := chainOf(t, 3)
		bogus := "0000000000000000"
		steps[2].PrevHash = &bogus

		result := VerifySteps(steps)
		assert.False(t, result.Valid)
		// The rewritten prev_hash breaks both linkage and the row's own hash.
		assert.Equal(t, 2, result.VerifiedSteps)
		assert.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "prev_hash does not match")
	})

	t.Run("first step must not carry prev_hash", func(t *testing.T) {
		steps := chainOf(t, 1)
		phantom := "ffff"
		steps[0].PrevHash = &phantom

		result := VerifySteps(steps)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors[0], "null prev_hash")
	})
}

func TestSigner(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer := NewSigner(priv)

	t.Run("sign and verify roundtrip", func(t *testing.T) {
		sig, err := signer.Sign("a1b2c3")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(sig, SignaturePrefix))
		assert.True(t, signer.Verify("a1b2c3", sig))
		assert.False(t, signer.Verify("tampered", sig))
	})

	t.Run("rejects malformed signatures", func(t *testing.T) {
		assert.False(t, signer.Verify("a1b2c3", "not-a-signature"))
		assert.False(t, signer.Verify("a1b2c3", SignaturePrefix+"zzzz"))
	})

	t.Run("load from seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.key")
		require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString(priv.Seed())+"\n"), 0o600))

		loaded, err := LoadSigner(path)
		require.NoError(t, err)

		sig, err := loaded.Sign("a1b2c3")
		require.NoError(t, err)
		assert.True(t, signer.Verify("a1b2c3", sig), "seed-loaded key must match the original")
	})

	t.Run("load rejects wrong length", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.key")
		require.NoError(t, os.WriteFile(path, []byte("abcd"), 0o600))

		_, err := LoadSigner(path)
		assert.ErrorContains(t, err, "unexpected length")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSigner(filepath.Join(t.TempDir(), "nope.key"))
		assert.Error(t, err)
	})
}
