// Package audit implements the hash-linked, optionally signed, append-only
// log of agent steps, persisted in the relational store.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/secopshq/caseflow/pkg/models"
)

// hashTimeLayout is RFC3339 with microsecond precision. Timestamps are
// truncated to microseconds before hashing because PostgreSQL timestamptz
// stores microseconds; anything finer would break verification after a
// round-trip through the database.
const hashTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// CanonicalStepJSON renders the hashable fields of a step as canonical JSON:
// sorted keys, compact separators, no trailing whitespace. Hash and signature
// are excluded (they carry `json:"-"`); nested values are normalized by a
// round-trip through encoding/json so hashes are stable across platforms.
func CanonicalStepJSON(step *models.AgentStep) ([]byte, error) {
	raw, err := json.Marshal(step)
	if err != nil {
		return nil, fmt.Errorf("marshal step: %w", err)
	}

	var normalized map[string]any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("normalize step: %w", err)
	}

	// Pin the timestamp encoding to microsecond precision in UTC.
	normalized["timestamp"] = step.Timestamp.UTC().Truncate(time.Microsecond).Format(hashTimeLayout)

	// encoding/json sorts map keys and emits no extra whitespace, which is
	// exactly the canonical form.
	canonical, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("canonicalize step: %w", err)
	}
	return canonical, nil
}

// ComputeHash derives the chain hash for a step: SHA-256 of the canonical
// JSON, with the previous hash folded in as sha256(prev || "||" || canonical)
// when present.
func ComputeHash(canonical []byte, prevHash *string) string {
	var sum [32]byte
	if prevHash == nil {
		sum = sha256.Sum256(canonical)
	} else {
		payload := make([]byte, 0, len(*prevHash)+2+len(canonical))
		payload = append(payload, *prevHash...)
		payload = append(payload, "||"...)
		payload = append(payload, canonical...)
		sum = sha256.Sum256(payload)
	}
	return hex.EncodeToString(sum[:])
}

// HashStep canonicalizes a step and computes its chain hash in one call.
func HashStep(step *models.AgentStep) (string, error) {
	canonical, err := CanonicalStepJSON(step)
	if err != nil {
		return "", err
	}
	return ComputeHash(canonical, step.PrevHash), nil
}

// VerifySteps walks steps in insertion order, recomputing each hash and
// checking linkage against the prior step's hash. A mismatch is reported in
// Errors, never returned as a call failure.
func VerifySteps(steps []*models.AgentStep) models.ChainVerification {
	result := models.ChainVerification{
		Valid:      true,
		TotalSteps: len(steps),
		Errors:     []string{},
	}

	var prevHash *string
	for i, step := range steps {
		ok := true

		switch {
		case i == 0 && step.PrevHash != nil:
			result.Errors = append(result.Errors,
				fmt.Sprintf("step %d (%s): first step must have null prev_hash", i, step.StepID))
			ok = false
		case i > 0 && (step.PrevHash == nil || prevHash == nil || *step.PrevHash != *prevHash):
			result.Errors = append(result.Errors,
				fmt.Sprintf("step %d (%s): prev_hash does not match hash of step %d", i, step.StepID, i-1))
			ok = false
		}

		recomputed, err := HashStep(step)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("step %d (%s): cannot recompute hash: %v", i, step.StepID, err))
			ok = false
		} else if recomputed != step.Hash {
			result.Errors = append(result.Errors,
				fmt.Sprintf("step %d (%s): hash mismatch", i, step.StepID))
			ok = false
		}

		if ok {
			result.VerifiedSteps++
		}
		h := step.Hash
		prevHash = &h
	}

	result.Valid = len(result.Errors) == 0
	return result
}
