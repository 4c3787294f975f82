// Package knowledge stores and retrieves durable knowledge items:
// embedded into the vector store, mirrored as graph nodes.
package knowledge

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// KnowledgeID derives the content-addressed item id: SHA-256 over
// author, kind and text. Re-ingesting identical content yields the same
// id, making ingestion idempotent.
func KnowledgeID(author, kind, text string) string {
	sum := sha256.Sum256([]byte(author + "|" + kind + "|" + text))
	return hex.EncodeToString(sum[:])
}

// VectorID shapes a knowledge id into the UUID the vector store requires
// as row key: the first 16 digest bytes with the RFC 4122 version and
// variant bits forced. The original knowledge_id stays in the payload.
func VectorID(knowledgeID string) string {
	raw, err := hex.DecodeString(knowledgeID)
	if err != nil || len(raw) < 16 {
		sum := sha256.Sum256([]byte(knowledgeID))
		raw = sum[:]
	}

	var u uuid.UUID
	copy(u[:], raw[:16])
	u[6] = (u[6] & 0x0f) | 0x40
	u[8] = (u[8] & 0x3f) | 0x80
	return u.String()
}
