package audit

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// SignaturePrefix marks ed25519 signatures on audit rows.
const SignaturePrefix = "ed25519:"

// Signer signs audit step hashes with a process-held Ed25519 key.
type Signer struct {
	priv ed25519.PrivateKey
}

// NewSigner wraps an existing private key.
func NewSigner(priv ed25519.PrivateKey) *Signer {
	return &Signer{priv: priv}
}

// LoadSigner reads an Ed25519 key from disk. The file holds either a
// hex-encoded 32-byte seed or a hex-encoded 64-byte private key.
func LoadSigner(path string) (*Signer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signing key %s: %w", path, err)
	}

	decoded, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode signing key %s: %w", path, err)
	}

	switch len(decoded) {
	case ed25519.SeedSize:
		return &Signer{priv: ed25519.NewKeyFromSeed(decoded)}, nil
	case ed25519.PrivateKeySize:
		return &Signer{priv: ed25519.PrivateKey(decoded)}, nil
	default:
		return nil, fmt.Errorf("signing key %s: unexpected length %d", path, len(decoded))
	}
}

// Sign signs the ASCII hash and returns "ed25519:" + hex(signature).
func (s *Signer) Sign(hash string) (string, error) {
	if len(s.priv) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("signer not initialized")
	}
	sig := ed25519.Sign(s.priv, []byte(hash))
	return SignaturePrefix + hex.EncodeToString(sig), nil
}

// Verify checks a signature produced by Sign against this signer's public key.
func (s *Signer) Verify(hash, signature string) bool {
	if !strings.HasPrefix(signature, SignaturePrefix) {
		return false
	}
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, SignaturePrefix))
	if err != nil {
		return false
	}
	pub, ok := s.priv.Public().(ed25519.PublicKey)
	if !ok {
		return false
	}
	return ed25519.Verify(pub, []byte(hash), sig)
}
