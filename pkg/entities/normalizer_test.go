package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/models"
)

func TestNormalizeValueUser(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "alice", "alice"},
		{"uppercase", "Alice", "alice"},
		{"nt domain prefix", `CORP\Alice`, "alice"},
		{"email local part", "Alice@corp.example.com", "alice"},
		{"domain prefix and email", `CORP\alice@corp.example`, "alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NormalizeValue(models.EntityUser, tt.value, "user")
			assert.Equal(t, tt.want, e.Value)
			assert.True(t, e.ValidationPassed)
			assert.Equal(t, tt.value, e.Metadata["original_value"])
		})
	}
}

func TestNormalizeValueIP(t *testing.T) {
	valid := NormalizeValue(models.EntityIP, "10.0.0.1", "src_ip")
	assert.True(t, valid.ValidationPassed)
	assert.Equal(t, 1.0, valid.Confidence)

	v6 := NormalizeValue(models.EntityIP, "2001:db8::1", "src_ip")
	assert.True(t, v6.ValidationPassed)

	invalid := NormalizeValue(models.EntityIP, "999.1.2.3", "src_ip")
	assert.False(t, invalid.ValidationPassed, "invalid IPs are retained, flagged")
	assert.Equal(t, 0.5, invalid.Confidence)
	assert.Equal(t, "999.1.2.3", invalid.Value)
}

func TestNormalizeValueHost(t *testing.T) {
	e := NormalizeValue(models.EntityHost, "WS-0042.Corp.Example.", "host")
	assert.Equal(t, "ws-0042.corp.example", e.Value, "FQDN preserved, lowercased, trailing dot stripped")
}

func TestNormalizeValueDomain(t *testing.T) {
	e := NormalizeValue(models.EntityDomain, ".Evil.Example.com", "domain")
	assert.Equal(t, "evil.example.com", e.Value)
	assert.True(t, e.ValidationPassed)

	bad := NormalizeValue(models.EntityDomain, "not a domain!", "domain")
	assert.False(t, bad.ValidationPassed)
	assert.Equal(t, 0.5, bad.Confidence)
}

func TestNormalizeValueHash(t *testing.T) {
	md5 := NormalizeValue(models.EntityHash, "D41D8CD98F00B204E9800998ECF8427E", "file_hash")
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", md5.Value)
	assert.True(t, md5.ValidationPassed)

	junk := NormalizeValue(models.EntityHash, "zzzz", "file_hash")
	assert.False(t, junk.ValidationPassed)
}

func TestNormalizeFieldResolution(t *testing.T) {
	t.Run("first matching field wins", func(t *testing.T) {
		fields := map[string]any{
			"username":      "bob",
			"user":          `CORP\Alice`,
			"email_address": "carol@example.com",
		}
		entities := Normalize(fields)
		require.Len(t, entities, 1)
		assert.Equal(t, "alice", entities[0].Value, "user outranks username and email_address")
		assert.Equal(t, "user", entities[0].OriginalField)
	})

	t.Run("nested path with array takes first element", func(t *testing.T) {
		fields := map[string]any{
			"user_entities": []any{
				map[string]any{"email_address": "Dave@corp.example"},
				map[string]any{"email_address": "eve@corp.example"},
			},
		}
		entities := Normalize(fields)
		require.Len(t, entities, 1)
		assert.Equal(t, "dave", entities[0].Value)
		assert.Equal(t, "user_entities.email_address", entities[0].OriginalField)
	})

	t.Run("array leaf takes first element", func(t *testing.T) {
		fields := map[string]any{"src_ip": []any{"10.0.0.1", "10.0.0.2"}}
		entities := Normalize(fields)
		require.Len(t, entities, 1)
		assert.Equal(t, "10.0.0.1", entities[0].Value)
	})

	t.Run("all types resolved together", func(t *testing.T) {
		fields := map[string]any{
			"user":   "alice",
			"src_ip": "10.0.0.1",
			"host":   "WS-0042",
			"domain": "corp.example",
			"sha256": "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		}
		entities := Normalize(fields)
		require.Len(t, entities, 5)

		bag := Bag(entities)
		assert.Equal(t, []string{"alice"}, bag[models.EntityUser])
		assert.Equal(t, []string{"10.0.0.1"}, bag[models.EntityIP])
		assert.Equal(t, []string{"ws-0042"}, bag[models.EntityHost])
	})

	t.Run("empty fields produce nothing", func(t *testing.T) {
		assert.Empty(t, Normalize(map[string]any{"unrelated": "x", "user": "  "}))
	})
}

func TestDedup(t *testing.T) {
	entities := []models.Entity{
		{Type: models.EntityUser, Value: "alice", OriginalField: "user"},
		{Type: models.EntityUser, Value: "alice", OriginalField: "username"},
		{Type: models.EntityIP, Value: "alice"},
	}
	out := Dedup(entities)
	require.Len(t, out, 2, "dedup is per type, on normalized value")
	assert.Equal(t, "user", out[0].OriginalField, "first occurrence wins")
}
