// Package entities turns raw case fields into canonical, validated
// entity records. All ad-hoc field naming from upstream systems is
// centralized here: the rest of the pipeline only ever sees normalized
// values.
package entities

import (
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/secopshq/caseflow/pkg/models"
)

// fieldOrder is the per-type field-resolution list; the first present
// field wins. Dotted paths descend into nested objects; arrays take their
// first element.
var fieldOrder = map[models.EntityType][]string{
	models.EntityUser: {
		"user",
		"username",
		"user_name",
		"email_address",
		"source_user_entity_id",
		"user_entities.email_address",
		"user_entities.username",
		"user_entity.name",
	},
	models.EntityHost: {
		"host",
		"hostname",
		"host_name",
		"device_name",
		"src_host",
		"host_entities.hostname",
		"host_entity.name",
	},
	models.EntityIP: {
		"ip",
		"ip_address",
		"src_ip",
		"source_ip",
		"dst_ip",
		"destination_ip",
		"ip_entities.address",
		"ip_entity.address",
	},
	models.EntityDomain: {
		"domain",
		"domain_name",
		"dns_domain",
		"url_domain",
		"domain_entities.name",
	},
	models.EntityHash: {
		"hash",
		"file_hash",
		"sha256",
		"md5",
		"file_entities.sha256",
	},
}

var (
	domainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)
	hashPattern   = regexp.MustCompile(`^[a-f0-9]{32}$|^[a-f0-9]{40}$|^[a-f0-9]{64}$`)
)

// Normalize resolves and normalizes one entity per type from raw case
// fields, following the per-type field order.
func Normalize(fields map[string]any) []models.Entity {
	var out []models.Entity
	// Fixed type order keeps output deterministic for identical input.
	for _, t := range []models.EntityType{
		models.EntityUser, models.EntityIP, models.EntityHost,
		models.EntityDomain, models.EntityHash,
	} {
		for _, path := range fieldOrder[t] {
			raw, ok := lookup(fields, path)
			if !ok {
				continue
			}
			value := strings.TrimSpace(stringify(raw))
			if value == "" {
				continue
			}
			out = append(out, NormalizeValue(t, value, path))
			break
		}
	}
	return out
}

// NormalizeValue applies the per-type normalization rules to one value.
// The original value is preserved in metadata.
func NormalizeValue(t models.EntityType, value, originalField string) models.Entity {
	entity := models.Entity{
		Type:             t,
		OriginalField:    originalField,
		Confidence:       1.0,
		ValidationPassed: true,
		Metadata:         map[string]string{"original_value": value},
	}

	switch t {
	case models.EntityUser:
		entity.Value = normalizeUser(value)
	case models.EntityHost:
		entity.Value = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(value), "."))
	case models.EntityIP:
		entity.Value = strings.TrimSpace(value)
		if net.ParseIP(entity.Value) == nil {
			entity.ValidationPassed = false
			entity.Confidence = 0.5
		}
	case models.EntityDomain:
		entity.Value = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "."))
		if !domainPattern.MatchString(entity.Value) {
			entity.ValidationPassed = false
			entity.Confidence = 0.5
		}
	case models.EntityHash:
		entity.Value = strings.ToLower(strings.TrimSpace(value))
		if !hashPattern.MatchString(entity.Value) {
			entity.ValidationPassed = false
			entity.Confidence = 0.5
		}
	default:
		entity.Value = strings.ToLower(strings.TrimSpace(value))
	}
	return entity
}

// normalizeUser strips the NT domain prefix or email domain suffix and
// lowercases: "CORP\alice" -> "alice", "Alice@corp.example" -> "alice".
func normalizeUser(value string) string {
	v := strings.TrimSpace(value)
	if i := strings.LastIndex(v, `\`); i >= 0 {
		v = v[i+1:]
	}
	if i := strings.Index(v, "@"); i > 0 {
		v = v[:i]
	}
	return strings.ToLower(v)
}

// Dedup removes duplicate entities within each type, keyed on the
// normalized value, keeping the first occurrence.
func Dedup(entities []models.Entity) []models.Entity {
	seen := make(map[string]bool, len(entities))
	out := make([]models.Entity, 0, len(entities))
	for _, e := range entities {
		key := fmt.Sprintf("%s|%s", e.Type, e.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// Bag collects normalized entities into the per-case entity bag.
func Bag(entities []models.Entity) models.EntityBag {
	bag := models.EntityBag{}
	for _, e := range entities {
		if e.Value != "" {
			bag.Add(e.Type, e.Value)
		}
	}
	return bag
}

// lookup resolves a possibly dotted path against raw case fields. Arrays
// encountered along the way contribute their first element.
func lookup(fields map[string]any, path string) (any, bool) {
	var current any = fields
	for _, part := range strings.Split(path, ".") {
		current = firstElement(current)
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	current = firstElement(current)
	return current, current != nil
}

func firstElement(v any) any {
	switch arr := v.(type) {
	case []any:
		if len(arr) == 0 {
			return nil
		}
		return arr[0]
	case []string:
		if len(arr) == 0 {
			return nil
		}
		return arr[0]
	default:
		return v
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case float64, int, int64, bool:
		return fmt.Sprintf("%v", s)
	default:
		return ""
	}
}
