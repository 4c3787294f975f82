package models

// EntityType classifies a normalized entity value.
type EntityType string

// Known entity types.
const (
	EntityUser   EntityType = "user"
	EntityIP     EntityType = "ip"
	EntityHost   EntityType = "host"
	EntityDomain EntityType = "domain"
	EntityHash   EntityType = "hash"
)

// Entity is one normalized entity extracted from raw case data.
type Entity struct {
	Type             EntityType        `json:"type"`
	Value            string            `json:"value"`
	OriginalField    string            `json:"original_field,omitempty"`
	Confidence       float64           `json:"confidence"`
	ValidationPassed bool              `json:"validation_passed"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// EntityBag is the canonical per-case entity collection, keyed by type.
// Values are normalized and deduplicated.
type EntityBag map[EntityType][]string

// Add appends a value to the bag if not already present.
func (b EntityBag) Add(t EntityType, value string) {
	for _, v := range b[t] {
		if v == value {
			return
		}
	}
	b[t] = append(b[t], value)
}

// IsEmpty reports whether the bag holds no values at all.
func (b EntityBag) IsEmpty() bool {
	for _, vs := range b {
		if len(vs) > 0 {
			return false
		}
	}
	return true
}

// ToStringMap converts the bag to the plain map shape stored on the case row.
func (b EntityBag) ToStringMap() map[string][]string {
	out := make(map[string][]string, len(b))
	for t, vs := range b {
		out[string(t)] = append([]string(nil), vs...)
	}
	return out
}

// BagFromStringMap rebuilds an EntityBag from the stored case-row shape.
func BagFromStringMap(m map[string][]string) EntityBag {
	bag := make(EntityBag, len(m))
	for t, vs := range m {
		bag[EntityType(t)] = append([]string(nil), vs...)
	}
	return bag
}

// IOCSet groups indicators of compromise extracted during investigation.
type IOCSet struct {
	IPs     []string `json:"ips"`
	Users   []string `json:"users"`
	Hosts   []string `json:"hosts"`
	Domains []string `json:"domains"`
	Hashes  []string `json:"hashes"`
}

// IsEmpty reports whether no indicators were collected.
func (s IOCSet) IsEmpty() bool {
	return len(s.IPs) == 0 && len(s.Users) == 0 && len(s.Hosts) == 0 &&
		len(s.Domains) == 0 && len(s.Hashes) == 0
}
