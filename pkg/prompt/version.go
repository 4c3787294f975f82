// Package prompt manages versioned agent prompts: one active version per
// agent, append-only history, operator-driven updates.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialVersion is assigned to the first prompt seeded for an agent.
const InitialVersion = "v1.0"

// NextVersion increments a prompt version string: v1.0 -> v1.1, v1.9 -> v1.10.
func NextVersion(current string) (string, error) {
	trimmed := strings.TrimPrefix(current, "v")
	if trimmed == current {
		return "", fmt.Errorf("invalid prompt version %q: missing v prefix", current)
	}
	major, minor, ok := strings.Cut(trimmed, ".")
	if !ok {
		return "", fmt.Errorf("invalid prompt version %q", current)
	}
	maj, err := strconv.Atoi(major)
	if err != nil || maj < 0 {
		return "", fmt.Errorf("invalid prompt version %q", current)
	}
	min, err := strconv.Atoi(minor)
	if err != nil || min < 0 {
		return "", fmt.Errorf("invalid prompt version %q", current)
	}
	return fmt.Sprintf("v%d.%d", maj, min+1), nil
}
