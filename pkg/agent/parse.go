package agent

import (
	"encoding/json"
	"errors"
	"strings"
)

// ParseJSON extracts the JSON object from an LLM response. Models wrap
// their output in markdown fences or prose more often than not, so the
// parser strips fences and falls back to the outermost brace pair before
// giving up.
func ParseJSON(text string) (map[string]any, error) {
	candidate := strings.TrimSpace(text)

	if strings.HasPrefix(candidate, "```") {
		candidate = strings.TrimPrefix(candidate, "```json")
		candidate = strings.TrimPrefix(candidate, "```")
		if i := strings.LastIndex(candidate, "```"); i >= 0 {
			candidate = candidate[:i]
		}
		candidate = strings.TrimSpace(candidate)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(candidate), &out); err == nil {
		return out, nil
	}

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(candidate[start:end+1]), &out); err == nil {
			return out, nil
		}
	}
	return nil, errors.New("response is not a JSON object")
}
