package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/models"
)

func TestNextVersion(t *testing.T) {
	tests := []struct {
		name    string
		current string
		want    string
		wantErr bool
	}{
		{name: "initial bump", current: "v1.0", want: "v1.1"},
		{name: "minor rollover", current: "v1.9", want: "v1.10"},
		{name: "double digit minor", current: "v1.10", want: "v1.11"},
		{name: "higher major", current: "v2.3", want: "v2.4"},
		{name: "missing prefix", current: "1.0", wantErr: true},
		{name: "missing minor", current: "v1", wantErr: true},
		{name: "non-numeric", current: "vA.B", wantErr: true},
		{name: "empty", current: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextVersion(tt.current)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultPrompts(t *testing.T) {
	// Every pipeline stage plus the knowledge curator has a seeded prompt.
	expected := make([]string, 0, len(models.PipelineStages)+1)
	for _, stage := range models.PipelineStages {
		expected = append(expected, string(stage))
	}
	expected = append(expected, "knowledge")

	for _, name := range expected {
		content, ok := DefaultPrompts[name]
		assert.True(t, ok, "missing default prompt for %s", name)
		assert.NotEmpty(t, content)
	}
	assert.Len(t, DefaultPrompts, len(expected))
}
