package siem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/models"
)

func defaultFilter() *Filter {
	return NewFilter(config.EligibilityConfig{
		RulePrefixes: []string{"fact", "prof"},
		RuleTypes:    []string{"factFeature", "profileFeature"},
	})
}

func detection(id, ruleName string) models.Detection {
	return models.Detection{
		DetectionID:     id,
		RuleName:        ruleName,
		EventFilter:     "src_user=alice",
		EventFromTimeMs: 1_700_000_000_000,
		EventToTimeMs:   1_700_000_600_000,
	}
}

func TestFilterApply(t *testing.T) {
	f := defaultFilter()

	detections := []models.Detection{
		detection("d1", "fact_bruteforce"),
		detection("d2", "profile_anomaly"),
		detection("d3", "behavioral_oddness"),
		detection("d4", "anomaly_sigma"),
	}

	eligible, summary := f.Apply(detections)

	require := assert.New(t)
	require.Len(eligible, 2)
	require.Equal("d1", eligible[0].DetectionID)
	require.Equal("d2", eligible[1].DetectionID)

	require.Equal(4, summary.Total)
	require.Equal(2, summary.Kept)
	require.Equal(2, summary.Skipped)
	require.Equal(1, summary.ByRule["fact_bruteforce"])
	require.Equal(1, summary.ByRule["profile_anomaly"])
}

func TestFilterEligible(t *testing.T) {
	f := defaultFilter()

	t.Run("rule type qualifies regardless of name", func(t *testing.T) {
		d := detection("d1", "behavioral_oddness")
		d.RuleType = "FactFeature"
		assert.True(t, f.Eligible(d), "rule type matching is case-insensitive")
	})

	t.Run("rule name matching is case-insensitive", func(t *testing.T) {
		assert.True(t, f.Eligible(detection("d1", "FACT_login_spike")))
	})

	t.Run("empty event filter is dropped", func(t *testing.T) {
		d := detection("d1", "fact_bruteforce")
		d.EventFilter = "   "
		assert.False(t, f.Eligible(d))
	})

	t.Run("non-positive time bounds are dropped", func(t *testing.T) {
		from := detection("d1", "fact_bruteforce")
		from.EventFromTimeMs = 0
		assert.False(t, f.Eligible(from))

		to := detection("d2", "fact_bruteforce")
		to.EventToTimeMs = -1
		assert.False(t, f.Eligible(to))
	})
}
