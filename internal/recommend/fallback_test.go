package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFiltersByBudget(t *testing.T) {
	got := FallbackInterventions(200000)

	require.Len(t, got, 5)
	titles := make([]string, 0, len(got))
	for _, iv := range got {
		titles = append(titles, iv.Title)
	}
	assert.NotContains(t, titles, "Anti-Smog Gun Deployment")
}

func TestFallbackSmallBudgetReturnsFullTable(t *testing.T) {
	// Only two entries cost 30k or less, so the filter would leave fewer
	// than five and the full table is returned instead.
	got := FallbackInterventions(30000)
	assert.Len(t, got, len(fallbackTable))
}

func TestFallbackLargeBudgetReturnsEverything(t *testing.T) {
	got := FallbackInterventions(10000000)
	assert.Len(t, got, len(fallbackTable))
}
