package recommend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairFencedWithTrailingComma(t *testing.T) {
	raw := "```json\n{\"interventions\": [{\"title\": \"Tree Drive\",}]}\n```"

	repaired, ok := Repair(raw)
	require.True(t, ok)

	var got modelResponse
	require.NoError(t, json.Unmarshal([]byte(repaired), &got))

	var want modelResponse
	require.NoError(t, json.Unmarshal([]byte(`{"interventions": [{"title": "Tree Drive"}]}`), &want))
	assert.Equal(t, want, got)
}

func TestRepairPassesThroughValidJSON(t *testing.T) {
	raw := `{"interventions": []}`
	repaired, ok := Repair(raw)
	require.True(t, ok)
	assert.JSONEq(t, raw, repaired)
}

func TestRepairExtractsBraceSpanFromProse(t *testing.T) {
	raw := "Here is your plan:\n{\"interventions\": [{\"title\": \"Purifiers\"}]}\nHope this helps!"
	repaired, ok := Repair(raw)
	require.True(t, ok)
	assert.JSONEq(t, `{"interventions": [{"title": "Purifiers"}]}`, repaired)
}

func TestRepairCollapsesLiteralControlCharacters(t *testing.T) {
	raw := "{\"interventions\": [{\"title\": \"Dust\nSuppression\",\t\"priority\": \"High\"}]}"
	repaired, ok := Repair(raw)
	require.True(t, ok)

	var got modelResponse
	require.NoError(t, json.Unmarshal([]byte(repaired), &got))
	require.Len(t, got.Interventions, 1)
	assert.Equal(t, "Dust Suppression", got.Interventions[0].Title)
}

func TestRepairUnrecoverableReturnsOriginal(t *testing.T) {
	raw := "the model refused to answer"
	out, ok := Repair(raw)
	assert.False(t, ok)
	assert.Equal(t, raw, out)
}
