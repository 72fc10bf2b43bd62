package scoring

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops a shell stub standing in for a python collaborator.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collaborator.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func scoringConfig(analyser, optimiser string, timeout time.Duration) *config.Config {
	return &config.Config{
		PythonBin:         "/bin/sh",
		AQIAnalyserScript: analyser,
		OptimiserScript:   optimiser,
		ScoringTimeout:    timeout,
	}
}

func TestRunEchoesStdinContract(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexec cat\n")
	runner := NewRunner(scoringConfig(script, "", 5*time.Second), logger.New("development"))

	out, err := runner.AnalyzeAQI(context.Background(), AnalyserRequest{
		AQI:                162,
		Temperature:        31.4,
		Humidity:           48,
		WindSpeed:          18,
		Pressure:           1002,
		AreaType:           "Commercial",
		TrafficDensity:     "High",
		IndustrialActivity: "Low",
		Action:             ActionFullAnalysis,
	})
	require.NoError(t, err)

	var echoed AnalyserRequest
	require.NoError(t, json.Unmarshal(out, &echoed))
	assert.Equal(t, 162, echoed.AQI)
	assert.Equal(t, ActionFullAnalysis, echoed.Action)
}

func TestRunReturnsCollaboratorJSON(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\ncat >/dev/null\necho '{\"optimization_summary\":{\"total_budget\":200000}}'\n")
	runner := NewRunner(scoringConfig("", script, 5*time.Second), logger.New("development"))

	out, err := runner.OptimizeBudget(context.Background(), OptimiserRequest{Budget: 200000, AQI: 150})
	require.NoError(t, err)
	assert.JSONEq(t, `{"optimization_summary":{"total_budget":200000}}`, string(out))
}

func TestRunNonZeroExitIsUnavailable(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\ncat >/dev/null\nexit 3\n")
	runner := NewRunner(scoringConfig(script, "", 5*time.Second), logger.New("development"))

	_, err := runner.AnalyzeAQI(context.Background(), AnalyserRequest{})
	assert.Error(t, err)
}

func TestRunMalformedOutputIsUnavailable(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\ncat >/dev/null\necho 'not json'\n")
	runner := NewRunner(scoringConfig(script, "", 5*time.Second), logger.New("development"))

	_, err := runner.AnalyzeAQI(context.Background(), AnalyserRequest{})
	assert.Error(t, err)
}

func TestRunDeadlineExceededKillsChild(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nsleep 30\n")
	runner := NewRunner(scoringConfig(script, "", 100*time.Millisecond), logger.New("development"))

	start := time.Now()
	_, err := runner.AnalyzeAQI(context.Background(), AnalyserRequest{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunUnconfiguredScript(t *testing.T) {
	runner := NewRunner(scoringConfig("", "", time.Second), logger.New("development"))
	_, err := runner.AnalyzeAQI(context.Background(), AnalyserRequest{})
	assert.Error(t, err)
}
