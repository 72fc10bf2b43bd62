// Package scoring invokes the two external scientific analyzers as child
// processes. Each collaborator receives one JSON document on stdin and must
// print one JSON document to stdout and exit 0 before the deadline; any
// other outcome makes the collaborator unavailable for this request, which
// the orchestrator translates into a null response field. Never a request
// failure, never a retry.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"
)

type Runner struct {
	cfg config.ScoringConfig
	log *logger.Logger
}

func NewRunner(cfg config.ScoringConfig, log *logger.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// AnalyzeAQI runs the meteorological / pollution-source analyser.
func (r *Runner) AnalyzeAQI(ctx context.Context, req AnalyserRequest) (json.RawMessage, error) {
	return r.run(ctx, "aqi_analyser", r.cfg.GetAQIAnalyserScript(), req)
}

// OptimizeBudget runs the budget-allocation optimiser.
func (r *Runner) OptimizeBudget(ctx context.Context, req OptimiserRequest) (json.RawMessage, error) {
	return r.run(ctx, "intervention_optimiser", r.cfg.GetOptimiserScript(), req)
}

func (r *Runner) run(ctx context.Context, name, script string, payload interface{}) (json.RawMessage, error) {
	if script == "" {
		return nil, fmt.Errorf("%s: script not configured", name)
	}

	input, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", name, err)
	}

	// A hung child must not block the request indefinitely; CommandContext
	// kills the process when the deadline passes.
	ctx, cancel := context.WithTimeout(ctx, r.cfg.GetScoringTimeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, r.cfg.GetPythonBin(), script)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: deadline exceeded", name)
		}
		r.log.Debug("scoring collaborator stderr", "collaborator", name, "stderr", stderr.String())
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	output := strings.TrimSpace(stdout.String())
	var doc json.RawMessage
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		return nil, fmt.Errorf("%s: malformed output: %w", name, err)
	}

	return doc, nil
}
