// Package recommend turns the merged environmental record into an ordered
// list of budget-scaled interventions. The hosted model is the preferred
// author; a static hand-authored table is the guaranteed floor. Generation
// never signals failure outward.
package recommend

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"
)

const (
	maxAttempts  = 3
	initialDelay = 2 * time.Second
	maxDelay     = 30 * time.Second
)

type Service struct {
	cfg    config.RecommendConfig
	client generativeClient
	log    *logger.Logger

	// baseDelay is overridable so retry tests run in milliseconds.
	baseDelay time.Duration
}

func NewService(ctx context.Context, cfg config.RecommendConfig, log *logger.Logger) *Service {
	s := &Service{cfg: cfg, log: log, baseDelay: initialDelay}
	if !cfg.IsGeminiEnabled() {
		return s
	}

	client, err := newGeminiClient(ctx, cfg)
	if err != nil {
		log.UpstreamError("gemini", "client_init", err)
		return s
	}
	s.client = client
	return s
}

func newServiceWithClient(cfg config.RecommendConfig, client generativeClient, log *logger.Logger, baseDelay time.Duration) *Service {
	return &Service{cfg: cfg, client: client, log: log, baseDelay: baseDelay}
}

// Generate returns 4-6 interventions for the record. Any failure along the
// model path degrades to the static fallback table filtered by budget.
func (s *Service) Generate(ctx context.Context, in Input) []Intervention {
	if s.client == nil {
		s.log.FallbackUsed("recommend", "static_table", "model not configured")
		return FallbackInterventions(in.Budget)
	}

	text, err := s.generateWithRetry(ctx, buildPrompt(in))
	if err != nil {
		s.log.UpstreamError("gemini", "generate", err)
		s.log.FallbackUsed("recommend", "static_table", err.Error())
		return FallbackInterventions(in.Budget)
	}

	repaired, ok := Repair(text)
	if !ok {
		s.log.FallbackUsed("recommend", "static_table", "model output not repairable to JSON")
		return FallbackInterventions(in.Budget)
	}

	var payload modelResponse
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil || len(payload.Interventions) == 0 {
		s.log.FallbackUsed("recommend", "static_table", "model output missing interventions")
		return FallbackInterventions(in.Budget)
	}
	return payload.Interventions
}

// generateWithRetry retries only overload-class failures, doubling the delay
// each attempt. Everything else is permanent and returns immediately.
func (s *Service) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := s.baseDelay * (1 << (attempt - 1))
			if delay > maxDelay {
				delay = maxDelay
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		text, err := s.client.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isOverloaded(err) {
			return "", err
		}
		s.log.Warn("model overloaded, retrying", "attempt", attempt+1, "error", err.Error())
	}
	return "", lastErr
}

// isOverloaded reports whether the upstream signalled overload or quota
// exhaustion, the only error class worth resubmitting for.
func isOverloaded(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"503", "overload", "quota", "rate limit", "resource exhausted", "unavailable"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
