package recommend

import (
	"context"
	"errors"
	"strings"

	"airaware_backend/platform/config"

	genai "google.golang.org/genai"
)

// generativeClient is the seam between the retry loop and the hosted model.
type generativeClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Non-retryable outcomes. Resubmitting the same prompt cannot change a
// safety verdict or a truncation, so these fall straight through to the
// static table.
var (
	errSafetyBlocked = errors.New("response blocked by safety filter")
	errTruncated     = errors.New("response truncated at token limit")
	errEmptyResponse = errors.New("empty response from model")
)

type geminiClient struct {
	cli   *genai.Client
	model string
}

func newGeminiClient(ctx context.Context, cfg config.RecommendConfig) (*geminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiClient{cli: cli, model: cfg.GetGeminiModel()}, nil
}

func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(0.7)),
			TopP:            genai.Ptr(float32(0.9)),
			TopK:            genai.Ptr(float32(40)),
			MaxOutputTokens: 4096,
			SafetySettings: []*genai.SafetySetting{
				{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
				{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
				{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
				{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			},
		},
	)
	if err != nil {
		return "", err
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", errSafetyBlocked
	}
	if len(resp.Candidates) == 0 {
		return "", errEmptyResponse
	}

	candidate := resp.Candidates[0]
	switch candidate.FinishReason {
	case genai.FinishReasonSafety:
		return "", errSafetyBlocked
	case genai.FinishReasonMaxTokens:
		return "", errTruncated
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errEmptyResponse
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		b.WriteString(part.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", errEmptyResponse
	}
	return b.String(), nil
}
