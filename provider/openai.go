package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/subtitlestudio/tmcache"
)

// OpenAI implements Provider using OpenAI's chat completion API.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAI creates a new OpenAI provider.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a single subtitle line, feeding the surrounding
// lines to the model as disambiguation context.
func (p *OpenAI) Translate(ctx context.Context, req Request) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(req)},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &tmcache.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &tmcache.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &tmcache.ProviderError{
			Message:   "empty translation from OpenAI",
			Retryable: true,
		}
	}

	return translated, nil
}

func buildSystemPrompt(req Request) string {
	sourceName := tmcache.LanguageName(req.SourceLang)
	if req.SourceLang == "" {
		sourceName = tmcache.LanguageName("en")
	}
	targetName := tmcache.LanguageName(req.TargetLang)

	prompt := fmt.Sprintf(`You are an expert subtitle translator. Translate the given line from %s to %s with the fluency of a native speaker.

Rules:
- Return ONLY the translated line, with no quotes, labels, or commentary.
- Keep the register and tone of spoken dialogue.
- Never translate idioms literally; use a natural %s equivalent.
- Surrounding lines are provided for context only. Do NOT translate them.`,
		sourceName, targetName, targetName)

	if req.Context != "" {
		prompt += fmt.Sprintf("\n\nAdditional context about the material: %s", req.Context)
	}

	return prompt
}

func buildUserMessage(req Request) string {
	var b strings.Builder

	if len(req.PreviousLines) > 0 {
		b.WriteString("PRECEDING LINES:\n")
		b.WriteString(strings.Join(req.PreviousLines, "\n"))
		b.WriteString("\n---\n")
	}

	fmt.Fprintf(&b, "LINE TO TRANSLATE: %q", req.Text)

	if len(req.NextLines) > 0 {
		b.WriteString("\n---\nFOLLOWING LINES:\n")
		b.WriteString(strings.Join(req.NextLines, "\n"))
	}

	return b.String()
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporarily unavailable",
		"server error",
		"502",
		"503",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// Verify OpenAI implements Provider
var _ Provider = (*OpenAI)(nil)
