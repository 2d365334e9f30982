package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"prompt-enhancer/internal/config"
)

// Status tags a Completion outcome. Gateway failures are values, not Go
// errors, so callers branch on them explicitly instead of catching.
type Status string

const (
	StatusOK      Status = "ok"
	StatusBlocked Status = "blocked"
	StatusFailed  Status = "failed"
)

// Completion is the tagged result of one gateway round-trip:
// Ok(text) | Blocked(reason) | Failed(error).
type Completion struct {
	Status     Status
	Text       string
	StopReason string
	Err        error
}

func (c Completion) OK() bool        { return c.Status == StatusOK }
func (c Completion) IsBlocked() bool { return c.Status == StatusBlocked }
func (c Completion) Failed() bool    { return c.Status == StatusFailed }

func Ok(text, stopReason string) Completion {
	return Completion{Status: StatusOK, Text: text, StopReason: stopReason}
}

func Blocked(reason string) Completion {
	return Completion{Status: StatusBlocked, StopReason: reason}
}

func Failed(err error) Completion {
	return Completion{Status: StatusFailed, Err: err}
}

// Gateway generates text for a prompt. Implementations must never panic;
// every failure mode is reported through the Completion tag.
type Gateway interface {
	Generate(ctx context.Context, prompt string) Completion
}

// OpenAIGateway calls an OpenAI-compatible chat endpoint.
type OpenAIGateway struct {
	llm         *openai.LLM
	log         zerolog.Logger
	temperature float64
	maxTokens   int
}

func NewOpenAIGateway(cfg *config.LLMConfig, logger zerolog.Logger) (*OpenAIGateway, error) {
	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return &OpenAIGateway{
		llm:         client,
		log:         logger,
		temperature: 0.7,
		maxTokens:   500,
	}, nil
}

// Generate performs one blocking round-trip and classifies the outcome.
func (g *OpenAIGateway) Generate(ctx context.Context, prompt string) Completion {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		g.log.Warn().Err(err).Msg("llm call failed")
		return Failed(err)
	}
	if len(resp.Choices) == 0 {
		return Failed(fmt.Errorf("llm returned no choices"))
	}
	choice := resp.Choices[0]
	if isBlockedStopReason(choice.StopReason) {
		g.log.Warn().Str("stop_reason", choice.StopReason).Msg("llm completion blocked")
		return Blocked(choice.StopReason)
	}
	return Ok(strings.TrimSpace(choice.Content), choice.StopReason)
}

// isBlockedStopReason reports whether a completion was cut off by a safety
// filter rather than finishing normally.
func isBlockedStopReason(reason string) bool {
	r := strings.ToLower(reason)
	return strings.Contains(r, "content_filter") || strings.Contains(r, "safety")
}
