package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"prompt-enhancer/internal/knowledge"
	"prompt-enhancer/internal/llm"
	"prompt-enhancer/internal/models"
)

// gatewayFunc adapts a plain function to the llm.Gateway interface.
type gatewayFunc func(ctx context.Context, prompt string) llm.Completion

func (f gatewayFunc) Generate(ctx context.Context, prompt string) llm.Completion {
	return f(ctx, prompt)
}

func staticGateway(c llm.Completion) gatewayFunc {
	return func(context.Context, string) llm.Completion { return c }
}

func TestCategorize(t *testing.T) {
	store := knowledge.NewStore()

	tests := []struct {
		name       string
		completion llm.Completion
		want       string
	}{
		{
			name:       "exact technique name",
			completion: llm.Ok("Role Prompting", "stop"),
			want:       "Role Prompting",
		},
		{
			name:       "quoted and padded",
			completion: llm.Ok(`  "Self-Consistency"  `, "stop"),
			want:       "Self-Consistency",
		},
		{
			name:       "case mismatch still exact",
			completion: llm.Ok("zero-shot prompting", "stop"),
			want:       "Zero-Shot Prompting",
		},
		{
			name:       "substring resolves to full name",
			completion: llm.Ok("Chain-of-Thought", "stop"),
			want:       "Chain-of-Thought (CoT) Prompting",
		},
		{
			name:       "no substring relation falls back to default",
			completion: llm.Ok("CoT-ish", "stop"),
			want:       models.DefaultTechnique,
		},
		{
			name:       "gateway failure falls back to default",
			completion: llm.Failed(errors.New("quota exceeded")),
			want:       models.DefaultTechnique,
		},
		{
			name:       "blocked completion falls back to default",
			completion: llm.Blocked("content_filter"),
			want:       models.DefaultTechnique,
		},
		{
			name:       "empty answer falls back to default",
			completion: llm.Ok("", "stop"),
			want:       models.DefaultTechnique,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLLMCategorizer(staticGateway(tt.completion), store, zerolog.Nop())
			assert.Equal(t, tt.want, c.Categorize(context.Background(), "write me a poem"))
		})
	}
}

func TestCategorizeSendsCatalogAndPrompt(t *testing.T) {
	store := knowledge.NewStore()
	var captured string
	gw := gatewayFunc(func(_ context.Context, prompt string) llm.Completion {
		captured = prompt
		return llm.Ok("Role Prompting", "stop")
	})

	NewLLMCategorizer(gw, store, zerolog.Nop()).Categorize(context.Background(), "act as a pirate")

	assert.Contains(t, captured, "act as a pirate")
	for _, name := range store.Names() {
		assert.Contains(t, captured, name)
	}
}
