package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/llm"
	"github.com/abhisek/chesscoach/internal/store"
)

// loadLLMConfig builds the provider configuration from CHESSCOACH_*
// variables, falling back to discovery of the standard API key vars.
func loadLLMConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg, nil
	}

	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}

	return llm.Config{}, fmt.Errorf("no LLM provider configured: set CHESSCOACH_LLM_PROVIDER and its API key, or export one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
}

// newExplainer wires the LLM provider stack and the coach on top of it.
func newExplainer(ctx context.Context, s *store.Store) (*coach.Explainer, error) {
	cfg, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	return coach.NewExplainer(provider, coach.DefaultExplainerConfig()), nil
}
