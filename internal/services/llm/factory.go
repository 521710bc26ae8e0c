package llm

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finflow/internal/common"
	"github.com/ternarybob/finflow/internal/interfaces"
)

// NewLLMService creates the configured LLM provider. A missing API key is not
// fatal: the service returns nil and AI features (enrichment, ask) degrade to
// their fallback behavior.
func NewLLMService(cfg *common.Config, logger arbor.ILogger) (interfaces.LLMService, error) {
	switch cfg.LLM.DefaultProvider {
	case common.LLMProviderClaude:
		if cfg.Claude.APIKey == "" {
			logger.Warn().Msg("No Anthropic API key configured - AI features disabled")
			return nil, nil
		}
		return NewClaudeService(&cfg.Claude, logger)

	case common.LLMProviderGemini:
		if cfg.Gemini.APIKey == "" {
			logger.Warn().Msg("No Google API key configured - AI features disabled")
			return nil, nil
		}
		return NewGeminiService(&cfg.Gemini, logger)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.DefaultProvider)
	}
}
