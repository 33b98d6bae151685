package llm

import (
	"context"
	"fmt"

	"github.com/mathcoach-dev/mathcoach/internal/store"
)

// NewProvider builds a Provider from configuration, wrapped with retry and
// event-logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv discovers a provider from standard key env vars.
// Returns an error when no provider is configured; the application then
// runs in offline mode with catalog-derived fallbacks.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() == nil {
		return NewProvider(ctx, cfg, eventRepo)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no model provider configured: set MATHCOACH_LLM_PROVIDER or a provider API key")
	}
	return NewProvider(ctx, discovered, eventRepo)
}
