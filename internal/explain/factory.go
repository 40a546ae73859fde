package explain

import (
	"context"
	"fmt"

	"github.com/jmarlow/hamprep/internal/telemetry"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and telemetry-logging decorators.
func NewProvider(ctx context.Context, cfg Config, sink telemetry.Sink) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown explanation provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, sink), cfg.Retry), nil
}
