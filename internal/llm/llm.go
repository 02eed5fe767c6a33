// Package llm wraps the text-completion backends used for study material generation.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tutorapi/internal/config"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Completer sends a single prompt and returns the raw text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// New builds the Completer selected by cfg.Provider.
func New(cfg config.LLMConfig) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is required")
	}
	hc := httpClient(cfg.TimeoutSec)

	switch cfg.Provider {
	case "", ProviderOpenAI:
		return NewOpenAI(cfg, hc)
	case ProviderAnthropic:
		return NewAnthropic(cfg, hc)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}

// httpClient returns a traced client with a per-request timeout.
func httpClient(timeoutSec int) *http.Client {
	if timeoutSec <= 0 {
		timeoutSec = 60
	}
	return &http.Client{
		Timeout:   time.Duration(timeoutSec) * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
