package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"tutorapi/internal/config"
)

// OpenAI talks to OpenAI or any OpenAI-compatible gateway through langchaingo.
type OpenAI struct {
	model     llms.Model
	maxTokens int
}

// NewOpenAI creates the client. cfg.BaseURL points it at a compatible gateway.
func NewOpenAI(cfg config.LLMConfig, hc *http.Client) (*OpenAI, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(hc),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	m, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &OpenAI{model: m, maxTokens: cfg.MaxTokens}, nil
}

func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	var callOpts []llms.CallOption
	if o.maxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(o.maxTokens))
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, o.model, prompt, callOpts...)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	return out, nil
}
