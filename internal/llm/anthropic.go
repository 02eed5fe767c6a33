package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"tutorapi/internal/config"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// Anthropic calls the Messages API with a single user turn.
type Anthropic struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropic creates the client. Model names that are not Claude models fall back to a default.
func NewAnthropic(cfg config.LLMConfig, hc *http.Client) (*Anthropic, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(hc),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	model := cfg.Model
	if !strings.HasPrefix(model, "claude-") {
		model = defaultAnthropicModel
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	return &Anthropic{client: &client, model: model, maxTokens: maxTokens}, nil
}

func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
