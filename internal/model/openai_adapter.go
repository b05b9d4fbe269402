package model

import (
	"context"
	"strings"

	"sparky-backend/internal/config"
	"sparky-backend/internal/utils"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the go-openai client the advisor needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewCompletionClient builds an OpenAI-compatible client pointed at the
// configured provider (Groq by default).
func NewCompletionClient(cfg config.ProviderConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	transport := NewDebugTransport(utils.NewTransport(), cfg.DebugRequest)
	clientConfig.HTTPClient = utils.NewHTTPClient(cfg.Timeout, transport)

	return openai.NewClientWithConfig(clientConfig)
}
