package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sparky-backend/internal/config"
	"sparky-backend/internal/model"
	"sparky-backend/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingAPIKey = errors.New(config.APIKeyEnv + " not found")
	ErrNoChoices     = errors.New("provider returned no choices")
)

type AdvisorService struct {
	completer          model.ChatCompleter
	provider           config.ProviderConfig
	enforceVideoPolicy bool
}

func NewAdvisorService(cfg *config.Config, completer model.ChatCompleter) *AdvisorService {
	return &AdvisorService{
		completer:          completer,
		provider:           cfg.Provider,
		enforceVideoPolicy: cfg.Advisor.EnforceVideoPolicy,
	}
}

// GenerateAdvice asks the provider about query and returns a result of kind
// success, configuration_error or upstream_error. Exactly one provider call is
// made per invocation, none when the credential is missing. The error return
// is reserved for requests abandoned before the provider was contacted.
func (s *AdvisorService) GenerateAdvice(ctx context.Context, query string, history []model.ConversationTurn, vehicleContext string) (model.AdviceResult, error) {
	if err := ctx.Err(); err != nil {
		return model.AdviceResult{}, fmt.Errorf("request abandoned: %w", err)
	}

	log := logger.WithContext(ctx)

	if strings.TrimSpace(s.provider.APIKey) == "" {
		log.Warn("provider credential missing, skipping completion call")
		return model.AdviceResult{
			Kind:    model.AdviceConfigurationError,
			Message: fmt.Sprintf("Error: %s.", ErrMissingAPIKey),
		}, nil
	}

	if n := droppedTurns(history); n > 0 {
		log.Debugf("dropping %d history turns with unknown role", n)
	}

	req := s.newRequest(BuildMessages(query, history, vehicleContext))
	log.WithFields(logrus.Fields{
		"model":    req.Model,
		"messages": len(req.Messages),
	}).Debug("calling completion provider")

	reply, err := s.complete(ctx, req)
	if err != nil {
		log.WithError(err).Error("completion provider call failed")
		return model.AdviceResult{
			Kind:    model.AdviceUpstreamError,
			Message: fmt.Sprintf("Error contacting AI provider: %v", err),
		}, nil
	}

	payload, ok := ParseAdvice(reply)
	if !ok {
		log.WithField("reply_len", len(reply)).Warn("no JSON object in provider reply, using fallback advice")
		payload = FallbackAdvice(reply)
	}

	if s.enforceVideoPolicy && payload.VideoLink != nil && !RequestsVideo(query) {
		log.Info("video link offered without an explicit request, clearing it")
		payload.VideoLink = nil
		payload.VideoLabel = nil
	}

	return model.AdviceResult{Kind: model.AdviceSuccess, Payload: payload}, nil
}

func (s *AdvisorService) newRequest(messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:       s.provider.Model,
		Messages:    messages,
		Temperature: s.provider.Temperature,
		MaxTokens:   s.provider.MaxTokens,
	}
	if s.provider.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return req
}

func (s *AdvisorService) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := s.completer.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
