package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

const (
	maxTermBytes = 64
	systemPrompt = "You expand search keywords for a movie catalog. " +
		"Reply with a comma-separated list of single words or short phrases " +
		"that mean the same as the given word, lower-case, nothing else."
)

// SynonymSource asks an OpenAI-compatible chat model for related terms.
type SynonymSource struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// Config holds the model provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewSynonymSource creates an OpenAI-compatible synonym provider.
func NewSynonymSource(cfg *Config) *SynonymSource {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SynonymSource{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Name implements synonym.Source.
func (s *SynonymSource) Name() string { return "openai" }

// Synonyms implements domain.SynonymSource with one chat completion per word.
func (s *SynonymSource) Synonyms(ctx context.Context, word string) (terms.Set, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: word},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response: %w", domain.ErrSynonymProviderError)
	}

	set := parseTerms(resp.Choices[0].Message.Content)
	s.logger.Debug("Model synonyms",
		zap.String("word", word),
		zap.Int("terms", set.Len()),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return set, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (s *SynonymSource) HealthCheck(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseTerms splits a model reply on commas and newlines.
func parseTerms(reply string) terms.Set {
	set := terms.New()
	for _, part := range strings.FieldsFunc(reply, func(r rune) bool { return r == ',' || r == '\n' }) {
		term := strings.TrimSpace(part)
		if term == "" || len(term) > maxTermBytes {
			continue
		}
		set.Add(term)
	}
	return set
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrSynonymProviderError.
func parseAPIError(err error) error {
	wrap := domain.ErrSynonymProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("model API error %d: %s: %w", reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("model API error %d: %s: %w", reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("model API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("model request failed: %v: %w", err, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
