// Package openai extracts structured receipts through the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/smart_pocket/internal/adapters/httpapi"
	"github.com/SscSPs/smart_pocket/internal/core/domain"
	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
	"golang.org/x/time/rate"
)

// Ensure Extractor implements the interface.
var _ portssvc.ReceiptExtractorSvc = (*Extractor)(nil)

// Default configuration values.
const (
	DefaultBaseURL           = "https://api.openai.com/v1"
	DefaultModel             = "gpt-4o-mini"
	DefaultRequestsPerMinute = 30

	systemPrompt = "Parse the following receipt into JSON."
)

// Config holds configuration for the extractor.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL can point at any OpenAI-compatible API.
	BaseURL string

	Model string

	// RequestsPerMinute throttles outgoing completions.
	RequestsPerMinute int

	// HTTP carries timeout and retry settings. ServiceName, BaseURL and Headers are set here.
	HTTP httpapi.Config
}

// Extractor turns receipt text into schema-constrained JSON.
type Extractor struct {
	client  *httpapi.Client
	model   string
	limiter *rate.Limiter
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type jsonSchemaFormat struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Strict      bool           `json:"strict"`
	Schema      map[string]any `json:"schema"`
}

type responseFormat struct {
	Type       string           `json:"type"`
	JSONSchema jsonSchemaFormat `json:"json_schema"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
			Refusal *string `json:"refusal"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// NewExtractor creates an Extractor.
func NewExtractor(cfg Config, opts ...httpapi.Option) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	httpCfg := cfg.HTTP
	httpCfg.ServiceName = "openai"
	httpCfg.BaseURL = cfg.BaseURL
	httpCfg.Headers = map[string]string{"Authorization": "Bearer " + cfg.APIKey}

	return &Extractor{
		client:  httpapi.NewClient(httpCfg, opts...),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
	}, nil
}

// ExtractReceipt sends rawText with the schema as a strict json_schema response format.
// It returns "" when the model produced no content or refused.
func (e *Extractor) ExtractReceipt(ctx context.Context, rawText string, schema domain.ExtractionSchema) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("openai: rate limit wait: %w", err)
	}

	reqBody := chatCompletionRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: rawText},
		},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchemaFormat{
				Name:        schema.Name,
				Description: schema.Description,
				Strict:      schema.Strict,
				Schema:      schema.Schema,
			},
		},
	}

	resp, err := httpapi.Do[chatCompletionResponse](ctx, e.client, httpapi.Request{
		Method: http.MethodPost,
		Path:   "/chat/completions",
		Body:   reqBody,

		// completions create nothing upstream
		Idempotent: true,
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	msg := resp.Choices[0].Message
	if msg.Refusal != nil && *msg.Refusal != "" {
		return "", nil
	}
	if msg.Content == nil {
		return "", nil
	}
	return *msg.Content, nil
}
