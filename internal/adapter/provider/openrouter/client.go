// Package openrouter is a chat-completion client for the OpenRouter API,
// which speaks the OpenAI chat completions protocol.
package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "openai/gpt-4o-mini"
	DefaultTemperature = 0.7
	DefaultTimeout     = 30 * time.Second

	structuredTemperature = 0.5
	defaultSchemaName     = "ResponseSchema"
)

// Config configures a Client. Zero values fall back to the defaults above.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	SiteURL     string
	AppName     string
}

// Client sends chat-completion requests. It never retries: every call makes
// at most one outbound request.
type Client struct {
	http        *resty.Client
	model       string
	temperature float64
	timeout     time.Duration
	log         *slog.Logger
}

// NewClient creates a Client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := resty.New()
	hc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	hc.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	hc.SetHeader("Content-Type", "application/json")
	if cfg.SiteURL != "" {
		hc.SetHeader("HTTP-Referer", cfg.SiteURL)
	}
	if cfg.AppName != "" {
		hc.SetHeader("X-Title", cfg.AppName)
	}

	return &Client{
		http:        hc,
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		log:         logger.With("adapter", "openrouter"),
	}
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// ResponseFormat asks the provider for JSON output. A nil Schema requests
// plain JSON mode.
type ResponseFormat struct {
	Schema     map[string]any
	SchemaName string
	Strict     *bool
}

// ChatRequest is a single-turn chat completion request.
type ChatRequest struct {
	SystemMessage    string
	UserMessage      string
	Model            string
	Temperature      *float64
	MaxTokens        *int
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
	ResponseFormat   *ResponseFormat
	// Timeout bounds the request. Zero means the client default.
	Timeout time.Duration
}

// Validate checks request bounds and collects all errors.
func (r ChatRequest) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(r.UserMessage) == "" {
		errs = append(errs, domain.FieldError{Field: "user_message", Message: "required"})
	}
	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 1) {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be between 0 and 1"})
	}
	if r.TopP != nil && (*r.TopP < 0 || *r.TopP > 1) {
		errs = append(errs, domain.FieldError{Field: "top_p", Message: "must be between 0 and 1"})
	}
	if r.MaxTokens != nil && *r.MaxTokens <= 0 {
		errs = append(errs, domain.FieldError{Field: "max_tokens", Message: "must be greater than 0"})
	}
	if r.Timeout < 0 {
		errs = append(errs, domain.FieldError{Field: "timeout", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChatResult is the first choice of a completion.
type ChatResult struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// CompleteChatRequest sends req and returns the first choice's content.
func (c *Client) CompleteChatRequest(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := c.buildBody(req)

	timeout := req.Timeout
	if timeout == 0 {
		timeout = c.timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	res, err := c.http.R().
		SetContext(reqCtx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		if ctx.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			c.log.WarnContext(ctx, "completion timed out",
				slog.String("model", body.Model),
				slog.Duration("timeout", timeout),
			)
			return nil, &TimeoutError{Timeout: timeout}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("openrouter: %w", ctxErr)
		}
		return nil, fmt.Errorf("openrouter: send request: %w: %w", domain.ErrUpstream, err)
	}

	raw := res.String()
	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299 {
		c.log.WarnContext(ctx, "completion rejected",
			slog.String("model", body.Model),
			slog.Int("status", res.StatusCode()),
		)
		return nil, &APIError{StatusCode: res.StatusCode(), Body: raw}
	}

	var envelope chatCompletionResponse
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, &ParsingError{Message: "decode response: " + err.Error(), Body: raw}
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message == nil {
		return nil, &ParsingError{Message: "response has no choices", Body: raw}
	}

	choice := envelope.Choices[0]
	content := choice.Message.Content
	if req.ResponseFormat != nil && !json.Valid([]byte(content)) {
		return nil, &ParsingError{Message: "content is not valid JSON", Body: content}
	}

	c.log.DebugContext(ctx, "completion finished",
		slog.String("model", envelope.Model),
		slog.Int("total_tokens", envelope.Usage.TotalTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return &ChatResult{
		Content:      content,
		Model:        envelope.Model,
		FinishReason: choice.FinishReason,
		Usage:        envelope.Usage,
	}, nil
}

// GenerateStructured runs a JSON-mode completion and decodes the content into out.
// A nil req.ResponseFormat requests plain JSON mode.
func (c *Client) GenerateStructured(ctx context.Context, req ChatRequest, out any) error {
	if req.ResponseFormat == nil {
		req.ResponseFormat = &ResponseFormat{}
	}
	if req.Temperature == nil {
		t := structuredTemperature
		req.Temperature = &t
	}

	result, err := c.CompleteChatRequest(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(result.Content), out); err != nil {
		return &ParsingError{Message: "decode structured content: " + err.Error(), Body: result.Content}
	}
	return nil
}

func (c *Client) buildBody(req ChatRequest) chatCompletionRequest {
	model := req.Model
	if model == "" {
		model = c.model
	}
	temperature := c.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	messages := make([]message, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, message{Role: roleSystem, Content: req.SystemMessage})
	}
	messages = append(messages, message{Role: roleUser, Content: req.UserMessage})

	body := chatCompletionRequest{
		Model:            model,
		Messages:         messages,
		Temperature:      temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
	}

	if rf := req.ResponseFormat; rf != nil {
		if rf.Schema == nil {
			body.ResponseFormat = &responseFormat{Type: "json_object"}
		} else {
			name := rf.SchemaName
			if name == "" {
				name = defaultSchemaName
			}
			strict := true
			if rf.Strict != nil {
				strict = *rf.Strict
			}
			body.ResponseFormat = &responseFormat{
				Type:       "json_schema",
				JSONSchema: &jsonSchema{Name: name, Schema: rf.Schema, Strict: strict},
			}
		}
	}

	return body
}
