package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/course-authoring-api/internal/config"
	"github.com/rs/zerolog"
)

// Completion is one raw completion from the generation endpoint
type Completion struct {
	Text       string
	StopReason string
}

// Client sends prompts to the external text-generation endpoint
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
}

// httpClient is the concrete HTTP implementation of Client
type httpClient struct {
	cfg  config.GenerationConfig
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a generation client from injected configuration.
// The credential and base URL come from cfg, never from ambient state,
// so tests can point the client at a stub endpoint.
func NewClient(cfg config.GenerationConfig, log zerolog.Logger) Client {
	return &httpClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("component", "generation").Logger(),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

// Complete sends one system+user prompt pair and returns the first text-type
// content block of the response. Failed calls simply fail: no retry.
func (c *httpClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	reqBody := messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: userPrompt}},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/messages", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", c.cfg.Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(raw)).
			Msg("Generation endpoint returned error")
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded messagesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode generation response envelope: %w", err)
	}

	for _, block := range decoded.Content {
		if block.Type == "text" {
			return &Completion{Text: block.Text, StopReason: decoded.StopReason}, nil
		}
	}

	return nil, &EmptyResponseError{}
}
