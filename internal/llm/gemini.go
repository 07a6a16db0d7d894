// Package llm wraps the Gemini generateContent REST API for the support
// assistant.
package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"facility-hub/internal/config"
	"facility-hub/pkg/httpx"
)

// Asker answers a user message given a system prompt.
type Asker interface {
	Ask(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// GeminiClient talks to the Google generative language API.
type GeminiClient struct {
	http    *httpx.Client
	baseURL string
	model   string
}

// NewGeminiClient builds a client from the support config.
func NewGeminiClient(cfg *config.SupportConfig, opts ...httpx.Option) *GeminiClient {
	opts = append([]httpx.Option{httpx.WithHeader("x-goog-api-key", cfg.APIKey)}, opts...)

	return &GeminiClient{
		http:    httpx.New(opts...),
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		model:   cfg.Model,
	}
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends the message with the system prompt and returns the first
// candidate's text.
func (c *GeminiClient) Ask(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))

	req := &generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: userMessage}}},
		},
	}

	var resp generateResponse
	if err := c.http.Post(ctx, endpoint, req, &resp); err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generateContent returned no candidates")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}
