package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/premsagar786/LegalAI/internal/config"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// chatRequest and chatResponse mirror the OpenAI-compatible
// chat-completions wire format, restricted to the fields this package uses.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client calls an OpenAI-compatible chat-completions endpoint.  All calls
// are bounded by the configured timeout through the underlying http.Client.
type Client struct {
	cfg  config.RemoteConfig
	http *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg config.RemoteConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete sends one system+user exchange and returns the assistant's text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    c.cfg.Temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeSerialization, "failed to encode completion request")
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeServiceUnavailable, "completion request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to read completion response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Newf(apperrors.ErrCodeServiceUnavailable, "completion endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeExternalService, "completion response is not valid JSON")
	}
	if parsed.Error != nil {
		return "", apperrors.New(apperrors.ErrCodeExternalService, "completion endpoint error").WithDetail(parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", apperrors.New(apperrors.ErrCodeExternalService, "completion response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
