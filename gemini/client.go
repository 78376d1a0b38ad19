// Package gemini provides a ChatClient that talks to the Gemini API
// directly, for runs that bypass OpenRouter with a Google credential.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	"google.golang.org/genai"
)

// Compile-time interface verification.
var _ tifbench.ChatClient = (*Client)(nil)

// Client wraps the Gemini genai.Client.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Client with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// Complete implements tifbench.ChatClient. System messages become the
// Gemini system instruction; the remaining messages become contents.
func (c *Client) Complete(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
	config := &genai.GenerateContentConfig{}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.Temperature != 0 {
		temp := opts.Temperature
		config.Temperature = &temp
	}

	var contents []*genai.Content
	for _, msg := range msgs {
		if msg.Role == tifbench.RoleSystem {
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: msg.Content}},
			}
			continue
		}
		contents = append(contents, &genai.Content{
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("gemini: no user messages to send")
	}

	result, err := c.client.Models.GenerateContent(ctx, NativeModel(model), contents, config)
	if err != nil {
		return "", wrapAPIError(err)
	}

	return result.Text(), nil
}

// NativeModel strips an OpenRouter vendor prefix (e.g.
// "google/gemini-2.5-pro") down to the name the Gemini API expects.
// References without a prefix pass through unchanged.
func NativeModel(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx != -1 {
		return ref[idx+1:]
	}
	return ref
}

// wrapAPIError converts genai.APIError to our APIError type so callers
// see a uniform transport error shape.
func wrapAPIError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.Code,
			Message:    fmt.Sprintf("gemini API error (HTTP %d): %s", apiErr.Code, apiErr.Message),
		}
	}
	return err
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
