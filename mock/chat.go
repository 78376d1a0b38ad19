// Package mock provides test doubles for tifbench interfaces.
package mock

import (
	"context"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
)

// Compile-time interface verification.
var _ tifbench.ChatClient = (*ChatClient)(nil)

// ChatClient is a mock implementation of tifbench.ChatClient.
type ChatClient struct {
	CompleteFn func(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error)
}

func (c *ChatClient) Complete(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
	return c.CompleteFn(ctx, model, msgs, opts)
}
