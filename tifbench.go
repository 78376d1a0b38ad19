// Package tifbench provides domain types for multi-critic evaluation of
// generated trading strategies. A single evaluation request is fanned out
// to a set of independent model-backed judges, each free-form critique is
// reduced to a verdict, and the verdicts are aggregated into a consensus.
package tifbench

import "context"

// EvaluationRequest is the fixed input shared by every judge in a run.
// It is created once per run and never mutated.
type EvaluationRequest struct {
	Prompt   string `json:"prompt"`   // The original user request
	Strategy string `json:"strategy"` // The generated strategy configuration or description
	Code     string `json:"code"`     // The generated strategy code
}

// Message is a single entry in a chat exchange with a model backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionOptions control a single completion call.
type CompletionOptions struct {
	MaxTokens   int     // Response-length cap, 0 for backend default
	Temperature float32 // Sampling temperature
}

// ChatClient abstracts a chat-completion backend.
type ChatClient interface {
	// Complete sends msgs to model and returns the response text.
	Complete(ctx context.Context, model string, msgs []Message, opts CompletionOptions) (string, error)
}

// JudgeInvoker runs one judge against an evaluation request.
type JudgeInvoker interface {
	// Invoke is total over its input: an unknown identifier or a
	// transport failure is reported through JudgeResult.Succeeded,
	// never as an error.
	Invoke(ctx context.Context, judgeID string, req EvaluationRequest) JudgeResult
}
