package tifbench

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Compile-time interface verification.
var _ JudgeInvoker = (*Invoker)(nil)

// Invoker invokes judges against a chat-completion backend.
type Invoker struct {
	client   ChatClient
	registry Registry
	progress io.Writer
}

// InvokerOption configures an Invoker.
type InvokerOption func(*Invoker)

// WithProgress directs human-readable progress output to w.
// Progress text is observability only, not part of the data contract.
func WithProgress(w io.Writer) InvokerOption {
	return func(inv *Invoker) {
		inv.progress = w
	}
}

// NewInvoker creates an Invoker backed by client and registry.
func NewInvoker(client ChatClient, registry Registry, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		client:   client,
		registry: registry,
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Invoke runs a single judge. It never returns an error: an unknown
// identifier short-circuits without a transport call, and any transport
// failure is captured in the result, so one bad judge can never abort
// a run.
func (inv *Invoker) Invoke(ctx context.Context, judgeID string, req EvaluationRequest) JudgeResult {
	spec, ok := inv.registry.Resolve(judgeID)
	if !ok {
		return JudgeResult{
			JudgeID:     judgeID,
			RawResponse: fmt.Sprintf("unknown judge %q", judgeID),
		}
	}

	fmt.Fprintf(inv.progress, "Getting critique from %s (%s)...\n", strings.ToUpper(judgeID), spec.ModelRef)

	text, err := inv.client.Complete(ctx, spec.ModelRef, Messages(req), CompletionOptions{
		MaxTokens:   spec.MaxTokens,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		return JudgeResult{
			JudgeID:     judgeID,
			ModelRef:    spec.ModelRef,
			RawResponse: fmt.Sprintf("call to %s failed: %v", judgeID, err),
		}
	}

	return JudgeResult{
		JudgeID:     judgeID,
		ModelRef:    spec.ModelRef,
		RawResponse: text,
		Succeeded:   true,
	}
}
