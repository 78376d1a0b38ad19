package mock

import (
	"context"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
)

// Compile-time interface verification.
var _ tifbench.JudgeInvoker = (*JudgeInvoker)(nil)

// JudgeInvoker is a mock implementation of tifbench.JudgeInvoker.
type JudgeInvoker struct {
	InvokeFn func(ctx context.Context, judgeID string, req tifbench.EvaluationRequest) tifbench.JudgeResult
}

func (i *JudgeInvoker) Invoke(ctx context.Context, judgeID string, req tifbench.EvaluationRequest) tifbench.JudgeResult {
	return i.InvokeFn(ctx, judgeID, req)
}
