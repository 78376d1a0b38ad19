// Package eval provides test helpers for exercising live judge backends.
package eval

import (
	"os"
	"testing"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
)

// Eval provides assertion helpers for live multi-judge evaluation.
type Eval struct {
	runner *tifbench.Runner
}

// New creates a new Eval around the given runner.
func New(runner *tifbench.Runner) *Eval {
	return &Eval{runner: runner}
}

// AssertConsensus evaluates req against judges and fails the test
// unless the run's consensus outcome matches want.
func (e *Eval) AssertConsensus(tb testing.TB, judges []string, req tifbench.EvaluationRequest, want tifbench.Consensus) {
	tb.Helper()

	run := e.runner.Run(tb.Context(), judges, req)
	if run.Report.Outcome != want {
		tb.Errorf("consensus = %s, want %s (approve=%d reject=%d unknown=%d)",
			run.Report.Outcome, want, run.Report.Approves, run.Report.Rejects, run.Report.Unknowns)
	}
}

// SkipUnlessEvals skips the test unless GOEVALS environment variable is set.
// Use at the start of live eval tests to make them opt-in.
func SkipUnlessEvals(tb testing.TB) {
	tb.Helper()
	if os.Getenv("GOEVALS") == "" {
		tb.Skip("GOEVALS not set")
	}
}
