package tifbench

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunResult pairs every judge's raw result with its verdict, in the
// order the judges were requested, plus the aggregate report.
type RunResult struct {
	Results  []JudgeResult
	Verdicts []Verdict
	Report   ConsensusReport
}

// Runner fans one evaluation request out to a list of judges.
type Runner struct {
	Invoker JudgeInvoker
	// Workers sets the number of parallel invocations. If <= 1, judges
	// run sequentially in the order given.
	Workers int
}

// Run evaluates req against every judge in ids. Individual failures
// degrade to Unknown verdicts; the run always covers the full list.
// Result order matches ids regardless of completion order.
func (r *Runner) Run(ctx context.Context, ids []string, req EvaluationRequest) RunResult {
	results := make([]JudgeResult, len(ids))

	if r.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Workers)
		for i, id := range ids {
			g.Go(func() error {
				results[i] = r.Invoker.Invoke(gctx, id, req)
				return nil
			})
		}
		_ = g.Wait() // invocations never return errors
	} else {
		for i, id := range ids {
			results[i] = r.Invoker.Invoke(ctx, id, req)
		}
	}

	verdicts := make([]Verdict, len(results))
	for i, res := range results {
		verdicts[i] = ParseVerdict(res)
	}

	return RunResult{
		Results:  results,
		Verdicts: verdicts,
		Report:   Aggregate(verdicts),
	}
}
