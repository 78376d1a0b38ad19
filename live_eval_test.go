package tifbench_test

import (
	"os"
	"testing"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/eval"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/openrouter"
)

// TestLive_ObviousMismatchIsRejected runs the full pipeline against
// real backends. Opt in with GOEVALS=1 and an OpenRouter key.
func TestLive_ObviousMismatchIsRejected(t *testing.T) {
	eval.SkipUnlessEvals(t)

	key := os.Getenv("OPENROUTER_CRITIC_API_KEY")
	if key == "" {
		t.Skip("OPENROUTER_CRITIC_API_KEY not set")
	}

	client := openrouter.NewClient(key)
	invoker := tifbench.NewInvoker(client, tifbench.DefaultRegistry())
	e := eval.New(&tifbench.Runner{Invoker: invoker, Workers: 3})

	// The strategy ignores the requested timeframe and indicators, so
	// strict critics should unanimously reject it.
	req := tifbench.EvaluationRequest{
		Prompt:   "Create an SMA crossover strategy on the 1h timeframe using SMA50 and SMA200",
		Strategy: `{"timeframe": "5m", "indicators": ["RSI"]}`,
		Code:     "def strategy(candles):\n    return \"buy\"\n",
	}

	e.AssertConsensus(t, []string{"gemini", "openai", "deepseek"}, req, tifbench.ConsensusUnanimousReject)
}
