package tifbench_test

import (
	"strings"
	"testing"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserMessage_IsReproducible(t *testing.T) {
	t.Parallel()

	req := tifbench.EvaluationRequest{
		Prompt:   "Create a simple SMA crossover strategy",
		Strategy: `{"timeframe": "1h", "indicators": ["SMA50", "SMA200"]}`,
		Code:     "def strategy(candles):\n    pass\n",
	}

	first := tifbench.BuildUserMessage(req)
	second := tifbench.BuildUserMessage(req)

	assert.Equal(t, first, second)
}

func TestBuildUserMessage_SectionsAppearInOrder(t *testing.T) {
	t.Parallel()

	req := tifbench.EvaluationRequest{
		Prompt:   "the request",
		Strategy: "the strategy",
		Code:     "the code",
	}

	msg := tifbench.BuildUserMessage(req)

	promptIdx := strings.Index(msg, "## User Request (Prompt)\nthe request")
	strategyIdx := strings.Index(msg, "## Generated Strategy\nthe strategy")
	codeIdx := strings.Index(msg, "## Code\nthe code")

	require.NotEqual(t, -1, promptIdx)
	require.NotEqual(t, -1, strategyIdx)
	require.NotEqual(t, -1, codeIdx)
	assert.Less(t, promptIdx, strategyIdx)
	assert.Less(t, strategyIdx, codeIdx)
}

func TestMessages_SystemThenUser(t *testing.T) {
	t.Parallel()

	req := tifbench.EvaluationRequest{Prompt: "p", Strategy: "s", Code: "c"}

	msgs := tifbench.Messages(req)

	require.Len(t, msgs, 2)
	assert.Equal(t, tifbench.RoleSystem, msgs[0].Role)
	assert.Equal(t, tifbench.CriticSystemPrompt, msgs[0].Content)
	assert.Equal(t, tifbench.RoleUser, msgs[1].Role)
	assert.Equal(t, tifbench.BuildUserMessage(req), msgs[1].Content)
}

func TestCriticSystemPrompt_StatesProtocol(t *testing.T) {
	t.Parallel()

	// The prompt must demand a strict review and a bare Yes/No final
	// line, and explicitly forbid structured output.
	assert.Contains(t, tifbench.CriticSystemPrompt, "Be strict")
	assert.Contains(t, tifbench.CriticSystemPrompt, `ONLY "Yes" or "No" on the last line`)
	assert.Contains(t, tifbench.CriticSystemPrompt, "DO NOT use JSON format")
}
