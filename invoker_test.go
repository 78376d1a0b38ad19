package tifbench_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoker_Invoke_ReturnsCritique(t *testing.T) {
	t.Parallel()

	var gotModel string
	var gotMsgs []tifbench.Message
	var gotOpts tifbench.CompletionOptions
	client := &mock.ChatClient{
		CompleteFn: func(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
			gotModel, gotMsgs, gotOpts = model, msgs, opts
			return "The strategy matches the request.\nYes", nil
		},
	}

	invoker := tifbench.NewInvoker(client, tifbench.DefaultRegistry())
	req := tifbench.EvaluationRequest{Prompt: "p", Strategy: "s", Code: "c"}

	result := invoker.Invoke(context.Background(), "openai", req)

	require.True(t, result.Succeeded)
	assert.Equal(t, "openai", result.JudgeID)
	assert.Equal(t, "openai/gpt-4.1", result.ModelRef)
	assert.Equal(t, "The strategy matches the request.\nYes", result.RawResponse)

	// The transport call carries the resolved model, both protocol
	// messages, the judge's cap and the fixed low temperature.
	assert.Equal(t, "openai/gpt-4.1", gotModel)
	assert.Equal(t, tifbench.Messages(req), gotMsgs)
	assert.Equal(t, tifbench.OpenAIMaxTokens, gotOpts.MaxTokens)
	assert.InDelta(t, 0.3, gotOpts.Temperature, 0.001)
}

func TestInvoker_Invoke_UnknownJudgeSkipsTransport(t *testing.T) {
	t.Parallel()

	called := false
	client := &mock.ChatClient{
		CompleteFn: func(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
			called = true
			return "", nil
		},
	}

	invoker := tifbench.NewInvoker(client, tifbench.DefaultRegistry())

	result := invoker.Invoke(context.Background(), "claude", tifbench.EvaluationRequest{})

	assert.False(t, called, "no transport call expected for an unknown judge")
	assert.False(t, result.Succeeded)
	assert.Equal(t, "claude", result.JudgeID)
	assert.Contains(t, result.RawResponse, `unknown judge "claude"`)
}

func TestInvoker_Invoke_TransportFailureBecomesResult(t *testing.T) {
	t.Parallel()

	client := &mock.ChatClient{
		CompleteFn: func(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
			return "", errors.New("rate limit exceeded")
		},
	}

	invoker := tifbench.NewInvoker(client, tifbench.DefaultRegistry())

	result := invoker.Invoke(context.Background(), "gemini", tifbench.EvaluationRequest{})

	assert.False(t, result.Succeeded)
	assert.Equal(t, "gemini", result.JudgeID)
	assert.Equal(t, "google/gemini-2.5-pro", result.ModelRef)
	assert.Contains(t, result.RawResponse, "rate limit exceeded")
	assert.Equal(t, tifbench.VerdictUnknown, tifbench.ParseVerdict(result))
}

func TestInvoker_Invoke_EmitsProgress(t *testing.T) {
	t.Parallel()

	client := &mock.ChatClient{
		CompleteFn: func(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
			return "Yes", nil
		},
	}
	var progress bytes.Buffer

	invoker := tifbench.NewInvoker(client, tifbench.DefaultRegistry(), tifbench.WithProgress(&progress))
	invoker.Invoke(context.Background(), "deepseek", tifbench.EvaluationRequest{})

	assert.Contains(t, progress.String(), "DEEPSEEK")
	assert.Contains(t, progress.String(), "deepseek/deepseek-chat-v3.1")
}

func TestInvoker_Invoke_JudgeIDIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	client := &mock.ChatClient{
		CompleteFn: func(ctx context.Context, model string, msgs []tifbench.Message, opts tifbench.CompletionOptions) (string, error) {
			return "Yes", nil
		},
	}

	invoker := tifbench.NewInvoker(client, tifbench.DefaultRegistry())

	result := invoker.Invoke(context.Background(), "OpenAI", tifbench.EvaluationRequest{})

	assert.True(t, result.Succeeded)
	assert.Equal(t, "openai/gpt-4.1", result.ModelRef)
}
