package tifbench

import (
	"sort"
	"strings"
)

// JudgeSpec maps a judge to its backend model and response cap.
type JudgeSpec struct {
	ModelRef  string // Opaque model reference understood by the transport
	MaxTokens int    // Response-length cap for this judge
}

// Registry maps judge identifiers to their specs. It is built once at
// startup and treated as read-only afterwards.
type Registry map[string]JudgeSpec

// Resolve looks up a judge identifier, case-insensitively.
func (r Registry) Resolve(id string) (JudgeSpec, bool) {
	spec, ok := r[strings.ToLower(id)]
	return spec, ok
}

// IDs returns the registered judge identifiers in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Response caps. The openai judge is allotted a larger cap to
// accommodate its backend's verbosity.
const (
	DefaultMaxTokens = 2000
	OpenAIMaxTokens  = 10000
)

// DefaultTemperature favors literal compliance with the final-line
// Yes/No instruction over creative variation.
const DefaultTemperature float32 = 0.3

// DefaultRegistry returns the built-in judge registry.
func DefaultRegistry() Registry {
	return Registry{
		"gemini":   {ModelRef: "google/gemini-2.5-pro", MaxTokens: DefaultMaxTokens},
		"openai":   {ModelRef: "openai/gpt-4.1", MaxTokens: OpenAIMaxTokens},
		"deepseek": {ModelRef: "deepseek/deepseek-chat-v3.1", MaxTokens: DefaultMaxTokens},
	}
}

// JudgeResult is the raw outcome of invoking a single judge. When
// Succeeded is false, RawResponse holds a human-readable error
// description rather than a critique.
type JudgeResult struct {
	JudgeID     string `json:"judge_id"`
	ModelRef    string `json:"model_ref"`
	RawResponse string `json:"raw_response"`
	Succeeded   bool   `json:"succeeded"`
}
