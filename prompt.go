package tifbench

import "fmt"

// CriticSystemPrompt defines the evaluation protocol shared by every
// judge: reason first, then a bare Yes or No alone on the final line.
// The last-line convention is an external protocol constraint — not all
// backends support structured output reliably.
const CriticSystemPrompt = `You are a critic agent. Your job is to check if a proposed trading strategy matches the user's original request.

## Your Task
1. Analyze whether the strategy correctly and fully addresses the user request.
2. If it does, explain briefly why.
3. If it does not, point out the specific gaps, mistakes, or mismatches.
4. Be strict: even small missing requirements should be flagged.

CRITICAL: Provide your reasoning first, then end your response with ONLY "Yes" or "No" on the last line. DO NOT use JSON format.`

// BuildUserMessage renders the user prompt for a request. The output is
// deterministic: the same request always produces the same bytes.
func BuildUserMessage(req EvaluationRequest) string {
	return fmt.Sprintf(`## User Request (Prompt)
%s

## Generated Strategy
%s

## Code
%s
`, req.Prompt, req.Strategy, req.Code)
}

// Messages returns the two-message exchange sent to a judge backend.
func Messages(req EvaluationRequest) []Message {
	return []Message{
		{Role: RoleSystem, Content: CriticSystemPrompt},
		{Role: RoleUser, Content: BuildUserMessage(req)},
	}
}
