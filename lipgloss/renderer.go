package lipgloss

import (
	"fmt"
	"strings"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	lipglosslib "github.com/charmbracelet/lipgloss"
)

// ruleWidth is the width of section rules and banners.
const ruleWidth = 80

// Renderer formats judge critiques and consensus reports for terminal display.
type Renderer struct {
	approve lipglosslib.Style
	reject  lipglosslib.Style
	unknown lipglosslib.Style
	muted   lipglosslib.Style
	header  lipglosslib.Style
}

// NewRenderer creates a Renderer using theme's colors.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		approve: lipglosslib.NewStyle().Foreground(lipglosslib.Color(theme.Approve)).Bold(true),
		reject:  lipglosslib.NewStyle().Foreground(lipglosslib.Color(theme.Reject)).Bold(true),
		unknown: lipglosslib.NewStyle().Foreground(lipglosslib.Color(theme.Unknown)).Bold(true),
		muted:   lipglosslib.NewStyle().Foreground(lipglosslib.Color(theme.Muted)),
		header:  lipglosslib.NewStyle().Foreground(lipglosslib.Color(theme.Header)).Bold(true),
	}
}

// Banner renders a full-width section banner around title.
func (r *Renderer) Banner(title string) string {
	rule := strings.Repeat("=", ruleWidth)
	return rule + "\n" + r.header.Render(title) + "\n" + rule
}

// RenderVerdict returns the colored display name of a verdict.
func (r *Renderer) RenderVerdict(v tifbench.Verdict) string {
	switch v {
	case tifbench.VerdictApprove:
		return r.approve.Render(v.String())
	case tifbench.VerdictReject:
		return r.reject.Render(v.String())
	default:
		return r.unknown.Render(v.String())
	}
}

// RenderResult formats one judge's critique: model line, colored
// verdict, and the reasoning body between rules. For failed
// invocations the body is the captured error description.
func (r *Renderer) RenderResult(res tifbench.JudgeResult, v tifbench.Verdict) string {
	model := res.ModelRef
	if model == "" {
		model = res.JudgeID
	}

	body := res.RawResponse
	if res.Succeeded {
		if reasoning, _ := tifbench.SplitCritique(res.RawResponse); reasoning != "" {
			body = reasoning
		}
	}

	rule := r.muted.Render(strings.Repeat("-", ruleWidth))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Model: %s\n", model)
	fmt.Fprintf(&sb, "Verdict: %s\n", r.RenderVerdict(v))
	sb.WriteString("\nReasoning:\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(body + "\n")
	sb.WriteString(rule + "\n")
	return sb.String()
}

// RenderSummary formats the per-judge verdict table, the approval
// count, and the consensus sentence.
func (r *Renderer) RenderSummary(run tifbench.RunResult) string {
	var sb strings.Builder
	for i, res := range run.Results {
		fmt.Fprintf(&sb, "%-12s (%-40s): %s\n", res.JudgeID, res.ModelRef, r.RenderVerdict(run.Verdicts[i]))
	}

	rep := run.Report
	fmt.Fprintf(&sb, "\nConsensus: %d/%d models approved the strategy\n", rep.Approves, rep.Total())

	switch rep.Outcome {
	case tifbench.ConsensusUnanimousApprove:
		sb.WriteString(r.approve.Render("✓ All models agree: Strategy correctly implements the requirements") + "\n")
	case tifbench.ConsensusUnanimousReject:
		sb.WriteString(r.reject.Render("✗ All models agree: Strategy has issues and needs revision") + "\n")
	default:
		sb.WriteString(r.unknown.Render("⚠ Mixed results: Review individual critiques for details") + "\n")
	}
	return sb.String()
}

// RenderCode renders highlighted code lines, falling back to the plain
// source when lines is nil (unsupported language).
func (r *Renderer) RenderCode(lines [][]tifbench.Token, source string) string {
	if lines == nil {
		return source
	}

	var sb strings.Builder
	for _, line := range lines {
		for _, tok := range line {
			style := lipglosslib.NewStyle()
			if tok.Style.Foreground != "" {
				style = style.Foreground(lipglosslib.Color(tok.Style.Foreground))
			}
			if tok.Style.Bold {
				style = style.Bold(true)
			}
			sb.WriteString(style.Render(tok.Text))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
