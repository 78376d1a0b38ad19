package tifbench

import "strings"

// Verdict is the classification extracted from one judge's response.
type Verdict int

// Verdict values.
const (
	VerdictUnknown Verdict = iota
	VerdictApprove
	VerdictReject
)

// String returns the display name of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictApprove:
		return "Approve"
	case VerdictReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// ParseVerdict extracts a verdict from a judge result. The evaluation
// protocol instructs judges to place a bare Yes/No token on the final
// line, so classification looks only at the last non-empty line,
// trimmed and case-insensitive. Transport failures and unclassifiable
// final lines map to VerdictUnknown.
func ParseVerdict(r JudgeResult) Verdict {
	if !r.Succeeded {
		return VerdictUnknown
	}
	switch strings.ToLower(lastNonEmptyLine(r.RawResponse)) {
	case "yes":
		return VerdictApprove
	case "no":
		return VerdictReject
	default:
		return VerdictUnknown
	}
}

// SplitCritique separates a raw response into its reasoning body and
// its final verdict line. A single-line response is all verdict: no
// reasoning is not an error.
func SplitCritique(raw string) (reasoning, verdict string) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	verdict = strings.TrimSpace(lines[len(lines)-1])
	reasoning = strings.TrimSpace(strings.Join(lines[:len(lines)-1], "\n"))
	return reasoning, verdict
}

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
