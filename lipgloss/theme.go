// Package lipgloss renders evaluation reports using the Lipgloss styling library.
package lipgloss

import tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"

// Theme holds the colors used by the report renderer.
// Colors are hex strings in "#RRGGBB" format.
type Theme struct {
	Approve string // Verdict color for approvals
	Reject  string // Verdict color for rejections
	Unknown string // Verdict color for unknown/failed verdicts
	Muted   string // Rules and secondary text
	Header  string // Section banners

	palette tifbench.Palette
}

// Palette returns the syntax-highlighting palette for this theme.
func (t Theme) Palette() tifbench.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() Theme {
	return Theme{
		Approve: "#a6e3a1", // Green
		Reject:  "#f38ba8", // Red
		Unknown: "#f9e2af", // Yellow
		Muted:   "#6c7086",
		Header:  "#89b4fa",
		palette: tifbench.Palette{
			Keyword:     "#cba6f7",
			Type:        "#f9e2af",
			Comment:     "#6c7086",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Operator:    "#94e2d5",
			Function:    "#89b4fa",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}
