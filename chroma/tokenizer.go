// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Compile-time interface verification.
var _ tifbench.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to tifbench styles.
type StyleFunc func(chromalib.TokenType) tifbench.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a tifbench.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines tokenizes source code with full context, then splits tokens by line.
// This correctly handles multi-line constructs like docstrings and block comments.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]tifbench.Token {
	if source == "" {
		return [][]tifbench.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var allTokens []tifbench.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		style := t.styleFunc(token.Type)
		allTokens = append(allTokens, tifbench.Token{
			Text:  token.Value,
			Style: style,
		})
	}

	return splitTokensByLine(allTokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
func splitTokensByLine(tokens []tifbench.Token) [][]tifbench.Token {
	if len(tokens) == 0 {
		return [][]tifbench.Token{}
	}

	var result [][]tifbench.Token
	var currentLine []tifbench.Token

	for _, tok := range tokens {
		// Token without newlines goes directly to current line
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		// Split the token at newline boundaries
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, tifbench.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			// If this isn't the last part, we hit a newline - finalize the line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	// Don't forget the last line if it has content
	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
