package tifbench

// Token represents a syntax-highlighted segment of strategy code.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// TokenizeLines splits source code into per-line highlighted tokens
	// for the given language. Returns nil if the language is not
	// supported.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector determines the programming language of an artifact.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path, or
	// an empty string if the language cannot be determined.
	DetectFromPath(path string) string
}

// Palette holds the semantic colors used for syntax highlighting.
// Colors are hex strings ("#RRGGBB"); empty means terminal default.
type Palette struct {
	Keyword     string
	Type        string
	Comment     string
	String      string
	Number      string
	Operator    string
	Function    string
	Constant    string
	Punctuation string
}
