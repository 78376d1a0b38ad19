package chroma_test

import (
	"testing"

	tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"
	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() tifbench.Palette {
	return tifbench.Palette{
		Keyword: "#cba6f7",
		Comment: "#6c7086",
		String:  "#a6e3a1",
		Number:  "#fab387",
	}
}

func TestNewTokenizer_RequiresStyleFunc(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)

	assert.Error(t, err)
}

func TestTokenizer_TokenizeLines_SplitsByLine(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	source := "def strategy(candles):\n    return \"buy\"\n"
	lines := tokenizer.TokenizeLines("Python", source)

	require.Len(t, lines, 2)

	var first string
	for _, tok := range lines[0] {
		first += tok.Text
	}
	assert.Equal(t, "def strategy(candles):", first)
}

func TestTokenizer_TokenizeLines_StylesKeywords(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	lines := tokenizer.TokenizeLines("Python", "def f():\n    pass\n")

	require.NotEmpty(t, lines)
	var found bool
	for _, line := range lines {
		for _, tok := range line {
			if tok.Text == "def" {
				found = true
				assert.Equal(t, "#cba6f7", tok.Style.Foreground)
				assert.True(t, tok.Style.Bold)
			}
		}
	}
	assert.True(t, found, "expected a 'def' keyword token")
}

func TestTokenizer_TokenizeLines_HandlesMultilineStrings(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	source := "\"\"\"SMA crossover\nstrategy\"\"\"\nx = 1\n"
	lines := tokenizer.TokenizeLines("Python", source)

	// The docstring spans two lines; the assignment adds a third.
	require.Len(t, lines, 3)
}

func TestTokenizer_TokenizeLines_UnsupportedLanguageReturnsNil(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	assert.Nil(t, tokenizer.TokenizeLines("not-a-language", "x = 1"))
}

func TestTokenizer_TokenizeLines_EmptySource(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	lines := tokenizer.TokenizeLines("Python", "")

	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}
