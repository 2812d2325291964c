package lexer_test

import (
	"testing"

	"github.com/minihs-lang/minihs/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokTexts(t *testing.T, src string) []string {
	t.Helper()
	toks, err := lexer.New(src).Lex()
	require.NoError(t, err)
	var out []string
	for _, tok := range toks {
		if tok.Kind == lexer.EOF {
			continue
		}
		out = append(out, tok.Text)
	}
	return out
}

func TestLexArithmetic(t *testing.T) {
	got := tokTexts(t, "x = 1 + 2 * 3")
	assert.Equal(t, []string{"x", "=", "1", "+", "2", "*", "3"}, got)
}

func TestLexKeywordsAndSymbols(t *testing.T) {
	got := tokTexts(t, "f :: Int -> Int\nf x = if x <= 0 then 0 else x")
	assert.Equal(t, []string{
		"f", "::", "Int", "->", "Int",
		"f", "x", "=", "if", "x", "<=", "0", "then", "0", "else", "x",
	}, got)
}

func TestLexStringAndCharEscapes(t *testing.T) {
	got := tokTexts(t, `s = "a\nb"
c = '\''`)
	require.Len(t, got, 6)
	assert.Equal(t, "a\nb", got[2])
	assert.Equal(t, "'", got[5])
}

func TestLexCommentsIgnored(t *testing.T) {
	got := tokTexts(t, "-- a comment\nx = 1 -- trailing")
	assert.Equal(t, []string{"x", "=", "1"}, got)
}

func TestLexListAndRangeSymbols(t *testing.T) {
	got := tokTexts(t, "xs = [1, 2 .. 10]")
	assert.Equal(t, []string{"xs", "=", "[", "1", ",", "2", "..", "10", "]"}, got)
}

func TestLexUnterminatedStringErrors(t *testing.T) {
	_, err := lexer.New(`"abc`).Lex()
	assert.Error(t, err)
}
