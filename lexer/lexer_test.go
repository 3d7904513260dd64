package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elijah-potter/thrax-language/token"
)

// represents a test case for Lex: source in, expected token kinds out.
type lexCase struct {
	Input    string
	Expected []token.Kind
}

func TestLex_Kinds(t *testing.T) {
	tests := []lexCase{
		{
			Input:    `123 + 2 31 - 12`,
			Expected: []token.Kind{token.Number, token.Plus, token.Number, token.Number, token.Minus, token.Number},
		},
		{
			Input:    `{ } + [] abc - a12`,
			Expected: []token.Kind{token.LeftBrace, token.RightBrace, token.Plus, token.LeftBracket, token.RightBracket, token.Ident, token.Minus, token.Ident},
		},
		{
			Input:    `let x = 1 + 2 * 3;`,
			Expected: []token.Kind{token.Let, token.Ident, token.Assign, token.Number, token.Plus, token.Number, token.Asterisk, token.Number, token.Semicolon},
		},
		{
			Input:    `x += 1; y -= 2; z *= 3; w /= 4; a == b; a ** b;`,
			Expected: []token.Kind{
				token.Ident, token.AddAssign, token.Number, token.Semicolon,
				token.Ident, token.SubAssign, token.Number, token.Semicolon,
				token.Ident, token.MulAssign, token.Number, token.Semicolon,
				token.Ident, token.DivAssign, token.Number, token.Semicolon,
				token.Ident, token.Equals, token.Ident, token.Semicolon,
				token.Ident, token.Pow, token.Ident, token.Semicolon,
			},
		},
		{
			Input:    "// a comment\nlet x = 1; /* block\ncomment */ return x;",
			Expected: []token.Kind{token.Let, token.Ident, token.Assign, token.Number, token.Semicolon, token.Return, token.Ident, token.Semicolon},
		},
		{
			Input:    `o.b; o["b"];`,
			Expected: []token.Kind{token.Ident, token.Dot, token.Ident, token.Semicolon, token.Ident, token.LeftBracket, token.String, token.RightBracket, token.Semicolon},
		},
	}

	for _, tc := range tests {
		toks, err := Lex(tc.Input)
		require.NoError(t, err, tc.Input)
		kinds := make([]token.Kind, len(toks))
		for i, tok := range toks {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, tc.Expected, kinds, tc.Input)
	}
}

func TestLex_KeywordWordBoundary(t *testing.T) {
	toks, err := Lex(`lettuce iffy whiley truecolor`)
	require.NoError(t, err)
	require.Len(t, toks, 4)
	for _, tok := range toks {
		assert.Equal(t, token.Ident, tok.Kind)
	}
}

func TestLex_NumberBeforeIdent(t *testing.T) {
	toks, err := Lex(`1abc abc1`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, token.Ident, toks[2].Kind)
	assert.Equal(t, "abc1", toks[2].Text)
}

func TestLex_NonFiniteRejectedAsNumber(t *testing.T) {
	toks, err := Lex(`NaN Infinity`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
}

func TestLex_Spans(t *testing.T) {
	toks, err := Lex(`let x = 42;`)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, "let", `let x = 42;`[toks[0].Span.Start:toks[0].Span.End])
	assert.Equal(t, "x", `let x = 42;`[toks[1].Span.Start:toks[1].Span.End])
	assert.Equal(t, "42", `let x = 42;`[toks[3].Span.Start:toks[3].Span.End])
}

func TestLex_UnterminatedStringIsNotAStringToken(t *testing.T) {
	toks, err := Lex(`"unterminated`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.Ident, toks[0].Kind)
}

func TestLex_StringNoEscapes(t *testing.T) {
	toks, err := Lex(`"hello world"`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "hello world", toks[0].Text)
}
