// Package lexer turns source text into a token stream.
//
// The cursor walks the source one scan at a time: skip ignorables, then try
// each of the four token scanners in a fixed order and take the first that
// succeeds. This mirrors the reference implementation's lex_to_end/lex_token
// dispatch rather than a hand-written state machine with one big switch.
package lexer

import (
	"math"
	"strconv"
	"unicode"

	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/token"
)

// identTerminators are the characters that end an identifier scan. Operator
// characters such as + and = are deliberately absent: those tokens are
// caught earlier by the keyword/punctuator scanner, so the identifier
// scanner never needs to stop on them.
const identTerminators = "(){},;:[]."

func isIdentTerminator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	for _, t := range identTerminators {
		if r == t {
			return true
		}
	}
	return false
}

func isIdentContinuation(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Lex runs the full pipeline over source and returns every token, in order,
// or the first *langerr.LexError encountered.
func Lex(source string) ([]token.Token, error) {
	src := []rune(source)
	cursor := 0
	var tokens []token.Token

	for {
		cursor += skipIgnorable(src[cursor:])
		if cursor >= len(src) {
			return tokens, nil
		}

		tok, consumed, ok := lexToken(src[cursor:])
		if !ok {
			return nil, &langerr.LexError{Index: cursor}
		}
		tok.Span = token.Span{Start: cursor, End: cursor + consumed}
		tokens = append(tokens, tok)
		cursor += consumed
	}
}

// skipIgnorable skips whitespace runs and // and /* */ comments, repeating
// until the cursor stops moving (a comment can be followed by more
// whitespace or another comment).
func skipIgnorable(src []rune) int {
	total := 0
	for {
		advanced := 0

		for total+advanced < len(src) && unicode.IsSpace(src[total+advanced]) {
			advanced++
		}

		rest := src[total+advanced:]
		if len(rest) >= 2 && rest[0] == '/' && rest[1] == '/' {
			i := 2
			for i < len(rest) && rest[i] != '\n' {
				i++
			}
			advanced += i
		} else if len(rest) >= 2 && rest[0] == '/' && rest[1] == '*' {
			i := 2
			for i+1 < len(rest) && !(rest[i] == '*' && rest[i+1] == '/') {
				i++
			}
			if i+1 < len(rest) {
				i += 2
			} else {
				i = len(rest)
			}
			advanced += i
		}

		if advanced == 0 {
			return total
		}
		total += advanced
	}
}

// lexToken tries each scanner in order and returns the first match.
func lexToken(src []rune) (token.Token, int, bool) {
	if tok, n, ok := lexNumber(src); ok {
		return tok, n, true
	}
	if tok, n, ok := lexString(src); ok {
		return tok, n, true
	}
	if tok, n, ok := lexKeywordOrPunct(src); ok {
		return tok, n, true
	}
	if tok, n, ok := lexIdent(src); ok {
		return tok, n, true
	}
	return token.Token{}, 0, false
}

// lexNumber takes the longest prefix of src that parses as a finite
// float64, shrinking from the right one rune at a time. NaN and Inf are
// rejected so that identifiers spelled like "Infinity" fall through to the
// identifier scanner instead.
func lexNumber(src []rune) (token.Token, int, bool) {
	for end := len(src); end > 0; end-- {
		n, err := strconv.ParseFloat(string(src[:end]), 64)
		if err != nil {
			continue
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			continue
		}
		return token.Token{Kind: token.Number, Num: n}, end, true
	}
	return token.Token{}, 0, false
}

// lexString scans a "..." literal with no escape sequences.
func lexString(src []rune) (token.Token, int, bool) {
	if len(src) == 0 || src[0] != '"' {
		return token.Token{}, 0, false
	}
	for i := 1; i < len(src); i++ {
		if src[i] == '"' {
			return token.Token{Kind: token.String, Text: string(src[1:i])}, i + 1, true
		}
	}
	return token.Token{}, 0, false
}

// punctuator is one entry of the ordered keyword/punctuator table.
type punctuator struct {
	text string
	kind token.Kind
	word bool // true for alphabetic keywords, which need a boundary check
}

// punctuators is tried top to bottom; multi-character operators are listed
// before any single-character prefix they share, per the lexing contract.
var punctuators = []punctuator{
	{"**", token.Pow, false},
	{"==", token.Equals, false},
	{"+=", token.AddAssign, false},
	{"-=", token.SubAssign, false},
	{"*=", token.MulAssign, false},
	{"/=", token.DivAssign, false},
	{"(", token.LeftParen, false},
	{")", token.RightParen, false},
	{"{", token.LeftBrace, false},
	{"}", token.RightBrace, false},
	{"[", token.LeftBracket, false},
	{"]", token.RightBracket, false},
	{",", token.Comma, false},
	{":", token.Colon, false},
	{";", token.Semicolon, false},
	{".", token.Dot, false},
	{"=", token.Assign, false},
	{"+", token.Plus, false},
	{"-", token.Minus, false},
	{"*", token.Asterisk, false},
	{"/", token.Slash, false},
	{">", token.GreaterThan, false},
	{"<", token.LessThan, false},
	{"let", token.Let, true},
	{"fn", token.Fn, true},
	{"return", token.Return, true},
	{"break", token.Break, true},
	{"continue", token.Continue, true},
	{"while", token.While, true},
	{"if", token.If, true},
	{"else", token.Else, true},
	{"true", token.True, true},
	{"false", token.False, true},
}

// lexKeywordOrPunct matches src against the ordered table above. Word
// entries additionally require that the character following the match (if
// any) not continue an identifier, so `lettuce` lexes as one identifier
// rather than `let` followed by `tuce`.
func lexKeywordOrPunct(src []rune) (token.Token, int, bool) {
	for _, p := range punctuators {
		runes := []rune(p.text)
		if len(src) < len(runes) {
			continue
		}
		if string(src[:len(runes)]) != p.text {
			continue
		}
		if p.word && len(src) > len(runes) && isIdentContinuation(src[len(runes)]) {
			continue
		}
		return token.Token{Kind: p.kind}, len(runes), true
	}
	return token.Token{}, 0, false
}

// lexIdent consumes runes until an identifier terminator.
func lexIdent(src []rune) (token.Token, int, bool) {
	i := 0
	for i < len(src) && !isIdentTerminator(src[i]) {
		i++
	}
	if i == 0 {
		return token.Token{}, 0, false
	}
	return token.Token{Kind: token.Ident, Text: string(src[:i])}, i, true
}
