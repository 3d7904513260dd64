// Package token defines the lexical vocabulary of the language: the set of
// token kinds, the source span every token carries, and the concrete Token
// value the lexer produces.
package token

import "fmt"

// Kind identifies which lexical category a Token belongs to.
type Kind int

const (
	Number Kind = iota
	String
	Ident

	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Colon
	Semicolon
	Dot

	Assign     // =
	Equals     // ==
	AddAssign  // +=
	SubAssign  // -=
	MulAssign  // *=
	DivAssign  // /=
	Plus       // +
	Minus      // -
	Asterisk   // *
	Pow        // **
	Slash      // /
	GreaterThan
	LessThan

	Let
	Fn
	Return
	Break
	Continue
	While
	If
	Else
	True
	False
)

var names = map[Kind]string{
	Number:      "Number",
	String:      "String",
	Ident:       "Ident",
	LeftParen:   "(",
	RightParen:  ")",
	LeftBrace:   "{",
	RightBrace:  "}",
	LeftBracket: "[",
	RightBracket: "]",
	Comma:       ",",
	Colon:       ":",
	Semicolon:   ";",
	Dot:         ".",
	Assign:      "=",
	Equals:      "==",
	AddAssign:   "+=",
	SubAssign:   "-=",
	MulAssign:   "*=",
	DivAssign:   "/=",
	Plus:        "+",
	Minus:       "-",
	Asterisk:    "*",
	Pow:         "**",
	Slash:       "/",
	GreaterThan: ">",
	LessThan:    "<",
	Let:         "let",
	Fn:          "fn",
	Return:      "return",
	Break:       "break",
	Continue:    "continue",
	While:       "while",
	If:          "if",
	Else:        "else",
	True:        "true",
	False:       "false",
}

// String renders the kind's canonical surface spelling, used for
// diagnostics. The lexer's keyword/punctuator table carries its own text.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a half-open range of character offsets into the source text.
type Span struct {
	Start int
	End   int
}

// Token is one lexical unit. Num is populated when Kind == Number; Text is
// populated when Kind == String or Kind == Ident.
type Token struct {
	Span Span
	Kind Kind
	Num  float64
	Text string
}

// IsBinaryOperator reports whether this token's kind can appear as a binary
// operator in an expression.
func (t Token) IsBinaryOperator() bool {
	switch t.Kind {
	case Plus, Minus, Asterisk, Pow, Slash, GreaterThan, LessThan, Equals:
		return true
	default:
		return false
	}
}

// IsAssignOperator reports whether this token's kind can appear as the
// operator of a VarAssign statement.
func (t Token) IsAssignOperator() bool {
	switch t.Kind {
	case Assign, AddAssign, SubAssign, MulAssign, DivAssign:
		return true
	default:
		return false
	}
}
