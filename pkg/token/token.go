// Package token defines the lexical token set shared by the lexer, the
// parser, and the AST.
package token

import (
	"fmt"
	"strings"
)

// Kind identifies the token category.
type Kind int

const (
	EOF Kind = iota
	IntegerConst
	RealConst
	Plus
	Minus
	Multiply
	IntegerDiv
	FloatDiv
	LParen
	RParen
	Ident
	Assign
	Semi
	Colon
	Comma
	Dot

	// Reserved keywords.
	Program
	Var
	Begin
	End
	Integer
	Real
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case IntegerConst:
		return "INTEGER_CONST"
	case RealConst:
		return "REAL_CONST"
	case Plus:
		return "PLUS"
	case Minus:
		return "MINUS"
	case Multiply:
		return "MUL"
	case IntegerDiv:
		return "INTEGER_DIV"
	case FloatDiv:
		return "FLOAT_DIV"
	case LParen:
		return "LPAREN"
	case RParen:
		return "RPAREN"
	case Ident:
		return "ID"
	case Assign:
		return "ASSIGN"
	case Semi:
		return "SEMI"
	case Colon:
		return "COLON"
	case Comma:
		return "COMMA"
	case Dot:
		return "DOT"
	case Program:
		return "PROGRAM"
	case Var:
		return "VAR"
	case Begin:
		return "BEGIN"
	case End:
		return "END"
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Position locates a token in the source text, 1-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is an immutable lexeme classified by the lexer. Int and Float hold
// the converted literal value for IntegerConst and RealConst tokens; every
// token keeps its raw lexeme with the original casing.
type Token struct {
	Kind   Kind
	Lexeme string
	Int    int64
	Float  float64
	Pos    Position
}

func (t Token) String() string {
	switch t.Kind {
	case IntegerConst:
		return fmt.Sprintf("Token(%s, %d)", t.Kind, t.Int)
	case RealConst:
		return fmt.Sprintf("Token(%s, %g)", t.Kind, t.Float)
	case EOF:
		return "Token(EOF)"
	default:
		return fmt.Sprintf("Token(%s, %q)", t.Kind, t.Lexeme)
	}
}

var keywords = map[string]Kind{
	"PROGRAM": Program,
	"VAR":     Var,
	"BEGIN":   Begin,
	"END":     End,
	"INTEGER": Integer,
	"REAL":    Real,
	"DIV":     IntegerDiv,
}

// LookupIdent reclassifies an identifier lexeme as a reserved keyword when
// it matches one case-insensitively, and returns Ident otherwise.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[strings.ToUpper(lexeme)]; ok {
		return kind
	}
	return Ident
}
