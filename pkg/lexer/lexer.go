// Package lexer turns source text into a stream of tokens. The lexer is a
// one-pass cursor over the input; once it reports EOF it keeps reporting EOF.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/sargas/spi/pkg/token"
)

// Error is a fatal lexical error: an unrecognized character or an
// unterminated comment.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer: %s at %s", e.Message, e.Pos)
}

// Lexer scans one source string. Not restartable and not safe for reuse
// across inputs; build a fresh Lexer per translation.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

func (l *Lexer) current() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos+1 >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos+1], true
}

func (l *Lexer) advance() {
	if ch, ok := l.current(); ok {
		if ch == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

// skipNonTokens discards whitespace and brace comments before the next
// token. An opening brace with no closing brace is a lexical error.
func (l *Lexer) skipNonTokens() error {
	for {
		ch, ok := l.current()
		if !ok {
			return nil
		}
		switch {
		case isWhitespace(ch):
			l.advance()
		case ch == '{':
			start := l.position()
			l.advance()
			for {
				ch, ok := l.current()
				if !ok {
					return &Error{Message: "unterminated comment", Pos: start}
				}
				l.advance()
				if ch == '}' {
					break
				}
			}
		default:
			return nil
		}
	}
}

// NextToken scans and returns the next token. After the input is exhausted
// it returns an EOF token on every call.
func (l *Lexer) NextToken() (token.Token, error) {
	if err := l.skipNonTokens(); err != nil {
		return token.Token{}, err
	}

	pos := l.position()
	ch, ok := l.current()
	if !ok {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}

	switch {
	case isDigit(ch):
		return l.number(pos)
	case isIdentStart(ch):
		return l.identifier(pos), nil
	}

	if ch == ':' {
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			l.advance()
			return token.Token{Kind: token.Assign, Lexeme: ":=", Pos: pos}, nil
		}
	}

	if kind, ok := singleCharKinds[ch]; ok {
		l.advance()
		return token.Token{Kind: kind, Lexeme: string(ch), Pos: pos}, nil
	}

	return token.Token{}, &Error{
		Message: fmt.Sprintf("unrecognized character %q", ch),
		Pos:     pos,
	}
}

var singleCharKinds = map[rune]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Multiply,
	'/': token.FloatDiv,
	'(': token.LParen,
	')': token.RParen,
	';': token.Semi,
	':': token.Colon,
	',': token.Comma,
	'.': token.Dot,
}

func (l *Lexer) digits() string {
	start := l.pos
	for {
		ch, ok := l.current()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	return string(l.src[start:l.pos])
}

// number scans an integer constant, or a real constant when the digits are
// followed by a '.' and at least one more digit. A bare trailing '.' is left
// for the DOT token so `END.` style terminators still lex.
func (l *Lexer) number(pos token.Position) (token.Token, error) {
	whole := l.digits()
	if ch, ok := l.current(); ok && ch == '.' {
		if next, ok := l.peek(); ok && isDigit(next) {
			l.advance()
			frac := l.digits()
			lexeme := whole + "." + frac
			value, err := strconv.ParseFloat(lexeme, 64)
			if err != nil {
				return token.Token{}, &Error{
					Message: fmt.Sprintf("malformed real constant %q", lexeme),
					Pos:     pos,
				}
			}
			return token.Token{Kind: token.RealConst, Lexeme: lexeme, Float: value, Pos: pos}, nil
		}
	}
	value, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return token.Token{}, &Error{
			Message: fmt.Sprintf("integer constant %q out of range", whole),
			Pos:     pos,
		}
	}
	return token.Token{Kind: token.IntegerConst, Lexeme: whole, Int: value, Pos: pos}, nil
}

func (l *Lexer) identifier(pos token.Position) token.Token {
	start := l.pos
	l.advance()
	for {
		ch, ok := l.current()
		if !ok || !isIdentPart(ch) {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Pos: pos}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
