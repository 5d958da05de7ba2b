// Package parser builds an AST from the token stream by recursive descent.
// Each grammar rule is one method; every rule consumes tokens through eat,
// and the first mismatch aborts the whole parse.
package parser

import (
	"fmt"

	"github.com/sargas/spi/pkg/ast"
	"github.com/sargas/spi/pkg/lexer"
	"github.com/sargas/spi/pkg/token"
)

// SyntaxError reports an expected-versus-actual token mismatch, or trailing
// input after the top grammar rule.
type SyntaxError struct {
	Expected token.Kind
	Actual   token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: expected %s, found %s at %s", e.Expected, e.Actual, e.Actual.Pos)
}

// Parser consumes one token stream and produces one AST root. Build a fresh
// Parser per translation; a parser is not reusable after Parse returns.
type Parser struct {
	lex    *lexer.Lexer
	cur    token.Token
	primed bool
}

// New wraps a lexer. The first token is pulled lazily on the first parse
// call so lexical errors surface through Parse rather than the constructor.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lex: l}
}

func (p *Parser) prime() error {
	if p.primed {
		return nil
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	p.primed = true
	return nil
}

// eat advances past the current token when it has the expected kind and
// fails with a SyntaxError otherwise.
func (p *Parser) eat(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, &SyntaxError{Expected: kind, Actual: p.cur}
	}
	consumed := p.cur
	next, err := p.lex.NextToken()
	if err != nil {
		return token.Token{}, err
	}
	p.cur = next
	return consumed, nil
}

// Parse parses a full `PROGRAM ... .` translation unit and fails if any
// tokens remain after the closing dot.
func (p *Parser) Parse() (*ast.Program, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}
	program, err := p.program()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.EOF); err != nil {
		return nil, err
	}
	return program, nil
}

// ParseExpression parses the bare arithmetic dialect: a single expression
// followed by end of input.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.EOF); err != nil {
		return nil, err
	}
	return expr, nil
}

// program : PROGRAM variable SEMI block DOT
func (p *Parser) program() (*ast.Program, error) {
	if _, err := p.eat(token.Program); err != nil {
		return nil, err
	}
	name, err := p.eat(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Semi); err != nil {
		return nil, err
	}
	block, err := p.block()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Dot); err != nil {
		return nil, err
	}
	return &ast.Program{Name: name, Block: block}, nil
}

// block : declarations compound_statement
func (p *Parser) block() (*ast.Block, error) {
	declarations, err := p.declarations()
	if err != nil {
		return nil, err
	}
	compound, err := p.compoundStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Declarations: declarations, Compound: compound}, nil
}

// declarations : (VAR (variable_declaration SEMI)+)?
func (p *Parser) declarations() ([]*ast.VariableDeclaration, error) {
	var declarations []*ast.VariableDeclaration
	if p.cur.Kind != token.Var {
		return declarations, nil
	}
	if _, err := p.eat(token.Var); err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Ident {
		decls, err := p.variableDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decls...)
		if _, err := p.eat(token.Semi); err != nil {
			return nil, err
		}
	}
	if len(declarations) == 0 {
		return nil, &SyntaxError{Expected: token.Ident, Actual: p.cur}
	}
	return declarations, nil
}

// variable_declaration : ID (COMMA ID)* COLON type_spec
func (p *Parser) variableDeclaration() ([]*ast.VariableDeclaration, error) {
	first, err := p.eat(token.Ident)
	if err != nil {
		return nil, err
	}
	names := []*ast.Var{{Token: first}}
	for p.cur.Kind == token.Comma {
		if _, err := p.eat(token.Comma); err != nil {
			return nil, err
		}
		name, err := p.eat(token.Ident)
		if err != nil {
			return nil, err
		}
		names = append(names, &ast.Var{Token: name})
	}
	if _, err := p.eat(token.Colon); err != nil {
		return nil, err
	}
	typeSpec, err := p.typeSpec()
	if err != nil {
		return nil, err
	}
	declarations := make([]*ast.VariableDeclaration, 0, len(names))
	for _, name := range names {
		declarations = append(declarations, &ast.VariableDeclaration{Variable: name, Type: typeSpec})
	}
	return declarations, nil
}

// type_spec : INTEGER | REAL
func (p *Parser) typeSpec() (*ast.TypeSpec, error) {
	switch p.cur.Kind {
	case token.Integer, token.Real:
		tok, err := p.eat(p.cur.Kind)
		if err != nil {
			return nil, err
		}
		return &ast.TypeSpec{Token: tok}, nil
	default:
		return nil, &SyntaxError{Expected: token.Integer, Actual: p.cur}
	}
}

// compound_statement : BEGIN statement_list END
func (p *Parser) compoundStatement() (*ast.Compound, error) {
	begin, err := p.eat(token.Begin)
	if err != nil {
		return nil, err
	}
	statements, err := p.statementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.End); err != nil {
		return nil, err
	}
	return &ast.Compound{Position: begin.Pos, Statements: statements}, nil
}

// statement_list : statement (SEMI statement)*
func (p *Parser) statementList() ([]ast.Statement, error) {
	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	statements := []ast.Statement{first}
	for p.cur.Kind == token.Semi {
		if _, err := p.eat(token.Semi); err != nil {
			return nil, err
		}
		next, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, next)
	}
	return statements, nil
}

// statement : compound_statement | assignment_statement | empty
func (p *Parser) statement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Begin:
		return p.compoundStatement()
	case token.Ident:
		return p.assignmentStatement()
	default:
		return &ast.NoOp{Position: p.cur.Pos}, nil
	}
}

// assignment_statement : variable ASSIGN expr
func (p *Parser) assignmentStatement() (*ast.Assign, error) {
	target, err := p.variable()
	if err != nil {
		return nil, err
	}
	op, err := p.eat(token.Assign)
	if err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target, Op: op, Value: value}, nil
}

// variable : ID
func (p *Parser) variable() (*ast.Var, error) {
	tok, err := p.eat(token.Ident)
	if err != nil {
		return nil, err
	}
	return &ast.Var{Token: tok}, nil
}

// expr : term ((PLUS | MINUS) term)*
func (p *Parser) expr() (ast.Expression, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Plus || p.cur.Kind == token.Minus {
		op, err := p.eat(p.cur.Kind)
		if err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// term : factor ((MUL | INTEGER_DIV | FLOAT_DIV) factor)*
func (p *Parser) term() (ast.Expression, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Multiply || p.cur.Kind == token.IntegerDiv || p.cur.Kind == token.FloatDiv {
		op, err := p.eat(p.cur.Kind)
		if err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// factor : (PLUS | MINUS) factor | INTEGER_CONST | REAL_CONST
//        | LPAREN expr RPAREN | variable
func (p *Parser) factor() (ast.Expression, error) {
	switch p.cur.Kind {
	case token.Plus, token.Minus:
		op, err := p.eat(p.cur.Kind)
		if err != nil {
			return nil, err
		}
		child, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Child: child}, nil
	case token.IntegerConst, token.RealConst:
		tok, err := p.eat(p.cur.Kind)
		if err != nil {
			return nil, err
		}
		return &ast.Num{Token: tok}, nil
	case token.LParen:
		if _, err := p.eat(token.LParen); err != nil {
			return nil, err
		}
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return p.variable()
	}
}
