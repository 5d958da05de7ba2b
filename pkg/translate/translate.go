// Package translate renders expression trees in alternative notations. The
// translators are independent traversals over the same AST variant set as
// the evaluator.
package translate

import (
	"fmt"

	"github.com/sargas/spi/pkg/ast"
	"github.com/sargas/spi/pkg/token"
)

func operatorSymbol(op token.Token) (string, error) {
	switch op.Kind {
	case token.Plus:
		return "+", nil
	case token.Minus:
		return "-", nil
	case token.Multiply:
		return "*", nil
	case token.IntegerDiv, token.FloatDiv:
		return "/", nil
	default:
		return "", fmt.Errorf("translate: non-arithmetic operator %s", op.Kind)
	}
}

func literal(num *ast.Num) (string, error) {
	switch num.Token.Kind {
	case token.IntegerConst, token.RealConst:
		return num.Token.Lexeme, nil
	default:
		return "", fmt.Errorf("translate: literal with non-constant token %s", num.Token)
	}
}

// statementsUnsupported rejects the statement-level variants; both
// notations are defined over expressions only.
type statementsUnsupported struct{}

func (statementsUnsupported) VisitAssign(n *ast.Assign) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

func (statementsUnsupported) VisitNoOp(n *ast.NoOp) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

func (statementsUnsupported) VisitCompound(n *ast.Compound) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

func (statementsUnsupported) VisitTypeSpec(n *ast.TypeSpec) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

func (statementsUnsupported) VisitVariableDeclaration(n *ast.VariableDeclaration) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

func (statementsUnsupported) VisitBlock(n *ast.Block) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

func (statementsUnsupported) VisitProgram(n *ast.Program) (string, error) {
	return "", fmt.Errorf("translate: statement node %T has no expression notation", n)
}

//-----------------------------------------------------------------------------
// Reverse Polish notation
//-----------------------------------------------------------------------------

type rpnTranslator struct {
	statementsUnsupported
}

var _ ast.Visitor[string] = rpnTranslator{}

// RPN renders an expression in postfix notation, e.g. "2 3 +".
func RPN(expr ast.Expression) (string, error) {
	return ast.Visit[string](rpnTranslator{}, expr)
}

func (t rpnTranslator) VisitNum(num *ast.Num) (string, error) {
	return literal(num)
}

func (t rpnTranslator) VisitVar(variable *ast.Var) (string, error) {
	return variable.Token.Lexeme, nil
}

func (t rpnTranslator) VisitUnaryOp(unary *ast.UnaryOp) (string, error) {
	child, err := ast.Visit[string](t, unary.Child)
	if err != nil {
		return "", err
	}
	if unary.Op.Kind == token.Plus {
		return child, nil
	}
	// Postfix has no unary minus; negation becomes a subtraction from zero.
	return fmt.Sprintf("0 %s -", child), nil
}

func (t rpnTranslator) VisitBinOp(binop *ast.BinOp) (string, error) {
	symbol, err := operatorSymbol(binop.Op)
	if err != nil {
		return "", err
	}
	left, err := ast.Visit[string](t, binop.Left)
	if err != nil {
		return "", err
	}
	right, err := ast.Visit[string](t, binop.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, right, symbol), nil
}

//-----------------------------------------------------------------------------
// S-expression notation
//-----------------------------------------------------------------------------

type lispTranslator struct {
	statementsUnsupported
}

var _ ast.Visitor[string] = lispTranslator{}

// Lisp renders an expression as an S-expression, e.g. "(+ 2 3)".
func Lisp(expr ast.Expression) (string, error) {
	return ast.Visit[string](lispTranslator{}, expr)
}

func (t lispTranslator) VisitNum(num *ast.Num) (string, error) {
	return literal(num)
}

func (t lispTranslator) VisitVar(variable *ast.Var) (string, error) {
	return variable.Token.Lexeme, nil
}

func (t lispTranslator) VisitUnaryOp(unary *ast.UnaryOp) (string, error) {
	child, err := ast.Visit[string](t, unary.Child)
	if err != nil {
		return "", err
	}
	if unary.Op.Kind == token.Plus {
		return child, nil
	}
	return fmt.Sprintf("(- %s)", child), nil
}

func (t lispTranslator) VisitBinOp(binop *ast.BinOp) (string, error) {
	symbol, err := operatorSymbol(binop.Op)
	if err != nil {
		return "", err
	}
	left, err := ast.Visit[string](t, binop.Left)
	if err != nil {
		return "", err
	}
	right, err := ast.Visit[string](t, binop.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", symbol, left, right), nil
}
