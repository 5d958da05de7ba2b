package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sargas/spi/pkg/ast"
	"github.com/sargas/spi/pkg/lexer"
	"github.com/sargas/spi/pkg/token"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	expr, err := New(lexer.New(src)).ParseExpression()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return expr
}

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := New(lexer.New(src)).Parse()
	if err != nil {
		t.Fatalf("parse program: %v", err)
	}
	return program
}

func TestPrecedenceShape(t *testing.T) {
	// 1+2*3 parses as 1+(2*3), not (1+2)*3.
	expr := parseExpr(t, "1+2*3")
	add, ok := expr.(*ast.BinOp)
	if !ok || add.Op.Kind != token.Plus {
		t.Fatalf("root is not PLUS: %#v", expr)
	}
	mul, ok := add.Right.(*ast.BinOp)
	if !ok || mul.Op.Kind != token.Multiply {
		t.Fatalf("right child is not MUL: %#v", add.Right)
	}
	if _, ok := add.Left.(*ast.Num); !ok {
		t.Fatalf("left child is not a literal: %#v", add.Left)
	}
}

func TestLeftAssociativeFold(t *testing.T) {
	// 10-4-2 folds left: (10-4)-2.
	expr := parseExpr(t, "10-4-2")
	outer, ok := expr.(*ast.BinOp)
	if !ok || outer.Op.Kind != token.Minus {
		t.Fatalf("root is not MINUS: %#v", expr)
	}
	inner, ok := outer.Left.(*ast.BinOp)
	if !ok || inner.Op.Kind != token.Minus {
		t.Fatalf("left child is not MINUS: %#v", outer.Left)
	}
	if lit, ok := outer.Right.(*ast.Num); !ok || lit.Token.Int != 2 {
		t.Fatalf("right child is not literal 2: %#v", outer.Right)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	expr := parseExpr(t, "(1+2)*3")
	mul, ok := expr.(*ast.BinOp)
	if !ok || mul.Op.Kind != token.Multiply {
		t.Fatalf("root is not MUL: %#v", expr)
	}
	if add, ok := mul.Left.(*ast.BinOp); !ok || add.Op.Kind != token.Plus {
		t.Fatalf("left child is not PLUS: %#v", mul.Left)
	}
}

func TestNestedUnaryOperators(t *testing.T) {
	expr := parseExpr(t, "--5")
	outer, ok := expr.(*ast.UnaryOp)
	if !ok || outer.Op.Kind != token.Minus {
		t.Fatalf("root is not unary MINUS: %#v", expr)
	}
	inner, ok := outer.Child.(*ast.UnaryOp)
	if !ok || inner.Op.Kind != token.Minus {
		t.Fatalf("child is not unary MINUS: %#v", outer.Child)
	}
	if _, ok := inner.Child.(*ast.Num); !ok {
		t.Fatalf("innermost child is not a literal: %#v", inner.Child)
	}
}

func TestTrailingGarbage(t *testing.T) {
	_, err := New(lexer.New("2 2")).ParseExpression()
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if syntaxErr.Expected != token.EOF || syntaxErr.Actual.Kind != token.IntegerConst {
		t.Fatalf("expected EOF-vs-INTEGER_CONST mismatch, got %v", syntaxErr)
	}
}

func TestSyntaxErrorReportsExpectedAndActual(t *testing.T) {
	_, err := New(lexer.New("1 + ")).ParseExpression()
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	msg := syntaxErr.Error()
	if !strings.Contains(msg, "expected ID") || !strings.Contains(msg, "EOF") {
		t.Fatalf("message missing expected/actual kinds: %q", msg)
	}
}

func TestLexicalErrorPropagates(t *testing.T) {
	_, err := New(lexer.New("1 + $")).ParseExpression()
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected lexical error, got %v", err)
	}
}

const part10Source = `
PROGRAM Part10;
VAR
   number     : INTEGER;
   a, b, c, x : INTEGER;
   y          : REAL;

BEGIN {Part10}
   BEGIN
      number := 2;
      a := number;
      b := 10 * a + 10 * number DIV 4;
      c := a - - b
   END;
   x := 11;
   y := 20 / 7 + 3.14;
   { writeln('c = ', c); }
   { writeln('number = ', number); }
END.  {Part10}
`

func TestFullProgram(t *testing.T) {
	program := parseProgram(t, part10Source)
	if program.Name.Lexeme != "Part10" {
		t.Fatalf("program name mismatch: got %q", program.Name.Lexeme)
	}
	if len(program.Block.Declarations) != 6 {
		t.Fatalf("declaration count mismatch: got %d, want 6", len(program.Block.Declarations))
	}
	first := program.Block.Declarations[0]
	if first.Variable.Name() != "NUMBER" || first.Type.Name() != "INTEGER" {
		t.Fatalf("first declaration mismatch: %s %s", first.Variable.Name(), first.Type.Name())
	}
	last := program.Block.Declarations[5]
	if last.Variable.Name() != "Y" || last.Type.Name() != "REAL" {
		t.Fatalf("last declaration mismatch: %s %s", last.Variable.Name(), last.Type.Name())
	}
	if len(program.Block.Compound.Statements) != 4 {
		t.Fatalf("statement count mismatch: got %d, want 4", len(program.Block.Compound.Statements))
	}
	if _, ok := program.Block.Compound.Statements[0].(*ast.Compound); !ok {
		t.Fatalf("first statement is not a nested compound")
	}
	if _, ok := program.Block.Compound.Statements[3].(*ast.NoOp); !ok {
		t.Fatalf("trailing empty statement did not parse as NoOp")
	}
}

func TestProgramWithoutDeclarations(t *testing.T) {
	program := parseProgram(t, "PROGRAM Empty; BEGIN END.")
	if len(program.Block.Declarations) != 0 {
		t.Fatalf("expected no declarations, got %d", len(program.Block.Declarations))
	}
}

func TestVarWithoutDeclarationsIsRejected(t *testing.T) {
	_, err := New(lexer.New("PROGRAM Bad; VAR BEGIN END.")).Parse()
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestMissingDotAfterProgram(t *testing.T) {
	_, err := New(lexer.New("PROGRAM P; BEGIN END")).Parse()
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if syntaxErr.Expected != token.Dot {
		t.Fatalf("expected DOT mismatch, got %v", syntaxErr)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	first := parseProgram(t, part10Source)
	second := parseProgram(t, part10Source)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two parses of the same source differ")
	}
}
