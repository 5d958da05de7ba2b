// Package interpreter executes parsed programs by walking the AST. It
// evaluates expressions over integer and real values, keeps a flat global
// environment per run, and runs a symbol-table pass over full programs
// before execution.
package interpreter

import (
	"fmt"
	"io"

	"github.com/sargas/spi/pkg/ast"
	"github.com/sargas/spi/pkg/lexer"
	"github.com/sargas/spi/pkg/parser"
	"github.com/sargas/spi/pkg/runtime"
	"github.com/sargas/spi/pkg/token"
)

// Interpreter is the tree-walking evaluator. Each Interpret call owns a
// fresh environment, so independent runs never interfere; the last run's
// bindings stay inspectable through GlobalScope.
type Interpreter struct {
	env     *Environment
	symbols *SymbolTable
	trace   io.Writer
}

var _ ast.Visitor[runtime.Value] = (*Interpreter)(nil)

// New returns an interpreter with tracing disabled.
func New() *Interpreter {
	return &Interpreter{env: NewEnvironment()}
}

// NewWithTrace returns an interpreter that reports symbol definitions and
// assignment steps to w.
func NewWithTrace(w io.Writer) *Interpreter {
	return &Interpreter{env: NewEnvironment(), trace: w}
}

// Interpret runs a full program: the symbol-table pass first, then the
// block. The environment is reset at entry.
func (i *Interpreter) Interpret(program *ast.Program) error {
	symbols, err := BuildSymbolTable(program, i.trace)
	if err != nil {
		return err
	}
	i.symbols = symbols
	i.env = NewEnvironment()
	_, err = ast.Visit[runtime.Value](i, program)
	return err
}

// EvaluateExpression evaluates a bare arithmetic expression and returns its
// numeric result. No symbol-table pass runs; variable references resolve
// against the current environment.
func (i *Interpreter) EvaluateExpression(expr ast.Expression) (runtime.Value, error) {
	return ast.Visit[runtime.Value](i, expr)
}

// GlobalScope copies the variable bindings left by the last run.
func (i *Interpreter) GlobalScope() map[string]runtime.Value {
	return i.env.Snapshot()
}

// Symbols returns the symbol table built by the last Interpret call, or nil
// before the first run.
func (i *Interpreter) Symbols() *SymbolTable {
	return i.symbols
}

func (i *Interpreter) eval(expr ast.Expression) (runtime.Value, error) {
	return ast.Visit[runtime.Value](i, expr)
}

func (i *Interpreter) exec(node ast.Node) error {
	_, err := ast.Visit[runtime.Value](i, node)
	return err
}

//-----------------------------------------------------------------------------
// Expressions
//-----------------------------------------------------------------------------

func (i *Interpreter) VisitNum(num *ast.Num) (runtime.Value, error) {
	switch num.Token.Kind {
	case token.IntegerConst:
		return runtime.IntegerValue{Val: num.Token.Int}, nil
	case token.RealConst:
		return runtime.RealValue{Val: num.Token.Float}, nil
	default:
		return nil, fmt.Errorf("interpreter: literal with non-constant token %s", num.Token)
	}
}

func (i *Interpreter) VisitVar(variable *ast.Var) (runtime.Value, error) {
	return i.env.Get(variable.Name(), variable.Pos())
}

func (i *Interpreter) VisitUnaryOp(unary *ast.UnaryOp) (runtime.Value, error) {
	child, err := i.eval(unary.Child)
	if err != nil {
		return nil, err
	}
	if unary.Op.Kind == token.Plus {
		return child, nil
	}
	switch v := child.(type) {
	case runtime.IntegerValue:
		return runtime.IntegerValue{Val: -v.Val}, nil
	case runtime.RealValue:
		return runtime.RealValue{Val: -v.Val}, nil
	default:
		return nil, fmt.Errorf("interpreter: negation of non-numeric value %s", child)
	}
}

func (i *Interpreter) VisitBinOp(binop *ast.BinOp) (runtime.Value, error) {
	left, err := i.eval(binop.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(binop.Right)
	if err != nil {
		return nil, err
	}

	switch binop.Op.Kind {
	case token.Plus:
		if runtime.IsInteger(left, right) {
			return runtime.IntegerValue{Val: runtime.AsInteger(left) + runtime.AsInteger(right)}, nil
		}
		return runtime.RealValue{Val: runtime.AsReal(left) + runtime.AsReal(right)}, nil
	case token.Minus:
		if runtime.IsInteger(left, right) {
			return runtime.IntegerValue{Val: runtime.AsInteger(left) - runtime.AsInteger(right)}, nil
		}
		return runtime.RealValue{Val: runtime.AsReal(left) - runtime.AsReal(right)}, nil
	case token.Multiply:
		if runtime.IsInteger(left, right) {
			return runtime.IntegerValue{Val: runtime.AsInteger(left) * runtime.AsInteger(right)}, nil
		}
		return runtime.RealValue{Val: runtime.AsReal(left) * runtime.AsReal(right)}, nil
	case token.IntegerDiv:
		divisor := runtime.AsInteger(right)
		if divisor == 0 {
			return nil, &DivisionByZeroError{Pos: binop.Op.Pos}
		}
		// Go's integer division truncates toward zero, matching Pascal DIV.
		return runtime.IntegerValue{Val: runtime.AsInteger(left) / divisor}, nil
	case token.FloatDiv:
		// IEEE-754 semantics: a zero divisor yields an infinity or NaN.
		return runtime.RealValue{Val: runtime.AsReal(left) / runtime.AsReal(right)}, nil
	default:
		return nil, fmt.Errorf("interpreter: unsupported binary operator %s", binop.Op.Kind)
	}
}

//-----------------------------------------------------------------------------
// Statements and structure
//-----------------------------------------------------------------------------

func (i *Interpreter) VisitAssign(assign *ast.Assign) (runtime.Value, error) {
	value, err := i.eval(assign.Value)
	if err != nil {
		return nil, err
	}
	i.env.Set(assign.Target.Name(), value)
	if i.trace != nil {
		fmt.Fprintf(i.trace, "%s := %s\n", assign.Target.Name(), value)
	}
	return nil, nil
}

func (i *Interpreter) VisitNoOp(*ast.NoOp) (runtime.Value, error) {
	return nil, nil
}

func (i *Interpreter) VisitCompound(compound *ast.Compound) (runtime.Value, error) {
	for _, statement := range compound.Statements {
		if err := i.exec(statement); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (i *Interpreter) VisitTypeSpec(*ast.TypeSpec) (runtime.Value, error) {
	return nil, nil
}

// VisitVariableDeclaration has no evaluation effect; declared types are
// recorded by the symbol-table pass but not enforced against assignments.
func (i *Interpreter) VisitVariableDeclaration(decl *ast.VariableDeclaration) (runtime.Value, error) {
	if i.trace != nil {
		fmt.Fprintf(i.trace, "declare: %s : %s\n", decl.Variable.Name(), decl.Type.Name())
	}
	return nil, nil
}

func (i *Interpreter) VisitBlock(block *ast.Block) (runtime.Value, error) {
	for _, declaration := range block.Declarations {
		if err := i.exec(declaration); err != nil {
			return nil, err
		}
	}
	return nil, i.exec(block.Compound)
}

func (i *Interpreter) VisitProgram(program *ast.Program) (runtime.Value, error) {
	return nil, i.exec(program.Block)
}

//-----------------------------------------------------------------------------
// Source-level entry points
//-----------------------------------------------------------------------------

// InterpretSource lexes, parses, and interprets a full program, returning
// the final variable bindings.
func (i *Interpreter) InterpretSource(src string) (map[string]runtime.Value, error) {
	program, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		return nil, err
	}
	if err := i.Interpret(program); err != nil {
		return nil, err
	}
	return i.GlobalScope(), nil
}

// EvaluateSource lexes, parses, and evaluates a bare arithmetic expression.
func (i *Interpreter) EvaluateSource(src string) (runtime.Value, error) {
	expr, err := parser.New(lexer.New(src)).ParseExpression()
	if err != nil {
		return nil, err
	}
	return i.EvaluateExpression(expr)
}
