package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/sargas/spi/pkg/ast"
)

// SymbolKind distinguishes built-in type symbols from declared variables.
type SymbolKind int

const (
	SymbolBuiltin SymbolKind = iota
	SymbolVariable
)

// Symbol is one symbol-table entry: a built-in type or a declared variable
// with its declared type.
type Symbol struct {
	Kind SymbolKind
	Name string
	Type string
}

func (s Symbol) String() string {
	if s.Kind == SymbolBuiltin {
		return s.Name
	}
	return fmt.Sprintf("<%s:%s>", s.Name, s.Type)
}

// SymbolTable records declared identifiers for one program. Lookups are
// case-insensitive.
type SymbolTable struct {
	symbols map[string]Symbol
	trace   io.Writer
}

func newSymbolTable(trace io.Writer) *SymbolTable {
	return &SymbolTable{symbols: map[string]Symbol{}, trace: trace}
}

func (t *SymbolTable) define(symbol Symbol) error {
	if t.trace != nil {
		fmt.Fprintf(t.trace, "define: %s\n", symbol)
	}
	key := strings.ToUpper(symbol.Name)
	if _, ok := t.symbols[key]; ok {
		return fmt.Errorf("duplicate identifier %s", symbol.Name)
	}
	t.symbols[key] = symbol
	return nil
}

// Lookup returns the symbol for name, folding case.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	if t.trace != nil {
		fmt.Fprintf(t.trace, "lookup: %s\n", strings.ToUpper(name))
	}
	symbol, ok := t.symbols[strings.ToUpper(name)]
	return symbol, ok
}

// BuildSymbolTable walks a program and collects its declarations, rejecting
// duplicate identifiers, unknown declared types, and uses of undeclared
// variables. The built-in INTEGER and REAL type symbols are predefined.
// trace may be nil; when set it receives define/lookup lines.
func BuildSymbolTable(program *ast.Program, trace io.Writer) (*SymbolTable, error) {
	table := newSymbolTable(trace)
	for _, builtin := range []string{"INTEGER", "REAL"} {
		if err := table.define(Symbol{Kind: SymbolBuiltin, Name: builtin}); err != nil {
			return nil, err
		}
	}
	builder := &symbolBuilder{table: table}
	if _, err := ast.Visit[struct{}](builder, program); err != nil {
		return nil, err
	}
	return table, nil
}

// symbolBuilder is the declaration-collecting traversal. It shares the AST
// visitation mechanism with the evaluator and the translators.
type symbolBuilder struct {
	table *SymbolTable
}

var _ ast.Visitor[struct{}] = (*symbolBuilder)(nil)

func (b *symbolBuilder) visit(node ast.Node) error {
	_, err := ast.Visit[struct{}](b, node)
	return err
}

func (b *symbolBuilder) VisitProgram(program *ast.Program) (struct{}, error) {
	return struct{}{}, b.visit(program.Block)
}

func (b *symbolBuilder) VisitBlock(block *ast.Block) (struct{}, error) {
	for _, declaration := range block.Declarations {
		if err := b.visit(declaration); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, b.visit(block.Compound)
}

func (b *symbolBuilder) VisitVariableDeclaration(decl *ast.VariableDeclaration) (struct{}, error) {
	typeName := decl.Type.Name()
	if symbol, ok := b.table.Lookup(typeName); !ok || symbol.Kind != SymbolBuiltin {
		return struct{}{}, &SemanticError{
			Message: fmt.Sprintf("unknown type %s", typeName),
			Pos:     decl.Type.Pos(),
		}
	}
	name := decl.Variable.Name()
	if _, ok := b.table.Lookup(name); ok {
		return struct{}{}, &SemanticError{
			Message: fmt.Sprintf("duplicate identifier %s", name),
			Pos:     decl.Variable.Pos(),
		}
	}
	err := b.table.define(Symbol{Kind: SymbolVariable, Name: name, Type: typeName})
	if err != nil {
		return struct{}{}, &SemanticError{Message: err.Error(), Pos: decl.Variable.Pos()}
	}
	return struct{}{}, nil
}

func (b *symbolBuilder) VisitCompound(compound *ast.Compound) (struct{}, error) {
	for _, statement := range compound.Statements {
		if err := b.visit(statement); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, nil
}

func (b *symbolBuilder) VisitAssign(assign *ast.Assign) (struct{}, error) {
	if err := b.visit(assign.Value); err != nil {
		return struct{}{}, err
	}
	if _, ok := b.table.Lookup(assign.Target.Name()); !ok {
		return struct{}{}, &NameError{Name: assign.Target.Name(), Pos: assign.Target.Pos()}
	}
	return struct{}{}, nil
}

func (b *symbolBuilder) VisitVar(variable *ast.Var) (struct{}, error) {
	if _, ok := b.table.Lookup(variable.Name()); !ok {
		return struct{}{}, &NameError{Name: variable.Name(), Pos: variable.Pos()}
	}
	return struct{}{}, nil
}

func (b *symbolBuilder) VisitBinOp(binop *ast.BinOp) (struct{}, error) {
	if err := b.visit(binop.Left); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, b.visit(binop.Right)
}

func (b *symbolBuilder) VisitUnaryOp(unary *ast.UnaryOp) (struct{}, error) {
	return struct{}{}, b.visit(unary.Child)
}

func (b *symbolBuilder) VisitNum(*ast.Num) (struct{}, error)           { return struct{}{}, nil }
func (b *symbolBuilder) VisitNoOp(*ast.NoOp) (struct{}, error)         { return struct{}{}, nil }
func (b *symbolBuilder) VisitTypeSpec(*ast.TypeSpec) (struct{}, error) { return struct{}{}, nil }
