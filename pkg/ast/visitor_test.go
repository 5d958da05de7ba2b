package ast_test

import (
	"testing"

	"github.com/sargas/spi/pkg/ast"
	"github.com/sargas/spi/pkg/token"
)

// nodeCounter is a traversal defined entirely outside the ast package; it
// exists to pin down that new visitors need no changes to the node types.
type nodeCounter struct {
	count int
}

var _ ast.Visitor[int] = (*nodeCounter)(nil)

func (c *nodeCounter) visit(node ast.Node) (int, error) {
	c.count++
	return ast.Visit[int](c, node)
}

func (c *nodeCounter) VisitNum(*ast.Num) (int, error) { return c.count, nil }
func (c *nodeCounter) VisitVar(*ast.Var) (int, error) { return c.count, nil }

func (c *nodeCounter) VisitUnaryOp(n *ast.UnaryOp) (int, error) {
	return c.visit(n.Child)
}

func (c *nodeCounter) VisitBinOp(n *ast.BinOp) (int, error) {
	if _, err := c.visit(n.Left); err != nil {
		return 0, err
	}
	return c.visit(n.Right)
}

func (c *nodeCounter) VisitAssign(n *ast.Assign) (int, error) {
	if _, err := c.visit(n.Target); err != nil {
		return 0, err
	}
	return c.visit(n.Value)
}

func (c *nodeCounter) VisitNoOp(*ast.NoOp) (int, error)         { return c.count, nil }
func (c *nodeCounter) VisitTypeSpec(*ast.TypeSpec) (int, error) { return c.count, nil }

func (c *nodeCounter) VisitCompound(n *ast.Compound) (int, error) {
	for _, statement := range n.Statements {
		if _, err := c.visit(statement); err != nil {
			return 0, err
		}
	}
	return c.count, nil
}

func (c *nodeCounter) VisitVariableDeclaration(n *ast.VariableDeclaration) (int, error) {
	if _, err := c.visit(n.Variable); err != nil {
		return 0, err
	}
	return c.visit(n.Type)
}

func (c *nodeCounter) VisitBlock(n *ast.Block) (int, error) {
	for _, declaration := range n.Declarations {
		if _, err := c.visit(declaration); err != nil {
			return 0, err
		}
	}
	return c.visit(n.Compound)
}

func (c *nodeCounter) VisitProgram(n *ast.Program) (int, error) {
	return c.visit(n.Block)
}

func intTok(v int64) token.Token {
	return token.Token{Kind: token.IntegerConst, Int: v}
}

func opTok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme}
}

func TestExternalVisitorDispatch(t *testing.T) {
	// 1 + (-2) as a hand-built tree: BinOp, two Nums, one UnaryOp.
	expr := &ast.BinOp{
		Op:   opTok(token.Plus, "+"),
		Left: &ast.Num{Token: intTok(1)},
		Right: &ast.UnaryOp{
			Op:    opTok(token.Minus, "-"),
			Child: &ast.Num{Token: intTok(2)},
		},
	}
	counter := &nodeCounter{}
	if _, err := counter.visit(expr); err != nil {
		t.Fatalf("visit: %v", err)
	}
	if counter.count != 4 {
		t.Fatalf("node count mismatch: got %d, want 4", counter.count)
	}
}

func TestVarNameFoldsCase(t *testing.T) {
	v := &ast.Var{Token: token.Token{Kind: token.Ident, Lexeme: "miXed"}}
	if v.Name() != "MIXED" {
		t.Fatalf("got %q", v.Name())
	}
	if v.Token.Lexeme != "miXed" {
		t.Fatalf("original lexeme lost: %q", v.Token.Lexeme)
	}
}
