// Package ast defines the abstract syntax tree produced by the parser.
//
// The node set is a closed sum type: every variant embeds the unexported
// node marker, so a type switch over Node is exhaustive and external
// packages cannot add variants. Nodes are immutable after construction and
// each node exclusively owns its children.
package ast

import (
	"strings"

	"github.com/sargas/spi/pkg/token"
)

// Node is the common behaviour of all AST variants.
type Node interface {
	Pos() token.Position
	node()
}

// Expression nodes evaluate to a numeric value.
type Expression interface {
	Node
	expression()
}

// Statement nodes are executed for effect.
type Statement interface {
	Node
	statement()
}

// Num is an integer or real literal carrying its originating token.
type Num struct {
	Token token.Token
}

// Var is a reference to a variable by name.
type Var struct {
	Token token.Token
}

// Name returns the case-folded variable name used for environment and
// symbol-table keys. The token keeps the original casing.
func (v *Var) Name() string { return strings.ToUpper(v.Token.Lexeme) }

// UnaryOp applies unary plus or minus to its operand.
type UnaryOp struct {
	Op    token.Token
	Child Expression
}

// BinOp applies a binary arithmetic operator to two operands.
type BinOp struct {
	Op    token.Token
	Left  Expression
	Right Expression
}

// Assign stores the value of Value under Target's name.
type Assign struct {
	Target *Var
	Op     token.Token
	Value  Expression
}

// NoOp is the empty statement.
type NoOp struct {
	Position token.Position
}

// Compound is a BEGIN..END statement sequence.
type Compound struct {
	Position   token.Position
	Statements []Statement
}

// TypeSpec names a declared type (INTEGER or REAL).
type TypeSpec struct {
	Token token.Token
}

// Name returns the normalized type name.
func (t *TypeSpec) Name() string { return strings.ToUpper(t.Token.Lexeme) }

// VariableDeclaration declares one variable with its type. A source line
// declaring several names expands to one declaration per name.
type VariableDeclaration struct {
	Variable *Var
	Type     *TypeSpec
}

// Block is a declarations section followed by a compound statement.
type Block struct {
	Declarations []*VariableDeclaration
	Compound     *Compound
}

// Program is the root of a full translation unit.
type Program struct {
	Name  token.Token
	Block *Block
}

func (n *Num) Pos() token.Position                 { return n.Token.Pos }
func (v *Var) Pos() token.Position                 { return v.Token.Pos }
func (u *UnaryOp) Pos() token.Position             { return u.Op.Pos }
func (b *BinOp) Pos() token.Position               { return b.Op.Pos }
func (a *Assign) Pos() token.Position              { return a.Op.Pos }
func (n *NoOp) Pos() token.Position                { return n.Position }
func (c *Compound) Pos() token.Position            { return c.Position }
func (t *TypeSpec) Pos() token.Position            { return t.Token.Pos }
func (d *VariableDeclaration) Pos() token.Position { return d.Variable.Pos() }
func (b *Block) Pos() token.Position               { return b.Compound.Pos() }
func (p *Program) Pos() token.Position             { return p.Name.Pos }

func (*Num) node()                 {}
func (*Var) node()                 {}
func (*UnaryOp) node()             {}
func (*BinOp) node()               {}
func (*Assign) node()              {}
func (*NoOp) node()                {}
func (*Compound) node()            {}
func (*TypeSpec) node()            {}
func (*VariableDeclaration) node() {}
func (*Block) node()               {}
func (*Program) node()             {}

func (*Num) expression()     {}
func (*Var) expression()     {}
func (*UnaryOp) expression() {}
func (*BinOp) expression()   {}

func (*Assign) statement()   {}
func (*NoOp) statement()     {}
func (*Compound) statement() {}
