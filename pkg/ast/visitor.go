package ast

import "fmt"

// Visitor is one traversal algorithm over the full node set, producing an R
// per node. Implementations live outside this package; adding a traversal
// never touches the node definitions.
type Visitor[R any] interface {
	VisitNum(*Num) (R, error)
	VisitVar(*Var) (R, error)
	VisitUnaryOp(*UnaryOp) (R, error)
	VisitBinOp(*BinOp) (R, error)
	VisitAssign(*Assign) (R, error)
	VisitNoOp(*NoOp) (R, error)
	VisitCompound(*Compound) (R, error)
	VisitTypeSpec(*TypeSpec) (R, error)
	VisitVariableDeclaration(*VariableDeclaration) (R, error)
	VisitBlock(*Block) (R, error)
	VisitProgram(*Program) (R, error)
}

// Visit dispatches node to the visitor method for its concrete variant.
// The node set is closed, so the default arm is unreachable unless a new
// variant is added without extending Visitor.
func Visit[R any](v Visitor[R], node Node) (R, error) {
	switch n := node.(type) {
	case *Num:
		return v.VisitNum(n)
	case *Var:
		return v.VisitVar(n)
	case *UnaryOp:
		return v.VisitUnaryOp(n)
	case *BinOp:
		return v.VisitBinOp(n)
	case *Assign:
		return v.VisitAssign(n)
	case *NoOp:
		return v.VisitNoOp(n)
	case *Compound:
		return v.VisitCompound(n)
	case *TypeSpec:
		return v.VisitTypeSpec(n)
	case *VariableDeclaration:
		return v.VisitVariableDeclaration(n)
	case *Block:
		return v.VisitBlock(n)
	case *Program:
		return v.VisitProgram(n)
	default:
		var zero R
		return zero, fmt.Errorf("ast: no visitor method for %T", node)
	}
}
