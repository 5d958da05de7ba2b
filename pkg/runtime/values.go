// Package runtime defines the values computed by the evaluator.
package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindReal
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind     { return KindInteger }
func (v IntegerValue) String() string { return strconv.FormatInt(v.Val, 10) }

type RealValue struct {
	Val float64
}

func (v RealValue) Kind() Kind     { return KindReal }
func (v RealValue) String() string { return strconv.FormatFloat(v.Val, 'g', -1, 64) }

//-----------------------------------------------------------------------------
// Numeric coercion
//-----------------------------------------------------------------------------

// AsReal widens a numeric value to real.
func AsReal(v Value) float64 {
	switch n := v.(type) {
	case IntegerValue:
		return float64(n.Val)
	case RealValue:
		return n.Val
	default:
		return 0
	}
}

// AsInteger narrows a numeric value to integer, truncating reals toward
// zero.
func AsInteger(v Value) int64 {
	switch n := v.(type) {
	case IntegerValue:
		return n.Val
	case RealValue:
		return int64(n.Val)
	default:
		return 0
	}
}

// IsInteger reports whether both operands are integers, which keeps
// arithmetic in the integer domain; any real operand promotes the result
// to real.
func IsInteger(left, right Value) bool {
	return left.Kind() == KindInteger && right.Kind() == KindInteger
}
