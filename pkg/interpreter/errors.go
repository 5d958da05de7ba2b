package interpreter

import (
	"fmt"

	"github.com/sargas/spi/pkg/token"
)

// NameError reports the use of a variable that was never declared or never
// assigned.
type NameError struct {
	Name string
	Pos  token.Position
}

func (e *NameError) Error() string {
	return fmt.Sprintf("interpreter: undefined variable %s at %s", e.Name, e.Pos)
}

// DivisionByZeroError reports an integer DIV with a zero divisor. Real
// division by zero is not an error; it follows IEEE-754 and produces an
// infinity or NaN.
type DivisionByZeroError struct {
	Pos token.Position
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("interpreter: integer division by zero at %s", e.Pos)
}

// SemanticError reports a declaration problem found by the symbol-table
// pass: a duplicate identifier or an unknown declared type.
type SemanticError struct {
	Message string
	Pos     token.Position
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("interpreter: %s at %s", e.Message, e.Pos)
}
