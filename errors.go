package clifgo

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when an explicit scalar divisor is
// exactly zero.
var ErrDivisionByZero = errors.New("clifgo: division by zero")

// ErrNotScalar indicates a multivector that cannot be coerced to a
// scalar because it carries a nonzero term outside blade 0.
type ErrNotScalar struct {
	Terms int
}

func (e *ErrNotScalar) Error() string {
	return fmt.Sprintf("clifgo: multivector is not a scalar (%d nonzero terms)", e.Terms)
}
