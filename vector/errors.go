package vector

import "fmt"

// ErrDimensionMismatch indicates two vectors of different dimension
// where equal dimensions are required.
type ErrDimensionMismatch struct {
	Want int
	Got  int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("vector: dimension mismatch: want %d, got %d", e.Want, e.Got)
}

// ErrIndexOutOfRange indicates a 1-based coordinate index outside
// [1, Dim], or a construction with more coordinates than positions.
type ErrIndexOutOfRange struct {
	Index int
	Dim   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("vector: index %d out of range for dimension %d", e.Index, e.Dim)
}
