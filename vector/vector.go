// Package vector provides an immutable fixed-length coordinate tuple
// with the conventional vector-space operations.
//
// Coordinates are 1-based, following mathematical usage. The type is
// independent of the algebra engine; the clifgo root package bridges
// it to the grade-1 part of a multivector.
package vector

import (
	"math"
	"strconv"
	"strings"
)

// Vector is an immutable tuple of n float64 coordinates. The zero
// value is the empty 0-dimensional vector.
type Vector struct {
	coords []float64
}

// New returns the n-dimensional vector with the given coordinates.
// Missing trailing coordinates default to zero; more than n
// coordinates is an *ErrIndexOutOfRange.
func New(n int, coords ...float64) (*Vector, error) {
	if len(coords) > n {
		return nil, &ErrIndexOutOfRange{Index: len(coords), Dim: n}
	}
	c := make([]float64, n)
	copy(c, coords)
	return &Vector{coords: c}, nil
}

// MustNew is New panicking on error, for statically correct literals.
func MustNew(n int, coords ...float64) *Vector {
	v, err := New(n, coords...)
	if err != nil {
		panic(err)
	}
	return v
}

// Dim returns the number of coordinate positions.
func (v *Vector) Dim() int {
	return len(v.coords)
}

// At returns the i-th coordinate, 1 <= i <= Dim.
func (v *Vector) At(i int) (float64, error) {
	if i < 1 || i > len(v.coords) {
		return 0, &ErrIndexOutOfRange{Index: i, Dim: len(v.coords)}
	}
	return v.coords[i-1], nil
}

// X returns the first coordinate. Panics below dimension 1.
func (v *Vector) X() float64 { return v.coords[0] }

// Y returns the second coordinate. Panics below dimension 2.
func (v *Vector) Y() float64 { return v.coords[1] }

// Z returns the third coordinate. Panics below dimension 3.
func (v *Vector) Z() float64 { return v.coords[2] }

// Coords returns a copy of the coordinates in order.
func (v *Vector) Coords() []float64 {
	return append([]float64(nil), v.coords...)
}

// IsZero reports whether every coordinate is zero.
func (v *Vector) IsZero() bool {
	for _, c := range v.coords {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether v and w have the same dimension and identical
// coordinates.
func (v *Vector) Equal(w *Vector) bool {
	if w == nil || len(v.coords) != len(w.coords) {
		return false
	}
	for i, c := range v.coords {
		if c != w.coords[i] {
			return false
		}
	}
	return true
}

// Neg returns the coordinatewise negation of v.
func (v *Vector) Neg() *Vector {
	c := make([]float64, len(v.coords))
	for i, x := range v.coords {
		c[i] = -x
	}
	return &Vector{coords: c}
}

// Add returns v + w. The dimensions must match.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if len(v.coords) != len(w.coords) {
		return nil, &ErrDimensionMismatch{Want: len(v.coords), Got: len(w.coords)}
	}
	c := make([]float64, len(v.coords))
	for i, x := range v.coords {
		c[i] = x + w.coords[i]
	}
	return &Vector{coords: c}, nil
}

// Sub returns v - w. The dimensions must match.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if len(v.coords) != len(w.coords) {
		return nil, &ErrDimensionMismatch{Want: len(v.coords), Got: len(w.coords)}
	}
	c := make([]float64, len(v.coords))
	for i, x := range v.coords {
		c[i] = x - w.coords[i]
	}
	return &Vector{coords: c}, nil
}

// Scale returns v with every coordinate multiplied by s.
func (v *Vector) Scale(s float64) *Vector {
	c := make([]float64, len(v.coords))
	for i, x := range v.coords {
		c[i] = x * s
	}
	return &Vector{coords: c}
}

// Dot returns the scalar product of v and w. The dimensions must
// match.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if len(v.coords) != len(w.coords) {
		return 0, &ErrDimensionMismatch{Want: len(v.coords), Got: len(w.coords)}
	}
	var s float64
	for i, x := range v.coords {
		s += x * w.coords[i]
	}
	return s, nil
}

// Cross returns the 3-dimensional cross product of v and w. Both
// operands must have dimension 3.
func (v *Vector) Cross(w *Vector) (*Vector, error) {
	if len(v.coords) != 3 {
		return nil, &ErrDimensionMismatch{Want: 3, Got: len(v.coords)}
	}
	if len(w.coords) != 3 {
		return nil, &ErrDimensionMismatch{Want: 3, Got: len(w.coords)}
	}
	return &Vector{coords: []float64{
		v.Y()*w.Z() - v.Z()*w.Y(),
		v.Z()*w.X() - v.X()*w.Z(),
		v.X()*w.Y() - v.Y()*w.X(),
	}}, nil
}

// Norm returns the Euclidean length of v.
func (v *Vector) Norm() float64 {
	var s float64
	for _, x := range v.coords {
		s += x * x
	}
	return math.Sqrt(s)
}

// Normalize returns the unit vector with v's direction. The zero
// vector normalizes to itself.
func (v *Vector) Normalize() *Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Concat returns the vector whose coordinates are those of v followed
// by those of w.
func (v *Vector) Concat(w *Vector) *Vector {
	c := make([]float64, 0, len(v.coords)+len(w.coords))
	c = append(c, v.coords...)
	c = append(c, w.coords...)
	return &Vector{coords: c}
}

// String renders v as a parenthesized coordinate tuple.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
