package clifgo

import (
	"strconv"
	"strings"
)

// MultiVector is an element of the rank-dim geometric algebra: a dense
// sequence of 2^dim coefficients, one per basis blade, stored in
// ascending blade-index order. See the blade package for the index
// encoding.
//
// The dimension is fixed at construction. Arithmetic methods never
// mutate their operands and always return freshly allocated results;
// the only mutation surface is Set/Clear, meant for low-level
// construction. Prefer the GA factory for building values.
type MultiVector struct {
	dim   int
	coefs []float64
}

// New returns the zero multivector of the rank-dim algebra, dim >= 0.
func New(dim int) *MultiVector {
	return &MultiVector{dim: dim, coefs: make([]float64, 1<<dim)}
}

// Dim returns the rank of the algebra this multivector belongs to.
func (x *MultiVector) Dim() int {
	return x.dim
}

// At returns the coefficient of blade i, 0 <= i < 2^dim.
func (x *MultiVector) At(i int) float64 {
	return x.coefs[i]
}

// Set overwrites the coefficient of blade i.
func (x *MultiVector) Set(i int, coef float64) {
	x.coefs[i] = coef
}

// Clear zeroes the coefficient of blade i.
func (x *MultiVector) Clear(i int) {
	x.coefs[i] = 0
}

// Contains reports whether the coefficient of blade i is nonzero.
func (x *MultiVector) Contains(i int) bool {
	return x.coefs[i] != 0
}

// Blades returns the indices of all nonzero blades in ascending order.
func (x *MultiVector) Blades() []int {
	var idx []int
	for i, c := range x.coefs {
		if c != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Terms returns the number of nonzero coefficients.
func (x *MultiVector) Terms() int {
	n := 0
	for _, c := range x.coefs {
		if c != 0 {
			n++
		}
	}
	return n
}

// IsZero reports whether every coefficient is zero.
func (x *MultiVector) IsZero() bool {
	for _, c := range x.coefs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy of x with its own coefficient storage.
func (x *MultiVector) Clone() *MultiVector {
	z := New(x.dim)
	copy(z.coefs, x.coefs)
	return z
}

// Equal reports exact elementwise equality of the coefficient
// sequences. Multivectors of different dimension are never equal, even
// when the larger one only pads the smaller with zeros. Floating
// round-off makes exact equality fragile after arithmetic; compare
// x.Sub(y).Norm() against a tolerance instead.
func (x *MultiVector) Equal(y *MultiVector) bool {
	if y == nil || len(x.coefs) != len(y.coefs) {
		return false
	}
	for i, c := range x.coefs {
		if c != y.coefs[i] {
			return false
		}
	}
	return true
}

// String renders each nonzero term as <coefficient>*[<ascending
// 1-based generator indices>], a bare coefficient for the scalar term,
// joined by " + ". The zero multivector renders as "0".
func (x *MultiVector) String() string {
	var b strings.Builder
	for i, c := range x.coefs {
		if c == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		if i != 0 {
			b.WriteString("*[")
			first := true
			for k := 0; k < x.dim; k++ {
				if i&(1<<k) == 0 {
					continue
				}
				if !first {
					b.WriteByte(',')
				}
				b.WriteString(strconv.Itoa(k + 1))
				first = false
			}
			b.WriteByte(']')
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
