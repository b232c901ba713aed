package clifgo

import (
	"math"

	"github.com/hupe1980/clifgo/blade"
)

// maxDim is the promoted dimension of a binary operation: the lower
// dimensioned operand's missing high blades read as zero.
func maxDim(x, y *MultiVector) int {
	if x.dim >= y.dim {
		return x.dim
	}
	return y.dim
}

// Add returns x + y over the promoted dimension.
func (x *MultiVector) Add(y *MultiVector) *MultiVector {
	z := New(maxDim(x, y))
	copy(z.coefs, x.coefs)
	for i, c := range y.coefs {
		z.coefs[i] += c
	}
	return z
}

// Sub returns x - y over the promoted dimension.
func (x *MultiVector) Sub(y *MultiVector) *MultiVector {
	return x.Add(y.Neg())
}

// Neg returns -x.
func (x *MultiVector) Neg() *MultiVector {
	z := New(x.dim)
	for i, c := range x.coefs {
		z.coefs[i] = -c
	}
	return z
}

// AddScalar returns x + s; only the blade-0 coefficient changes.
func (x *MultiVector) AddScalar(s float64) *MultiVector {
	z := x.Clone()
	z.coefs[0] += s
	return z
}

// SubScalar returns x - s.
func (x *MultiVector) SubScalar(s float64) *MultiVector {
	return x.AddScalar(-s)
}

// MulScalar returns x scaled elementwise by s.
func (x *MultiVector) MulScalar(s float64) *MultiVector {
	z := New(x.dim)
	for i, c := range x.coefs {
		z.coefs[i] = c * s
	}
	return z
}

// DivScalar returns x scaled by 1/s, or ErrDivisionByZero when s is
// exactly zero.
func (x *MultiVector) DivScalar(s float64) (*MultiVector, error) {
	if s == 0 {
		return nil, ErrDivisionByZero
	}
	return x.MulScalar(1 / s), nil
}

// Mul returns the geometric product x*y over the promoted dimension.
// Every pair of nonzero terms contributes blade.Combine of its indices,
// so the cost is proportional to Terms(x) * Terms(y).
func (x *MultiVector) Mul(y *MultiVector) *MultiVector {
	z := New(maxDim(x, y))
	for i, a := range x.coefs {
		if a == 0 {
			continue
		}
		for j, b := range y.coefs {
			if b == 0 {
				continue
			}
			k, s := blade.Combine(i, j)
			z.coefs[k] += float64(s) * a * b
		}
	}
	return z
}

// Wedge returns the outer product, the antisymmetric part (xy - yx)/2
// of the geometric product.
func (x *MultiVector) Wedge(y *MultiVector) *MultiVector {
	return x.Mul(y).Sub(y.Mul(x)).MulScalar(0.5)
}

// Dot returns the inner product, the symmetric part (xy + yx)/2 of the
// geometric product.
func (x *MultiVector) Dot(y *MultiVector) *MultiVector {
	return x.Mul(y).Add(y.Mul(x)).MulScalar(0.5)
}

// Meet returns the regressive product dual(x)*y.
func (x *MultiVector) Meet(y *MultiVector) *MultiVector {
	return x.Dual().Mul(y)
}

// Rev returns the reversion of x: generator order within each blade is
// reversed, negating blades whose grade is 2 or 3 mod 4.
func (x *MultiVector) Rev() *MultiVector {
	z := New(x.dim)
	for i, c := range x.coefs {
		if c == 0 {
			continue
		}
		switch blade.Grade(i) % 4 {
		case 2, 3:
			z.coefs[i] = -c
		default:
			z.coefs[i] = c
		}
	}
	return z
}

// Norm returns the Euclidean norm of the coefficient sequence, treating
// the blades as an orthonormal coordinate frame. This is not a general
// algebra norm.
func (x *MultiVector) Norm() float64 {
	var s float64
	for _, c := range x.coefs {
		s += c * c
	}
	return math.Sqrt(s)
}

// Rank returns the maximum grade among the nonzero terms of x. The
// second result is false for the zero multivector, which has no terms.
func (x *MultiVector) Rank() (int, bool) {
	r, ok := 0, false
	for i, c := range x.coefs {
		if c == 0 {
			continue
		}
		ok = true
		if g := blade.Grade(i); g > r {
			r = g
		}
	}
	return r, ok
}

// I returns the pseudoscalar of x's algebra: coefficient 1 at the
// top blade 2^dim - 1.
func (x *MultiVector) I() *MultiVector {
	z := New(x.dim)
	z.coefs[len(z.coefs)-1] = 1
	return z
}

// Dual returns x multiplied by the cube of its own pseudoscalar,
// exchanging grade k with grade dim-k.
func (x *MultiVector) Dual() *MultiVector {
	i := x.I()
	return x.Mul(i).Mul(i).Mul(i)
}

// Cross returns dual(wedge(x, y)). This matches the conventional
// 3-space cross product only when both operands are grade-1 in a
// 3-dimensional algebra; the caller owns that precondition.
func (x *MultiVector) Cross(y *MultiVector) *MultiVector {
	return x.Wedge(y).Dual()
}

// Scalar coerces x to a float. It succeeds when x has no nonzero
// coefficients (yielding 0) or exactly one, sitting at blade 0.
// Anything else returns *ErrNotScalar.
func (x *MultiVector) Scalar() (float64, error) {
	switch n := x.Terms(); {
	case n == 0:
		return 0, nil
	case n == 1 && x.coefs[0] != 0:
		return x.coefs[0], nil
	default:
		return 0, &ErrNotScalar{Terms: n}
	}
}

// LeftInv returns the left inverse of x: the reversion of x scaled so
// that LeftInv(x)*x == 1. The second result is false when no left
// inverse exists, either because x times its reversion is not a pure
// scalar or because that scalar is exactly zero.
func (x *MultiVector) LeftInv() (*MultiVector, bool) {
	y := x.Rev()
	s, err := x.Mul(y).Scalar()
	if err != nil || s == 0 {
		return nil, false
	}
	return y.MulScalar(1 / s), true
}

// RightInv returns the right inverse of x, satisfying
// x*RightInv(x) == 1. The second result is false when no right inverse
// exists.
func (x *MultiVector) RightInv() (*MultiVector, bool) {
	y := x.Rev()
	s, err := y.Mul(x).Scalar()
	if err != nil || s == 0 {
		return nil, false
	}
	return y.MulScalar(1 / s), true
}

// Div returns x * LeftInv(y). The second result is false exactly when
// y has no left inverse; no other reduction is attempted.
func (x *MultiVector) Div(y *MultiVector) (*MultiVector, bool) {
	inv, ok := y.LeftInv()
	if !ok {
		return nil, false
	}
	return x.Mul(inv), true
}
