package clifgo

// GA is the factory for the rank-n geometric algebra. It builds
// scalars, blades from human-friendly 1-based generator indices, and
// the pseudoscalar, all as MultiVector values of its dimension.
type GA struct {
	n int
}

// NewGA returns the factory for the rank-n algebra, n >= 0.
func NewGA(n int) GA {
	return GA{n: n}
}

// Dim returns the rank of this algebra.
func (g GA) Dim() int {
	return g.n
}

// Scalar returns the multivector with blade-0 coefficient s.
func (g GA) Scalar(s float64) *MultiVector {
	x := New(g.n)
	x.coefs[0] = s
	return x
}

// Blade builds coef times the product of the generators named by the
// 1-based indices, multiplied in the given order. Duplicate or
// out-of-order indices fold through the geometric product's sign rule:
// Blade(1, 2, 1) is -e12 and Blade(1, 3, 3) is the scalar 1.
func (g GA) Blade(coef float64, indices ...int) *MultiVector {
	x := g.Scalar(coef)
	for _, i := range indices {
		y := New(g.n)
		y.coefs[1<<(i-1)] = 1
		x = x.Mul(y)
	}
	return x
}

// E returns the unit blade for the given 1-based generator indices.
// E() is the scalar 1.
func (g GA) E(indices ...int) *MultiVector {
	return g.Blade(1, indices...)
}

// I returns the standard pseudoscalar of this algebra.
func (g GA) I() *MultiVector {
	x := New(g.n)
	x.coefs[len(x.coefs)-1] = 1
	return x
}

// Coerce re-projects m into this algebra, copying coefficients
// index-for-index up to this algebra's blade count. Blades beyond that
// range are silently dropped, so coercing into a lower rank truncates
// rather than failing. Note that the result never compares Equal to m
// unless the ranks already match, since equality is length-sensitive.
func (g GA) Coerce(m *MultiVector) *MultiVector {
	x := New(g.n)
	n := len(x.coefs)
	if len(m.coefs) < n {
		n = len(m.coefs)
	}
	copy(x.coefs[:n], m.coefs[:n])
	return x
}
