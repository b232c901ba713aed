// Package clifgo implements dense geometric (Clifford) algebra over
// the reals with an all-orthonormal +1 signature.
//
// A MultiVector of the rank-n algebra carries 2^n coefficients, one
// per basis blade; blades are indexed by bitmasks as described in the
// blade package. All products reduce to pairwise blade combination, so
// cost grows with the number of nonzero terms, and the algebra rank is
// expected to stay in the single digits.
//
// # Quick Start
//
//	ga := clifgo.NewGA(3)
//	x := ga.Scalar(4).Add(ga.Blade(3, 1)).Add(ga.Blade(4, 2)).Add(ga.Blade(5, 1, 2))
//	y := ga.Scalar(3).Add(ga.Blade(2, 1)).Add(ga.Blade(3, 2)).Add(ga.Blade(4, 1, 2))
//	fmt.Println(x.Mul(y)) // 10 + 16*[1] + 26*[2] + 32*[1,2]
//
// Arithmetic is purely functional: no operator mutates an operand, and
// results never alias operand storage. Binary operations between
// multivectors of different rank promote to the larger rank, treating
// the smaller operand's missing high blades as zero.
//
// Inversion can fail for degenerate elements. LeftInv, RightInv and
// Div report that softly through a second boolean result; the hard
// error surfaces (Scalar coercion, DivScalar) return typed errors.
//
// The vector package provides a plain immutable coordinate tuple that
// bridges to the grade-1 part of a MultiVector via FromVector and
// (*MultiVector).Vector. The codec package serializes multivectors.
package clifgo
