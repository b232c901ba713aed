package clifgo

import "github.com/hupe1980/clifgo/vector"

// FromVector embeds v into the rank v.Dim() algebra as a grade-1
// multivector, mapping coordinate i to blade 1<<(i-1).
func FromVector(v *vector.Vector) *MultiVector {
	x := New(v.Dim())
	for i, c := range v.Coords() {
		if c != 0 {
			x.coefs[1<<i] = c
		}
	}
	return x
}

// Vector extracts the grade-1 part of x as a coordinate tuple, mapping
// blade 1<<(i-1) back to coordinate i. All other grades are ignored.
func (x *MultiVector) Vector() *vector.Vector {
	coords := make([]float64, x.dim)
	for i := range coords {
		coords[i] = x.coefs[1<<i]
	}
	v, _ := vector.New(x.dim, coords...)
	return v
}
