// Package util provides deterministic random inputs for tests and
// benchmarks.
package util

import (
	"math/rand"

	"github.com/hupe1980/clifgo"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// MultiVector draws a random multivector of the rank-dim algebra with
// every coefficient uniform in [-1, 1).
func (r *RNG) MultiVector(dim int) *clifgo.MultiVector {
	x := clifgo.New(dim)
	for i := 0; i < 1<<dim; i++ {
		x.Set(i, 2*r.rand.Float64()-1)
	}
	return x
}

// GradeOne draws a random grade-1 multivector of the rank-dim algebra.
func (r *RNG) GradeOne(dim int) *clifgo.MultiVector {
	x := clifgo.New(dim)
	for i := 0; i < dim; i++ {
		x.Set(1<<i, 2*r.rand.Float64()-1)
	}
	return x
}

// Coords draws n random coordinates uniform in [-1, 1).
func (r *RNG) Coords(n int) []float64 {
	c := make([]float64, n)
	for i := range c {
		c[i] = 2*r.rand.Float64() - 1
	}
	return c
}
