package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		v, err := New(3)
		require.NoError(t, err)
		assert.Equal(t, 3, v.Dim())
		assert.True(t, v.IsZero())
	})

	t.Run("MissingDefaultToZero", func(t *testing.T) {
		v, err := New(6, 1, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0, 1, 0, 0, 0}, v.Coords())
		assert.False(t, v.IsZero())
	})

	t.Run("ExcessCoordinates", func(t *testing.T) {
		_, err := New(2, 1, 2, 3)
		var target *ErrIndexOutOfRange
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 3, target.Index)
		assert.Equal(t, 2, target.Dim)
	})
}

func TestAt(t *testing.T) {
	v := MustNew(3, 1, 0, 2.5)

	got, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	for _, i := range []int{0, -1, 4} {
		_, err := v.At(i)
		var target *ErrIndexOutOfRange
		assert.ErrorAs(t, err, &target, "index %d", i)
	}

	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 0.0, v.Y())
	assert.Equal(t, 2.5, v.Z())
}

func TestEqual(t *testing.T) {
	v := MustNew(3, 1, 0, 1)
	assert.True(t, v.Equal(MustNew(3, 1, 0, 1)))
	assert.False(t, v.Equal(MustNew(4, 1, 0, 1)))
	assert.False(t, v.Equal(MustNew(3, 1, 0, -1)))
	assert.False(t, v.Equal(nil))
}

func TestAddSub(t *testing.T) {
	v := MustNew(3, 1, 0, 1)
	w := MustNew(3, 2, 1, -1)

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 0}, sum.Coords())

	diff, err := v.Sub(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, 2}, diff.Coords())

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := v.Add(MustNew(4))
		var target *ErrDimensionMismatch
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 3, target.Want)
		assert.Equal(t, 4, target.Got)

		_, err = v.Sub(MustNew(2))
		assert.ErrorAs(t, err, &target)
	})
}

func TestScaleNeg(t *testing.T) {
	v := MustNew(3, 1, 0, 1)
	assert.Equal(t, []float64{2.5, 0, 2.5}, v.Scale(2.5).Coords())
	assert.Equal(t, []float64{-1, -0.0, -1}, v.Neg().Coords())
}

func TestDot(t *testing.T) {
	v := MustNew(3, 1, 0, 1)
	w := MustNew(3, -1, 2, 3)

	got, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	_, err = v.Dot(MustNew(2))
	var target *ErrDimensionMismatch
	assert.ErrorAs(t, err, &target)
}

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		v, w     *Vector
		expected *Vector
	}{
		{"XY", MustNew(3, 1, 0, 0), MustNew(3, 0, 1, 0), MustNew(3, 0, 0, 1)},
		{"YZ", MustNew(3, 0, 1, 0), MustNew(3, 0, 0, 1), MustNew(3, 1, 0, 0)},
		{"Parallel", MustNew(3, 1, 2, 3), MustNew(3, 2, 4, 6), MustNew(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Cross(tt.w)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %v", got)
		})
	}

	t.Run("NonThreeDimensional", func(t *testing.T) {
		var target *ErrDimensionMismatch
		_, err := MustNew(2).Cross(MustNew(3))
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 3, target.Want)

		_, err = MustNew(3).Cross(MustNew(4))
		assert.ErrorAs(t, err, &target)
	})
}

func TestNormNormalize(t *testing.T) {
	v := MustNew(3, 3, 4, 12)
	assert.Equal(t, 13.0, v.Norm())

	u := v.Normalize()
	assert.InDelta(t, 1.0, u.Norm(), 1e-12)
	assert.InDelta(t, 3.0/13, u.X(), 1e-12)

	zero := MustNew(3)
	assert.Same(t, zero, zero.Normalize())
}

func TestCylindricalRoundTrip(t *testing.T) {
	v := MustNew(3, 1, 1, 0)

	r, theta, z, err := v.ToCylindrical()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, 1e-12)
	assert.InDelta(t, math.Pi/4, theta, 1e-12)
	assert.Zero(t, z)

	back := FromCylindrical(r, theta, z)
	assert.InDelta(t, 0, mustSub(t, back, v).Norm(), 1e-12)

	_, _, _, err = MustNew(2).ToCylindrical()
	var target *ErrDimensionMismatch
	assert.ErrorAs(t, err, &target)
}

func TestSphericalRoundTrip(t *testing.T) {
	v := MustNew(3, 1, 1, 0)

	rho, phi, theta, err := v.ToSpherical()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, rho, 1e-12)
	assert.InDelta(t, math.Pi/2, phi, 1e-12)
	assert.InDelta(t, math.Pi/4, theta, 1e-12)

	back := FromSpherical(rho, phi, theta)
	assert.InDelta(t, 0, mustSub(t, back, v).Norm(), 1e-12)

	t.Run("ZeroVector", func(t *testing.T) {
		rho, phi, _, err := MustNew(3).ToSpherical()
		require.NoError(t, err)
		assert.Zero(t, rho)
		assert.Zero(t, phi)
	})

	t.Run("Poles", func(t *testing.T) {
		_, phi, _, err := MustNew(3, 0, 0, 2).ToSpherical()
		require.NoError(t, err)
		assert.Zero(t, phi)

		_, phi, _, err = MustNew(3, 0, 0, -2).ToSpherical()
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, phi, 1e-12)
	})
}

func TestConcat(t *testing.T) {
	v := MustNew(3, 1, 0, 0)
	w := MustNew(3, 0, 1, 0)

	u := v.Concat(w)
	assert.Equal(t, 6, u.Dim())
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0}, u.Coords())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 0, 2.5)", MustNew(3, 1, 0, 2.5).String())
	assert.Equal(t, "()", MustNew(0).String())
}

func TestCoordsIsACopy(t *testing.T) {
	v := MustNew(2, 1, 2)
	c := v.Coords()
	c[0] = 99
	assert.Equal(t, []float64{1, 2}, v.Coords())
}

func mustSub(t *testing.T, a, b *Vector) *Vector {
	t.Helper()
	d, err := a.Sub(b)
	require.NoError(t, err)
	return d
}
