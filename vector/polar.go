package vector

import "math"

// ToCylindrical returns the cylindrical coordinates (r, theta, z) of a
// 3-dimensional vector: radius and azimuth in the xy-plane, plus the
// unchanged z coordinate.
func (v *Vector) ToCylindrical() (r, theta, z float64, err error) {
	if len(v.coords) != 3 {
		return 0, 0, 0, &ErrDimensionMismatch{Want: 3, Got: len(v.coords)}
	}
	theta = math.Atan2(v.Y(), v.X())
	r = math.Hypot(v.X(), v.Y())
	return r, theta, v.Z(), nil
}

// FromCylindrical returns the 3-dimensional vector with cylindrical
// coordinates (r, theta, z).
func FromCylindrical(r, theta, z float64) *Vector {
	return &Vector{coords: []float64{r * math.Cos(theta), r * math.Sin(theta), z}}
}

// ToSpherical returns the spherical coordinates (rho, phi, theta) of a
// 3-dimensional vector, with phi = 0 at the north pole and phi = pi at
// the south pole. The zero vector has phi = 0.
func (v *Vector) ToSpherical() (rho, phi, theta float64, err error) {
	if len(v.coords) != 3 {
		return 0, 0, 0, &ErrDimensionMismatch{Want: 3, Got: len(v.coords)}
	}
	rho = v.Norm()
	theta = math.Atan2(v.Y(), v.X())
	if rho != 0 {
		phi = math.Acos(v.Z() / rho)
	}
	return rho, phi, theta, nil
}

// FromSpherical returns the 3-dimensional vector with spherical
// coordinates (rho, phi, theta).
func FromSpherical(rho, phi, theta float64) *Vector {
	return &Vector{coords: []float64{
		rho * math.Sin(phi) * math.Cos(theta),
		rho * math.Sin(phi) * math.Sin(theta),
		rho * math.Cos(phi),
	}}
}
