package flight

import "math"

// Constant computes the integration constant C fixed by the initial
// conditions. It parameterizes the shape of the whole trajectory.
func Constant(z0, zt, theta0 float64) float64 {
	return (math.Cos(theta0) - z0/zt/3.0) * math.Sqrt(z0/zt)
}

// RadiusOfCurvature returns the local radius of curvature of the flight
// path at depth z below the reference line, for trim depth zt and
// integration constant c.
//
// Division by zero and fractional powers of negative depths yield IEEE
// NaN/Inf, which callers tolerate.
func RadiusOfCurvature(z, zt, c float64) float64 {
	return zt / (1.0/3.0 - c/2.0*math.Pow(zt/z, 1.5))
}
