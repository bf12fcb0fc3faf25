package flight

import "math"

// Rotate returns the position of (x, z) after rotation by angle radians
// about the center (xc, zc).
//
// The sign pattern (plus on the x row, minus on the z row) accounts for
// the z axis pointing downward; swapping it flips the handedness of the
// trajectory.
func Rotate(x, z, xc, zc, angle float64) (float64, float64) {
	dx := x - xc
	dz := z - zc
	sin, cos := math.Sincos(angle)
	xNew := dx*cos + dz*sin
	zNew := -dx*sin + dz*cos
	return xc + xNew, zc + zNew
}
