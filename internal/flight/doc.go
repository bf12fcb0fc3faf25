// Package flight traces the flight path of a glider undergoing phugoid
// oscillation, following the Lanchester model with the sign conventions
// of Milne-Thomson (1958).
//
// The path is marched in fixed arc-length increments: at each step the
// local radius of curvature is evaluated from the current depth, and the
// point is rotated about the instantaneous center of curvature by the
// corresponding angle.
//
// Depth z is measured positive downward from a horizontal reference line.
// Degenerate inputs (depth near zero, zero trim depth) produce NaN/Inf in
// the curvature formula; these propagate through the remaining points
// rather than aborting the trace.
package flight
