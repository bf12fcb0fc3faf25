package flight

import (
	"fmt"
	"math"
)

const (
	// DefaultSteps is the number of points in a traced path.
	DefaultSteps = 1000
	// DefaultDs is the arc-length increment per step, in depth units.
	DefaultDs = 1.0
)

// Params holds the initial conditions and march settings for one trace.
type Params struct {
	Zt     float64 // trim depth below the reference line
	Z0     float64 // initial depth below the reference line
	Theta0 float64 // initial heading, radians
	Steps  int
	Ds     float64
}

// WithDefaults fills zero-valued march settings with the defaults.
func (p Params) WithDefaults() Params {
	if p.Steps == 0 {
		p.Steps = DefaultSteps
	}
	if p.Ds == 0 {
		p.Ds = DefaultDs
	}
	return p
}

// Path is one traced flight path. X and Z always hold exactly
// Params.Steps entries; entries after a degenerate curvature evaluation
// may be NaN/Inf.
type Path struct {
	X []float64
	Z []float64
	C float64
	Params
}

// Trace integrates the flight path from the given initial conditions.
//
// The march is deterministic and single-pass: each step rotates the
// previous point about the instantaneous center of curvature by ds/R.
// Degenerate numeric results are not errors; they propagate into the
// remaining points and the buffers keep their full length.
func Trace(p Params) (*Path, error) {
	p = p.WithDefaults()
	if p.Steps < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d", p.Steps)
	}
	if p.Ds < 0 {
		return nil, fmt.Errorf("ds must be non-negative, got %f", p.Ds)
	}

	path := &Path{
		X:      make([]float64, p.Steps),
		Z:      make([]float64, p.Steps),
		Params: p,
	}
	path.X[0] = 0
	path.Z[0] = p.Z0
	theta := p.Theta0

	path.C = Constant(p.Z0, p.Zt, p.Theta0)

	for i := 1; i < p.Steps; i++ {
		// minus on the second component: the z axis points down
		nx := math.Cos(theta + math.Pi/2)
		nz := -math.Sin(theta + math.Pi/2)

		r := RadiusOfCurvature(path.Z[i-1], p.Zt, path.C)
		xc := path.X[i-1] + nx*r
		zc := path.Z[i-1] + nz*r
		dtheta := p.Ds / r

		path.X[i], path.Z[i] = Rotate(path.X[i-1], path.Z[i-1], xc, zc, dtheta)
		theta += dtheta
	}

	return path, nil
}

// Summary aggregates a traced path for display.
type Summary struct {
	FinalX     float64
	FinalZ     float64
	MinZ       float64
	MaxZ       float64
	Degenerate int // count of non-finite points
}

// Summarize scans a path once and reports its extent and how many points
// went non-finite.
func (p *Path) Summarize() Summary {
	s := Summary{MinZ: math.Inf(1), MaxZ: math.Inf(-1)}
	for i := range p.Z {
		x, z := p.X[i], p.Z[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(z) || math.IsInf(z, 0) {
			s.Degenerate++
			continue
		}
		s.FinalX, s.FinalZ = x, z
		if z < s.MinZ {
			s.MinZ = z
		}
		if z > s.MaxZ {
			s.MaxZ = z
		}
	}
	return s
}
