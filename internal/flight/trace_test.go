package flight_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phugoid/internal/flight"
)

var _ = Describe("Trace", func() {
	It("fills both buffers to exactly Steps entries", func() {
		path, err := flight.Trace(flight.Params{Zt: 64, Z0: 16})
		Expect(err).NotTo(HaveOccurred())
		Expect(path.X).To(HaveLen(flight.DefaultSteps))
		Expect(path.Z).To(HaveLen(flight.DefaultSteps))
	})

	It("anchors the path at (0, z0)", func() {
		path, err := flight.Trace(flight.Params{Zt: 64, Z0: 16, Theta0: 0.3})
		Expect(err).NotTo(HaveOccurred())
		Expect(path.X[0]).To(BeZero())
		Expect(path.Z[0]).To(Equal(16.0))
	})

	It("reproduces the first step of the marching recurrence", func() {
		zt, z0 := 1.0, 1.3
		path, err := flight.Trace(flight.Params{Zt: zt, Z0: z0, Steps: 4})
		Expect(err).NotTo(HaveOccurred())

		c := (math.Cos(0) - z0/zt/3.0) * math.Sqrt(z0/zt)
		Expect(path.C).To(BeNumerically("~", c, 1e-12))
		Expect(path.C).To(BeNumerically("~", 0.6461, 5e-5))

		theta := 0.0
		nx := math.Cos(theta + math.Pi/2)
		nz := -math.Sin(theta + math.Pi/2)
		r := zt / (1.0/3.0 - c/2.0*math.Pow(zt/z0, 1.5))
		xc := 0 + nx*r
		zc := z0 + nz*r
		dtheta := 1.0 / r

		dx := 0 - xc
		dz := z0 - zc
		wantX := xc + dx*math.Cos(dtheta) + dz*math.Sin(dtheta)
		wantZ := zc - dx*math.Sin(dtheta) + dz*math.Cos(dtheta)

		Expect(path.X[1]).To(BeNumerically("~", wantX, 1e-12))
		Expect(path.Z[1]).To(BeNumerically("~", wantZ, 1e-12))
	})

	It("tolerates near-zero initial depth without aborting", func() {
		path, err := flight.Trace(flight.Params{Zt: 1.0, Z0: 0.0001})
		Expect(err).NotTo(HaveOccurred())
		Expect(path.X).To(HaveLen(flight.DefaultSteps))
		Expect(path.Z).To(HaveLen(flight.DefaultSteps))
	})

	It("tolerates zero trim depth, propagating non-finite points", func() {
		path, err := flight.Trace(flight.Params{Zt: 0, Z0: 1.0, Steps: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(path.Z).To(HaveLen(10))
		sum := path.Summarize()
		Expect(sum.Degenerate).To(BeNumerically(">", 0))
	})

	It("rejects a negative step count", func() {
		_, err := flight.Trace(flight.Params{Zt: 1, Z0: 1, Steps: -5})
		Expect(err).To(HaveOccurred())
	})

	It("stays finite over a full run for well-behaved conditions", func() {
		path, err := flight.Trace(flight.Params{Zt: 64, Z0: 16})
		Expect(err).NotTo(HaveOccurred())
		sum := path.Summarize()
		Expect(sum.Degenerate).To(BeZero())
		Expect(sum.MaxZ).To(BeNumerically(">=", sum.MinZ))
	})
})

var _ = Describe("Summarize", func() {
	It("counts non-finite points and tracks the depth range", func() {
		path := &flight.Path{
			X: []float64{0, 1, math.NaN(), 3},
			Z: []float64{2, 4, 1, math.Inf(1)},
		}
		sum := path.Summarize()
		Expect(sum.Degenerate).To(Equal(2))
		Expect(sum.MinZ).To(Equal(2.0))
		Expect(sum.MaxZ).To(Equal(4.0))
		Expect(sum.FinalX).To(Equal(1.0))
		Expect(sum.FinalZ).To(Equal(4.0))
	})
})
