// Package testsignal synthesizes chromatogram-like numeric signals for
// peakwindow's benchmarks: sums of Gaussian bumps riding
// on optional i.i.d. noise. It depends on gonum so the core peakwindow
// package itself can stay a dependency-free []float64 -> []int function.
package testsignal

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bump describes one Gaussian peak to place in a synthetic signal.
type Bump struct {
	Center float64 // sample index of the peak centre
	Height float64
	Sigma  float64 // standard deviation, in samples
}

// GaussianBumps renders n samples as the sum of the given bumps,
// evaluated at integer sample positions 0..n-1.
func GaussianBumps(n int, bumps ...Bump) []float64 {
	x := make([]float64, n)
	for i := range x {
		var v float64
		for _, b := range bumps {
			d := (float64(i) - b.Center) / b.Sigma
			v += b.Height * gaussianKernel(d)
		}
		x[i] = v
	}

	return x
}

// gaussianKernel evaluates the unnormalised Gaussian exp(-d^2/2).
func gaussianKernel(d float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Prob(d) * normalizationConst
}

// normalizationConst rescales distuv.Normal{0,1}.Prob so that d=0 yields 1,
// keeping Bump.Height a literal peak amplitude rather than a density value.
const normalizationConst = 2.5066282746310002 // sqrt(2*pi)

// WithNoise adds i.i.d. Gaussian noise with the given standard deviation
// to x in place and returns x.
func WithNoise(x []float64, sigma float64) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: sigma}
	for i := range x {
		x[i] += noise.Rand()
	}

	return x
}

// Max returns the largest sample in x, or 0 for an empty slice.
func Max(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Max(x)
}
