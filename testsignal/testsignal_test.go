package testsignal_test

import (
	"testing"

	"github.com/katalvlaran/peakwindow/testsignal"
	"github.com/stretchr/testify/assert"
)

func TestGaussianBumps_PeaksAtCenters(t *testing.T) {
	x := testsignal.GaussianBumps(101, testsignal.Bump{Center: 50, Height: 4, Sigma: 5})
	assert.InDelta(t, 4, testsignal.Max(x), 1e-9)

	peak := 0
	for i, v := range x {
		if v > x[peak] {
			peak = i
		}
	}
	assert.Equal(t, 50, peak)
}

func TestGaussianBumps_EmptyLength(t *testing.T) {
	x := testsignal.GaussianBumps(0)
	assert.Empty(t, x)
}

func TestGaussianBumps_Superposition(t *testing.T) {
	x := testsignal.GaussianBumps(40,
		testsignal.Bump{Center: 10, Height: 2, Sigma: 2},
		testsignal.Bump{Center: 30, Height: 5, Sigma: 2},
	)
	assert.Greater(t, x[30], x[10])
}

func TestWithNoise_PerturbsSamples(t *testing.T) {
	base := testsignal.GaussianBumps(20, testsignal.Bump{Center: 10, Height: 3, Sigma: 2})
	original := append([]float64(nil), base...)
	perturbed := testsignal.WithNoise(base, 1.0)

	assert.Equal(t, len(original), len(perturbed))
	differs := false
	for i := range original {
		if original[i] != perturbed[i] {
			differs = true

			break
		}
	}
	assert.True(t, differs, "WithNoise should perturb at least one sample")
}

func TestMax_EmptySlice(t *testing.T) {
	assert.Equal(t, 0.0, testsignal.Max(nil))
}
