// Package dataset generates the synthetic datasets used by the examples and the CLI.
package dataset

import (
	"math"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/axon-ml/axon/internal/train"
)

// ErrUnknownDataset is returned by ByName for unregistered names.
var ErrUnknownDataset = errors.New("unknown dataset")

// XOR returns the four rows of the XOR truth table.
func XOR() []train.Sample {
	return []train.Sample{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}
}

// Sine returns n noisy samples of f(x) = sin(x) on [0, 2π).
//
// The input is x normalized to [0, 1); the target is sin(x) plus Gaussian
// noise with standard deviation noise, clamped to [-1, 1].
func Sine(n int, noise float64, rng *rand.Rand) []train.Sample {
	samples := make([]train.Sample, n)
	for i := range samples {
		x := rng.Float64() * 2 * math.Pi
		y := math.Sin(x) + rng.NormFloat64()*noise
		samples[i] = train.Sample{
			Inputs:  []float64{x / (2 * math.Pi)},
			Targets: []float64{clamp(y, -1, 1)},
		}
	}
	return samples
}

// SineGrid returns n noiseless samples of sin(x) at evenly spaced x in [0, 2π).
func SineGrid(n int) []train.Sample {
	samples := make([]train.Sample, n)
	for i := range samples {
		x := 2 * math.Pi * float64(i) / float64(n)
		samples[i] = train.Sample{
			Inputs:  []float64{x / (2 * math.Pi)},
			Targets: []float64{math.Sin(x)},
		}
	}
	return samples
}

// ByName builds a dataset from its name: "xor" or "sine".
//
// n and noise only apply to "sine".
func ByName(name string, n int, noise float64, rng *rand.Rand) ([]train.Sample, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xor":
		return XOR(), nil
	case "sine", "sin":
		if n <= 0 {
			return nil, errors.Errorf("sine dataset needs a positive sample count, got %d", n)
		}
		return Sine(n, noise, rng), nil
	default:
		return nil, errors.Wrapf(ErrUnknownDataset, "%q", name)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
