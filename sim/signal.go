package sim

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleRate is the sampling frequency of the generated signals in Hz.
const SampleRate = 60.0

// NoisySine generates n samples of a sine wave with the given frequency (Hz)
// and amplitude, corrupted by uniform noise drawn from [-noiseLevel, noiseLevel].
// It returns error if n is not positive or noiseLevel is negative.
func NoisySine(n int, freq, amplitude, noiseLevel float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid sample count: %d", n)
	}

	if noiseLevel < 0 {
		return nil, fmt.Errorf("invalid noise level: %v", noiseLevel)
	}

	noise := distuv.Uniform{
		Min: -noiseLevel,
		Max: noiseLevel,
		Src: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		out[i] = amplitude*math.Sin(2*math.Pi*freq*t)
		if noiseLevel > 0 {
			out[i] += noise.Rand()
		}
	}

	return out, nil
}

// NoisyWalk generates an n x dims matrix whose rows are successive positions
// of a random walk started at the origin, with steps drawn from a zero-mean
// Gaussian with covariance stepCov. It mimics a stream of tracked coordinates
// wandering between frames.
// It returns error if n or dims are not positive, if stepCov dimensions do
// not match dims or if the Gaussian can not be created from stepCov.
func NoisyWalk(n, dims int, stepCov mat.Symmetric) (*mat.Dense, error) {
	if n <= 0 || dims <= 0 {
		return nil, fmt.Errorf("invalid walk dimensions: %d x %d", n, dims)
	}

	// stepCov is square; rows and cols are the same size
	size, _ := stepCov.Dims()
	if size != dims {
		return nil, fmt.Errorf("invalid step covariance dimension: %d", size)
	}

	src := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	dist, ok := distmv.NewNormal(make([]float64, dims), stepCov, src)
	if !ok {
		return nil, fmt.Errorf("failed to create step distribution")
	}

	out := mat.NewDense(n, dims, nil)
	pos := make([]float64, dims)
	for i := 0; i < n; i++ {
		step := dist.Rand(nil)
		for j := range pos {
			pos[j] += step[j]
		}
		out.SetRow(i, pos)
	}

	return out, nil
}
