package lowpass

import (
	"errors"
	"fmt"

	motion "github.com/milosgajdos/go-motion"
)

// DefaultAlpha is the smoothing coefficient used for landmark streams.
const DefaultAlpha = 0.3

var (
	// ErrInvalidAlpha indicates a smoothing coefficient outside (0, 1].
	ErrInvalidAlpha = errors.New("lowpass: alpha out of range")
	// ErrInvalidDimensions indicates a non-positive bank dimension.
	ErrInvalidDimensions = errors.New("lowpass: invalid dimensions")
	// ErrMeasurementSize indicates a measurement whose length differs from the bank dimensions.
	ErrMeasurementSize = errors.New("lowpass: measurement size mismatch")
)

// Filter is a first order exponential low-pass filter. It is a cheaper
// alternative to the Kalman filter for smoothing a single coordinate:
//
//	out = alpha*value + (1-alpha)*prev
//
// The first sample passes through unfiltered.
type Filter struct {
	// alpha is the smoothing coefficient
	alpha float64
	// prev is the previous filter output
	prev float64
	// primed reports whether the filter has seen a sample
	primed bool
}

// New creates a new Filter with smoothing coefficient alpha and returns it.
// It returns error unless 0 < alpha <= 1.
func New(alpha float64) (*Filter, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}

	return &Filter{alpha: alpha}, nil
}

// Apply filters one sample and returns the smoothed value.
func (f *Filter) Apply(value float64) float64 {
	if !f.primed {
		f.prev = value
		f.primed = true

		return value
	}

	out := f.alpha*value + (1-f.alpha)*f.prev
	f.prev = out

	return out
}

// Reset discards the filter history. The next sample passes through unfiltered.
func (f *Filter) Reset() {
	f.prev = 0
	f.primed = false
}

// Bank is a set of independent per-coordinate low-pass filters sharing one
// smoothing coefficient, e.g. one filter per landmark coordinate.
type Bank struct {
	filters []*Filter
}

// Bank smooths one measurement stream
var _ motion.Filter = (*Bank)(nil)

// NewBank creates a Bank of dims filters with smoothing coefficient alpha and returns it.
// It returns error if dims is not positive or alpha is out of range.
func NewBank(dims int, alpha float64) (*Bank, error) {
	if dims <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimensions, dims)
	}

	filters := make([]*Filter, dims)
	for i := range filters {
		f, err := New(alpha)
		if err != nil {
			return nil, err
		}
		filters[i] = f
	}

	return &Bank{filters: filters}, nil
}

// Update filters measurement z coordinate by coordinate and returns the smoothed vector.
// It fails with ErrMeasurementSize if the length of z differs from the bank dimensions.
func (b *Bank) Update(z []float64) ([]float64, error) {
	if len(z) != len(b.filters) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMeasurementSize, len(z), len(b.filters))
	}

	out := make([]float64, len(z))
	for i, f := range b.filters {
		out[i] = f.Apply(z[i])
	}

	return out, nil
}

// Dims returns the number of filtered dimensions.
func (b *Bank) Dims() int {
	return len(b.filters)
}

// Reset discards the history of every filter in the bank.
func (b *Bank) Reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}
