package kalman

import (
	"errors"
	"fmt"

	motion "github.com/milosgajdos/go-motion"
	"github.com/milosgajdos/go-motion/matrix"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidDimensions indicates a non-positive state dimension.
	ErrInvalidDimensions = errors.New("kalman: invalid dimensions")
	// ErrDegenerateNoise indicates a noise covariance that is not positive.
	ErrDegenerateNoise = errors.New("kalman: degenerate noise covariance")
	// ErrMeasurementSize indicates a measurement whose length differs from the filter dimensions.
	ErrMeasurementSize = errors.New("kalman: measurement size mismatch")
)

// Filter is a Kalman filter specialised for smoothing direct coordinate
// measurements: the state is observed fully and directly, so both the state
// transition matrix F and the observation matrix H are fixed to identity for
// the lifetime of the filter. With diagonal process and measurement noise this
// keeps every covariance produced by the recursion diagonal, which is what
// allows the innovation covariance to be inverted entry by entry.
type Filter struct {
	// dims is the number of state dimensions
	dims int
	// x is the state estimate stored as a dims x 1 column
	x *mat.Dense
	// p is the state covariance matrix
	p *mat.Dense
	// q is the process noise covariance matrix
	q *mat.Dense
	// r is the measurement noise covariance matrix
	r *mat.Dense
	// f is the state transition matrix
	f *mat.Dense
	// h is the observation matrix
	h *mat.Dense
	// k is the Kalman gain from the latest update
	k *mat.Dense
}

// Filter smooths one measurement stream
var _ motion.Filter = (*Filter)(nil)

// New creates a new Filter and returns it.
// It accepts the following parameters:
//   - dims:             number of state dimensions
//   - processNoise:     process noise variance, applied to every dimension
//   - measurementNoise: measurement noise variance, applied to every dimension
//
// The state estimate starts at zero and the state covariance at identity i.e.
// maximal initial uncertainty. It returns error if dims is not positive or if
// either noise variance is not positive: a non-positive measurement noise
// could drive a diagonal entry of the innovation covariance to zero and make
// its inverse undefined.
func New(dims int, processNoise, measurementNoise float64) (*Filter, error) {
	if dims <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimensions, dims)
	}

	if processNoise <= 0 || measurementNoise <= 0 {
		return nil, fmt.Errorf("%w: process: %v, measurement: %v", ErrDegenerateNoise, processNoise, measurementNoise)
	}

	q := matrix.Identity(dims)
	q.Scale(processNoise, q)

	r := matrix.Identity(dims)
	r.Scale(measurementNoise, r)

	return &Filter{
		dims: dims,
		x:    matrix.Zero(dims, 1),
		p:    matrix.Identity(dims),
		q:    q,
		r:    r,
		f:    matrix.Identity(dims),
		h:    matrix.Identity(dims),
		k:    matrix.Zero(dims, dims),
	}, nil
}

// Update runs one predict/correct cycle of the filter with measurement z and
// returns the new state estimate. The returned slice is an owned snapshot: it
// remains valid after further calls on the filter.
// It fails with ErrMeasurementSize if the length of z differs from the filter
// dimensions; the filter state is left unchanged on failure.
func (f *Filter) Update(z []float64) ([]float64, error) {
	if len(z) != f.dims {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMeasurementSize, len(z), f.dims)
	}

	xNext, pNext, err := f.predict()
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	if err := f.correct(z, xNext, pNext); err != nil {
		return nil, fmt.Errorf("correction failed: %w", err)
	}

	return f.State(), nil
}

// predict propagates the state estimate and its covariance to the next step:
//
//	x' = F*x
//	P' = F*P*F' + Q
func (f *Filter) predict() (*mat.Dense, *mat.Dense, error) {
	xNext, err := matrix.Mul(f.f, f.x)
	if err != nil {
		return nil, nil, err
	}

	cov, err := matrix.Mul(f.f, f.p)
	if err != nil {
		return nil, nil, err
	}

	cov, err = matrix.Mul(cov, matrix.Transpose(f.f))
	if err != nil {
		return nil, nil, err
	}

	pNext, err := matrix.Add(cov, f.q)
	if err != nil {
		return nil, nil, err
	}

	return xNext, pNext, nil
}

// correct corrects the predicted state with measurement z:
//
//	S = P' + R
//	K = P'*inv(S)
//	x = x' + K*(z - x')
//	P = (I - K)*P'
//
// Since H is identity the usual H factors drop out of the gain and the
// innovation, and S stays diagonal so inv(S) reduces to inverting its
// diagonal entries.
func (f *Filter) correct(z []float64, xNext, pNext *mat.Dense) error {
	zv := mat.NewDense(f.dims, 1, append([]float64(nil), z...))

	s, err := matrix.Add(pNext, f.r)
	if err != nil {
		return err
	}

	sInv, err := matrix.DiagInverse(s)
	if err != nil {
		return err
	}

	gain, err := matrix.Mul(pNext, sInv)
	if err != nil {
		return err
	}

	inn, err := matrix.Sub(zv, xNext)
	if err != nil {
		return err
	}

	corr, err := matrix.Mul(gain, inn)
	if err != nil {
		return err
	}

	x, err := matrix.Add(xNext, corr)
	if err != nil {
		return err
	}

	ik, err := matrix.Sub(matrix.Identity(f.dims), gain)
	if err != nil {
		return err
	}

	p, err := matrix.Mul(ik, pNext)
	if err != nil {
		return err
	}

	f.x = x
	f.p = p
	f.k.Copy(gain)

	return nil
}

// Dims returns the number of filtered dimensions.
func (f *Filter) Dims() int {
	return f.dims
}

// State returns a copy of the current state estimate.
func (f *Filter) State() []float64 {
	out := make([]float64, f.dims)
	mat.Col(out, 0, f.x)

	return out
}

// Cov returns a copy of the current state covariance matrix.
func (f *Filter) Cov() mat.Matrix {
	cov := &mat.Dense{}
	cov.CloneFrom(f.p)

	return cov
}

// Gain returns a copy of the Kalman gain from the latest update.
func (f *Filter) Gain() mat.Matrix {
	gain := &mat.Dense{}
	gain.CloneFrom(f.k)

	return gain
}
