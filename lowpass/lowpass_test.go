package lowpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	f, err := New(DefaultAlpha)
	assert.NotNil(f)
	assert.NoError(err)

	for _, alpha := range []float64{0.0, -0.1, 1.5} {
		f, err = New(alpha)
		assert.Nil(f)
		assert.ErrorIs(err, ErrInvalidAlpha)
	}
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	f, err := New(DefaultAlpha)
	assert.NoError(err)

	// first sample passes through unfiltered
	assert.Equal(10.0, f.Apply(10.0))

	// out = alpha*value + (1-alpha)*prev
	assert.InDelta(0.3*20.0+0.7*10.0, f.Apply(20.0), 1e-12)

	// converges towards a constant input
	prev := 20.0 - f.Apply(20.0)
	for i := 0; i < 50; i++ {
		gap := 20.0 - f.Apply(20.0)
		assert.True(gap >= 0 && gap <= prev)
		prev = gap
	}
	assert.InDelta(20.0, f.Apply(20.0), 1e-3)
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	f, err := New(DefaultAlpha)
	assert.NoError(err)

	f.Apply(10.0)
	f.Reset()

	// history is gone, the next sample passes through again
	assert.Equal(-3.0, f.Apply(-3.0))
}

func TestBank(t *testing.T) {
	assert := assert.New(t)

	b, err := NewBank(3, DefaultAlpha)
	assert.NotNil(b)
	assert.NoError(err)
	assert.Equal(3, b.Dims())

	b, err = NewBank(0, DefaultAlpha)
	assert.Nil(b)
	assert.ErrorIs(err, ErrInvalidDimensions)

	b, err = NewBank(3, 2.0)
	assert.Nil(b)
	assert.ErrorIs(err, ErrInvalidAlpha)
}

func TestBankUpdate(t *testing.T) {
	assert := assert.New(t)

	b, err := NewBank(2, DefaultAlpha)
	assert.NoError(err)

	z := []float64{1.0, -2.0}
	out, err := b.Update(z)
	assert.NoError(err)
	assert.Equal(z, out)

	out, err = b.Update([]float64{2.0, -4.0})
	assert.NoError(err)
	assert.InDelta(0.3*2.0+0.7*1.0, out[0], 1e-12)
	assert.InDelta(0.3*(-4.0)+0.7*(-2.0), out[1], 1e-12)

	// mismatched measurement
	out, err = b.Update([]float64{1.0})
	assert.Nil(out)
	assert.ErrorIs(err, ErrMeasurementSize)

	b.Reset()
	out, err = b.Update(z)
	assert.NoError(err)
	assert.Equal(z, out)
}
