package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestZero(t *testing.T) {
	assert := assert.New(t)

	m := Zero(2, 3)
	r, c := m.Dims()
	assert.Equal(2, r)
	assert.Equal(3, c)
	assert.Equal(0.0, mat.Sum(m))

	// zero dimensions yield an empty matrix
	m = Zero(0, 3)
	assert.True(m.IsEmpty())
}

func TestIdentity(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n <= 5; n++ {
		eye := Identity(n)

		// I*I == I
		sq, err := Mul(eye, eye)
		assert.NoError(err)
		assert.True(mat.Equal(eye, sq))
	}

	eye := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(1.0, eye.At(i, j))
				continue
			}
			assert.Equal(0.0, eye.At(i, j))
		}
	}
}

func TestMul(t *testing.T) {
	assert := assert.New(t)

	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	out, err := Mul(a, b)
	assert.NoError(err)
	assert.True(mat.Equal(mat.NewDense(2, 2, []float64{58, 64, 139, 154}), out))

	// inner dimensions do not match
	out, err = Mul(a, a)
	assert.Nil(out)
	assert.ErrorIs(err, ErrDimensionMismatch)
}

func TestAddSub(t *testing.T) {
	assert := assert.New(t)

	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})

	sum, err := Add(a, b)
	assert.NoError(err)
	assert.True(mat.Equal(mat.NewDense(2, 2, []float64{6, 8, 10, 12}), sum))

	diff, err := Sub(sum, b)
	assert.NoError(err)
	assert.True(mat.Equal(a, diff))

	c := mat.NewDense(2, 3, nil)
	sum, err = Add(a, c)
	assert.Nil(sum)
	assert.ErrorIs(err, ErrDimensionMismatch)

	diff, err = Sub(a, c)
	assert.Nil(diff)
	assert.ErrorIs(err, ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)

	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	at := Transpose(a)
	r, c := at.Dims()
	assert.Equal(3, r)
	assert.Equal(2, c)
	assert.Equal(a.At(0, 1), at.At(1, 0))

	// transpose is an involution
	assert.True(mat.Equal(a, Transpose(at)))
}

func TestDiagInverse(t *testing.T) {
	assert := assert.New(t)

	d := mat.NewDense(3, 3, nil)
	d.Set(0, 0, 2.0)
	d.Set(1, 1, 4.0)
	d.Set(2, 2, 0.5)

	inv, err := DiagInverse(d)
	assert.NoError(err)

	prod, err := Mul(d, inv)
	assert.NoError(err)
	assert.True(mat.EqualApprox(Identity(3), prod, 1e-12))

	// not square
	inv, err = DiagInverse(mat.NewDense(2, 3, nil))
	assert.Nil(inv)
	assert.ErrorIs(err, ErrDimensionMismatch)

	// off-diagonal entry
	nd := mat.NewDense(2, 2, []float64{1, 0.1, 0, 1})
	inv, err = DiagInverse(nd)
	assert.Nil(inv)
	assert.ErrorIs(err, ErrNotDiagonal)

	// zero diagonal entry
	zd := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	inv, err = DiagInverse(zd)
	assert.Nil(inv)
	assert.ErrorIs(err, ErrZeroDiagonal)
}
