package matrix

import (
	"errors"

	mx "github.com/milosgajdos/matrix"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch indicates operand shapes not compatible with the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	// ErrNotDiagonal indicates a matrix with non-zero off-diagonal entries.
	ErrNotDiagonal = errors.New("matrix: matrix is not diagonal")
	// ErrZeroDiagonal indicates a diagonal entry equal to zero.
	ErrZeroDiagonal = errors.New("matrix: zero diagonal entry")
)

// Zero returns a zero-filled rows x cols matrix.
// If either dimension is zero it returns an empty matrix.
func Zero(rows, cols int) *mat.Dense {
	if rows <= 0 || cols <= 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(rows, cols, nil)
}

// Identity returns the size x size identity matrix.
// If size is zero it returns an empty matrix.
func Identity(size int) *mat.Dense {
	eye, err := mx.NewDenseValIdentity(size, 1.0)
	if err != nil {
		return &mat.Dense{}
	}

	return eye
}

// Mul returns the matrix product a*b.
// It fails with ErrDimensionMismatch if the column count of a differs from the row count of b.
func Mul(a, b *mat.Dense) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ca != rb {
		return nil, ErrDimensionMismatch
	}

	if ra == 0 || ca == 0 || cb == 0 {
		return Zero(ra, cb), nil
	}

	out := mat.NewDense(ra, cb, nil)
	out.Mul(a, b)

	return out, nil
}

// Add returns the matrix sum a+b.
// It fails with ErrDimensionMismatch if a and b do not have identical shapes.
func Add(a, b *mat.Dense) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ra != rb || ca != cb {
		return nil, ErrDimensionMismatch
	}

	if ra == 0 || ca == 0 {
		return Zero(ra, ca), nil
	}

	out := mat.NewDense(ra, ca, nil)
	out.Add(a, b)

	return out, nil
}

// Sub returns the matrix difference a-b.
// It fails with ErrDimensionMismatch if a and b do not have identical shapes.
func Sub(a, b *mat.Dense) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ra != rb || ca != cb {
		return nil, ErrDimensionMismatch
	}

	if ra == 0 || ca == 0 {
		return Zero(ra, ca), nil
	}

	out := mat.NewDense(ra, ca, nil)
	out.Sub(a, b)

	return out, nil
}

// Transpose returns the transpose of a. It always succeeds.
func Transpose(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}

	out := mat.NewDense(c, r, nil)
	out.Copy(a.T())

	return out
}

// DiagInverse returns the inverse of the diagonal matrix a by inverting its
// diagonal entries. This is only valid for diagonal matrices, so a is checked
// first: it fails with ErrDimensionMismatch if a is not square, with
// ErrNotDiagonal if any off-diagonal entry is non-zero and with
// ErrZeroDiagonal if any diagonal entry is zero.
func DiagInverse(a *mat.Dense) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrDimensionMismatch
	}

	if r == 0 {
		return &mat.Dense{}, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if i != j && a.At(i, j) != 0 {
				return nil, ErrNotDiagonal
			}
		}
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		d := a.At(i, i)
		if d == 0 {
			return nil, ErrZeroDiagonal
		}
		out.Set(i, i, 1/d)
	}

	return out, nil
}
