package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bravais/cmatrix"
)

func TestScalar(t *testing.T) {
	m := cmatrix.Scalar(2 - 3i)
	r, c := m.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 2-3i, m.At(0, 0))
}

func TestDiagonal(t *testing.T) {
	m := cmatrix.Diagonal([]float64{1, 2, 3})
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, complex(2, 0), m.At(1, 1))
	assert.Equal(t, complex(0, 0), m.At(0, 2))
	assert.Equal(t, complex(0, 0), m.At(2, 0))
}

func TestIsSquare(t *testing.T) {
	assert.True(t, cmatrix.IsSquare(mat.NewCDense(2, 2, nil)))
	assert.False(t, cmatrix.IsSquare(mat.NewCDense(2, 3, nil)))
}

func TestHasRealDiagonal(t *testing.T) {
	assert.True(t, cmatrix.HasRealDiagonal(cmatrix.Diagonal([]float64{1, 2})))
	assert.False(t, cmatrix.HasRealDiagonal(cmatrix.Scalar(1i)))
}

func TestIsUpperTriangular(t *testing.T) {
	upper := mat.NewCDense(2, 2, []complex128{1, 2 + 1i, 0, 3})
	assert.True(t, cmatrix.IsUpperTriangular(upper))

	lower := mat.NewCDense(2, 2, []complex128{1, 0, 2, 3})
	assert.False(t, cmatrix.IsUpperTriangular(lower))
}

func TestIsHermitian(t *testing.T) {
	herm := mat.NewCDense(2, 2, []complex128{1, 2 + 1i, 2 - 1i, 3})
	assert.True(t, cmatrix.IsHermitian(herm))

	// Off-diagonal pair is symmetric but not conjugate.
	notHerm := mat.NewCDense(2, 2, []complex128{1, 2 + 1i, 2 + 1i, 3})
	assert.False(t, cmatrix.IsHermitian(notHerm))

	assert.False(t, cmatrix.IsHermitian(mat.NewCDense(2, 3, nil)))
}

func TestEqual(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	b := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	c := mat.NewCDense(2, 2, []complex128{1, 2, 3, 5})

	assert.True(t, cmatrix.Equal(a, b))
	assert.False(t, cmatrix.Equal(a, c))
	assert.False(t, cmatrix.Equal(a, mat.NewCDense(1, 1, []complex128{1})))
}

func TestIsZeroDiagonal(t *testing.T) {
	m := mat.NewCDense(2, 2, []complex128{0, 5, 5, 0})
	assert.True(t, cmatrix.IsZeroDiagonal(m))
	assert.False(t, cmatrix.IsZeroDiagonal(cmatrix.Scalar(1)))
}

func TestHasComplexElements(t *testing.T) {
	assert.False(t, cmatrix.HasComplexElements(cmatrix.Diagonal([]float64{1, 2})))
	assert.True(t, cmatrix.HasComplexElements(mat.NewCDense(2, 2, []complex128{0, 1i, 0, 0})))
}
