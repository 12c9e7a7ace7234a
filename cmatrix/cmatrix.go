// Package cmatrix provides construction helpers and structural predicates
// for the complex dense operators used throughout package lattice.
//
// Storage is delegated to gonum's mat.CDense; this package only adds the
// checks a lattice needs to validate energy operators:
//
//   - IsSquare, HasRealDiagonal - shape and diagonal constraints
//   - IsUpperTriangular, IsHermitian - the two admissible onsite forms
//   - Equal - exact element-wise identity (no tolerance)
//
// All predicates treat equality exactly. Two operators that differ in the
// last bit are distinct; this is a caller-visible identity decision, not a
// numeric comparison.
package cmatrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Scalar returns a 1×1 operator holding v.
func Scalar(v complex128) *mat.CDense {
	m := mat.NewCDense(1, 1, nil)
	m.Set(0, 0, v)

	return m
}

// Diagonal returns an n×n operator with d on the main diagonal and zeros
// elsewhere, n = len(d). Panics if d is empty (programmer error).
func Diagonal(d []float64) *mat.CDense {
	n := len(d)
	m := mat.NewCDense(n, n, nil)
	for i, v := range d {
		m.Set(i, i, complex(v, 0))
	}

	return m
}

// IsSquare reports whether m has as many rows as columns.
// Complexity: O(1).
func IsSquare(m *mat.CDense) bool {
	r, c := m.Dims()

	return r == c
}

// HasRealDiagonal reports whether every main-diagonal entry of m has a zero
// imaginary part. Complexity: O(n).
func HasRealDiagonal(m *mat.CDense) bool {
	r, c := m.Dims()
	n := min(r, c)
	for i := 0; i < n; i++ {
		if imag(m.At(i, i)) != 0 {
			return false
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry strictly below the main
// diagonal of m is exactly zero. Complexity: O(r·c).
func IsUpperTriangular(m *mat.CDense) bool {
	r, c := m.Dims()
	for i := 1; i < r; i++ {
		for j := 0; j < min(i, c); j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// IsHermitian reports whether m equals its own conjugate transpose exactly.
// A non-square m is never Hermitian. Complexity: O(n²).
func IsHermitian(m *mat.CDense) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			if m.At(i, j) != cmplx.Conj(m.At(j, i)) {
				return false
			}
		}
	}

	return true
}

// Equal reports exact element-wise identity of a and b.
// Operators of different shape are unequal, never an error.
func Equal(a, b *mat.CDense) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}

	return true
}

// IsZeroDiagonal reports whether every main-diagonal entry of m is exactly zero.
func IsZeroDiagonal(m *mat.CDense) bool {
	r, c := m.Dims()
	n := min(r, c)
	for i := 0; i < n; i++ {
		if m.At(i, i) != 0 {
			return false
		}
	}

	return true
}

// HasComplexElements reports whether any entry of m has a non-zero
// imaginary part.
func HasComplexElements(m *mat.CDense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if imag(m.At(i, j)) != 0 {
				return true
			}
		}
	}

	return false
}
