// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and symmetry checks.
//  - Return sentinel errors tagged with the validator name.
//
// AI-Hints:
//  - Use ValidateSymmetric before Jacobi to fail fast.

package matrix

import "math"

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric ensures m is square and |m[i,j] - m[j,i]| <= tol for all i<j.
// A negative tol is taken by absolute value; NaN/Inf tol is ErrNaNInf.
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// maxOffDiagonal returns max |a[i,j]| over i<j of an n×n row-major slice.
func maxOffDiagonal(a []float64, n int) float64 {
	var maxOff float64
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}
