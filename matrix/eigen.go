// SPDX-License-Identifier: MIT
// Package: matrix
//
// eigen.go - symmetric eigen decomposition by cyclic Jacobi rotations.
//
// Determinism:
//   - Pairs are visited in fixed p<q row-major order every sweep, and the
//     rotation formula is fixed, so results are bit-identical across runs.
//
// Complexity:
//   - Time O(sweeps · n³), Space O(n²).

package matrix

import (
	"math"
	"sort"
)

// Defaults suited to graph Laplacians of a few hundred vertices.
const (
	DefaultEigenTol       = 1e-9
	DefaultEigenMaxSweeps = 100
)

// Spectrum returns the eigenvalues of a symmetric matrix sorted ascending.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol). Copy m into a work buffer.
//   - Stage 2: Sweep all (p,q), p<q, applying a Jacobi rotation whenever
//     |A[p,q]| >= tol.
//   - Stage 3: Stop once max off-diagonal < tol, else ErrMatrixEigenFailed
//     after maxSweeps. Read the diagonal and sort it.
func Spectrum(m *Dense, tol float64, maxSweeps int) ([]float64, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opSpectrum, err)
	}
	n := m.r
	a := m.Clone()
	if err := jacobi(a.data, n, tol, maxSweeps); err != nil {
		return nil, matrixErrorf(opSpectrum, err)
	}

	eigs := make([]float64, n)
	for i := range eigs {
		eigs[i] = a.data[i*n+i]
	}
	sort.Float64s(eigs)

	return eigs, nil
}

// jacobi diagonalises the symmetric n×n row-major buffer a in place.
//
// Every product is wrapped in float64(...) so the compiler may not fuse it
// into an FMA; the spectrum feeds the cipher and must round the same on
// every architecture.
func jacobi(a []float64, n int, tol float64, maxSweeps int) error {
	tol = math.Abs(tol)
	var (
		app, aqq, apq  float64
		aip, aiq       float64
		new_ip, new_iq float64
		theta, t, c, s float64
	)
	for sweep := 0; sweep < maxSweeps; sweep++ {
		if maxOffDiagonal(a, n) < tol {
			return nil
		}
		for p := 0; p < n-1; p++ {
			for r := p + 1; r < n; r++ {
				apq = a[p*n+r]
				if math.Abs(apq) < tol {
					continue
				}
				app = a[p*n+p]
				aqq = a[r*n+r]

				// θ = (aqq−app)/(2*apq), t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+hypot1(theta)), theta)
				c = 1.0 / math.Sqrt(float64(t*t)+1)
				s = t * c

				for i := 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a[i*n+p]
					aiq = a[i*n+r]
					new_ip = float64(c*aip) - float64(s*aiq)
					new_iq = float64(s*aip) + float64(c*aiq)
					a[i*n+p], a[p*n+i] = new_ip, new_ip
					a[i*n+r], a[r*n+i] = new_iq, new_iq
				}
				a[p*n+p] = float64(c*c*app) - float64(2*c*s*apq) + float64(s*s*aqq)
				a[r*n+r] = float64(s*s*app) + float64(2*c*s*apq) + float64(c*c*aqq)
				a[p*n+r], a[r*n+p] = 0, 0
			}
		}
	}
	if maxOffDiagonal(a, n) < tol {
		return nil
	}

	return ErrMatrixEigenFailed
}

// hypot1 returns √(x²+1) the way math.Hypot(x, 1) does, with the square
// rounded explicitly.
func hypot1(x float64) float64 {
	p, q := math.Abs(x), 1.0
	if p < q {
		p, q = q, p
	}
	q = q / p

	return p * math.Sqrt(1+float64(q*q))
}
