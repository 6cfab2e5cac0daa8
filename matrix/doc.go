// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra primitives the topology
// pipeline needs: a row-major Dense type, shape and symmetry validators, the
// graph Laplacian L = D - A, and a symmetric eigenvalue solver.
//
// Spectrum uses cyclic Jacobi sweeps: every off-diagonal pair (p,q) is rotated
// once per sweep in fixed p<q order until the largest off-diagonal magnitude
// falls below tol. For the 256×256 Laplacians produced from a seed this
// converges in a handful of sweeps and is fully deterministic.
//
// Spectrum returns the eigenvalues sorted ascending; the topology vector is
// defined on that order. Rotation products are rounded explicitly, so the
// spectrum is bit-identical on every architecture.
package matrix
