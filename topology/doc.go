// Package topology extracts structural features from a seed graph and folds
// them into the 256-byte topology vector that drives the permutation and the
// S-box.
//
// Four feature vectors are computed per vertex, each of length 256:
//
//	Degree       number of neighbors
//	Clustering   local clustering coefficient, 2T / (k(k-1)), 0 when k < 2
//	Betweenness  Brandes betweenness, scaled by 1/((n-1)(n-2))
//	Laplacian    eigenvalues of L = D - A, ascending, zero-padded or truncated
//
// Each vector is min-max scaled to bytes independently (a constant vector
// becomes all zeros) and the four byte vectors are XORed together.
package topology
