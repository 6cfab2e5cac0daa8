// Package analysis measures the cryptographic quality of an S-box and of a
// generated byte stream.
//
// S-box metrics:
//
//	DifferentialUniformity  max DDT entry over non-zero input differences (AES: 4)
//	Nonlinearity            128 - max |LAT| excluding (0,0)            (AES: 112)
//	SAC                     how close each output bit flips with p = 1/2
//	BIC                     pairwise independence of output bits
//	Entropy                 Shannon entropy of the table values in bits
//	Autocorrelation         similarity of neighbouring cells on a 16×16 grid
//
// Stream metrics cover bit balance, byte χ², runs, lag-1 serial correlation
// and snappy compressibility. Score folds both reports into the 0..100 grade
// used by the command-line tool.
//
// The quadratic and cubic tables are split by rows across WithWorkers
// goroutines; every worker owns a disjoint row range, so no locking is needed.
package analysis
