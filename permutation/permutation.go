// Package permutation derives a bijection π over the byte values from a
// 256-byte topology vector, together with its inverse.
//
// π is produced by a stable sort of the indices 0..255 keyed on the vector's
// byte values, so equal bytes keep ascending index order. That tie-break is
// what makes π a deterministic function of the vector.
package permutation

import (
	"sort"

	"github.com/pkg/errors"
)

// Size is the domain size of every permutation in this package.
const Size = 256

// Table maps each byte value to its image.
type Table [Size]byte

var (
	// ErrNotBijective reports a table that misses or repeats a value.
	ErrNotBijective = errors.New("permutation: table is not a bijection")

	// ErrInverseMismatch reports a pair of tables that are not mutual inverses.
	ErrInverseMismatch = errors.New("permutation: tables are not mutual inverses")
)

// Generate returns π and π⁻¹ for the given vector: π[k] is the original index
// of the k-th smallest (value, index) pair. The result is verified before it
// is returned; a failure indicates a defect, not bad input.
func Generate(v *[Size]byte) (pi, inv Table, err error) {
	idx := make([]int, Size)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	for k, i := range idx {
		pi[k] = byte(i)
	}
	inv = Invert(&pi)
	if err = Verify(&pi, &inv); err != nil {
		return Table{}, Table{}, errors.Wrap(err, "permutation: generate")
	}

	return pi, inv, nil
}

// Invert returns the table q with q[t[i]] == i. The result is only meaningful
// when t is a bijection.
func Invert(t *Table) Table {
	var q Table
	for i, v := range t {
		q[v] = byte(i)
	}

	return q
}

// IsBijective reports whether t contains every byte value exactly once.
func IsBijective(t *Table) bool {
	var seen [Size]bool
	for _, v := range t {
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Verify checks that pi and inv are bijections and that
// pi[inv[x]] == x and inv[pi[x]] == x for every x.
func Verify(pi, inv *Table) error {
	if !IsBijective(pi) {
		return errors.Wrap(ErrNotBijective, "pi")
	}
	if !IsBijective(inv) {
		return errors.Wrap(ErrNotBijective, "inverse")
	}
	for x := 0; x < Size; x++ {
		if int(pi[inv[x]]) != x || int(inv[pi[x]]) != x {
			return errors.Wrapf(ErrInverseMismatch, "x=%d", x)
		}
	}

	return nil
}
