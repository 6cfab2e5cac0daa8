package sbox

import (
	"github.com/katalvlaran/graphcrypto/permutation"
	"github.com/pkg/errors"
)

// Table is a 256-entry byte substitution.
type Table = permutation.Table

var (
	// ErrMissingTopology is returned when ModeAffine is requested without a topology vector.
	ErrMissingTopology = errors.New("sbox: AFFINE mode requires a topology vector")

	// ErrMissingPermutation is returned when ModeConjugate is requested without π and π⁻¹.
	ErrMissingPermutation = errors.New("sbox: CONJUGATE mode requires a permutation")

	// ErrNotBijective reports a generated table that is not a bijection or
	// whose inverse fails the round-trip check.
	ErrNotBijective = errors.New("sbox: table is not a bijection")
)

// Params carries the seed-derived inputs a mode may consume.
type Params struct {
	Pi, PiInv *Table
	Topology  *[256]byte
	Laplacian []float64
}

// Box is a verified S-box and its inverse.
type Box struct {
	mode Mode
	fwd  Table
	inv  Table
}

// Generate builds the S-box for mode from p and verifies it.
func Generate(mode Mode, p Params) (*Box, error) {
	var fwd Table
	switch mode {
	case ModePure:
		fwd = Reference
	case ModeAffine:
		if p.Topology == nil {
			return nil, ErrMissingTopology
		}
		b := AffineConstant(p.Topology, p.Laplacian)
		for x := range fwd {
			fwd[x] = ApplyAffine(Reference[x], b)
		}
	case ModeConjugate:
		if p.Pi == nil || p.PiInv == nil {
			return nil, ErrMissingPermutation
		}
		for x := range fwd {
			fwd[x] = p.Pi[Reference[p.PiInv[x]]]
		}
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "%d", int(mode))
	}

	return newBox(mode, fwd)
}

// FromTable verifies an existing table and wraps it under the given mode tag.
func FromTable(mode Mode, fwd Table) (*Box, error) {
	return newBox(mode, fwd)
}

func newBox(mode Mode, fwd Table) (*Box, error) {
	if !permutation.IsBijective(&fwd) {
		return nil, errors.Wrapf(ErrNotBijective, "mode %s", mode)
	}
	inv := permutation.Invert(&fwd)
	for x := range fwd {
		if int(inv[fwd[x]]) != x {
			return nil, errors.Wrapf(ErrNotBijective, "mode %s: inverse fails at %d", mode, x)
		}
	}

	return &Box{mode: mode, fwd: fwd, inv: inv}, nil
}

// Mode returns the generation mode.
func (b *Box) Mode() Mode { return b.mode }

// Forward returns a copy of the substitution table. A nil Box yields the
// all-zero table.
func (b *Box) Forward() Table {
	if b == nil {
		return Table{}
	}
	return b.fwd
}

// Inverse returns a copy of the inverse table. A nil Box yields the
// all-zero table.
func (b *Box) Inverse() Table {
	if b == nil {
		return Table{}
	}
	return b.inv
}

// Substitute returns S[x].
func (b *Box) Substitute(x byte) byte { return b.fwd[x] }

// Invert returns S⁻¹[y].
func (b *Box) Invert(y byte) byte { return b.inv[y] }

// DiffFromReference counts entries that differ from the AES S-box.
func (b *Box) DiffFromReference() int {
	var n int
	for x := range b.fwd {
		if b.fwd[x] != Reference[x] {
			n++
		}
	}

	return n
}
