package spn

import (
	"crypto/cipher"

	"github.com/katalvlaran/graphcrypto/permutation"
	"github.com/pkg/errors"
)

// Substitution supplies the S-box and its inverse.
type Substitution interface {
	Forward() permutation.Table
	Inverse() permutation.Table
}

var (
	// ErrNilSubstitution is returned by New when no S-box is supplied.
	ErrNilSubstitution = errors.New("spn: substitution is nil")

	// ErrBadSubstitution is returned by New when the forward table is not a
	// bijection or the inverse table does not undo it.
	ErrBadSubstitution = errors.New("spn: substitution is not an invertible byte permutation")
)

// Option configures a Cipher.
type Option func(*Cipher)

// WithBitPermutation enables the bit-level P-layer. Nil disables it.
func WithBitPermutation(p *BitPermutation) Option {
	return func(c *Cipher) { c.perm = p }
}

// Cipher is the SPN block cipher. It is immutable and safe for concurrent use.
type Cipher struct {
	fwd, inv [256]byte
	keys     Schedule
	perm     *BitPermutation
}

var _ cipher.Block = (*Cipher)(nil)

// New returns a Cipher over sub and keys.
func New(sub Substitution, keys Schedule, opts ...Option) (*Cipher, error) {
	if sub == nil {
		return nil, ErrNilSubstitution
	}
	c := &Cipher{fwd: sub.Forward(), inv: sub.Inverse(), keys: keys}
	if !permutation.IsBijective((*permutation.Table)(&c.fwd)) {
		return nil, errors.Wrap(ErrBadSubstitution, "forward table repeats a value")
	}
	for x := range c.fwd {
		if int(c.inv[c.fwd[x]]) != x {
			return nil, errors.Wrapf(ErrBadSubstitution, "inverse mismatch at %d", x)
		}
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// PLayer reports whether the bit permutation is enabled.
func (c *Cipher) PLayer() bool { return c.perm != nil }

// Encrypt encrypts the first block in src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("spn: input not full block")
	}
	if len(dst) < BlockSize {
		panic("spn: output not full block")
	}
	var s state
	copy(s[:], src)

	addRoundKey(&s, &c.keys[0])
	for r := 1; r < Rounds; r++ {
		subBytes(&s, &c.fwd)
		shiftRows(&s)
		if c.perm != nil {
			c.perm.Apply(&s)
		}
		mixColumns(&s)
		addRoundKey(&s, &c.keys[r])
	}
	subBytes(&s, &c.fwd)
	shiftRows(&s)
	if c.perm != nil {
		c.perm.Apply(&s)
	}
	addRoundKey(&s, &c.keys[Rounds])

	copy(dst, s[:])
}

// Decrypt decrypts the first block in src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("spn: input not full block")
	}
	if len(dst) < BlockSize {
		panic("spn: output not full block")
	}
	var s state
	copy(s[:], src)

	addRoundKey(&s, &c.keys[Rounds])
	if c.perm != nil {
		c.perm.Invert(&s)
	}
	invShiftRows(&s)
	subBytes(&s, &c.inv)
	for r := Rounds - 1; r >= 1; r-- {
		addRoundKey(&s, &c.keys[r])
		invMixColumns(&s)
		if c.perm != nil {
			c.perm.Invert(&s)
		}
		invShiftRows(&s)
		subBytes(&s, &c.inv)
	}
	addRoundKey(&s, &c.keys[0])

	copy(dst, s[:])
}
