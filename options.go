package graphcrypto

import (
	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by New when an option carries an unusable value.
var ErrInvalidConfig = errors.New("graphcrypto: invalid configuration")

// Option configures a System.
type Option func(*config)

type config struct {
	mode   sbox.Mode
	rounds int
	hash   builder.HashFunc
	player bool
	err    error
}

func defaultConfig() config {
	return config{
		mode:   sbox.ModeAffine,
		rounds: builder.DenseRounds,
		hash:   builder.HashSHA512,
		player: true,
	}
}

// WithMode selects the S-box generation mode. Default ModeAffine.
func WithMode(m sbox.Mode) Option {
	return func(c *config) {
		if !m.Valid() {
			c.err = errors.Wrapf(ErrInvalidConfig, "mode %s", m)
			return
		}
		c.mode = m
	}
}

// WithRounds sets the number of hash-chain rounds used to build the graph.
// Default builder.DenseRounds; builder.SparseRounds gives the sparse variant.
func WithRounds(n int) Option {
	return func(c *config) {
		if n < 1 || n > builder.MaxRounds {
			c.err = errors.Wrapf(ErrInvalidConfig, "rounds %d outside 1..%d", n, builder.MaxRounds)
			return
		}
		c.rounds = n
	}
}

// WithHash sets the hash used by the graph construction. Default SHA-512.
func WithHash(fn builder.HashFunc) Option {
	return func(c *config) {
		if fn == nil {
			c.err = errors.Wrap(ErrInvalidConfig, "nil hash")
			return
		}
		c.hash = fn
	}
}

// WithPLayer toggles the bit permutation layer. Default on.
func WithPLayer(on bool) Option {
	return func(c *config) { c.player = on }
}
