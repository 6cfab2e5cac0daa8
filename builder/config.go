// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - seed   = ""          (empty seed is valid and deterministic)
//   - rounds = DenseRounds (48)
//   - hash   = SHA-512

package builder

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashFunc constructs a fresh hash.Hash for one chain step.
type HashFunc func() hash.Hash

// Round counts for HashChain. Each round contributes at most 32 edges.
const (
	DenseRounds  = 48
	SparseRounds = 16
	MaxRounds    = 256 // the round index is a single byte
)

// digestSize is the digest length HashChain reads pairs from.
const digestSize = 64

var (
	// HashSHA512 is the default chain hash.
	HashSHA512 HashFunc = sha512.New

	// HashSHA3_512 is an alternative 512-bit chain hash.
	HashSHA3_512 HashFunc = sha3.New512
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	seed   []byte
	rounds int
	hashFn HashFunc
}

// newBuilderConfig applies opts over the defaults in order; later options
// override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rounds: DenseRounds,
		hashFn: HashSHA512,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
