// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

import "fmt"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithSeed sets the seed string; its UTF-8 bytes start the hash chain.
func WithSeed(seed string) BuilderOption {
	b := []byte(seed)
	return func(c *builderConfig) { c.seed = b }
}

// WithRounds sets the number of hash-chain rounds. Panics outside 1..MaxRounds.
func WithRounds(n int) BuilderOption {
	if n < 1 || n > MaxRounds {
		panic(fmt.Sprintf("builder: WithRounds(%d) outside 1..%d", n, MaxRounds))
	}
	return func(c *builderConfig) { c.rounds = n }
}

// WithHash overrides the chain hash. Panics on nil.
func WithHash(fn HashFunc) BuilderOption {
	if fn == nil {
		panic("builder: WithHash(nil)")
	}
	return func(c *builderConfig) { c.hashFn = fn }
}
