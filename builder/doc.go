// SPDX-License-Identifier: MIT
// Package builder constructs core.Graph instances deterministically.
//
// The central constructor is HashChain: it turns a seed string into a
// 256-vertex graph by iterating a 512-bit hash and reading each consecutive
// pair of digest bytes as an edge. A handful of classic shapes (Cycle, Path,
// Star, Complete) are provided as well; their spectra and centralities are
// known in closed form, which makes them the reference fixtures for the
// topology and matrix packages.
//
// Usage:
//
//	g, err := builder.BuildGraph(256,
//	    []builder.BuilderOption{builder.WithSeed("my seed"), builder.WithRounds(builder.SparseRounds)},
//	    builder.HashChain())
//
// Every constructor is pure with respect to its resolved configuration: the
// same options and call order produce the same edge set on every platform.
package builder
