// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w via builderErrorf.
//   - Algorithms never panic; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the graph order is below what the
// constructor needs (HashChain requires all 256 byte values to be vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrDigestSize indicates the configured hash does not produce 64 bytes.
var ErrDigestSize = errors.New("builder: hash digest must be 64 bytes")

// ErrConstructFailed indicates a constructor could not complete, for example
// when a nil constructor is passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the constructor name and a short detail.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
