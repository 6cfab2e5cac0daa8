// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_hashchain.go - seed-driven graph construction.
//
// Contract:
//   - g must have at least 256 vertices (else ErrTooFewVertices).
//   - cfg.hashFn must yield 64-byte digests (else ErrDigestSize).
//   - Round r hashes (previous input || byte(r)); round 0's previous input is
//     the seed. The digest becomes the next round's previous input.
//   - Digest bytes (2i, 2i+1) form edge i of the round; equal bytes are skipped
//     and repeated pairs are absorbed by core's idempotent AddEdge.
//
// Complexity:
//   - Time: O(rounds · 32 · log d).

package builder

import "github.com/katalvlaran/graphcrypto/core"

const (
	methodHashChain   = "HashChain"
	minHashChainNodes = 256
)

// HashChain returns a Constructor that adds the seed's hash-chain edges.
func HashChain() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.VertexCount() < minHashChainNodes {
			return builderErrorf(methodHashChain, "vertex count", ErrTooFewVertices)
		}

		cur := append([]byte(nil), cfg.seed...)
		for r := 0; r < cfg.rounds; r++ {
			h := cfg.hashFn()
			h.Write(cur)
			h.Write([]byte{byte(r)})
			digest := h.Sum(nil)
			if len(digest) != digestSize {
				return builderErrorf(methodHashChain, "digest", ErrDigestSize)
			}

			for i := 0; i+1 < len(digest); i += 2 {
				u, v := int(digest[i]), int(digest[i+1])
				if u == v {
					continue
				}
				if _, err := g.AddEdge(u, v); err != nil {
					return builderErrorf(methodHashChain, "AddEdge", err)
				}
			}
			cur = digest
		}

		return nil
	}
}
