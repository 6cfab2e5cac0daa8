// Package graphcrypto derives a deterministic block cipher from the topology
// of a seed-generated graph and runs it as a counter-mode byte generator.
//
// One System is built per seed:
//
//	seed ─▶ hash-chain graph (builder) ─▶ features (topology) ─▶ topology vector
//	     ─▶ π, π⁻¹ (permutation) ─▶ S-box (sbox) ─▶ 12-round SPN (spn)
//
// The graph, vector, π and S-box are immutable once New returns. The only
// mutable state is the block counter, advanced by GenerateBlock and
// GenerateBytes under a per-system mutex. Encrypt and Decrypt never touch it.
//
// Subpackages:
//
//	core/         thread-safe undirected graph over integer vertices
//	builder/      hash-chain and classic graph constructors
//	bfs/          breadth-first search with shortest-path counts
//	matrix/       dense matrices, Laplacian, Jacobi eigen-solver
//	topology/     degree, clustering, betweenness, spectrum, folding
//	permutation/  π from the topology vector
//	gf256/        GF(2⁸) arithmetic and MixColumns tables
//	sbox/         PURE, AFFINE and CONJUGATE S-box generation
//	spn/          key schedule, bit P-layer, crypto/cipher.Block
//	analysis/     DDT/LAT, SAC, BIC, entropy and stream statistics
//
// Quick example:
//
//	sys, err := graphcrypto.New("test_seed_123")
//	if err != nil {
//		log.Fatal(err)
//	}
//	block := sys.GenerateBlock()
//	ct := sys.Encrypt([]byte("hello"))
//
// The cipher is a research construction. It makes no security claim and
// provides no authentication.
package graphcrypto
