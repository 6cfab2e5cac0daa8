package graphcrypto

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync"

	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/core"
	"github.com/katalvlaran/graphcrypto/permutation"
	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/katalvlaran/graphcrypto/spn"
	"github.com/katalvlaran/graphcrypto/topology"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// BlockSize is the size of one generated or encrypted block.
const BlockSize = spn.BlockSize

// System is the cipher derived from one seed.
// All methods are safe for concurrent use.
type System struct {
	seed   string
	cfg    config
	topo   *topology.Result
	pi     permutation.Table
	piInv  permutation.Table
	box    *sbox.Box
	keys   spn.Schedule
	cipher *spn.Cipher

	mu      sync.Mutex
	counter uint64
}

// New builds the full pipeline for seed. It returns ErrInvalidConfig for a
// bad option and wraps any construction failure; no partial System is returned.
func New(seed string, opts ...Option) (*System, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	topo, err := topology.FromSeed(seed, builder.WithRounds(cfg.rounds), builder.WithHash(cfg.hash))
	if err != nil {
		return nil, errors.Wrap(err, "graphcrypto: topology")
	}
	klog.V(1).Infof("graph built: %d nodes, %d edges (%d rounds)",
		topo.Graph.VertexCount(), topo.Graph.EdgeCount(), cfg.rounds)

	vec := (*[permutation.Size]byte)(&topo.Vector)
	pi, piInv, err := permutation.Generate(vec)
	if err != nil {
		return nil, errors.Wrap(err, "graphcrypto: permutation")
	}

	box, err := sbox.Generate(cfg.mode, sbox.Params{
		Pi:        &pi,
		PiInv:     &piInv,
		Topology:  vec,
		Laplacian: topo.Features.Laplacian,
	})
	if err != nil {
		return nil, errors.Wrap(err, "graphcrypto: sbox")
	}
	klog.V(1).Infof("sbox %s: %d entries differ from reference", box.Mode(), box.DiffFromReference())

	keys := spn.NewSchedule(keyDigest(seed, &topo.Vector))
	var copts []spn.Option
	if cfg.player {
		copts = append(copts, spn.WithBitPermutation(spn.NewBitPermutation((*[256]byte)(&pi))))
	}
	c, err := spn.New(box, keys, copts...)
	if err != nil {
		return nil, errors.Wrap(err, "graphcrypto: cipher")
	}
	klog.V(2).Infof("cipher ready: p-layer=%v", cfg.player)

	return &System{
		seed:   seed,
		cfg:    cfg,
		topo:   topo,
		pi:     pi,
		piInv:  piInv,
		box:    box,
		keys:   keys,
		cipher: c,
	}, nil
}

// keyDigest is SHA-256(seed || topo[:32]).
func keyDigest(seed string, topo *topology.Vector) []byte {
	h := sha256.New()
	h.Write([]byte(seed))
	h.Write(topo[:32])
	return h.Sum(nil)
}

// GenerateBlock encrypts the current counter, as a 16-byte big-endian
// integer, and advances the counter by one.
func (s *System) GenerateBlock() []byte {
	s.mu.Lock()
	n := s.counter
	s.counter++
	s.mu.Unlock()

	return s.counterBlock(n)
}

func (s *System) counterBlock(n uint64) []byte {
	out := make([]byte, BlockSize)
	binary.BigEndian.PutUint64(out[BlockSize-8:], n)
	s.cipher.Encrypt(out, out)
	return out
}

// ErrByteCount is returned by GenerateBytes for a negative count or one whose
// block-rounded length does not fit in an int.
var ErrByteCount = errors.New("graphcrypto: invalid keystream length")

// GenerateBytes returns n bytes of keystream: ceil(n/16) consecutive blocks,
// truncated. The blocks are reserved atomically, so concurrent callers never
// share a counter value.
func (s *System) GenerateBytes(n int) ([]byte, error) {
	if n < 0 || n > math.MaxInt-(BlockSize-1) {
		return nil, errors.Wrapf(ErrByteCount, "%d bytes", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	blocks := (n + BlockSize - 1) / BlockSize

	s.mu.Lock()
	first := s.counter
	s.counter += uint64(blocks)
	s.mu.Unlock()

	out := make([]byte, 0, blocks*BlockSize)
	for i := 0; i < blocks; i++ {
		out = append(out, s.counterBlock(first+uint64(i))...)
	}

	return out[:n], nil
}

// Encrypt pads data to a multiple of 16 and encrypts each block independently.
// Padding is p bytes of value p with p = 16 - len%16; aligned input gets no
// padding, so the output length equals the input length. The counter is not used.
func (s *System) Encrypt(data []byte) []byte {
	p := BlockSize - len(data)%BlockSize
	if p == BlockSize {
		p = 0
	}
	out := make([]byte, len(data)+p)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(p)
	}
	for i := 0; i < len(out); i += BlockSize {
		s.cipher.Encrypt(out[i:i+BlockSize], out[i:i+BlockSize])
	}

	return out
}

// ErrCiphertextLength is returned by Decrypt for input that is not block aligned.
var ErrCiphertextLength = errors.New("graphcrypto: ciphertext is not a multiple of the block size")

// Decrypt reverses the block encryption of Encrypt. The padding is left in
// place: with aligned plaintexts carrying no padding, it cannot be removed
// unambiguously.
func (s *System) Decrypt(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, errors.Wrapf(ErrCiphertextLength, "%d bytes", len(data))
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += BlockSize {
		s.cipher.Decrypt(out[i:i+BlockSize], data[i:i+BlockSize])
	}

	return out, nil
}

// Counter returns the number of blocks generated so far.
func (s *System) Counter() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Seed returns the construction seed.
func (s *System) Seed() string { return s.seed }

// Mode returns the S-box mode.
func (s *System) Mode() sbox.Mode { return s.box.Mode() }

// PLayer reports whether the bit permutation layer is enabled.
func (s *System) PLayer() bool { return s.cfg.player }

// Graph returns the seed graph. Callers must not mutate it.
func (s *System) Graph() *core.Graph { return s.topo.Graph }

// TopologyVector returns a copy of the topology vector.
func (s *System) TopologyVector() topology.Vector { return s.topo.Vector }

// Features returns a copy of the four feature vectors.
func (s *System) Features() topology.Features {
	f := s.topo.Features
	return topology.Features{
		Degree:      append([]float64(nil), f.Degree...),
		Clustering:  append([]float64(nil), f.Clustering...),
		Betweenness: append([]float64(nil), f.Betweenness...),
		Laplacian:   append([]float64(nil), f.Laplacian...),
	}
}

// Permutation returns copies of π and π⁻¹.
func (s *System) Permutation() (pi, inv permutation.Table) { return s.pi, s.piInv }

// Sbox returns copies of the S-box and its inverse.
func (s *System) Sbox() (fwd, inv sbox.Table) { return s.box.Forward(), s.box.Inverse() }

// RoundKeys returns a copy of the round-key schedule.
func (s *System) RoundKeys() spn.Schedule { return s.keys }

// Block returns the underlying block cipher.
func (s *System) Block() *spn.Cipher { return s.cipher }
