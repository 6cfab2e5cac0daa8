package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseJSONConfig_Overrides(t *testing.T) {
	cfg := Config{Seed: "flag", Mode: "AFFINE", Rounds: 48, Hash: "sha512"}
	path := writeTempConfig(t, `{"seed":"file","mode":"conjugate","nopl":true}`)
	require.NoError(t, parseJSONConfig(&cfg, path))

	assert.Equal(t, "file", cfg.Seed)
	assert.Equal(t, "conjugate", cfg.Mode)
	assert.Equal(t, 48, cfg.Rounds)
	assert.True(t, cfg.NoPLayer)
}

func TestParseJSONConfig_Errors(t *testing.T) {
	var cfg Config
	assert.Error(t, parseJSONConfig(&cfg, filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, parseJSONConfig(&cfg, writeTempConfig(t, `{"rounds":"many"}`)))
}

func TestConfig_Build(t *testing.T) {
	cfg := Config{Seed: "test_seed_123", Mode: "pure", Rounds: 16, Hash: "SHA512", NoPLayer: true}
	sys, err := cfg.build()
	require.NoError(t, err)
	assert.Equal(t, sbox.ModePure, sys.Mode())
	assert.Equal(t, 506, sys.Stats().Edges)
	assert.False(t, sys.PLayer())
}

func TestConfig_BuildErrors(t *testing.T) {
	base := Config{Seed: "x", Mode: "AFFINE", Rounds: 48, Hash: "sha512"}

	bad := base
	bad.Mode = "HYBRID"
	_, err := bad.build()
	assert.ErrorIs(t, err, sbox.ErrHybridNotBijective)

	bad = base
	bad.Hash = "md5"
	_, err = bad.build()
	assert.Error(t, err)

	bad = base
	bad.Rounds = 0
	_, err = bad.build()
	assert.Error(t, err)
}
