package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/katalvlaran/graphcrypto"
	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/pkg/errors"
)

// Config holds the system parameters shared by every command.
type Config struct {
	Seed     string `json:"seed"`
	Mode     string `json:"mode"`
	Rounds   int    `json:"rounds"`
	Hash     string `json:"hash"`
	NoPLayer bool   `json:"nopl"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return errors.Wrapf(json.NewDecoder(file).Decode(config), "parse %s", path)
}

var hashes = map[string]builder.HashFunc{
	"sha512":   builder.HashSHA512,
	"sha3-512": builder.HashSHA3_512,
}

// options translates the config into system options.
func (c *Config) options() ([]graphcrypto.Option, error) {
	mode, err := sbox.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	h, ok := hashes[strings.ToLower(c.Hash)]
	if !ok {
		return nil, errors.Errorf("unknown hash %q (sha512, sha3-512)", c.Hash)
	}

	return []graphcrypto.Option{
		graphcrypto.WithMode(mode),
		graphcrypto.WithRounds(c.Rounds),
		graphcrypto.WithHash(h),
		graphcrypto.WithPLayer(!c.NoPLayer),
	}, nil
}

func (c *Config) build(extra ...graphcrypto.Option) (*graphcrypto.System, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}

	return graphcrypto.New(c.Seed, append(opts, extra...)...)
}
