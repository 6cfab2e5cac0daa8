package spn_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/katalvlaran/graphcrypto/spn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() spn.Schedule {
	d := sha256.Sum256([]byte("test"))
	return spn.NewSchedule(d[:])
}

func reversePi() *[256]byte {
	var pi [256]byte
	for i := range pi {
		pi[i] = byte(255 - i)
	}
	return &pi
}

func pureCipher(t *testing.T, opts ...spn.Option) *spn.Cipher {
	t.Helper()
	box, err := sbox.Generate(sbox.ModePure, sbox.Params{})
	require.NoError(t, err)
	c, err := spn.New(box, testSchedule(), opts...)
	require.NoError(t, err)
	return c
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestNewSchedule_Golden(t *testing.T) {
	ks := testSchedule()
	assert.Equal(t, "14b51045e9fc13c037bfcfcdbbc03e3e", hex.EncodeToString(ks[0][:]))
	assert.Equal(t, "8070ce22e1d6a45ef2a8da6a37d11f66", hex.EncodeToString(ks[12][:]))
	for r := 1; r < spn.KeyCount; r++ {
		assert.NotEqual(t, ks[r-1], ks[r], "round key %d repeats", r)
	}
}

func TestEncrypt_ReferenceBox(t *testing.T) {
	c := pureCipher(t)
	assert.Equal(t, spn.BlockSize, c.BlockSize())
	assert.False(t, c.PLayer())

	out := make([]byte, spn.BlockSize)
	c.Encrypt(out, []byte("0123456789ABCDEF"))
	assert.Equal(t, mustHex(t, "bfaf77243cded25da09510ac0bbf9fcb"), out)

	c.Encrypt(out, make([]byte, spn.BlockSize))
	assert.Equal(t, mustHex(t, "6a9ccf8220c64df27cd959bd072da5f3"), out)
}

func TestEncrypt_WithBitPermutation(t *testing.T) {
	c := pureCipher(t, spn.WithBitPermutation(spn.NewBitPermutation(reversePi())))
	assert.True(t, c.PLayer())

	out := make([]byte, spn.BlockSize)
	c.Encrypt(out, []byte("0123456789ABCDEF"))
	assert.Equal(t, mustHex(t, "0111c5ffde349021c46564ff8ec7b1b7"), out)
}

func TestDecrypt_RoundTrip(t *testing.T) {
	var topo [256]byte
	for i := range topo {
		topo[i] = byte(i * 7)
	}
	affine, err := sbox.Generate(sbox.ModeAffine, sbox.Params{Topology: &topo})
	require.NoError(t, err)

	cases := map[string][]spn.Option{
		"plain":  nil,
		"player": {spn.WithBitPermutation(spn.NewBitPermutation(&topo))},
	}
	rng := rand.New(rand.NewSource(7))
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := spn.New(affine, testSchedule(), opts...)
			require.NoError(t, err)
			pt := make([]byte, spn.BlockSize)
			ct := make([]byte, spn.BlockSize)
			back := make([]byte, spn.BlockSize)
			for i := 0; i < 64; i++ {
				rng.Read(pt)
				c.Encrypt(ct, pt)
				c.Decrypt(back, ct)
				require.Equal(t, pt, back)
			}
		})
	}
}

func TestEncrypt_InPlace(t *testing.T) {
	c := pureCipher(t)
	buf := []byte("0123456789ABCDEF")
	c.Encrypt(buf, buf)
	assert.Equal(t, mustHex(t, "bfaf77243cded25da09510ac0bbf9fcb"), buf)
	c.Decrypt(buf, buf)
	assert.True(t, bytes.Equal([]byte("0123456789ABCDEF"), buf))
}

func TestEncrypt_ShortBuffers(t *testing.T) {
	c := pureCipher(t)
	assert.PanicsWithValue(t, "spn: input not full block", func() {
		c.Encrypt(make([]byte, 16), make([]byte, 15))
	})
	assert.PanicsWithValue(t, "spn: output not full block", func() {
		c.Decrypt(make([]byte, 8), make([]byte, 16))
	})
}

type brokenBox struct{}

func (brokenBox) Forward() sbox.Table { return sbox.Reference }
func (brokenBox) Inverse() sbox.Table { return sbox.Reference }

func TestNew_Errors(t *testing.T) {
	_, err := spn.New(nil, spn.Schedule{})
	assert.ErrorIs(t, err, spn.ErrNilSubstitution)

	_, err = spn.New(brokenBox{}, spn.Schedule{})
	assert.ErrorIs(t, err, spn.ErrBadSubstitution)

	var missing *sbox.Box
	require.NotPanics(t, func() { _, err = spn.New(missing, spn.Schedule{}) })
	assert.ErrorIs(t, err, spn.ErrBadSubstitution)
}

func BenchmarkEncrypt(b *testing.B) {
	box, _ := sbox.Generate(sbox.ModePure, sbox.Params{})
	d := sha256.Sum256([]byte("bench"))
	c, _ := spn.New(box, spn.NewSchedule(d[:]), spn.WithBitPermutation(spn.NewBitPermutation(reversePi())))
	buf := make([]byte, spn.BlockSize)
	b.SetBytes(spn.BlockSize)
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf, buf)
	}
}
