package sbox_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	cases := map[string]sbox.Mode{
		"AFFINE":       sbox.ModeAffine,
		"pure":         sbox.ModePure,
		" Conjugate  ": sbox.ModeConjugate,
	}
	for in, want := range cases {
		got, err := sbox.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := sbox.ParseMode("hybrid")
	assert.ErrorIs(t, err, sbox.ErrHybridNotBijective)
	_, err = sbox.ParseMode("rot13")
	assert.ErrorIs(t, err, sbox.ErrUnknownMode)
}

func TestMode_DefaultAndString(t *testing.T) {
	var m sbox.Mode
	assert.Equal(t, sbox.ModeAffine, m)
	assert.Equal(t, "AFFINE", m.String())
	assert.Equal(t, "CONJUGATE", sbox.ModeConjugate.String())
	assert.Equal(t, "Mode(9)", sbox.Mode(9).String())
	assert.False(t, sbox.Mode(-1).Valid())
	assert.Len(t, sbox.Modes(), 3)
}

func TestMode_JSON(t *testing.T) {
	var cfg struct {
		Mode sbox.Mode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"conjugate"}`), &cfg))
	assert.Equal(t, sbox.ModeConjugate, cfg.Mode)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"CONJUGATE"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"HYBRID"}`), &cfg))
	_, err = json.Marshal(struct{ M sbox.Mode }{sbox.Mode(5)})
	assert.Error(t, err)
}
