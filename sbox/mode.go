package sbox

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects how the S-box is derived. The zero value is ModeAffine.
type Mode int

const (
	ModeAffine Mode = iota
	ModePure
	ModeConjugate
)

var (
	// ErrUnknownMode is returned for a mode name or value outside the supported set.
	ErrUnknownMode = errors.New("sbox: unknown mode")

	// ErrHybridNotBijective is returned when HYBRID is requested; that
	// construction cannot guarantee a bijection.
	ErrHybridNotBijective = errors.New("sbox: HYBRID mode is not bijective and is not supported")
)

var modeNames = [...]string{
	ModeAffine:    "AFFINE",
	ModePure:      "PURE",
	ModeConjugate: "CONJUGATE",
}

// Modes lists every supported mode in declaration order.
func Modes() []Mode { return []Mode{ModeAffine, ModePure, ModeConjugate} }

// String returns the canonical upper-case name.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool { return m >= ModeAffine && m <= ModeConjugate }

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	if name == "HYBRID" {
		return 0, ErrHybridNotBijective
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnknownMode, "%d", int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
