package spn

import (
	"crypto/sha256"
	"strconv"
)

// Block and schedule geometry.
const (
	BlockSize = 16
	Rounds    = 12
	KeyCount  = Rounds + 1
)

// Schedule holds the whitening key (index 0) and one key per round.
type Schedule [KeyCount][BlockSize]byte

// NewSchedule derives the round keys from digest:
//
//	h_r = SHA-256(h_{r-1} || "RK<r>"), h_{-1} = digest, K_r = h_r[:16]
func NewSchedule(digest []byte) Schedule {
	var s Schedule
	cur := append([]byte(nil), digest...)
	for r := 0; r < KeyCount; r++ {
		msg := append(cur, "RK"+strconv.Itoa(r)...)
		h := sha256.Sum256(msg)
		copy(s[r][:], h[:BlockSize])
		cur = h[:]
	}

	return s
}
