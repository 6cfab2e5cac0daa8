package gf256

// Table is a multiply-by-constant lookup: t[x] == Mul(c, x).
type Table [256]byte

// NewTable precomputes Mul(c, x) for every x.
func NewTable(c byte) *Table {
	var t Table
	for x := 0; x < 256; x++ {
		t[x] = Mul(c, byte(x))
	}

	return &t
}

// Scalar tables for MixColumns (02, 03) and InvMixColumns (09, 0B, 0D, 0E).
var (
	Mul02 = NewTable(0x02)
	Mul03 = NewTable(0x03)
	Mul09 = NewTable(0x09)
	Mul0B = NewTable(0x0B)
	Mul0D = NewTable(0x0D)
	Mul0E = NewTable(0x0E)
)
