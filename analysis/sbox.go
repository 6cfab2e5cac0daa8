package analysis

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/graphcrypto/permutation"
)

// TableSize is the number of entries in an 8-bit S-box.
const TableSize = permutation.Size

// Reference values of the AES S-box.
const (
	AESUniformity   = 4
	AESNonlinearity = 112
)

// Grid is a 256×256 count table indexed [input][output].
type Grid [TableSize][TableSize]int32

// DDT returns the difference distribution table:
// DDT[dx][dy] = #{x : S[x] ^ S[x^dx] = dy}.
func DDT(s permutation.Table, opts ...Option) *Grid {
	o := buildOptions(opts)
	g := new(Grid)
	forRows(TableSize, o.workers, func(lo, hi int) {
		for dx := lo; dx < hi; dx++ {
			row := &g[dx]
			for x := 0; x < TableSize; x++ {
				row[s[x]^s[x^dx]]++
			}
		}
	})

	return g
}

// DifferentialUniformity is the largest DDT entry with a non-zero input difference.
func DifferentialUniformity(s permutation.Table, opts ...Option) int {
	return maxRows(DDT(s, opts...), 1)
}

// LAT returns the linear approximation table:
// LAT[a][b] = #{x : a·x = b·S[x]} - 128, where · is the GF(2) dot product.
func LAT(s permutation.Table, opts ...Option) *Grid {
	o := buildOptions(opts)
	g := new(Grid)
	forRows(TableSize, o.workers, func(lo, hi int) {
		for a := lo; a < hi; a++ {
			row := &g[a]
			for b := 0; b < TableSize; b++ {
				var n int32
				for x := 0; x < TableSize; x++ {
					if bits.OnesCount8(uint8(a&x)^(uint8(b)&s[x]))&1 == 0 {
						n++
					}
				}
				row[b] = n - TableSize/2
			}
		}
	})

	return g
}

// Nonlinearity is 128 minus the largest |LAT| entry outside (0,0).
func Nonlinearity(s permutation.Table, opts ...Option) int {
	lat := LAT(s, opts...)
	lat[0][0] = 0
	var bias int32
	for a := range lat {
		for _, v := range lat[a] {
			if v < 0 {
				v = -v
			}
			if v > bias {
				bias = v
			}
		}
	}

	return TableSize/2 - int(bias)
}

func maxRows(g *Grid, from int) int {
	var m int32
	for i := from; i < TableSize; i++ {
		for _, v := range g[i] {
			if v > m {
				m = v
			}
		}
	}

	return int(m)
}

// SAC returns the strict avalanche score and the flip counts.
// flips[i][j] counts the inputs x for which flipping bit i of x flips bit j
// of S[x] (bit 0 is the least significant). The score is
// 1 - 2·mean|flips/256 - 1/2|, so 1 is ideal and 0 means every bit either
// always or never flips.
func SAC(s permutation.Table) (score float64, flips [8][8]int) {
	for x := 0; x < TableSize; x++ {
		for i := 0; i < 8; i++ {
			d := s[x] ^ s[x^(1<<i)]
			for j := 0; j < 8; j++ {
				if d>>j&1 == 1 {
					flips[i][j]++
				}
			}
		}
	}

	var dev float64
	for i := range flips {
		for j := range flips[i] {
			dev += math.Abs(float64(flips[i][j])/TableSize - 0.5)
		}
	}

	return 1 - 2*dev/64, flips
}

// BIC returns the bit independence score and the pairwise dependence matrix.
// dep[i][j] = 2·|P(bit_i ^ bit_j = 1) - 1/2| over all outputs, with 1 on the
// diagonal. The score is 1 minus the mean over the strict upper triangle.
func BIC(s permutation.Table) (score float64, dep [8][8]float64) {
	var sum float64
	for i := 0; i < 8; i++ {
		dep[i][i] = 1
		for j := i + 1; j < 8; j++ {
			ones := 0
			for x := 0; x < TableSize; x++ {
				ones += int((s[x]>>i ^ s[x]>>j) & 1)
			}
			v := 2 * math.Abs(float64(ones)/TableSize-0.5)
			dep[i][j], dep[j][i] = v, v
			sum += v
		}
	}

	return 1 - sum/28, dep
}

// Entropy is the Shannon entropy, in bits, of the value distribution of s.
// Every bijection scores exactly 8.
func Entropy(s permutation.Table) float64 {
	var counts [TableSize]int
	for _, v := range s {
		counts[v]++
	}

	return shannon(counts[:], TableSize)
}

func shannon(counts []int, total int) float64 {
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}

	return h
}

// Autocorrelation lays s out as a 16×16 grid and returns 1 minus the mean
// normalized difference between horizontally and vertically adjacent cells.
// Lower is better; the identity table scores about 0.97.
func Autocorrelation(s permutation.Table) float64 {
	var h, v float64
	for r := 0; r < 16; r++ {
		for c := 0; c < 15; c++ {
			h += math.Abs(float64(s[r*16+c])-float64(s[r*16+c+1])) / 255
		}
	}
	for r := 0; r < 15; r++ {
		for c := 0; c < 16; c++ {
			v += math.Abs(float64(s[r*16+c])-float64(s[(r+1)*16+c])) / 255
		}
	}

	return 1 - (h/240+v/240)/2
}
