package graphcrypto_test

import (
	"fmt"

	"github.com/katalvlaran/graphcrypto"
)

func ExampleNew() {
	sys, err := graphcrypto.New("test_seed_123")
	if err != nil {
		panic(err)
	}
	st := sys.Stats()
	fmt.Println(st.Nodes, st.Edges, st.Mode)

	ct := sys.Encrypt([]byte("0123456789ABCDEF"))
	pt, _ := sys.Decrypt(ct)
	fmt.Println(len(ct), string(pt))
	// Output:
	// 256 1495 AFFINE
	// 16 0123456789ABCDEF
}
