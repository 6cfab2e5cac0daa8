package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphcrypto/bfs"
	"github.com/katalvlaran/graphcrypto/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid, vertex r*3+c.
func ExampleBFS() {
	g, _ := core.NewGraph(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				g.AddEdge(r*3+c, r*3+c+1)
			}
			if r+1 < 3 {
				g.AddEdge(r*3+c, (r+1)*3+c)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Sigma[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// 6
}
