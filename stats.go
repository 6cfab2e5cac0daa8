package graphcrypto

import (
	"github.com/katalvlaran/graphcrypto/bfs"
	"github.com/katalvlaran/graphcrypto/core"
	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/katalvlaran/graphcrypto/topology"
)

// Stats is the summary reported for a System.
type Stats struct {
	Nodes             int
	Edges             int
	Density           float64
	AverageClustering float64
	MinDegree         int
	MaxDegree         int
	Isolated          int
	Components        int
	Diameter          int // -1 when disconnected
	Radius            int // -1 when disconnected
	Mode              sbox.Mode
	SboxDiff          int
	BlocksGenerated   uint64
}

// Stats summarizes the graph and the S-box and reports the block counter.
func (s *System) Stats() Stats {
	g := s.topo.Graph
	gs := g.Stats()
	st := Stats{
		Nodes:             gs.Vertices,
		Edges:             gs.Edges,
		Density:           gs.Density,
		AverageClustering: topology.AverageClustering(g.Adjacency()),
		MinDegree:         gs.MinDegree,
		MaxDegree:         gs.MaxDegree,
		Isolated:          gs.Isolated,
		Mode:              s.box.Mode(),
		SboxDiff:          s.box.DiffFromReference(),
		BlocksGenerated:   s.Counter(),
	}
	// g is non-nil by construction.
	if comps, err := bfs.Components(g); err == nil {
		st.Components = len(comps)
	}
	st.Diameter, st.Radius = extent(g)

	return st
}

// extent returns the largest and smallest vertex eccentricity of g, or -1, -1
// if g is disconnected.
func extent(g *core.Graph) (diameter, radius int) {
	diameter, radius = 0, g.VertexCount()
	for v := 0; v < g.VertexCount(); v++ {
		e, err := bfs.Eccentricity(g, v)
		if err != nil {
			return -1, -1
		}
		if e > diameter {
			diameter = e
		}
		if e < radius {
			radius = e
		}
	}

	return diameter, radius
}
