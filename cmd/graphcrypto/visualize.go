package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/katalvlaran/graphcrypto"
	"github.com/katalvlaran/graphcrypto/analysis"
	"github.com/pkg/errors"
)

var heatColors = []string{"#313695", "#74add1", "#ffffbf", "#f46d43", "#a50026"}

// renderPage writes one HTML page with the seed graph, the topology vector,
// the S-box, π and the S-box avalanche matrix.
func renderPage(w io.Writer, sys *graphcrypto.System) error {
	page := components.NewPage().SetPageTitle("graphcrypto: " + sys.Seed())

	vec := sys.TopologyVector()
	fwd, _ := sys.Sbox()
	pi, _ := sys.Permutation()
	_, flips := analysis.SAC(fwd)

	page.AddCharts(
		graphChart(sys),
		byteHeatMap("Topology vector", vec[:]),
		byteHeatMap(fmt.Sprintf("S-box (%s)", sys.Mode()), fwd[:]),
		permutationScatter(pi[:]),
		sacHeatMap(flips),
	)

	return errors.Wrap(page.Render(w), "render")
}

// writePage renders into wc and closes it. The Close error is returned.
func writePage(wc io.WriteCloser, sys *graphcrypto.System) error {
	if err := renderPage(wc, sys); err != nil {
		wc.Close()
		return err
	}

	return errors.Wrap(wc.Close(), "close")
}

func graphChart(sys *graphcrypto.System) *charts.Graph {
	g := sys.Graph()
	st := sys.Stats()
	adj := g.Adjacency()

	nodes := make([]opts.GraphNode, len(adj))
	for v := range adj {
		nodes[v] = opts.GraphNode{Name: strconv.Itoa(v), Value: float32(len(adj[v]))}
	}
	edges := g.Edges()
	links := make([]opts.GraphLink, len(edges))
	for i, e := range edges {
		links[i] = opts.GraphLink{Source: strconv.Itoa(e.U), Target: strconv.Itoa(e.V)}
	}

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Seed graph",
			Subtitle: fmt.Sprintf("%d nodes, %d edges, density %.4f", st.Nodes, st.Edges, st.Density),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "800px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	chart.AddSeries("graph", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Roam:   opts.Bool(true),
			Force:  &opts.GraphForce{Repulsion: 40, EdgeLength: 60},
		}),
	)

	return chart
}

func gridLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%X", i)
	}
	return out
}

// byteHeatMap draws 256 bytes as a 16×16 grid, high nibble on the y axis.
func byteHeatMap(title string, data []byte) *charts.HeatMap {
	labels := gridLabels(16)
	items := make([]opts.HeatMapData, 0, len(data))
	for i, b := range data {
		items = append(items, opts.HeatMapData{Value: [3]interface{}{i % 16, i / 16, int(b)}})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: labels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: labels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        255,
			InRange:    &opts.VisualMapInRange{Color: heatColors},
		}),
	)
	hm.SetXAxis(labels).AddSeries(title, items)

	return hm
}

func permutationScatter(pi []byte) *charts.Scatter {
	items := make([]opts.ScatterData, len(pi))
	for i, v := range pi {
		items[i] = opts.ScatterData{Value: []int{i, int(v)}}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Permutation π", Subtitle: "x → π(x)"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value", Min: 0, Max: 255}),
		charts.WithYAxisOpts(opts.YAxis{Name: "π(x)", Type: "value", Min: 0, Max: 255}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	sc.AddSeries("π", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 4}),
	)

	return sc
}

// sacHeatMap shows the fraction of inputs for which input bit i flips output bit j.
func sacHeatMap(flips [8][8]int) *charts.HeatMap {
	labels := make([]string, 8)
	for i := range labels {
		labels[i] = "b" + strconv.Itoa(i)
	}
	items := make([]opts.HeatMapData, 0, 64)
	for i := range flips {
		for j, n := range flips[i] {
			items = append(items, opts.HeatMapData{Value: [3]interface{}{j, i, float64(n) / analysis.TableSize}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "S-box avalanche", Subtitle: "row: input bit, column: output bit, ideal 0.5"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: labels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: labels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: heatColors},
		}),
	)
	hm.SetXAxis(labels).AddSeries("flip rate", items)

	return hm
}
