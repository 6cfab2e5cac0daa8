package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/graphcrypto"
	"github.com/katalvlaran/graphcrypto/analysis"
)

func printStats(w io.Writer, sys *graphcrypto.System) {
	st := sys.Stats()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "seed\t%q\n", sys.Seed())
	fmt.Fprintf(tw, "nodes\t%d\n", st.Nodes)
	fmt.Fprintf(tw, "edges\t%d\n", st.Edges)
	fmt.Fprintf(tw, "density\t%.4f\n", st.Density)
	fmt.Fprintf(tw, "degree\t%d..%d\n", st.MinDegree, st.MaxDegree)
	fmt.Fprintf(tw, "avg clustering\t%.4f\n", st.AverageClustering)
	fmt.Fprintf(tw, "components\t%d\n", st.Components)
	fmt.Fprintf(tw, "diameter/radius\t%d/%d\n", st.Diameter, st.Radius)
	fmt.Fprintf(tw, "sbox mode\t%s\n", st.Mode)
	fmt.Fprintf(tw, "sbox diff\t%d/256\n", st.SboxDiff)
	fmt.Fprintf(tw, "p-layer\t%v\n", sys.PLayer())
	fmt.Fprintf(tw, "blocks\t%d\n", st.BlocksGenerated)
	tw.Flush()
}

func printSboxReports(w io.Writer, reports ...analysis.SboxReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "metric")
	for _, r := range reports {
		fmt.Fprintf(tw, "\t%s", r.Label)
	}
	fmt.Fprintln(tw)
	row := func(name string, f func(analysis.SboxReport) string) {
		fmt.Fprint(tw, name)
		for _, r := range reports {
			fmt.Fprintf(tw, "\t%s", f(r))
		}
		fmt.Fprintln(tw)
	}
	row("uniformity", func(r analysis.SboxReport) string { return fmt.Sprint(r.Uniformity) })
	row("nonlinearity", func(r analysis.SboxReport) string { return fmt.Sprint(r.Nonlinearity) })
	row("sac", func(r analysis.SboxReport) string { return fmt.Sprintf("%.4f", r.SAC) })
	row("bic", func(r analysis.SboxReport) string { return fmt.Sprintf("%.4f", r.BIC) })
	row("entropy", func(r analysis.SboxReport) string { return fmt.Sprintf("%.4f", r.Entropy) })
	row("autocorrelation", func(r analysis.SboxReport) string { return fmt.Sprintf("%.4f", r.Autocorrelation) })
	tw.Flush()
}

func printStreamReport(w io.Writer, st analysis.StreamReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nbytes\t%d\n", st.Length)
	fmt.Fprintf(tw, "ones\t%.2f%% (bias %.4f%%)\n", st.Bits.OnePercent, st.Bits.Bias)
	fmt.Fprintf(tw, "unique bytes\t%d/256\n", st.Bytes.Unique)
	fmt.Fprintf(tw, "chi-squared\t%.2f\n", st.Bytes.ChiSquared)
	fmt.Fprintf(tw, "byte entropy\t%.4f\n", st.Bytes.Entropy)
	fmt.Fprintf(tw, "runs\t%d (avg %.2f, max %d, expected %.1f)\n",
		st.Runs.Total, st.Runs.AvgLength, st.Runs.MaxLength, analysis.ExpectedRunLength)
	fmt.Fprintf(tw, "serial correlation\t%.6f\n", st.SerialCorrelation)
	fmt.Fprintf(tw, "compressibility\t%.4f\n", st.Compressibility)
	tw.Flush()
}

func printComparison(w io.Writer, a, b analysis.SboxReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "metric\t%s\t%s\tbetter\n", a.Label, b.Label)
	for _, r := range analysis.Compare(a, b) {
		dir := "higher"
		if r.LowerBetter {
			dir = "lower"
		}
		fmt.Fprintf(tw, "%s (%s)\t%.4f\t%.4f\t%s\n", r.Metric, dir, r.A, r.B, r.Winner)
	}
	tw.Flush()
}
