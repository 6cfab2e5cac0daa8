package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/graphcrypto"
	"github.com/katalvlaran/graphcrypto/analysis"
	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func withSystem(fn func(c *cli.Context, sys *graphcrypto.System) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		config, err := loadConfig(c)
		if err != nil {
			return err
		}
		sys, err := config.build()
		if err != nil {
			return err
		}

		return fn(c, sys)
	}
}

func demoCommand() cli.Command {
	return cli.Command{
		Name:  "demo",
		Usage: "build a system, print its first blocks and check determinism",
		Action: withSystem(func(c *cli.Context, sys *graphcrypto.System) error {
			w := c.App.Writer
			printStats(w, sys)

			fmt.Fprintln(w, "\nfirst blocks:")
			blocks := make([][]byte, 5)
			for i := range blocks {
				blocks[i] = sys.GenerateBlock()
				fmt.Fprintf(w, "  %d: %x\n", i, blocks[i])
			}

			fwd, _ := sys.Sbox()
			pi, _ := sys.Permutation()
			fmt.Fprintf(w, "\nsbox[0:16]: % x\n", fwd[:16])
			fmt.Fprintf(w, "pi[0:16]:   % x\n", pi[:16])

			config, err := loadConfig(c)
			if err != nil {
				return err
			}
			twin, err := config.build()
			if err != nil {
				return err
			}
			same := true
			for _, b := range blocks {
				same = same && bytes.Equal(b, twin.GenerateBlock())
			}
			fmt.Fprintf(w, "\ndeterministic: %v\n", same)
			if !same {
				return errors.New("two systems from the same seed disagree")
			}

			return nil
		}),
	}
}

func generateCommand() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "print n keystream bytes as hex",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: 64, Usage: "number of bytes"},
		},
		Action: withSystem(func(c *cli.Context, sys *graphcrypto.System) error {
			ks, err := sys.GenerateBytes(c.Int("n"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hex.EncodeToString(ks))
			return nil
		}),
	}
}

// readInput returns the first argument, or stdin when there is none.
func readInput(c *cli.Context, isHex bool) ([]byte, error) {
	var raw []byte
	if c.NArg() > 0 {
		raw = []byte(c.Args().First())
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		raw = bytes.TrimRight(b, "\r\n")
	}
	if !isHex {
		return raw, nil
	}
	out, err := hex.DecodeString(string(bytes.TrimSpace(raw)))
	return out, errors.Wrap(err, "hex input")
}

func encryptCommand() cli.Command {
	return cli.Command{
		Name:      "encrypt",
		Usage:     "encrypt text (or hex with --hex) and print hex ciphertext",
		ArgsUsage: "[plaintext]",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "hex", Usage: "input is hex encoded"},
		},
		Action: withSystem(func(c *cli.Context, sys *graphcrypto.System) error {
			data, err := readInput(c, c.Bool("hex"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hex.EncodeToString(sys.Encrypt(data)))
			return nil
		}),
	}
}

func decryptCommand() cli.Command {
	return cli.Command{
		Name:      "decrypt",
		Usage:     "decrypt hex ciphertext and print the padded plaintext as hex",
		ArgsUsage: "[ciphertext hex]",
		Action: withSystem(func(c *cli.Context, sys *graphcrypto.System) error {
			data, err := readInput(c, true)
			if err != nil {
				return err
			}
			pt, err := sys.Decrypt(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hex.EncodeToString(pt))
			return nil
		}),
	}
}

func analyzeCommand() cli.Command {
	return cli.Command{
		Name:  "analyze",
		Usage: "full S-box and keystream analysis with a score",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "blocks", Value: 1000, Usage: "keystream blocks to analyze"},
			cli.IntFlag{Name: "samples", Value: 1000, Usage: "avalanche samples"},
			cli.IntFlag{Name: "workers", Value: 0, Usage: "goroutines for DDT/LAT, 0 = all CPUs"},
		},
		Action: withSystem(func(c *cli.Context, sys *graphcrypto.System) error {
			w := c.App.Writer
			aopts := workerOpts(c.Int("workers"))
			if c.Int("blocks") < 1 {
				return errors.New("blocks must be positive")
			}

			fwd, _ := sys.Sbox()
			own := analysis.AnalyzeSbox(sys.Mode().String(), fwd, aopts...)
			ref := analysis.AnalyzeSbox("AES", sbox.Reference, aopts...)
			printSboxReports(w, own, ref)

			ks, err := sys.GenerateBytes(c.Int("blocks") * graphcrypto.BlockSize)
			if err != nil {
				return err
			}
			st, err := analysis.AnalyzeStream(ks)
			if err != nil {
				return err
			}
			printStreamReport(w, st)

			av, err := analysis.CipherAvalanche(sys.Block(), c.Int("samples"))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\navalanche: %.2f of %d bits (%.2f%%, min %d, max %d)\n",
				av.AvgBitDiff, av.BlockBits, av.Percentage, av.MinBitDiff, av.MaxBitDiff)

			score := analysis.Score(own, st)
			fmt.Fprintf(w, "\nscore: %d/100 (%s)\n", score, analysis.Grade(score))
			return nil
		}),
	}
}

func compareCommand() cli.Command {
	return cli.Command{
		Name:  "compare",
		Usage: "compare the S-box of a sparse and a dense graph built from the same seed",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "sparse", Value: builder.SparseRounds, Usage: "rounds for the sparse graph"},
			cli.IntFlag{Name: "dense", Value: builder.DenseRounds, Usage: "rounds for the dense graph"},
		},
		Action: func(c *cli.Context) error {
			config, err := loadConfig(c)
			if err != nil {
				return err
			}
			var reports [2]analysis.SboxReport
			for i, rounds := range []int{c.Int("sparse"), c.Int("dense")} {
				sys, err := config.build(graphcrypto.WithRounds(rounds))
				if err != nil {
					return err
				}
				fwd, _ := sys.Sbox()
				label := fmt.Sprintf("%d rounds (%d edges)", rounds, sys.Stats().Edges)
				reports[i] = analysis.AnalyzeSbox(label, fwd)
			}
			printComparison(c.App.Writer, reports[0], reports[1])
			return nil
		},
	}
}

func visualizeCommand() cli.Command {
	return cli.Command{
		Name:  "visualize",
		Usage: "render graph, topology, S-box and permutation charts to HTML",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "out,o", Value: "graphcrypto.html", Usage: "output file"},
		},
		Action: withSystem(func(c *cli.Context, sys *graphcrypto.System) error {
			path := c.String("out")
			f, err := os.Create(path)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := writePage(f, sys); err != nil {
				return errors.Wrap(err, path)
			}
			fmt.Fprintln(c.App.Writer, "charts:", path)
			return nil
		}),
	}
}

func workerOpts(n int) []analysis.Option {
	if n <= 0 {
		return nil
	}
	return []analysis.Option{analysis.WithWorkers(n)}
}
