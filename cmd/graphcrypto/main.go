package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/urfave/cli"
)

// VERSION is set at build time.
var VERSION = "SELFBUILD"

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		klog.Errorf("%+v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(-1)
	}
}

func newApp() *cli.App {
	myApp := cli.NewApp()
	myApp.Name = "graphcrypto"
	myApp.Usage = "block cipher derived from graph topology"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "seed,s",
			Value:  "test_seed_123",
			Usage:  "seed string the graph is built from",
			EnvVar: "GRAPHCRYPTO_SEED",
		},
		cli.StringFlag{
			Name:  "mode,m",
			Value: "AFFINE",
			Usage: "sbox mode: AFFINE, PURE, CONJUGATE",
		},
		cli.IntFlag{
			Name:  "rounds,r",
			Value: builder.DenseRounds,
			Usage: "hash-chain rounds for the graph (16 = sparse, 48 = dense)",
		},
		cli.StringFlag{
			Name:  "hash",
			Value: "sha512",
			Usage: "graph hash: sha512, sha3-512",
		},
		cli.BoolFlag{
			Name:  "nopl",
			Usage: "disable the bit permutation layer",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "",
			Usage: "config from json file, which will override the command from shell",
		},
		cli.IntFlag{
			Name:  "verbosity,V",
			Value: 0,
			Usage: "log verbosity (1: construction steps, 2: details)",
		},
	}
	myApp.Before = setupLogging
	myApp.Commands = []cli.Command{
		demoCommand(),
		generateCommand(),
		encryptCommand(),
		decryptCommand(),
		analyzeCommand(),
		compareCommand(),
		visualizeCommand(),
	}

	return myApp
}

func setupLogging(c *cli.Context) error {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(c.GlobalInt("verbosity")))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	return nil
}

// loadConfig reads the global flags, then lets a JSON file override them.
func loadConfig(c *cli.Context) (Config, error) {
	config := Config{}
	config.Seed = c.GlobalString("seed")
	config.Mode = c.GlobalString("mode")
	config.Rounds = c.GlobalInt("rounds")
	config.Hash = c.GlobalString("hash")
	config.NoPLayer = c.GlobalBool("nopl")

	if path := c.GlobalString("c"); path != "" {
		if err := parseJSONConfig(&config, path); err != nil {
			return config, errors.Wrap(err, "config")
		}
	}
	klog.V(1).Infof("config: %+v", config)

	return config, nil
}
