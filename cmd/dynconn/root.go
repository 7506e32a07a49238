package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynconn/dynconn"
)

var (
	algoName  string
	numVert   uint64
	density   string
	instPath  string
	outPath   string
	pStart    float64
	seed      uint64
	queryFreq float64
	mode      string
)

var rootCmd = &cobra.Command{
	Use:   "dynconn",
	Short: "Benchmark driver for the dynconn dynamic connectivity algorithms",
	Long: `dynconn loads an action-stream instance file, runs it against one of the
registered dynamic connectivity algorithms, and writes a single CSV row with
the requested runtime or correctness measurement.`,
	RunE:         runBenchmark,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&algoName, "algo", "a", "", "algorithm to run: one of "+strings.Join(dynconn.Names(), ", "))
	flags.Uint64VarP(&numVert, "number", "n", 0, "vertex count, if not implied by the instance file")
	flags.StringVarP(&density, "density", "d", "0", "density label recorded verbatim in the output row; this driver reads instance files, it does not synthesize graphs")
	flags.StringVarP(&instPath, "instance", "i", "", "action-stream instance file; a path ending in test.txt is rejected (graph generation is out of scope)")
	flags.StringVarP(&outPath, "output", "o", "", "output CSV file")
	flags.Float64Var(&pStart, "ps", 0, "starting edge density; accepted but neither used nor written to the output row")
	flags.Uint64VarP(&seed, "seed", "s", 1234, "random seed for the randomized algorithms and for query-block sampling")
	flags.Float64Var(&queryFreq, "qf", 0, "expected queries per update, recorded verbatim in the output row")
	flags.StringVarP(&mode, "mode", "m", "regular", "benchmark mode: regular, maxTimeUpdate, correctnessCheck, or queryTime")

	_ = rootCmd.MarkFlagRequired("algo")
	_ = rootCmd.MarkFlagRequired("instance")
	_ = rootCmd.MarkFlagRequired("output")
}
