package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynconn/action"
	"github.com/katalvlaran/dynconn/dynconn"
	"github.com/katalvlaran/dynconn/internal/rngutil"
)

// testInstanceSuffix marks instance paths a benchmark harness would
// synthesize a random graph for. Graph/action-stream generation is out of
// scope for this driver, so such a path is rejected here rather than
// silently read as a literal file.
const testInstanceSuffix = "test.txt"

func runBenchmark(cmd *cobra.Command, args []string) error {
	if strings.HasSuffix(instPath, testInstanceSuffix) {
		return &action.ParseError{
			Line: 0,
			Text: instPath,
			Msg:  "random instance generation is excluded; pass a literal action-stream file instead of a test.txt path",
		}
	}

	f, err := os.Open(instPath)
	if err != nil {
		return fmt.Errorf("cmd/dynconn: opening instance file: %w", err)
	}
	defer f.Close()

	actions, err := action.ReadStream(f)
	if err != nil {
		return fmt.Errorf("cmd/dynconn: %w", err)
	}

	n := numVert
	for _, act := range actions {
		switch act.Kind {
		case action.Add, action.Del, action.Query:
			if act.U+1 > n {
				n = act.U + 1
			}
			if act.V+1 > n {
				n = act.V + 1
			}
		}
	}

	algo, err := dynconn.New(algoName, n, dynconn.WithSeed(int64(seed)), dynconn.WithBoost(1), dynconn.WithPrecision(1))
	if err != nil {
		return fmt.Errorf("cmd/dynconn: %w", err)
	}

	rng := rngutil.New(int64(seed))

	var runtimeField string
	switch mode {
	case "regular":
		runtimeField, err = runRegular(actions, algo)
	case "maxTimeUpdate":
		runtimeField, err = runMaxTimeUpdate(actions, algo)
	case "queryTime":
		runtimeField, err = runQueryTime(actions, algo, n, rng)
	case "correctnessCheck":
		runtimeField, err = runCorrectnessCheck(actions, algo, n, rng)
	default:
		return fmt.Errorf("cmd/dynconn: unknown mode %q", mode)
	}
	if err != nil {
		return err
	}

	row := []string{
		mode,
		algoName,
		strconv.FormatUint(n, 10),
		density,
		strconv.FormatFloat(queryFreq, 'g', -1, 64),
		instPath,
	}
	row = append(row, strings.Split(runtimeField, ",")...)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cmd/dynconn: creating output file: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(row); err != nil {
		return fmt.Errorf("cmd/dynconn: writing CSV row: %w", err)
	}
	w.Flush()
	return w.Error()
}
