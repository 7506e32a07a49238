package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/dynconn/action"
	"github.com/katalvlaran/dynconn/dtree"
	"github.com/katalvlaran/dynconn/dynconn"
)

// queriesPerBlock is the fixed query-block size: 10,000 random uniform
// queries per block, matching io.cpp::runQueryTime's literal 10000.
const queriesPerBlock = 10000

// correctnessSampleSize is the number of random queries sampled once a
// component-count mismatch is observed, ported from io.cpp::runAccuracyCheck's
// literal 1000.
const correctnessSampleSize = 1000

var errQueryBlockNotAllowed = errors.New("cmd/dynconn: action stream contains a query block outside queryTime mode")
var errQueryNotAllowed = errors.New("cmd/dynconn: action stream contains a bare query outside regular/correctnessCheck mode")

// runRegular replays actions against algo and returns the wall-clock elapsed
// since the last timer reset (or the start), in nanoseconds. Query blocks are
// rejected; bare queries are replayed and timed along with the updates
// (io.cpp::runAllUpdatesTime).
func runRegular(actions []action.Action, algo dynconn.Algorithm) (string, error) {
	start := time.Now()
	for _, act := range actions {
		switch act.Kind {
		case action.Add:
			_ = algo.AddEdge(act.U, act.V)
		case action.Del:
			_ = algo.DeleteEdge(act.U, act.V)
		case action.Query:
			_ = algo.Query(act.U, act.V)
		case action.QueryBlock:
			return "", errQueryBlockNotAllowed
		case action.Timer:
			start = time.Now()
		}
	}
	return fmt.Sprintf("%d", time.Since(start).Nanoseconds()), nil
}

// runMaxTimeUpdate replays actions, tracking the slowest single AddEdge and
// the slowest single DeleteEdge since the last timer reset, in nanoseconds.
// Neither bare queries nor query blocks are allowed (io.cpp::runSingleUpdateTime).
func runMaxTimeUpdate(actions []action.Action, algo dynconn.Algorithm) (string, error) {
	var maxAdd, maxDel time.Duration
	for _, act := range actions {
		switch act.Kind {
		case action.Add:
			t0 := time.Now()
			_ = algo.AddEdge(act.U, act.V)
			if d := time.Since(t0); d > maxAdd {
				maxAdd = d
			}
		case action.Del:
			t0 := time.Now()
			_ = algo.DeleteEdge(act.U, act.V)
			if d := time.Since(t0); d > maxDel {
				maxDel = d
			}
		case action.Query:
			return "", errQueryNotAllowed
		case action.QueryBlock:
			return "", errQueryBlockNotAllowed
		case action.Timer:
			maxAdd, maxDel = 0, 0
		}
	}
	return fmt.Sprintf("%d,%d", maxAdd.Nanoseconds(), maxDel.Nanoseconds()), nil
}

// runQueryTime replays actions, summing the wall-clock time spent servicing
// each query block's queriesPerBlock random uniform queries since the last
// timer reset. Bare queries are not allowed (io.cpp::runQueryTime).
func runQueryTime(actions []action.Action, algo dynconn.Algorithm, n uint64, rng *rand.Rand) (string, error) {
	var sum time.Duration
	for _, act := range actions {
		switch act.Kind {
		case action.Add:
			_ = algo.AddEdge(act.U, act.V)
		case action.Del:
			_ = algo.DeleteEdge(act.U, act.V)
		case action.Query:
			return "", errQueryNotAllowed
		case action.QueryBlock:
			if n == 0 {
				continue
			}
			us := make([]uint64, queriesPerBlock)
			vs := make([]uint64, queriesPerBlock)
			for i := range us {
				us[i] = uint64(rng.Int63n(int64(n)))
				vs[i] = uint64(rng.Int63n(int64(n)))
			}
			t0 := time.Now()
			for i := range us {
				_ = algo.Query(us[i], vs[i])
			}
			sum += time.Since(t0)
		case action.Timer:
			sum = 0
		}
	}
	return fmt.Sprintf("%d", sum.Nanoseconds()), nil
}

// runCorrectnessCheck replays actions against algo and a parallel dtree.DTree
// reference, following io.cpp::runAccuracyCheck: every update increments
// stateChecks, and on a component-count mismatch samples
// correctnessSampleSize random queries against both structures, counting
// every disagreement. Query blocks are not allowed; bare queries are
// forwarded to algo only, unchecked, exactly as the original does.
func runCorrectnessCheck(actions []action.Action, algo dynconn.Algorithm, n uint64, rng *rand.Rand) (string, error) {
	reference := dtree.New(n)
	var stateChecks, errorStates, queryChecks, queryErrors uint64

	for _, act := range actions {
		switch act.Kind {
		case action.Add:
			_ = algo.AddEdge(act.U, act.V)
			_ = reference.AddEdge(act.U, act.V)
			stateChecks++
			if algo.NumberOfComponents() != reference.NumberOfComponents() {
				errorStates++
				sampleQueryMismatches(algo, reference, n, rng, &queryChecks, &queryErrors)
			}
		case action.Del:
			_ = algo.DeleteEdge(act.U, act.V)
			_ = reference.DeleteEdge(act.U, act.V)
			stateChecks++
			if algo.NumberOfComponents() != reference.NumberOfComponents() {
				errorStates++
				sampleQueryMismatches(algo, reference, n, rng, &queryChecks, &queryErrors)
			}
		case action.Query:
			_ = algo.Query(act.U, act.V)
		case action.QueryBlock:
			return "", errQueryBlockNotAllowed
		case action.Timer:
			stateChecks, errorStates, queryChecks, queryErrors = 0, 0, 0, 0
		}
	}
	return fmt.Sprintf("%d,%d,%d,%d", stateChecks, errorStates, queryChecks, queryErrors), nil
}

func sampleQueryMismatches(algo dynconn.Algorithm, reference *dtree.DTree, n uint64, rng *rand.Rand, queryChecks, queryErrors *uint64) {
	if n == 0 {
		return
	}
	for i := 0; i < correctnessSampleSize; i++ {
		u := uint64(rng.Int63n(int64(n)))
		v := uint64(rng.Int63n(int64(n)))
		*queryChecks++
		if algo.Query(u, v) != reference.Query(u, v) {
			*queryErrors++
		}
	}
}
