package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynconn/action"
)

// resetFlags restores every package-level flag var to its zero/default value
// so tests don't leak state through cobra's shared flag variables.
func resetFlags(t *testing.T) {
	t.Helper()
	algoName, numVert, density, instPath, outPath = "", 0, "0", "", ""
	pStart, seed, queryFreq, mode = 0, 1234, 0, "regular"
}

func TestRunBenchmarkWritesCSVRowForRegularMode(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	instFile := filepath.Join(dir, "instance.txt")
	require.NoError(t, os.WriteFile(instFile, []byte("a 0 1\na 1 2\nd 0 1\n"), 0o644))
	outFile := filepath.Join(dir, "out.csv")

	algoName = "DTree"
	instPath = instFile
	outPath = outFile
	mode = "regular"
	density = "4s"
	queryFreq = 0.5

	require.NoError(t, runBenchmark(rootCmd, nil))

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, "regular", row[0])
	require.Equal(t, "DTree", row[1])
	require.Equal(t, "3", row[2]) // vertices 0,1,2 seen -> n=3
	require.Equal(t, "4s", row[3])
	require.Equal(t, instFile, row[5])
}

func TestRunBenchmarkRejectsTestTxtInstance(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	outFile := filepath.Join(dir, "out.csv")

	algoName = "HDT"
	instPath = filepath.Join(dir, "generated_test.txt")
	outPath = outFile
	mode = "regular"

	err := runBenchmark(rootCmd, nil)
	require.Error(t, err)
	var target *action.ParseError
	require.ErrorAs(t, err, &target)
}

func TestRunBenchmarkRejectsUnknownMode(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	instFile := filepath.Join(dir, "instance.txt")
	require.NoError(t, os.WriteFile(instFile, []byte("a 0 1\n"), 0o644))
	outFile := filepath.Join(dir, "out.csv")

	algoName = "DTree"
	instPath = instFile
	outPath = outFile
	mode = "notAMode"

	err := runBenchmark(rootCmd, nil)
	require.Error(t, err)
}

func TestRunBenchmarkCorrectnessCheckMode(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	instFile := filepath.Join(dir, "instance.txt")
	require.NoError(t, os.WriteFile(instFile, []byte("a 0 1\na 1 2\na 0 2\nd 0 2\n"), 0o644))
	outFile := filepath.Join(dir, "out.csv")

	algoName = "Wang[base]"
	instPath = instFile
	outPath = outFile
	mode = "correctnessCheck"

	require.NoError(t, runBenchmark(rootCmd, nil))

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 10) // mode,algo,n,density,qf,instance + 4 runtime fields
}
