// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderband/experiment"
	"github.com/katalvlaran/borderband/fileio"
	"github.com/katalvlaran/borderband/matrix"
	"github.com/katalvlaran/borderband/solver"
)

// execute runs the root command with args and returns stdout. Flag values
// live in package globals, so every call starts from the defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeDominant stores a diagonally dominant system and returns its exact x.
func writeDominant(t *testing.T, dir string, n, k int) (matrixPath, rhsPath string, x *matrix.Vector) {
	t.Helper()
	rng := matrix.NewRNG(11)
	a, _ := matrix.NewVector(n)
	b, _ := matrix.NewVector(n)
	c, _ := matrix.NewVector(n)
	require.NoError(t, a.FillRandom(rng, 1, 10))
	require.NoError(t, b.FillRandom(rng, 100, 200))
	require.NoError(t, c.FillRandom(rng, 1, 10))
	require.NoError(t, a.Set(1, 0))
	require.NoError(t, c.Set(n, 0))
	m, err := matrix.NewBorderedBandFromBand(a, b, c, k, 1, 10, matrix.WithSeed(11))
	require.NoError(t, err)

	x, _ = matrix.NewVector(n)
	require.NoError(t, x.FillRandom(rng, 1, 100))
	f, err := m.Multiply(x)
	require.NoError(t, err)

	matrixPath = filepath.Join(dir, "m.txt")
	rhsPath = filepath.Join(dir, "f.txt")
	require.NoError(t, fileio.SaveBand(matrixPath, m))
	require.NoError(t, fileio.SaveVector(rhsPath, f))

	return matrixPath, rhsPath, x
}

func TestGenerate_WritesConsistentSystem(t *testing.T) {
	dir := t.TempDir()
	mp, fp, xp := filepath.Join(dir, "m.txt"), filepath.Join(dir, "f.txt"), filepath.Join(dir, "x.txt")

	out, err := execute(t, "generate", "--n", "7", "--k", "3", "--seed", "5",
		"--matrix", mp, "--rhs", fp, "--x", xp)
	require.NoError(t, err)
	assert.Contains(t, out, "generated n=7 k=3")

	m, err := fileio.LoadBand(mp)
	require.NoError(t, err)
	f, err := fileio.LoadVector(fp)
	require.NoError(t, err)
	x, err := fileio.LoadVector(xp)
	require.NoError(t, err)
	assert.Equal(t, 7, m.Size())
	assert.Equal(t, 3, m.K())

	y, err := m.Multiply(x)
	require.NoError(t, err)
	d, err := y.Sub(f)
	require.NoError(t, err)
	assert.InDelta(t, 0, d.Norm(), 1e-9)
}

func TestGenerate_RequiresOutputs(t *testing.T) {
	_, err := execute(t, "generate", "--n", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestSolve_Stdout(t *testing.T) {
	mp, fp, want := writeDominant(t, t.TempDir(), 12, 4)

	out, err := execute(t, "solve", "--matrix", mp, "--rhs", fp, "--check")
	require.NoError(t, err)

	body, check, ok := strings.Cut(out, "check:")
	require.True(t, ok, "missing check line in %q", out)
	assert.Contains(t, check, "‖x − x_lu‖₁")

	got, err := fileio.ReadVector(strings.NewReader(body))
	require.NoError(t, err)
	d, err := got.Sub(want)
	require.NoError(t, err)
	assert.Less(t, d.Norm(), 1e-8)
}

func TestSolve_OutFile(t *testing.T) {
	dir := t.TempDir()
	mp, fp, want := writeDominant(t, dir, 5, 3)
	xp := filepath.Join(dir, "x.txt")

	out, err := execute(t, "solve", "--matrix", mp, "--rhs", fp, "--out", xp)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := fileio.LoadVector(xp)
	require.NoError(t, err)
	d, err := got.Sub(want)
	require.NoError(t, err)
	assert.Less(t, d.Norm(), 1e-8)
}

func TestSolve_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "solve", "--matrix", filepath.Join(dir, "none"), "--rhs", filepath.Join(dir, "none"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTrace_PrintsPhases(t *testing.T) {
	out, err := execute(t, "trace", "--n", "6", "--k", "2", "--seed", "3")
	assert.Contains(t, out, "Initial system")
	if err != nil {
		// Integer entries may produce an exact zero pivot for some seeds.
		assert.ErrorIs(t, err, solver.ErrSingularPivot)
		return
	}
	for _, title := range []string{"Left sweep", "Right sweep", "Border block", "Columns k and k+2", "Solution"} {
		assert.Contains(t, out, title)
	}
}

func TestTrace_BadLogLevel(t *testing.T) {
	_, err := execute(t, "trace", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-level")
}

func TestBench_Table(t *testing.T) {
	out, err := execute(t, "bench", "--scenario", "every-k", "--sizes", "3,4", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "scenario every-k")
	for _, h := range experiment.TableHeader {
		assert.Contains(t, out, h)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Heading, blank line, table header, then one row per (n, k): 1 + 2.
	require.Len(t, lines, 3+3)
	assert.Equal(t, []string{"3", "1"}, strings.Fields(lines[3])[:2])
	assert.Equal(t, []string{"4", "2"}, strings.Fields(lines[5])[:2])
}

func TestBench_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := "scenario: mean-error\nsizes: [5, 8]\ntrials: 3\nseed: 9\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := execute(t, "bench", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "seed 9")
	assert.Contains(t, out, "random")
}

func TestBench_UnknownScenario(t *testing.T) {
	_, err := execute(t, "bench", "--scenario", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)
}

func TestRoot_RejectsNegativeEps(t *testing.T) {
	_, err := execute(t, "trace", "--eps=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--eps")
}
