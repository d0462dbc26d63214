package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/dimacspath/internal/dimacsgen"
)

func writeDataset(t *testing.T, gr, co string) string {
	t.Helper()
	dir := t.TempDir()
	base := filepath.Join(dir, "d")
	require.NoError(t, os.WriteFile(base+".gr", []byte(gr), 0o644))
	require.NoError(t, os.WriteFile(base+".co", []byte(co), 0o644))
	return base
}

func TestRootCmd_FindsPathOnLineGraph(t *testing.T) {
	gr, co := dimacsgen.Path(5, 2)
	base := writeDataset(t, gr, co)
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"1", "5", base, out})
	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "1 - (2) - 2 - (2) - 3 - (2) - 4 - (2) - 5\n", string(contents))
}

func TestRootCmd_AlgorithmBothAgrees(t *testing.T) {
	gr, co := dimacsgen.Grid(4, 4, 1)
	base := writeDataset(t, gr, co)
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"1", "16", base, out, "--algorithm", "both"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestRootCmd_NoPathWritesNoFile(t *testing.T) {
	gr := "p sp 2 0\n"
	co := "v 1 0 0\nv 2 1 0\n"
	base := writeDataset(t, gr, co)
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"1", "2", base, out})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(out)
	require.Error(t, err)
}

func TestRootCmd_RejectsUnknownAlgorithm(t *testing.T) {
	gr, co := dimacsgen.Path(2, 1)
	base := writeDataset(t, gr, co)
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"1", "2", base, out, "--algorithm", "bogus"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_RejectsNonNumericStart(t *testing.T) {
	gr, co := dimacsgen.Path(2, 1)
	base := writeDataset(t, gr, co)
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"abc", "2", base, out})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_MissingDatasetFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"1", "2", filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "out.txt")})
	require.Error(t, cmd.Execute())
}
