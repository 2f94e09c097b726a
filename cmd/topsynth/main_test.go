package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/topsynth/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errout)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	t.Setenv(EnvFF, "")
	dir := t.TempDir()
	out := filepath.Join(dir, "water.stf")
	itp := filepath.Join(dir, "water.itp")
	_, err := run(t, "build", "../../testdata/water", "--out", out, "--itp", itp, "--box", "30")
	require.NoError(t, err)
	S, m, err := snapshot.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 6, S.N)
	assert.Equal(t, [3]float64{30, 30, 30}, S.Box)
	assert.Equal(t, "aot-isooctane", m["ff"])
	b, err := os.ReadFile(itp)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[ angles ]")

	_, err = run(t, "build", "../../testdata/mismatch", "--out", out)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Setenv(EnvFF, "")
	o, err := run(t, "check", "../../testdata/isooctane", "--tolerance", "10")
	require.NoError(t, err)
	assert.Contains(t, o, "1 molecules")
	assert.Contains(t, o, "7 bonds")
}

func TestFF(t *testing.T) {
	o, err := run(t, "ff", "--dump")
	require.NoError(t, err)
	assert.Contains(t, o, "particles:")

	ffDump = false
	dir := t.TempDir()
	path := filepath.Join(dir, "ff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(o), 0o644))
	t.Setenv(EnvFF, path)
	o, err = run(t, "ff", "--labels")
	require.NoError(t, err)
	assert.Contains(t, o, "23 particle types, 49 labels, 32 bonds, 75 angles, 21 dihedrals")
	assert.Contains(t, o, "OW")

	t.Setenv(EnvFF, filepath.Join(dir, "missing.yaml"))
	ffLabels = false
	_, err = run(t, "ff")
	assert.Error(t, err)
}
