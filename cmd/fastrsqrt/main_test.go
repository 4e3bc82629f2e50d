package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/fastrsqrt"
	"github.com/hupe1980/fastrsqrt/vecio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunUsage(t *testing.T) {
	_, err := runCmd(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "bogus")
	assert.ErrorIs(t, err, errUsage)
}

func TestRunEval(t *testing.T) {
	out, err := runCmd(t, "eval", "0.15625", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "approx")
	assert.Contains(t, out, "0.15625")
	assert.Contains(t, out, "2.5298")

	_, err = runCmd(t, "eval", "--", "-1")
	assert.ErrorIs(t, err, fastrsqrt.ErrNotPositive)

	_, err = runCmd(t, "eval")
	assert.Error(t, err)
}

func TestRunNormalize(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv.zst")

	require.NoError(t, os.WriteFile(in, []byte("x,y,z\n1,2,3\n0,0,0\n4.2,-1,-1\n"), 0o644))

	_, err := runCmd(t, "normalize", "-in", in, "-out", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, fastrsqrt.ErrNotNormal)

	stdout, err := runCmd(t, "normalize", "-in", in, "-out", out, "-skip-invalid", "-iters", "2")
	require.NoError(t, err)
	assert.Equal(t, "normalized 2 of 3 vectors (1 rejected)\n", stdout)

	r, err := vecio.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()

	vs, err := vecio.ReadVectors(r)
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.InDelta(t, 1.0, vs[0].Norm(), 1e-4)
	assert.Equal(t, fastrsqrt.Vec3{}, vs[1])
	assert.InDelta(t, 1.0, vs[2].Norm(), 1e-4)

	_, err = runCmd(t, "normalize", "-in", in)
	assert.Error(t, err)
}

func TestRunAccuracy(t *testing.T) {
	out, err := runCmd(t, "accuracy", "-n", "1000", "-min", "0.001", "-max", "1000")
	require.NoError(t, err)

	assert.Contains(t, out, "samples")
	assert.Contains(t, out, "1000 (skipped 0)")
	assert.True(t, strings.Contains(out, "true"), out)

	_, err = runCmd(t, "accuracy", "-max", "1e40")
	assert.Error(t, err)

	_, err = runCmd(t, "accuracy", "-min", "10", "-max", "1")
	assert.Error(t, err)
}

func TestRunInfo(t *testing.T) {
	out, err := runCmd(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH=")
}
