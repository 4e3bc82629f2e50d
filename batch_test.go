package fastrsqrt

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/fastrsqrt/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomVectors(n int) []Vec3 {
	rng := testutil.NewRNG(4711)

	out := make([]Vec3, n)
	for i, tr := range rng.Triples(n, 1, 100) {
		out[i] = Vec3{X: tr[0], Y: -tr[1], Z: tr[2]}
	}
	return out
}

func TestNormalizerNormalizeAll(t *testing.T) {
	in := randomVectors(1000)

	n := NewNormalizer(WithChunkSize(7), WithConcurrency(4))

	out, res, err := n.NormalizeAll(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	assert.Equal(t, 1000, res.Total)
	assert.Equal(t, 1000, res.Normalized())
	assert.Empty(t, res.Rejected)

	for i, v := range in {
		want, ok := v.Normalize()
		require.True(t, ok)
		assert.Equal(t, want, out[i], "index %d", i)
	}
}

func TestNormalizerEmpty(t *testing.T) {
	out, res, err := NewNormalizer().NormalizeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, res.Total)
}

func TestNormalizerInvalid(t *testing.T) {
	in := randomVectors(50)
	in[3] = Vec3{1, float32(math.NaN()), 2}
	in[41] = Vec3{}

	t.Run("abort", func(t *testing.T) {
		n := NewNormalizer(WithChunkSize(10))

		out, _, err := n.NormalizeAll(context.Background(), in)
		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, ErrNotNormal)

		var iv *ErrInvalidVector
		require.ErrorAs(t, err, &iv)
		assert.Equal(t, 3, iv.Index)
	})

	t.Run("skip", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		n := NewNormalizer(WithChunkSize(10), WithSkipInvalid(true), WithMetricsCollector(mc))

		out, res, err := n.NormalizeAll(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 41}, res.Rejected)
		assert.Equal(t, 48, res.Normalized())
		assert.Equal(t, Vec3{}, out[3])
		assert.Equal(t, Vec3{}, out[41])
		assert.InDelta(t, 1.0, out[0].Norm(), eps)

		stats := mc.GetStats()
		assert.Equal(t, int64(1), stats.Batches)
		assert.Equal(t, int64(50), stats.Vectors)
		assert.Equal(t, int64(2), stats.Rejected)
		assert.Equal(t, int64(0), stats.BatchErrors)
	})
}

func TestNormalizerAbortLowestIndex(t *testing.T) {
	in := randomVectors(5000)
	in[10] = Vec3{X: float32(math.Inf(1)), Y: 1, Z: 1}
	in[4990] = Vec3{}

	n := NewNormalizer(WithChunkSize(10), WithConcurrency(8))

	for range 50 {
		_, _, err := n.NormalizeAll(context.Background(), in)

		var iv *ErrInvalidVector
		require.ErrorAs(t, err, &iv)
		require.Equal(t, 10, iv.Index)
	}
}

func TestNormalizerNormOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"overflow", Vec3{X: 1e20, Y: 1, Z: 1}},
		{"underflow", Vec3{X: 1e-30, Y: 1e-30, Z: 1e-30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNormalizer().Normalize(tc.v)
			require.ErrorIs(t, err, ErrNormOutOfRange)
			assert.ErrorIs(t, err, ErrNotNormal)

			in := randomVectors(20)
			in[5] = tc.v

			out, _, err := NewNormalizer(WithChunkSize(4)).NormalizeAll(context.Background(), in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrNotNormal)

			var iv *ErrInvalidVector
			require.ErrorAs(t, err, &iv)
			assert.Equal(t, 5, iv.Index)

			out, res, err := NewNormalizer(WithChunkSize(4), WithSkipInvalid(true)).NormalizeAll(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, []int{5}, res.Rejected)
			assert.Equal(t, Vec3{}, out[5])
		})
	}
}

func TestNormalizerIterations(t *testing.T) {
	v := Vec3{1, 2, 3}

	one, err := NewNormalizer().Normalize(v)
	require.NoError(t, err)
	want, _ := v.Normalize()
	assert.Equal(t, want, one)

	zero, err := NewNormalizer(WithIterations(0)).Normalize(v)
	require.NoError(t, err)
	assert.Equal(t, one, zero)

	three, err := NewNormalizer(WithIterations(3)).Normalize(v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, three.Norm(), 1e-6)
}

func TestNormalizerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc := &BasicMetricsCollector{}
	out, _, err := NewNormalizer(WithMetricsCollector(mc)).NormalizeAll(ctx, randomVectors(10))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
	assert.Equal(t, int64(1), mc.GetStats().BatchErrors)
}

func TestNormalizerRateLimit(t *testing.T) {
	n := NewNormalizer(WithRateLimit(1e6), WithChunkSize(100))

	out, res, err := n.NormalizeAll(context.Background(), randomVectors(500))
	require.NoError(t, err)
	assert.Len(t, out, 500)
	assert.Equal(t, 500, res.Normalized())
}

func TestNormalizerLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	in := randomVectors(5)
	in[2] = Vec3{}

	_, _, err := NewNormalizer(WithLogger(logger), WithSkipInvalid(true)).NormalizeAll(context.Background(), in)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "vector rejected")
	assert.Contains(t, logs, "index=2")
	assert.Contains(t, logs, "batch normalize completed with rejects")
	assert.Contains(t, logs, "rejected=1")
	assert.Contains(t, logs, "iterations=1")
}

func BenchmarkNormalizeAll(b *testing.B) {
	in := randomVectors(100_000)
	n := NewNormalizer()
	ctx := context.Background()

	for b.Loop() {
		_, _, _ = n.NormalizeAll(ctx, in)
	}
}
