package fastrsqrt

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BatchResult summarizes a NormalizeAll call.
type BatchResult struct {
	// Total is the number of input vectors.
	Total int
	// Rejected holds the indexes of skipped vectors in ascending order.
	// It is only populated with WithSkipInvalid(true).
	Rejected []int
}

// Normalized returns the number of vectors that were normalized.
func (r BatchResult) Normalized() int {
	return r.Total - len(r.Rejected)
}

// Normalizer normalizes slices of vectors in parallel chunks.
// It is safe for concurrent use.
type Normalizer struct {
	opts    options
	limiter *rate.Limiter // nil if unlimited
	logger  *Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(optFns ...Option) *Normalizer {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	n := &Normalizer{
		opts:   opts,
		logger: opts.logger.WithIterations(max(opts.iterations, 1)),
	}

	if opts.rateLimit > 0 {
		// Burst must cover a whole chunk for WaitN to succeed.
		n.limiter = rate.NewLimiter(rate.Limit(opts.rateLimit), opts.chunkSize)
	}

	return n
}

// Normalize normalizes a single vector with the configured iteration count.
//
// It returns an *ErrInvalidComponent if v has a component that is not normal,
// and ErrNormOutOfRange if the sum of squares overflows or underflows.
func (n *Normalizer) Normalize(v Vec3) (Vec3, error) {
	nv, ok := NewNormalVec3(v)
	if !ok {
		return Vec3{}, CheckVec3(v)
	}

	sum := nv.X.Square().Add(nv.Y.Square()).Add(nv.Z.Square())
	if !sum.Valid() {
		return Vec3{}, fmt.Errorf("%w: %v", ErrNormOutOfRange, sum)
	}

	r := sum.FastRsqrt(n.opts.iterations).Inner()

	return Vec3{X: v.X * r, Y: v.Y * r, Z: v.Z * r}, nil
}

// NormalizeAll normalizes every vector of in and returns the results in the
// same order.
//
// On error the returned slice is nil. Without WithSkipInvalid, the error
// reports the lowest invalid index regardless of scheduling. The context is
// checked before each chunk.
func (n *Normalizer) NormalizeAll(ctx context.Context, in []Vec3) ([]Vec3, BatchResult, error) {
	start := time.Now()
	res := BatchResult{Total: len(in)}

	out, err := n.normalizeAll(ctx, in, &res)

	n.opts.metricsCollector.RecordBatch(res.Total, len(res.Rejected), time.Since(start), err)
	n.logger.LogBatch(ctx, res.Total, len(res.Rejected), err)

	if err != nil {
		return nil, res, err
	}

	return out, res, nil
}

func (n *Normalizer) normalizeAll(ctx context.Context, in []Vec3, res *BatchResult) ([]Vec3, error) {
	out := make([]Vec3, len(in))

	var (
		mu       sync.Mutex
		rejected []int
		firstErr *ErrInvalidVector // lowest invalid index, abort mode only
	)

	// skip reports whether a chunk starting at lo cannot lower firstErr.
	skip := func(lo int) bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil && firstErr.Index < lo
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.opts.concurrency)

	for lo := 0; lo < len(in); lo += n.opts.chunkSize {
		hi := min(lo+n.opts.chunkSize, len(in))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if skip(lo) {
				return nil
			}
			if n.limiter != nil {
				if err := n.limiter.WaitN(gctx, hi-lo); err != nil {
					return err
				}
			}

			var local []int
			for i := lo; i < hi; i++ {
				v, err := n.Normalize(in[i])
				if err != nil {
					if !n.opts.skipInvalid {
						mu.Lock()
						if firstErr == nil || i < firstErr.Index {
							firstErr = &ErrInvalidVector{Index: i, cause: err}
						}
						mu.Unlock()
						return nil
					}
					n.logger.LogReject(gctx, i, err)
					local = append(local, i)
					continue
				}
				out[i] = v
			}

			if len(local) > 0 {
				mu.Lock()
				rejected = append(rejected, local...)
				mu.Unlock()
			}

			return nil
		})
	}

	err := g.Wait()

	slices.Sort(rejected)
	res.Rejected = rejected

	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
