package verify

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/checkedint/internal/conv"
	"github.com/hupe1980/checkedint/testutil"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Verifier runs differential checks of checkedint against math/big.
type Verifier struct {
	opts options
}

// New creates a Verifier.
func New(optFns ...Option) *Verifier {
	return &Verifier{opts: applyOptions(optFns)}
}

// Run verifies the representation with the given name, e.g. "int8" or
// "uint64".
func (v *Verifier) Run(ctx context.Context, typ string) (*Report, error) {
	rep, err := conv.ParseRep(typ)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	switch rep {
	case conv.Int8:
		return RunFor[int8](ctx, v)
	case conv.Int16:
		return RunFor[int16](ctx, v)
	case conv.Int32:
		return RunFor[int32](ctx, v)
	case conv.Int64:
		return RunFor[int64](ctx, v)
	case conv.Uint8:
		return RunFor[uint8](ctx, v)
	case conv.Uint16:
		return RunFor[uint16](ctx, v)
	case conv.Uint32:
		return RunFor[uint32](ctx, v)
	case conv.Uint64:
		return RunFor[uint64](ctx, v)
	}
	return nil, fmt.Errorf("verify: unsupported representation %s", rep)
}

// RunAll verifies each named representation in turn and stops at the first
// error. Mismatches are not errors; inspect Report.OK.
func (v *Verifier) RunAll(ctx context.Context, types ...string) ([]*Report, error) {
	reports := make([]*Report, 0, len(types))
	for _, typ := range types {
		r, err := v.Run(ctx, typ)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// RunFor checks every configured operator of checkedint.Int[T].
func RunFor[T constraints.Integer](ctx context.Context, v *Verifier) (*Report, error) {
	rep := conv.RepOf[T]()
	typ := rep.String()
	logger := v.opts.logger.WithType(typ)
	start := time.Now()

	report, err := verifyOps[T](ctx, v, rep, logger)

	elapsed := time.Since(start)
	v.opts.metricsCollector.RecordRun(typ, elapsed, err)
	logger.LogRun(ctx, elapsed, err)
	if err != nil {
		return nil, err
	}
	report.Elapsed = elapsed
	return report, nil
}

func verifyOps[T constraints.Integer](ctx context.Context, v *Verifier, rep conv.Rep, logger *Logger) (*Report, error) {
	report := &Report{Type: rep.String(), Seed: v.opts.seed}

	for _, op := range v.opts.ops {
		opLogger := logger.WithOp(op)
		exhaustive := rep.Bits <= 8 || (op.Unary() && rep.Bits <= 16)
		cases := casesFor[T](op, exhaustive, v.opts.samples, testutil.NewRNG(v.opts.seed))

		start := time.Now()
		r, err := sweep(ctx, v, op, cases, opLogger)
		if err != nil {
			return nil, err
		}
		r.Exhaustive = exhaustive
		r.Elapsed = time.Since(start)

		opLogger.LogSweep(ctx, r.Total, r.MismatchCount, r.Elapsed)
		for _, m := range r.Mismatches {
			opLogger.LogMismatch(ctx, m)
		}
		v.opts.metricsCollector.RecordSweep(report.Type, op, r.Total, r.MismatchCount, r.Elapsed)
		report.Ops = append(report.Ops, r)
	}
	return report, nil
}

// casesFor builds the operand sets for op. Unary cases leave the second
// operand zero.
func casesFor[T constraints.Integer](op Op, exhaustive bool, samples int, rng *testutil.RNG) [][2]T {
	var vals []T
	if exhaustive {
		vals = testutil.All[T]()
	} else {
		vals = testutil.Boundary[T]()
		samples = min(samples, math.MaxInt32-len(vals)*len(vals))
	}

	if op.Unary() {
		cases := make([][2]T, 0, len(vals)+samples)
		for _, a := range vals {
			cases = append(cases, [2]T{a})
		}
		if !exhaustive {
			for _, a := range testutil.Values[T](rng, samples) {
				cases = append(cases, [2]T{a})
			}
		}
		return cases
	}

	cases := make([][2]T, 0, len(vals)*len(vals)+samples)
	for _, a := range vals {
		for _, b := range vals {
			cases = append(cases, [2]T{a, b})
		}
	}
	if !exhaustive {
		cases = append(cases, testutil.Pairs[T](rng, samples)...)
	}
	return cases
}

// sweep checks all cases of one operator, split into chunks evaluated by a
// bounded number of workers. Each chunk reports into its own OpReport which
// is merged once the chunk is done.
func sweep[T constraints.Integer](ctx context.Context, v *Verifier, op Op, cases [][2]T, logger *Logger) (*OpReport, error) {
	var (
		total    = len(cases)
		chunk    = max(1, total/(v.opts.workers*4))
		report   = newOpReport(op)
		mu       sync.Mutex
		done     atomic.Uint64
		progress *rate.Sometimes
	)
	if v.opts.progressInterval > 0 {
		progress = &rate.Sometimes{Interval: v.opts.progressInterval}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.workers)

	for start := 0; start < total && gctx.Err() == nil; start += chunk {
		end := min(start+chunk, total)
		g.Go(func() error {
			local := newOpReport(op)
			for i := start; i < end; i++ {
				if (i-start)%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				outcome, m := check(op, cases[i][0], cases[i][1])
				local.add(uint32(i), outcome, m, v.opts.maxMismatches)
			}

			mu.Lock()
			report.merge(local, v.opts.maxMismatches)
			mu.Unlock()

			n := done.Add(uint64(end - start))
			if progress != nil {
				progress.Do(func() { logger.LogProgress(gctx, n, uint64(total)) })
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.finish()
	return report, nil
}
