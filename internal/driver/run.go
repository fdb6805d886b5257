package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"lintscan/internal/config"
	"lintscan/internal/trace"
)

// Options tune Run.
type Options struct {
	// Jobs bounds concurrent file scans; <= 0 uses config, then GOMAXPROCS.
	Jobs  int
	Cache *ResultCache // nil disables caching
	// Progress, when set, observes every unit going through Run.
	Progress ProgressFunc
}

// Run scans units in parallel. Every unit gets its own tree, so nothing is
// shared between goroutines except cfg and the rules, which must not keep
// per-file state. Results are returned in input order.
func Run(ctx context.Context, cfg *config.Config, units []Unit, rules []Rule, opts Options) ([]*Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if len(units) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeRun, "run", trace.CurrentSpan(ctx)).
		WithExtra("files", strconv.Itoa(len(units))).
		WithExtra("jobs", strconv.Itoa(jobs)).
		WithExtra("run", uuid.NewString())
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	// each goroutine writes only its own index
	results := make([]*Result, len(units))

	for _, unit := range units {
		opts.Progress.emit(ProgressEvent{Path: unit.Path, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))
	for i, unit := range units {
		g.Go(func() error {
			opts.Progress.emit(ProgressEvent{Path: unit.Path, Status: StatusScanning})
			res, err := scanCached(gctx, cfg, unit, rules, opts.Cache)
			if err != nil {
				return fmt.Errorf("%s: %w", unit.Path, err)
			}
			results[i] = res
			opts.Progress.emit(finalEvent(res))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanCached(ctx context.Context, cfg *config.Config, unit Unit, rules []Rule, cache *ResultCache) (*Result, error) {
	if cache == nil || unit.File == nil {
		return ScanFile(ctx, cfg, unit, rules)
	}
	key := CacheKey(unit.File, cfg, rules)
	if bag, ok, err := cache.Get(key); err == nil && ok {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-hit", unit.Path, trace.CurrentSpan(ctx))
		return &Result{Path: unit.Path, Bag: bag, Cached: true}, nil
	}

	res, err := ScanFile(ctx, cfg, unit, rules)
	if err != nil {
		return nil, err
	}
	// failed rules would make the entry incomplete
	if len(res.Errors) == 0 {
		if err := cache.Put(key, unit.Path, res.Bag); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-write-failed", err.Error(), trace.CurrentSpan(ctx))
		}
	}
	return res, nil
}
