package trial

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"

	"github.com/robolab-data/navlog.report/internal/fsutil"
	"github.com/robolab-data/navlog.report/internal/fusion"
	"github.com/robolab-data/navlog.report/internal/monitoring"
)

// Runner fans log assembly out across a fixed pool of workers. Each log
// is an independent, stateless unit of work, so completion order is
// unspecified; results are re-sorted before they are returned.
type Runner struct {
	FS        fsutil.FileSystem
	Targets   *TargetSelector
	Alignment fusion.AlignmentPolicy

	// Workers caps the pool size; zero means one worker per CPU.
	Workers int

	// SkipBad logs and skips a failing log instead of aborting the run.
	SkipBad bool
}

// NewRunner builds a Runner with the default alignment policy and target
// presets.
func NewRunner(fsys fsutil.FileSystem) *Runner {
	return &Runner{
		FS:        fsys,
		Targets:   NewTargetSelector(),
		Alignment: fusion.OrdinalAlignment{},
	}
}

type assembleResult struct {
	data *LogData
	err  error
}

// ProcessAll assembles every discovered log. In the default fail-fast
// mode the first per-log error cancels the remaining work and is
// returned alone; with SkipBad set, failing logs are reported via the
// package logger and the joined errors are returned alongside the
// successful records. Results are sorted by algorithm, difficulty and
// index so runs are reproducible.
func (r *Runner) ProcessAll(ctx context.Context, metas []LogMetadata) ([]*LogData, error) {
	if len(metas) == 0 {
		return nil, nil
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(metas) {
		workers = len(metas)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan LogMetadata)
	results := make(chan assembleResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for md := range jobs {
				res := assembleResult{}
				res.data, res.err = Assemble(r.FS, md, r.Targets, r.Alignment)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, md := range metas {
			select {
			case jobs <- md:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var logs []*LogData
	var failures []error
	for res := range results {
		if res.err != nil {
			if !r.SkipBad {
				cancel()
				// Drain so the workers can exit.
				for range results {
				}
				return nil, res.err
			}
			monitoring.Logf("skipping bad log: %v", res.err)
			failures = append(failures, res.err)
			continue
		}
		logs = append(logs, res.data)
	}

	sort.Slice(logs, func(i, j int) bool {
		a, b := logs[i].Metadata, logs[j].Metadata
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		if a.Difficulty != b.Difficulty {
			return a.Difficulty < b.Difficulty
		}
		return a.Index < b.Index
	})
	return logs, errors.Join(failures...)
}
