// Package ensemble runs many independent simulation loops concurrently.
//
// Agent-based experiments rarely run one simulation: they sweep a seed or a
// parameter across hundreds of scenarios and compare the resulting stats.
// The Runner executes one EventLoop per scenario on its own goroutine,
// keeps results in scenario order regardless of completion order, and
// converts a panicking scenario into an error instead of taking the whole
// batch down.
//
// Parallelism exists only across loops. Each individual loop remains
// strictly single-threaded, so agent code written for sim needs no
// synchronization to be run here.
package ensemble

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/samthorold/abm-sub000/sim"
)

// Builder constructs a fresh, fully seeded event loop for one scenario.
// The scenario index is the determinism hook: derive per-scenario seeds
// from it (see ScenarioRNG) rather than sharing mutable state across
// scenarios, because each loop runs on its own goroutine.
type Builder[T, S any] func(scenario int) *sim.EventLoop[T, S]

// Result carries the outcome of one scenario. Err is non-nil when the
// scenario panicked or its builder returned no loop; Stats and Metrics
// are only meaningful when Err is nil.
type Result[S any] struct {
	Scenario int
	Stats    []S
	Metrics  sim.LoopMetrics
	Err      error
}

// Runner executes N independent scenarios concurrently.
type Runner[T, S any] struct {
	Scenarios int
	Build     Builder[T, S]

	// Workers caps the number of concurrently running scenarios.
	// Zero or negative means one per available CPU.
	Workers int

	// Progress, if set, is called after each scenario completes with the
	// completion count so far and the total. Completions finish on
	// different goroutines, so the callback may be invoked concurrently
	// and must be safe for that.
	Progress func(done, total int)
}

// Run executes all scenarios to the given horizon and returns results
// indexed by scenario, in scenario order regardless of completion order.
func (r *Runner[T, S]) Run(until int64) []Result[S] {
	total := r.Scenarios
	results := make([]Result[S], total)
	if total == 0 {
		return results
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var wg sync.WaitGroup
	var done atomic.Int64
	sem := make(chan struct{}, workers)

	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(scenario int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[scenario] = r.runScenario(scenario, until)

			if r.Progress != nil {
				r.Progress(int(done.Add(1)), total)
			}
		}(i)
	}

	wg.Wait()
	return results
}

// runScenario builds and runs a single loop, converting panics into
// errors so one bad scenario cannot take down the batch.
func (r *Runner[T, S]) runScenario(scenario int, until int64) (res Result[S]) {
	res.Scenario = scenario
	defer func() {
		if rec := recover(); rec != nil {
			res.Stats = nil
			res.Metrics = sim.LoopMetrics{}
			res.Err = fmt.Errorf("scenario %d panicked: %v", scenario, rec)
		}
	}()

	loop := r.Build(scenario)
	if loop == nil {
		res.Err = fmt.Errorf("scenario %d: builder returned no loop", scenario)
		return res
	}

	loop.Run(until)
	res.Stats = loop.Stats()
	res.Metrics = loop.Metrics()
	return res
}

// RunBatched executes the scenarios in sequential batches of batchSize,
// bounding how many loops are ever live at once. Within a batch,
// execution is concurrent exactly as in Run; results still arrive in
// global scenario order and Progress still counts globally. A batchSize
// of zero (or one covering all scenarios) degenerates to Run.
func (r *Runner[T, S]) RunBatched(until int64, batchSize int) []Result[S] {
	if batchSize <= 0 || batchSize >= r.Scenarios {
		return r.Run(until)
	}

	results := make([]Result[S], 0, r.Scenarios)
	completed := 0
	for start := 0; start < r.Scenarios; start += batchSize {
		end := min(start+batchSize, r.Scenarios)
		offset := start
		batch := &Runner[T, S]{
			Scenarios: end - start,
			Build: func(i int) *sim.EventLoop[T, S] {
				return r.Build(offset + i)
			},
			Workers: r.Workers,
		}
		if r.Progress != nil {
			base := completed
			batch.Progress = func(done, _ int) {
				r.Progress(base+done, r.Scenarios)
			}
		}

		batchResults := batch.Run(until)
		for j := range batchResults {
			batchResults[j].Scenario = start + j
		}
		results = append(results, batchResults...)
		completed += end - start
	}
	return results
}

// ProgressLogger returns a Progress callback that logs through logrus
// every interval completions and on the final one. An interval below one
// logs every completion.
func ProgressLogger(interval int) func(done, total int) {
	if interval < 1 {
		interval = 1
	}
	return func(done, total int) {
		if done%interval == 0 || done == total {
			logrus.Infof("Completed %d/%d scenarios", done, total)
		}
	}
}

// RunParallel runs n scenarios concurrently with default worker settings
// and returns results in scenario order.
func RunParallel[T, S any](n int, build Builder[T, S], until int64) []Result[S] {
	r := &Runner[T, S]{Scenarios: n, Build: build}
	return r.Run(until)
}

// RunBatched runs n scenarios in sequential batches of batchSize.
func RunBatched[T, S any](n, batchSize int, build Builder[T, S], until int64) []Result[S] {
	r := &Runner[T, S]{Scenarios: n, Build: build}
	return r.RunBatched(until, batchSize)
}
