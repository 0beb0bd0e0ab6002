// Package batchrun runs a batch of independent proof scenarios across a
// fixed-size worker pool. A single search is single-threaded (spec §5:
// "inside a single search, there is no concurrency") but nothing stops
// many independent searches — e.g. a regression suite of named
// theorems — from running concurrently, since they share no mutable
// state (each gets its own Engine/arena). This is adapted from
// internal/parallel/pool.go's StaticWorkerPool, trimmed to the one
// shape this package needs: submit a fixed batch, wait for all of it,
// collect results keyed by scenario name.
package batchrun

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/gitrdm/fop/pkg/prover"
)

// ErrPoolShutdown is returned by Run once the pool has been shut down.
var ErrPoolShutdown = fmt.Errorf("batchrun: pool has been shutdown")

// Scenario is one independent proof attempt to run in the pool.
type Scenario struct {
	Name    string
	Axioms  []prover.Formula
	Goal    prover.Formula
	Options []prover.Option
}

// Result is a Scenario's outcome.
type Result struct {
	Name   string
	Proven bool
	Err    error
}

// Pool is a fixed-size worker pool for running Scenarios (adapted from
// internal/parallel/pool.go's StaticWorkerPool: same fixed worker count,
// buffered task channel, and once-guarded shutdown — generalized here to
// carry a typed task that also delivers its Result to the caller).
type Pool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewPool creates a pool with maxWorkers goroutines. maxWorkers <= 0
// defaults to runtime.NumCPU(), matching NewStaticWorkerPool's fallback.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	p := &Pool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < maxWorkers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task := <-p.taskChan:
			if task != nil {
				task()
			}
		case <-p.shutdownChan:
			return
		}
	}
}

func (p *Pool) submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Run submits every scenario to the pool and blocks until all of them
// have either finished or the context was cancelled. Results are
// returned in the same order as scenarios, regardless of completion
// order.
func (p *Pool) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		i, sc := i, sc
		wg.Add(1)
		err := p.submit(ctx, func() {
			defer wg.Done()
			proven, err := prover.Prove(ctx, sc.Axioms, sc.Goal, sc.Options...)
			results[i] = Result{Name: sc.Name, Proven: proven, Err: err}
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}

// Shutdown stops all worker goroutines; safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		close(p.taskChan)
		p.workerWg.Wait()
	})
}

// WorkerCount returns the number of workers in the pool.
func (p *Pool) WorkerCount() int { return p.maxWorkers }
