package pool

import (
	"runtime"
	"sync"
)

// parallelizeAlone calculates the result of f count times.
func parallelizeAlone(f func(int) interface{}, count int) []interface{} {
	results := make([]interface{}, count)
	for i := 0; i < len(results); i++ {
		results[i] = f(i)
	}
	return results
}

// job tells a latent worker to evaluate f at index i and store the result.
type job struct {
	// wg belongs to the Parallelize call that sent this job.
	wg      *sync.WaitGroup
	i       int
	f       func(int) interface{}
	results []interface{}
}

// worker listens for jobs until the channel is closed.
func worker(jobs <-chan job) {
	for j := range jobs {
		j.results[j.i] = j.f(j.i)
		j.wg.Done()
	}
}

// Pool represents a pool of workers, used to evaluate independent candidates
// (design sizes, layouts) concurrently.
//
// Functions needing a *Pool work with a nil receiver, doing the equivalent
// work on the current goroutine instead.
type Pool struct {
	// jobs is shared by all workers, making this a work stealing pool.
	jobs        chan job
	workerCount int
}

// NewPool creates a new pool with count workers.
//
// If count <= 0, this uses the number of available CPUs instead.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		jobs:        make(chan job),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go worker(p.jobs)
	}
	return p
}

// Workers returns the number of workers, 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workerCount
}

// TearDown stops the workers. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	if p == nil {
		return
	}
	close(p.jobs)
}

// Parallelize calls a function count times, passing in indices from 0..count-1.
//
// The result will be a slice containing [f(0), f(1), ..., f(count - 1)].
func (p *Pool) Parallelize(count int, f func(int) interface{}) []interface{} {
	if count <= 0 {
		return nil
	}
	if p == nil {
		return parallelizeAlone(f, count)
	}

	results := make([]interface{}, count)
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		p.jobs <- job{wg: &wg, i: i, f: f, results: results}
	}
	wg.Wait()
	return results
}

// Map is a typed Parallelize.
func Map[T any](p *Pool, count int, f func(int) T) []T {
	raw := p.Parallelize(count, func(i int) interface{} { return f(i) })
	out := make([]T, len(raw))
	for i, r := range raw {
		out[i] = r.(T)
	}
	return out
}
