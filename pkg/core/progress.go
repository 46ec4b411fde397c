/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: progress.go
Description: Progress tracking for the Akaylee Cracker. Per-worker counters
with a single writer each, lifecycle flags, and a one-shot start barrier so
observers never have to spin waiting for the pool to come up.
*/

package core

import (
	"sync"
	"sync/atomic"
)

// Progress tracks a running search. Each worker owns exactly one counter and
// is its only writer; readers use atomic loads, so snapshots are cheap and
// never block the search.
type Progress struct {
	counters []uint64
	target   uint64

	running   uint32
	completed uint32

	started   chan struct{}
	startOnce sync.Once
}

// NewProgress creates a tracker for the given pool size and total candidate
// count.
func NewProgress(workers int, target uint64) *Progress {
	if workers < 1 {
		workers = 1
	}
	return &Progress{
		counters: make([]uint64, workers),
		target:   target,
		started:  make(chan struct{}),
	}
}

// reset rearms the tracker for a new search over target candidates. The
// tracker identity stays stable, so observers that attached before the
// search keep watching the live counters. Callers must ensure no worker is
// still writing.
func (p *Progress) reset(target uint64) {
	for i := range p.counters {
		atomic.StoreUint64(&p.counters[i], 0)
	}
	atomic.StoreUint64(&p.target, target)
	atomic.StoreUint32(&p.running, 0)
	atomic.StoreUint32(&p.completed, 0)
}

// MarkStarted flips the running flag and releases everyone waiting on
// Started. Safe to call more than once; the barrier drops exactly once.
func (p *Progress) MarkStarted() {
	atomic.StoreUint32(&p.running, 1)
	p.startOnce.Do(func() { close(p.started) })
}

// MarkCompleted flips the lifecycle flags to finished. Workers poll the
// completed flag between candidates, so this also requests early stop.
func (p *Progress) MarkCompleted() {
	atomic.StoreUint32(&p.running, 0)
	atomic.StoreUint32(&p.completed, 1)
	// a search can complete without ever observing a start, e.g. an empty
	// range; release waiters either way
	p.startOnce.Do(func() { close(p.started) })
}

// Started returns a channel closed once the worker pool is up. Display
// consumers block on this instead of spinning on IsRunning.
func (p *Progress) Started() <-chan struct{} {
	return p.started
}

// IsRunning reports whether workers are actively searching.
func (p *Progress) IsRunning() bool {
	return atomic.LoadUint32(&p.running) == 1
}

// IsCompleted reports whether the search has finished or been cancelled.
func (p *Progress) IsCompleted() bool {
	return atomic.LoadUint32(&p.completed) == 1
}

// Add credits n evaluated candidates to the given worker. Only that worker
// may call this.
func (p *Progress) Add(worker int, n uint64) {
	atomic.AddUint64(&p.counters[worker], n)
}

// Workers returns the pool size the tracker was built for.
func (p *Progress) Workers() int {
	return len(p.counters)
}

// Target returns the total number of candidates in the search.
func (p *Progress) Target() uint64 {
	return atomic.LoadUint64(&p.target)
}

// Snapshot returns a point-in-time copy of every worker counter.
func (p *Progress) Snapshot() []uint64 {
	snap := make([]uint64, len(p.counters))
	for i := range p.counters {
		snap[i] = atomic.LoadUint64(&p.counters[i])
	}
	return snap
}

// Total returns the summed evaluated count across all workers.
func (p *Progress) Total() uint64 {
	var total uint64
	for i := range p.counters {
		total += atomic.LoadUint64(&p.counters[i])
	}
	return total
}

// Percent returns completion as 0..100. A zero-width search reports 100.
func (p *Progress) Percent() float64 {
	target := p.Target()
	if target == 0 {
		return 100
	}
	return float64(p.Total()) / float64(target) * 100
}
