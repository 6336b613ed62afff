// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for streaming work
// through vvm registers in parallel.
//
// Each worker owns a private vvm.RegisterFile for its whole lifetime, so
// tasks running on different workers always operate on disjoint registers
// and never need to coordinate. The pool is created once and reused across
// many streams.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEachChunk(numChunks, func(rf *vvm.RegisterFile, chunk int) {
//	    in, out := rf.Reg(0), rf.Reg(1)
//	    // load, compute, store chunk
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-longvec/vvm"
)

// Pool is a persistent set of workers, each with its own register file.
type Pool struct {
	numWorkers int
	workC      chan task
	files      []*vvm.RegisterFile

	// mu is held for reading by every ForEachChunk that feeds workC, so
	// Close never closes the channel under an in-flight send.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn      func(rf *vvm.RegisterFile)
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS. Workers and their register files are allocated immediately
// and persist until Close is called.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
		files:      make([]*vvm.RegisterFile, numWorkers),
	}
	for i := range p.files {
		p.files[i] = vvm.NewRegisterFile()
		go p.worker(p.files[i])
	}
	return p
}

func (p *Pool) worker(rf *vvm.RegisterFile) {
	for t := range p.workC {
		t.fn(rf)
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. It waits for in-flight ForEachChunk calls to
// finish; calls that start afterwards run sequentially. Calling Close
// multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// ForEachChunk calls fn once for every chunk index in [0, n) and blocks
// until all calls return. Chunks are handed out one at a time through an
// atomic counter, so uneven chunks balance across workers. fn receives the
// register file of the worker running it; it must not retain it.
//
// A closed pool runs the chunks sequentially on a fresh register file.
// fn must not call ForEachChunk on the same pool.
func (p *Pool) ForEachChunk(n int, fn func(rf *vvm.RegisterFile, chunk int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	p.mu.RLock()
	if p.closed || workers == 1 {
		p.mu.RUnlock()
		rf := vvm.NewRegisterFile()
		for i := range n {
			fn(rf, i)
		}
		return
	}
	defer p.mu.RUnlock()

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func(rf *vvm.RegisterFile) {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(rf, i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
