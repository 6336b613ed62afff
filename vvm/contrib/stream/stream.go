// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stream drives vvm registers across buffers larger than one
// register.
//
// A Streamer repeatedly prefetches the next chunk, loads up to
// vvm.Lanes32 4-byte elements into a register, applies an operation and
// stores the result, chaining the offsets returned by each load and store.
// With a worker pool, register-sized chunks are processed in parallel on
// disjoint registers and disjoint memory.
package stream

import (
	"github.com/ajroetker/go-longvec/vvm"
	"github.com/ajroetker/go-longvec/vvm/contrib/workerpool"
)

// Cursor describes a stream of 4-byte elements: element i lives at
// Buf[Off+i*Stride : Off+i*Stride+4].
type Cursor struct {
	Buf    []byte
	Off    int
	Stride int
}

// Contiguous returns a cursor over buf starting at byte offset 0 with a
// 4-byte stride.
func Contiguous(buf []byte) Cursor {
	return Cursor{Buf: buf, Stride: 4}
}

// Advance returns the cursor moved forward by n elements.
func (c Cursor) Advance(n int) Cursor {
	c.Off += n * c.Stride
	return c
}

// Op transforms count float32 lanes of in into out. out may be in.
type Op func(in, out *vvm.Register, count int)

// BinaryOp combines count lanes of a and b into out. out may alias a or b.
type BinaryOp func(a, b, out *vvm.Register, count int)

// Streamer holds the engine choices for a stream. The zero value streams
// sequentially on the calling goroutine with the default loader and writer.
type Streamer struct {
	// Pool, when non-nil, processes register-sized chunks in parallel.
	Pool *workerpool.Pool

	// Load and Store override vvm.Load4 and vvm.Store4.
	Load  vvm.Load4Func
	Store vvm.Store4Func
}

func (s *Streamer) loader() vvm.Load4Func {
	if s.Load != nil {
		return s.Load
	}
	return vvm.Load4
}

func (s *Streamer) writer() vvm.Store4Func {
	if s.Store != nil {
		return s.Store
	}
	return vvm.Store4
}

func numChunks(n int) int {
	return (n + vvm.Lanes32 - 1) / vvm.Lanes32
}

// forEachChunk runs fn for every register-sized chunk of an n-element
// stream, on the pool when there is one. fn gets the first element index
// and element count of its chunk.
func (s *Streamer) forEachChunk(n int, fn func(rf *vvm.RegisterFile, first, count int)) {
	chunk := func(rf *vvm.RegisterFile, k int) {
		first := k * vvm.Lanes32
		fn(rf, first, min(vvm.Lanes32, n-first))
		vvm.StoreFence()
	}
	if s.Pool != nil {
		s.Pool.ForEachChunk(numChunks(n), chunk)
		return
	}
	rf := vvm.NewRegisterFile()
	for k := range numChunks(n) {
		chunk(rf, k)
	}
}

// Map applies op to n elements read from src and writes the results to dst.
// It returns both cursors advanced by n elements.
func (s *Streamer) Map(dst, src Cursor, n int, op Op) (Cursor, Cursor) {
	load, store := s.loader(), s.writer()
	s.forEachChunk(n, func(rf *vvm.RegisterFile, first, count int) {
		in, out := rf.Reg(0), rf.Reg(1)
		off := src.Off + first*src.Stride
		next := load(in, src.Buf, off, src.Stride, count)
		vvm.Prefetch(src.Buf, next, src.Stride, min(vvm.Lanes32, n-first-count))
		op(in, out, count)
		store(out, dst.Buf, dst.Off+first*dst.Stride, dst.Stride, count)
	})
	return dst.Advance(n), src.Advance(n)
}

// Zip combines n elements of a and b with op and writes the results to dst.
// It returns the three cursors advanced by n elements.
func (s *Streamer) Zip(dst, a, b Cursor, n int, op BinaryOp) (Cursor, Cursor, Cursor) {
	load, store := s.loader(), s.writer()
	s.forEachChunk(n, func(rf *vvm.RegisterFile, first, count int) {
		ra, rb, out := rf.Reg(0), rf.Reg(1), rf.Reg(2)
		rest := min(vvm.Lanes32, n-first-count)
		nextA := load(ra, a.Buf, a.Off+first*a.Stride, a.Stride, count)
		nextB := load(rb, b.Buf, b.Off+first*b.Stride, b.Stride, count)
		vvm.Prefetch(a.Buf, nextA, a.Stride, rest)
		vvm.Prefetch(b.Buf, nextB, b.Stride, rest)
		op(ra, rb, out, count)
		store(out, dst.Buf, dst.Off+first*dst.Stride, dst.Stride, count)
	})
	return dst.Advance(n), a.Advance(n), b.Advance(n)
}

// Copy moves n elements from src to dst through a register, converting
// between strided layouts.
func (s *Streamer) Copy(dst, src Cursor, n int) (Cursor, Cursor) {
	return s.Map(dst, src, n, func(in, out *vvm.Register, count int) {
		copy(out.Bytes()[:4*count], in.Bytes()[:4*count])
	})
}
