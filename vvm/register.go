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

// Package vvm is a long-vector execution engine.
//
// Registers are fixed 1024-byte blocks that fit comfortably in the L1 data
// cache, and instructions are plain functions that operate on whole
// registers. Bulk numeric work is expressed as a short sequence of register
// operations: load a register from a (possibly strided) stream, apply
// arithmetic, store the result back.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-longvec/vvm"
//
//	in, out := vvm.NewRegister(), vvm.NewRegister()
//	src := vvm.AsBytes(samples)
//	off := 0
//	for off < len(src) {
//	    n := min(vvm.Lanes32, (len(src)-off)/4)
//	    vvm.Load4(in, src, off, 4, n)
//	    vvm.AddFloat(in, in, out, n)
//	    off = vvm.Store4(out, src, off, 4, n)
//	}
//
// Every load and store returns the advanced stream offset
// (off + count*stride), so a driver can walk a stream larger than one
// register without recomputing offsets.
//
// Operations never allocate and keep no state between calls. Concurrent
// calls on disjoint registers and disjoint memory need no coordination.
package vvm

import "unsafe"

const (
	// RegisterSize is the size in bytes of one register.
	RegisterSize = 1024

	// Alignment is the memory alignment of registers handed out by
	// NewRegister and NewRegisterFile.
	Alignment = 64

	// RegisterCount is the number of registers in a RegisterFile.
	RegisterCount = 16

	// Lanes32 is the number of 4-byte lanes in a register.
	Lanes32 = RegisterSize / 4
)

// Register is a fixed-size block of raw storage. It carries no element type;
// the element size is a parameter of each operation.
//
// A Register declared as a value is only guaranteed Go's 8-byte alignment.
// Use NewRegister or a RegisterFile for cache-line aligned storage.
type Register struct {
	_ [0]uint64
	b [RegisterSize]byte
}

// NewRegister returns a zeroed register aligned to Alignment bytes.
func NewRegister() *Register {
	return (*Register)(unsafe.Pointer(unsafe.SliceData(alignedBytes(RegisterSize))))
}

// Bytes returns the register storage as a byte slice.
func (r *Register) Bytes() []byte {
	return r.b[:]
}

// Float32s returns the register storage as 256 float32 lanes.
func (r *Register) Float32s() []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.b[0])), Lanes32)
}

// Uint32s returns the register storage as 256 uint32 lanes.
func (r *Register) Uint32s() []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(&r.b[0])), Lanes32)
}

// Aligned reports whether the register storage starts on an Alignment
// boundary.
func (r *Register) Aligned() bool {
	return isAligned(unsafe.Pointer(r))
}

// Clear zeroes the register.
func (r *Register) Clear() {
	clear(r.b[:])
}

// RegisterFile is a set of RegisterCount independently addressable
// registers backed by one aligned allocation. The engine never numbers or
// allocates registers on its own; a RegisterFile is a convenience for
// callers that want all registers adjacent in memory.
type RegisterFile struct {
	regs [RegisterCount]*Register
}

// NewRegisterFile allocates RegisterCount aligned, zeroed registers.
func NewRegisterFile() *RegisterFile {
	backing := alignedBytes(RegisterCount * RegisterSize)
	rf := &RegisterFile{}
	for i := range rf.regs {
		rf.regs[i] = (*Register)(unsafe.Pointer(&backing[i*RegisterSize]))
	}
	return rf
}

// Reg returns register i. It panics if i is outside [0, RegisterCount).
func (rf *RegisterFile) Reg(i int) *Register {
	return rf.regs[i]
}

// Reset zeroes every register in the file.
func (rf *RegisterFile) Reset() {
	for _, r := range rf.regs {
		r.Clear()
	}
}

// AsBytes reinterprets a slice of lane values as its underlying bytes
// without copying. The result aliases s.
func AsBytes[T Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Integers is a constraint for all fixed-size integer types.
type Integers interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in register lanes.
type Lanes interface {
	Floats | Integers
}
