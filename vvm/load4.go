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

package vvm

import "unsafe"

// This file provides the interchangeable loaders for 4-byte elements.
//
// Every Load4Func has the contract of LoadStream with elemSize == 4: the
// same inputs produce a bit-identical register and the same returned offset
// regardless of the variant. They differ only in how the gather is
// organized:
//
//	plain    per-element copy, the reference
//	unroll4  four independent loads per iteration
//	block4   gather into a 128-bit block, one block store, scalar tail
//	block8   gather into a 256-bit block, masked tail block
//	block16  gather into a 512-bit block, overlapping tail block
//	seq      bulk copy when stride == 4, block4 otherwise
//	shuffle  wide loads plus lane selection for stride 8 and 16, block8 otherwise

// Load4Func loads count 4-byte elements at stride-byte spacing from src[off:]
// into dst and returns off+count*stride.
type Load4Func func(dst *Register, src []byte, off, stride, count int) int

// LoadPlain4 copies one element per iteration with bounds-checked slices.
// It is the reference every other variant must match.
func LoadPlain4(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadPlain4", len(src), off, 4, stride, count)
	p := off
	for i := range count {
		copy(dst.b[4*i:4*i+4], src[p:p+4])
		p += stride
	}
	return p
}

// LoadUnroll4 is the plain loop unrolled four ways, exposing instruction
// level parallelism without vector instructions.
func LoadUnroll4(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadUnroll4", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	loadUnroll4(unsafe.Pointer(&dst.b[0]), unsafe.Pointer(&src[off]), stride, count)
	return off + count*stride
}

// LoadBlock4 gathers four lanes at a time into a 128-bit block.
func LoadBlock4(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadBlock4", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	loadBlock4(unsafe.Pointer(&dst.b[0]), unsafe.Pointer(&src[off]), stride, count)
	return off + count*stride
}

// LoadBlock8 gathers eight lanes at a time into a 256-bit block. The tail
// is gathered into a partial block and only its live lanes are stored.
func LoadBlock8(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadBlock8", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	loadBlock8(unsafe.Pointer(&dst.b[0]), unsafe.Pointer(&src[off]), stride, count)
	return off + count*stride
}

// LoadBlock16 gathers sixteen lanes at a time into a 512-bit block. When
// count is not a multiple of 16 the last block is re-gathered so that it
// ends exactly at count, overlapping lanes already written.
func LoadBlock16(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadBlock16", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	loadBlock16(unsafe.Pointer(&dst.b[0]), unsafe.Pointer(&src[off]), stride, count)
	return off + count*stride
}

// LoadSeq4 is specialized for sequential streams: with stride == 4 the
// whole run is a single bulk copy. Other strides fall back to LoadBlock4.
func LoadSeq4(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadSeq4", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	if stride == 4 {
		copy(dst.b[:4*count], src[off:off+4*count])
		return off + 4*count
	}
	loadBlock4(unsafe.Pointer(&dst.b[0]), unsafe.Pointer(&src[off]), stride, count)
	return off + count*stride
}

// LoadShuffle4 targets array-of-structs layouts. For stride 8 (pairs) and
// 16 (quads) it loads whole structs with wide moves and selects lane 0 of
// each, the scalar analogue of a deinterleaving shuffle. Other strides
// fall back to LoadBlock8.
func LoadShuffle4(dst *Register, src []byte, off, stride, count int) int {
	checkCursor("LoadShuffle4", len(src), off, 4, stride, count)
	if count == 0 {
		return off
	}
	d := unsafe.Pointer(&dst.b[0])
	s := unsafe.Pointer(&src[off])
	switch stride {
	case 4:
		copy(dst.b[:4*count], src[off:off+4*count])
	case 8:
		loadShuffle2(d, s, count)
	case 16:
		loadShuffle4(d, s, count)
	default:
		loadBlock8(d, s, stride, count)
	}
	return off + count*stride
}

func loadUnroll4(d, s unsafe.Pointer, stride, count int) {
	i := 0
	for ; i+4 <= count; i += 4 {
		p := unsafe.Add(s, i*stride)
		a := *(*uint32)(p)
		b := *(*uint32)(unsafe.Add(p, stride))
		c := *(*uint32)(unsafe.Add(p, 2*stride))
		e := *(*uint32)(unsafe.Add(p, 3*stride))
		q := unsafe.Add(d, 4*i)
		*(*uint32)(q) = a
		*(*uint32)(unsafe.Add(q, 4)) = b
		*(*uint32)(unsafe.Add(q, 8)) = c
		*(*uint32)(unsafe.Add(q, 12)) = e
	}
	for ; i < count; i++ {
		*(*uint32)(unsafe.Add(d, 4*i)) = *(*uint32)(unsafe.Add(s, i*stride))
	}
}

func loadBlock4(d, s unsafe.Pointer, stride, count int) {
	var blk [4]uint32
	i := 0
	for ; i+4 <= count; i += 4 {
		gatherBlock(blk[:], s, i, stride)
		*(*[4]uint32)(unsafe.Add(d, 4*i)) = blk
	}
	for ; i < count; i++ {
		*(*uint32)(unsafe.Add(d, 4*i)) = *(*uint32)(unsafe.Add(s, i*stride))
	}
}

func loadBlock8(d, s unsafe.Pointer, stride, count int) {
	var blk [8]uint32
	i := 0
	for ; i+8 <= count; i += 8 {
		gatherBlock(blk[:], s, i, stride)
		*(*[8]uint32)(unsafe.Add(d, 4*i)) = blk
	}
	if rem := count - i; rem > 0 {
		gatherBlock(blk[:rem], s, i, stride)
		copy(unsafe.Slice((*uint32)(unsafe.Add(d, 4*i)), rem), blk[:rem])
	}
}

func loadBlock16(d, s unsafe.Pointer, stride, count int) {
	if count < 16 {
		loadUnroll4(d, s, stride, count)
		return
	}
	var blk [16]uint32
	i := 0
	for ; i+16 <= count; i += 16 {
		gatherBlock(blk[:], s, i, stride)
		*(*[16]uint32)(unsafe.Add(d, 4*i)) = blk
	}
	if i < count {
		i = count - 16
		gatherBlock(blk[:], s, i, stride)
		*(*[16]uint32)(unsafe.Add(d, 4*i)) = blk
	}
}

// gatherBlock fills blk with the len(blk) elements starting at element
// index first.
func gatherBlock(blk []uint32, s unsafe.Pointer, first, stride int) {
	p := unsafe.Add(s, first*stride)
	for j := range blk {
		blk[j] = *(*uint32)(unsafe.Add(p, j*stride))
	}
}

// loadShuffle2 selects the first field of consecutive 8-byte structs. A
// 32-byte move covers four structs; it is only used while a fifth element
// follows, so the move never reaches past the last element read.
func loadShuffle2(d, s unsafe.Pointer, count int) {
	i := 0
	for ; i+4 < count; i += 4 {
		w := *(*[8]uint32)(unsafe.Add(s, 8*i))
		*(*[4]uint32)(unsafe.Add(d, 4*i)) = [4]uint32{w[0], w[2], w[4], w[6]}
	}
	for ; i < count; i++ {
		*(*uint32)(unsafe.Add(d, 4*i)) = *(*uint32)(unsafe.Add(s, 8*i))
	}
}

// loadShuffle4 selects the first field of consecutive 16-byte structs,
// four structs per 64-byte move.
func loadShuffle4(d, s unsafe.Pointer, count int) {
	i := 0
	for ; i+4 < count; i += 4 {
		w := *(*[16]uint32)(unsafe.Add(s, 16*i))
		*(*[4]uint32)(unsafe.Add(d, 4*i)) = [4]uint32{w[0], w[4], w[8], w[12]}
	}
	for ; i < count; i++ {
		*(*uint32)(unsafe.Add(d, 4*i)) = *(*uint32)(unsafe.Add(s, 16*i))
	}
}
