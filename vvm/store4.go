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

// This file provides the interchangeable writers for 4-byte elements.
//
// Every Store4Func has the contract of StoreStream with elemSize == 4 and
// leaves memory in the same state. The non-temporal variants bypass the
// cache on write (MOVNTI on amd64) and fall back to ordinary stores on
// targets without such a hint. Non-temporal stores are weakly ordered:
// call StoreFence before publishing the written memory to other goroutines
// through anything other than a synchronizing operation.

// Store4Func writes count 4-byte elements from src to dst[off:] at
// stride-byte spacing and returns off+count*stride.
type Store4Func func(src *Register, dst []byte, off, stride, count int) int

// StorePlain4 copies one element per iteration with bounds-checked slices.
func StorePlain4(src *Register, dst []byte, off, stride, count int) int {
	checkCursor("StorePlain4", len(dst), off, 4, stride, count)
	p := off
	for i := range count {
		copy(dst[p:p+4], src.b[4*i:4*i+4])
		p += stride
	}
	return p
}

// StoreUnroll4 is the plain loop unrolled four ways.
func StoreUnroll4(src *Register, dst []byte, off, stride, count int) int {
	checkCursor("StoreUnroll4", len(dst), off, 4, stride, count)
	if count == 0 {
		return off
	}
	storeUnroll4(unsafe.Pointer(&dst[off]), unsafe.Pointer(&src.b[0]), stride, count)
	return off + count*stride
}

// StoreUnroll4NT is StoreUnroll4 with non-temporal writes.
func StoreUnroll4NT(src *Register, dst []byte, off, stride, count int) int {
	checkCursor("StoreUnroll4NT", len(dst), off, 4, stride, count)
	if count == 0 {
		return off
	}
	storeNTStrided(unsafe.Pointer(&dst[off]), unsafe.Pointer(&src.b[0]), stride, count)
	return off + count*stride
}

// StoreSeq4 is specialized for sequential output: with stride == 4 the run
// is a single bulk copy. Other strides fall back to StoreUnroll4.
func StoreSeq4(src *Register, dst []byte, off, stride, count int) int {
	checkCursor("StoreSeq4", len(dst), off, 4, stride, count)
	if count == 0 {
		return off
	}
	if stride == 4 {
		copy(dst[off:off+4*count], src.b[:4*count])
		return off + 4*count
	}
	storeUnroll4(unsafe.Pointer(&dst[off]), unsafe.Pointer(&src.b[0]), stride, count)
	return off + count*stride
}

// StoreSeq4NT is StoreSeq4 with non-temporal writes. Contiguous runs are
// written eight bytes at a time.
func StoreSeq4NT(src *Register, dst []byte, off, stride, count int) int {
	checkCursor("StoreSeq4NT", len(dst), off, 4, stride, count)
	if count == 0 {
		return off
	}
	d := unsafe.Pointer(&dst[off])
	s := unsafe.Pointer(&src.b[0])
	if stride == 4 {
		storeNTContiguous(d, s, count)
	} else {
		storeNTStrided(d, s, stride, count)
	}
	return off + count*stride
}

func storeUnroll4(d, s unsafe.Pointer, stride, count int) {
	i := 0
	for ; i+4 <= count; i += 4 {
		q := unsafe.Add(s, 4*i)
		a := *(*uint32)(q)
		b := *(*uint32)(unsafe.Add(q, 4))
		c := *(*uint32)(unsafe.Add(q, 8))
		e := *(*uint32)(unsafe.Add(q, 12))
		p := unsafe.Add(d, i*stride)
		*(*uint32)(p) = a
		*(*uint32)(unsafe.Add(p, stride)) = b
		*(*uint32)(unsafe.Add(p, 2*stride)) = c
		*(*uint32)(unsafe.Add(p, 3*stride)) = e
	}
	for ; i < count; i++ {
		*(*uint32)(unsafe.Add(d, i*stride)) = *(*uint32)(unsafe.Add(s, 4*i))
	}
}
