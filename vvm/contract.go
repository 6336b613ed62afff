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

import "fmt"

// Engine operations do not return errors. The preconditions below are caller
// obligations; a violation is reported by panicking once per call, before
// any memory is touched. The checks are O(1): fast paths never test bounds
// per element.

// checkCursor validates a stream cursor against its buffer and the register
// capacity.
func checkCursor(op string, bufLen, off, elemSize, stride, count int) {
	if elemSize <= 0 {
		panic(fmt.Sprintf("vvm: %s: element size %d must be positive", op, elemSize))
	}
	if count < 0 {
		panic(fmt.Sprintf("vvm: %s: negative count %d", op, count))
	}
	if count > RegisterSize/elemSize {
		panic(fmt.Sprintf("vvm: %s: %d elements of %d bytes exceed the %d-byte register", op, count, elemSize, RegisterSize))
	}
	if count == 0 {
		return
	}
	if off < 0 || off > bufLen-elemSize {
		panic(fmt.Sprintf("vvm: %s: offset %d outside buffer of %d bytes", op, off, bufLen))
	}
	// Bounding |stride| by the buffer keeps (count-1)*stride from
	// overflowing: count is at most RegisterSize.
	if count > 1 && (stride > bufLen || stride < -bufLen) {
		panic(fmt.Sprintf("vvm: %s: stride %d with count %d spans past buffer of %d bytes", op, stride, count, bufLen))
	}
	first := off
	last := off + (count-1)*stride
	lo, hi := min(first, last), max(first, last)+elemSize
	if lo < 0 || hi > bufLen {
		panic(fmt.Sprintf("vvm: %s: cursor [off=%d stride=%d count=%d] spans bytes [%d, %d) outside buffer of %d bytes",
			op, off, stride, count, lo, hi, bufLen))
	}
}

// checkLanes validates a lane count for elementwise float32 operations.
func checkLanes(op string, count int) {
	if count < 0 || count > Lanes32 {
		panic(fmt.Sprintf("vvm: %s: lane count %d outside [0, %d]", op, count, Lanes32))
	}
}
