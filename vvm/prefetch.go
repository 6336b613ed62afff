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

// cacheLine is the prefetch granularity.
const cacheLine = 64

// Prefetch tells the memory subsystem that count elements at stride-byte
// intervals starting at buf[off] will be read soon. It is advisory only
// and never faults or changes program-visible state. The range
// may extend past either end of buf, so drivers can prefetch speculatively
// beyond the last register of a stream. On targets without a hardware hint
// Prefetch is a no-op.
//
// At most one hint is issued per cache line for strides shorter than a line.
func Prefetch(buf []byte, off, stride, count int) {
	if !hasPrefetch || count <= 0 {
		return
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	first := base + uintptr(off)

	span := stride
	if span < 0 {
		span = -span
	}
	if span == 0 {
		prefetchLines(first, 0, 1)
		return
	}

	perLine := 1
	if span < cacheLine {
		perLine = cacheLine / span
	}
	lines := (count + perLine - 1) / perLine
	prefetchLines(first, perLine*stride, lines)

	// The stepped walk can stop short of the line holding the last element.
	prefetchLines(first+uintptr((count-1)*stride), 0, 1)
}
