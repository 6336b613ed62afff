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

//go:build !amd64

package vvm

import "unsafe"

// No non-temporal store instruction is used on this target; the writers
// degrade to ordinary stores, which leave memory in the same state.
const ntLevel = DispatchScalar

func storeNTStrided(d, s unsafe.Pointer, stride, count int) {
	storeUnroll4(d, s, stride, count)
}

func storeNTContiguous(d, s unsafe.Pointer, count int) {
	copy(unsafe.Slice((*byte)(d), 4*count), unsafe.Slice((*byte)(s), 4*count))
}

// StoreFence is a no-op on targets whose writers never use non-temporal
// stores.
func StoreFence() {}
