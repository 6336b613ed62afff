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

//go:build amd64

package vvm

import "unsafe"

// ntLevel is the instruction set the non-temporal writers need. MOVNTI and
// SFENCE are part of SSE2.
const ntLevel = DispatchSSE2

// storeNTStrided writes count 4-byte elements from s to d at stride-byte
// spacing with MOVNTI, four per iteration.
//
//go:noescape
func storeNTStrided(d, s unsafe.Pointer, stride, count int)

// storeNTContiguous writes count 4-byte elements from s to d with MOVNTI,
// eight bytes per move.
//
//go:noescape
func storeNTContiguous(d, s unsafe.Pointer, count int)

// StoreFence orders all preceding non-temporal stores before any later
// store (SFENCE).
func StoreFence()
