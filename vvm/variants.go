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

import "github.com/samber/lo"

// LoadVariant describes one registered 4-byte loader.
type LoadVariant struct {
	// Name is a stable identifier, e.g. "plain" or "block8".
	Name string

	// Level is the instruction set the variant requires.
	Level DispatchLevel

	// Width is the number of lanes the variant moves per step.
	Width int

	Fn Load4Func
}

// StoreVariant describes one registered 4-byte writer.
type StoreVariant struct {
	Name  string
	Level DispatchLevel
	Width int

	// NonTemporal is set for writers that bypass the cache.
	NonTemporal bool

	Fn Store4Func
}

var load4Variants = []LoadVariant{
	{Name: "plain", Level: DispatchScalar, Width: 1, Fn: LoadPlain4},
	{Name: "unroll4", Level: DispatchScalar, Width: 4, Fn: LoadUnroll4},
	{Name: "block4", Level: DispatchScalar, Width: 4, Fn: LoadBlock4},
	{Name: "block8", Level: DispatchScalar, Width: 8, Fn: LoadBlock8},
	{Name: "block16", Level: DispatchScalar, Width: 16, Fn: LoadBlock16},
	{Name: "seq", Level: DispatchScalar, Width: 4, Fn: LoadSeq4},
	{Name: "shuffle", Level: DispatchScalar, Width: 4, Fn: LoadShuffle4},
}

var store4Variants = []StoreVariant{
	{Name: "plain", Level: DispatchScalar, Width: 1, Fn: StorePlain4},
	{Name: "unroll4", Level: DispatchScalar, Width: 4, Fn: StoreUnroll4},
	{Name: "unroll4-nt", Level: ntLevel, Width: 4, NonTemporal: true, Fn: StoreUnroll4NT},
	{Name: "seq", Level: DispatchScalar, Width: 4, Fn: StoreSeq4},
	{Name: "seq-nt", Level: ntLevel, Width: 2, NonTemporal: true, Fn: StoreSeq4NT},
}

// Load4 is the default 4-byte loader. It starts as block8 and is replaced at
// init by a hardware-specific loader when one is built in and supported.
// Callers may reassign it before use; it is not safe to reassign
// concurrently with calls.
var Load4 Load4Func = LoadBlock8

// Store4 is the default 4-byte writer.
var Store4 Store4Func = StoreUnroll4

// registerLoad4 adds a loader to the table. It must only be called from
// init functions.
func registerLoad4(v LoadVariant) {
	load4Variants = append(load4Variants, v)
}

// Load4Variants returns every registered loader, including ones the current
// CPU cannot run.
func Load4Variants() []LoadVariant {
	return append([]LoadVariant(nil), load4Variants...)
}

// Store4Variants returns every registered writer.
func Store4Variants() []StoreVariant {
	return append([]StoreVariant(nil), store4Variants...)
}

// SupportedLoad4 returns the loaders runnable at CurrentLevel.
func SupportedLoad4() []LoadVariant {
	return lo.Filter(load4Variants, func(v LoadVariant, _ int) bool {
		return currentLevel.Supports(v.Level)
	})
}

// SupportedStore4 returns the writers runnable at CurrentLevel.
func SupportedStore4() []StoreVariant {
	return lo.Filter(store4Variants, func(v StoreVariant, _ int) bool {
		return currentLevel.Supports(v.Level)
	})
}

// LookupLoad4 finds a loader by name.
func LookupLoad4(name string) (LoadVariant, bool) {
	return lo.Find(load4Variants, func(v LoadVariant) bool {
		return v.Name == name
	})
}

// LookupStore4 finds a writer by name.
func LookupStore4(name string) (StoreVariant, bool) {
	return lo.Find(store4Variants, func(v StoreVariant) bool {
		return v.Name == name
	})
}
