/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lz implements the LZ77 matching engine: the rolling hash, the
// hash-chain match finder, and the encoder/decoder pair built on top of
// them.
package lz

const (
	hashShift = 5
	hashMask  = 1<<15 - 1
)

// RollingHash maintains a 15-bit hash over the last three bytes fed to it.
// It has no notion of position; callers are responsible for feeding bytes
// in the order the trigram they care about appears.
type RollingHash struct {
	h uint32
}

// Update folds byte x into the hash and returns the new value.
//
// After three calls the return value depends only on the last three bytes
// fed in, modulo the 15-bit mask: h = ((h<<SHIFT) ^ x) & MASK.
func (this *RollingHash) Update(x byte) uint32 {
	this.h = ((this.h << hashShift) ^ uint32(x)) & hashMask
	return this.h
}

// Value returns the current hash without consuming a byte.
func (this *RollingHash) Value() uint32 {
	return this.h
}

// Reset zeroes the hash state, as if no byte had ever been fed.
func (this *RollingHash) Reset() {
	this.h = 0
}
