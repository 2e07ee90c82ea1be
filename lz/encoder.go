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

package lz

import (
	"fmt"
	"io"

	"github.com/go-lzstream/lzstream"
)

const readChunkSize = 1 << 14

// pendingMatch is a deferred (length, distance) candidate carried over by
// the lazy-match heuristic from one Next() call to the next.
type pendingMatch struct {
	length   int
	distance int
}

// Encoder consumes bytes from an io.Reader and produces a lazy sequence of
// LZ77 codes, using a rolling hash, a hash chain and a one-byte lazy-match
// lookahead. It implements lzstream.CodeSource.
type Encoder struct {
	src          io.Reader
	buf          [lzstream.BufLen]byte
	cap          uint64
	searchPos    uint64
	hasher       RollingHash
	chain        HashChain
	pending      *pendingMatch
	bootstrapped bool
	listener     Listener
	maxAttempts  int
	err          error
}

// NewEncoder builds an Encoder reading from src.
func NewEncoder(src io.Reader, opts ...Option) *Encoder {
	this := &Encoder{src: src}

	cfg := options{maxAttempts: defaultMaxAttempts}
	for _, o := range opts {
		o(&cfg)
	}

	this.listener = cfg.listener
	this.maxAttempts = cfg.maxAttempts
	return this
}

// fillBuf tops up the ring buffer from the source if fewer than MaxLength
// bytes of lookahead remain past searchPos. A source read error is kept and
// returned again by every later call, so the engine stays poisoned.
func (this *Encoder) fillBuf() error {
	if this.err != nil {
		return this.err
	}

	if this.cap >= this.searchPos+lzstream.MaxLength {
		return nil
	}

	off := this.cap & lzstream.BufMask
	room := uint64(lzstream.BufLen) - off
	chunk := uint64(readChunkSize)

	if room < chunk {
		chunk = room
	}

	if chunk == 0 {
		return nil
	}

	n, err := this.src.Read(this.buf[off : off+chunk])
	if n > 0 {
		this.cap += uint64(n)
	}

	if err != nil && err != io.EOF {
		this.err = &lzstream.CodecError{
			Msg:  fmt.Sprintf("reading source: %v", err),
			Code: lzstream.ErrSourceIO,
		}

		return this.err
	}

	return nil
}

// pruneRangeFor returns the surviving half-range for a hash-chain prune
// triggered at masked position hp, or (zero value, false) if hp doesn't
// land on a wrap boundary.
func pruneRangeFor(hp uint16) (posRange, bool) {
	switch hp {
	case 0x0000:
		return upperHalf, true
	case 0x8000:
		return lowerHalf, true
	default:
		return posRange{}, false
	}
}

// advanceHash feeds the byte at searchPos+2 into the rolling hash, so that
// it covers the trigram [searchPos, searchPos+2], prunes the chain at
// window-wrap boundaries, records the current
// position in the chain, and returns the previous position sharing this
// hash (0 if none).
func (this *Encoder) advanceHash() uint16 {
	hp := this.searchPos + 2

	if r, ok := pruneRangeFor(uint16(hp & lzstream.BufMask)); ok {
		this.chain.PruneTable(r)
		this.chain.PruneChain(r)

		if this.listener != nil {
			this.listener.ProcessEvent(NewEvent(EvtPrune, int64(this.searchPos), "hash chain pruned at window wrap"))
		}
	}

	h := this.hasher.Update(this.buf[hp&lzstream.BufMask])
	return this.chain.Add(h, uint16(this.searchPos&lzstream.BufMask))
}

// matchLength compares the ring buffer slice [begin, end) against the
// target stream starting at target, returning the length of the longest
// common prefix.
func (this *Encoder) matchLength(begin, end, target uint64) int {
	max := int(end - begin)
	n := 0

	for n < max && this.buf[(begin+uint64(n))&lzstream.BufMask] == this.buf[(target+uint64(n))&lzstream.BufMask] {
		n++
	}

	return n
}

// bestMatch walks the hash chain starting at the masked position pos,
// looking for a match strictly longer than minLength. It returns
// (minLength, 0) if nothing better is found.
func (this *Encoder) bestMatch(pos uint16, minLength, maxAttempts int) (int, int) {
	bestLength := minLength
	bestDistance := 0
	prevDistance := 0

	upper := lzstream.MaxLength
	if remaining := int(this.cap - this.searchPos); remaining < upper {
		upper = remaining
	}

	p := pos
	attempts := maxAttempts

	for {
		distance := int(uint16(this.searchPos) - p)

		if distance <= prevDistance || distance > lzstream.MaxDistance || p == 0 || attempts <= 0 || bestLength >= upper {
			break
		}

		tailSearch := (this.searchPos + uint64(bestLength)) & lzstream.BufMask
		tailCand := (uint64(p) + uint64(bestLength)) & lzstream.BufMask

		if this.buf[tailSearch] == this.buf[tailCand] {
			length := this.matchLength(this.searchPos, this.searchPos+uint64(upper), uint64(p))

			if length > bestLength {
				bestLength = length
				bestDistance = distance
			}
		}

		prevDistance = distance
		p = this.chain.Get(p)
		attempts--
	}

	return bestLength, bestDistance
}

// Next produces the next LZ77 code, or io.EOF once the source is drained.
func (this *Encoder) Next() (lzstream.Code, error) {
	if err := this.fillBuf(); err != nil {
		return lzstream.Code{}, err
	}

	if this.searchPos >= this.cap {
		return lzstream.Code{}, io.EOF
	}

	if this.searchPos == 0 && !this.bootstrapped {
		this.hasher.Update(this.buf[0])
		this.hasher.Update(this.buf[1&lzstream.BufMask])
		this.bootstrapped = true
	}

	var length, distance int

	if this.pending != nil {
		length, distance = this.pending.length, this.pending.distance
		this.pending = nil
	} else {
		prev := this.advanceHash()
		length, distance = this.bestMatch(prev, lzstream.MinMatch, this.maxAttempts)
		this.searchPos++
	}

	if length < 4 {
		return lzstream.NewLiteral(this.buf[(this.searchPos-1)&lzstream.BufMask]), nil
	}

	found := false
	var betterLength, betterDistance int

	for i := 1; i < length; i++ {
		if err := this.fillBuf(); err != nil {
			return lzstream.Code{}, err
		}

		prev := this.advanceHash()

		if i == 1 {
			if l, d := this.bestMatch(prev, length, this.maxAttempts); d > 0 {
				found = true
				betterLength, betterDistance = l, d
			}
		}

		this.searchPos++

		if found {
			break
		}
	}

	if found {
		this.pending = &pendingMatch{length: betterLength, distance: betterDistance}
		return lzstream.NewLiteral(this.buf[(this.searchPos-2)&lzstream.BufMask]), nil
	}

	return lzstream.NewDictionary(uint8(length-lzstream.MinMatch), uint16(distance)), nil
}

// Prime replays the hash-chain bookkeeping for positions [0, pos) without
// emitting codes, so that a caller can treat xs[0:pos) as pre-existing
// history a real match search can reach back into (see stream.Deflate).
func (this *Encoder) Prime(pos uint64) error {
	if pos == 0 {
		return nil
	}

	if err := this.fillBuf(); err != nil {
		return err
	}

	this.hasher.Update(this.buf[0])
	this.hasher.Update(this.buf[1&lzstream.BufMask])
	this.bootstrapped = true

	for this.searchPos < pos {
		if err := this.fillBuf(); err != nil {
			return err
		}

		this.advanceHash()
		this.searchPos++
	}

	return nil
}
