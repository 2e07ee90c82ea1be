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

// Decoder reconstructs a byte stream from a lazy sequence of LZ77 codes
// using a ring buffer. It implements io.Reader.
type Decoder struct {
	src      lzstream.CodeSource
	buf      [lzstream.BufLen]byte
	pos      uint64
	cap      uint64
	listener Listener
	err      error
}

// NewDecoder builds a Decoder that pulls codes from src.
func NewDecoder(src lzstream.CodeSource, opts ...Option) *Decoder {
	this := &Decoder{src: src}

	cfg := options{}
	for _, o := range opts {
		o(&cfg)
	}

	this.listener = cfg.listener
	return this
}

// compact slides the live window down to the start of the buffer once cap
// gets close to the end of the physical array, preserving MaxDistance
// bytes of history.
func (this *Decoder) compact() {
	if this.cap < lzstream.BufLen-lzstream.MaxLength {
		return
	}

	n := this.cap - lzstream.MaxDistance
	copy(this.buf[0:lzstream.MaxDistance], this.buf[n:n+lzstream.MaxDistance])
	this.cap -= n
	this.pos -= n

	if this.listener != nil {
		this.listener.ProcessEvent(NewEvent(EvtCompaction, int64(n), "ring buffer compacted"))
	}
}

// fetch pulls the next code from the source and applies it to the buffer,
// growing cap. It does not emit anything itself; Read does that.
func (this *Decoder) fetch() error {
	this.compact()

	code, err := this.src.Next()
	if err != nil {
		return err
	}

	if code.Kind == lzstream.KindLiteral {
		this.buf[this.cap] = code.Literal
		this.cap++
		return nil
	}

	length := code.MatchLen()
	distance := int(code.Distance)

	if distance == 0 || uint64(distance) > this.cap {
		return &lzstream.CodecError{
			Msg:  fmt.Sprintf("invalid back-reference distance %d at position %d", distance, this.cap),
			Code: lzstream.ErrInvalidCode,
		}
	}

	idx := int(this.cap)
	begin := idx - distance
	this.cap += uint64(length)

	for length > 0 {
		n := distance
		if length < n {
			n = length
		}

		copy(this.buf[idx:idx+n], this.buf[begin:begin+n])
		idx += n
		length -= n
		distance += n
	}

	return nil
}

// ReadByte returns the next decoded byte, or io.EOF once the code source
// is exhausted.
func (this *Decoder) ReadByte() (byte, error) {
	if this.err != nil {
		return 0, this.err
	}

	if this.pos >= this.cap {
		if err := this.fetch(); err != nil {
			this.err = err
			return 0, err
		}
	}

	b := this.buf[this.pos]
	this.pos++
	return b, nil
}

// Read implements io.Reader by repeatedly pulling decoded bytes.
func (this *Decoder) Read(p []byte) (int, error) {
	n := 0

	for n < len(p) {
		b, err := this.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				return n, nil
			}

			return n, err
		}

		p[n] = b
		n++
	}

	return n, nil
}
