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

package stream

import (
	"bytes"
	"errors"
)

// BufferStream is a closable read/write byte stream backed by a
// bytes.Buffer. It gives ecosystem bindings (e.g. a numpy-array-facing
// batch call) a single type that is both the Writer the encoder drains
// its input from and the Reader a caller drains compressed output from,
// without exposing bytes.Buffer's larger surface.
type BufferStream struct {
	buf    *bytes.Buffer
	closed bool
}

// NewBufferStream creates a BufferStream, optionally pre-populated with
// the contents of data.
func NewBufferStream(data ...[]byte) *BufferStream {
	this := &BufferStream{}

	if len(data) == 1 {
		this.buf = bytes.NewBuffer(data[0])
	} else {
		this.buf = bytes.NewBuffer(nil)
	}

	return this
}

// Write appends b to the stream, growing it as needed.
func (this *BufferStream) Write(b []byte) (int, error) {
	if this.closed {
		return 0, errors.New("stream closed")
	}

	return this.buf.Write(b)
}

// Read drains bytes from the stream's current read offset.
func (this *BufferStream) Read(b []byte) (int, error) {
	if this.closed {
		return 0, errors.New("stream closed")
	}

	return this.buf.Read(b)
}

// Close marks the stream unavailable for future reads or writes.
func (this *BufferStream) Close() error {
	this.closed = true
	return nil
}

// Len returns the number of unread bytes remaining in the stream.
func (this *BufferStream) Len() int {
	return this.buf.Len()
}

// Bytes returns the stream's unread contents without consuming them.
func (this *BufferStream) Bytes() []byte {
	return this.buf.Bytes()
}
