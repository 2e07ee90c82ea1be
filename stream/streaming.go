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
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-lzstream/lzstream"
	"github.com/go-lzstream/lzstream/lz"
	"github.com/go-lzstream/lzstream/token"
)

// Writer is an io.WriteCloser that runs bytes written to it through the
// encoder and token codec, writing binary little-endian uint16 tokens to
// the underlying io.Writer. Close drains the encoder over whatever bytes
// were buffered and flushes the remaining tokens.
type Writer struct {
	sink io.Writer
	ctx  context.Context
	pipe *io.PipeWriter
	done chan error
}

// NewWriter builds a Writer over w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	cfg := newConfig(opts)

	pr, pw := io.Pipe()

	this := &Writer{sink: w, ctx: cfg.ctx, pipe: pw, done: make(chan error, 1)}

	go func() {
		enc := lz.NewEncoder(pr, lz.WithListener(cfg.listener), lz.WithMaxAttempts(cfg.maxAttempts))
		adaptor := token.NewEncoderAdaptor(enc)
		this.done <- drainTokens(adaptor, w)
	}()

	return this
}

func drainTokens(adaptor *token.EncoderAdaptor, w io.Writer) error {
	var hdr [2]byte

	for {
		t, err := adaptor.Next()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		binary.LittleEndian.PutUint16(hdr[:], t.Uint16())

		if _, err := w.Write(hdr[:]); err != nil {
			return &lzstream.CodecError{
				Msg:  fmt.Sprintf("writing token to sink: %v", err),
				Code: lzstream.ErrSinkIO,
			}
		}
	}
}

// Write feeds p into the encoder pipeline.
func (this *Writer) Write(p []byte) (int, error) {
	select {
	case <-this.ctx.Done():
		return 0, this.ctx.Err()
	default:
	}

	return this.pipe.Write(p)
}

// Close signals end-of-input to the encoder and waits for the remaining
// tokens to be flushed to the sink.
func (this *Writer) Close() error {
	if err := this.pipe.Close(); err != nil {
		return err
	}

	return <-this.done
}

// Reader is an io.Reader that reads binary little-endian uint16 tokens
// from the underlying io.Reader, decodes them through the token codec and
// the decoder, and serves decompressed bytes.
type Reader struct {
	dec *lz.Decoder
	ctx context.Context
}

// tokenStreamSource reads binary uint16 tokens from an io.Reader.
type tokenStreamSource struct {
	r io.Reader
}

func (this *tokenStreamSource) Next() (token.Token, error) {
	var hdr [2]byte

	if _, err := io.ReadFull(this.r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return token.Token{}, &lzstream.CodecError{
				Msg:  "token stream ended mid-token",
				Code: lzstream.ErrMalformedToken,
			}
		}

		return token.Token{}, err
	}

	return token.FromUint16(binary.LittleEndian.Uint16(hdr[:]))
}

// NewReader builds a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := newConfig(opts)

	src := &tokenStreamSource{r: r}
	adaptor := token.NewDecoderAdaptor(src)
	dec := lz.NewDecoder(adaptor, lz.WithListener(cfg.listener))

	return &Reader{dec: dec, ctx: cfg.ctx}
}

// Read serves decompressed bytes.
func (this *Reader) Read(p []byte) (int, error) {
	select {
	case <-this.ctx.Done():
		return 0, this.ctx.Err()
	default:
	}

	return this.dec.Read(p)
}
