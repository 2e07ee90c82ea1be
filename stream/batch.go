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

// Package stream wires the LZ77 engines and the token codec together for
// batch (in-memory buffer) and streaming (io.Reader/io.Writer) callers.
package stream

import (
	"bytes"
	"io"

	"github.com/go-lzstream/lzstream"
	"github.com/go-lzstream/lzstream/lz"
	"github.com/go-lzstream/lzstream/token"
)

// tokenSliceSource adapts a []token.Token into the pull interface
// DecoderAdaptor expects.
type tokenSliceSource struct {
	tokens []token.Token
	pos    int
}

func (this *tokenSliceSource) Next() (token.Token, error) {
	if this.pos >= len(this.tokens) {
		return token.Token{}, io.EOF
	}

	t := this.tokens[this.pos]
	this.pos++
	return t, nil
}

// Encode runs the encoder to completion over xs and returns the resulting
// token vector.
func Encode(xs []byte, opts ...Option) ([]uint16, error) {
	cfg := newConfig(opts)

	enc := lz.NewEncoder(bytes.NewReader(xs), lz.WithListener(cfg.listener), lz.WithMaxAttempts(cfg.maxAttempts))
	adaptor := token.NewEncoderAdaptor(enc)

	var out []uint16

	for {
		t, err := adaptor.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		out = append(out, t.Uint16())
	}

	if cfg.listener != nil {
		cfg.listener.ProcessEvent(lz.NewEvent(lz.EvtEncodeDone, int64(len(xs)), "batch encode complete"))
	}

	return out, nil
}

// Decode runs the decoder to completion over a token vector and returns
// the reconstructed bytes.
func Decode(xs []uint16, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	tokens := make([]token.Token, 0, len(xs))

	for _, v := range xs {
		t, err := token.FromUint16(v)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}

	src := &tokenSliceSource{tokens: tokens}
	adaptor := token.NewDecoderAdaptor(src)
	dec := lz.NewDecoder(adaptor, lz.WithListener(cfg.listener))

	var out bytes.Buffer
	if _, err := io.Copy(&out, dec); err != nil {
		return nil, err
	}

	if cfg.listener != nil {
		cfg.listener.ProcessEvent(lz.NewEvent(lz.EvtDecodeDone, int64(out.Len()), "batch decode complete"))
	}

	return out.Bytes(), nil
}

// Deflate runs the encoder over xs, treating xs[0:pos) as pre-existing
// history rather than fresh input to emit literals for. If pos exceeds
// lzstream.MaxDistance, xs is equivalently trimmed to the last
// MaxDistance history bytes plus new input before encoding starts.
func Deflate(xs []byte, pos int, opts ...Option) ([]lzstream.Code, error) {
	cfg := newConfig(opts)

	if pos > lzstream.MaxDistance {
		xs = xs[pos-lzstream.MaxDistance:]
		pos = lzstream.MaxDistance
	}

	enc := lz.NewEncoder(bytes.NewReader(xs), lz.WithListener(cfg.listener), lz.WithMaxAttempts(cfg.maxAttempts))

	if err := enc.Prime(uint64(pos)); err != nil {
		return nil, err
	}

	var codes []lzstream.Code

	for {
		c, err := enc.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		codes = append(codes, c)
	}

	return codes, nil
}
