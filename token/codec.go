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

// Package token implements the bijection between LZ77 codes and the small
// integer token alphabet [0, 898] used by downstream consumers such as
// arithmetic coders or ML tokenisers.
package token

import (
	"fmt"

	"github.com/go-lzstream/lzstream"
)

// MetaKind enumerates the meta tokens that never originate from the LZ77
// layer itself but may be mixed into a token stream by callers that frame
// sentences or pad batches.
type MetaKind uint16

const (
	// StartOfSentence marks the beginning of a logical unit.
	StartOfSentence MetaKind = iota
	// EndOfSentence marks the end of a logical unit.
	EndOfSentence
	// Pad is an inert filler token.
	Pad
)

// Token boundaries, per the alphabet partition in the data model.
const (
	literalBase     = 0
	lengthBase      = 256
	distance0Base   = 512
	distance1Base   = 768
	metaBase        = 896
	tokenUpperBound = 898
)

// Kind distinguishes the shape of a Token value.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindLength
	KindDistance0
	KindDistance1
	KindMeta
)

// Token is one element of the token alphabet: a literal byte, one of the
// three Dictionary-code fragments, or a meta token.
type Token struct {
	Kind  Kind
	Value uint16
}

// Uint16 packs the Token into its wire value in [0, 898].
func (this Token) Uint16() uint16 {
	switch this.Kind {
	case KindLiteral:
		return literalBase + this.Value
	case KindLength:
		return lengthBase + this.Value
	case KindDistance0:
		return distance0Base + this.Value
	case KindDistance1:
		return distance1Base + this.Value
	default:
		return metaBase + this.Value
	}
}

// FromUint16 unpacks a raw token value into a Token, or reports an error if
// v falls outside [0, 898].
func FromUint16(v uint16) (Token, error) {
	switch {
	case v < lengthBase:
		return Token{Kind: KindLiteral, Value: v - literalBase}, nil
	case v < distance0Base:
		return Token{Kind: KindLength, Value: v - lengthBase}, nil
	case v < distance1Base:
		return Token{Kind: KindDistance0, Value: v - distance0Base}, nil
	case v < metaBase:
		return Token{Kind: KindDistance1, Value: v - distance1Base}, nil
	case v < tokenUpperBound+1:
		return Token{Kind: KindMeta, Value: v - metaBase}, nil
	default:
		return Token{}, &lzstream.CodecError{
			Msg:  fmt.Sprintf("token value %d out of range [0, %d]", v, tokenUpperBound),
			Code: lzstream.ErrTokenRange,
		}
	}
}

// NewMeta builds a meta Token.
func NewMeta(k MetaKind) Token {
	return Token{Kind: KindMeta, Value: uint16(k)}
}

// EncoderAdaptor wraps an lzstream.CodeSource and emits the token sequence
// for each code: a single token for a Literal, or a Length/Distance0/
// Distance1 triple for a Dictionary.
//
// A Dictionary code is translated eagerly into a 2-deep queue so that
// Length is returned first and the two distance fragments drain on
// subsequent calls, matching the wire order the token alphabet specifies.
type EncoderAdaptor struct {
	src   lzstream.CodeSource
	queue []Token
}

// NewEncoderAdaptor builds an EncoderAdaptor over src.
func NewEncoderAdaptor(src lzstream.CodeSource) *EncoderAdaptor {
	return &EncoderAdaptor{src: src}
}

// Next returns the next token, or the underlying source's error (typically
// io.EOF) once both the source and the internal queue are drained.
func (this *EncoderAdaptor) Next() (Token, error) {
	if len(this.queue) > 0 {
		t := this.queue[0]
		this.queue = this.queue[1:]
		return t, nil
	}

	code, err := this.src.Next()
	if err != nil {
		return Token{}, err
	}

	if code.Kind == lzstream.KindLiteral {
		return Token{Kind: KindLiteral, Value: uint16(code.Literal)}, nil
	}

	d := code.Distance - 1
	this.queue = []Token{
		{Kind: KindDistance0, Value: d & 0xFF},
		{Kind: KindDistance1, Value: (d >> 8) & 0x7F},
	}

	return Token{Kind: KindLength, Value: uint16(code.Length)}, nil
}

// DecoderAdaptor wraps a token source and reconstitutes lzstream.Code
// values, validating the Length/Distance0/Distance1 sequencing protocol.
type DecoderAdaptor struct {
	src interface {
		Next() (Token, error)
	}
}

// NewDecoderAdaptor builds a DecoderAdaptor over src.
func NewDecoderAdaptor(src interface{ Next() (Token, error) }) *DecoderAdaptor {
	return &DecoderAdaptor{src: src}
}

// Next returns the next lzstream.Code, or a protocol-violation
// *lzstream.CodecError if a Length token isn't followed by exactly one
// Distance0 then one Distance1 token.
func (this *DecoderAdaptor) Next() (lzstream.Code, error) {
	t, err := this.src.Next()
	if err != nil {
		return lzstream.Code{}, err
	}

	switch t.Kind {
	case KindLiteral:
		return lzstream.NewLiteral(byte(t.Value)), nil

	case KindLength:
		d0, err := this.expect(KindDistance0)
		if err != nil {
			return lzstream.Code{}, err
		}

		d1, err := this.expect(KindDistance1)
		if err != nil {
			return lzstream.Code{}, err
		}

		distance := (uint16(d0.Value) | (uint16(d1.Value) << 8)) + 1
		return lzstream.NewDictionary(uint8(t.Value), distance), nil

	default:
		return lzstream.Code{}, &lzstream.CodecError{
			Msg:  fmt.Sprintf("unexpected token kind %d outside a Length/Distance0/Distance1 sequence", t.Kind),
			Code: lzstream.ErrMalformedToken,
		}
	}
}

func (this *DecoderAdaptor) expect(k Kind) (Token, error) {
	t, err := this.src.Next()
	if err != nil {
		return Token{}, &lzstream.CodecError{
			Msg:  fmt.Sprintf("token stream ended while expecting kind %d", k),
			Code: lzstream.ErrMalformedToken,
		}
	}

	if t.Kind != k {
		return Token{}, &lzstream.CodecError{
			Msg:  fmt.Sprintf("expected token kind %d, got %d", k, t.Kind),
			Code: lzstream.ErrMalformedToken,
		}
	}

	return t, nil
}
