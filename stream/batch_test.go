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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lzstream/lzstream/lz"
)

type listenerFunc func(*lz.Event)

func (this listenerFunc) ProcessEvent(evt *lz.Event) {
	this(evt)
}

func TestEncodeDecodeEmpty(t *testing.T) {
	tokens, err := Encode(nil)
	require.NoError(t, err)
	require.Empty(t, tokens)

	out, err := Decode(tokens)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(123))
	input := make([]byte, 8000)

	for i := range input {
		if i > 2 && r.Intn(4) == 0 {
			input[i] = input[i-3]
		} else {
			input[i] = byte(r.Intn(16))
		}
	}

	tokens, err := Encode(input)
	require.NoError(t, err)

	out, err := Decode(tokens)
	require.NoError(t, err)

	require.Equal(t, input, out)
}

func TestDeflateWithPreexistingHistory(t *testing.T) {
	input := []byte{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5}

	codes, err := Deflate(input, 6)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	require.Equal(t, byte(0), codes[0].Literal)
	require.Equal(t, uint16(6), codes[1].Distance)
}

// TestEncodeDecodeLargeBuffer round-trips a buffer an order of magnitude
// larger than TestEncodeDecodeRoundTrip, on a wider alphabet with sparser
// repeats, to exercise ring-buffer wraparound and hash-chain pruning more
// than once.
func TestEncodeDecodeLargeBuffer(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	input := make([]byte, 262144)

	for i := range input {
		if i > 8 && r.Intn(6) == 0 {
			input[i] = input[i-8]
		} else {
			input[i] = byte(r.Intn(64))
		}
	}

	tokens, err := Encode(input)
	require.NoError(t, err)

	out, err := Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestEncodeDecodeFireCompletionEvents(t *testing.T) {
	input := []byte{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}

	var encoded []*lz.Event
	tokens, err := Encode(input, WithListener(listenerFunc(func(evt *lz.Event) {
		encoded = append(encoded, evt)
	})))
	require.NoError(t, err)
	require.Len(t, encoded, 1)
	require.Equal(t, lz.EvtEncodeDone, encoded[0].Type())
	require.Equal(t, int64(len(input)), encoded[0].Size())

	var decoded []*lz.Event
	out, err := Decode(tokens, WithListener(listenerFunc(func(evt *lz.Event) {
		decoded = append(decoded, evt)
	})))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, lz.EvtDecodeDone, decoded[0].Type())
	require.Equal(t, int64(len(out)), decoded[0].Size())
}

func TestDeflateTrimsHistoryBeyondMaxDistance(t *testing.T) {
	history := make([]byte, 40000)

	r := rand.New(rand.NewSource(9))
	r.Read(history)

	tail := []byte{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
	input := append(history, tail...)

	codes, err := Deflate(input, len(history))
	require.NoError(t, err)
	require.NotEmpty(t, codes)
}
