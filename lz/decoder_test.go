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
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lzstream/lzstream"
)

// codeSliceSource adapts a slice of codes into an lzstream.CodeSource for
// tests that want to drive the Decoder directly.
type codeSliceSource struct {
	codes []lzstream.Code
	pos   int
}

func (this *codeSliceSource) Next() (lzstream.Code, error) {
	if this.pos >= len(this.codes) {
		return lzstream.Code{}, io.EOF
	}

	c := this.codes[this.pos]
	this.pos++
	return c, nil
}

func TestDecoderOverlapDistanceOne(t *testing.T) {
	src := &codeSliceSource{codes: []lzstream.Code{
		lzstream.NewLiteral(0x61),
		lzstream.NewDictionary(7, 1),
	}}

	dec := NewDecoder(src)
	out, err := io.ReadAll(dec)

	require.NoError(t, err)
	require.Len(t, out, 11)

	for _, b := range out {
		require.Equal(t, byte(0x61), b)
	}
}

func TestDecoderOverlapRepeatedRun(t *testing.T) {
	src := &codeSliceSource{codes: []lzstream.Code{
		lzstream.NewLiteral(0x61),
		lzstream.NewDictionary(17-3, 1),
	}}

	dec := NewDecoder(src)
	out, err := io.ReadAll(dec)

	require.NoError(t, err)
	require.Len(t, out, 18)

	for _, b := range out {
		require.Equal(t, byte(0x61), b)
	}
}

func TestDecoderLiteralsAndBackReference(t *testing.T) {
	src := &codeSliceSource{codes: []lzstream.Code{
		lzstream.NewLiteral(0),
		lzstream.NewLiteral(1),
		lzstream.NewLiteral(2),
		lzstream.NewLiteral(3),
		lzstream.NewLiteral(4),
		lzstream.NewLiteral(5),
		lzstream.NewLiteral(0),
		lzstream.NewDictionary(2, 6),
	}}

	dec := NewDecoder(src)
	out, err := io.ReadAll(dec)

	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5}, out)
}

func TestDecoderInvalidDistanceZero(t *testing.T) {
	src := &codeSliceSource{codes: []lzstream.Code{
		lzstream.NewLiteral(0x61),
		lzstream.NewDictionary(0, 0),
	}}

	dec := NewDecoder(src)
	_, err := io.ReadAll(dec)

	require.Error(t, err)

	var codecErr *lzstream.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, lzstream.ErrInvalidCode, codecErr.Code)
}

func TestDecoderInvalidDistanceTooLarge(t *testing.T) {
	src := &codeSliceSource{codes: []lzstream.Code{
		lzstream.NewLiteral(0x61),
		lzstream.NewDictionary(0, 100),
	}}

	dec := NewDecoder(src)
	_, err := io.ReadAll(dec)

	require.Error(t, err)
}

func TestDecoderCompactionAcrossLongRun(t *testing.T) {
	var events []EventType

	listener := listenerFunc(func(evt *Event) {
		events = append(events, evt.Type())
	})

	codes := []lzstream.Code{lzstream.NewLiteral(0x41)}

	for i := 0; i < 4000; i++ {
		codes = append(codes, lzstream.NewDictionary(255-3, 1))
	}

	src := &codeSliceSource{codes: codes}
	dec := NewDecoder(src, WithListener(listener))

	n := int64(0)
	buf := make([]byte, 4096)

	for {
		m, err := dec.Read(buf)
		n += int64(m)

		for _, b := range buf[:m] {
			require.Equal(t, byte(0x41), b)
		}

		if err == io.EOF {
			break
		}

		require.NoError(t, err)
	}

	require.Equal(t, int64(1+4000*255), n)
	require.NotEmpty(t, events, "a long run must trigger at least one compaction")
}

type listenerFunc func(*Event)

func (this listenerFunc) ProcessEvent(evt *Event) {
	this(evt)
}
