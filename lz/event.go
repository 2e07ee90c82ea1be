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

import "fmt"

// EventType identifies the kind of progress notification fired by an
// Encoder, a Decoder, or a batch run built on top of them.
type EventType int

const (
	// EvtCompaction fires when the decoder slides its ring buffer down.
	EvtCompaction EventType = iota
	// EvtPrune fires when the encoder prunes the hash chain at a window
	// wrap boundary.
	EvtPrune
	// EvtEncodeDone fires once a batch Encode call has drained its
	// source, carrying the number of input bytes consumed.
	EvtEncodeDone
	// EvtDecodeDone fires once a batch Decode call has drained its
	// source, carrying the number of output bytes produced.
	EvtDecodeDone
)

func (this EventType) String() string {
	switch this {
	case EvtCompaction:
		return "COMPACTION"
	case EvtPrune:
		return "PRUNE"
	case EvtEncodeDone:
		return "ENCODE_DONE"
	case EvtDecodeDone:
		return "DECODE_DONE"
	default:
		return "UNKNOWN"
	}
}

// Event is a single progress notification fired synchronously by the
// component it describes. It carries just enough information for a
// verbose logger to print one line per milestone.
type Event struct {
	evtType EventType
	size    int64
	msg     string
}

// NewEvent creates an Event of the given type, size and message.
func NewEvent(evtType EventType, size int64, msg string) *Event {
	return &Event{evtType: evtType, size: size, msg: msg}
}

// Type returns the event's type.
func (this *Event) Type() EventType {
	return this.evtType
}

// Size returns the event's associated size (meaning depends on Type).
func (this *Event) Size() int64 {
	return this.size
}

// Msg returns the event's human-readable message.
func (this *Event) Msg() string {
	return this.msg
}

// String implements fmt.Stringer.
func (this *Event) String() string {
	return fmt.Sprintf("{ \"type\":\"%v\", \"size\":%d, \"msg\":\"%s\" }", this.evtType, this.size, this.msg)
}

// Listener receives Events fired by an Encoder or Decoder. Implementations
// must not block and must not retain the Event pointer past the call.
type Listener interface {
	ProcessEvent(evt *Event)
}
