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

// options collects the constructor-time tunables for Encoder and Decoder.
type options struct {
	listener    Listener
	maxAttempts int
}

// Option configures an Encoder or Decoder at construction time.
type Option func(*options)

// WithListener attaches a progress Listener.
func WithListener(l Listener) Option {
	return func(o *options) {
		o.listener = l
	}
}

// WithMaxAttempts overrides the hash-chain walk depth used by the match
// finder (default 1024, per the reference matching engine).
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

// DefaultMaxAttempts is the hash-chain walk depth the reference matching
// engine uses.
const DefaultMaxAttempts = 1024

const defaultMaxAttempts = DefaultMaxAttempts
