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

	"github.com/go-lzstream/lzstream/lz"
)

type config struct {
	listener    lz.Listener
	ctx         context.Context
	maxAttempts int
}

// Option configures the batch functions and the streaming Reader/Writer.
type Option func(*config)

// WithListener attaches a progress lz.Listener.
func WithListener(l lz.Listener) Option {
	return func(c *config) {
		c.listener = l
	}
}

// WithContext attaches a context.Context that Reader.Read and Writer.Write
// check on entry: once it is cancelled they return its error. A call that
// is already blocked is not interrupted.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithMaxAttempts overrides the encoder's hash-chain walk depth.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

func newConfig(opts []Option) config {
	cfg := config{ctx: context.Background(), maxAttempts: lz.DefaultMaxAttempts}

	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
