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

// Command lzstream is the CLI front-end for the lzstream codec: it wires
// stdin/stdout to the streaming encoder and decoder and renders the token
// stream as newline-separated decimal ASCII.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/go-lzstream/lzstream"
	"github.com/go-lzstream/lzstream/lz"
	"github.com/go-lzstream/lzstream/token"
)

const appHeader = "lzstream - LZ77 matching engine CLI"

func main() {
	app := &cli.App{
		Name:  "lzstream",
		Usage: appHeader,
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "lzstream:", err)
		os.Exit(exitCodeFor(err))
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "read raw bytes from stdin, write decimal-ASCII tokens (one per line) to stdout",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Action: func(c *cli.Context) error {
			var listener lz.Listener
			if c.Bool("verbose") {
				listener = newPrinter(os.Stderr)
			}

			enc := lz.NewEncoder(os.Stdin, lz.WithListener(listener))
			adaptor := token.NewEncoderAdaptor(enc)

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			for {
				t, err := adaptor.Next()
				if err == io.EOF {
					return nil
				}

				if err != nil {
					return err
				}

				if _, err := fmt.Fprintln(out, t.Uint16()); err != nil {
					return &lzstream.CodecError{Msg: err.Error(), Code: lzstream.ErrSinkIO}
				}
			}
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "read decimal-ASCII tokens (one per line) from stdin, write raw bytes to stdout",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Action: func(c *cli.Context) error {
			var listener lz.Listener
			if c.Bool("verbose") {
				listener = newPrinter(os.Stderr)
			}

			src := &lineTokenSource{in: bufio.NewScanner(os.Stdin)}
			adaptor := token.NewDecoderAdaptor(src)
			dec := lz.NewDecoder(adaptor, lz.WithListener(listener))

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			if _, err := io.Copy(out, dec); err != nil {
				if _, ok := err.(*lzstream.CodecError); ok {
					return err
				}

				// Every decode-side failure is already a CodecError, so
				// anything else came from writing to stdout.
				return &lzstream.CodecError{Msg: err.Error(), Code: lzstream.ErrSinkIO}
			}

			return nil
		},
	}
}

// lineTokenSource parses one decimal-ASCII token per newline-delimited
// line of stdin.
type lineTokenSource struct {
	in *bufio.Scanner
}

func (this *lineTokenSource) Next() (token.Token, error) {
	if !this.in.Scan() {
		if err := this.in.Err(); err != nil {
			return token.Token{}, &lzstream.CodecError{Msg: err.Error(), Code: lzstream.ErrSourceIO}
		}

		return token.Token{}, io.EOF
	}

	n, err := strconv.ParseUint(this.in.Text(), 10, 16)
	if err != nil {
		return token.Token{}, &lzstream.CodecError{
			Msg:  fmt.Sprintf("malformed token line %q: %v", this.in.Text(), err),
			Code: lzstream.ErrTokenRange,
		}
	}

	return token.FromUint16(uint16(n))
}

func exitCodeFor(err error) int {
	if e, ok := err.(*lzstream.CodecError); ok {
		return e.Code
	}

	return 1
}
