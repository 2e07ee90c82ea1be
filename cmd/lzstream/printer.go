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

package main

import (
	"fmt"
	"io"

	"github.com/go-lzstream/lzstream/lz"
)

// printer is a verbose progress Listener that writes one line per event
// to the process's stderr, in the CSV-ish shape kanzi-go's InfoPrinter
// uses for block events.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// ProcessEvent implements lz.Listener.
func (this *printer) ProcessEvent(evt *lz.Event) {
	fmt.Fprintf(this.w, "%v,%d,%s\n", evt.Type(), evt.Size(), evt.Msg())
}
