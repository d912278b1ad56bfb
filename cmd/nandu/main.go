// Copyright 2024-2026 The Nandu Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command nandu translates boolean function expressions into equivalent
// Nand-only expressions.
//
// Each command line argument is translated as one expression; with no
// arguments, all of standard input is read as a single expression.
// Results are written to standard output, one line per expression. On
// error a message is written to standard error and the process exits
// with status 1.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nandu-lang/nandu"
	"github.com/nandu-lang/nandu/reporter"
)

// an advisory ceiling, not a limit; the host controls real bounds
const warnNodeCount = 1 << 20

func main() {
	exprs := os.Args[1:]
	if len(exprs) == 0 {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read standard input: %v\n", err)
			os.Exit(1)
		}
		exprs = []string{string(input)}
	}

	t := &nandu.Translator{
		Reporter: reporter.NewReporter(nil, func(warning reporter.ErrorWithPos) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", warning.Unwrap())
		}),
		WarnNodeCount: warnNodeCount,
	}
	results, err := t.Translate(context.Background(), exprs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, res := range results {
		fmt.Println(res)
	}
}
