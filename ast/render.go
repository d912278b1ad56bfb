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

package ast

import (
	"fmt"
	"io"
	"strings"
)

// Render serializes the given tree to the same textual grammar the parser
// accepts, as a single line: variables render as their name and calls
// render as "Name(arg, arg)". Re-parsing the output yields a tree equal
// to the input.
func Render(n Node) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&sb, n)
	return sb.String()
}

// Write serializes the given tree to w in the same format as Render. The
// output can be exponentially larger than the expression it was lowered
// from, so writing to a stream avoids buffering it twice.
func Write(w io.Writer, n Node) error {
	switch n := n.(type) {
	case *VariableNode:
		_, err := io.WriteString(w, n.Name)
		return err
	case *CallNode:
		if _, err := io.WriteString(w, n.Func); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for i, arg := range n.Args {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if err := Write(w, arg); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	default:
		panic(fmt.Sprintf("unexpected AST node type %T", n))
	}
}
