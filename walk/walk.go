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

// Package walk provides helpers for traversing expression trees.
package walk

import (
	"fmt"

	"github.com/nandu-lang/nandu/ast"
)

// Nodes visits every node in the tree rooted at n in depth-first
// pre-order. If fn returns a non-nil error, the walk stops and that
// error is returned.
func Nodes(n ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(n, fn, nil)
}

// NodesEnterAndExit visits every node in the tree rooted at n. The enter
// function is invoked before a node's children and the exit function,
// which may be nil, after them. A non-nil error from either stops the
// walk.
func NodesEnterAndExit(n ast.Node, enter, exit func(ast.Node) error) error {
	if err := enter(n); err != nil {
		return err
	}
	if call, ok := n.(*ast.CallNode); ok {
		for _, arg := range call.Args {
			if err := NodesEnterAndExit(arg, enter, exit); err != nil {
				return err
			}
		}
	}
	if exit != nil {
		if err := exit(n); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the total number of nodes in the tree rooted at n. It is
// useful for observing the size growth that lowering causes.
func Count(n ast.Node) int {
	var count int
	err := Nodes(n, func(ast.Node) error {
		count++
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("walk: counting visitor failed: %v", err))
	}
	return count
}

// Depth returns the height of the tree rooted at n; a lone variable has
// depth 1.
func Depth(n ast.Node) int {
	max := 1
	if call, ok := n.(*ast.CallNode); ok {
		for _, arg := range call.Args {
			if d := Depth(arg) + 1; d > max {
				max = d
			}
		}
	}
	return max
}
