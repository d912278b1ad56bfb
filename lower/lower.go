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

// Package lower implements the rewriting engine that turns an arbitrary
// parsed expression into an equivalent Nand-only expression.
package lower

import (
	"fmt"

	"github.com/nandu-lang/nandu/ast"
	"github.com/nandu-lang/nandu/gate"
	"github.com/nandu-lang/nandu/walk"
)

// Lower rewrites the tree rooted at n so that the only function
// identifier appearing in the result is the primitive. The rewrite is
// bottom-up: a call's arguments are lowered before the call itself, so a
// template substitution only ever sees already-primitive subtrees.
//
// Lowering a tree already in Nand-only form returns an equal tree and
// never fails. Termination is guaranteed because template bodies are
// finite, acyclic, and themselves Nand-only, so recursion depth is
// bounded by the input tree's depth alone.
//
// The input tree is never modified, but variable leaves are shared with
// the result rather than copied.
func Lower(n ast.Node, lib *gate.Library) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.VariableNode:
		// lowering is the identity on leaves
		return n, nil
	case *ast.CallNode:
		args := make([]ast.Node, len(n.Args))
		for i, arg := range n.Args {
			lowered, err := Lower(arg, lib)
			if err != nil {
				return nil, err
			}
			args[i] = lowered
		}
		tmpl, err := lib.Lookup(n.Func)
		if err != nil {
			return nil, err
		}
		if n.Func == gate.PrimitiveName {
			// already in the target alphabet; only the children needed
			// lowering, but the arity is still enforced
			if err := tmpl.CheckArity(len(args)); err != nil {
				return nil, err
			}
			return ast.NewCallNode(n.Func, args...), nil
		}
		return tmpl.Instantiate(args...)
	default:
		panic(fmt.Sprintf("unexpected AST node type %T", n))
	}
}

// Verify checks the postcondition Lower establishes: every call node in
// the tree rooted at n names the primitive. It returns a descriptive
// error for the first violation found.
func Verify(n ast.Node) error {
	return walk.Nodes(n, func(n ast.Node) error {
		if call, ok := n.(*ast.CallNode); ok && call.Func != gate.PrimitiveName {
			return fmt.Errorf("lowered tree calls non-primitive function %q", call.Func)
		}
		return nil
	})
}
