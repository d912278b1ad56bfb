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

package gate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nandu-lang/nandu/ast"
)

// PrimitiveName is the identifier of the single primitive gate that all
// lowered expressions are expressed in terms of.
const PrimitiveName = "Nand"

// PrimitiveArity is the primitive gate's argument count.
const PrimitiveArity = 2

// placeholderPrefix begins the name of every placeholder variable in a
// template body. Placeholders can never collide with user input because
// substitution scans only template bodies, never argument trees.
const placeholderPrefix = "param"

// Param returns the placeholder variable for the template parameter at
// the given zero-based position.
func Param(i int) *ast.VariableNode {
	return ast.NewVariableNode(placeholderPrefix + strconv.Itoa(i))
}

func paramIndex(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, placeholderPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Template is one gate's Nand-only equivalent, parameterized by
// positional placeholders. Templates are immutable.
type Template struct {
	name  string
	arity int
	body  ast.Node
}

// Name returns the gate's identifier, e.g. "And".
func (t *Template) Name() string {
	return t.name
}

// Arity returns the exact number of arguments the gate requires.
func (t *Template) Arity() int {
	return t.arity
}

// CheckArity returns an *ArityMismatchError if got differs from the
// gate's recorded arity.
func (t *Template) CheckArity(got int) error {
	if got != t.arity {
		return &ArityMismatchError{Name: t.name, Expected: t.arity, Got: got}
	}
	return nil
}

// Instantiate produces the template's body with every placeholder
// occurrence replaced by a deep copy of the corresponding argument. The
// arguments themselves are never modified.
func (t *Template) Instantiate(args ...ast.Node) (ast.Node, error) {
	if err := t.CheckArity(len(args)); err != nil {
		return nil, err
	}
	return substitute(t.body, args), nil
}

func substitute(body ast.Node, args []ast.Node) ast.Node {
	switch n := body.(type) {
	case *ast.VariableNode:
		if i, ok := paramIndex(n.Name); ok {
			return ast.Clone(args[i])
		}
		return ast.Clone(n)
	case *ast.CallNode:
		children := make([]ast.Node, len(n.Args))
		for i, arg := range n.Args {
			children[i] = substitute(arg, args)
		}
		return ast.NewCallNode(n.Func, children...)
	default:
		panic(fmt.Sprintf("unexpected AST node type %T", n))
	}
}

// Library is a read-only, case-sensitive lookup from function name to
// gate template.
type Library struct {
	gates map[string]*Template
}

// Lookup resolves a function name, returning an *UnknownFunctionError if
// the name is absent.
func (lib *Library) Lookup(name string) (*Template, error) {
	t, ok := lib.gates[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name}
	}
	return t, nil
}

// Names returns the names of all registered gates in sorted order.
func (lib *Library) Names() []string {
	names := make([]string, 0, len(lib.gates))
	for name := range lib.gates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtins = newBuiltins()

// Builtins returns the process-wide library of built-in gates: Not, And,
// Or, Xor, and the primitive Nand itself. The library is constant for
// the lifetime of the process.
func Builtins() *Library {
	return builtins
}

func newBuiltins() *Library {
	nand := func(a, b ast.Node) ast.Node {
		return ast.NewCallNode(PrimitiveName, a, b)
	}
	// Xor(a, b) = And(Nand(a, b), Or(a, b)), expanded to Nand-only form
	// so instantiation never needs a second lowering pass. The two halves
	// must be built independently: a template body shares no subtrees.
	xorHalf := func() ast.Node {
		return nand(
			nand(Param(0), Param(1)),
			nand(nand(Param(0), Param(0)), nand(Param(1), Param(1))),
		)
	}

	lib := &Library{gates: map[string]*Template{}}
	for _, t := range []*Template{
		{
			name:  "Not",
			arity: 1,
			body:  nand(Param(0), Param(0)),
		},
		{
			name:  "And",
			arity: 2,
			body: nand(
				nand(Param(0), Param(1)),
				nand(Param(0), Param(1)),
			),
		},
		{
			name:  "Or",
			arity: 2,
			body: nand(
				nand(Param(0), Param(0)),
				nand(Param(1), Param(1)),
			),
		},
		{
			name:  "Xor",
			arity: 2,
			body:  nand(xorHalf(), xorHalf()),
		},
		{
			name:  PrimitiveName,
			arity: PrimitiveArity,
			body:  nand(Param(0), Param(1)),
		},
	} {
		if err := validateTemplate(t); err != nil {
			panic(fmt.Sprintf("gate: invalid builtin template %q: %v", t.name, err))
		}
		lib.gates[t.name] = t
	}
	return lib
}

// validateTemplate enforces the library's internal consistency
// invariants: the body mentions exactly the placeholders the recorded
// arity implies and contains no call other than the primitive.
func validateTemplate(t *Template) error {
	seen := make([]bool, t.arity)
	if err := validateBody(t.body, seen); err != nil {
		return err
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("parameter %d is never referenced", i)
		}
	}
	return nil
}

func validateBody(n ast.Node, seen []bool) error {
	switch n := n.(type) {
	case *ast.VariableNode:
		i, ok := paramIndex(n.Name)
		if !ok {
			return fmt.Errorf("body references non-placeholder variable %q", n.Name)
		}
		if i < 0 || i >= len(seen) {
			return fmt.Errorf("placeholder %d out of range for arity %d", i, len(seen))
		}
		seen[i] = true
		return nil
	case *ast.CallNode:
		if n.Func != PrimitiveName {
			return fmt.Errorf("body calls non-primitive function %q", n.Func)
		}
		if len(n.Args) != PrimitiveArity {
			return fmt.Errorf("body calls %s with %d arguments", PrimitiveName, len(n.Args))
		}
		for _, arg := range n.Args {
			if err := validateBody(arg, seen); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unexpected AST node type %T", n)
	}
}
