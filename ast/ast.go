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

import "fmt"

// Node is the interface implemented by all nodes in the AST. It is
// implemented by *VariableNode and *CallNode only. Consumers of an AST
// will not work correctly if they encounter other implementations.
type Node interface {
	fmt.Stringer

	astNode()
}

// VariableNode represents a named boolean variable. It is always a leaf.
type VariableNode struct {
	// Name is the variable's identifier. Never empty.
	Name string
}

// NewVariableNode creates a new *VariableNode. The given name must not be
// empty.
func NewVariableNode(name string) *VariableNode {
	if name == "" {
		panic("variable name is empty")
	}
	return &VariableNode{Name: name}
}

func (n *VariableNode) String() string {
	return n.Name
}

func (n *VariableNode) astNode() {}

// CallNode represents an invocation of a named boolean function. The
// grammar forbids empty argument lists, so Args always has at least one
// element.
type CallNode struct {
	// Func is the function's identifier. Never empty.
	Func string
	// Args are the ordered argument subtrees, exclusively owned by this
	// node.
	Args []Node
}

// NewCallNode creates a new *CallNode. The given name must not be empty
// and at least one argument must be supplied.
func NewCallNode(name string, args ...Node) *CallNode {
	if name == "" {
		panic("function name is empty")
	}
	if len(args) == 0 {
		panic(fmt.Sprintf("call of %s has no arguments", name))
	}
	return &CallNode{Func: name, Args: args}
}

func (n *CallNode) String() string {
	return Render(n)
}

func (n *CallNode) astNode() {}

// Clone returns a deep copy of the given tree. The copy shares no nodes
// with the original, so either tree can be mutated or discarded without
// affecting the other.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *VariableNode:
		return &VariableNode{Name: n.Name}
	case *CallNode:
		args := make([]Node, len(n.Args))
		for i, arg := range n.Args {
			args[i] = Clone(arg)
		}
		return &CallNode{Func: n.Func, Args: args}
	default:
		panic(fmt.Sprintf("unexpected AST node type %T", n))
	}
}

// Equal reports whether two trees are structurally equal: the same shape
// with the same identifiers at every node.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *VariableNode:
		b, ok := b.(*VariableNode)
		return ok && a.Name == b.Name
	case *CallNode:
		b, ok := b.(*CallNode)
		if !ok || a.Func != b.Func || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unexpected AST node type %T", a))
	}
}
