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

// Package ast defines types for modeling the AST (Abstract Syntax Tree)
// of a boolean function expression.
//
// A tree has exactly two kinds of nodes: a *VariableNode is a named leaf
// and a *CallNode is a function invocation with an ordered, non-empty
// list of argument subtrees. Every node exclusively owns its children;
// trees are acyclic values with no shared subtrees, so they are safe to
// deep-copy with Clone and safe to compare with Equal.
//
// Creation of AST nodes should use the factory functions in this package
// instead of struct literals.
package ast
