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

// Package nandu translates boolean function expressions into equivalent
// expressions built exclusively from the two-input Nand gate.
//
// Translation of one expression involves four steps:
//  1. Lexing the input into a token sequence.
//  2. Parsing the tokens into an AST (abstract syntax tree).
//  3. Lowering the AST so every call is a call of Nand, substituting
//     each non-primitive call's arguments into that gate's template.
//  4. Rendering the lowered AST back to text.
//
// The one-shot Translate function runs the pipeline on a single
// expression. A Translator runs it on a batch of expressions
// concurrently; this is safe because the gate library is immutable and
// each expression's trees are private to its own translation.
//
// Lowered expressions can be exponentially larger than their input,
// because substituting an argument into a template duplicates the
// argument's subtree once per placeholder occurrence. This growth is an
// intentional, observable property of the output language, which has no
// way to express shared subexpressions.
package nandu
