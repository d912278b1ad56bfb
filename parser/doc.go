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

// Package parser contains the lexer and recursive descent parser that
// turn an input expression into an AST.
//
// The grammar, which is not left-recursive, is:
//
//	F       ::= FuncIdent "(" ArgList ")"
//	ArgList ::= Arg ("," Arg)*
//	Arg     ::= VarIdent | F
//
// FuncIdent and VarIdent are both identifier runs; a run immediately
// followed by "(" is a FuncIdent, any other run is a VarIdent.
// Whitespace between tokens is insignificant.
//
// Errors found while parsing are reported through a reporter.Handler and
// parsing stops at the first one: the pipeline never attempts recovery
// or partial results.
package parser
