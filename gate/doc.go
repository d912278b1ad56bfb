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

// Package gate defines the library of built-in boolean gates and the
// Nand-only template each one lowers to.
//
// A template's body is expressed over positional placeholder variables.
// Instantiating a template substitutes a deep copy of the corresponding
// argument subtree for every placeholder occurrence independently; a
// template that mentions a placeholder twice duplicates that argument's
// subtree. This duplication is the source of the exponential size growth
// of lowered expressions and is intentional: the output grammar has no
// construct for shared subexpressions.
//
// The library is immutable once constructed, so it is safe to share one
// library across any number of concurrent translations.
package gate
