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

package parser

import (
	"fmt"

	"github.com/nandu-lang/nandu/ast"
)

// LexError indicates that the input contained a character that cannot
// begin any token.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Pos locates the character in the input.
	Pos ast.SourcePos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos.Offset)
}

// ParseError indicates that the token sequence violated the grammar. It
// covers a missing "(", a missing ")", a missing delimiter between
// arguments, an empty argument list, an unexpected end of input, and
// trailing tokens after a complete expression.
type ParseError struct {
	// Expected describes what the grammar required at this point.
	Expected string
	// Found is the token actually encountered.
	Found Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found.describe())
}
