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

// TokenKind classifies a lexed token.
type TokenKind int

const (
	// TokenEOF marks the end of the input. Its text is empty.
	TokenEOF TokenKind = iota
	// TokenFuncIdent is an identifier immediately followed by "(".
	TokenFuncIdent
	// TokenVarIdent is an identifier not followed by "(".
	TokenVarIdent
	// TokenLeftParen is a single "(".
	TokenLeftParen
	// TokenRightParen is a single ")".
	TokenRightParen
	// TokenComma is the argument delimiter.
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenFuncIdent:
		return "function identifier"
	case TokenVarIdent:
		return "variable identifier"
	case TokenLeftParen:
		return `"("`
	case TokenRightParen:
		return `")"`
	case TokenComma:
		return `","`
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a single lexed token. Text is the token's raw text for
// identifiers and the punctuation character otherwise.
type Token struct {
	Kind TokenKind
	Text string
	Pos  ast.SourcePos
}

// describe renders the token the way error messages refer to it, e.g.
// `function "And"` or `")"`.
func (t Token) describe() string {
	switch t.Kind {
	case TokenFuncIdent:
		return fmt.Sprintf("function %q", t.Text)
	case TokenVarIdent:
		return fmt.Sprintf("variable %q", t.Text)
	default:
		return t.Kind.String()
	}
}
