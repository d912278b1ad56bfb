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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-lang/nandu/reporter"
)

func TestLexer(t *testing.T) {
	handler := reporter.NewHandler(nil)
	l := newLexer("Xor(foo,\n\tNot( bar_baz ), x1)", handler)

	expected := []struct {
		kind      TokenKind
		text      string
		line, col int
		offset    int
	}{
		{kind: TokenFuncIdent, text: "Xor", line: 1, col: 1, offset: 0},
		{kind: TokenLeftParen, text: "(", line: 1, col: 4, offset: 3},
		{kind: TokenVarIdent, text: "foo", line: 1, col: 5, offset: 4},
		{kind: TokenComma, text: ",", line: 1, col: 8, offset: 7},
		{kind: TokenFuncIdent, text: "Not", line: 2, col: 2, offset: 10},
		{kind: TokenLeftParen, text: "(", line: 2, col: 5, offset: 13},
		{kind: TokenVarIdent, text: "bar_baz", line: 2, col: 7, offset: 15},
		{kind: TokenRightParen, text: ")", line: 2, col: 15, offset: 23},
		{kind: TokenComma, text: ",", line: 2, col: 16, offset: 24},
		{kind: TokenVarIdent, text: "x1", line: 2, col: 18, offset: 26},
		{kind: TokenRightParen, text: ")", line: 2, col: 20, offset: 28},
	}
	for i, exp := range expected {
		tok, err := l.Lex()
		require.NoError(t, err, "token #%d", i)
		assert.Equal(t, exp.kind, tok.Kind, "token #%d kind", i)
		assert.Equal(t, exp.text, tok.Text, "token #%d text", i)
		assert.Equal(t, exp.line, tok.Pos.Line, "token #%d line", i)
		assert.Equal(t, exp.col, tok.Pos.Col, "token #%d col", i)
		assert.Equal(t, exp.offset, tok.Pos.Offset, "token #%d offset", i)
	}

	// the lexer keeps returning EOF once the input is exhausted
	for i := 0; i < 2; i++ {
		tok, err := l.Lex()
		require.NoError(t, err)
		assert.Equal(t, TokenEOF, tok.Kind)
	}
	assert.NoError(t, handler.Error())
}

func TestLexerFunctionClassification(t *testing.T) {
	// an identifier run is a function only when "(" immediately follows
	testCases := map[string]TokenKind{
		"And(":  TokenFuncIdent,
		"And (": TokenVarIdent,
		"And":   TokenVarIdent,
		"and(":  TokenFuncIdent,
	}
	for input, kind := range testCases {
		l := newLexer(input, reporter.NewHandler(nil))
		tok, err := l.Lex()
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, kind, tok.Kind, "input %q", input)
	}
}

func TestLexerErrors(t *testing.T) {
	testCases := map[string]struct {
		input  string
		char   rune
		offset int
	}{
		"ampersand":    {input: "And(a & b)", char: '&', offset: 6},
		"leading-junk": {input: "!And(a, b)", char: '!', offset: 0},
		"digit-start":  {input: "And(0a, b)", char: '0', offset: 4},
		"dollar":       {input: "Or($a, b)", char: '$', offset: 3},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			handler := reporter.NewHandler(nil)
			l := newLexer(tc.input, handler)
			var lexErr *LexError
			for {
				_, err := l.Lex()
				if err != nil {
					require.ErrorAs(t, err, &lexErr)
					break
				}
			}
			assert.Equal(t, tc.char, lexErr.Char)
			assert.Equal(t, tc.offset, lexErr.Pos.Offset)
			assert.ErrorContains(t, handler.Error(), "unexpected character")

			var ewp reporter.ErrorWithPos
			require.True(t, errors.As(handler.Error(), &ewp))
			assert.Equal(t, tc.offset, ewp.GetPosition().Offset)
		})
	}
}
