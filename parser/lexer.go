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
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nandu-lang/nandu/ast"
	"github.com/nandu-lang/nandu/reporter"
)

type runeReader struct {
	data string
	pos  int
	err  error
	mark int
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.err != nil {
		return 0, 0, rr.err
	}
	if rr.pos == len(rr.data) {
		rr.err = io.EOF
		return 0, 0, rr.err
	}
	r, sz := utf8.DecodeRuneInString(rr.data[rr.pos:])
	if r == utf8.RuneError && sz == 1 {
		rr.err = fmt.Errorf("invalid UTF8 at offset %d: %x", rr.pos, rr.data[rr.pos])
		return 0, 0, rr.err
	}
	rr.pos += sz
	return r, sz, nil
}

func (rr *runeReader) offset() int {
	return rr.pos
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return rr.data[rr.mark:rr.pos]
}

// exprLex scans an input expression left to right, producing one Token
// per call to Lex. Whitespace carries no meaning and is skipped. After
// the input is exhausted, Lex returns a TokenEOF token forever.
type exprLex struct {
	input   *runeReader
	handler *reporter.Handler

	// line/col bookkeeping; line is zero-based until pos() converts it
	line       int
	lineOffset int
}

func newLexer(input string, handler *reporter.Handler) *exprLex {
	return &exprLex{
		input:   &runeReader{data: input},
		handler: handler,
	}
}

// pos computes the position of the current token's first character,
// which the runeReader has marked.
func (l *exprLex) pos() ast.SourcePos {
	return ast.SourcePos{
		Offset: l.input.mark,
		Line:   l.line + 1,
		Col:    l.input.mark - l.lineOffset + 1,
	}
}

func (l *exprLex) maybeNewLine(r rune) {
	if r == '\n' {
		l.line++
		l.lineOffset = l.input.offset()
	}
}

func (l *exprLex) Lex() (Token, error) {
	for {
		l.input.setMark()

		c, _, err := l.input.readRune()
		if err == io.EOF {
			return Token{Kind: TokenEOF, Pos: l.pos()}, nil
		} else if err != nil {
			return Token{}, l.addSourceError(l.pos(), err)
		}

		if strings.ContainsRune("\n\r\t\f\v ", c) {
			// skip whitespace
			l.maybeNewLine(c)
			continue
		}

		switch c {
		case '(':
			return l.newToken(TokenLeftParen), nil
		case ')':
			return l.newToken(TokenRightParen), nil
		case ',':
			return l.newToken(TokenComma), nil
		}

		if isIdentStart(c) {
			l.readIdentifier()
			// an identifier run immediately followed by "(" names a
			// function; any other run names a variable
			if l.input.pos < len(l.input.data) && l.input.data[l.input.pos] == '(' {
				return l.newToken(TokenFuncIdent), nil
			}
			return l.newToken(TokenVarIdent), nil
		}

		pos := l.pos()
		return Token{}, l.addSourceError(pos, &LexError{Char: c, Pos: pos})
	}
}

func (l *exprLex) newToken(kind TokenKind) Token {
	return Token{Kind: kind, Text: l.input.getMark(), Pos: l.pos()}
}

func (l *exprLex) readIdentifier() {
	for {
		c, sz, err := l.input.readRune()
		if err != nil {
			break
		}
		if !isIdentPart(c) {
			l.input.unreadRune(sz)
			break
		}
	}
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '_'
}

func (l *exprLex) addSourceError(pos ast.SourcePos, err error) error {
	ewp, ok := err.(reporter.ErrorWithPos)
	if !ok {
		ewp = reporter.Error(pos, err)
	}
	if herr := l.handler.HandleError(ewp); herr != nil {
		return herr
	}
	return ewp
}
