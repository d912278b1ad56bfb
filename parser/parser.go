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
	"github.com/nandu-lang/nandu/ast"
	"github.com/nandu-lang/nandu/reporter"
)

// Parse parses the given input expression and returns its AST. Errors
// encountered while lexing or parsing are reported through the given
// handler; parsing stops at the first one. The returned error is nil if
// and only if the returned node is the root of a complete expression and
// no tokens remained after it.
func Parse(input string, handler *reporter.Handler) (ast.Node, error) {
	p := &exprParser{
		lx:      newLexer(input, handler),
		handler: handler,
	}
	if err := p.advance(); err != nil {
		return nil, handler.Error()
	}
	root, err := p.parseCall()
	if err != nil {
		return nil, handler.Error()
	}
	if p.cur.Kind != TokenEOF {
		// a complete expression must consume the whole input
		_ = p.errExpected("end of input")
		return nil, handler.Error()
	}
	return root, handler.Error()
}

// exprParser is a recursive descent parser with a single token of
// lookahead, held in cur.
type exprParser struct {
	lx      *exprLex
	handler *reporter.Handler
	cur     Token
}

func (p *exprParser) advance() error {
	tok, err := p.lx.Lex()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseCall handles the production F ::= FuncIdent "(" ArgList ")".
func (p *exprParser) parseCall() (ast.Node, error) {
	if p.cur.Kind != TokenFuncIdent {
		return nil, p.errExpected("function identifier")
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenLeftParen {
		return nil, p.errExpected(`"("`)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	// ArgList ::= Arg ("," Arg)*; empty argument lists are invalid
	var args []ast.Node
	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Kind != TokenComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Kind != TokenRightParen {
		return nil, p.errExpected(`"," or ")"`)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewCallNode(name, args...), nil
}

// parseArg handles the production Arg ::= VarIdent | F.
func (p *exprParser) parseArg() (ast.Node, error) {
	switch p.cur.Kind {
	case TokenVarIdent:
		arg := ast.NewVariableNode(p.cur.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return arg, nil
	case TokenFuncIdent:
		return p.parseCall()
	default:
		return nil, p.errExpected("argument")
	}
}

// errExpected reports a grammar violation at the lookahead token and
// returns a non-nil error so that parsing unwinds immediately, even when
// the configured reporter chooses to swallow the reported error.
func (p *exprParser) errExpected(expected string) error {
	ewp := reporter.Error(p.cur.Pos, &ParseError{Expected: expected, Found: p.cur})
	if err := p.handler.HandleError(ewp); err != nil {
		return err
	}
	return ewp
}
