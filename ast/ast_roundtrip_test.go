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

package ast_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-lang/nandu/ast"
	"github.com/nandu-lang/nandu/parser"
	"github.com/nandu-lang/nandu/reporter"
)

func TestRenderParseRoundTrip(t *testing.T) {
	trees := map[string]ast.Node{
		"call": ast.NewCallNode("Not", ast.NewVariableNode("a")),
		"nested": ast.NewCallNode("And",
			ast.NewVariableNode("a"),
			ast.NewCallNode("Or",
				ast.NewVariableNode("b"),
				ast.NewCallNode("Xor",
					ast.NewVariableNode("c"),
					ast.NewVariableNode("d")))),
		"nand-only": ast.NewCallNode("Nand",
			ast.NewCallNode("Nand",
				ast.NewVariableNode("a"),
				ast.NewVariableNode("a")),
			ast.NewCallNode("Nand",
				ast.NewVariableNode("b"),
				ast.NewVariableNode("b"))),
		"many-args": ast.NewCallNode("And",
			ast.NewVariableNode("a"),
			ast.NewVariableNode("b"),
			ast.NewVariableNode("c"),
			ast.NewVariableNode("d")),
	}
	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			rendered := ast.Render(tree)
			assert.NotContains(t, rendered, "\n", "output is always a single line")

			reparsed, err := parser.Parse(rendered, reporter.NewHandler(nil))
			require.NoError(t, err)
			assert.True(t, ast.Equal(tree, reparsed), "round trip differs:\n%s", cmp.Diff(tree, reparsed))
			assert.Equal(t, rendered, ast.Render(reparsed))
		})
	}
}

func TestWriteMatchesRender(t *testing.T) {
	tree := ast.NewCallNode("And",
		ast.NewVariableNode("a"),
		ast.NewCallNode("Not", ast.NewVariableNode("b")))
	var sb strings.Builder
	require.NoError(t, ast.Write(&sb, tree))
	assert.Equal(t, ast.Render(tree), sb.String())
}
