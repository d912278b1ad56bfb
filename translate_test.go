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

package nandu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-lang/nandu"
	"github.com/nandu-lang/nandu/gate"
	"github.com/nandu-lang/nandu/parser"
	"github.com/nandu-lang/nandu/reporter"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input    string
		expected string
	}{
		"and":  {input: "And(a, b)", expected: "Nand(Nand(a, b), Nand(a, b))"},
		"not":  {input: "Not(a)", expected: "Nand(a, a)"},
		"or":   {input: "Or(a, b)", expected: "Nand(Nand(a, a), Nand(b, b))"},
		"nand": {input: "Nand(a, b)", expected: "Nand(a, b)"},
		"multiline": {
			input:    "And(\n  a,\n  b\n)",
			expected: "Nand(Nand(a, b), Nand(a, b))",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			res, err := nandu.Translate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)

			// translation is idempotent: the output is already Nand-only
			again, err := nandu.Translate(res)
			require.NoError(t, err)
			assert.Equal(t, res, again)
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	t.Parallel()

	t.Run("parse-error", func(t *testing.T) {
		_, err := nandu.Translate("And(a")
		var parseErr *parser.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
	t.Run("lex-error", func(t *testing.T) {
		_, err := nandu.Translate("And(a | b)")
		var lexErr *parser.LexError
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, '|', lexErr.Char)
	})
	t.Run("unknown-function", func(t *testing.T) {
		_, err := nandu.Translate("Foo(a, b)")
		var unknownErr *gate.UnknownFunctionError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "Foo", unknownErr.Name)
	})
	t.Run("arity-mismatch", func(t *testing.T) {
		_, err := nandu.Translate("Not(a, b)")
		var arityErr *gate.ArityMismatchError
		require.ErrorAs(t, err, &arityErr)
		assert.Equal(t, "Not", arityErr.Name)
		assert.Equal(t, 1, arityErr.Expected)
		assert.Equal(t, 2, arityErr.Got)
	})
}

func TestTranslatorBatch(t *testing.T) {
	t.Parallel()

	exprs := []string{
		"And(a, b)",
		"Not(a)",
		"Or(a, b)",
		"Nand(a, b)",
		"And(a, b)", // duplicates are translated once but reported per slot
	}
	tr := &nandu.Translator{MaxParallelism: 2}
	results, err := tr.Translate(context.Background(), exprs...)
	require.NoError(t, err)
	require.Len(t, results, len(exprs))
	assert.Equal(t, []string{
		"Nand(Nand(a, b), Nand(a, b))",
		"Nand(a, a)",
		"Nand(Nand(a, a), Nand(b, b))",
		"Nand(a, b)",
		"Nand(Nand(a, b), Nand(a, b))",
	}, results)
}

func TestTranslatorEmptyBatch(t *testing.T) {
	t.Parallel()

	results, err := (&nandu.Translator{}).Translate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestTranslatorBatchFailsOnFirstError(t *testing.T) {
	t.Parallel()

	tr := &nandu.Translator{MaxParallelism: 1}
	_, err := tr.Translate(context.Background(),
		"And(a, b)",
		"Foo(a, b)",
		"Or(a, b)")
	var unknownErr *gate.UnknownFunctionError
	require.ErrorAs(t, err, &unknownErr)
}

func TestTranslatorContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&nandu.Translator{}).Translate(ctx, "And(a, b)")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslatorSizeWarning(t *testing.T) {
	t.Parallel()

	var warnings []reporter.ErrorWithPos
	rep := reporter.NewReporter(nil, func(warning reporter.ErrorWithPos) {
		warnings = append(warnings, warning)
	})

	tr := &nandu.Translator{
		MaxParallelism: 1,
		Reporter:       rep,
		WarnNodeCount:  10,
	}
	results, err := tr.Translate(context.Background(), "Xor(a, b)")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Xor(a, b) lowers to 23 nodes, which exceeds the configured limit,
	// but warnings never fail a translation
	require.Len(t, warnings, 1)
	assert.ErrorContains(t, warnings[0], "23 nodes")
}

func TestTranslatorCustomReporterCollectsErrors(t *testing.T) {
	t.Parallel()

	var reported []reporter.ErrorWithPos
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		reported = append(reported, err)
		return nil // swallow, forcing the sentinel
	}, nil)

	tr := &nandu.Translator{MaxParallelism: 1, Reporter: rep}
	_, err := tr.Translate(context.Background(), "Foo(a)")
	require.ErrorIs(t, err, reporter.ErrInvalidExpression)
	require.Len(t, reported, 1)
	assert.ErrorContains(t, reported[0], "unknown function")
}
