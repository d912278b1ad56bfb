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

package nandu

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/nandu-lang/nandu/ast"
	"github.com/nandu-lang/nandu/gate"
	"github.com/nandu-lang/nandu/lower"
	"github.com/nandu-lang/nandu/parser"
	"github.com/nandu-lang/nandu/reporter"
	"github.com/nandu-lang/nandu/walk"
)

// Translate translates a single expression into its Nand-only
// equivalent. It is shorthand for using a zero-value Translator.
func Translate(input string) (string, error) {
	results, err := (&Translator{}).Translate(context.Background(), input)
	if err != nil {
		return "", err
	}
	return results[0], nil
}

// Translator translates batches of expressions. The zero value is ready
// to use and a single Translator may be used from multiple goroutines.
type Translator struct {
	// The maximum parallelism to use when translating a batch. If
	// unspecified or set to a non-positive value, then
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified, a default
	// reporter is used that fails the batch on the first error and
	// ignores all warnings.
	Reporter reporter.Reporter
	// The gate library to lower with. If nil, gate.Builtins() is used.
	Gates *gate.Library
	// If positive, a warning is reported for every lowered expression
	// containing more than this many AST nodes. Lowering is exponential
	// in nesting depth, so hosting processes that care about output size
	// can use this as an early signal.
	WarnNodeCount int
}

// Translate translates the given expressions and returns the rendered
// Nand-only form of each, in the same order. Translation of distinct
// expressions proceeds concurrently, bounded by MaxParallelism; since
// the pipeline is a pure function, duplicate expressions in the batch
// are translated only once.
func (t *Translator) Translate(ctx context.Context, exprs ...string) ([]string, error) {
	if len(exprs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := t.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	gates := t.Gates
	if gates == nil {
		gates = gate.Builtins()
	}

	e := executor{
		t:       t,
		h:       reporter.NewHandler(t.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		gates:   gates,
		results: map[string]*result{},
	}

	results := make([]*result, len(exprs))
	for i, expr := range exprs {
		results[i] = e.translate(ctx, expr)
	}

	out := make([]string, len(exprs))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.res
	}

	return out, nil
}

type result struct {
	ready chan struct{}
	res   string
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(res string) {
	r.res = res
	close(r.ready)
}

// executor runs the translations of one batch. Its semaphore limits the
// number of concurrently running translations.
type executor struct {
	t     *Translator
	h     *reporter.Handler
	s     *semaphore.Weighted
	gates *gate.Library

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) translate(ctx context.Context, expr string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[expr]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[expr] = r
	go func() {
		e.doTranslate(ctx, expr, r)
	}()
	return r
}

func (e *executor) doTranslate(ctx context.Context, expr string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	root, err := parser.Parse(expr, e.h)
	if err != nil {
		r.fail(err)
		return
	}

	lowered, err := lower.Lower(root, e.gates)
	if err != nil {
		// lowering errors carry no source position; the offending
		// function name and arity are in the error itself
		if herr := e.h.HandleError(reporter.Error(ast.UnknownPos(), err)); herr != nil {
			r.fail(herr)
		} else {
			r.fail(e.h.Error())
		}
		return
	}

	if limit := e.t.WarnNodeCount; limit > 0 {
		if count := walk.Count(lowered); count > limit {
			e.h.HandleWarning(ast.UnknownPos(),
				fmt.Errorf("lowered expression contains %d nodes (limit %d)", count, limit))
		}
	}

	r.complete(ast.Render(lowered))
}
