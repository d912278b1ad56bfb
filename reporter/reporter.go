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

// Package reporter defines how errors and warnings encountered while
// translating an expression are surfaced to the calling program.
package reporter

import (
	"sync"

	"github.com/nandu-lang/nandu/ast"
)

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, translation aborts with that error.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. This is
// used for indicating non-error messages to the calling program for
// things that do not cause translation to fail, such as an expression
// whose lowered form is excessively large. Though they are just warnings,
// the details are supplied to the reporter via an error type.
type WarningReporter func(ErrorWithPos)

// Reporter receives the errors and warnings that translation produces.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter creates a Reporter from the given function values. Either
// may be nil: a nil errs fails translation on the first error and a nil
// warnings ignores all warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler wraps a Reporter and tracks whether any error has been
// reported, so that the stages of the pipeline can fail fast and the
// caller can retrieve the final disposition from one place. A Handler is
// safe for concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler. If rep is nil, a default reporter is
// used that fails on the first reported error and ignores all warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports an error with the given position and message. See
// HandleError.
func (h *Handler) HandleErrorf(pos ast.SourcePos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError reports the given error. If the handler has already
// aborted, the previous abort error is returned and err is dropped. The
// returned error is what translation should fail with, which may be nil
// if the reporter chose to swallow err.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports a warning with the given position. Warnings never
// cause translation to fail.
func (h *Handler) HandleWarning(pos ast.SourcePos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(Error(pos, err))
}

// Error returns the error that translation should fail with, or nil. If
// errors were reported but the reporter swallowed all of them, the
// sentinel ErrInvalidExpression is returned.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidExpression
	}
	return h.err
}

// ReporterError returns the error the reporter instructed translation to
// abort with, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
