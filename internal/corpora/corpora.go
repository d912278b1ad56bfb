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

// Package corpora provides a mechanism for managing test corpora, i.e.,
// a collection of files that each define one translation test case.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a test data corpus. This is essentially a way of
// doing table-driven tests where the "table" is in the file system.
type Corpus struct {
	// The root of the test data directory. This path is relative to the
	// file that calls [Corpus.Run].
	Root string

	// An environment variable to check with regards to whether to run in
	// "refresh" mode or not. Its value is a glob selecting the test cases
	// whose expected outputs should be regenerated from the current
	// behavior instead of compared.
	Refresh string

	// The file extension (without a dot) of files that define a test
	// case, e.g. "yaml".
	Extension string

	// Possible outputs of the test, found at the test case's file name
	// suffixed with the output's extension. A missing file is treated as
	// an expected empty string.
	Outputs []Output

	// Test executes one test case from the corpus. Returns a slice of
	// strings corresponding to the elements of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Run enumerates the corpus and runs each test case as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob %q in $%s", refresh, c.Refresh)
		}
	}
	if refresh != "" {
		// force failure so a refresh run can't accidentally "pass"
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, p := range tests {
		name, _ := filepath.Rel(testDir, p)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(p)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", p, err)
			}

			results := c.Test(t, name, string(data))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refreshThis, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(p, ".", output.Extension)
				if refreshThis {
					writeOutput(t, outPath, results[i])
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", outPath, err)
					continue
				}
				if diff := diffStrings(string(want), results[i]); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

// Output represents one expected output of a test case. For a corpus
// with Extension "yaml" and an output with Extension "out", the expected
// output of "foo.yaml" is read from "foo.yaml.out".
type Output struct {
	Extension string
}

func writeOutput(t *testing.T, path, text string) {
	if text == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

func diffStrings(want, got string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
