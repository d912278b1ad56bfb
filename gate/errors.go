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

package gate

import "fmt"

// UnknownFunctionError indicates a function identifier that is not
// present in the library. There is no way to register new functions, so
// every identifier other than the built-in gates produces this error.
type UnknownFunctionError struct {
	// Name is the unresolved function identifier.
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// ArityMismatchError indicates a known function invoked with the wrong
// number of arguments.
type ArityMismatchError struct {
	Name          string
	Expected, Got int
}

func (e *ArityMismatchError) Error() string {
	suffix := "s"
	if e.Expected == 1 {
		suffix = ""
	}
	return fmt.Sprintf("function %q expects %d argument%s, got %d", e.Name, e.Expected, suffix, e.Got)
}
