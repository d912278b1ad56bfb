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

package ast

import "fmt"

// SourcePos identifies a location in an input expression. Line and Col
// are one-based; Offset is the zero-based byte offset.
type SourcePos struct {
	Offset    int
	Line, Col int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return "<input>"
	}
	return fmt.Sprintf("%d:%d", pos.Line, pos.Col)
}

// UnknownPos is a placeholder position for nodes that were synthesized
// rather than parsed, such as instantiated gate templates.
func UnknownPos() SourcePos {
	return SourcePos{}
}
