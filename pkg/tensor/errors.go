/*
Copyright 2024 The tfsclient Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tensor

import "fmt"

// UnsupportedTypeError reports an element type with no wire mapping: a Go
// type the registry does not know, or a dtype enum outside the supported set.
type UnsupportedTypeError struct {
	// Type names the offending type, either a Go type ("[]uintptr") or a
	// wire dtype name ("DT_RESOURCE").
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported tensor data type %s", e.Type)
}

// ShapeMismatchError reports a disagreement between a declared shape and the
// number of elements actually present.
type ShapeMismatchError struct {
	Shape    Shape
	Elements int64
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape %v declares %d elements, got %d", e.Shape, e.Shape.NumElements(), e.Elements)
}
