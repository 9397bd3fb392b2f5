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

// Package tensor converts between native multi-dimensional arrays and the
// TensorProto wire format used by TensorFlow Serving. A Tensor pairs a
// dtype, a shape, and the flattened row-major element values; Marshal and
// Unmarshal move it to and from the wire. All operations are pure functions
// of their inputs and safe for concurrent use.
package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Shape is an ordered list of dimension sizes.
type Shape []int64

// NumElements returns the product of the dimensions. The product of an empty
// shape is 1: a scalar holds one element.
func (s Shape) NumElements() int64 {
	n := int64(1)
	for _, d := range s {
		n *= d
	}
	return n
}

// Element constrains the Go types that map onto a supported wire dtype.
// The set is closed: fifteen wire types, with strings handled separately by
// FromStrings and FromBytes.
type Element interface {
	float16.Float16 | float32 | float64 |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		complex64 | complex128 | bool
}

// Tensor is a dtype, a shape, and the flat row-major element data. The data
// slice is held by reference; callers must not mutate it after construction.
type Tensor struct {
	dtype DType
	shape Shape
	data  any
}

// New builds a Tensor from a flat row-major value slice. It fails with
// ShapeMismatchError when len(values) disagrees with the shape product and
// with UnsupportedTypeError when the element type has no wire mapping.
func New[T Element](shape Shape, values []T) (*Tensor, error) {
	dt, err := dtypeOf(values)
	if err != nil {
		return nil, err
	}
	if int64(len(values)) != shape.NumElements() {
		return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(values))}
	}
	return &Tensor{dtype: dt, shape: append(Shape{}, shape...), data: values}, nil
}

// Scalar builds a rank-0 tensor holding a single value.
func Scalar[T Element](value T) *Tensor {
	t, err := New(Shape{}, []T{value})
	if err != nil {
		// unreachable: one value always matches the empty shape
		panic(err)
	}
	return t
}

// FromBytes builds a DT_STRING tensor from raw byte elements.
func FromBytes(shape Shape, values [][]byte) (*Tensor, error) {
	if int64(len(values)) != shape.NumElements() {
		return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(values))}
	}
	return &Tensor{dtype: String, shape: append(Shape{}, shape...), data: values}, nil
}

// FromStrings builds a DT_STRING tensor from text, coercing each element to
// its UTF-8 byte representation.
func FromStrings(shape Shape, values []string) (*Tensor, error) {
	coerced := make([][]byte, len(values))
	for i, s := range values {
		coerced[i] = []byte(s)
	}
	return FromBytes(shape, coerced)
}

// Of resolves the wire dtype for a native element type.
func Of[T Element]() DType {
	dt, err := dtypeOf([]T(nil))
	if err != nil {
		// unreachable: Element admits exactly the fourteen mapped types
		panic(err)
	}
	return dt
}

func dtypeOf(values any) (DType, error) {
	switch values.(type) {
	case []float16.Float16:
		return Half, nil
	case []float32:
		return Float, nil
	case []float64:
		return Double, nil
	case []int8:
		return Int8, nil
	case []int16:
		return Int16, nil
	case []int32:
		return Int32, nil
	case []int64:
		return Int64, nil
	case []uint8:
		return Uint8, nil
	case []uint16:
		return Uint16, nil
	case []uint32:
		return Uint32, nil
	case []uint64:
		return Uint64, nil
	case []complex64:
		return Complex64, nil
	case []complex128:
		return Complex128, nil
	case []bool:
		return Bool, nil
	default:
		return 0, &UnsupportedTypeError{Type: fmt.Sprintf("%T", values)}
	}
}

// DType returns the element type.
func (t *Tensor) DType() DType { return t.dtype }

// Shape returns a copy of the shape.
func (t *Tensor) Shape() Shape { return append(Shape{}, t.shape...) }

// NumElements returns the number of elements the shape declares.
func (t *Tensor) NumElements() int64 { return t.shape.NumElements() }

// Values returns the flat data of a numeric tensor. The requested Go type
// must match the tensor's dtype exactly.
func Values[T Element](t *Tensor) ([]T, error) {
	values, ok := t.data.([]T)
	if !ok {
		var zero []T
		return nil, fmt.Errorf("tensor holds %s, not %T", t.dtype, zero)
	}
	return values, nil
}

// Bytes returns the elements of a DT_STRING tensor as raw bytes.
func (t *Tensor) Bytes() ([][]byte, error) {
	values, ok := t.data.([][]byte)
	if !ok {
		return nil, fmt.Errorf("tensor holds %s, not DT_STRING", t.dtype)
	}
	return values, nil
}

// Strings returns the elements of a DT_STRING tensor decoded as UTF-8 text.
func (t *Tensor) Strings() ([]string, error) {
	raw, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, b := range raw {
		out[i] = string(b)
	}
	return out, nil
}
