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

import (
	"github.com/mintfs/tfsclient/pkg/tensorflow"
)

// DType identifies one supported tensor element type. Values are the wire
// dtype enum values, so a DType converts to tensorflow.DataType directly.
type DType int32

const (
	Half       DType = DType(tensorflow.DataType_DT_HALF)
	Float      DType = DType(tensorflow.DataType_DT_FLOAT)
	Double     DType = DType(tensorflow.DataType_DT_DOUBLE)
	Int8       DType = DType(tensorflow.DataType_DT_INT8)
	Int16      DType = DType(tensorflow.DataType_DT_INT16)
	Int32      DType = DType(tensorflow.DataType_DT_INT32)
	Int64      DType = DType(tensorflow.DataType_DT_INT64)
	Uint8      DType = DType(tensorflow.DataType_DT_UINT8)
	Uint16     DType = DType(tensorflow.DataType_DT_UINT16)
	Uint32     DType = DType(tensorflow.DataType_DT_UINT32)
	Uint64     DType = DType(tensorflow.DataType_DT_UINT64)
	Complex64  DType = DType(tensorflow.DataType_DT_COMPLEX64)
	Complex128 DType = DType(tensorflow.DataType_DT_COMPLEX128)
	Bool       DType = DType(tensorflow.DataType_DT_BOOL)
	String     DType = DType(tensorflow.DataType_DT_STRING)
)

type dtypeInfo struct {
	name    string
	field   string // TensorProto field carrying the typed value list
	width   int    // bytes per element in tensor_content, 0 for variable
	numeric bool
}

// dtypes is the registry: a fixed bijection between the supported dtypes,
// their wire names, and their TensorProto value fields. It is never mutated
// after load.
var dtypes = map[DType]dtypeInfo{
	Half:       {"DT_HALF", "half_val", 2, true},
	Float:      {"DT_FLOAT", "float_val", 4, true},
	Double:     {"DT_DOUBLE", "double_val", 8, true},
	Int8:       {"DT_INT8", "int_val", 1, true},
	Int16:      {"DT_INT16", "int_val", 2, true},
	Int32:      {"DT_INT32", "int_val", 4, true},
	Int64:      {"DT_INT64", "int64_val", 8, true},
	Uint8:      {"DT_UINT8", "int_val", 1, true},
	Uint16:     {"DT_UINT16", "int_val", 2, true},
	Uint32:     {"DT_UINT32", "uint32_val", 4, true},
	Uint64:     {"DT_UINT64", "uint64_val", 8, true},
	Complex64:  {"DT_COMPLEX64", "scomplex_val", 8, true},
	Complex128: {"DT_COMPLEX128", "dcomplex_val", 16, true},
	Bool:       {"DT_BOOL", "bool_val", 1, true},
	String:     {"DT_STRING", "string_val", 0, false},
}

var dtypeByName = func() map[string]DType {
	byName := make(map[string]DType, len(dtypes))
	for dt, info := range dtypes {
		byName[info.name] = dt
	}
	return byName
}()

// FromEnum resolves a wire dtype enum value.
func FromEnum(enum int32) (DType, error) {
	dt := DType(enum)
	if _, ok := dtypes[dt]; !ok {
		return 0, &UnsupportedTypeError{Type: tensorflow.DataType(enum).String()}
	}
	return dt, nil
}

// FromName resolves a canonical wire type name such as "DT_FLOAT".
func FromName(name string) (DType, error) {
	dt, ok := dtypeByName[name]
	if !ok {
		return 0, &UnsupportedTypeError{Type: name}
	}
	return dt, nil
}

// String returns the canonical wire name, e.g. "DT_INT64".
func (dt DType) String() string {
	if info, ok := dtypes[dt]; ok {
		return info.name
	}
	return tensorflow.DataType(dt).String()
}

// Enum returns the wire enum for this dtype.
func (dt DType) Enum() tensorflow.DataType { return tensorflow.DataType(dt) }

// IsNumeric reports whether elements are numbers. False only for String.
func (dt DType) IsNumeric() bool { return dtypes[dt].numeric }

// Width returns the byte width of one element in tensor_content, or 0 for
// variable-length types.
func (dt DType) Width() int { return dtypes[dt].width }

// Field returns the name of the TensorProto field that carries the typed
// value list for this dtype.
func (dt DType) Field() string { return dtypes[dt].field }
