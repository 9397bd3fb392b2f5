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
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/mintfs/tfsclient/pkg/tensorflow"
)

// Marshal encodes a Tensor into a TensorProto. Numeric tensors are written
// twice: once into the typed value list matching the dtype and once packed
// little-endian into tensor_content, since some backends (OVMS among them)
// only read the raw buffer. DT_STRING tensors use string_val only.
func Marshal(t *Tensor) (*tensorflow.TensorProto, error) {
	proto := &tensorflow.TensorProto{
		Dtype:       t.dtype.Enum(),
		TensorShape: shapeProto(t.shape),
	}
	switch v := t.data.(type) {
	case []float16.Float16:
		proto.HalfVal = make([]int32, len(v))
		content := make([]byte, 2*len(v))
		for i, x := range v {
			proto.HalfVal[i] = int32(x.Bits())
			binary.LittleEndian.PutUint16(content[2*i:], x.Bits())
		}
		proto.TensorContent = content
	case []float32:
		proto.FloatVal = append([]float32(nil), v...)
		content := make([]byte, 4*len(v))
		for i, x := range v {
			binary.LittleEndian.PutUint32(content[4*i:], math.Float32bits(x))
		}
		proto.TensorContent = content
	case []float64:
		proto.DoubleVal = append([]float64(nil), v...)
		content := make([]byte, 8*len(v))
		for i, x := range v {
			binary.LittleEndian.PutUint64(content[8*i:], math.Float64bits(x))
		}
		proto.TensorContent = content
	case []int8:
		proto.IntVal = make([]int32, len(v))
		content := make([]byte, len(v))
		for i, x := range v {
			proto.IntVal[i] = int32(x)
			content[i] = byte(x)
		}
		proto.TensorContent = content
	case []int16:
		proto.IntVal = make([]int32, len(v))
		content := make([]byte, 2*len(v))
		for i, x := range v {
			proto.IntVal[i] = int32(x)
			binary.LittleEndian.PutUint16(content[2*i:], uint16(x))
		}
		proto.TensorContent = content
	case []int32:
		proto.IntVal = append([]int32(nil), v...)
		content := make([]byte, 4*len(v))
		for i, x := range v {
			binary.LittleEndian.PutUint32(content[4*i:], uint32(x))
		}
		proto.TensorContent = content
	case []int64:
		proto.Int64Val = append([]int64(nil), v...)
		content := make([]byte, 8*len(v))
		for i, x := range v {
			binary.LittleEndian.PutUint64(content[8*i:], uint64(x))
		}
		proto.TensorContent = content
	case []uint8:
		proto.IntVal = make([]int32, len(v))
		for i, x := range v {
			proto.IntVal[i] = int32(x)
		}
		proto.TensorContent = append([]byte(nil), v...)
	case []uint16:
		proto.IntVal = make([]int32, len(v))
		content := make([]byte, 2*len(v))
		for i, x := range v {
			proto.IntVal[i] = int32(x)
			binary.LittleEndian.PutUint16(content[2*i:], x)
		}
		proto.TensorContent = content
	case []uint32:
		proto.Uint32Val = append([]uint32(nil), v...)
		content := make([]byte, 4*len(v))
		for i, x := range v {
			binary.LittleEndian.PutUint32(content[4*i:], x)
		}
		proto.TensorContent = content
	case []uint64:
		proto.Uint64Val = append([]uint64(nil), v...)
		content := make([]byte, 8*len(v))
		for i, x := range v {
			binary.LittleEndian.PutUint64(content[8*i:], x)
		}
		proto.TensorContent = content
	case []complex64:
		proto.ScomplexVal = make([]float32, 2*len(v))
		content := make([]byte, 8*len(v))
		for i, x := range v {
			re, im := real(x), imag(x)
			proto.ScomplexVal[2*i] = re
			proto.ScomplexVal[2*i+1] = im
			binary.LittleEndian.PutUint32(content[8*i:], math.Float32bits(re))
			binary.LittleEndian.PutUint32(content[8*i+4:], math.Float32bits(im))
		}
		proto.TensorContent = content
	case []complex128:
		proto.DcomplexVal = make([]float64, 2*len(v))
		content := make([]byte, 16*len(v))
		for i, x := range v {
			re, im := real(x), imag(x)
			proto.DcomplexVal[2*i] = re
			proto.DcomplexVal[2*i+1] = im
			binary.LittleEndian.PutUint64(content[16*i:], math.Float64bits(re))
			binary.LittleEndian.PutUint64(content[16*i+8:], math.Float64bits(im))
		}
		proto.TensorContent = content
	case []bool:
		proto.BoolVal = append([]bool(nil), v...)
		content := make([]byte, len(v))
		for i, x := range v {
			if x {
				content[i] = 1
			}
		}
		proto.TensorContent = content
	case [][]byte:
		proto.StringVal = make([][]byte, len(v))
		for i, b := range v {
			proto.StringVal[i] = append([]byte(nil), b...)
		}
	default:
		// unreachable for tensors built through the constructors
		return nil, &UnsupportedTypeError{Type: t.dtype.String()}
	}
	return proto, nil
}

// Unmarshal decodes a TensorProto into a Tensor. When tensor_content is
// non-empty it is authoritative and the typed value list is ignored; this
// matches what complete clients of the format do and tolerates backends
// that populate only one of the two representations.
func Unmarshal(proto *tensorflow.TensorProto) (*Tensor, error) {
	dt, err := FromEnum(int32(proto.GetDtype()))
	if err != nil {
		return nil, err
	}
	shape := shapeFromProto(proto.GetTensorShape())
	if dt.IsNumeric() && len(proto.GetTensorContent()) > 0 {
		return unmarshalContent(dt, shape, proto.GetTensorContent())
	}
	return unmarshalValues(dt, shape, proto)
}

func shapeProto(s Shape) *tensorflow.TensorShapeProto {
	dims := make([]*tensorflow.TensorShapeProto_Dim, len(s))
	for i, d := range s {
		dims[i] = &tensorflow.TensorShapeProto_Dim{Size: d}
	}
	return &tensorflow.TensorShapeProto{Dim: dims}
}

func shapeFromProto(proto *tensorflow.TensorShapeProto) Shape {
	shape := Shape{}
	for _, d := range proto.GetDim() {
		shape = append(shape, d.GetSize())
	}
	return shape
}

// unmarshalContent reinterprets the packed little-endian buffer as a flat
// sequence of dt elements.
func unmarshalContent(dt DType, shape Shape, content []byte) (*Tensor, error) {
	n := shape.NumElements()
	width := int64(dt.Width())
	if n < 0 || int64(len(content)) != n*width {
		return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(content)) / width}
	}
	var data any
	switch dt {
	case Half:
		v := make([]float16.Float16, n)
		for i := range v {
			v[i] = float16.Frombits(binary.LittleEndian.Uint16(content[2*i:]))
		}
		data = v
	case Float:
		v := make([]float32, n)
		for i := range v {
			v[i] = math.Float32frombits(binary.LittleEndian.Uint32(content[4*i:]))
		}
		data = v
	case Double:
		v := make([]float64, n)
		for i := range v {
			v[i] = math.Float64frombits(binary.LittleEndian.Uint64(content[8*i:]))
		}
		data = v
	case Int8:
		v := make([]int8, n)
		for i := range v {
			v[i] = int8(content[i])
		}
		data = v
	case Int16:
		v := make([]int16, n)
		for i := range v {
			v[i] = int16(binary.LittleEndian.Uint16(content[2*i:]))
		}
		data = v
	case Int32:
		v := make([]int32, n)
		for i := range v {
			v[i] = int32(binary.LittleEndian.Uint32(content[4*i:]))
		}
		data = v
	case Int64:
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(binary.LittleEndian.Uint64(content[8*i:]))
		}
		data = v
	case Uint8:
		v := make([]uint8, n)
		copy(v, content)
		data = v
	case Uint16:
		v := make([]uint16, n)
		for i := range v {
			v[i] = binary.LittleEndian.Uint16(content[2*i:])
		}
		data = v
	case Uint32:
		v := make([]uint32, n)
		for i := range v {
			v[i] = binary.LittleEndian.Uint32(content[4*i:])
		}
		data = v
	case Uint64:
		v := make([]uint64, n)
		for i := range v {
			v[i] = binary.LittleEndian.Uint64(content[8*i:])
		}
		data = v
	case Complex64:
		v := make([]complex64, n)
		for i := range v {
			re := math.Float32frombits(binary.LittleEndian.Uint32(content[8*i:]))
			im := math.Float32frombits(binary.LittleEndian.Uint32(content[8*i+4:]))
			v[i] = complex(re, im)
		}
		data = v
	case Complex128:
		v := make([]complex128, n)
		for i := range v {
			re := math.Float64frombits(binary.LittleEndian.Uint64(content[16*i:]))
			im := math.Float64frombits(binary.LittleEndian.Uint64(content[16*i+8:]))
			v[i] = complex(re, im)
		}
		data = v
	case Bool:
		v := make([]bool, n)
		for i := range v {
			v[i] = content[i] != 0
		}
		data = v
	default:
		return nil, &UnsupportedTypeError{Type: dt.String()}
	}
	return &Tensor{dtype: dt, shape: shape, data: data}, nil
}

// unmarshalValues reads the typed value list designated by the dtype.
func unmarshalValues(dt DType, shape Shape, proto *tensorflow.TensorProto) (*Tensor, error) {
	n := shape.NumElements()
	var data any
	switch dt {
	case Half:
		bits := proto.GetHalfVal()
		if int64(len(bits)) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(bits))}
		}
		v := make([]float16.Float16, n)
		for i, b := range bits {
			v[i] = float16.Frombits(uint16(b))
		}
		data = v
	case Float:
		if int64(len(proto.GetFloatVal())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetFloatVal()))}
		}
		v := make([]float32, n)
		copy(v, proto.GetFloatVal())
		data = v
	case Double:
		if int64(len(proto.GetDoubleVal())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetDoubleVal()))}
		}
		v := make([]float64, n)
		copy(v, proto.GetDoubleVal())
		data = v
	case Int8:
		widened := proto.GetIntVal()
		if int64(len(widened)) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(widened))}
		}
		v := make([]int8, n)
		for i, x := range widened {
			v[i] = int8(x)
		}
		data = v
	case Int16:
		widened := proto.GetIntVal()
		if int64(len(widened)) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(widened))}
		}
		v := make([]int16, n)
		for i, x := range widened {
			v[i] = int16(x)
		}
		data = v
	case Int32:
		if int64(len(proto.GetIntVal())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetIntVal()))}
		}
		v := make([]int32, n)
		copy(v, proto.GetIntVal())
		data = v
	case Int64:
		if int64(len(proto.GetInt64Val())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetInt64Val()))}
		}
		v := make([]int64, n)
		copy(v, proto.GetInt64Val())
		data = v
	case Uint8:
		widened := proto.GetIntVal()
		if int64(len(widened)) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(widened))}
		}
		v := make([]uint8, n)
		for i, x := range widened {
			v[i] = uint8(x)
		}
		data = v
	case Uint16:
		widened := proto.GetIntVal()
		if int64(len(widened)) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(widened))}
		}
		v := make([]uint16, n)
		for i, x := range widened {
			v[i] = uint16(x)
		}
		data = v
	case Uint32:
		if int64(len(proto.GetUint32Val())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetUint32Val()))}
		}
		v := make([]uint32, n)
		copy(v, proto.GetUint32Val())
		data = v
	case Uint64:
		if int64(len(proto.GetUint64Val())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetUint64Val()))}
		}
		v := make([]uint64, n)
		copy(v, proto.GetUint64Val())
		data = v
	case Complex64:
		pairs := proto.GetScomplexVal()
		if int64(len(pairs)) != 2*n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(pairs)) / 2}
		}
		v := make([]complex64, n)
		for i := range v {
			v[i] = complex(pairs[2*i], pairs[2*i+1])
		}
		data = v
	case Complex128:
		pairs := proto.GetDcomplexVal()
		if int64(len(pairs)) != 2*n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(pairs)) / 2}
		}
		v := make([]complex128, n)
		for i := range v {
			v[i] = complex(pairs[2*i], pairs[2*i+1])
		}
		data = v
	case Bool:
		if int64(len(proto.GetBoolVal())) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(proto.GetBoolVal()))}
		}
		v := make([]bool, n)
		copy(v, proto.GetBoolVal())
		data = v
	case String:
		raw := proto.GetStringVal()
		if int64(len(raw)) != n {
			return nil, &ShapeMismatchError{Shape: shape, Elements: int64(len(raw))}
		}
		v := make([][]byte, n)
		for i, b := range raw {
			v[i] = append([]byte(nil), b...)
		}
		data = v
	default:
		return nil, &UnsupportedTypeError{Type: dt.String()}
	}
	return &Tensor{dtype: dt, shape: shape, data: data}, nil
}
