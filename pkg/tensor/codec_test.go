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
	"testing"

	"github.com/onsi/gomega"
	"github.com/x448/float16"

	"github.com/mintfs/tfsclient/pkg/tensorflow"
)

func mustNew[T Element](t *testing.T, shape Shape, values []T) *Tensor {
	t.Helper()
	tensor, err := New(shape, values)
	if err != nil {
		t.Fatal(err)
	}
	return tensor
}

func roundTrip(t *testing.T, g *gomega.WithT, in *Tensor) {
	t.Helper()
	proto, err := Marshal(in)
	g.Expect(err).Should(gomega.BeNil())

	// raw-content path
	out, err := Unmarshal(proto)
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(out).Should(gomega.Equal(in))

	// typed-list path
	if in.DType() != String {
		proto.TensorContent = nil
		out, err = Unmarshal(proto)
		g.Expect(err).Should(gomega.BeNil())
		g.Expect(out).Should(gomega.Equal(in))
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	roundTrip(t, g, mustNew(t, Shape{3}, []float16.Float16{
		float16.Fromfloat32(1.5), float16.Fromfloat32(-0.25), float16.Fromfloat32(0),
	}))
	roundTrip(t, g, mustNew(t, Shape{3}, []float32{0.314, 0.159, 0.268}))
	roundTrip(t, g, mustNew(t, Shape{2, 2}, []float64{0.314, 0.159, 0.268, 0.535}))
	roundTrip(t, g, mustNew(t, Shape{4}, []int8{-128, -1, 0, 127}))
	roundTrip(t, g, mustNew(t, Shape{2}, []int16{-32768, 32767}))
	roundTrip(t, g, mustNew(t, Shape{3}, []int32{-2147483648, 0, 2147483647}))
	roundTrip(t, g, mustNew(t, Shape{2}, []int64{math.MinInt64, math.MaxInt64}))
	roundTrip(t, g, mustNew(t, Shape{3}, []uint8{0, 128, 255}))
	roundTrip(t, g, mustNew(t, Shape{2}, []uint16{0, 65535}))
	roundTrip(t, g, mustNew(t, Shape{2}, []uint32{0, math.MaxUint32}))
	roundTrip(t, g, mustNew(t, Shape{2}, []uint64{0, math.MaxUint64}))
	roundTrip(t, g, mustNew(t, Shape{2}, []complex64{complex(1.5, -2.5), complex(0, 3)}))
	roundTrip(t, g, mustNew(t, Shape{1}, []complex128{complex(math.Pi, -math.E)}))
	roundTrip(t, g, mustNew(t, Shape{4}, []bool{true, false, false, true}))

	text, err := FromStrings(Shape{2}, []string{"hello", "world"})
	g.Expect(err).Should(gomega.BeNil())
	roundTrip(t, g, text)
}

func TestRoundTripScalarAndEmptyShapes(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	roundTrip(t, g, Scalar(float32(0.5)))
	roundTrip(t, g, Scalar(true))
	roundTrip(t, g, mustNew(t, Shape{0}, []int64{}))
	roundTrip(t, g, mustNew(t, Shape{2, 0, 3}, []float64{}))
	roundTrip(t, g, mustNew(t, Shape{2, 3, 2}, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))
}

func TestMarshalSingleFloat(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	proto, err := Marshal(mustNew(t, Shape{1}, []float32{0.1}))
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(proto.GetDtype()).Should(gomega.Equal(tensorflow.DataType_DT_FLOAT))
	g.Expect(proto.GetTensorShape().GetDim()).Should(gomega.HaveLen(1))
	g.Expect(proto.GetTensorShape().GetDim()[0].GetSize()).Should(gomega.Equal(int64(1)))
	g.Expect(proto.GetFloatVal()).Should(gomega.Equal([]float32{0.1}))

	content := proto.GetTensorContent()
	g.Expect(content).Should(gomega.HaveLen(4))
	g.Expect(math.Float32frombits(binary.LittleEndian.Uint32(content))).Should(gomega.Equal(float32(0.1)))

	decoded, err := Unmarshal(proto)
	g.Expect(err).Should(gomega.BeNil())
	values, err := Values[float32](decoded)
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(values).Should(gomega.Equal([]float32{0.1}))
}

func TestMarshalStringValues(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	in, err := FromStrings(Shape{1}, []string{"hello world"})
	g.Expect(err).Should(gomega.BeNil())

	proto, err := Marshal(in)
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(proto.GetDtype()).Should(gomega.Equal(tensorflow.DataType_DT_STRING))
	g.Expect(proto.GetStringVal()).Should(gomega.Equal([][]byte{[]byte("hello world")}))
	g.Expect(proto.GetTensorContent()).Should(gomega.BeEmpty())

	decoded, err := Unmarshal(proto)
	g.Expect(err).Should(gomega.BeNil())
	text, err := decoded.Strings()
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(text).Should(gomega.Equal([]string{"hello world"}))
}

func TestMarshalBoolsAsZeroOne(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	proto, err := Marshal(mustNew(t, Shape{3}, []bool{true, false, true}))
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(proto.GetBoolVal()).Should(gomega.Equal([]bool{true, false, true}))
	g.Expect(proto.GetTensorContent()).Should(gomega.Equal([]byte{1, 0, 1}))
}

func TestMarshalComplexAsInterleavedPairs(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	proto, err := Marshal(mustNew(t, Shape{2}, []complex64{complex(1, 2), complex(3, 4)}))
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(proto.GetScomplexVal()).Should(gomega.Equal([]float32{1, 2, 3, 4}))
	g.Expect(proto.GetTensorContent()).Should(gomega.HaveLen(16))
}

func TestMarshalHalfBitPatterns(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	half := float16.Fromfloat32(1.5)
	proto, err := Marshal(mustNew(t, Shape{1}, []float16.Float16{half}))
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(proto.GetHalfVal()).Should(gomega.Equal([]int32{int32(half.Bits())}))
	g.Expect(proto.GetTensorContent()).Should(gomega.HaveLen(2))
	g.Expect(binary.LittleEndian.Uint16(proto.GetTensorContent())).Should(gomega.Equal(half.Bits()))
}

func TestUnmarshalPrefersRawContent(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	content := make([]byte, 4)
	binary.LittleEndian.PutUint32(content, math.Float32bits(2.0))
	proto := &tensorflow.TensorProto{
		Dtype:         tensorflow.DataType_DT_FLOAT,
		TensorShape:   shapeProto(Shape{1}),
		FloatVal:      []float32{1.0},
		TensorContent: content,
	}

	decoded, err := Unmarshal(proto)
	g.Expect(err).Should(gomega.BeNil())
	values, err := Values[float32](decoded)
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(values).Should(gomega.Equal([]float32{2.0}))
}

func TestUnmarshalRejectsUnsupportedDtype(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	for _, dtype := range []tensorflow.DataType{
		tensorflow.DataType_DT_INVALID,
		tensorflow.DataType_DT_BFLOAT16,
		tensorflow.DataType_DT_RESOURCE,
		tensorflow.DataType_DT_VARIANT,
		tensorflow.DataType(99),
	} {
		_, err := Unmarshal(&tensorflow.TensorProto{Dtype: dtype, TensorShape: shapeProto(Shape{1})})
		g.Expect(err).Should(gomega.BeAssignableToTypeOf(&UnsupportedTypeError{}))
	}
}

func TestUnmarshalRejectsShortValueList(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	proto := &tensorflow.TensorProto{
		Dtype:       tensorflow.DataType_DT_FLOAT,
		TensorShape: shapeProto(Shape{3}),
		FloatVal:    []float32{0.1, 0.2},
	}
	_, err := Unmarshal(proto)
	g.Expect(err).Should(gomega.BeAssignableToTypeOf(&ShapeMismatchError{}))
	g.Expect(err.Error()).Should(gomega.ContainSubstring("declares 3 elements, got 2"))
}

func TestUnmarshalRejectsShortRawContent(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	proto := &tensorflow.TensorProto{
		Dtype:         tensorflow.DataType_DT_INT64,
		TensorShape:   shapeProto(Shape{2}),
		TensorContent: make([]byte, 8), // one int64, shape wants two
	}
	_, err := Unmarshal(proto)
	g.Expect(err).Should(gomega.BeAssignableToTypeOf(&ShapeMismatchError{}))
}
