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

package main

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintfs/tfsclient/pkg/tensor"
)

func TestParseInputSpec(t *testing.T) {
	spec := []byte(`{
		"float_input": {"dtype": "DT_FLOAT", "shape": [2], "values": [0.5, 1.5]},
		"int_input": {"dtype": "DT_INT64", "shape": [1], "values": [2]},
		"text_input": {"dtype": "DT_STRING", "shape": [1], "values": ["hello world"]}
	}`)

	inputs, err := parseInputSpec(spec)
	require.NoError(t, err)
	require.Len(t, inputs, 3)

	floats, err := tensor.Values[float32](inputs["float_input"])
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1.5}, floats)

	ints, err := tensor.Values[int64](inputs["int_input"])
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ints)

	text, err := inputs["text_input"].Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, text)
}

func TestParseInputSpecComplexPairs(t *testing.T) {
	spec := []byte(`{"c": {"dtype": "DT_COMPLEX64", "shape": [2], "values": [1, 2, 3, 4]}}`)
	inputs, err := parseInputSpec(spec)
	require.NoError(t, err)

	values, err := tensor.Values[complex64](inputs["c"])
	require.NoError(t, err)
	assert.Equal(t, []complex64{complex(1, 2), complex(3, 4)}, values)
}

func TestParseInputSpecRejectsUnknownDtype(t *testing.T) {
	_, err := parseInputSpec([]byte(`{"x": {"dtype": "DT_RESOURCE", "shape": [1], "values": [0]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DT_RESOURCE")
}

func TestParseInputSpecRejectsShapeMismatch(t *testing.T) {
	_, err := parseInputSpec([]byte(`{"x": {"dtype": "DT_FLOAT", "shape": [3], "values": [0.1]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `input "x"`)
}

func TestParseInputSpecRejectsNonObject(t *testing.T) {
	_, err := parseInputSpec([]byte(`[1, 2, 3]`))
	assert.Error(t, err)

	_, err = parseInputSpec([]byte(`{}`))
	assert.Error(t, err)
}

func TestRenderOutputs(t *testing.T) {
	scores, err := tensor.New(tensor.Shape{2}, []float64{0.25, 0.75})
	require.NoError(t, err)
	labels, err := tensor.FromStrings(tensor.Shape{1}, []string{"cat"})
	require.NoError(t, err)

	rendered, err := renderOutputs(map[string]*tensor.Tensor{
		"scores": scores,
		"labels": labels,
	})
	require.NoError(t, err)

	parsed := map[string]struct {
		Dtype  string  `json:"dtype"`
		Shape  []int64 `json:"shape"`
		Values any     `json:"values"`
	}{}
	require.NoError(t, jsoniter.UnmarshalFromString(rendered, &parsed))

	assert.Equal(t, "DT_DOUBLE", parsed["scores"].Dtype)
	assert.Equal(t, []int64{2}, parsed["scores"].Shape)
	assert.Equal(t, "DT_STRING", parsed["labels"].Dtype)
	assert.Equal(t, []any{"cat"}, parsed["labels"].Values)
}
