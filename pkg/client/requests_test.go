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

package client

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/testing/protocmp"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mintfs/tfsclient/pkg/serving"
	"github.com/mintfs/tfsclient/pkg/tensor"
	"github.com/mintfs/tfsclient/pkg/tensorflow"
)

func int64Input(t *testing.T, values ...int64) *tensor.Tensor {
	t.Helper()
	in, err := tensor.New(tensor.Shape{int64(len(values))}, values)
	require.NoError(t, err)
	return in
}

func TestNewPredictRequest(t *testing.T) {
	request, err := NewPredictRequest(
		"default",
		map[string]*tensor.Tensor{"int_input": int64Input(t, 2)},
		WithModelVersion(1),
	)
	require.NoError(t, err)

	assert.Equal(t, "default", request.GetModelSpec().GetName())
	assert.Equal(t, int64(1), request.GetModelSpec().GetVersion().GetValue())
	assert.Empty(t, request.GetModelSpec().GetSignatureName())

	encoded := request.GetInputs()["int_input"]
	require.NotNil(t, encoded)
	assert.Equal(t, tensorflow.DataType_DT_INT64, encoded.GetDtype())

	decoded, err := tensor.Unmarshal(encoded)
	require.NoError(t, err)
	values, err := tensor.Values[int64](decoded)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, values)
}

func TestNewPredictRequestWireEquality(t *testing.T) {
	in := int64Input(t, 2)
	request, err := NewPredictRequest(
		"default",
		map[string]*tensor.Tensor{"int_input": in},
		WithModelVersion(1),
	)
	require.NoError(t, err)

	wantSpec := &serving.ModelSpec{Name: "default", Version: wrapperspb.Int64(1)}
	diff := cmp.Diff(
		protoadapt.MessageV2Of(wantSpec),
		protoadapt.MessageV2Of(request.GetModelSpec()),
		protocmp.Transform(),
	)
	assert.Empty(t, diff)

	wantInput, err := tensor.Marshal(in)
	require.NoError(t, err)
	diff = cmp.Diff(
		protoadapt.MessageV2Of(wantInput),
		protoadapt.MessageV2Of(request.GetInputs()["int_input"]),
		protocmp.Transform(),
	)
	assert.Empty(t, diff)
}

func TestNewPredictRequestDefaultsVersionToLatest(t *testing.T) {
	request, err := NewPredictRequest("default", nil)
	require.NoError(t, err)
	assert.Nil(t, request.GetModelSpec().GetVersion())
}

func TestNewPredictRequestSignatureName(t *testing.T) {
	request, err := NewPredictRequest("default", nil, WithSignatureName("serving_custom"))
	require.NoError(t, err)
	assert.Equal(t, "serving_custom", request.GetModelSpec().GetSignatureName())
}

func TestNewPredictRequestEmptyModelName(t *testing.T) {
	_, err := NewPredictRequest("", nil)
	assert.Error(t, err)
}

func TestNewClassificationAndRegressionRequests(t *testing.T) {
	inputs := map[string]*tensor.Tensor{"examples": int64Input(t, 1, 2, 3)}

	classification, err := NewClassificationRequest("classifier", inputs, WithModelVersion(3))
	require.NoError(t, err)
	assert.Equal(t, "classifier", classification.GetModelSpec().GetName())
	assert.Equal(t, int64(3), classification.GetModelSpec().GetVersion().GetValue())
	assert.Contains(t, classification.GetInputs(), "examples")

	regression, err := NewRegressionRequest("regressor", inputs)
	require.NoError(t, err)
	assert.Equal(t, "regressor", regression.GetModelSpec().GetName())
	assert.Contains(t, regression.GetInputs(), "examples")
}

func TestNewModelStatusRequest(t *testing.T) {
	request, err := NewModelStatusRequest("default", WithModelVersion(5))
	require.NoError(t, err)
	assert.Equal(t, "default", request.GetModelSpec().GetName())
	assert.Equal(t, int64(5), request.GetModelSpec().GetVersion().GetValue())

	_, err = NewModelStatusRequest("")
	assert.Error(t, err)
}

func TestExtractOutputs(t *testing.T) {
	scores, err := tensor.New(tensor.Shape{2}, []float32{0.25, 0.75})
	require.NoError(t, err)
	encoded, err := tensor.Marshal(scores)
	require.NoError(t, err)

	outputs, err := ExtractOutputs(&serving.PredictResponse{
		Outputs: map[string]*tensorflow.TensorProto{"scores": encoded},
	})
	require.NoError(t, err)
	require.Contains(t, outputs, "scores")

	values, err := tensor.Values[float32](outputs["scores"])
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.75}, values)
}

func TestExtractOutputsPropagatesCodecErrors(t *testing.T) {
	response := &serving.PredictResponse{
		Outputs: map[string]*tensorflow.TensorProto{
			"bad": {Dtype: tensorflow.DataType_DT_VARIANT},
		},
	}
	_, err := ExtractOutputs(response)
	require.Error(t, err)

	var unsupported *tensor.UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
	assert.Contains(t, err.Error(), `output "bad"`)
}
