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
	"github.com/pkg/errors"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mintfs/tfsclient/pkg/serving"
	"github.com/mintfs/tfsclient/pkg/tensor"
	"github.com/mintfs/tfsclient/pkg/tensorflow"
)

// RequestOption narrows a request to a model version or signature.
type RequestOption func(*requestOptions)

type requestOptions struct {
	version   *int64
	signature string
}

// WithModelVersion pins the request to an exact servable version instead of
// the latest loaded one.
func WithModelVersion(version int64) RequestOption {
	return func(o *requestOptions) { o.version = &version }
}

// WithSignatureName selects a signature other than the default.
func WithSignatureName(name string) RequestOption {
	return func(o *requestOptions) { o.signature = name }
}

func newModelSpec(modelName string, opts []RequestOption) (*serving.ModelSpec, error) {
	if modelName == "" {
		return nil, errors.New("model name must not be empty")
	}
	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}
	spec := &serving.ModelSpec{Name: modelName, SignatureName: ro.signature}
	if ro.version != nil {
		spec.Version = wrapperspb.Int64(*ro.version)
	}
	return spec, nil
}

// marshalInputs encodes every named tensor, failing fast on the first codec
// error so no partial request escapes.
func marshalInputs(inputs map[string]*tensor.Tensor) (map[string]*tensorflow.TensorProto, error) {
	encoded := make(map[string]*tensorflow.TensorProto, len(inputs))
	for name, t := range inputs {
		proto, err := tensor.Marshal(t)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding input %q", name)
		}
		encoded[name] = proto
	}
	return encoded, nil
}

// NewPredictRequest builds a PredictRequest from named native tensors.
func NewPredictRequest(modelName string, inputs map[string]*tensor.Tensor, opts ...RequestOption) (*serving.PredictRequest, error) {
	spec, err := newModelSpec(modelName, opts)
	if err != nil {
		return nil, err
	}
	encoded, err := marshalInputs(inputs)
	if err != nil {
		return nil, err
	}
	return &serving.PredictRequest{ModelSpec: spec, Inputs: encoded}, nil
}

// NewClassificationRequest builds a ClassificationRequest from named native
// tensors.
func NewClassificationRequest(modelName string, inputs map[string]*tensor.Tensor, opts ...RequestOption) (*serving.ClassificationRequest, error) {
	spec, err := newModelSpec(modelName, opts)
	if err != nil {
		return nil, err
	}
	encoded, err := marshalInputs(inputs)
	if err != nil {
		return nil, err
	}
	return &serving.ClassificationRequest{ModelSpec: spec, Inputs: encoded}, nil
}

// NewRegressionRequest builds a RegressionRequest from named native tensors.
func NewRegressionRequest(modelName string, inputs map[string]*tensor.Tensor, opts ...RequestOption) (*serving.RegressionRequest, error) {
	spec, err := newModelSpec(modelName, opts)
	if err != nil {
		return nil, err
	}
	encoded, err := marshalInputs(inputs)
	if err != nil {
		return nil, err
	}
	return &serving.RegressionRequest{ModelSpec: spec, Inputs: encoded}, nil
}

// NewModelStatusRequest builds a GetModelStatusRequest.
func NewModelStatusRequest(modelName string, opts ...RequestOption) (*serving.GetModelStatusRequest, error) {
	spec, err := newModelSpec(modelName, opts)
	if err != nil {
		return nil, err
	}
	return &serving.GetModelStatusRequest{ModelSpec: spec}, nil
}

// ExtractOutputs decodes every named output tensor of a PredictResponse.
func ExtractOutputs(resp *serving.PredictResponse) (map[string]*tensor.Tensor, error) {
	outputs := make(map[string]*tensor.Tensor, len(resp.GetOutputs()))
	for name, proto := range resp.GetOutputs() {
		t, err := tensor.Unmarshal(proto)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding output %q", name)
		}
		outputs[name] = t
	}
	return outputs, nil
}
