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

// Mirror of tensorflow_serving/apis/regression.proto.

package serving

import "github.com/mintfs/tfsclient/pkg/tensorflow"

// Regression is one real-valued prediction.
type Regression struct {
	Value float32 `protobuf:"fixed32,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Regression) Reset()         { *m = Regression{} }
func (m *Regression) String() string { return messageString(m) }
func (*Regression) ProtoMessage()    {}

func (m *Regression) GetValue() float32 {
	if m != nil {
		return m.Value
	}
	return 0
}

// RegressionResult holds one Regression per input example.
type RegressionResult struct {
	Regressions []*Regression `protobuf:"bytes,1,rep,name=regressions,proto3" json:"regressions,omitempty"`
}

func (m *RegressionResult) Reset()         { *m = RegressionResult{} }
func (m *RegressionResult) String() string { return messageString(m) }
func (*RegressionResult) ProtoMessage()    {}

func (m *RegressionResult) GetRegressions() []*Regression {
	if m != nil {
		return m.Regressions
	}
	return nil
}

type RegressionRequest struct {
	ModelSpec *ModelSpec                         `protobuf:"bytes,1,opt,name=model_spec,json=modelSpec,proto3" json:"model_spec,omitempty"`
	Inputs    map[string]*tensorflow.TensorProto `protobuf:"bytes,2,rep,name=inputs,proto3" json:"inputs,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *RegressionRequest) Reset()         { *m = RegressionRequest{} }
func (m *RegressionRequest) String() string { return messageString(m) }
func (*RegressionRequest) ProtoMessage()    {}

func (m *RegressionRequest) GetModelSpec() *ModelSpec {
	if m != nil {
		return m.ModelSpec
	}
	return nil
}

func (m *RegressionRequest) GetInputs() map[string]*tensorflow.TensorProto {
	if m != nil {
		return m.Inputs
	}
	return nil
}

type RegressionResponse struct {
	ModelSpec *ModelSpec        `protobuf:"bytes,2,opt,name=model_spec,json=modelSpec,proto3" json:"model_spec,omitempty"`
	Result    *RegressionResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *RegressionResponse) Reset()         { *m = RegressionResponse{} }
func (m *RegressionResponse) String() string { return messageString(m) }
func (*RegressionResponse) ProtoMessage()    {}

func (m *RegressionResponse) GetModelSpec() *ModelSpec {
	if m != nil {
		return m.ModelSpec
	}
	return nil
}

func (m *RegressionResponse) GetResult() *RegressionResult {
	if m != nil {
		return m.Result
	}
	return nil
}
