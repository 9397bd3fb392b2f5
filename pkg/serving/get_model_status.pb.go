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

// Mirror of tensorflow_serving/apis/get_model_status.proto.

package serving

import "strconv"

type GetModelStatusRequest struct {
	ModelSpec *ModelSpec `protobuf:"bytes,1,opt,name=model_spec,json=modelSpec,proto3" json:"model_spec,omitempty"`
}

func (m *GetModelStatusRequest) Reset()         { *m = GetModelStatusRequest{} }
func (m *GetModelStatusRequest) String() string { return messageString(m) }
func (*GetModelStatusRequest) ProtoMessage()    {}

func (m *GetModelStatusRequest) GetModelSpec() *ModelSpec {
	if m != nil {
		return m.ModelSpec
	}
	return nil
}

// ModelVersionStatus_State tracks a servable version through its lifecycle.
// The gaps between values are part of the published schema.
type ModelVersionStatus_State int32

const (
	ModelVersionStatus_UNKNOWN   ModelVersionStatus_State = 0
	ModelVersionStatus_START     ModelVersionStatus_State = 10
	ModelVersionStatus_LOADING   ModelVersionStatus_State = 20
	ModelVersionStatus_AVAILABLE ModelVersionStatus_State = 30
	ModelVersionStatus_UNLOADING ModelVersionStatus_State = 40
	ModelVersionStatus_END       ModelVersionStatus_State = 50
)

var ModelVersionStatus_State_name = map[int32]string{
	0:  "UNKNOWN",
	10: "START",
	20: "LOADING",
	30: "AVAILABLE",
	40: "UNLOADING",
	50: "END",
}

var ModelVersionStatus_State_value = map[string]int32{
	"UNKNOWN":   0,
	"START":     10,
	"LOADING":   20,
	"AVAILABLE": 30,
	"UNLOADING": 40,
	"END":       50,
}

func (x ModelVersionStatus_State) String() string {
	if s, ok := ModelVersionStatus_State_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// StatusProto carries the error state of a version that failed to load.
type StatusProto struct {
	ErrorCode    int32  `protobuf:"varint,1,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
}

func (m *StatusProto) Reset()         { *m = StatusProto{} }
func (m *StatusProto) String() string { return messageString(m) }
func (*StatusProto) ProtoMessage()    {}

func (m *StatusProto) GetErrorCode() int32 {
	if m != nil {
		return m.ErrorCode
	}
	return 0
}

func (m *StatusProto) GetErrorMessage() string {
	if m != nil {
		return m.ErrorMessage
	}
	return ""
}

type ModelVersionStatus struct {
	Version int64                    `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	State   ModelVersionStatus_State `protobuf:"varint,2,opt,name=state,proto3,enum=tensorflow.serving.ModelVersionStatus_State" json:"state,omitempty"`
	Status  *StatusProto             `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *ModelVersionStatus) Reset()         { *m = ModelVersionStatus{} }
func (m *ModelVersionStatus) String() string { return messageString(m) }
func (*ModelVersionStatus) ProtoMessage()    {}

func (m *ModelVersionStatus) GetVersion() int64 {
	if m != nil {
		return m.Version
	}
	return 0
}

func (m *ModelVersionStatus) GetState() ModelVersionStatus_State {
	if m != nil {
		return m.State
	}
	return ModelVersionStatus_UNKNOWN
}

func (m *ModelVersionStatus) GetStatus() *StatusProto {
	if m != nil {
		return m.Status
	}
	return nil
}

type GetModelStatusResponse struct {
	ModelVersionStatus []*ModelVersionStatus `protobuf:"bytes,1,rep,name=model_version_status,json=modelVersionStatus,proto3" json:"model_version_status,omitempty"`
}

func (m *GetModelStatusResponse) Reset()         { *m = GetModelStatusResponse{} }
func (m *GetModelStatusResponse) String() string { return messageString(m) }
func (*GetModelStatusResponse) ProtoMessage()    {}

func (m *GetModelStatusResponse) GetModelVersionStatus() []*ModelVersionStatus {
	if m != nil {
		return m.ModelVersionStatus
	}
	return nil
}
