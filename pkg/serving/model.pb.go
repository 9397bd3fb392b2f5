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

// Mirror of tensorflow_serving/apis/model.proto.

package serving

import wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"

// ModelSpec identifies the model a request targets. Version pins an exact
// servable version; when nil the server picks the latest loaded one.
type ModelSpec struct {
	Name          string                `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Version       *wrapperspb.Int64Value `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	VersionLabel  string                `protobuf:"bytes,4,opt,name=version_label,json=versionLabel,proto3" json:"version_label,omitempty"`
	SignatureName string                `protobuf:"bytes,3,opt,name=signature_name,json=signatureName,proto3" json:"signature_name,omitempty"`
}

func (m *ModelSpec) Reset()         { *m = ModelSpec{} }
func (m *ModelSpec) String() string { return messageString(m) }
func (*ModelSpec) ProtoMessage()    {}

func (m *ModelSpec) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ModelSpec) GetVersion() *wrapperspb.Int64Value {
	if m != nil {
		return m.Version
	}
	return nil
}

func (m *ModelSpec) GetVersionLabel() string {
	if m != nil {
		return m.VersionLabel
	}
	return ""
}

func (m *ModelSpec) GetSignatureName() string {
	if m != nil {
		return m.SignatureName
	}
	return ""
}
