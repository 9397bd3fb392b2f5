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

// Package tensorflow holds hand-maintained mirrors of the TensorFlow
// framework messages this client needs on the wire:
//
//	tensorflow/core/framework/types.proto        (DataType)
//	tensorflow/core/framework/tensor_shape.proto (TensorShapeProto)
//	tensorflow/core/framework/tensor.proto       (TensorProto)
//
// The messages carry standard protobuf struct tags with the published field
// numbers and enum values, so they marshal byte-for-byte compatibly with an
// unmodified serving backend once adapted through protoadapt. Fields this
// client never touches (resource handles, variants, quantized types) are
// omitted; unknown fields sent by a server are simply dropped on decode.
package tensorflow
