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

// Package serving holds hand-maintained mirrors of the TensorFlow Serving
// API messages (tensorflow_serving/apis/*.proto) and client stubs for the
// PredictionService and ModelService gRPC services.
//
// Field numbers match the published protos. Classification and regression
// requests here carry a named TensorProto input map like PredictRequest
// does; the Example-list input form of the published schema is not modeled.
package serving
