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

// Client stubs for tensorflow_serving/apis/prediction_service.proto and
// model_service.proto. Messages are adapted through protoadapt at the
// Invoke boundary so the standard proto codec can marshal them.

package serving

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/protoadapt"
)

const (
	PredictionService_Predict_FullMethodName   = "/tensorflow.serving.PredictionService/Predict"
	PredictionService_Classify_FullMethodName  = "/tensorflow.serving.PredictionService/Classify"
	PredictionService_Regress_FullMethodName   = "/tensorflow.serving.PredictionService/Regress"
	ModelService_GetModelStatus_FullMethodName = "/tensorflow.serving.ModelService/GetModelStatus"
)

// PredictionServiceClient is the client API for the PredictionService.
type PredictionServiceClient interface {
	Predict(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictResponse, error)
	Classify(ctx context.Context, in *ClassificationRequest, opts ...grpc.CallOption) (*ClassificationResponse, error)
	Regress(ctx context.Context, in *RegressionRequest, opts ...grpc.CallOption) (*RegressionResponse, error)
}

type predictionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPredictionServiceClient(cc grpc.ClientConnInterface) PredictionServiceClient {
	return &predictionServiceClient{cc}
}

func (c *predictionServiceClient) Predict(ctx context.Context, in *PredictRequest, opts ...grpc.CallOption) (*PredictResponse, error) {
	out := new(PredictResponse)
	err := c.invoke(ctx, PredictionService_Predict_FullMethodName, in, out, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *predictionServiceClient) Classify(ctx context.Context, in *ClassificationRequest, opts ...grpc.CallOption) (*ClassificationResponse, error) {
	out := new(ClassificationResponse)
	err := c.invoke(ctx, PredictionService_Classify_FullMethodName, in, out, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *predictionServiceClient) Regress(ctx context.Context, in *RegressionRequest, opts ...grpc.CallOption) (*RegressionResponse, error) {
	out := new(RegressionResponse)
	err := c.invoke(ctx, PredictionService_Regress_FullMethodName, in, out, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *predictionServiceClient) invoke(ctx context.Context, method string, in, out protoadapt.MessageV1, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, method, protoadapt.MessageV2Of(in), protoadapt.MessageV2Of(out), opts...)
}

// ModelServiceClient is the client API for the ModelService.
type ModelServiceClient interface {
	GetModelStatus(ctx context.Context, in *GetModelStatusRequest, opts ...grpc.CallOption) (*GetModelStatusResponse, error)
}

type modelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewModelServiceClient(cc grpc.ClientConnInterface) ModelServiceClient {
	return &modelServiceClient{cc}
}

func (c *modelServiceClient) GetModelStatus(ctx context.Context, in *GetModelStatusRequest, opts ...grpc.CallOption) (*GetModelStatusResponse, error) {
	out := new(GetModelStatusResponse)
	err := c.cc.Invoke(ctx, ModelService_GetModelStatus_FullMethodName, protoadapt.MessageV2Of(in), protoadapt.MessageV2Of(out), opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
