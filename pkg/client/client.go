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

// Package client talks to a TensorFlow Serving backend over gRPC: it builds
// inference requests from native tensors, sends them on one shared channel,
// and decodes named outputs back into tensors. The client applies no retry
// or backoff; RPC failures surface to the caller as returned.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/mintfs/tfsclient/pkg/serving"
	"github.com/mintfs/tfsclient/pkg/tensor"
)

// Address formats a host/port pair as a gRPC target.
func Address(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}

// SocketAddress formats a unix socket path as a gRPC target.
func SocketAddress(path string) string {
	return "unix://" + path
}

// TensorServingClient issues inference and status calls against one serving
// backend over a single shared channel. It is safe for concurrent use.
type TensorServingClient struct {
	conn       *grpc.ClientConn
	prediction serving.PredictionServiceClient
	model      serving.ModelServiceClient
	log        *zap.Logger
}

// New connects to the given target (see Address and SocketAddress). The
// channel is plaintext unless WithTransportCredentials is supplied.
func New(target string, opts ...Option) (*TensorServingClient, error) {
	o := defaultClientOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(o.creds),
		grpc.WithDefaultCallOptions(o.channel.callOptions()...),
	}, o.dial...)
	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", target)
	}
	return &TensorServingClient{
		conn:       conn,
		prediction: serving.NewPredictionServiceClient(conn),
		model:      serving.NewModelServiceClient(conn),
		log:        o.log,
	}, nil
}

// Close tears down the shared channel.
func (c *TensorServingClient) Close() error {
	return c.conn.Close()
}

func (c *TensorServingClient) callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Predict encodes the inputs, issues a Predict call, and returns the raw
// response. Use ExtractOutputs to turn the response back into tensors.
func (c *TensorServingClient) Predict(ctx context.Context, modelName string, inputs map[string]*tensor.Tensor, timeout time.Duration, opts ...RequestOption) (*serving.PredictResponse, error) {
	request, err := NewPredictRequest(modelName, inputs, opts...)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx, timeout)
	defer cancel()
	c.log.Debug("predict", zap.String("model", modelName), zap.Int("inputs", len(inputs)))
	response, err := c.prediction.Predict(ctx, request)
	if err != nil {
		return nil, errors.Wrapf(err, "predict on model %q", modelName)
	}
	return response, nil
}

// Classify issues a Classify call with the given named inputs.
func (c *TensorServingClient) Classify(ctx context.Context, modelName string, inputs map[string]*tensor.Tensor, timeout time.Duration, opts ...RequestOption) (*serving.ClassificationResponse, error) {
	request, err := NewClassificationRequest(modelName, inputs, opts...)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx, timeout)
	defer cancel()
	c.log.Debug("classify", zap.String("model", modelName), zap.Int("inputs", len(inputs)))
	response, err := c.prediction.Classify(ctx, request)
	if err != nil {
		return nil, errors.Wrapf(err, "classify on model %q", modelName)
	}
	return response, nil
}

// Regress issues a Regress call with the given named inputs.
func (c *TensorServingClient) Regress(ctx context.Context, modelName string, inputs map[string]*tensor.Tensor, timeout time.Duration, opts ...RequestOption) (*serving.RegressionResponse, error) {
	request, err := NewRegressionRequest(modelName, inputs, opts...)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx, timeout)
	defer cancel()
	c.log.Debug("regress", zap.String("model", modelName), zap.Int("inputs", len(inputs)))
	response, err := c.prediction.Regress(ctx, request)
	if err != nil {
		return nil, errors.Wrapf(err, "regress on model %q", modelName)
	}
	return response, nil
}

// ModelStatus reports the state of every loaded version of a model.
func (c *TensorServingClient) ModelStatus(ctx context.Context, modelName string, timeout time.Duration, opts ...RequestOption) (*serving.GetModelStatusResponse, error) {
	request, err := NewModelStatusRequest(modelName, opts...)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx, timeout)
	defer cancel()
	c.log.Debug("model status", zap.String("model", modelName))
	response, err := c.model.GetModelStatus(ctx, request)
	if err != nil {
		return nil, errors.Wrapf(err, "status of model %q", modelName)
	}
	return response, nil
}
