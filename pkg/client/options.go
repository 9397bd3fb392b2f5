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
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"go.uber.org/zap"
)

const mib = 1024 * 1024

// ChannelOptions sets per-channel gRPC limits. Sizes are in MiB and are
// multiplied up to bytes when the channel is built.
type ChannelOptions struct {
	MaxSendMessageSizeMiB    int
	MaxReceiveMessageSizeMiB int
}

// DefaultChannelOptions matches the 512 MiB send/receive limits the client
// has always shipped with.
func DefaultChannelOptions() ChannelOptions {
	return ChannelOptions{
		MaxSendMessageSizeMiB:    512,
		MaxReceiveMessageSizeMiB: 512,
	}
}

func (o ChannelOptions) callOptions() []grpc.CallOption {
	return []grpc.CallOption{
		grpc.MaxCallSendMsgSize(o.MaxSendMessageSizeMiB * mib),
		grpc.MaxCallRecvMsgSize(o.MaxReceiveMessageSizeMiB * mib),
	}
}

type clientOptions struct {
	creds   credentials.TransportCredentials
	channel ChannelOptions
	dial    []grpc.DialOption
	log     *zap.Logger
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		creds:   insecure.NewCredentials(),
		channel: DefaultChannelOptions(),
		log:     zap.NewNop(),
	}
}

// Option configures the client at construction time.
type Option func(*clientOptions)

// WithTransportCredentials switches the channel from plaintext to the given
// credentials, typically credentials.NewTLS.
func WithTransportCredentials(creds credentials.TransportCredentials) Option {
	return func(o *clientOptions) { o.creds = creds }
}

// WithChannelOptions overrides the default message size limits.
func WithChannelOptions(channel ChannelOptions) Option {
	return func(o *clientOptions) { o.channel = channel }
}

// WithDialOptions appends raw grpc dial options for anything the dedicated
// options do not cover.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *clientOptions) { o.dial = append(o.dial, opts...) }
}

// WithLogger enables debug logging of outbound calls.
func WithLogger(log *zap.Logger) Option {
	return func(o *clientOptions) { o.log = log }
}
