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

package main

import (
	"crypto/tls"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc/credentials"

	"github.com/mintfs/tfsclient/pkg/client"
)

// connectionConfig holds the connection settings. Environment variables
// (TFS_HOST, TFS_PORT, ...) provide defaults; flags override them.
type connectionConfig struct {
	Host          string        `envconfig:"HOST" default:"localhost"`
	Port          int           `envconfig:"PORT" default:"8500"`
	Socket        string        `envconfig:"SOCKET"`
	TLS           bool          `envconfig:"TLS"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"60s"`
	MaxMessageMiB int           `envconfig:"MAX_MESSAGE_MIB" default:"512"`
	ModelVersion  int64         `envconfig:"MODEL_VERSION" default:"-1"`
	SignatureName string        `envconfig:"SIGNATURE_NAME"`
	Verbose       bool          `envconfig:"VERBOSE"`
}

func newRootCommand() (*cobra.Command, error) {
	var cfg connectionConfig
	if err := envconfig.Process("tfs", &cfg); err != nil {
		return nil, errors.Wrap(err, "reading TFS_* environment")
	}

	root := &cobra.Command{
		Use:          "tfsctl",
		Short:        "Send inference and status calls to a TensorFlow Serving backend",
		SilenceUsage: true,
	}
	bindConnectionFlags(root.PersistentFlags(), &cfg)

	root.AddCommand(newPredictCommand(&cfg))
	root.AddCommand(newStatusCommand(&cfg))
	return root, nil
}

// bindConnectionFlags registers the connection flags with the environment
// values as defaults, so flags always win over TFS_* variables.
func bindConnectionFlags(flags *pflag.FlagSet, cfg *connectionConfig) {
	flags.StringVar(&cfg.Host, "host", cfg.Host, "serving host")
	flags.IntVar(&cfg.Port, "port", cfg.Port, "serving gRPC port")
	flags.StringVar(&cfg.Socket, "socket", cfg.Socket, "unix socket path, overrides host/port")
	flags.BoolVar(&cfg.TLS, "tls", cfg.TLS, "dial with TLS")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-call deadline")
	flags.IntVar(&cfg.MaxMessageMiB, "max-message-mib", cfg.MaxMessageMiB, "max send/receive message size in MiB")
	flags.Int64Var(&cfg.ModelVersion, "model-version", cfg.ModelVersion, "exact model version, -1 for latest")
	flags.StringVar(&cfg.SignatureName, "signature-name", cfg.SignatureName, "signature to call")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "debug logging")
}

func (cfg *connectionConfig) logger() *zap.Logger {
	if cfg.Verbose {
		log, _ := zap.NewDevelopment()
		return log
	}
	log, _ := zap.NewProduction()
	return log
}

func (cfg *connectionConfig) target() string {
	if cfg.Socket != "" {
		return client.SocketAddress(cfg.Socket)
	}
	return client.Address(cfg.Host, cfg.Port)
}

func (cfg *connectionConfig) connect() (*client.TensorServingClient, error) {
	opts := []client.Option{
		client.WithChannelOptions(client.ChannelOptions{
			MaxSendMessageSizeMiB:    cfg.MaxMessageMiB,
			MaxReceiveMessageSizeMiB: cfg.MaxMessageMiB,
		}),
		client.WithLogger(cfg.logger()),
	}
	if cfg.TLS {
		opts = append(opts, client.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
	}
	return client.New(cfg.target(), opts...)
}

func (cfg *connectionConfig) requestOptions() []client.RequestOption {
	var opts []client.RequestOption
	if cfg.ModelVersion >= 0 {
		opts = append(opts, client.WithModelVersion(cfg.ModelVersion))
	}
	if cfg.SignatureName != "" {
		opts = append(opts, client.WithSignatureName(cfg.SignatureName))
	}
	return opts
}
