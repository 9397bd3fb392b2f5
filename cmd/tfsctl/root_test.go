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
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommandRejectsMalformedEnvironment(t *testing.T) {
	t.Setenv("TFS_TIMEOUT", "not-a-duration")
	_, err := newRootCommand()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TFS_TIMEOUT")
}

func TestNewRootCommandEnvironmentSeedsFlagDefaults(t *testing.T) {
	t.Setenv("TFS_HOST", "serving.internal")
	t.Setenv("TFS_PORT", "9000")

	root, err := newRootCommand()
	require.NoError(t, err)

	flags := root.PersistentFlags()
	assert.Equal(t, "serving.internal", flags.Lookup("host").DefValue)
	assert.Equal(t, "9000", flags.Lookup("port").DefValue)
	assert.Equal(t, "1m0s", flags.Lookup("timeout").DefValue)
	assert.Equal(t, "512", flags.Lookup("max-message-mib").DefValue)
	assert.Equal(t, "-1", flags.Lookup("model-version").DefValue)
}

func TestBindConnectionFlagsOverrideEnvironment(t *testing.T) {
	cfg := connectionConfig{Host: "localhost", Port: 8500, Timeout: 60 * time.Second}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindConnectionFlags(flags, &cfg)

	require.NoError(t, flags.Parse([]string{"--host", "other", "--timeout", "5s"}))
	assert.Equal(t, "other", cfg.Host)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 8500, cfg.Port)
}
