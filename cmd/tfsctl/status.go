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
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/mintfs/tfsclient/pkg/serving"
)

func newStatusCommand(cfg *connectionConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "status MODEL",
		Short: "Report the state of every loaded version of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cfg.connect()
			if err != nil {
				return err
			}
			defer c.Close()
			resp, err := c.ModelStatus(cmd.Context(), args[0], cfg.Timeout, cfg.requestOptions()...)
			if err != nil {
				return err
			}
			rendered, err := renderStatus(resp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func renderStatus(resp *serving.GetModelStatusResponse) (string, error) {
	type versionStatus struct {
		Version      int64  `json:"version"`
		State        string `json:"state"`
		ErrorCode    int32  `json:"error_code,omitempty"`
		ErrorMessage string `json:"error_message,omitempty"`
	}
	statuses := make([]versionStatus, 0, len(resp.GetModelVersionStatus()))
	for _, s := range resp.GetModelVersionStatus() {
		statuses = append(statuses, versionStatus{
			Version:      s.GetVersion(),
			State:        s.GetState().String(),
			ErrorCode:    s.GetStatus().GetErrorCode(),
			ErrorMessage: s.GetStatus().GetErrorMessage(),
		})
	}
	return jsoniter.MarshalToString(statuses)
}
