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
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/x448/float16"

	"github.com/mintfs/tfsclient/pkg/client"
	"github.com/mintfs/tfsclient/pkg/tensor"
)

func newPredictCommand(cfg *connectionConfig) *cobra.Command {
	var inputFile string
	cmd := &cobra.Command{
		Use:   "predict MODEL",
		Short: "Send a predict request built from a JSON input spec",
		Long: `Send a predict request built from a JSON input spec of the form

  {"input_name": {"dtype": "DT_FLOAT", "shape": [2], "values": [0.1, 0.2]}}

Complex dtypes list real/imaginary pairs flat, so shape [2] needs 4 values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return err
			}
			inputs, err := parseInputSpec(data)
			if err != nil {
				return err
			}
			c, err := cfg.connect()
			if err != nil {
				return err
			}
			defer c.Close()
			resp, err := c.Predict(cmd.Context(), args[0], inputs, cfg.Timeout, cfg.requestOptions()...)
			if err != nil {
				return err
			}
			outputs, err := client.ExtractOutputs(resp)
			if err != nil {
				return err
			}
			rendered, err := renderOutputs(outputs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "inputs", "i", "", "path to the JSON input spec (required)")
	_ = cmd.MarkFlagRequired("inputs")
	return cmd
}

// parseInputSpec turns the JSON input spec into named tensors.
func parseInputSpec(data []byte) (map[string]*tensor.Tensor, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("input spec must be a JSON object keyed by input name")
	}
	inputs := map[string]*tensor.Tensor{}
	var firstErr error
	root.ForEach(func(key, value gjson.Result) bool {
		t, err := parseInputTensor(value)
		if err != nil {
			firstErr = errors.Wrapf(err, "input %q", key.String())
			return false
		}
		inputs[key.String()] = t
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if len(inputs) == 0 {
		return nil, errors.New("input spec has no inputs")
	}
	return inputs, nil
}

func parseInputTensor(spec gjson.Result) (*tensor.Tensor, error) {
	dt, err := tensor.FromName(spec.Get("dtype").String())
	if err != nil {
		return nil, err
	}
	var shape tensor.Shape
	for _, d := range spec.Get("shape").Array() {
		shape = append(shape, d.Int())
	}
	values := spec.Get("values").Array()
	switch dt {
	case tensor.Half:
		v := make([]float16.Float16, len(values))
		for i, x := range values {
			v[i] = float16.Fromfloat32(float32(x.Float()))
		}
		return tensor.New(shape, v)
	case tensor.Float:
		v := make([]float32, len(values))
		for i, x := range values {
			v[i] = float32(x.Float())
		}
		return tensor.New(shape, v)
	case tensor.Double:
		v := make([]float64, len(values))
		for i, x := range values {
			v[i] = x.Float()
		}
		return tensor.New(shape, v)
	case tensor.Int8:
		v := make([]int8, len(values))
		for i, x := range values {
			v[i] = int8(x.Int())
		}
		return tensor.New(shape, v)
	case tensor.Int16:
		v := make([]int16, len(values))
		for i, x := range values {
			v[i] = int16(x.Int())
		}
		return tensor.New(shape, v)
	case tensor.Int32:
		v := make([]int32, len(values))
		for i, x := range values {
			v[i] = int32(x.Int())
		}
		return tensor.New(shape, v)
	case tensor.Int64:
		v := make([]int64, len(values))
		for i, x := range values {
			v[i] = x.Int()
		}
		return tensor.New(shape, v)
	case tensor.Uint8:
		v := make([]uint8, len(values))
		for i, x := range values {
			v[i] = uint8(x.Uint())
		}
		return tensor.New(shape, v)
	case tensor.Uint16:
		v := make([]uint16, len(values))
		for i, x := range values {
			v[i] = uint16(x.Uint())
		}
		return tensor.New(shape, v)
	case tensor.Uint32:
		v := make([]uint32, len(values))
		for i, x := range values {
			v[i] = uint32(x.Uint())
		}
		return tensor.New(shape, v)
	case tensor.Uint64:
		v := make([]uint64, len(values))
		for i, x := range values {
			v[i] = x.Uint()
		}
		return tensor.New(shape, v)
	case tensor.Complex64:
		if len(values)%2 != 0 {
			return nil, errors.New("complex values must come in real/imaginary pairs")
		}
		v := make([]complex64, len(values)/2)
		for i := range v {
			v[i] = complex(float32(values[2*i].Float()), float32(values[2*i+1].Float()))
		}
		return tensor.New(shape, v)
	case tensor.Complex128:
		if len(values)%2 != 0 {
			return nil, errors.New("complex values must come in real/imaginary pairs")
		}
		v := make([]complex128, len(values)/2)
		for i := range v {
			v[i] = complex(values[2*i].Float(), values[2*i+1].Float())
		}
		return tensor.New(shape, v)
	case tensor.Bool:
		v := make([]bool, len(values))
		for i, x := range values {
			v[i] = x.Bool()
		}
		return tensor.New(shape, v)
	case tensor.String:
		v := make([]string, len(values))
		for i, x := range values {
			v[i] = x.String()
		}
		return tensor.FromStrings(shape, v)
	default:
		return nil, &tensor.UnsupportedTypeError{Type: dt.String()}
	}
}

// renderOutputs serializes decoded output tensors back into the same JSON
// shape the input spec uses.
func renderOutputs(outputs map[string]*tensor.Tensor) (string, error) {
	rendered := make(map[string]any, len(outputs))
	for name, t := range outputs {
		values, err := flatValues(t)
		if err != nil {
			return "", errors.Wrapf(err, "output %q", name)
		}
		rendered[name] = map[string]any{
			"dtype":  t.DType().String(),
			"shape":  t.Shape(),
			"values": values,
		}
	}
	return jsoniter.MarshalToString(rendered)
}

func flatValues(t *tensor.Tensor) (any, error) {
	switch t.DType() {
	case tensor.Half:
		v, err := tensor.Values[float16.Float16](t)
		if err != nil {
			return nil, err
		}
		out := make([]float32, len(v))
		for i, x := range v {
			out[i] = x.Float32()
		}
		return out, nil
	case tensor.Float:
		return tensor.Values[float32](t)
	case tensor.Double:
		return tensor.Values[float64](t)
	case tensor.Int8:
		return tensor.Values[int8](t)
	case tensor.Int16:
		return tensor.Values[int16](t)
	case tensor.Int32:
		return tensor.Values[int32](t)
	case tensor.Int64:
		return tensor.Values[int64](t)
	case tensor.Uint8:
		return tensor.Values[uint8](t)
	case tensor.Uint16:
		return tensor.Values[uint16](t)
	case tensor.Uint32:
		return tensor.Values[uint32](t)
	case tensor.Uint64:
		return tensor.Values[uint64](t)
	case tensor.Complex64:
		v, err := tensor.Values[complex64](t)
		if err != nil {
			return nil, err
		}
		out := make([]float32, 0, 2*len(v))
		for _, x := range v {
			out = append(out, real(x), imag(x))
		}
		return out, nil
	case tensor.Complex128:
		v, err := tensor.Values[complex128](t)
		if err != nil {
			return nil, err
		}
		out := make([]float64, 0, 2*len(v))
		for _, x := range v {
			out = append(out, real(x), imag(x))
		}
		return out, nil
	case tensor.Bool:
		return tensor.Values[bool](t)
	case tensor.String:
		return t.Strings()
	default:
		return nil, &tensor.UnsupportedTypeError{Type: t.DType().String()}
	}
}
