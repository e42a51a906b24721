/*
Copyright 2023 The KubeSphere Authors.

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

package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"

	"kubesphere.io/esclient/pkg/simple/client/es/response"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// readBody reads a request body from a file, or from in when name is "-".
// An empty name means no body.
func readBody(in io.Reader, name string) ([]byte, error) {
	switch name {
	case "":
		return nil, nil
	case "-":
		return io.ReadAll(in)
	}
	return os.ReadFile(name)
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printResponse writes the body of a successful response, indented when it is json.
// Responses without a body, such as the ones to HEAD requests, print their status.
func printResponse(w io.Writer, res *http.Response) error {
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return response.Parse(res, nil)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		_, err = fmt.Fprintln(w, res.Status)
		return err
	}

	var out bytes.Buffer
	if json.Indent(&out, body, "", "  ") != nil {
		_, err = w.Write(body)
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
