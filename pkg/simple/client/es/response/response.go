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

// Package response decodes raw Elasticsearch http responses into
// typed results or API errors.
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ApiError is returned by Parse for any non 2xx response.
type ApiError struct {
	Status    int
	Type      string
	Reason    string
	RootCause []Cause
}

type Cause struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (e *ApiError) Error() string {
	if len(e.RootCause) != 0 {
		return fmt.Sprintf("[%d] type: %s, reason: %s", e.Status, e.RootCause[0].Type, e.RootCause[0].Reason)
	}
	return fmt.Sprintf("[%d] type: %s, reason: %s", e.Status, e.Type, e.Reason)
}

// errorEnvelope is the body of a failed request. Very old nodes send error as a plain string.
type errorEnvelope struct {
	Error  json.RawMessage `json:"error"`
	Status int             `json:"status"`
}

type errorDetails struct {
	Type      string  `json:"type"`
	Reason    string  `json:"reason"`
	RootCause []Cause `json:"root_cause"`
}

// Parse reads and closes the response body. A 2xx body is decoded into v,
// which may be nil when the body is not needed; anything else returns an *ApiError.
func Parse(res *http.Response, v interface{}) error {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if !isSuccess(res.StatusCode) {
		return parseError(res, body)
	}

	if v == nil || len(body) == 0 {
		return nil
	}

	if err := jsoniter.Unmarshal(body, v); err != nil {
		klog.Error(err)
		return errors.Wrap(err, "failed to decode response body")
	}
	return nil
}

// Exists interprets the response of a HEAD request: 200 is true, 404 is false.
func Exists(res *http.Response) (bool, error) {
	err := Parse(res, nil)
	switch {
	case err == nil:
		return true, nil
	case IsNotFound(err):
		return false, nil
	}
	return false, err
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	e, ok := errors.Cause(err).(*ApiError)
	return ok && e.Status == http.StatusNotFound
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func parseError(res *http.Response, body []byte) error {
	apiErr := &ApiError{
		Status: res.StatusCode,
		Reason: http.StatusText(res.StatusCode),
	}

	var envelope errorEnvelope
	if len(body) == 0 || jsoniter.Unmarshal(body, &envelope) != nil || len(envelope.Error) == 0 {
		return apiErr
	}

	if envelope.Status != 0 {
		apiErr.Status = envelope.Status
	}

	var details errorDetails
	if err := jsoniter.Unmarshal(envelope.Error, &details); err == nil {
		apiErr.Type = details.Type
		apiErr.Reason = details.Reason
		apiErr.RootCause = details.RootCause
		return apiErr
	}

	var reason string
	if err := jsoniter.Unmarshal(envelope.Error, &reason); err == nil {
		apiErr.Reason = reason
	}
	return apiErr
}
