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

// Package request describes Elasticsearch API calls as plain values:
// an HTTP verb, a path relative to the node's base url and an optional body.
package request

import (
	"fmt"
	"strings"
)

// HttpMethod is the closed set of verbs used by the Elasticsearch REST API.
type HttpMethod int

const (
	Get HttpMethod = iota
	Post
	Head
	Delete
	Put
	Patch
)

func (m HttpMethod) String() string {
	switch m {
	case Get:
		return "GET"
	case Post:
		return "POST"
	case Head:
		return "HEAD"
	case Delete:
		return "DELETE"
	case Put:
		return "PUT"
	case Patch:
		return "PATCH"
	}
	return "UNKNOWN"
}

// ParseHttpMethod parses a verb name, ignoring case.
func ParseHttpMethod(s string) (HttpMethod, error) {
	for _, m := range []HttpMethod{Get, Post, Head, Delete, Put, Patch} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unsupported http method %q", s)
}

// Request identifies a single endpoint call.
type Request interface {
	// Method is the HTTP verb of the endpoint.
	Method() HttpMethod
	// URL is the path of the endpoint, starting with a slash.
	URL() string
	// Body is the raw request body, nil if the endpoint takes none.
	Body() []byte
}

// HttpRequest is the Request implementation returned by the constructors in this package.
type HttpRequest struct {
	method HttpMethod
	url    string
	body   []byte
}

var _ Request = &HttpRequest{}

func New(method HttpMethod, url string, body []byte) *HttpRequest {
	return &HttpRequest{
		method: method,
		url:    url,
		body:   body,
	}
}

func (r *HttpRequest) Method() HttpMethod {
	return r.method
}

func (r *HttpRequest) URL() string {
	return r.url
}

func (r *HttpRequest) Body() []byte {
	return r.body
}
