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

package es

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	DefaultBaseURL = "http://localhost:9200"

	contentTypeJSON = "application/json"
)

// RequestParams holds the base url, url query parameters and headers sent with every request.
//
// Builder methods never modify the receiver, they return an updated copy.
// A single value can therefore be shared between goroutines and adjusted per request:
//
//	params := es.DefaultRequestParams().
//		URLParam("pretty", true).
//		URLParam("q", "*")
type RequestParams struct {
	baseURL   string
	urlParams map[string]string
	headers   http.Header
}

// NewRequestParams creates params for the node at base.
// The Content-Type header is set to application/json.
func NewRequestParams(base string) *RequestParams {
	headers := http.Header{}
	headers.Set("Content-Type", contentTypeJSON)

	return &RequestParams{
		baseURL:   base,
		urlParams: map[string]string{},
		headers:   headers,
	}
}

// DefaultRequestParams creates params for http://localhost:9200.
func DefaultRequestParams() *RequestParams {
	return NewRequestParams(DefaultBaseURL)
}

func (p *RequestParams) clone() *RequestParams {
	c := &RequestParams{
		baseURL:   p.baseURL,
		urlParams: make(map[string]string, len(p.urlParams)),
		headers:   p.headers.Clone(),
	}
	for k, v := range p.urlParams {
		c.urlParams[k] = v
	}
	if c.headers == nil {
		c.headers = http.Header{}
	}
	return c
}

// BaseURL sets the base url for the Elasticsearch node.
func (p *RequestParams) BaseURL(base string) *RequestParams {
	c := p.clone()
	c.baseURL = base
	return c
}

// URLParam sets a url query parameter, replacing any previous value of key.
// The value is sent in its default format, e.g. true, 10 or *.
func (p *RequestParams) URLParam(key string, value interface{}) *RequestParams {
	c := p.clone()
	c.urlParams[key] = fmt.Sprint(value)
	return c
}

// Header sets a header, replacing any previous values with the same canonical name.
func (p *RequestParams) Header(name, value string) *RequestParams {
	c := p.clone()
	c.headers.Set(name, value)
	return c
}

func (p *RequestParams) GetBaseURL() string {
	return p.baseURL
}

// Headers returns a copy of the headers.
func (p *RequestParams) Headers() http.Header {
	return p.headers.Clone()
}

// URLParams returns a copy of the url query parameters.
func (p *RequestParams) URLParams() map[string]string {
	c := make(map[string]string, len(p.urlParams))
	for k, v := range p.urlParams {
		c[k] = v
	}
	return c
}

// URLQuery returns the url query parameters in application/x-www-form-urlencoded form,
// prefixed with '?' and sorted by key, along with its length.
// It returns 0 and an empty string when there are no parameters.
func (p *RequestParams) URLQuery() (int, string) {
	if len(p.urlParams) == 0 {
		return 0, ""
	}

	keys := make([]string, 0, len(p.urlParams))
	for k := range p.urlParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		writeFormEncoded(&b, k)
		b.WriteByte('=')
		writeFormEncoded(&b, p.urlParams[k])
	}

	qry := b.String()
	return len(qry), qry
}

const upperhex = "0123456789ABCDEF"

// writeFormEncoded appends s using the application/x-www-form-urlencoded byte serializer:
// alphanumerics and *-._ are kept, space becomes '+', anything else is percent-encoded.
func writeFormEncoded(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '*' || c == '-' || c == '.' || c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
}
