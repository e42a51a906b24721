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
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/opensearch-project/opensearch-go/v2"
)

const (
	TransportHTTP          = "http"
	TransportElasticsearch = "elasticsearch"
	TransportOpensearch    = "opensearch"
)

type HttpClient interface {
	// Do is an interface of http client Do method,
	// that sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// HTTPTransport performs requests with a plain http client, the url is used as built.
type HTTPTransport struct {
	client HttpClient
}

var _ esapi.Transport = &HTTPTransport{}

func NewHTTPTransport(client HttpClient) *HTTPTransport {
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Perform(req *http.Request) (*http.Response, error) {
	return t.client.Do(req)
}

// NewTransport creates the transport selected by o.Transport.
//
// The elasticsearch and opensearch transports route every request to their
// own node pool, created from o.Host: the scheme and host of the built url are
// replaced by the selected node.
func NewTransport(o *Options) (esapi.Transport, error) {
	rt := http.DefaultTransport.(*http.Transport).Clone()
	if o.InsecureSkipVerify {
		rt.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if o.Transport != TransportHTTP && o.Transport != "" {
		rt.ResponseHeaderTimeout = o.Timeout
	}
	return newTransport(o, rt)
}

func newTransport(o *Options, rt http.RoundTripper) (esapi.Transport, error) {
	switch o.Transport {
	case TransportHTTP, "":
		return NewHTTPTransport(&http.Client{Transport: rt, Timeout: o.Timeout}), nil
	case TransportElasticsearch:
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{o.Host},
			Transport: rt,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case TransportOpensearch:
		client, err := opensearch.NewClient(opensearch.Config{
			Addresses: []string{o.Host},
			Transport: rt,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported transport %s", o.Transport)
	}
}
