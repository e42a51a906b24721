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
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"k8s.io/klog/v2"

	"kubesphere.io/esclient/pkg/simple/client/es/request"
)

// Elasticsearch client
//
// Client sends typed requests to Elasticsearch and returns the raw http response.
// Status codes and bodies are left to the caller, see the response package.
type Client struct {
	transport esapi.Transport
}

// NewClient creates a client on top of transport.
// Any esapi.Transport works: HTTPTransport, a go-elasticsearch or an opensearch-go client.
func NewClient(transport esapi.Transport) *Client {
	return &Client{transport: transport}
}

// NewDefaultClient creates a client with default http settings,
// along with request params for http://localhost:9200.
func NewDefaultClient() (*Client, *RequestParams) {
	return NewClient(NewHTTPTransport(&http.Client{})), DefaultRequestParams()
}

// NewRequest builds the http request for req: the url from the params base url,
// the request path and the url query, the verb of the request, its body and the params headers.
func NewRequest(ctx context.Context, params *RequestParams, req request.Request) (*http.Request, error) {
	var body io.Reader
	if b := req.Body(); b != nil {
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, buildMethod(req.Method()), buildURL(req.URL(), params), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = params.Headers()

	return httpReq, nil
}

// ElasticReq sends req and blocks until the transport returns.
// Transport errors are returned unchanged.
func (c *Client) ElasticReq(ctx context.Context, params *RequestParams, req request.Request) (*http.Response, error) {
	httpReq, err := NewRequest(ctx, params, req)
	if err != nil {
		return nil, err
	}

	klog.V(4).Infof("elasticsearch request: %s %s", httpReq.Method, httpReq.URL.Redacted())

	return c.transport.Perform(httpReq)
}

// ElasticReqAsync sends req in the background. The returned future resolves
// to whatever ElasticReq would have returned.
func (c *Client) ElasticReqAsync(ctx context.Context, params *RequestParams, req request.Request) *Future {
	f := newFuture()
	go func() {
		f.resolve(c.ElasticReq(ctx, params, req))
	}()
	return f
}
