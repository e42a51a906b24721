/*
Copyright 2020 KubeSphere Authors

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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"kubesphere.io/esclient/pkg/simple/client/es/request"
	"kubesphere.io/esclient/pkg/simple/client/es/response"
)

type recordedRequest struct {
	Method      string
	URI         string
	ContentType string
	Body        string
}

func TestClient_ElasticReq(t *testing.T) {
	var tests = []struct {
		name     string
		params   func(base string) *RequestParams
		req      request.Request
		fakeCode int
		expected recordedRequest
	}{
		{
			name: "simple search with url params",
			params: func(base string) *RequestParams {
				return NewRequestParams(base).URLParam("pretty", true).URLParam("q", "*")
			},
			req:      request.SimpleSearch("myindex", "mytype"),
			fakeCode: http.StatusOK,
			expected: recordedRequest{
				Method:      http.MethodGet,
				URI:         "/myindex/mytype/_search?pretty=true&q=*",
				ContentType: "application/json",
			},
		},
		{
			name: "search with body",
			params: func(base string) *RequestParams {
				return NewRequestParams(base)
			},
			req:      request.Search("myindex", "", []byte(`{"query":{"match_all":{}}}`)),
			fakeCode: http.StatusOK,
			expected: recordedRequest{
				Method:      http.MethodPost,
				URI:         "/myindex/_search",
				ContentType: "application/json",
				Body:        `{"query":{"match_all":{}}}`,
			},
		},
		{
			name: "ping",
			params: func(base string) *RequestParams {
				return NewRequestParams(base)
			},
			req:      request.PingHead(),
			fakeCode: http.StatusOK,
			expected: recordedRequest{
				Method:      http.MethodHead,
				URI:         "/",
				ContentType: "application/json",
			},
		},
		{
			name: "overridden content type",
			params: func(base string) *RequestParams {
				return NewRequestParams(base).Header("Content-Type", "application/x-ndjson")
			},
			req:      request.Raw(request.Post, "/_bulk", []byte("{}\n")),
			fakeCode: http.StatusOK,
			expected: recordedRequest{
				Method:      http.MethodPost,
				URI:         "/_bulk",
				ContentType: "application/x-ndjson",
				Body:        "{}\n",
			},
		},
		{
			name: "error status is passed through",
			params: func(base string) *RequestParams {
				return NewRequestParams(base)
			},
			req:      request.DeleteDocument("myindex", "mytype", "1"),
			fakeCode: http.StatusNotFound,
			expected: recordedRequest{
				Method:      http.MethodDelete,
				URI:         "/myindex/mytype/1",
				ContentType: "application/json",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recorded := make(chan recordedRequest, 1)
			srv := mockElasticsearchService(recorded, test.fakeCode)
			defer srv.Close()

			c, _ := NewDefaultClient()
			res, err := c.ElasticReq(context.Background(), test.params(srv.URL), test.req)
			if err != nil {
				t.Fatal(err)
			}
			defer res.Body.Close()

			if res.StatusCode != test.fakeCode {
				t.Fatalf("expected status %d, got %d", test.fakeCode, res.StatusCode)
			}
			if diff := cmp.Diff(<-recorded, test.expected); diff != "" {
				t.Fatalf("%T differ (-got, +want): %s", test.expected, diff)
			}
		})
	}
}

func TestClient_ElasticReqAsync(t *testing.T) {
	srv := mockElasticsearchFile("/", "es7_info_200.json", http.StatusOK)
	defer srv.Close()

	c, _ := NewDefaultClient()
	future := c.ElasticReqAsync(context.Background(), NewRequestParams(srv.URL), request.Info())

	select {
	case <-future.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("request did not complete")
	}

	res, err := future.Wait()
	if err != nil {
		t.Fatal(err)
	}

	var info response.PingResponse
	if err := response.Parse(res, &info); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(info.Version.Number, "7.10.2"); diff != "" {
		t.Fatalf("version differ (-got, +want): %s", diff)
	}

	// Wait is repeatable
	if res2, _ := future.Wait(); res2 != res {
		t.Fatal("expected the same response from a second Wait")
	}
}

func TestFuture_WaitContext(t *testing.T) {
	f := newFuture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.WaitContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	f.resolve(nil, io.EOF)
	if _, err := f.WaitContext(context.Background()); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

type trackedBody struct {
	io.Reader
	closed chan struct{}
}

func (b *trackedBody) Close() error {
	close(b.closed)
	return nil
}

func TestFuture_WaitContextClosesLateResponse(t *testing.T) {
	f := newFuture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.WaitContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// giving up twice must not close the body twice
	if _, err := f.WaitContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	body := &trackedBody{Reader: strings.NewReader(`{"acknowledged":true}`), closed: make(chan struct{})}
	res := &http.Response{StatusCode: http.StatusOK, Body: body}
	f.resolve(res, nil)

	select {
	case <-body.closed:
	case <-time.After(10 * time.Second):
		t.Fatal("the late response body was not closed")
	}

	if got, err := f.Wait(); got != res || err != nil {
		t.Fatalf("expected the late response from Wait, got %v, %v", got, err)
	}
}

type failingClient struct {
	err error
	req *http.Request
}

func (c *failingClient) Do(req *http.Request) (*http.Response, error) {
	c.req = req
	return nil, c.err
}

func TestClient_TransportErrorIsNotWrapped(t *testing.T) {
	transportErr := errors.New("dial tcp 127.0.0.1:9200: connect: connection refused")
	fc := &failingClient{err: transportErr}
	c := NewClient(NewHTTPTransport(fc))

	_, err := c.ElasticReq(context.Background(), DefaultRequestParams(), request.Info())
	if err != transportErr {
		t.Fatalf("expected the transport error unchanged, got %v", err)
	}
	if diff := cmp.Diff(fc.req.URL.String(), "http://localhost:9200/"); diff != "" {
		t.Fatalf("url differ (-got, +want): %s", diff)
	}

	_, err = c.ElasticReqAsync(context.Background(), DefaultRequestParams(), request.Info()).Wait()
	if err != transportErr {
		t.Fatalf("expected the transport error unchanged, got %v", err)
	}
}

func TestNewRequest(t *testing.T) {
	params := NewRequestParams("http://eshost:9200").URLParam("pretty", true).Header("X-Opaque-Id", "abc")

	req, err := NewRequest(context.Background(), params, request.Search("myindex", "mytype", []byte(`{}`)))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(req.URL.String(), "http://eshost:9200/myindex/mytype/_search?pretty=true"); diff != "" {
		t.Fatalf("url differ (-got, +want): %s", diff)
	}
	if req.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	if req.ContentLength != 2 {
		t.Fatalf("expected content length 2, got %d", req.ContentLength)
	}
	expectedHeader := http.Header{
		"Content-Type": {"application/json"},
		"X-Opaque-Id":  {"abc"},
	}
	if diff := cmp.Diff(req.Header, expectedHeader); diff != "" {
		t.Fatalf("header differ (-got, +want): %s", diff)
	}

	// the request owns its headers
	req.Header.Set("Content-Type", "text/plain")
	if params.Headers().Get("Content-Type") != "application/json" {
		t.Fatal("request headers must not alias the params headers")
	}
}

func TestNewRequest_WithoutBody(t *testing.T) {
	req, err := NewRequest(context.Background(), DefaultRequestParams(), request.PingHead())
	if err != nil {
		t.Fatal(err)
	}
	if req.Body != nil {
		t.Fatal("expected no body")
	}
}

func TestNewRequest_InvalidBaseURL(t *testing.T) {
	_, err := NewRequest(context.Background(), NewRequestParams("http://[::1"), request.Info())
	if err == nil {
		t.Fatal("expected an error for an unparsable url")
	}
}

func mockElasticsearchService(recorded chan<- recordedRequest, fakeCode int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		recorded <- recordedRequest{
			Method:      req.Method,
			URI:         req.URL.RequestURI(),
			ContentType: req.Header.Get("Content-Type"),
			Body:        string(b),
		}
		res.WriteHeader(fakeCode)
	}))
}

func mockElasticsearchFile(pattern, fakeResp string, fakeCode int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, func(res http.ResponseWriter, req *http.Request) {
		b, _ := os.ReadFile(fmt.Sprintf("./testdata/%s", fakeResp))
		res.WriteHeader(fakeCode)
		res.Write(b)
	})
	return httptest.NewServer(mux)
}
