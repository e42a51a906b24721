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

package request

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type expectedRequest struct {
	Method string
	URL    string
	Body   string
}

func toExpected(r Request) expectedRequest {
	return expectedRequest{
		Method: r.Method().String(),
		URL:    r.URL(),
		Body:   string(r.Body()),
	}
}

func TestEndpoints(t *testing.T) {
	body := []byte(`{"query":{"match_all":{}}}`)

	var tests = []struct {
		name     string
		req      Request
		expected expectedRequest
	}{
		{"ping", PingHead(), expectedRequest{"HEAD", "/", ""}},
		{"info", Info(), expectedRequest{"GET", "/", ""}},
		{"simple search all", SimpleSearch("", ""), expectedRequest{"GET", "/_search", ""}},
		{"simple search index", SimpleSearch("myindex", ""), expectedRequest{"GET", "/myindex/_search", ""}},
		{"simple search index type", SimpleSearch("myindex", "mytype"), expectedRequest{"GET", "/myindex/mytype/_search", ""}},
		{"simple search type only", SimpleSearch("", "mytype"), expectedRequest{"GET", "/_all/mytype/_search", ""}},
		{"search", Search("myindex", "mytype", body), expectedRequest{"POST", "/myindex/mytype/_search", string(body)}},
		{"count without query", Count("myindex", nil), expectedRequest{"GET", "/myindex/_count", ""}},
		{"count with query", Count("myindex", body), expectedRequest{"POST", "/myindex/_count", string(body)}},
		{"get", GetDocument("myindex", "mytype", "1"), expectedRequest{"GET", "/myindex/mytype/1", ""}},
		{"index with id", IndexDocument("myindex", "mytype", "1", body), expectedRequest{"PUT", "/myindex/mytype/1", string(body)}},
		{"index without id", IndexDocument("myindex", "mytype", "", body), expectedRequest{"POST", "/myindex/mytype", string(body)}},
		{"update", UpdateDocument("myindex", "mytype", "1", body), expectedRequest{"POST", "/myindex/mytype/1/_update", string(body)}},
		{"delete", DeleteDocument("myindex", "mytype", "1"), expectedRequest{"DELETE", "/myindex/mytype/1", ""}},
		{"indices exists", IndicesExists("myindex"), expectedRequest{"HEAD", "/myindex", ""}},
		{"indices create", IndicesCreate("myindex", body), expectedRequest{"PUT", "/myindex", string(body)}},
		{"indices delete", IndicesDelete("myindex"), expectedRequest{"DELETE", "/myindex", ""}},
		{"cluster health", ClusterHealth(), expectedRequest{"GET", "/_cluster/health", ""}},
		{"raw", Raw(Patch, "_nodes/stats", nil), expectedRequest{"PATCH", "/_nodes/stats", ""}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(toExpected(test.req), test.expected); diff != "" {
				t.Fatalf("%T differ (-got, +want): %s", test.expected, diff)
			}
		})
	}
}

func TestBodyIsNilWhenAbsent(t *testing.T) {
	if b := SimpleSearch("myindex", "").Body(); b != nil {
		t.Fatalf("expected nil body, got %q", b)
	}
}

func TestHttpMethodString(t *testing.T) {
	var tests = map[HttpMethod]string{
		Get:    "GET",
		Post:   "POST",
		Head:   "HEAD",
		Delete: "DELETE",
		Put:    "PUT",
		Patch:  "PATCH",
	}

	for m, expected := range tests {
		if m.String() != expected {
			t.Errorf("expected %s, got %s", expected, m.String())
		}
	}
}

func TestParseHttpMethod(t *testing.T) {
	for _, s := range []string{"get", "POST", "Head", "delete", "put", "patch"} {
		m, err := ParseHttpMethod(s)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.EqualFold(m.String(), s) {
			t.Errorf("expected %s, got %s", s, m)
		}
	}

	if _, err := ParseHttpMethod("OPTIONS"); err == nil {
		t.Error("expected an error for OPTIONS")
	}
}
