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

import "strings"

// allIndices addresses every index when a type is given without an index.
const allIndices = "_all"

// PingHead checks the node is reachable: HEAD /
func PingHead() *HttpRequest {
	return New(Head, "/", nil)
}

// Info returns the node and version information: GET /
func Info() *HttpRequest {
	return New(Get, "/", nil)
}

// SimpleSearch searches without a body, usually combined with the `q` url param.
// Both index and ty may be empty.
func SimpleSearch(index, ty string) *HttpRequest {
	return New(Get, indexTypePath(index, ty, "_search"), nil)
}

// Search runs a query DSL search: POST /{index}/{type}/_search
func Search(index, ty string, body []byte) *HttpRequest {
	return New(Post, indexTypePath(index, ty, "_search"), body)
}

// Count counts documents matching an optional query: POST /{index}/_count
func Count(index string, body []byte) *HttpRequest {
	if body == nil {
		return New(Get, indexTypePath(index, "", "_count"), nil)
	}
	return New(Post, indexTypePath(index, "", "_count"), body)
}

func GetDocument(index, ty, id string) *HttpRequest {
	return New(Get, joinPath(index, ty, id), nil)
}

// IndexDocument stores a document. Without an id Elasticsearch generates one, which requires POST.
func IndexDocument(index, ty, id string, body []byte) *HttpRequest {
	if id == "" {
		return New(Post, joinPath(index, ty), body)
	}
	return New(Put, joinPath(index, ty, id), body)
}

// UpdateDocument applies a partial document or script: POST /{index}/{type}/{id}/_update
func UpdateDocument(index, ty, id string, body []byte) *HttpRequest {
	return New(Post, joinPath(index, ty, id, "_update"), body)
}

func DeleteDocument(index, ty, id string) *HttpRequest {
	return New(Delete, joinPath(index, ty, id), nil)
}

func IndicesExists(index string) *HttpRequest {
	return New(Head, joinPath(index), nil)
}

func IndicesCreate(index string, body []byte) *HttpRequest {
	return New(Put, joinPath(index), body)
}

func IndicesDelete(index string) *HttpRequest {
	return New(Delete, joinPath(index), nil)
}

func ClusterHealth() *HttpRequest {
	return New(Get, "/_cluster/health", nil)
}

// Raw addresses any endpoint not covered above. A missing leading slash is added.
func Raw(method HttpMethod, path string, body []byte) *HttpRequest {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return New(method, path, body)
}

func indexTypePath(index, ty, endpoint string) string {
	if index == "" && ty != "" {
		index = allIndices
	}
	return joinPath(index, ty, endpoint)
}

// joinPath joins the non-empty segments with slashes. Segments are not escaped.
func joinPath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		if s == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
