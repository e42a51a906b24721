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
	"net/http"
	"strings"

	"kubesphere.io/esclient/pkg/simple/client/es/request"
)

// buildURL concatenates the base url, the request path and the query string.
// Nothing is normalized, the caller supplies a well-formed path.
func buildURL(path string, params *RequestParams) string {
	qryLen, qry := params.URLQuery()

	var b strings.Builder
	b.Grow(len(params.baseURL) + len(path) + qryLen)
	b.WriteString(params.baseURL)
	b.WriteString(path)
	b.WriteString(qry)

	return b.String()
}

func buildMethod(method request.HttpMethod) string {
	switch method {
	case request.Get:
		return http.MethodGet
	case request.Post:
		return http.MethodPost
	case request.Head:
		return http.MethodHead
	case request.Delete:
		return http.MethodDelete
	case request.Put:
		return http.MethodPut
	case request.Patch:
		return http.MethodPatch
	}
	panic("es: unknown http method " + method.String())
}
