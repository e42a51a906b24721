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

package response

import "encoding/json"

// PingResponse is the body of GET /
type PingResponse struct {
	Name        string  `json:"name"`
	ClusterName string  `json:"cluster_name"`
	ClusterUUID string  `json:"cluster_uuid,omitempty"`
	Version     Version `json:"version"`
	Tagline     string  `json:"tagline"`
}

type Version struct {
	Number        string `json:"number"`
	BuildHash     string `json:"build_hash,omitempty"`
	LuceneVersion string `json:"lucene_version,omitempty"`
	Distribution  string `json:"distribution,omitempty"`
}

type Shards struct {
	Total      int64 `json:"total"`
	Successful int64 `json:"successful"`
	Skipped    int64 `json:"skipped"`
	Failed     int64 `json:"failed"`
}

type SearchResponse struct {
	ScrollId     string                     `json:"_scroll_id,omitempty"`
	Took         int64                      `json:"took"`
	TimedOut     bool                       `json:"timed_out"`
	Shards       Shards                     `json:"_shards"`
	Hits         Hits                       `json:"hits"`
	Aggregations map[string]json.RawMessage `json:"aggregations,omitempty"`
}

type Hits struct {
	Total    interface{} `json:"total,omitempty"` // As of Elasticsearch v7.x, hits.total is changed incompatibly
	MaxScore *float64    `json:"max_score"`
	Hits     []Hit       `json:"hits"`
}

type Hit struct {
	Index  string          `json:"_index"`
	Type   string          `json:"_type,omitempty"`
	Id     string          `json:"_id"`
	Score  *float64        `json:"_score"`
	Source json.RawMessage `json:"_source,omitempty"`
	Sort   []interface{}   `json:"sort,omitempty"`
}

// TotalHits returns hits.total for both the number form (v5, v6)
// and the object form (v7 and later).
func (r *SearchResponse) TotalHits() int64 {
	switch t := r.Hits.Total.(type) {
	case float64:
		return int64(t)
	case map[string]interface{}:
		f, _ := t["value"].(float64)
		return int64(f)
	}
	return 0
}

type GetResponse struct {
	Index   string          `json:"_index"`
	Type    string          `json:"_type,omitempty"`
	Id      string          `json:"_id"`
	Version int64           `json:"_version,omitempty"`
	Found   bool            `json:"found"`
	Source  json.RawMessage `json:"_source,omitempty"`
}

// IndexResponse is the body of index, update and delete document requests.
type IndexResponse struct {
	Index   string `json:"_index"`
	Type    string `json:"_type,omitempty"`
	Id      string `json:"_id"`
	Version int64  `json:"_version"`
	Result  string `json:"result"`
	Shards  Shards `json:"_shards"`
}

type CountResponse struct {
	Count  int64  `json:"count"`
	Shards Shards `json:"_shards"`
}

// CommandResponse is the body of index management requests.
type CommandResponse struct {
	Acknowledged bool `json:"acknowledged"`
}
