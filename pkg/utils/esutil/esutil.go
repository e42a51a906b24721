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

// Package esutil resolves the names of time based indices, as written by
// logstash and fluent-bit: one index per day named `<prefix>-yyyy.MM.dd`.
package esutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO = "2006.01.02"

	// Ranges wider than this search all indices matching the prefix.
	maxResolvedRange = 30 * 24 * time.Hour
)

// IndexName returns the daily index holding documents written at t, in UTC.
func IndexName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, t.UTC().Format(layoutISO))
}

// ResolveIndexNames returns the comma separated daily indices covering [start, end],
// newest first. A zero end means now. A zero start or a range over 30 days gives
// the `<prefix>*` wildcard, and a start after end gives an empty string.
func ResolveIndexNames(prefix string, start, end time.Time) string {
	if end.IsZero() {
		end = time.Now()
	}

	if start.IsZero() || end.Sub(start) > maxResolvedRange {
		return fmt.Sprintf("%s*", prefix)
	}

	first := truncateToDay(start)
	var indices []string
	for day := truncateToDay(end); !day.Before(first); day = day.AddDate(0, 0, -1) {
		indices = append(indices, IndexName(prefix, day))
	}

	return strings.Join(indices, ",")
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
